// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\disposal\classify.go
package disposal

import (
	"strings"
	"time"
)

// 消耗品 (弦・ピックなど) は楽器本体より回転が速いため閾値を分けます。
const (
	consumableWarnDays   = 180
	consumableDangerDays = 365
	durableWarnDays      = 730
	durableDangerDays    = 1095
)

// Classification は在庫1件の滞留判定結果です。
type Classification struct {
	DaysOld        int
	Level          string // info / warning / danger
	Recommendation string
}

// IsConsumable は消耗品カテゴリかどうかを商品名・カテゴリ名から判定します。
func IsConsumable(category, productName string) bool {
	for _, s := range []string{category, productName} {
		if strings.Contains(s, "弦") || strings.Contains(s, "ピック") {
			return true
		}
	}
	return false
}

// Classify は仕入日からの経過日数で滞留レベルを判定します。
// purchaseDate が不正な場合は様子見扱いです。
func Classify(category, productName, purchaseDate string, now time.Time) Classification {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(purchaseDate))
	if err != nil {
		return Classification{Level: "info", Recommendation: "様子見"}
	}

	// 時刻・タイムゾーンの影響を受けないよう日付同士で数える
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(parsed).Hours() / 24)
	if days < 0 {
		days = 0
	}

	warn, danger := durableWarnDays, durableDangerDays
	if IsConsumable(category, productName) {
		warn, danger = consumableWarnDays, consumableDangerDays
	}

	c := Classification{DaysOld: days, Level: "info", Recommendation: "様子見"}
	switch {
	case days >= danger:
		c.Level = "danger"
		c.Recommendation = "即処分推奨"
	case days >= warn:
		c.Level = "warning"
		c.Recommendation = "処分検討"
	}
	return c
}
