// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\disposal\classify_test.go
package disposal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsConsumable(t *testing.T) {
	assert.True(t, IsConsumable("アクセサリ", "エレキギター弦 09-42"))
	assert.True(t, IsConsumable("ピック", "ティアドロップ"))
	assert.False(t, IsConsumable("ギター", "ストラトキャスター"))
}

func TestClassify(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name          string
		category      string
		productName   string
		purchaseDate  string
		wantLevel     string
		wantRecommend string
	}{
		{"durable fresh", "ギター", "ストラト", "2024-01-01", "info", "様子見"},
		{"durable warning at 2y", "ギター", "ストラト", "2022-05-01", "warning", "処分検討"},
		{"durable danger at 3y", "ギター", "ストラト", "2021-01-01", "danger", "即処分推奨"},
		{"consumable warning at 180d", "アクセサリ", "ギター弦", "2023-11-01", "warning", "処分検討"},
		{"consumable danger at 1y", "アクセサリ", "ギター弦", "2023-05-01", "danger", "即処分推奨"},
		{"consumable fresh", "アクセサリ", "ギター弦", "2024-03-01", "info", "様子見"},
		{"invalid date", "ギター", "ストラト", "不明", "info", "様子見"},
		{"empty date", "ギター", "ストラト", "", "info", "様子見"},
		{"future date clamps to zero", "ギター", "ストラト", "2025-01-01", "info", "様子見"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.category, tt.productName, tt.purchaseDate, now)
			assert.Equal(t, tt.wantLevel, c.Level)
			assert.Equal(t, tt.wantRecommend, c.Recommendation)
		})
	}
}

func TestClassifyBoundaries(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	// 消耗品: ちょうど180日で warning、179日は info
	warn := Classify("アクセサリ", "弦", base.AddDate(0, 0, -180).Format("2006-01-02"), base)
	assert.Equal(t, "warning", warn.Level)
	assert.Equal(t, 180, warn.DaysOld)

	info := Classify("アクセサリ", "弦", base.AddDate(0, 0, -179).Format("2006-01-02"), base)
	assert.Equal(t, "info", info.Level)

	// 耐久品: ちょうど1095日で danger
	danger := Classify("ギター", "ストラト", base.AddDate(0, 0, -1095).Format("2006-01-02"), base)
	assert.Equal(t, "danger", danger.Level)
}
