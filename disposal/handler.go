// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\disposal\handler.go
package disposal

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"gakki/database"
	"gakki/model"
)

// collectCandidates は売却済み以外の在庫から滞留警告以上のものを抽出します
func collectCandidates(db *sqlx.DB, now time.Time) ([]model.DisposalCandidate, error) {
	items, err := database.GetUnsoldInventory(db)
	if err != nil {
		return nil, err
	}

	candidates := []model.DisposalCandidate{}
	for _, item := range items {
		if item.PurchaseDate == "" {
			continue
		}
		c := Classify(item.Category, item.ProductName, item.PurchaseDate, now)
		if c.Level == "info" {
			continue
		}
		candidates = append(candidates, model.DisposalCandidate{
			InventoryItem:  item,
			DaysOld:        c.DaysOld,
			Level:          c.Level,
			Recommendation: c.Recommendation,
		})
	}
	return candidates, nil
}

// CandidatesHandler は処分候補の一覧を返します
func CandidatesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := collectCandidates(db, time.Now())
		if err != nil {
			log.Printf("Error collecting disposal candidates: %v", err)
			http.Error(w, "処分候補の抽出に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(candidates)
	}
}

// ExportCSVHandler は処分候補リストをCSVでダウンロードさせます
func ExportCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidates, err := collectCandidates(db, time.Now())
		if err != nil {
			log.Printf("Error collecting disposal candidates for CSV: %v", err)
			http.Error(w, "処分候補の抽出に失敗しました。", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("処分候補_%s.csv", time.Now().Format("20060102"))
		fileName = url.PathEscape(fileName)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+fileName)
		w.Write([]byte{0xEF, 0xBB, 0xBF})

		csvWriter := csv.NewWriter(w)
		csvWriter.UseCRLF = true
		defer csvWriter.Flush()

		headers := []string{"カテゴリ", "商品名", "メーカー", "仕入日", "経過日数", "販売価格", "判定"}
		if err := csvWriter.Write(headers); err != nil {
			log.Printf("Failed to write CSV header: %v", err)
		}

		for _, c := range candidates {
			record := []string{
				c.Category,
				c.ProductName,
				c.Manufacturer,
				c.PurchaseDate,
				strconv.Itoa(c.DaysOld),
				strconv.FormatFloat(c.Price, 'f', -1, 64),
				c.Recommendation,
			}
			if err := csvWriter.Write(record); err != nil {
				log.Printf("Failed to write candidate row to CSV (%s): %v", c.ProductName, err)
			}
		}
	}
}
