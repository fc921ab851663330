// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\reports\handler.go
package reports

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
	"github.com/xuri/excelize/v2"

	"gakki/database"
)

// SummaryHandler はカテゴリ別の在庫集計をJSONで返します
func SummaryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := database.GetReportSummary(db)
		if err != nil {
			log.Printf("Error getting report summary: %v", err)
			http.Error(w, "レポートの集計に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// CategoryCSVHandler はカテゴリ別集計CSVをダウンロードさせます。
// 銀行提出用なので合計行を末尾に付けます
func CategoryCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := database.GetReportSummary(db)
		if err != nil {
			log.Printf("Error getting report summary for CSV: %v", err)
			http.Error(w, "レポートの集計に失敗しました。", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("カテゴリ別集計_%s.csv", time.Now().Format("20060102"))
		fileName = url.PathEscape(fileName)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+fileName)
		w.Write([]byte{0xEF, 0xBB, 0xBF})

		csvWriter := csv.NewWriter(w)
		csvWriter.UseCRLF = true
		defer csvWriter.Flush()

		headers := []string{"カテゴリ", "商品数", "仕入総額", "販売総額", "粗利益"}
		if err := csvWriter.Write(headers); err != nil {
			log.Printf("Failed to write CSV header: %v", err)
		}

		for _, c := range summary.ByCategory {
			record := []string{
				c.Category,
				strconv.Itoa(c.Count),
				formatYen(c.PurchaseValue),
				formatYen(c.RetailValue),
				formatYen(c.GrossProfit),
			}
			if err := csvWriter.Write(record); err != nil {
				log.Printf("Failed to write category row to CSV (%s): %v", c.Category, err)
			}
		}

		total := []string{
			"合計",
			strconv.Itoa(summary.TotalItems),
			formatYen(summary.TotalPurchaseValue),
			formatYen(summary.TotalRetailValue),
			formatYen(summary.TotalRetailValue - summary.TotalPurchaseValue),
		}
		if err := csvWriter.Write(total); err != nil {
			log.Printf("Failed to write total row to CSV: %v", err)
		}
	}
}

// DetailCSVHandler は在庫明細CSVをダウンロードさせます
func DetailCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := database.GetUnsoldInventory(db)
		if err != nil {
			log.Printf("Error getting inventory for detail CSV: %v", err)
			http.Error(w, "在庫明細の取得に失敗しました。", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("在庫明細_%s.csv", time.Now().Format("20060102"))
		fileName = url.PathEscape(fileName)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+fileName)
		w.Write([]byte{0xEF, 0xBB, 0xBF})

		csvWriter := csv.NewWriter(w)
		csvWriter.UseCRLF = true
		defer csvWriter.Flush()

		headers := []string{"カテゴリ", "商品名", "メーカー", "型番", "状態", "販売価格", "卸価格", "仕入日", "仕入先", "ステータス"}
		if err := csvWriter.Write(headers); err != nil {
			log.Printf("Failed to write CSV header: %v", err)
		}

		for _, item := range items {
			wholesale := ""
			if item.WholesalePrice != nil {
				wholesale = formatYen(*item.WholesalePrice)
			}
			record := []string{
				item.Category,
				item.ProductName,
				item.Manufacturer,
				item.ModelNumber,
				item.Condition,
				formatYen(item.Price),
				wholesale,
				item.PurchaseDate,
				item.SupplierName,
				item.Status,
			}
			if err := csvWriter.Write(record); err != nil {
				log.Printf("Failed to write item row to CSV (%s): %v", item.ProductName, err)
			}
		}
	}
}

// ExcelHandler はカテゴリ別集計をxlsxでダウンロードさせます
func ExcelHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := database.GetReportSummary(db)
		if err != nil {
			log.Printf("Error getting report summary for Excel: %v", err)
			http.Error(w, "レポートの集計に失敗しました。", http.StatusInternalServerError)
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "カテゴリ別集計"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"カテゴリ", "商品数", "仕入総額", "販売総額", "粗利益"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		row := 2
		for _, c := range summary.ByCategory {
			values := []interface{}{c.Category, c.Count, c.PurchaseValue, c.RetailValue, c.GrossProfit}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}

		totals := []interface{}{
			"合計",
			summary.TotalItems,
			summary.TotalPurchaseValue,
			summary.TotalRetailValue,
			summary.TotalRetailValue - summary.TotalPurchaseValue,
		}
		for i, v := range totals {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}

		fileName := fmt.Sprintf("カテゴリ別集計_%s.xlsx", time.Now().Format("20060102"))
		fileName = url.PathEscape(fileName)

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+fileName)

		if err := f.Write(w); err != nil {
			log.Printf("Failed to write xlsx response: %v", err)
		}
	}
}

// formatYen は金額を小数点なしの文字列にします (端数がある場合のみ小数を残す)
func formatYen(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
