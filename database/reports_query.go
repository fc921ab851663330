// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\database\reports_query.go
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gakki/model"
)

// GetReportSummary は売却済みを除いた在庫のカテゴリ別集計を返します。
// 仕入総額は wholesale_price、販売総額は price (売価) ベースです。
func GetReportSummary(db *sqlx.DB) (model.ReportSummary, error) {
	const q = `
		SELECT
			category,
			COUNT(*) AS count,
			COALESCE(SUM(COALESCE(wholesale_price, 0)), 0) AS purchase_value,
			COALESCE(SUM(price), 0) AS retail_value
		FROM inventory
		WHERE status != '売却済'
		GROUP BY category
		ORDER BY category`

	var rows []model.CategorySummary
	if err := db.Select(&rows, q); err != nil {
		return model.ReportSummary{}, fmt.Errorf("failed to aggregate inventory by category: %w", err)
	}

	summary := model.ReportSummary{ByCategory: rows}
	for i := range summary.ByCategory {
		c := &summary.ByCategory[i]
		if c.Category == "" {
			c.Category = "未分類"
		}
		c.GrossProfit = c.RetailValue - c.PurchaseValue
		summary.TotalItems += c.Count
		summary.TotalPurchaseValue += c.PurchaseValue
		summary.TotalRetailValue += c.RetailValue
	}
	return summary, nil
}

// GetUnsoldInventory はレポート明細・処分候補の元データとなる
// 売却済み以外の在庫を返します。
func GetUnsoldInventory(db *sqlx.DB) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	query := `SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE status != '売却済'
		ORDER BY purchase_date, id`
	if err := db.Select(&items, query); err != nil {
		return nil, fmt.Errorf("failed to get unsold inventory: %w", err)
	}
	return items, nil
}

// GetDashboardStats はダッシュボード用の統計をまとめて返します。
func GetDashboardStats(db *sqlx.DB, month string) (model.DashboardStats, error) {
	stats := model.DashboardStats{ByStatus: map[string]int{}}

	var statusRows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := db.Select(&statusRows, `SELECT status, COUNT(*) AS count FROM inventory GROUP BY status`); err != nil {
		return stats, fmt.Errorf("failed to count inventory by status: %w", err)
	}
	for _, row := range statusRows {
		stats.ByStatus[row.Status] = row.Count
		stats.TotalItems += row.Count
		if row.Status != "売却済" {
			stats.UnsoldItems += row.Count
		}
	}

	var totals struct {
		Purchase float64 `db:"purchase"`
		Retail   float64 `db:"retail"`
	}
	const totalsQuery = `
		SELECT
			COALESCE(SUM(COALESCE(wholesale_price, 0)), 0) AS purchase,
			COALESCE(SUM(price), 0) AS retail
		FROM inventory WHERE status != '売却済'`
	if err := db.Get(&totals, totalsQuery); err != nil {
		return stats, fmt.Errorf("failed to sum inventory values: %w", err)
	}
	stats.TotalPurchaseValue = totals.Purchase
	stats.TotalRetailValue = totals.Retail

	total, count, err := GetMonthlySalesTotal(db, month)
	if err != nil {
		return stats, err
	}
	stats.MonthlySalesTotal = total
	stats.MonthlySalesCount = count

	return stats, nil
}
