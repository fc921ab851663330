// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\database\sales.go
package database

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gakki/model"
)

// InsertSaleInTx は売上を登録します。在庫ステータスの更新と同一
// トランザクションで呼ぶ前提です。
func InsertSaleInTx(tx *sqlx.Tx, sale model.Sale) (int64, error) {
	const q = `
		INSERT INTO sales (
			inventory_id, product_name, category, manufacturer,
			purchase_price, sale_price, sale_date, customer_name, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.Exec(q,
		sale.InventoryID, sale.ProductName, sale.Category, sale.Manufacturer,
		sale.PurchasePrice, sale.SalePrice, sale.SaleDate,
		sale.CustomerName, sale.Notes)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sale (%s): %w", sale.ProductName, err)
	}
	return res.LastInsertId()
}

// MarkInventorySoldInTx は売上登録と同時に在庫を売却済みへ更新します。
func MarkInventorySoldInTx(tx *sqlx.Tx, inventoryID int64) error {
	res, err := tx.Exec(
		`UPDATE inventory SET status = '売却済', updated_at = datetime('now', 'localtime') WHERE id = ?`,
		inventoryID)
	if err != nil {
		return fmt.Errorf("failed to mark inventory sold (id: %d): %w", inventoryID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetSales は売上を新しい順で返します。startDate/endDate (YYYY-MM-DD) は
// 空なら無視されます。
func GetSales(db *sqlx.DB, startDate, endDate string) ([]model.Sale, error) {
	query := `
		SELECT id, inventory_id, product_name, category, manufacturer,
		       purchase_price, sale_price, sale_date, customer_name, notes, created_at
		FROM sales WHERE 1=1`
	var args []interface{}

	if startDate != "" {
		query += ` AND sale_date >= ?`
		args = append(args, startDate)
	}
	if endDate != "" {
		query += ` AND sale_date <= ?`
		args = append(args, endDate)
	}
	query += ` ORDER BY sale_date DESC, id DESC`

	sales := []model.Sale{}
	if err := db.Select(&sales, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get sales: %w", err)
	}
	return sales, nil
}

// GetMonthlySalesTotal は指定月 (YYYY-MM) の売上合計と件数を返します。
func GetMonthlySalesTotal(db *sqlx.DB, month string) (float64, int, error) {
	var row struct {
		Total float64 `db:"total"`
		Count int     `db:"count"`
	}
	const q = `
		SELECT COALESCE(SUM(sale_price), 0) AS total, COUNT(*) AS count
		FROM sales WHERE sale_date LIKE ?`
	if err := db.Get(&row, q, month+"%"); err != nil {
		return 0, 0, fmt.Errorf("failed to get monthly sales total: %w", err)
	}
	return row.Total, row.Count, nil
}
