// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\database\inventory.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"gakki/model"
)

const inventoryColumns = `
	id, category, product_name, manufacturer, model_number, color,
	serial_number, condition, price, wholesale_price, wholesale_rate,
	purchase_date, supplier_name, list_price, gross_margin, notes,
	status, image_url, created_at, updated_at`

// GetFilteredInventory は条件に合う在庫を更新日時の新しい順で返します。
// キーワードは商品名・メーカー・型番を部分一致で横断検索します。
func GetFilteredInventory(db *sqlx.DB, filter model.InventorySearchFilter) ([]model.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory WHERE 1=1`
	var args []interface{}

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	if filter.Keyword != "" {
		query += ` AND (product_name LIKE ? OR manufacturer LIKE ? OR model_number LIKE ?)`
		kw := "%" + filter.Keyword + "%"
		args = append(args, kw, kw, kw)
	}
	query += ` ORDER BY updated_at DESC, id DESC`

	items := []model.InventoryItem{}
	if err := db.Select(&items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search inventory: %w", err)
	}
	return items, nil
}

// GetInventoryByID は在庫1件を返します。見つからない場合は nil を返します。
func GetInventoryByID(db *sqlx.DB, id int64) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := db.Get(&item, `SELECT `+inventoryColumns+` FROM inventory WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory (id: %d): %w", id, err)
	}
	return &item, nil
}

func InsertInventory(db *sqlx.DB, input model.InventoryInput) (int64, error) {
	const q = `
		INSERT INTO inventory (
			category, product_name, manufacturer, model_number, color,
			serial_number, condition, price, wholesale_price, wholesale_rate,
			purchase_date, supplier_name, list_price, gross_margin, notes,
			status, image_url
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := db.Exec(q,
		defaultIfEmpty(input.Category, "その他"), input.ProductName,
		input.Manufacturer, input.ModelNumber, input.Color,
		input.SerialNumber, defaultIfEmpty(input.Condition, "新品"),
		input.Price, input.WholesalePrice, input.WholesaleRate,
		input.PurchaseDate, input.SupplierName, input.ListPrice,
		input.GrossMargin, input.Notes,
		defaultIfEmpty(input.Status, "販売中"), input.ImageURL)
	if err != nil {
		return 0, fmt.Errorf("failed to insert inventory (%s): %w", input.ProductName, err)
	}
	return res.LastInsertId()
}

func UpdateInventory(db *sqlx.DB, id int64, input model.InventoryInput) error {
	const q = `
		UPDATE inventory SET
			category = ?, product_name = ?, manufacturer = ?, model_number = ?,
			color = ?, serial_number = ?, condition = ?, price = ?,
			wholesale_price = ?, wholesale_rate = ?, purchase_date = ?,
			supplier_name = ?, list_price = ?, gross_margin = ?, notes = ?,
			status = ?, image_url = ?,
			updated_at = datetime('now', 'localtime')
		WHERE id = ?`
	res, err := db.Exec(q,
		defaultIfEmpty(input.Category, "その他"), input.ProductName,
		input.Manufacturer, input.ModelNumber, input.Color,
		input.SerialNumber, defaultIfEmpty(input.Condition, "新品"),
		input.Price, input.WholesalePrice, input.WholesaleRate,
		input.PurchaseDate, input.SupplierName, input.ListPrice,
		input.GrossMargin, input.Notes,
		defaultIfEmpty(input.Status, "販売中"), input.ImageURL, id)
	if err != nil {
		return fmt.Errorf("failed to update inventory (id: %d): %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteInventory(db *sqlx.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory (id: %d): %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// BulkInsertProductsInTx はCSV取込で確定された商品をまとめて登録し、
// 採番されたIDを入力順で返します。数値変換はこの境界で行います
// （パーサーは文字列のまま渡してくる）。
func BulkInsertProductsInTx(tx *sqlx.Tx, products []model.CSVProduct) ([]int64, error) {
	const q = `
		INSERT INTO inventory (
			category, product_name, manufacturer, model_number, color,
			serial_number, condition, price, wholesale_price, wholesale_rate,
			purchase_date, supplier_name, list_price, gross_margin, notes, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.Prepare(q)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare bulk insert: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(products))
	for _, p := range products {
		res, execErr := stmt.Exec(
			defaultIfEmpty(p.Category, "その他"), p.ProductName,
			p.Manufacturer, p.ModelNumber, p.Color, p.SerialNumber,
			defaultIfEmpty(p.Condition, "新品"),
			floatOrZero(p.Price), nullableFloat(p.WholesalePrice),
			nullableFloat(p.WholesaleRate), p.PurchaseDate, p.Supplier,
			nullableFloat(p.ListPrice), nullableFloat(p.GrossMargin),
			p.Notes, defaultIfEmpty(p.Status, "販売中"))
		if execErr != nil {
			return nil, fmt.Errorf("failed to bulk insert product (%s): %w", p.ProductName, execErr)
		}
		id, idErr := res.LastInsertId()
		if idErr != nil {
			return nil, fmt.Errorf("failed to get inserted id (%s): %w", p.ProductName, idErr)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// GetAllInventoryForExport はバックアップCSV用に全在庫を返します。
func GetAllInventoryForExport(db *sqlx.DB) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	err := db.Select(&items, `SELECT `+inventoryColumns+` FROM inventory ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory for export: %w", err)
	}
	return items, nil
}

func defaultIfEmpty(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func floatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func nullableFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}
