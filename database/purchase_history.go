// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\database\purchase_history.go
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gakki/model"
)

func InsertPurchaseHistoryInTx(tx *sqlx.Tx, h model.PurchaseHistory) error {
	const q = `
		INSERT INTO purchase_history (
			inventory_id, product_name, model_number, serial_number,
			supplier_name, purchase_date, wholesale_price, wholesale_rate,
			quantity, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.Exec(q,
		h.InventoryID, h.ProductName, h.ModelNumber, h.SerialNumber,
		h.SupplierName, h.PurchaseDate, h.WholesalePrice, h.WholesaleRate,
		h.Quantity, h.Notes)
	if err != nil {
		return fmt.Errorf("failed to insert purchase history (%s): %w", h.ProductName, err)
	}
	return nil
}

// GetPurchaseHistory は仕入履歴を仕入日の新しい順で返します。
func GetPurchaseHistory(db *sqlx.DB) ([]model.PurchaseHistory, error) {
	history := []model.PurchaseHistory{}
	const q = `
		SELECT id, inventory_id, product_name, model_number, serial_number,
		       supplier_name, purchase_date, wholesale_price, wholesale_rate,
		       quantity, notes, created_at
		FROM purchase_history ORDER BY purchase_date DESC, id DESC`
	if err := db.Select(&history, q); err != nil {
		return nil, fmt.Errorf("failed to get purchase history: %w", err)
	}
	return history, nil
}
