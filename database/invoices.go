// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\database\invoices.go
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gakki/model"
)

func InsertInvoiceRecord(db *sqlx.DB, inv model.InvoiceRecord) (int64, error) {
	const q = `
		INSERT INTO invoices (file_name, file_url, supplier_name, status, total_items)
		VALUES (?, ?, ?, ?, ?)`
	res, err := db.Exec(q, inv.FileName, inv.FileURL, inv.SupplierName, inv.Status, inv.TotalItems)
	if err != nil {
		return 0, fmt.Errorf("failed to insert invoice record (%s): %w", inv.FileName, err)
	}
	return res.LastInsertId()
}

func GetAllInvoices(db *sqlx.DB) ([]model.InvoiceRecord, error) {
	invoices := []model.InvoiceRecord{}
	const q = `
		SELECT id, file_name, file_url, supplier_name, status, total_items, created_at
		FROM invoices ORDER BY created_at DESC, id DESC`
	if err := db.Select(&invoices, q); err != nil {
		return nil, fmt.Errorf("failed to get invoices: %w", err)
	}
	return invoices, nil
}
