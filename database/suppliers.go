// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\database\suppliers.go
package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"gakki/model"
)

func GetAllSuppliers(db *sqlx.DB) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	const q = `
		SELECT id, name, phone, email, address, notes, created_at, updated_at
		FROM suppliers ORDER BY name`
	if err := db.Select(&suppliers, q); err != nil {
		return nil, fmt.Errorf("failed to get all suppliers: %w", err)
	}
	return suppliers, nil
}

func CreateSupplier(db *sqlx.DB, s model.Supplier) (int64, error) {
	const q = `
		INSERT INTO suppliers (name, phone, email, address, notes)
		VALUES (?, ?, ?, ?, ?)`
	res, err := db.Exec(q, s.Name, s.Phone, s.Email, s.Address, s.Notes)
	if err != nil {
		return 0, fmt.Errorf("CreateSupplier (Name: %s) failed: %w", s.Name, err)
	}
	return res.LastInsertId()
}

func DeleteSupplier(db *sqlx.DB, id int64) error {
	_, err := db.Exec(`DELETE FROM suppliers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier (id: %d): %w", id, err)
	}
	return nil
}
