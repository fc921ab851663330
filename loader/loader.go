// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\loader\loader.go
package loader

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS inventory (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	category        TEXT NOT NULL DEFAULT 'その他',
	product_name    TEXT NOT NULL,
	manufacturer    TEXT NOT NULL DEFAULT '',
	model_number    TEXT NOT NULL DEFAULT '',
	color           TEXT NOT NULL DEFAULT '',
	serial_number   TEXT NOT NULL DEFAULT '',
	condition       TEXT NOT NULL DEFAULT '新品',
	price           REAL NOT NULL DEFAULT 0,
	wholesale_price REAL,
	wholesale_rate  REAL,
	purchase_date   TEXT NOT NULL DEFAULT '',
	supplier_name   TEXT NOT NULL DEFAULT '',
	list_price      REAL,
	gross_margin    REAL,
	notes           TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL DEFAULT '販売中',
	image_url       TEXT NOT NULL DEFAULT '',
	created_at      TEXT NOT NULL DEFAULT (datetime('now', 'localtime')),
	updated_at      TEXT NOT NULL DEFAULT (datetime('now', 'localtime'))
);

CREATE INDEX IF NOT EXISTS idx_inventory_status ON inventory(status);
CREATE INDEX IF NOT EXISTS idx_inventory_category ON inventory(category);
CREATE INDEX IF NOT EXISTS idx_inventory_purchase_date ON inventory(purchase_date);

CREATE TABLE IF NOT EXISTS sales (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	inventory_id   INTEGER NOT NULL,
	product_name   TEXT NOT NULL,
	category       TEXT NOT NULL DEFAULT '',
	manufacturer   TEXT NOT NULL DEFAULT '',
	purchase_price REAL,
	sale_price     REAL NOT NULL,
	sale_date      TEXT NOT NULL,
	customer_name  TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT '',
	created_at     TEXT NOT NULL DEFAULT (datetime('now', 'localtime'))
);

CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales(sale_date);

CREATE TABLE IF NOT EXISTS purchase_history (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	inventory_id    INTEGER NOT NULL,
	product_name    TEXT NOT NULL,
	model_number    TEXT NOT NULL DEFAULT '',
	serial_number   TEXT NOT NULL DEFAULT '',
	supplier_name   TEXT NOT NULL DEFAULT '',
	purchase_date   TEXT NOT NULL,
	wholesale_price REAL NOT NULL,
	wholesale_rate  REAL,
	quantity        INTEGER NOT NULL DEFAULT 1,
	notes           TEXT NOT NULL DEFAULT '',
	created_at      TEXT NOT NULL DEFAULT (datetime('now', 'localtime'))
);

CREATE TABLE IF NOT EXISTS suppliers (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL UNIQUE,
	phone      TEXT NOT NULL DEFAULT '',
	email      TEXT NOT NULL DEFAULT '',
	address    TEXT NOT NULL DEFAULT '',
	notes      TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT (datetime('now', 'localtime')),
	updated_at TEXT NOT NULL DEFAULT (datetime('now', 'localtime'))
);

CREATE TABLE IF NOT EXISTS invoices (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	file_name     TEXT NOT NULL,
	file_url      TEXT NOT NULL DEFAULT '',
	supplier_name TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL DEFAULT 'completed',
	total_items   INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL DEFAULT (datetime('now', 'localtime'))
);
`

// InitDatabase はデータベーススキーマを適用します。
// すべて CREATE IF NOT EXISTS なので起動のたびに呼んで問題ありません。
func InitDatabase(db *sqlx.DB) error {
	log.Println("Applying database schema...")
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	log.Println("Schema applied successfully.")
	return nil
}
