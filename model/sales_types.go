// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\model\sales_types.go
package model

// Sale は売上テーブルの1レコードです。
type Sale struct {
	ID            int64    `db:"id" json:"id"`
	InventoryID   int64    `db:"inventory_id" json:"inventoryId"`
	ProductName   string   `db:"product_name" json:"productName"`
	Category      string   `db:"category" json:"category"`
	Manufacturer  string   `db:"manufacturer" json:"manufacturer"`
	PurchasePrice *float64 `db:"purchase_price" json:"purchasePrice"`
	SalePrice     float64  `db:"sale_price" json:"salePrice"`
	SaleDate      string   `db:"sale_date" json:"saleDate"`
	CustomerName  string   `db:"customer_name" json:"customerName"`
	Notes         string   `db:"notes" json:"notes"`
	CreatedAt     string   `db:"created_at" json:"createdAt"`
}

// SaleView は一覧表示用に利益を付加した売上です。
type SaleView struct {
	Sale
	Profit float64 `json:"profit"`
}

// SaleInput は売上登録の入力です。
type SaleInput struct {
	InventoryID  int64   `json:"inventoryId"`
	SalePrice    float64 `json:"salePrice"`
	SaleDate     string  `json:"saleDate"`
	CustomerName string  `json:"customerName"`
	Notes        string  `json:"notes"`
}

// PurchaseHistory は仕入履歴テーブルの1レコードです。
// CSV取込時に仕入日と卸価格が両方入っている行だけ記録されます。
type PurchaseHistory struct {
	ID             int64    `db:"id" json:"id"`
	InventoryID    int64    `db:"inventory_id" json:"inventoryId"`
	ProductName    string   `db:"product_name" json:"productName"`
	ModelNumber    string   `db:"model_number" json:"modelNumber"`
	SerialNumber   string   `db:"serial_number" json:"serialNumber"`
	SupplierName   string   `db:"supplier_name" json:"supplierName"`
	PurchaseDate   string   `db:"purchase_date" json:"purchaseDate"`
	WholesalePrice float64  `db:"wholesale_price" json:"wholesalePrice"`
	WholesaleRate  *float64 `db:"wholesale_rate" json:"wholesaleRate"`
	Quantity       int      `db:"quantity" json:"quantity"`
	Notes          string   `db:"notes" json:"notes"`
	CreatedAt      string   `db:"created_at" json:"createdAt"`
}
