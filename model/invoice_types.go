// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\model\invoice_types.go
package model

// ExtractedItem はAIが請求書画像から抽出した1明細です。
// CSV取込の CSVProduct とは独立した形で、突き合わせは行いません。
type ExtractedItem struct {
	Category      string  `json:"category"`
	ProductName   string  `json:"product_name"`
	Manufacturer  string  `json:"manufacturer"`
	ModelNumber   string  `json:"model_number"`
	Color         string  `json:"color"`
	RetailPrice   float64 `json:"retail_price"`
	PurchasePrice float64 `json:"purchase_price"`
	Quantity      int     `json:"quantity"`
	PurchaseDate  string  `json:"purchase_date"`
	SupplierName  string  `json:"supplier_name"`
}

// InvoiceRecord は取込済み請求書の管理レコードです。
type InvoiceRecord struct {
	ID           int64  `db:"id" json:"id"`
	FileName     string `db:"file_name" json:"fileName"`
	FileURL      string `db:"file_url" json:"fileUrl"`
	SupplierName string `db:"supplier_name" json:"supplierName"`
	Status       string `db:"status" json:"status"`
	TotalItems   int    `db:"total_items" json:"totalItems"`
	CreatedAt    string `db:"created_at" json:"createdAt"`
}
