// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\model\inventory_types.go
package model

// InventoryItem は在庫テーブルの1商品です。
// 金額系のNULL許容カラムはポインタで受けます（未入力と0を区別するため）。
type InventoryItem struct {
	ID             int64    `db:"id" json:"id"`
	Category       string   `db:"category" json:"category"`
	ProductName    string   `db:"product_name" json:"productName"`
	Manufacturer   string   `db:"manufacturer" json:"manufacturer"`
	ModelNumber    string   `db:"model_number" json:"modelNumber"`
	Color          string   `db:"color" json:"color"`
	SerialNumber   string   `db:"serial_number" json:"serialNumber"`
	Condition      string   `db:"condition" json:"condition"`
	Price          float64  `db:"price" json:"price"`
	WholesalePrice *float64 `db:"wholesale_price" json:"wholesalePrice"`
	WholesaleRate  *float64 `db:"wholesale_rate" json:"wholesaleRate"`
	PurchaseDate   string   `db:"purchase_date" json:"purchaseDate"`
	SupplierName   string   `db:"supplier_name" json:"supplierName"`
	ListPrice      *float64 `db:"list_price" json:"listPrice"`
	GrossMargin    *float64 `db:"gross_margin" json:"grossMargin"`
	Notes          string   `db:"notes" json:"notes"`
	Status         string   `db:"status" json:"status"`
	ImageURL       string   `db:"image_url" json:"imageUrl"`
	CreatedAt      string   `db:"created_at" json:"createdAt"`
	UpdatedAt      string   `db:"updated_at" json:"updatedAt"`
}

// InventoryInput は在庫の新規登録・更新で受け取る入力です。
type InventoryInput struct {
	Category       string   `json:"category"`
	ProductName    string   `json:"productName"`
	Manufacturer   string   `json:"manufacturer"`
	ModelNumber    string   `json:"modelNumber"`
	Color          string   `json:"color"`
	SerialNumber   string   `json:"serialNumber"`
	Condition      string   `json:"condition"`
	Price          float64  `json:"price"`
	WholesalePrice *float64 `json:"wholesalePrice"`
	WholesaleRate  *float64 `json:"wholesaleRate"`
	PurchaseDate   string   `json:"purchaseDate"`
	SupplierName   string   `json:"supplierName"`
	ListPrice      *float64 `json:"listPrice"`
	GrossMargin    *float64 `json:"grossMargin"`
	Notes          string   `json:"notes"`
	Status         string   `json:"status"`
	ImageURL       string   `json:"imageUrl"`
}

// InventorySearchFilter は一覧検索の条件です。
type InventorySearchFilter struct {
	Category string
	Status   string
	Keyword  string
}
