// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\model\csv_types.go
package model

// CSVProduct はCSV取込1行分の正規化済み商品データです。
// この段階では数値系もすべて文字列のまま保持し、数値変換は登録処理側で行います。
type CSVProduct struct {
	Category       string `json:"category"`
	ProductName    string `json:"productName"`
	Manufacturer   string `json:"manufacturer"`
	ModelNumber    string `json:"modelNumber"`
	Color          string `json:"color"`
	SerialNumber   string `json:"serialNumber"`
	Condition      string `json:"condition"`
	Price          string `json:"price"`
	WholesalePrice string `json:"wholesalePrice"`
	WholesaleRate  string `json:"wholesaleRate"`
	PurchaseDate   string `json:"purchaseDate"`
	Supplier       string `json:"supplier"`
	ListPrice      string `json:"listPrice"`
	GrossMargin    string `json:"grossMargin"`
	Notes          string `json:"notes"`
	Status         string `json:"status"`
}

// ValidationError はCSV取込時の1件の検証エラーです。
// Row はスプレッドシート上の行番号（ヘッダー行=1、最初のデータ行=2）。
// ヘッダー不備・ファイル読込エラーは Row=0 で報告します。
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseResult はCSV取込の解析結果です。
type ParseResult struct {
	Success   bool              `json:"success"`
	Products  []CSVProduct      `json:"products"`
	Errors    []ValidationError `json:"errors"`
	TotalRows int               `json:"totalRows"`
}
