// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\model\report_types.go
package model

// CategorySummary はカテゴリ別の在庫集計です。
type CategorySummary struct {
	Category      string  `db:"category" json:"category"`
	Count         int     `db:"count" json:"count"`
	PurchaseValue float64 `db:"purchase_value" json:"purchaseValue"`
	RetailValue   float64 `db:"retail_value" json:"retailValue"`
	GrossProfit   float64 `json:"grossProfit"`
}

// ReportSummary は銀行レポート用の全体集計です。
type ReportSummary struct {
	TotalItems         int               `json:"totalItems"`
	TotalPurchaseValue float64           `json:"totalPurchaseValue"`
	TotalRetailValue   float64           `json:"totalRetailValue"`
	ByCategory         []CategorySummary `json:"byCategory"`
}

// DisposalCandidate は処分候補1件です。
type DisposalCandidate struct {
	InventoryItem
	DaysOld        int    `json:"daysOld"`
	Level          string `json:"level"`
	Recommendation string `json:"recommendation"`
}

// DashboardStats はダッシュボード表示用の統計です。
type DashboardStats struct {
	TotalItems         int            `json:"totalItems"`
	UnsoldItems        int            `json:"unsoldItems"`
	TotalPurchaseValue float64        `json:"totalPurchaseValue"`
	TotalRetailValue   float64        `json:"totalRetailValue"`
	ByStatus           map[string]int `json:"byStatus"`
	MonthlySalesTotal  float64        `json:"monthlySalesTotal"`
	MonthlySalesCount  int            `json:"monthlySalesCount"`
}
