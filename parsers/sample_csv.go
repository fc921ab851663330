// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\parsers\sample_csv.go
package parsers

import (
	"strings"

	"gakki/model"
)

// CSVHeaders は商品CSVの正準列順です。
// パーサー・サンプル・シリアライザで共有します（往復変換が崩れないように）。
var CSVHeaders = []string{
	"category",
	"product_name",
	"manufacturer",
	"model_number",
	"color",
	"serial_number",
	"condition",
	"price",
	"wholesale_price",
	"wholesale_rate",
	"purchase_date",
	"supplier",
	"list_price",
	"gross_margin",
	"notes",
	"status",
}

var sampleRows = [][]string{
	{
		"ギター", "Stratocaster", "Fender", "ST-62",
		"ヴィンテージサンバースト", "V123456", "中古",
		"85000", "60000", "50.0", "2024-01-15",
		"楽器商事", "120000", "25000", "ソフトケース付き", "販売中",
	},
	{
		"ベース", "Jazz Bass", "Fender", "JB-62",
		"ブラック", "", "新品",
		"120000", "90000", "50.0", "2024-02-01",
		"島村楽器", "180000", "30000", "", "販売中",
	},
	{
		"ドラム", "Stage Custom", "YAMAHA", "SBP2F5",
		"ナチュラル", "", "中古",
		"75000", "50000", "50.0", "2024-01-20",
		"ヤマハ", "100000", "25000", "シンバル別売", "販売中",
	},
	{
		"キーボード・ピアノ", "Clavinova", "YAMAHA", "CLP-735",
		"ホワイト", "", "展示品",
		"180000", "125000", "50.0", "2024-01-10",
		"ヤマハ", "250000", "55000", "椅子付き", "展示中",
	},
}

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// GenerateSampleCSV はダウンロード用のテンプレートCSVを返します。
func GenerateSampleCSV() string {
	lines := []string{strings.Join(CSVHeaders, ",")}
	for _, row := range sampleRows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = quoteAll(cell)
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// ProductsToCSV は商品リストをCSVテキストに変換します。
// 全フィールドをクォートするため、パーサーとの往復で値が崩れません。
func ProductsToCSV(products []model.CSVProduct) string {
	lines := []string{strings.Join(CSVHeaders, ",")}
	for _, p := range products {
		cells := make([]string, len(CSVHeaders))
		for i, h := range CSVHeaders {
			cells[i] = quoteAll(csvFieldValue(p, h))
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

func csvFieldValue(p model.CSVProduct, field string) string {
	switch field {
	case "category":
		return p.Category
	case "product_name":
		return p.ProductName
	case "manufacturer":
		return p.Manufacturer
	case "model_number":
		return p.ModelNumber
	case "color":
		return p.Color
	case "serial_number":
		return p.SerialNumber
	case "condition":
		return p.Condition
	case "price":
		return p.Price
	case "wholesale_price":
		return p.WholesalePrice
	case "wholesale_rate":
		return p.WholesaleRate
	case "purchase_date":
		return p.PurchaseDate
	case "supplier":
		return p.Supplier
	case "list_price":
		return p.ListPrice
	case "gross_margin":
		return p.GrossMargin
	case "notes":
		return p.Notes
	case "status":
		return p.Status
	}
	return ""
}
