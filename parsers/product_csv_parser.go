// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\parsers\product_csv_parser.go
package parsers

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gakki/model"
)

// RequiredFields は値が必須のCSV列です。現状は商品名のみ。
var RequiredFields = []string{"product_name"}

// ValidCategories はCSV取込で許可するカテゴリの固定語彙です。
// 手入力フォーム側のカテゴリとは独立した語彙として扱います。
var ValidCategories = []string{
	"ギター",
	"ベース",
	"ドラム",
	"キーボード・ピアノ",
	"エフェクター",
	"アンプ",
	"その他",
}

// ValidConditions は商品状態の固定語彙です。
var ValidConditions = []string{"新品", "中古", "展示品", "ジャンク"}

var numericFields = []string{"price", "wholesale_price", "list_price", "gross_margin"}

// 形式チェックのみ（2024-02-30 のような暦上あり得ない日付も通します）
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseProductCSV は商品CSVを解析し、正規化済み商品と検証エラーを返します。
//
// データ不備で失敗（エラーを投げる）ことはなく、すべて ParseResult.Errors に
// 集めます。行が除外されるのは product_name が空の場合だけで、それ以外の
// エラー（カテゴリ不正・数値不正など）は行を残したままフラグ付けします。
// 除外より人間のレビューで直すほうが安全なためです。
func ParseProductCSV(r io.Reader) model.ParseResult {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		// ファイルレベルの失敗。部分結果は返しません。
		return model.ParseResult{
			Success:  false,
			Products: []model.CSVProduct{},
			Errors: []model.ValidationError{{
				Row:     0,
				Field:   "file",
				Message: "CSVファイルの読み込みエラー: " + err.Error(),
			}},
			TotalRows: 0,
		}
	}

	var header []string
	var data [][]string
	if len(records) > 0 {
		header = records[0]
		data = records[1:]
	}

	headerSet := make(map[string]bool)
	for _, name := range header {
		headerSet[strings.TrimSpace(name)] = true
	}

	errors := []model.ValidationError{}
	products := []model.CSVProduct{}

	// ヘッダー検証（不足してもデータ行の処理は続行）
	var missingRequired []string
	for _, field := range RequiredFields {
		if !headerSet[field] {
			missingRequired = append(missingRequired, field)
		}
	}
	if len(missingRequired) > 0 {
		errors = append(errors, model.ValidationError{
			Row:     0,
			Field:   "header",
			Message: "必須フィールドが不足しています: " + strings.Join(missingRequired, ", "),
		})
	}

	for i, rec := range data {
		row := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(rec) {
				row[strings.TrimSpace(name)] = rec[j]
			}
		}

		rowNumber := i + 2 // ヘッダー行 + 0始まり補正
		rowErrors := validateRow(row, rowNumber)
		errors = append(errors, rowErrors...)

		include := true
		for _, e := range rowErrors {
			if e.Field == "product_name" {
				include = false
				break
			}
		}
		if include {
			products = append(products, normalizeProduct(row))
		}
	}

	return model.ParseResult{
		Success:   len(errors) == 0,
		Products:  products,
		Errors:    errors,
		TotalRows: len(data),
	}
}

func validateRow(row map[string]string, rowNumber int) []model.ValidationError {
	var errors []model.ValidationError

	get := func(field string) string {
		return strings.TrimSpace(row[field])
	}

	for _, field := range RequiredFields {
		if get(field) == "" {
			errors = append(errors, model.ValidationError{
				Row:     rowNumber,
				Field:   field,
				Message: field + "は必須項目です",
			})
		}
	}

	if v := get("category"); v != "" && !contains(ValidCategories, v) {
		errors = append(errors, model.ValidationError{
			Row:     rowNumber,
			Field:   "category",
			Message: "無効なカテゴリです。有効な値: " + strings.Join(ValidCategories, ", "),
		})
	}

	if v := get("condition"); v != "" && !contains(ValidConditions, v) {
		errors = append(errors, model.ValidationError{
			Row:     rowNumber,
			Field:   "condition",
			Message: "無効な状態です。有効な値: " + strings.Join(ValidConditions, ", "),
		})
	}

	for _, field := range numericFields {
		if v := get(field); v != "" {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				errors = append(errors, model.ValidationError{
					Row:     rowNumber,
					Field:   field,
					Message: field + "は数値で入力してください",
				})
			}
		}
	}

	if v := get("wholesale_rate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 || rate > 100 {
			errors = append(errors, model.ValidationError{
				Row:     rowNumber,
				Field:   "wholesale_rate",
				Message: "wholesale_rateは0-100の数値で入力してください",
			})
		}
	}

	if v := get("purchase_date"); v != "" && !dateRegex.MatchString(v) {
		errors = append(errors, model.ValidationError{
			Row:     rowNumber,
			Field:   "purchase_date",
			Message: "purchase_dateはYYYY-MM-DD形式で入力してください",
		})
	}

	return errors
}

func normalizeProduct(row map[string]string) model.CSVProduct {
	get := func(field string) string {
		return strings.TrimSpace(row[field])
	}

	p := model.CSVProduct{
		Category:       get("category"),
		ProductName:    get("product_name"),
		Manufacturer:   get("manufacturer"),
		ModelNumber:    get("model_number"),
		Color:          get("color"),
		SerialNumber:   get("serial_number"),
		Condition:      get("condition"),
		Price:          get("price"),
		WholesalePrice: get("wholesale_price"),
		WholesaleRate:  get("wholesale_rate"),
		PurchaseDate:   get("purchase_date"),
		Supplier:       get("supplier"),
		ListPrice:      get("list_price"),
		GrossMargin:    get("gross_margin"),
		Notes:          get("notes"),
		Status:         get("status"),
	}
	if p.Category == "" {
		p.Category = "その他"
	}
	if p.Condition == "" {
		p.Condition = "新品"
	}
	if p.Status == "" {
		p.Status = "販売中"
	}
	return p
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
