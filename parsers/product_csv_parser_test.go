// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\parsers\product_csv_parser_test.go
package parsers

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gakki/model"
)

func parseString(t *testing.T, csvText string) model.ParseResult {
	t.Helper()
	return ParseProductCSV(strings.NewReader(csvText))
}

func TestParseProductCSV_ValidRows(t *testing.T) {
	csvText := "category,product_name,manufacturer,price\n" +
		"ギター,Les Paul,Gibson,250000\n" +
		"ベース,Precision Bass,Fender,110000\n"

	result := parseString(t, csvText)

	require.True(t, result.Success)
	require.Empty(t, result.Errors)
	require.Len(t, result.Products, 2)
	assert.Equal(t, 2, result.TotalRows)

	assert.Equal(t, "ギター", result.Products[0].Category)
	assert.Equal(t, "Les Paul", result.Products[0].ProductName)
	assert.Equal(t, "Gibson", result.Products[0].Manufacturer)
	assert.Equal(t, "250000", result.Products[0].Price)
}

func TestParseProductCSV_Defaults(t *testing.T) {
	csvText := "product_name\nStratocaster\n"

	result := parseString(t, csvText)

	require.Len(t, result.Products, 1)
	p := result.Products[0]
	assert.Equal(t, "その他", p.Category)
	assert.Equal(t, "新品", p.Condition)
	assert.Equal(t, "販売中", p.Status)
	assert.Equal(t, "", p.Color)
	assert.Equal(t, "", p.Notes)
}

func TestParseProductCSV_RowNumbering(t *testing.T) {
	// 最初のデータ行はスプレッドシート上の2行目として報告される
	csvText := "product_name,category\n" +
		"Telecaster,ギター\n" +
		"Jaguar,謎カテゴリ\n"

	result := parseString(t, csvText)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, "category", result.Errors[0].Field)
}

func TestParseProductCSV_SoftFailInclusion(t *testing.T) {
	// カテゴリ不正の行は、エラー付きのまま商品リストに残る
	csvText := "product_name,category,price\n" +
		"Telecaster,家電,100000\n"

	result := parseString(t, csvText)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "category", result.Errors[0].Field)

	require.Len(t, result.Products, 1)
	// 不正値はそのまま通す（下流のレビュー画面で修正する前提）
	assert.Equal(t, "家電", result.Products[0].Category)
}

func TestParseProductCSV_MissingProductNameDropsRow(t *testing.T) {
	csvText := "product_name,category\n" +
		"Telecaster,ギター\n" +
		",ベース\n" +
		"   ,ドラム\n" +
		"Jazz Bass,ベース\n"

	result := parseString(t, csvText)

	assert.False(t, result.Success)
	require.Len(t, result.Products, 2)
	assert.Equal(t, 4, result.TotalRows)

	// 落ちた行数 = totalRows - products
	dropped := result.TotalRows - len(result.Products)
	assert.Equal(t, 2, dropped)

	for _, e := range result.Errors {
		assert.Equal(t, "product_name", e.Field)
	}
}

func TestParseProductCSV_MultipleErrorsCollectedPerRow(t *testing.T) {
	// 1行の全チェックを実行し、エラーを全件収集する（最初のエラーで打ち切らない）
	csvText := "product_name,category,condition,price,wholesale_rate,purchase_date\n" +
		"Strat,家電,ボロボロ,たかい,200,2024/01/15\n"

	result := parseString(t, csvText)

	require.Len(t, result.Products, 1)

	fields := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t,
		[]string{"category", "condition", "price", "wholesale_rate", "purchase_date"},
		fields)
}

func TestParseProductCSV_NumericFields(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"integer", "85000", false},
		{"decimal", "85000.5", false},
		{"negative", "-100", false},
		{"exponent", "1e4", false},
		{"text", "八万円", true},
		{"mixed", "85000円", true},
		{"whitespace only is treated as absent", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csvText := "product_name,price\n" +
				quoteAll("Strat") + "," + quoteAll(tt.value) + "\n"
			result := parseString(t, csvText)

			if tt.wantErr {
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "price", result.Errors[0].Field)
			} else {
				assert.Empty(t, result.Errors)
			}
			// 数値エラーでも行は残る
			assert.Len(t, result.Products, 1)
		})
	}
}

func TestParseProductCSV_WholesaleRateBoundaries(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"0", false},
		{"100", false},
		{"50.5", false},
		{"100.01", true},
		{"-1", true},
		{"abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			csvText := "product_name,wholesale_rate\nStrat," + tt.value + "\n"
			result := parseString(t, csvText)

			if tt.wantErr {
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "wholesale_rate", result.Errors[0].Field)
			} else {
				assert.Empty(t, result.Errors)
			}
		})
	}
}

func TestParseProductCSV_PurchaseDateFormatOnly(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"2024-01-15", false},
		// 形式チェックのみ。暦として不正でもパターンに合えば通す
		{"2024-13-40", false},
		{"2024/01/15", true},
		{"24-01-15", true},
		{"2024-1-5", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			csvText := "product_name,purchase_date\nStrat," + tt.value + "\n"
			result := parseString(t, csvText)

			if tt.wantErr {
				require.Len(t, result.Errors, 1)
				assert.Equal(t, "purchase_date", result.Errors[0].Field)
			} else {
				assert.Empty(t, result.Errors)
			}
		})
	}
}

func TestParseProductCSV_MissingRequiredHeader(t *testing.T) {
	// ヘッダーに product_name がない場合: ヘッダーエラー1件 + 各行の必須エラー
	csvText := "name,category\n" +
		"Telecaster,ギター\n" +
		"Jazz Bass,ベース\n"

	result := parseString(t, csvText)

	assert.False(t, result.Success)
	assert.Empty(t, result.Products)
	assert.Equal(t, 2, result.TotalRows)

	var headerErrors, rowErrors []model.ValidationError
	for _, e := range result.Errors {
		if e.Field == "header" {
			headerErrors = append(headerErrors, e)
		} else {
			rowErrors = append(rowErrors, e)
		}
	}

	require.Len(t, headerErrors, 1)
	assert.Equal(t, 0, headerErrors[0].Row)
	assert.Contains(t, headerErrors[0].Message, "product_name")

	// 別名の列は単に「無い」扱いになり、行レベルの必須エラーも全行に付く
	require.Len(t, rowErrors, 2)
	assert.Equal(t, 2, rowErrors[0].Row)
	assert.Equal(t, "product_name", rowErrors[0].Field)
	assert.Equal(t, 3, rowErrors[1].Row)
}

func TestParseProductCSV_EmptyFile(t *testing.T) {
	result := parseString(t, "")

	assert.False(t, result.Success)
	assert.Empty(t, result.Products)
	assert.Equal(t, 0, result.TotalRows)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "header", result.Errors[0].Field)
}

func TestParseProductCSV_SkipsBlankLines(t *testing.T) {
	csvText := "product_name\n\nStrat\n\n\nTele\n"

	result := parseString(t, csvText)

	assert.Equal(t, 2, result.TotalRows)
	assert.Len(t, result.Products, 2)
}

func TestParseProductCSV_TrimsValues(t *testing.T) {
	csvText := "product_name,manufacturer\n" +
		`"  Stratocaster  ","  Fender "` + "\n"

	result := parseString(t, csvText)

	require.Len(t, result.Products, 1)
	assert.Equal(t, "Stratocaster", result.Products[0].ProductName)
	assert.Equal(t, "Fender", result.Products[0].Manufacturer)
}

func TestParseProductCSV_BOM(t *testing.T) {
	csvText := "\uFEFFproduct_name,category\nStrat,ギター\n"

	result := parseString(t, csvText)

	require.True(t, result.Success)
	require.Len(t, result.Products, 1)
	assert.Equal(t, "Strat", result.Products[0].ProductName)
}

func TestParseProductCSV_QuotedFieldsWithCommasAndQuotes(t *testing.T) {
	csvText := "product_name,notes\n" +
		`"SG Standard","ケース付き, ""美品"" です"` + "\n"

	result := parseString(t, csvText)

	require.True(t, result.Success)
	require.Len(t, result.Products, 1)
	assert.Equal(t, `ケース付き, "美品" です`, result.Products[0].Notes)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("disk read failure")
}

func TestParseProductCSV_FileLevelFailure(t *testing.T) {
	result := ParseProductCSV(errReader{})

	assert.False(t, result.Success)
	assert.Empty(t, result.Products)
	assert.Equal(t, 0, result.TotalRows)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.Errors[0].Row)
	assert.Equal(t, "file", result.Errors[0].Field)
	assert.Contains(t, result.Errors[0].Message, "disk read failure")
}
