// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\inventory\handler_test.go
package inventory

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gakki/database"
	"gakki/loader"
	"gakki/model"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, loader.InitDatabase(db))
	return db
}

func multipartCSVRequest(t *testing.T, target, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "products.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestParseCSVHandler(t *testing.T) {
	csvContent := "product_name,category,price\n" +
		"ストラトキャスター,ギター,150000\n" +
		"変な商品,家電,abc\n"

	req := multipartCSVRequest(t, "/api/inventory/csv/parse", csvContent)
	rec := httptest.NewRecorder()
	ParseCSVHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result model.ParseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, 2, result.TotalRows)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "ストラトキャスター", result.Products[0].ProductName)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Row)
}

func TestParseCSVHandlerRequiresFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/csv/parse", strings.NewReader(""))
	rec := httptest.NewRecorder()
	ParseCSVHandler()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportCSVHandler(t *testing.T) {
	db := newTestDB(t)

	body := map[string]interface{}{
		"products": []model.CSVProduct{
			{
				ProductName:    "レスポール",
				Category:       "ギター",
				Price:          "350000",
				WholesalePrice: "200000",
				PurchaseDate:   "2024-03-01",
				Supplier:       "山田楽器卸",
			},
			{
				// 仕入日なし → 仕入履歴は作られない
				ProductName: "シールドケーブル",
				Price:       "3000",
			},
		},
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/csv/import", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	ImportCSVHandler(db)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool     `json:"success"`
		Imported int      `json:"imported"`
		Errors   []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Imported)
	assert.Empty(t, resp.Errors)

	items, err := database.GetFilteredInventory(db, model.InventorySearchFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	history, err := database.GetPurchaseHistory(db)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "レスポール", history[0].ProductName)
	assert.Equal(t, 200000.0, history[0].WholesalePrice)
}

func TestImportCSVHandlerEmptyProducts(t *testing.T) {
	db := newTestDB(t)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/csv/import",
		strings.NewReader(`{"products":[]}`))
	rec := httptest.NewRecorder()
	ImportCSVHandler(db)(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateGetUpdateDelete(t *testing.T) {
	db := newTestDB(t)

	createBody := `{"productName":"ジャズベース","category":"ベース","price":120000}`
	req := httptest.NewRequest(http.MethodPost, "/api/inventory/create", strings.NewReader(createBody))
	rec := httptest.NewRecorder()
	CreateHandler(db)(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Greater(t, created.ID, int64(0))

	req = httptest.NewRequest(http.MethodGet, "/api/inventory/get/1", nil)
	rec = httptest.NewRecorder()
	GetHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var item model.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, "ジャズベース", item.ProductName)

	updateBody := `{"productName":"ジャズベース","category":"ベース","price":99800,"status":"予約済"}`
	req = httptest.NewRequest(http.MethodPut, "/api/inventory/update/1", strings.NewReader(updateBody))
	rec = httptest.NewRecorder()
	UpdateHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := database.GetInventoryByID(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 99800.0, updated.Price)
	assert.Equal(t, "予約済", updated.Status)

	req = httptest.NewRequest(http.MethodDelete, "/api/inventory/delete/1", nil)
	rec = httptest.NewRecorder()
	DeleteHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	gone, err := database.GetInventoryByID(db, 1)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUpdateHandlerNotFound(t *testing.T) {
	db := newTestDB(t)

	req := httptest.NewRequest(http.MethodPut, "/api/inventory/update/999",
		strings.NewReader(`{"productName":"x"}`))
	rec := httptest.NewRecorder()
	UpdateHandler(db)(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateHandlerRequiresName(t *testing.T) {
	db := newTestDB(t)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory/create",
		strings.NewReader(`{"productName":"  ","price":100}`))
	rec := httptest.NewRecorder()
	CreateHandler(db)(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListHandlerFilters(t *testing.T) {
	db := newTestDB(t)

	_, err := database.InsertInventory(db, model.InventoryInput{ProductName: "ギターA", Category: "ギター"})
	require.NoError(t, err)
	_, err = database.InsertInventory(db, model.InventoryInput{ProductName: "ベースB", Category: "ベース"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/list?category=ベース", nil)
	rec := httptest.NewRecorder()
	ListHandler(db)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []model.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "ベースB", items[0].ProductName)
}

func TestSampleCSVHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/inventory/csv/sample", nil)
	rec := httptest.NewRecorder()
	SampleCSVHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.Bytes()
	// Excel用のUTF-8 BOMとCRLF
	assert.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(body), "\r\n")
	assert.Contains(t, string(body), "product_name")
	assert.Contains(t, string(body), `"Stratocaster"`)
}

func TestExportCSVHandler(t *testing.T) {
	db := newTestDB(t)

	wholesale := 90000.0
	_, err := database.InsertInventory(db, model.InventoryInput{
		ProductName:    "ストラトキャスター",
		Category:       "ギター",
		Price:          150000,
		WholesalePrice: &wholesale,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/csv/export", nil)
	rec := httptest.NewRecorder()
	ExportCSVHandler(db)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFF"))
	assert.Contains(t, body, `"ストラトキャスター"`)
	assert.Contains(t, body, `"150000"`)
	assert.Contains(t, body, `"90000"`)
}
