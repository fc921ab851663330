// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\inventory\handler.go
package inventory

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"gakki/database"
	"gakki/model"
	"gakki/parsers"
)

// ListHandler は在庫一覧を返します。category / status / keyword で絞り込めます
func ListHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := model.InventorySearchFilter{
			Category: r.URL.Query().Get("category"),
			Status:   r.URL.Query().Get("status"),
			Keyword:  r.URL.Query().Get("keyword"),
		}
		items, err := database.GetFilteredInventory(db, filter)
		if err != nil {
			log.Printf("Error getting inventory list: %v", err)
			http.Error(w, "在庫一覧の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(items)
	}
}

// GetHandler は在庫1件を返します (例: /api/inventory/get/3)
func GetHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r.URL.Path, "/api/inventory/get/")
		if err != nil {
			http.Error(w, "在庫IDが不正です。", http.StatusBadRequest)
			return
		}
		item, err := database.GetInventoryByID(db, id)
		if err != nil {
			log.Printf("Error getting inventory (id: %d): %v", id, err)
			http.Error(w, "在庫の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		if item == nil {
			http.Error(w, "指定された在庫が見つかりません。", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(item)
	}
}

// CreateHandler は在庫を新規登録します
func CreateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.InventoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(input.ProductName) == "" {
			http.Error(w, "商品名は必須です。", http.StatusBadRequest)
			return
		}

		id, err := database.InsertInventory(db, input)
		if err != nil {
			log.Printf("Error inserting inventory (%s): %v", input.ProductName, err)
			http.Error(w, "在庫の登録に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "登録しました。", "id": id})
	}
}

// UpdateHandler は在庫を更新します (例: /api/inventory/update/3)
func UpdateHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r.URL.Path, "/api/inventory/update/")
		if err != nil {
			http.Error(w, "在庫IDが不正です。", http.StatusBadRequest)
			return
		}
		var input model.InventoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(input.ProductName) == "" {
			http.Error(w, "商品名は必須です。", http.StatusBadRequest)
			return
		}

		if err := database.UpdateInventory(db, id, input); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "指定された在庫が見つかりません。", http.StatusNotFound)
				return
			}
			log.Printf("Error updating inventory (id: %d): %v", id, err)
			http.Error(w, "在庫の更新に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "更新しました。"})
	}
}

// DeleteHandler は在庫を削除します (例: /api/inventory/delete/3)
func DeleteHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idFromPath(r.URL.Path, "/api/inventory/delete/")
		if err != nil {
			http.Error(w, "在庫IDが不正です。", http.StatusBadRequest)
			return
		}
		if err := database.DeleteInventory(db, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "指定された在庫が見つかりません。", http.StatusNotFound)
				return
			}
			log.Printf("Error deleting inventory (id: %d): %v", id, err)
			http.Error(w, "在庫の削除に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "削除しました。"})
	}
}

// ParseCSVHandler はアップロードされたCSVを解析し、取込プレビュー用の
// 解析結果をそのまま返します。この段階ではDBには書き込みません
func ParseCSVHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "CSVファイルの読み取りに失敗: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		// Excel保存のShiftJIS CSVも受け付ける
		decoded, err := parsers.DecodeToUTF8(file)
		if err != nil {
			http.Error(w, "文字コードの変換に失敗しました。UTF-8またはShift_JISのCSVを指定してください。", http.StatusBadRequest)
			return
		}

		result := parsers.ParseProductCSV(decoded)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// ImportCSVHandler はプレビューで確定された商品リストを一括登録します。
// 仕入日と卸価格が両方入っている行は仕入履歴にも記録します
func ImportCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var input struct {
			Products []model.CSVProduct `json:"products"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if len(input.Products) == 0 {
			http.Error(w, "取込対象の商品がありません。", http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "データベーストランザクションの開始に失敗: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		ids, err := database.BulkInsertProductsInTx(tx, input.Products)
		if err != nil {
			log.Printf("Error bulk inserting products: %v", err)
			http.Error(w, "商品の一括登録に失敗しました。", http.StatusInternalServerError)
			return
		}

		var importErrors []string
		for i, p := range input.Products {
			wholesalePrice, parseErr := strconv.ParseFloat(strings.TrimSpace(p.WholesalePrice), 64)
			if strings.TrimSpace(p.PurchaseDate) == "" || parseErr != nil {
				continue
			}
			var rate *float64
			if v, rErr := strconv.ParseFloat(strings.TrimSpace(p.WholesaleRate), 64); rErr == nil {
				rate = &v
			}
			hErr := database.InsertPurchaseHistoryInTx(tx, model.PurchaseHistory{
				InventoryID:    ids[i],
				ProductName:    p.ProductName,
				ModelNumber:    p.ModelNumber,
				SerialNumber:   p.SerialNumber,
				SupplierName:   p.Supplier,
				PurchaseDate:   p.PurchaseDate,
				WholesalePrice: wholesalePrice,
				WholesaleRate:  rate,
				Quantity:       1,
			})
			if hErr != nil {
				log.Printf("WARN: failed to record purchase history (%s): %v", p.ProductName, hErr)
				importErrors = append(importErrors, fmt.Sprintf("%s: 仕入履歴の記録に失敗しました", p.ProductName))
			}
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "取込の確定に失敗しました: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if importErrors == nil {
			importErrors = []string{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":  true,
			"imported": len(ids),
			"errors":   importErrors,
		})
	}
}

// SampleCSVHandler は取込用CSVのテンプレートをダウンロードさせます
func SampleCSVHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileName := url.PathEscape("商品取込テンプレート.csv")
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+fileName)
		w.Write([]byte{0xEF, 0xBB, 0xBF})
		w.Write([]byte(strings.ReplaceAll(parsers.GenerateSampleCSV(), "\n", "\r\n")))
	}
}

// ExportCSVHandler は全在庫をバックアップCSVとしてダウンロードさせます
func ExportCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := database.GetAllInventoryForExport(db)
		if err != nil {
			log.Printf("Error getting inventory for export: %v", err)
			http.Error(w, "在庫データの取得に失敗しました。", http.StatusInternalServerError)
			return
		}

		products := make([]model.CSVProduct, 0, len(items))
		for _, item := range items {
			products = append(products, itemToCSVProduct(item))
		}

		fileName := fmt.Sprintf("在庫バックアップ_%s.csv", time.Now().Format("20060102_150405"))
		fileName = url.PathEscape(fileName)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+fileName)
		w.Write([]byte{0xEF, 0xBB, 0xBF})
		w.Write([]byte(strings.ReplaceAll(parsers.ProductsToCSV(products), "\n", "\r\n")))
	}
}

func itemToCSVProduct(item model.InventoryItem) model.CSVProduct {
	return model.CSVProduct{
		Category:       item.Category,
		ProductName:    item.ProductName,
		Manufacturer:   item.Manufacturer,
		ModelNumber:    item.ModelNumber,
		Color:          item.Color,
		SerialNumber:   item.SerialNumber,
		Condition:      item.Condition,
		Price:          strconv.FormatFloat(item.Price, 'f', -1, 64),
		WholesalePrice: formatNullable(item.WholesalePrice),
		WholesaleRate:  formatNullable(item.WholesaleRate),
		PurchaseDate:   item.PurchaseDate,
		Supplier:       item.SupplierName,
		ListPrice:      formatNullable(item.ListPrice),
		GrossMargin:    formatNullable(item.GrossMargin),
		Notes:          item.Notes,
		Status:         item.Status,
	}
}

func formatNullable(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func idFromPath(path, prefix string) (int64, error) {
	return strconv.ParseInt(strings.TrimPrefix(path, prefix), 10, 64)
}
