// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\sales\handler.go
package sales

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"gakki/database"
	"gakki/model"
)

// RecordHandler は売上を登録し、同一トランザクションで対象在庫を
// 売却済みに更新します
func RecordHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var input model.SaleInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if input.InventoryID == 0 {
			http.Error(w, "在庫IDは必須です。", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(input.SaleDate) == "" {
			http.Error(w, "売上日は必須です。", http.StatusBadRequest)
			return
		}

		item, err := database.GetInventoryByID(db, input.InventoryID)
		if err != nil {
			log.Printf("Error getting inventory for sale (id: %d): %v", input.InventoryID, err)
			http.Error(w, "在庫の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		if item == nil {
			http.Error(w, "指定された在庫が見つかりません。", http.StatusNotFound)
			return
		}
		if item.Status == "売却済" {
			http.Error(w, "この在庫はすでに売却済みです。", http.StatusConflict)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "データベーストランザクションの開始に失敗: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		saleID, err := database.InsertSaleInTx(tx, model.Sale{
			InventoryID:   item.ID,
			ProductName:   item.ProductName,
			Category:      item.Category,
			Manufacturer:  item.Manufacturer,
			PurchasePrice: item.WholesalePrice,
			SalePrice:     input.SalePrice,
			SaleDate:      input.SaleDate,
			CustomerName:  input.CustomerName,
			Notes:         input.Notes,
		})
		if err != nil {
			log.Printf("Error inserting sale (inventory id: %d): %v", item.ID, err)
			http.Error(w, "売上の登録に失敗しました。", http.StatusInternalServerError)
			return
		}

		if err := database.MarkInventorySoldInTx(tx, item.ID); err != nil {
			log.Printf("Error marking inventory sold (id: %d): %v", item.ID, err)
			http.Error(w, "在庫ステータスの更新に失敗しました。", http.StatusInternalServerError)
			return
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "売上登録の確定に失敗しました: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "売上を登録しました。", "id": saleID})
	}
}

// ListHandler は売上一覧を返します。startDate / endDate (YYYY-MM-DD) で
// 期間を絞り込めます。各行には粗利を付加します
func ListHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("startDate")
		endDate := r.URL.Query().Get("endDate")

		sales, err := database.GetSales(db, startDate, endDate)
		if err != nil {
			log.Printf("Error getting sales: %v", err)
			http.Error(w, "売上一覧の取得に失敗しました。", http.StatusInternalServerError)
			return
		}

		views := make([]model.SaleView, 0, len(sales))
		for _, s := range sales {
			view := model.SaleView{Sale: s, Profit: s.SalePrice}
			if s.PurchasePrice != nil {
				view.Profit = s.SalePrice - *s.PurchasePrice
			}
			views = append(views, view)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(views)
	}
}
