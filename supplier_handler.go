// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\supplier_handler.go
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"gakki/database"
	"gakki/model"
)

// ListSuppliersHandler は仕入先一覧を返します
func ListSuppliersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suppliers, err := database.GetAllSuppliers(db)
		if err != nil {
			log.Printf("Error getting all suppliers: %v", err)
			http.Error(w, "仕入先一覧の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(suppliers)
	}
}

// CreateSupplierHandler は新しい仕入先を作成します
func CreateSupplierHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input model.Supplier
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "リクエストが不正です。", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(input.Name) == "" {
			http.Error(w, "仕入先名は必須です。", http.StatusBadRequest)
			return
		}

		id, err := database.CreateSupplier(db, input)
		if err != nil {
			log.Printf("Error creating supplier (Name: %s): %v", input.Name, err)
			http.Error(w, "仕入先の作成に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{"message": "作成しました。", "id": id})
	}
}

// DeleteSupplierHandler は仕入先を削除します
func DeleteSupplierHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// URLからIDを取得 (例: /api/suppliers/delete/3)
		idStr := strings.TrimPrefix(r.URL.Path, "/api/suppliers/delete/")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "削除する仕入先IDが不正です。", http.StatusBadRequest)
			return
		}

		if err := database.DeleteSupplier(db, id); err != nil {
			log.Printf("Error deleting supplier (id: %d): %v", id, err)
			http.Error(w, "仕入先の削除に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "削除しました。"})
	}
}
