// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\dashboard_handler.go
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"gakki/database"
)

// DashboardStatsHandler はダッシュボード表示用の統計を返します。
// month (YYYY-MM) を省略すると当月の売上を集計します
func DashboardStatsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")
		if month == "" {
			month = time.Now().Format("2006-01")
		}

		stats, err := database.GetDashboardStats(db, month)
		if err != nil {
			log.Printf("Error getting dashboard stats: %v", err)
			http.Error(w, "統計の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

// PurchaseHistoryHandler は仕入履歴の一覧を返します
func PurchaseHistoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := database.GetPurchaseHistory(db)
		if err != nil {
			log.Printf("Error getting purchase history: %v", err)
			http.Error(w, "仕入履歴の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}
