// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\routes.go
package main

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"gakki/aiextract"
	"gakki/automation"
	"gakki/disposal"
	"gakki/inventory"
	"gakki/reports"
	"gakki/sales"
	"gakki/storage"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB) {

	mux.HandleFunc("/api/inventory/list", inventory.ListHandler(dbConn))
	mux.HandleFunc("/api/inventory/get/", inventory.GetHandler(dbConn))
	mux.HandleFunc("/api/inventory/create", inventory.CreateHandler(dbConn))
	mux.HandleFunc("/api/inventory/update/", inventory.UpdateHandler(dbConn))
	mux.HandleFunc("/api/inventory/delete/", inventory.DeleteHandler(dbConn))

	mux.HandleFunc("/api/inventory/csv/parse", inventory.ParseCSVHandler())
	mux.HandleFunc("/api/inventory/csv/import", inventory.ImportCSVHandler(dbConn))
	mux.HandleFunc("/api/inventory/csv/sample", inventory.SampleCSVHandler())
	mux.HandleFunc("/api/inventory/csv/export", inventory.ExportCSVHandler(dbConn))

	mux.HandleFunc("/api/sales/record", sales.RecordHandler(dbConn))
	mux.HandleFunc("/api/sales/list", sales.ListHandler(dbConn))

	mux.HandleFunc("/api/reports/summary", reports.SummaryHandler(dbConn))
	mux.HandleFunc("/api/reports/csv/category", reports.CategoryCSVHandler(dbConn))
	mux.HandleFunc("/api/reports/csv/detail", reports.DetailCSVHandler(dbConn))
	mux.HandleFunc("/api/reports/excel", reports.ExcelHandler(dbConn))

	mux.HandleFunc("/api/disposal/candidates", disposal.CandidatesHandler(dbConn))
	mux.HandleFunc("/api/disposal/export", disposal.ExportCSVHandler(dbConn))

	mux.HandleFunc("/api/dashboard/stats", DashboardStatsHandler(dbConn))

	mux.HandleFunc("/api/invoices/extract", aiextract.ExtractHandler(dbConn))
	mux.HandleFunc("/api/invoices/list", aiextract.ListInvoicesHandler(dbConn))

	mux.HandleFunc("/api/storage/upload", storage.UploadHandler())

	mux.HandleFunc("/api/suppliers/list", ListSuppliersHandler(dbConn))
	mux.HandleFunc("/api/suppliers/create", CreateSupplierHandler(dbConn))
	mux.HandleFunc("/api/suppliers/delete/", DeleteSupplierHandler(dbConn))

	mux.HandleFunc("/api/purchase_history", PurchaseHistoryHandler(dbConn))

	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			GetConfigHandler()(w, r)
		case http.MethodPost:
			SaveConfigHandler()(w, r)
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/automation/pricelist/download", automation.DownloadPriceListHandler())
}
