// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\aiextract\handler.go
package aiextract

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"gakki/config"
	"gakki/database"
	"gakki/model"
)

const maxInvoiceImageSize = 10 << 20 // 10MB

// ExtractHandler は請求書画像をAIで解析し、抽出された明細を返します。
// 処理した画像は invoices テーブルに記録します
func ExtractHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		apiKey := config.GeminiAPIKey()
		if apiKey == "" {
			http.Error(w, "GEMINI_API_KEY が設定されていません。", http.StatusServiceUnavailable)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxInvoiceImageSize)
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "画像ファイルの読み取りに失敗: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "画像ファイルの読み取りに失敗: "+err.Error(), http.StatusBadRequest)
			return
		}

		mimeType := http.DetectContentType(data)
		if !isSupportedImage(mimeType) {
			http.Error(w, "現在は画像ファイル（JPEG、PNG、WebP）のみ対応しています。PDFの場合は、スクリーンショットや写真として保存してアップロードしてください。", http.StatusBadRequest)
			return
		}

		extractor, err := NewExtractor(r.Context(), apiKey)
		if err != nil {
			log.Printf("Error creating AI extractor: %v", err)
			http.Error(w, "AIクライアントの初期化に失敗しました。", http.StatusInternalServerError)
			return
		}
		defer extractor.Close()

		items, err := extractor.ExtractInvoice(r.Context(), mimeType, data)
		if err != nil {
			log.Printf("Error extracting invoice (%s): %v", header.Filename, err)
			http.Error(w, "AI解析に失敗しました: "+err.Error(), http.StatusInternalServerError)
			return
		}

		supplierName := ""
		if len(items) > 0 {
			supplierName = items[0].SupplierName
		}
		if _, err := database.InsertInvoiceRecord(db, model.InvoiceRecord{
			FileName:     header.Filename,
			SupplierName: supplierName,
			Status:       "completed",
			TotalItems:   len(items),
		}); err != nil {
			// 記録失敗は解析結果の返却を妨げない
			log.Printf("WARN: failed to record invoice (%s): %v", header.Filename, err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"items":   items,
			"message": "AI解析が完了しました",
		})
	}
}

// ListInvoicesHandler は解析済み請求書の一覧を返します
func ListInvoicesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoices, err := database.GetAllInvoices(db)
		if err != nil {
			log.Printf("Error getting invoices: %v", err)
			http.Error(w, "請求書一覧の取得に失敗しました。", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(invoices)
	}
}

func isSupportedImage(mimeType string) bool {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/png", "image/webp":
		return true
	}
	return false
}
