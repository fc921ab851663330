// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\storage\handler.go
package storage

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gakki/config"
)

const maxImageSize = 5 << 20 // 5MB

var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadHandler は商品画像を保存し、配信用URLを返します
func UploadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "画像ファイルの読み取りに失敗しました。5MB以下のファイルを指定してください。", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "画像ファイルの読み取りに失敗: "+err.Error(), http.StatusBadRequest)
			return
		}

		mimeType := http.DetectContentType(data)
		ext, ok := extByMIME[strings.ToLower(mimeType)]
		if !ok {
			http.Error(w, "JPEG、PNG、WebP形式の画像のみアップロードできます。", http.StatusBadRequest)
			return
		}

		uploadDir := config.GetConfig().UploadDir
		if uploadDir == "" {
			uploadDir = "./uploads"
		}
		if err := os.MkdirAll(uploadDir, 0755); err != nil {
			log.Printf("Error creating upload dir (%s): %v", uploadDir, err)
			http.Error(w, "保存先フォルダの作成に失敗しました。", http.StatusInternalServerError)
			return
		}

		fileName := uuid.New().String() + ext
		savePath := filepath.Join(uploadDir, fileName)
		if err := os.WriteFile(savePath, data, 0644); err != nil {
			log.Printf("Error saving image (%s): %v", savePath, err)
			http.Error(w, "画像の保存に失敗しました。", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"url":     "/uploads/" + fileName,
			"path":    savePath,
		})
	}
}
