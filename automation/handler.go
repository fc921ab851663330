// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\automation\handler.go
package automation

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"gakki/config"
	"gakki/parsers"
)

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// DownloadPriceListHandler は卸ポータルから価格表CSVを自動取得し、
// そのまま取込プレビュー用に解析して返します
func DownloadPriceListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSONError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			writeJSONError(w, "設定の読み込みに失敗しました: "+err.Error(), http.StatusInternalServerError)
			return
		}

		if cfg.PortalURL == "" {
			writeJSONError(w, "卸ポータルのURLが設定されていません。設定画面で入力してください。", http.StatusBadRequest)
			return
		}
		if cfg.PortalUserID == "" || cfg.PortalPassword == "" {
			writeJSONError(w, "卸ポータルのIDまたはパスワードが設定されていません。設定画面で入力してください。", http.StatusBadRequest)
			return
		}

		saveDir := cfg.DownloadDir
		if saveDir == "" {
			saveDir = os.TempDir()
			log.Printf("ダウンロード先設定がないため、一時フォルダを使用します: %s", saveDir)
		}

		log.Println("Starting portal automation...")
		filePath, err := DownloadPriceList(cfg.PortalURL, cfg.PortalUserID, cfg.PortalPassword, saveDir)
		if err != nil {
			log.Printf("Automation Error: %v", err)
			writeJSONError(w, "自動取得エラー: "+err.Error(), http.StatusInternalServerError)
			return
		}

		// ダウンロードした価格表を取込プレビューと同じ形に解析して返す
		file, err := os.Open(filePath)
		if err != nil {
			writeJSONError(w, "ダウンロードファイルのオープンに失敗: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer file.Close()

		decoded, err := parsers.DecodeToUTF8(file)
		if err != nil {
			writeJSONError(w, "ダウンロードファイルの文字コード変換に失敗: "+err.Error(), http.StatusInternalServerError)
			return
		}
		result := parsers.ParseProductCSV(decoded)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":   "success",
			"message":  "価格表のダウンロードが完了しました。",
			"filePath": filePath,
			"result":   result,
		})
	}
}
