package config

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	UploadDir      string `json:"uploadDir"`
	DownloadDir    string `json:"downloadDir"`
	PortalURL      string `json:"portalURL"`
	PortalUserID   string `json:"portalUserID"`
	PortalPassword string `json:"portalPassword"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./gakki_config.json"

// LoadEnv は .env を読み込みます。ファイルが無い場合は環境変数のみで動作します。
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARN: .env ファイルが見つかりません。環境変数をそのまま使用します。")
	}
}

// GeminiAPIKey はAI読取用のAPIキーを返します。秘密情報なので
// 設定ファイルではなく環境変数からのみ取得します。
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func LoadConfig() (Config, error) {
	mu.RLock()
	defer mu.RUnlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return applyDefaults(Config{}), nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	cfg = applyDefaults(tempCfg)

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	newCfg = applyDefaults(newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func applyDefaults(c Config) Config {
	if c.UploadDir == "" {
		c.UploadDir = "./uploads"
	}
	if c.DownloadDir == "" {
		c.DownloadDir = "./downloads"
	}
	return c
}
