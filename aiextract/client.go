// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\aiextract\client.go
package aiextract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"gakki/model"
)

const extractPrompt = `これは楽器店の請求書または納品書の画像です。以下の情報を抽出してJSON形式で返してください：

商品ごとに以下の情報を抽出：
- category: 商品カテゴリ（エレキギター、ベース、アンプ、アコギ、エフェクター、弦、ピック、ケーブル等）
- product_name: 商品名
- manufacturer: メーカー名
- model_number: 型番（あれば）
- color: 色（あれば）
- retail_price: 販売価格（数値のみ）
- purchase_price: 仕入価格（数値のみ）
- quantity: 数量（デフォルト1）
- purchase_date: 仕入日（YYYY-MM-DD形式、画像から推測）
- supplier_name: 仕入先名

レスポンスは必ず以下のJSON形式で：
{
  "items": [
    {
      "category": "エレキギター",
      "product_name": "ST-62",
      "manufacturer": "フェンダー",
      "model_number": "ST62-VS",
      "color": "サンバースト",
      "retail_price": 100000,
      "purchase_price": 80000,
      "quantity": 1,
      "purchase_date": "2025-09-30",
      "supplier_name": "ヤマハ"
    }
  ]
}`

// Extractor は請求書画像から明細を読み取ります。
type Extractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewExtractor はGeminiクライアントを生成します
func NewExtractor(ctx context.Context, apiKey string) (*Extractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-2.0-flash")

	// 抽出用途なので創造性は抑える
	model.SetTemperature(0.1)
	model.SetMaxOutputTokens(2048)

	return &Extractor{client: client, model: model}, nil
}

// Close は内部クライアントを閉じます。
func (e *Extractor) Close() error {
	return e.client.Close()
}

// ExtractInvoice は画像データを解析し、抽出された明細を返します
func (e *Extractor) ExtractInvoice(ctx context.Context, mimeType string, data []byte) ([]model.ExtractedItem, error) {
	format := strings.TrimPrefix(mimeType, "image/")

	resp, err := e.model.GenerateContent(ctx,
		genai.Text(extractPrompt),
		genai.ImageData(format, data))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no response candidates")
	}

	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty AI response")
	}

	var result struct {
		Items []model.ExtractedItem `json:"items"`
	}
	if err := json.Unmarshal([]byte(StripCodeFence(text)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	for i := range result.Items {
		if result.Items[i].Quantity == 0 {
			result.Items[i].Quantity = 1
		}
	}
	return result.Items, nil
}

// StripCodeFence はAI応答を囲むマークダウンのコードフェンスを除去します。
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func extractText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					b.WriteString(string(t))
				}
			}
		}
	}
	return b.String()
}
