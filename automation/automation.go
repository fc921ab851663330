// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\automation\automation.go
package automation

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
)

// DownloadPriceList は卸ポータルにログインし、価格表CSVをダウンロードします。
func DownloadPriceList(portalURL, userId, password, saveDir string) (string, error) {
	// 保存先ディレクトリの確保
	if _, err := os.Stat(saveDir); os.IsNotExist(err) {
		if err := os.MkdirAll(saveDir, 0755); err != nil {
			return "", fmt.Errorf("保存先フォルダの作成に失敗: %v", err)
		}
	}

	// 1. ブラウザ起動
	// Leakless(false) でセキュリティソフト対策
	u := launcher.New().
		Headless(false).
		Leakless(false).
		MustLaunch()

	browser := rod.New().ControlURL(u).MustConnect()
	defer browser.MustClose()

	// 2. ログイン画面へ
	fmt.Println("卸ポータルにアクセス中...")
	page := browser.MustPage(portalURL)
	page.MustWaitStable()

	// 3. ログイン操作
	fmt.Println("ログイン情報を入力中...")

	if err := rod.Try(func() {
		page.MustElement("[name='userid'], [name='login_id'], input[type='email']").MustInput(userId)
	}); err != nil {
		return "", fmt.Errorf("ユーザーID入力欄が見つかりません: %v", err)
	}

	if err := rod.Try(func() {
		page.MustElement("[name='password'], input[type='password']").MustInput(password)
	}); err != nil {
		return "", fmt.Errorf("パスワード入力欄が見つかりません: %v", err)
	}

	fmt.Println("ログインボタンをクリック...")
	loginBtn, err := page.ElementR("input, button, a", "ログイン")
	if err == nil {
		loginBtn.MustClick()
	} else {
		page.KeyActions().Press(input.Enter).MustDo()
	}

	page.MustWaitStable()

	// 4. 価格表ページへ移動
	fmt.Println("メニュー[価格表]を検索中...")
	if err := rod.Try(func() {
		page.MustElementR("a, span, div", "価格表").MustClick()
	}); err != nil {
		return "", fmt.Errorf("メニュー[価格表]が見つかりません（ログイン失敗の可能性あり）: %v", err)
	}
	page.MustWaitStable()

	// 5. ダウンロード準備
	wait := browser.MustWaitDownload()

	// ダイアログ（アラート）が出たら自動的にOKを押して閉じる設定
	go page.MustHandleDialog()

	// 6. ダウンロードボタンクリック
	fmt.Println("ダウンロードボタンをクリック...")
	clicked := false
	selectors := []string{
		"a[href$='.csv']",
		"input[type='button']",
		"button",
		"a",
	}

	for _, sel := range selectors {
		if el, err := page.ElementR(sel, "CSV|ダウンロード"); err == nil {
			el.MustClick()
			clicked = true
			break
		}
	}

	if !clicked {
		return "", fmt.Errorf("価格表のダウンロードボタンが見つかりませんでした")
	}

	// 7. ダウンロード完了待ち
	fmt.Println("ダウンロード待機中...")

	var fileData []byte
	done := make(chan struct{})

	go func() {
		// パニック対策
		defer func() {
			_ = recover()
		}()
		fileData = wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(60 * time.Second):
		return "", fmt.Errorf("処理がタイムアウトしました（ダウンロードを確認できず）")
	}

	if len(fileData) == 0 {
		return "", fmt.Errorf("ダウンロードデータが空です")
	}

	// 8. ファイル保存
	fileName := fmt.Sprintf("価格表_%s.csv", time.Now().Format("20060102150405"))
	destPath := filepath.Join(saveDir, fileName)

	if err := os.WriteFile(destPath, fileData, 0644); err != nil {
		return "", fmt.Errorf("ファイルの書き込みに失敗: %v", err)
	}

	fmt.Printf("ダウンロード完了: %s\n", destPath)
	return destPath, nil
}
