// C:\Users\wasab\OneDrive\デスクトップ\GAKKI\storage\handler_test.go
package storage

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gakki/config"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartImageRequest(t *testing.T, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "product.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func withUploadDir(t *testing.T) string {
	t.Helper()
	// SaveConfig はカレントディレクトリに設定ファイルを書くので退避する
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	dir := t.TempDir()
	require.NoError(t, config.SaveConfig(config.Config{UploadDir: dir}))
	return dir
}

func TestUploadHandler(t *testing.T) {
	dir := withUploadDir(t)

	req := multipartImageRequest(t, pngBytes(t))
	rec := httptest.NewRecorder()
	UploadHandler()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
		Path    string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.URL, ".png"))

	saved, err := os.ReadFile(resp.Path)
	require.NoError(t, err)
	assert.Equal(t, pngBytes(t), saved)
	assert.Equal(t, dir, filepath.Dir(resp.Path))
}

func TestUploadHandlerRejectsNonImage(t *testing.T) {
	withUploadDir(t)

	req := multipartImageRequest(t, []byte("this is not an image at all, just plain text"))
	rec := httptest.NewRecorder()
	UploadHandler()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandlerRequiresFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/storage/upload", strings.NewReader(""))
	rec := httptest.NewRecorder()
	UploadHandler()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
