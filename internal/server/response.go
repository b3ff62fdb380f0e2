// internal/server/response.go
//
// 本檔負責統一 HTTP 回應格式。
//   - 成功回應使用 JSON 編碼（Content-Type: application/json）。
//   - 錯誤回應統一由 writeErr 以純文字輸出。
package server

import (
	"encoding/json"
	"net/http"
)

// writeJSON 統一輸出成功回應。
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr 統一輸出錯誤回應。
func writeErr(w http.ResponseWriter, err error, code int) {
	http.Error(w, err.Error(), code)
}
