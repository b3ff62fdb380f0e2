// internal/server/handler.go
//
// Package server
// ─────────────────────────────────────────────
// 提供 HTTP 介面，作為 scenario 模組的傳輸層 (Transport Layer)。
// 每個 handler 僅負責：
//  1. 接收與解析 HTTP 請求
//  2. 呼叫 scenario.Runner 以全新物件執行情境
//  3. 回傳標準化 JSON 回應
//
// 伺服器本身不保存任何帳戶或載具；請求之間沒有共享狀態。
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"workshop/internal/scenario"
)

// MaxScenarioBytes 為 POST /scenarios/run 請求內容的上限。
const MaxScenarioBytes = 1 << 20

// Server 為 HTTP 層核心結構：
// - runner：注入情境執行器。
// - logger：請求與錯誤日誌。
type Server struct {
	runner *scenario.Runner
	logger *slog.Logger
}

// NewServer 建立新的 HTTP 伺服器；logger 為 nil 時丟棄日誌。
func NewServer(runner *scenario.Runner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{runner: runner, logger: logger}
}

// runScenario 處理 POST /scenarios/run：請求內容為情境 JSON。
func (s *Server) runScenario(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxScenarioBytes)

	var sc scenario.Scenario
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		code := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			code = http.StatusRequestEntityTooLarge
		}
		writeErr(w, err, code)
		return
	}
	s.run(w, r, sc)
}

// runDefault 處理 POST /scenarios/default/run：執行內建情境。
func (s *Server) runDefault(w http.ResponseWriter, r *http.Request) {
	s.run(w, r, scenario.Default())
}

// defaultScenario 處理 GET /scenarios/default：回傳內建情境內容。
func (s *Server) defaultScenario(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scenario.Default())
}

func (s *Server) run(w http.ResponseWriter, r *http.Request, sc scenario.Scenario) {
	res, err := s.runner.Run(r.Context(), sc, nil)
	if err != nil {
		code := http.StatusBadRequest
		if ctxErr := r.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			// 用戶端已中斷連線
			code = http.StatusServiceUnavailable
		}
		s.logger.Warn("scenario rejected", "scenario", sc.Name, "error", err)
		writeErr(w, err, code)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// health 提供健康檢查端點：GET /health。
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
