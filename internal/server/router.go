// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊與中介層。
//   - handler.go 定義「如何處理請求」
//   - router.go 定義「請求如何被導向」
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router 建立並回傳整個 HTTP 處理鏈。
// 所有端點同時掛在 /api/v1 與根路徑下。
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		s.requestLogger,
	)

	routes := func(r chi.Router) {
		r.Get("/health", s.health)
		r.Route("/scenarios", func(r chi.Router) {
			r.Post("/run", s.runScenario)
			r.Get("/default", s.defaultScenario)
			r.Post("/default/run", s.runDefault)
		})
	}

	r.Route("/api/v1", routes)
	r.Group(routes)

	return r
}

// requestLogger 以 slog 記錄每個請求的方法、路徑、狀態碼與耗時。
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
