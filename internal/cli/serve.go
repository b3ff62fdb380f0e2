// internal/cli/serve.go

package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"workshop/internal/scenario"
	"workshop/internal/server"
)

// shutdownTimeout 為收到結束訊號後等待進行中請求的上限。
const shutdownTimeout = 5 * time.Second

// NewServeCommand 建立 serve 指令：啟動無狀態的情境 HTTP 服務，收到 SIGINT/SIGTERM 時安全關閉。
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scenario HTTP API",
		Long: `Start an HTTP server that runs posted scenarios and returns their console output.

Every request runs against fresh objects; the server keeps no account or vehicle state.
Stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, GetConfig(ctx).Addr, GetLogger(ctx))
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	return cmd
}

// serve 於 addr 啟動伺服器，ctx 結束後呼叫 Shutdown；兩者以 errgroup 管理。
func serve(ctx context.Context, addr string, logger *slog.Logger) error {
	s := server.NewServer(scenario.NewRunner(logger), logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("workshop server running", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}
