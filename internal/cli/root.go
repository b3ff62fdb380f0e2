// internal/cli/root.go

// Package cli 提供 workshop 的命令列介面（cobra）。
// root 指令在 PersistentPreRunE 載入設定並建立 logger，存入 command context 供子指令取用；
// 主控台輸出寫入 stdout，日誌寫入 stderr。
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"workshop/internal/config"
	"workshop/internal/logging"
)

// Version 為版本字串，建置時可覆寫。
var Version = "0.1.0"

// configKey / loggerKey 為 context 中存放設定與 logger 的鍵。
type configKey struct{}

type loggerKey struct{}

// NewRootCmd 建立 root 指令並掛上所有子指令。
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "workshop",
		Short: "Bank account and vehicle demos",
		Long: `workshop runs small demonstrations of two object models:
a bank account with unchecked deposit/withdraw, and a vehicle whose
speed is capped at its maximum, with a racing car variant.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./workshop.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text|json)")

	rootCmd.AddCommand(NewVersionCommand(Version))
	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewServeCommand())

	return rootCmd
}

// Execute 執行 root 指令；錯誤印到 stderr 後回傳。
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig 自 context 取出設定；未設定時回傳預設值。
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return config.Default()
}

// GetLogger 自 context 取出 logger；未設定時回傳丟棄日誌的 logger。
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return logging.Discard()
}
