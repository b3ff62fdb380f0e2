// internal/config/config.go

// Package config 以 koanf 分層載入設定。
// 優先順序（高到低）：命令列旗標 > 環境變數 (WORKSHOP_) > 設定檔 (workshop.yaml) > 預設值。
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"workshop/internal/logging"
)

// 預設值。
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = logging.FormatText
	DefaultAddr      = ":8080"
	EnvPrefix        = "WORKSHOP_"
)

// DefaultFiles 為未指定 --config 時於工作目錄尋找的設定檔名稱。
var DefaultFiles = []string{"workshop.yaml", "workshop.yml"}

// Config 為整個程式的設定。
type Config struct {
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
	Addr      string `koanf:"addr"`     // HTTP 服務監聽位址
	Scenario  string `koanf:"scenario"` // 情境檔路徑；空字串代表內建情境
	Summary   bool   `koanf:"summary"`  // run 之後是否輸出狀態彙整表

	// File 為實際載入的設定檔路徑（未載入時為空）。
	File string `koanf:"-"`
}

// Default 回傳僅含預設值的設定。
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Addr:      DefaultAddr,
	}
}

// Load 載入設定；cfgFile 為空時尋找 DefaultFiles，flags 可為 nil。
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. 預設值
	if err := k.Load(confmap.Provider(map[string]any{
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
		"addr":       DefaultAddr,
		"scenario":   "",
		"summary":    false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. 設定檔
	if cfgFile == "" {
		for _, name := range DefaultFiles {
			if _, err := os.Stat(name); err == nil {
				cfgFile = name
				break
			}
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. 環境變數：WORKSHOP_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. 旗標：只採用明確指定者，kebab-case 轉 snake_case
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 檢查日誌等級與格式可被 logging 套件接受。
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid config: %w: %q", logging.ErrBadFormat, c.LogFormat)
	}
	return nil
}
