// internal/logging/logging.go

// Package logging 建立全程式共用的 slog.Logger。
// 日誌固定寫往 stderr（或呼叫端指定的 writer），stdout 只保留情境的主控台輸出。
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// 日誌輸出格式。
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrBadLevel 代表無法辨識的日誌等級。
	ErrBadLevel = errors.New("unknown log level")

	// ErrBadFormat 代表無法辨識的日誌格式。
	ErrBadFormat = errors.New("unknown log format")
)

// ParseLevel 將 debug / info / warn / error（不分大小寫）轉換成 slog.Level。
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrBadLevel, s)
	}
}

// New 依等級與格式建立寫入 w 的 logger。
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", FormatText:
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	return slog.New(h), nil
}

// Discard 回傳不輸出任何內容的 logger，供測試與預設值使用。
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
