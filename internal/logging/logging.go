// Package logging 统一的 slog 配置
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init 配置全局 slog，w 为空时输出到 os.Stderr，format 为 "text" 或 "json"
func Init(level slog.Level, format string, w ...io.Writer) {
	var writer io.Writer = os.Stderr
	if len(w) > 0 && w[0] != nil {
		writer = w[0]
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel 解析配置中的日志级别，无法识别时返回 Info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New 返回带 component 属性的模块日志
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
