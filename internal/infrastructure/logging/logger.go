package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/quickreview/backend/internal/infrastructure/config"
)

// New builds a logger from cfg and installs it as the slog default.
//
// Format "json" produces structured JSON output; "text" produces
// human-readable output with source locations. Level is one of debug, info,
// warn, error (case-insensitive) and defaults to info.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
