// Package logging configures the process-wide slog logger and ties log
// lines to the request that produced them.
package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"notify-hub/internal/handler/http/requestid"
)

// level reads LOG_LEVEL (debug, info, warn, error). Unknown or unset
// values mean info.
func level() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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

// NewLogger builds the JSON logger used in deployments. Source locations
// are attached when running at debug verbosity.
func NewLogger() *slog.Logger {
	lvl := level()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	}))
}

// NewTextLogger builds a human-readable logger for local runs.
func NewTextLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level(),
	}))
}

// WithRequestID attaches the request id from ctx to the logger so every
// line from one request carries the same id. Without an id in ctx the
// logger is returned unchanged.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := requestid.FromContext(ctx); id != "" {
		return logger.With("request_id", id)
	}
	return logger
}
