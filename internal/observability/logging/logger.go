package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"blogsmith/internal/handler/http/requestid"
)

// NewLogger returns a JSON logger writing to stdout. LOG_LEVEL selects the
// minimum level (debug, info, warn, error); unknown or empty values fall
// back to info. Source locations are attached unless the level is error,
// keeping high-volume error-only deployments compact.
func NewLogger() *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelWarn,
	})

	return slog.New(handler)
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

// WithRequestID returns a logger that carries the request ID from ctx as a
// permanent attribute. The logger is returned unchanged when ctx has none.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default when none
// was stored. Handlers and use cases log through this so request-scoped
// attributes follow the call chain.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

type loggerKey struct{}
