package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey struct{}

// runIDKey carries the per-invocation run ID
var runIDKey contextKey

// GenerateRunID returns a random UUID v4
func GenerateRunID() string {
	return uuid.New().String()
}

// WithRunID returns ctx carrying runID
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// GetRunID returns the run ID carried by ctx, or ""
func GetRunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// ContextWithRunID returns ctx carrying a fresh run ID
func ContextWithRunID(ctx context.Context) context.Context {
	return WithRunID(ctx, GenerateRunID())
}

// EnsureRunID keeps an existing run ID or adds a new one
func EnsureRunID(ctx context.Context) context.Context {
	if GetRunID(ctx) != "" {
		return ctx
	}
	return ContextWithRunID(ctx)
}

// LoggerWithContext returns the global logger with run_id bound, so every
// record it writes carries the ID even without a context.
func LoggerWithContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()
	if id := GetRunID(ctx); id != "" {
		logger = logger.With(slog.String("run_id", id))
	}
	return logger
}

// WithComponent binds component to logger, or to the global logger when nil
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = GetLogger()
	}
	return logger.With(slog.String("component", component))
}

// WithError binds err's message. A nil err returns logger unchanged.
func WithError(logger *slog.Logger, err error) *slog.Logger {
	if err == nil {
		return logger
	}
	return logger.With(slog.String("error", err.Error()))
}
