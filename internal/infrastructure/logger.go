package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/config"
)

// logState is the process-wide logger and the log file it may own.
type logState struct {
	mu     sync.Mutex
	logger *slog.Logger
	file   *os.File
}

var state logState

// InitializeLogger builds a logger from cfg, installs it as the slog default
// and returns it. Console output goes to console, or os.Stderr when nil.
// Calling it again replaces the previous logger and closes its log file.
func InitializeLogger(cfg config.LoggingConfig, console io.Writer) (*slog.Logger, error) {
	if console == nil {
		console = os.Stderr
	}

	logger, err := NewLogger(cfg, console)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	state.logger = logger
	state.mu.Unlock()

	slog.SetDefault(logger)
	return logger, nil
}

// GetLogger returns the initialized logger, falling back to slog.Default
func GetLogger() *slog.Logger {
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.logger == nil {
		return slog.Default()
	}
	return state.logger
}

// NewLogger creates a JSON or text logger writing to the sinks named by
// cfg.Output. A log file opened here becomes the tracked file released by
// CloseLogFile.
func NewLogger(cfg config.LoggingConfig, console io.Writer) (*slog.Logger, error) {
	level := parseLogLevel(cfg.Level)

	var out io.Writer = console
	if sink := strings.ToLower(cfg.Output); sink == "file" || sink == "both" {
		file, err := openLogFile(cfg.FilePath)
		if err != nil {
			return nil, err
		}
		trackLogFile(file)
		out = file
		if sink == "both" {
			out = io.MultiWriter(console, file)
		}
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}
	var handler slog.Handler = slog.NewJSONHandler(out, opts)
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(runHandler{handler}), nil
}

// runHandler stamps run_id on records logged with a context carrying one
type runHandler struct {
	slog.Handler
}

func (h runHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := GetRunID(ctx); id != "" {
		r.AddAttrs(slog.String("run_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h runHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return runHandler{h.Handler.WithAttrs(attrs)}
}

func (h runHandler) WithGroup(name string) slog.Handler {
	return runHandler{h.Handler.WithGroup(name)}
}

// parseLogLevel maps a config level to slog. Unknown levels mean info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// CloseLogFile closes the tracked log file, if any. Safe to call repeatedly.
func CloseLogFile() error {
	state.mu.Lock()
	defer state.mu.Unlock()
	return closeFileLocked()
}

// ResetLoggerForTesting drops the initialized logger and its log file.
func ResetLoggerForTesting() {
	state.mu.Lock()
	defer state.mu.Unlock()
	_ = closeFileLocked()
	state.logger = nil
}

func closeFileLocked() error {
	if state.file == nil {
		return nil
	}
	err := state.file.Close()
	state.file = nil
	return err
}

func trackLogFile(f *os.File) {
	state.mu.Lock()
	defer state.mu.Unlock()
	_ = closeFileLocked()
	state.file = f
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory for %s: %w", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
