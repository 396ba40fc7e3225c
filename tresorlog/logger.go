// Package tresorlog provides structured logging for Tresor: a thin
// *slog.Logger embed tagged with a component name. Note the import
// direction — the root tresor package depends on this package's exported
// interface shape, not the other way around, so a caller who wants no
// logging at all never needs to import tresorlog.
package tresorlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger wraps slog.Logger with a fixed component tag. Log lines never
// carry field values, derived keys, plaintext payloads, or passwords —
// only operation names, entry counts, and error kinds.
type Logger struct {
	*slog.Logger
	component string
}

// Config holds logger configuration.
type Config struct {
	Level     string // "debug", "info", "warn", "error"
	Format    string // "json" or "text"
	Output    string // "stdout", "stderr", or a file path
	Component string // component name attached to every log line
}

// New creates a Logger from cfg.
func New(cfg Config) (*Logger, error) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var writer io.Writer
	switch cfg.Output {
	case "", "stdout":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
			return nil, fmt.Errorf("tresorlog: create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("tresorlog: open log file: %w", err)
		}
		writer = file
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	component := cfg.Component
	if component == "" {
		component = "tresor"
	}

	logger := slog.New(handler).With("component", component)
	return &Logger{Logger: logger, component: component}, nil
}

// WithComponent returns a new Logger tagged with a different component
// name, sharing the underlying handler.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component), component: component}
}
