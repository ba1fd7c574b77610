// Package logging configures the charmbracelet/log logger used across tickit.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Logger wraps a log.Logger and the file it writes to, if any.
type Logger struct {
	*log.Logger
	file *os.File
}

// ParseLevel parses a string log level. Unknown values map to info.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// New returns a logger writing logfmt lines to path. An empty path returns a
// logger that discards everything.
func New(path, level string) (*Logger, error) {
	if path == "" {
		return &Logger{Logger: log.New(io.Discard)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := NewWithWriter(f, level)
	logger.file = f
	return logger, nil
}

// NewWithWriter returns a logger writing to w. Useful for tests.
func NewWithWriter(w io.Writer, level string) *Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:           ParseLevel(level),
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "tickit",
	})
	return &Logger{Logger: logger}
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
