// Package logging builds the application's structured logger.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const prefix = "folio"

// New returns a logger writing to path. The TUI owns the terminal, so an empty
// path yields a logger that discards everything. The returned close func must be
// called on shutdown.
func New(path string, debug bool) (*log.Logger, func() error, error) {
	if path == "" {
		return Discard(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		ReportCaller:    debug,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	})
	logger.SetLevel(log.InfoLevel)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, f.Close, nil
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Prefix: prefix})
}

// NewTestLogger returns a debug logger writing plain records to a buffer.
func NewTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "test",
	})
	logger.SetLevel(log.DebugLevel)
	return logger, &buf
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
