// Package logging provides slog setup and shared attribute keys.
package logging

import (
	"log/slog"
	"os"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation = "operation"
	KeyStatus    = "status"
	KeyError     = "error"
)

// New returns a logger writing text records to stderr.
// With debug false, only warnings and errors are emitted.
func New(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Status returns a slog attribute for the call status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Error returns a slog attribute for an error value.
func Error(err error) slog.Attr {
	return slog.String(KeyError, err.Error())
}
