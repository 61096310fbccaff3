// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the structured loggers injected into each
// component. Output goes to the writer given by the caller, which is stderr
// for every command; stdout is reserved for reports and the MCP stdio
// transport.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New constructs a text logger for service at the named level.
func New(service, level string, w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h).With("service", service)
}

// ParseLevel maps debug, warn and error to their slog levels. Anything else
// is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
