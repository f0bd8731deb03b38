// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates the diagnostic logger for a command run.
// When w is a terminal it uses slog.TextHandler for human-readable
// output; when piped or redirected (CI, scripts, tests) it uses
// slog.JSONHandler so the lines stay machine-parseable.
//
// Callers scope the logger with command context via With():
//
//	logger := cli.NewCommandLogger(streams.Err, level).With("command", "check")
func NewCommandLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if isTerminal(w) {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

// isTerminal reports whether w is an *os.File attached to a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
