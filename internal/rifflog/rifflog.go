// Package rifflog wraps charmbracelet/log as the riff.Logger collaborator:
// a warning sink for recoverable diff-parsing anomalies (spec.md §7) that
// never blocks the stream and never panics.
package rifflog

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger writes warnings to an underlying charmbracelet/log.Logger.
type Logger struct {
	l *log.Logger
}

// New builds a Logger writing to w, styled as a plain CLI warning sink
// (no timestamps, no caller info - this is a streaming filter, not a
// long-running service).
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "riff",
	})
	return &Logger{l: l}
}

// Warn logs msg at warning level.
func (l *Logger) Warn(msg string) {
	l.l.Warn(msg)
}
