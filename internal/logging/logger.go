package logging

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// silent is installed until a binary asks for output.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger installs l for every chartleap package. Pass nil to go silent
// again. Safe for concurrent use.
//
// Levels:
//   - Debug: per-equation classification and sampling details
//   - Info: server lifecycle and access lines
//   - Warn: equations that failed to plot
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger { return current.Load() }

// New builds a text logger on w, at debug level when verbose.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
