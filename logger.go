package charatlas

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Reporting not-enabled for all levels
// means slog never formats the message, so a per-glyph Debug call on the
// draw path costs almost nothing while logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger returns a logger backed by nopHandler.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger. SetLogger may race with Draw-path
// logging from another goroutine, so access goes through an atomic pointer.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the package logger. By default charatlas produces
// no log output. Pass nil to restore the default silent behavior.
//
// Log levels used by charatlas:
//   - [slog.LevelInfo]: atlas construction (grid geometry, capacity)
//   - [slog.LevelDebug]: per-glyph cache events (admissions, evictions)
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by charatlas.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
