package easel

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for easel and its sub-packages.
// By default easel produces no log output. Pass nil to restore that.
//
// Levels used:
//   - [slog.LevelDebug]: per-frame render stats, editor actions
//   - [slog.LevelInfo]: layer lifecycle, screenshots written
//   - [slog.LevelWarn]: rejected operations, screenshot failures
//
// Example:
//
//	easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func shapeAttr(s Shape) slog.Attr {
	if s == nil {
		return slog.String("shape", "none")
	}
	return slog.Group("shape",
		slog.String("id", s.ID().String()),
		slog.String("kind", s.Kind().String()),
		slog.Int("layer", s.Layer()),
	)
}
