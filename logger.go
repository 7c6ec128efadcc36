package imgproc

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/imgproc/internal/parallel"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for imgproc and its sub-packages.
// By default imgproc produces no log output.
//
// Pass nil to restore the silent default. SetLogger is safe for concurrent use.
//
// Operators never log. Records come from the edges of the library:
//   - [slog.LevelDebug]: decoded file formats and color models (imageio),
//     worker pool start and stop (parallel evaluation)
//   - [slog.LevelWarn]: lossy conversions at the I/O boundary
//
// Example:
//
//	imgproc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	parallel.SetLogger(l)
}

// Logger returns the current logger used by imgproc.
// Sub-packages call this to share one logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
