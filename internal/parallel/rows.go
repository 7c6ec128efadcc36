package parallel

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
)

// minRowsPerTask keeps tasks large enough that queueing stays cheap
// relative to per-row work.
const minRowsPerTask = 4

var (
	poolMu sync.RWMutex
	pool   *WorkerPool

	loggerPtr atomic.Pointer[slog.Logger]
)

func init() {
	loggerPtr.Store(slog.New(discard{}))
}

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

// SetLogger sets the logger used for pool diagnostics. The root package
// forwards its logger here.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger { return loggerPtr.Load() }

// SetWorkers replaces the shared pool. n <= 1 (except negative values)
// selects sequential evaluation; negative n selects GOMAXPROCS workers.
func SetWorkers(n int) {
	if n < 0 {
		n = runtime.GOMAXPROCS(0)
	}

	poolMu.Lock()
	defer poolMu.Unlock()

	if pool != nil {
		if pool.Workers() == n {
			return
		}
		pool.Close()
		pool = nil
	}
	if n > 1 {
		pool = NewWorkerPool(n)
	}
}

// Workers returns the number of workers in the shared pool, or 1 when
// evaluation is sequential.
func Workers() int {
	poolMu.RLock()
	defer poolMu.RUnlock()
	if pool == nil {
		return 1
	}
	return pool.Workers()
}

// Rows calls fn over disjoint half-open row ranges [y0, y1) that together
// cover [0, height). With sequential evaluation fn is called once with the
// whole range.
func Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}

	poolMu.RLock()
	defer poolMu.RUnlock()

	if pool == nil || height < 2*minRowsPerTask {
		fn(0, height)
		return
	}

	chunk := max(height/(pool.Workers()*4), minRowsPerTask)
	work := make([]func(), 0, (height+chunk-1)/chunk)
	for y0 := 0; y0 < height; y0 += chunk {
		y1 := min(y0+chunk, height)
		work = append(work, func() { fn(y0, y1) })
	}
	pool.Run(work)
}

// Tasks runs n independent tasks, fn(0) .. fn(n-1), and waits for them.
func Tasks(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	poolMu.RLock()
	defer poolMu.RUnlock()

	if pool == nil || n == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	work := make([]func(), n)
	for i := range n {
		work[i] = func() { fn(i) }
	}
	pool.Run(work)
}
