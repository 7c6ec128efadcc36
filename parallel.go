package imgproc

import "github.com/gogpu/imgproc/internal/parallel"

// SetParallelism selects how operators evaluate independent output rows.
//
// n == 0 or n == 1 runs everything on the calling goroutine (the default).
// n > 1 spreads rows across a shared pool of n workers. A negative n uses
// GOMAXPROCS workers. Results are identical for every setting.
func SetParallelism(n int) {
	parallel.SetWorkers(n)
}

// Parallelism returns the number of workers used for row evaluation.
// A value of 1 means sequential evaluation.
func Parallelism() int {
	return parallel.Workers()
}
