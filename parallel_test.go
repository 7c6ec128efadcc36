package imgproc

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
)

func TestSetParallelism(t *testing.T) {
	t.Cleanup(func() { SetParallelism(0) })

	tests := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{4, 4},
		{-1, max(runtime.GOMAXPROCS(0), 1)},
		{0, 1},
	}
	for _, tt := range tests {
		SetParallelism(tt.n)
		if got := Parallelism(); got != tt.want {
			t.Errorf("SetParallelism(%d): Parallelism() = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestErrorsWrap(t *testing.T) {
	err := fmt.Errorf("%w: size must be odd, got 4", ErrInvalidArg)
	if !errors.Is(err, ErrInvalidArg) {
		t.Error("wrapped error does not match ErrInvalidArg")
	}
	if errors.Is(err, ErrNumeric) {
		t.Error("ErrInvalidArg matches ErrNumeric")
	}
}
