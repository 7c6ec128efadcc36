// Package check validates operator arguments. Every failure wraps
// imgproc.ErrInvalidArg and names the offending argument.
package check

import (
	"cmp"
	"fmt"
	"math"

	"github.com/gogpu/imgproc"
)

// Errorf returns an ErrInvalidArg wrapped with a formatted message.
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", imgproc.ErrInvalidArg, fmt.Sprintf(format, args...))
}

// Odd fails unless n is odd.
func Odd(n int, name string) error {
	if n%2 == 0 {
		return Errorf("%s must be odd, got %d", name, n)
	}
	return nil
}

// Even fails unless n is even.
func Even(n int, name string) error {
	if n%2 != 0 {
		return Errorf("%s must be even, got %d", name, n)
	}
	return nil
}

// NonNeg fails if v is negative or NaN.
func NonNeg[T cmp.Ordered](v T, name string) error {
	var zero T
	if v < zero || v != v { //nolint:gocritic // v != v detects NaN
		return Errorf("%s must be non-negative, got %v", name, v)
	}
	return nil
}

// Positive fails unless v is strictly positive.
func Positive[T cmp.Ordered](v T, name string) error {
	var zero T
	if !(v > zero) {
		return Errorf("%s must be positive, got %v", name, v)
	}
	return nil
}

// InRange fails unless lo <= v <= hi.
func InRange[T cmp.Ordered](v, lo, hi T, name string) error {
	if !(v >= lo && v <= hi) {
		return Errorf("%s must be in [%v, %v], got %v", name, lo, hi, v)
	}
	return nil
}

// Equal fails unless a == b.
func Equal[T comparable](a, b T, name string) error {
	if a != b {
		return Errorf("%s must match: %v != %v", name, a, b)
	}
	return nil
}

// Square reports the side of a square kernel of length n and fails if n
// is not a perfect square.
func Square(n int, name string) (int, error) {
	side := int(math.Round(math.Sqrt(float64(n))))
	if n <= 0 || side*side != n {
		return 0, Errorf("%s must be a perfect square, got length %d", name, n)
	}
	return side, nil
}

// Grayscale fails unless the channel layout is single-channel gray, or gray
// plus alpha.
func Grayscale(channels int, alpha bool) error {
	if channels == 1 || (channels == 2 && alpha) {
		return nil
	}
	return Errorf("input must be grayscale, got %d channels (alpha=%t)", channels, alpha)
}

// NotEmpty fails if a slice argument is empty.
func NotEmpty[T any](s []T, name string) error {
	if len(s) == 0 {
		return Errorf("%s must not be empty", name)
	}
	return nil
}
