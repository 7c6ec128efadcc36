package check

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/imgproc"
)

func TestOddEven(t *testing.T) {
	tests := []struct {
		n       int
		oddErr  bool
		evenErr bool
	}{
		{1, false, true},
		{2, true, false},
		{0, true, false},
		{7, false, true},
	}
	for _, tt := range tests {
		if err := Odd(tt.n, "size"); (err != nil) != tt.oddErr {
			t.Errorf("Odd(%d) = %v, want error %t", tt.n, err, tt.oddErr)
		}
		if err := Even(tt.n, "alpha"); (err != nil) != tt.evenErr {
			t.Errorf("Even(%d) = %v, want error %t", tt.n, err, tt.evenErr)
		}
	}
}

func TestErrorsWrapInvalidArg(t *testing.T) {
	errs := []error{
		Odd(4, "size"),
		NonNeg(-1.0, "sigma"),
		NonNeg(math.NaN(), "sigma"),
		Positive(0, "factor"),
		InRange(1.5, 0.0, 1.0, "alpha"),
		Equal(3, 4, "channels"),
		Grayscale(3, false),
		NotEmpty([]float64(nil), "kernel"),
	}
	for i, err := range errs {
		if !errors.Is(err, imgproc.ErrInvalidArg) {
			t.Errorf("case %d: error %v does not wrap ErrInvalidArg", i, err)
		}
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		n    int
		side int
		ok   bool
	}{
		{9, 3, true},
		{25, 5, true},
		{1, 1, true},
		{8, 0, false},
		{0, 0, false},
	}
	for _, tt := range tests {
		side, err := Square(tt.n, "kernel")
		if (err == nil) != tt.ok || side != tt.side {
			t.Errorf("Square(%d) = (%d, %v), want (%d, ok=%t)", tt.n, side, err, tt.side, tt.ok)
		}
	}
}

func TestGrayscale(t *testing.T) {
	tests := []struct {
		channels int
		alpha    bool
		ok       bool
	}{
		{1, false, true},
		{2, true, true},
		{2, false, false},
		{3, false, false},
		{4, true, false},
	}
	for _, tt := range tests {
		if err := Grayscale(tt.channels, tt.alpha); (err == nil) != tt.ok {
			t.Errorf("Grayscale(%d, %t) = %v, want ok=%t", tt.channels, tt.alpha, err, tt.ok)
		}
	}
}
