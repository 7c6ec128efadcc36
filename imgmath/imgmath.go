// Package imgmath holds the small numeric helpers shared by kernels, color
// conversions and geometric transforms.
package imgmath

import (
	"math"

	"github.com/gogpu/imgproc/internal/check"
)

// VectorMul multiplies the n x n row-major matrix mat by the n-vector v.
func VectorMul(mat, v []float64) ([]float64, error) {
	out := make([]float64, len(v))
	if err := VectorMulInto(out, mat, v); err != nil {
		return nil, err
	}
	return out, nil
}

// VectorMulInto is VectorMul writing into out, which must have len(v) elements.
func VectorMulInto(out, mat, v []float64) error {
	n := len(v)
	if len(mat) != n*n {
		return check.Errorf("matrix length %d does not match vector length %d", len(mat), n)
	}
	if len(out) != n {
		return check.Errorf("output length %d does not match vector length %d", len(out), n)
	}
	for i := range n {
		row := mat[i*n : i*n+n]
		var sum float64
		for j, m := range row {
			sum += m * v[j]
		}
		out[i] = sum
	}
	return nil
}

// Max3 returns the largest of three values.
func Max3(x, y, z float64) float64 {
	if x >= y {
		if x >= z {
			return x
		}
		return z
	}
	if y >= z {
		return y
	}
	return z
}

// Min3 returns the smallest of three values.
func Min3(x, y, z float64) float64 {
	if x <= y {
		if x <= z {
			return x
		}
		return z
	}
	if y <= z {
		return y
	}
	return z
}

// Max4 returns the largest of four values.
func Max4(w, x, y, z float64) float64 {
	a, b := w, y
	if x > a {
		a = x
	}
	if z > b {
		b = z
	}
	if a >= b {
		return a
	}
	return b
}

// Min4 returns the smallest of four values.
func Min4(w, x, y, z float64) float64 {
	a, b := w, y
	if x < a {
		a = x
	}
	if z < b {
		b = z
	}
	if a <= b {
		return a
	}
	return b
}

// Gaussian evaluates the 2D Gaussian density 1/(2πσ²)·exp(-x²/(2σ²)).
// sigma must be positive.
func Gaussian(x, sigma float64) (float64, error) {
	if err := check.Positive(sigma, "sigma"); err != nil {
		return 0, err
	}
	s2 := sigma * sigma
	return math.Exp(-(x*x)/(2*s2)) / (2 * math.Pi * s2), nil
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Coords2D maps index i of a row-major grid of the given width to (x, y).
func Coords2D(i, width int) (int, int) {
	return i % width, i / width
}

// Sinc is the normalized sinc function sin(πx)/(πx).
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Lanczos evaluates the Lanczos window of size a at x.
func Lanczos(x, a float64) float64 {
	if x > -a && x < a {
		return Sinc(x) * Sinc(x/a)
	}
	return 0
}

// CubicWeight is the Catmull-Rom interpolation weight for distance t.
func CubicWeight(t float64) float64 {
	// Keys cubic with a = -0.5:
	// |t| < 1:      1.5|t|³ - 2.5|t|² + 1
	// 1 <= |t| < 2: -0.5|t|³ + 2.5|t|² - 4|t| + 2
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4*absT + 2
	}
	return 0
}

// Clamp returns v limited to [lo, hi].
func Clamp[T int | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
