package kernel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/internal/check"
)

// ErrNotSeparable is returned by Separate for kernels of rank greater
// than one.
var ErrNotSeparable = errors.New("kernel: not separable")

// rankTolerance is the largest ratio s[i]/s[0] of a secondary singular value
// that still counts as zero.
const rankTolerance = 1e-10

// Separate factors a square 2D kernel into a vertical and a horizontal 1D
// kernel such that k[row*side+col] = vertical[row] * horizontal[col].
//
// The kernel is separable when its matrix has rank one: the largest singular
// value is nonzero and every other singular value is below rankTolerance
// relative to it. Both factors are scaled by the square root of the largest
// singular value.
func Separate(k []float64) (vertical, horizontal []float64, err error) {
	side, err := check.Square(len(k), "kernel")
	if err != nil {
		return nil, nil, err
	}

	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(side, side, k), mat.SVDFull) {
		return nil, nil, fmt.Errorf("%w: SVD of %dx%d kernel did not converge", imgproc.ErrNumeric, side, side)
	}

	values := svd.Values(nil)
	if values[0] == 0 || math.IsNaN(values[0]) {
		return nil, nil, ErrNotSeparable
	}
	for _, s := range values[1:] {
		if s > rankTolerance*values[0] {
			return nil, nil, ErrNotSeparable
		}
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	scale := math.Sqrt(values[0])
	vertical = make([]float64, side)
	horizontal = make([]float64, side)
	for i := range side {
		vertical[i] = u.At(i, 0) * scale
		horizontal[i] = v.At(i, 0) * scale
	}
	return vertical, horizontal, nil
}
