package kernel

import (
	"math"

	"github.com/gogpu/imgproc/imgmath"
	"github.com/gogpu/imgproc/internal/check"
)

// Gaussian returns a size x size Gaussian evaluated at integer offsets from
// the center. The kernel is not normalized; its sum approaches 1 only when
// size covers several sigma.
func Gaussian(size int, sigma float64) ([]float64, error) {
	if err := validate(size, sigma); err != nil {
		return nil, err
	}
	k := size / 2
	twoSigmaSq := 2 * sigma * sigma
	norm := 1 / (math.Pi * twoSigmaSq)

	out := make([]float64, size*size)
	for i := range size {
		for j := i; j < size; j++ {
			di, dj := float64(i-k), float64(j-k)
			v := norm * math.Exp(-(di*di+dj*dj)/twoSigmaSq)
			out[i*size+j] = v
			out[j*size+i] = v
		}
	}
	return out, nil
}

// Normalized returns a copy of k scaled so that it sums to 1.
// A kernel that sums to zero is returned unchanged.
func Normalized(k []float64) []float64 {
	var sum float64
	for _, v := range k {
		sum += v
	}
	out := make([]float64, len(k))
	copy(out, k)
	if sum == 0 {
		return out
	}
	return scaled(1/sum, out)
}

// LoG returns a size x size Laplacian-of-Gaussian kernel,
// -1/(πσ⁴) · (1 - e) · exp(e) with e = -r²/(2σ²). Every weight is negative
// and the magnitude is largest at the center.
func LoG(size int, sigma float64) ([]float64, error) {
	if err := validate(size, sigma); err != nil {
		return nil, err
	}
	k := size / 2
	s2 := sigma * sigma
	norm := -1 / (math.Pi * s2 * s2)

	out := make([]float64, size*size)
	for i := range size {
		for j := i; j < size; j++ {
			di, dj := float64(i-k), float64(j-k)
			e := -(di*di + dj*dj) / (2 * s2)
			v := norm * (1 - e) * math.Exp(e)
			out[i*size+j] = v
			out[j*size+i] = v
		}
	}
	return out, nil
}

// SpatialMatrix returns the size x size matrix of Gaussian weights of the
// distance from the center. Only one octant is evaluated; the other seven
// are mirrored from it.
func SpatialMatrix(size int, sigma float64) ([]float64, error) {
	if err := validate(size, sigma); err != nil {
		return nil, err
	}
	c := size / 2
	out := make([]float64, size*size)
	set := func(dx, dy int, v float64) {
		out[(c+dy)*size+c+dx] = v
	}

	for dy := 0; dy <= c; dy++ {
		for dx := 0; dx <= dy; dx++ {
			g, err := imgmath.Gaussian(math.Hypot(float64(dx), float64(dy)), sigma)
			if err != nil {
				return nil, err
			}
			for _, sx := range [2]int{1, -1} {
				for _, sy := range [2]int{1, -1} {
					set(sx*dx, sy*dy, g)
					set(sx*dy, sy*dx, g)
				}
			}
		}
	}
	return out, nil
}

// Box returns a 1D kernel of size equal weights w.
func Box(size int, w float64) ([]float64, error) {
	if err := check.Odd(size, "size"); err != nil {
		return nil, err
	}
	if err := check.Positive(size, "size"); err != nil {
		return nil, err
	}
	out := make([]float64, size)
	for i := range out {
		out[i] = w
	}
	return out, nil
}

// WeightedAvg returns a size x size kernel that sums to one, with the center
// weighted w times heavier than its neighbors.
func WeightedAvg(size int, w float64) ([]float64, error) {
	if err := check.Odd(size, "size"); err != nil {
		return nil, err
	}
	if err := check.Positive(size, "size"); err != nil {
		return nil, err
	}
	if err := check.NonNeg(w, "weight"); err != nil {
		return nil, err
	}
	n := size * size
	sum := float64(n-1) + w
	if sum == 0 {
		return nil, check.Errorf("weight must be positive for a 1x1 kernel")
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = 1 / sum
	}
	out[n/2] = w / sum
	return out, nil
}

func validate(size int, sigma float64) error {
	if err := check.Odd(size, "size"); err != nil {
		return err
	}
	if err := check.Positive(size, "size"); err != nil {
		return err
	}
	return check.Positive(sigma, "sigma")
}
