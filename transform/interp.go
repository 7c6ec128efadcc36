package transform

import (
	"fmt"
	"math"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/imgmath"
	"github.com/gogpu/imgproc/internal/check"
)

// Method selects how the source is sampled between pixel positions.
type Method int

const (
	// NearestNeighbor copies the closest source pixel.
	NearestNeighbor Method = iota
	// Bilinear blends the 2×2 surrounding pixels.
	Bilinear
	// Bicubic blends a 4×4 neighborhood with Catmull-Rom weights.
	Bicubic
	// Lanczos blends a 2a×2a neighborhood with the Lanczos window.
	Lanczos
)

var methodNames = [...]string{"nearest", "bilinear", "bicubic", "lanczos"}

// String returns the method name.
func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod parses a name as returned by Method.String.
func ParseMethod(s string) (Method, error) {
	for i, name := range methodNames {
		if name == s {
			return Method(i), nil
		}
	}
	return 0, check.Errorf("unknown interpolation %q", s)
}

// DefaultLanczos is the window size used by Scale with Lanczos.
const DefaultLanczos = 3

// sampler writes into out the value of img at (x, y) in pixel coordinates,
// where pixel (i, j) sits at integer position (i, j). Taps outside the image
// are clamped to the edge.
type sampler[T image.Float] func(img *image.Image[T], x, y float64, out []T)

func samplerFor[T image.Float](m Method, a int) (sampler[T], error) {
	switch m {
	case NearestNeighbor:
		return sampleNearest[T], nil
	case Bilinear:
		return sampleBilinear[T], nil
	case Bicubic:
		return sampleBicubic[T], nil
	case Lanczos:
		return func(img *image.Image[T], x, y float64, out []T) {
			sampleLanczos(img, x, y, a, out)
		}, nil
	}
	return nil, check.Errorf("unknown interpolation %v", m)
}

func sampleNearest[T image.Float](img *image.Image[T], x, y float64, out []T) {
	w, h := img.WH()
	xi := imgmath.Clamp(int(math.Round(x)), 0, w-1)
	yi := imgmath.Clamp(int(math.Round(y)), 0, h-1)
	copy(out, img.PixelUnchecked(xi, yi))
}

func sampleBilinear[T image.Float](img *image.Image[T], x, y float64, out []T) {
	w, h := img.WH()
	fx, fy := math.Floor(x), math.Floor(y)
	tx, ty := x-fx, y-fy

	x1 := imgmath.Clamp(int(fx), 0, w-1)
	x2 := imgmath.Clamp(int(fx)+1, 0, w-1)
	y1 := imgmath.Clamp(int(fy), 0, h-1)
	y2 := imgmath.Clamp(int(fy)+1, 0, h-1)

	p11 := img.PixelUnchecked(x1, y1)
	p21 := img.PixelUnchecked(x2, y1)
	p12 := img.PixelUnchecked(x1, y2)
	p22 := img.PixelUnchecked(x2, y2)
	for c := range out {
		v := float64(p11[c])*(1-tx)*(1-ty) +
			float64(p21[c])*tx*(1-ty) +
			float64(p12[c])*(1-tx)*ty +
			float64(p22[c])*tx*ty
		out[c] = T(v)
	}
}

func sampleBicubic[T image.Float](img *image.Image[T], x, y float64, out []T) {
	w, h := img.WH()
	fx, fy := math.Floor(x), math.Floor(y)
	tx, ty := x-fx, y-fy

	var wx, wy [4]float64
	for m := range 4 {
		wx[m] = imgmath.CubicWeight(tx - float64(m-1))
		wy[m] = imgmath.CubicWeight(ty - float64(m-1))
	}

	var acc [image.MaxChannels]float64
	for n := range 4 {
		yi := imgmath.Clamp(int(fy)+n-1, 0, h-1)
		for m := range 4 {
			xi := imgmath.Clamp(int(fx)+m-1, 0, w-1)
			p := img.PixelUnchecked(xi, yi)
			r := wx[m] * wy[n]
			for c := range out {
				acc[c] += float64(p[c]) * r
			}
		}
	}
	for c := range out {
		out[c] = T(acc[c])
	}
}

// sampleLanczos normalizes by the sum of the window weights so flat regions
// stay flat.
func sampleLanczos[T image.Float](img *image.Image[T], x, y float64, a int, out []T) {
	w, h := img.WH()
	fx, fy := math.Floor(x), math.Floor(y)
	tx, ty := x-fx, y-fy
	size := float64(a)

	var acc [image.MaxChannels]float64
	var sum float64
	for j := 1 - a; j <= a; j++ {
		ly := imgmath.Lanczos(ty-float64(j), size)
		if ly == 0 {
			continue
		}
		yi := imgmath.Clamp(int(fy)+j, 0, h-1)
		for i := 1 - a; i <= a; i++ {
			r := imgmath.Lanczos(tx-float64(i), size) * ly
			if r == 0 {
				continue
			}
			p := img.PixelUnchecked(imgmath.Clamp(int(fx)+i, 0, w-1), yi)
			for c := range out {
				acc[c] += float64(p[c]) * r
			}
			sum += r
		}
	}
	if sum == 0 {
		sum = 1
	}
	for c := range out {
		out[c] = T(acc[c] / sum)
	}
}
