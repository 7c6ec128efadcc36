package filter

import (
	"math"
	"slices"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
	"github.com/gogpu/imgproc/internal/parallel"
)

// AlphaTrimmedMean replaces every channel value with the mean of its
// (2*radius+1) x (2*radius+1) edge-replicated neighborhood after dropping
// the alpha/2 smallest and alpha/2 largest values. alpha must be even and
// smaller than the neighborhood size. alpha = 0 gives the box mean and the
// largest valid alpha gives the median.
func AlphaTrimmedMean(img *image.Image[uint8], radius, alpha int) (*image.Image[uint8], error) {
	if err := check.NonNeg(radius, "radius"); err != nil {
		return nil, err
	}
	if err := check.NonNeg(alpha, "alpha"); err != nil {
		return nil, err
	}
	if err := check.Even(alpha, "alpha"); err != nil {
		return nil, err
	}
	size := 2*radius + 1
	if alpha >= size*size {
		return nil, check.Errorf("alpha must be below %d for radius %d, got %d", size*size, radius, alpha)
	}

	w, h, c := img.WHC()
	out := image.Blank[uint8](img.Info())
	src, dst := img.Data(), out.Data()
	trim := alpha / 2
	keep := size*size - alpha

	parallel.Rows(h, func(y0, y1 int) {
		window := make([]uint8, size*size)
		for y := y0; y < y1; y++ {
			for x := range w {
				for ch := range c {
					i := 0
					for j := y - radius; j <= y+radius; j++ {
						row := clampInt(j, 0, h-1) * w
						for k := x - radius; k <= x+radius; k++ {
							window[i] = src[(row+clampInt(k, 0, w-1))*c+ch]
							i++
						}
					}
					slices.Sort(window)

					sum := 0
					for _, v := range window[trim : trim+keep] {
						sum += int(v)
					}
					dst[(y*w+x)*c+ch] = uint8(math.Round(float64(sum) / float64(keep)))
				}
			}
		}
	})
	return out, nil
}
