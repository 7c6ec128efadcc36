package filter

import (
	"fmt"
	"math"

	"github.com/gogpu/imgproc/colorspace"
	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
	"github.com/gogpu/imgproc/internal/parallel"
	"github.com/gogpu/imgproc/kernel"
)

// Bilateral selects the bilateral filter algorithm.
type Bilateral int

const (
	// Direct evaluates the full spatial window at every pixel.
	Direct Bilateral = iota
	// Grid is the bilateral grid approximation. Not implemented.
	Grid
	// LocalHistogram is the local-histogram approximation. Not implemented.
	LocalHistogram
)

// String returns the algorithm name.
func (b Bilateral) String() string {
	switch b {
	case Direct:
		return "direct"
	case Grid:
		return "grid"
	case LocalHistogram:
		return "local-histogram"
	}
	return fmt.Sprintf("Bilateral(%d)", int(b))
}

// BilateralFilter smooths an 8-bit sRGB image while preserving edges.
//
// Pixels are compared in CIELAB (D65). Each output channel is the average of
// its neighborhood weighted by a spatial Gaussian of standard deviation
// spatialSigma over a window of side 4*spatialSigma+1 (made odd), and by a
// Gaussian of standard deviation rangeSigma over the channel difference from
// the center pixel.
func BilateralFilter(img *image.Image[uint8], rangeSigma, spatialSigma float64, algorithm Bilateral) (*image.Image[uint8], error) {
	if err := check.Positive(rangeSigma, "range sigma"); err != nil {
		return nil, err
	}
	if err := check.Positive(spatialSigma, "spatial sigma"); err != nil {
		return nil, err
	}
	if algorithm != Direct {
		return nil, check.Errorf("unsupported bilateral algorithm %v", algorithm)
	}

	size := int(spatialSigma*4 + 1)
	if size%2 == 0 {
		size++
	}
	spatial, err := kernel.CachedSpatialMatrix(size, spatialSigma)
	if err != nil {
		return nil, err
	}

	lab, err := colorspace.SRGBToLab(img, colorspace.D65)
	if err != nil {
		return nil, err
	}

	w, h, c, alpha := lab.WHCA()
	colors := lab.ChannelsNonAlpha()
	out := image.Blank[float64](lab.Info())
	twoRangeSq := 2 * rangeSigma * rangeSigma
	rangeNorm := 1 / (math.Pi * twoRangeSq)

	parallel.Rows(h, func(y0, y1 int) {
		var nb image.SubImage[float64]
		for y := y0; y < y1; y++ {
			for x := range w {
				lab.Neighborhood2DInto(&nb, x, y, size)
				p := lab.PixelUnchecked(x, y)
				o := out.PixelUnchecked(x, y)
				for ch := range colors {
					var acc, total float64
					for i, q := range nb.Pixels() {
						d := p[ch] - q[ch]
						wt := spatial[i] * rangeNorm * math.Exp(-d*d/twoRangeSq)
						acc += wt * q[ch]
						total += wt
					}
					o[ch] = acc / total
				}
				if alpha {
					o[c-1] = p[c-1]
				}
			}
		}
	})
	return colorspace.LabToSRGB(out, colorspace.D65)
}
