// Package morphology implements binary morphology on single-channel images
// whose pixels are 0 or 255.
//
// Every operator builds a summed-area table of its input and tests the sum
// over the (2r+1)×(2r+1) window around each pixel. Windows are clipped to
// the image, and the erode and majority thresholds are taken relative to
// the clipped area, so the duality
//
//	Dilate(Invert(b), r) == Invert(Erode(b, r))
//
// holds at the borders too.
package morphology

import (
	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
	"github.com/gogpu/imgproc/internal/parallel"
	"github.com/gogpu/imgproc/sat"
)

const white = 255

// rule decides an output pixel from the window sum and the window area.
type rule func(sum float64, area int) bool

func eroded(sum float64, area int) bool { return sum == float64(area*white) }

func dilated(sum float64, _ int) bool { return sum >= white }

func majority(sum float64, area int) bool { return sum >= float64(area/2*white) }

func edge(sum float64, area int) bool { return dilated(sum, area) && !eroded(sum, area) }

// Erode sets a pixel iff every pixel in its window is white.
func Erode(img *image.Image[uint8], radius int) (*image.Image[uint8], error) {
	return apply(img, radius, eroded)
}

// Dilate sets a pixel iff any pixel in its window is white.
func Dilate(img *image.Image[uint8], radius int) (*image.Image[uint8], error) {
	return apply(img, radius, dilated)
}

// Majority sets a pixel iff at least half of its window, rounded down, is
// white.
func Majority(img *image.Image[uint8], radius int) (*image.Image[uint8], error) {
	return apply(img, radius, majority)
}

// Open is Dilate after Erode.
func Open(img *image.Image[uint8], radius int) (*image.Image[uint8], error) {
	e, err := Erode(img, radius)
	if err != nil {
		return nil, err
	}
	return Dilate(e, radius)
}

// Close is Erode after Dilate.
func Close(img *image.Image[uint8], radius int) (*image.Image[uint8], error) {
	d, err := Dilate(img, radius)
	if err != nil {
		return nil, err
	}
	return Erode(d, radius)
}

// Gradient sets the pixels that Dilate sets and Erode does not.
func Gradient(img *image.Image[uint8], radius int) (*image.Image[uint8], error) {
	return apply(img, radius, edge)
}

// Invert maps every pixel v to 255 - v.
func Invert(img *image.Image[uint8]) (*image.Image[uint8], error) {
	if err := validate(img); err != nil {
		return nil, err
	}
	return image.MapChannels(img, func(v uint8) uint8 { return white - v }), nil
}

func apply(img *image.Image[uint8], radius int, keep rule) (*image.Image[uint8], error) {
	if err := check.NonNeg(radius, "radius"); err != nil {
		return nil, err
	}
	if err := validate(img); err != nil {
		return nil, err
	}

	w, h := img.WH()
	table := sat.New(img)
	out := image.Blank[uint8](img.Info())
	data := out.Data()
	parallel.Rows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			top, bot := max(y-radius, 0), min(y+radius, h-1)
			for x := range w {
				left, right := max(x-radius, 0), min(x+radius, w-1)
				area := (right - left + 1) * (bot - top + 1)
				if keep(sat.ChannelSum(table, 0, left, top, right, bot), area) {
					data[y*w+x] = white
				}
			}
		}
	})
	return out, nil
}

// validate fails unless img has one channel holding only 0 and 255.
func validate(img *image.Image[uint8]) error {
	if img.Channels() != 1 {
		return check.Errorf("input must be single-channel, got %d channels", img.Channels())
	}
	for i, v := range img.Data() {
		if v != 0 && v != white {
			x, y := image.Coords(i, img.Width())
			return check.Errorf("input must be binary, pixel (%d, %d) is %d", x, y, v)
		}
	}
	return nil
}
