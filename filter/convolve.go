package filter

import (
	"errors"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
	"github.com/gogpu/imgproc/internal/parallel"
	"github.com/gogpu/imgproc/kernel"
)

// Filter1D convolves every pixel with k along one axis. len(k) must be odd.
func Filter1D[T image.Float](img *image.Image[T], k []float64, vertical bool) (*image.Image[T], error) {
	if err := check.Odd(len(k), "kernel length"); err != nil {
		return nil, err
	}
	size := len(k)
	return convolve(img, k, func(dst *image.SubImage[T], x, y int) {
		img.Neighborhood1DInto(dst, x, y, size, vertical)
	}), nil
}

// SeparableFilter applies kv vertically, then kh horizontally. Both kernels
// must have the same odd length.
func SeparableFilter[T image.Float](img *image.Image[T], kv, kh []float64) (*image.Image[T], error) {
	if err := check.Equal(len(kv), len(kh), "kernel lengths"); err != nil {
		return nil, err
	}
	v, err := Filter1D(img, kv, true)
	if err != nil {
		return nil, err
	}
	return Filter1D(v, kh, false)
}

// UnseparableFilter convolves every pixel with the square 2D kernel k,
// applied in row-major order over the neighborhood.
func UnseparableFilter[T image.Float](img *image.Image[T], k []float64) (*image.Image[T], error) {
	side, err := check.Square(len(k), "kernel")
	if err != nil {
		return nil, err
	}
	if err := check.Odd(side, "kernel side"); err != nil {
		return nil, err
	}
	return convolve(img, k, func(dst *image.SubImage[T], x, y int) {
		img.Neighborhood2DInto(dst, x, y, side)
	}), nil
}

// LinearFilter convolves img with the square 2D kernel k. Rank-one kernels
// run as two 1D passes.
func LinearFilter[T image.Float](img *image.Image[T], k []float64) (*image.Image[T], error) {
	kv, kh, err := kernel.Separate(k)
	switch {
	case err == nil:
		return SeparableFilter(img, kv, kh)
	case errors.Is(err, kernel.ErrNotSeparable):
		return UnseparableFilter(img, k)
	default:
		return nil, err
	}
}

// convolve computes the dot product of k with the neighborhood produced by
// gather, independently for every color channel.
func convolve[T image.Float](img *image.Image[T], k []float64, gather func(dst *image.SubImage[T], x, y int)) *image.Image[T] {
	out := image.Blank[T](img.Info())
	w, h, c, alpha := img.WHCA()
	colors := img.ChannelsNonAlpha()
	data := out.Data()

	parallel.Rows(h, func(y0, y1 int) {
		var nb image.SubImage[T]
		acc := make([]float64, colors)
		for y := y0; y < y1; y++ {
			for x := range w {
				gather(&nb, x, y)
				clear(acc)
				for i, p := range nb.Pixels() {
					ki := k[i]
					for ch := range acc {
						acc[ch] += ki * float64(p[ch])
					}
				}

				o := (y*w + x) * c
				for ch, v := range acc {
					data[o+ch] = T(v)
				}
				if alpha {
					data[o+c-1] = image.Alpha(img.PixelUnchecked(x, y))
				}
			}
		}
	})
	return out
}
