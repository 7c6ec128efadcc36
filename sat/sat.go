// Package sat builds summed-area tables and answers rectangular-sum queries
// in constant time.
package sat

import (
	"fmt"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/parallel"
)

// New returns the summed-area table of img: an image of the same layout in
// which every channel value at (x, y) is the sum of that channel over the
// rectangle (0, 0)-(x, y) inclusive.
//
// The table is built in two passes. Row prefix sums are independent and run
// through the shared worker pool; the column pass is sequential.
func New[T image.Number](img *image.Image[T]) *image.Image[float64] {
	w, h, c := img.WHC()
	out := image.Blank[float64](img.Info())
	src, dst := img.Data(), out.Data()
	rowLen := w * c

	parallel.Rows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := y * rowLen
			for k := range c {
				dst[row+k] = float64(src[row+k])
			}
			for i := row + c; i < row+rowLen; i++ {
				dst[i] = dst[i-c] + float64(src[i])
			}
		}
	})

	for y := 1; y < h; y++ {
		prev := dst[(y-1)*rowLen : y*rowLen]
		cur := dst[y*rowLen : (y+1)*rowLen]
		for i := range cur {
			cur[i] += prev[i]
		}
	}
	return out
}

// RectangularSum returns the per-channel sum of the source image over the
// rectangle with inclusive corners (x0, y0) and (x1, y1), given its
// summed-area table. It panics if the rectangle is empty or out of bounds.
func RectangularSum(table *image.Image[float64], x0, y0, x1, y1 int) []float64 {
	out := make([]float64, table.Channels())
	RectangularSumInto(out, table, x0, y0, x1, y1)
	return out
}

// RectangularSumInto is RectangularSum writing into out.
func RectangularSumInto(out []float64, table *image.Image[float64], x0, y0, x1, y1 int) {
	if x0 > x1 || y0 > y1 {
		panic(fmt.Sprintf("sat: empty rectangle (%d, %d)-(%d, %d)", x0, y0, x1, y1))
	}
	br := table.Pixel(x1, y1)
	copy(out, br)
	if x0 > 0 {
		sub(out, table.Pixel(x0-1, y1))
	}
	if y0 > 0 {
		sub(out, table.Pixel(x1, y0-1))
	}
	if x0 > 0 && y0 > 0 {
		tl := table.Pixel(x0-1, y0-1)
		for k := range out {
			out[k] += tl[k]
		}
	}
}

// ChannelSum is RectangularSum for a single channel.
func ChannelSum(table *image.Image[float64], channel, x0, y0, x1, y1 int) float64 {
	c := table.Channels()
	data := table.Data()
	at := func(x, y int) float64 {
		return data[table.Index(x, y)*c+channel]
	}

	s := at(x1, y1)
	if x0 > 0 {
		s -= at(x0-1, y1)
	}
	if y0 > 0 {
		s -= at(x1, y0-1)
	}
	if x0 > 0 && y0 > 0 {
		s += at(x0-1, y0-1)
	}
	return s
}

func sub(dst, v []float64) {
	for k := range dst {
		dst[k] -= v[k]
	}
}
