package image

import "iter"

// Point is a pixel coordinate.
type Point struct {
	X, Y int
}

// Pixels returns an iterator over (point, pixel) pairs in row-major order.
// The yielded slices alias the image buffer.
//
//	for pt, p := range image.Pixels(img) {
//	    ...
//	}
func Pixels[T Number](img *Image[T]) iter.Seq2[Point, []T] {
	return func(yield func(Point, []T) bool) {
		w, h := img.info.WH()
		for y := range h {
			for x := range w {
				if !yield(Point{X: x, Y: y}, img.PixelUnchecked(x, y)) {
					return
				}
			}
		}
	}
}

// Coords returns the (x, y) coordinate of pixel index i in an image of the
// given width.
func Coords(i, width int) (int, int) {
	return i % width, i / width
}
