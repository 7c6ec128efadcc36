package image

import "fmt"

// Neighborhoods use clamp padding: a coordinate that falls outside the image
// on an axis is replaced by the center coordinate on that axis, so border
// pixels repeat the center pixel's row or column.

// Neighborhood1D returns the row (or column, if vertical) of size pixels
// centered at (x, y). size must be odd.
func (img *Image[T]) Neighborhood1D(x, y, size int, vertical bool) *SubImage[T] {
	s := &SubImage[T]{}
	img.Neighborhood1DInto(s, x, y, size, vertical)
	return s
}

// Neighborhood1DInto is Neighborhood1D writing into dst, reusing its storage.
func (img *Image[T]) Neighborhood1DInto(dst *SubImage[T], x, y, size int, vertical bool) {
	mustOddSize(size)
	img.Pixel(x, y)

	dst.pixels = dst.pixels[:0]
	half := size / 2
	if vertical {
		for j := y - half; j <= y+half; j++ {
			dst.pixels = append(dst.pixels, img.PixelUnchecked(x, clampCenter(j, y, img.info.Height)))
		}
		dst.info = img.info.WithSize(1, size)
		return
	}
	for i := x - half; i <= x+half; i++ {
		dst.pixels = append(dst.pixels, img.PixelUnchecked(clampCenter(i, x, img.info.Width), y))
	}
	dst.info = img.info.WithSize(size, 1)
}

// Neighborhood2D returns the size x size square centered at (x, y), top-left
// first in row-major order. size must be odd.
func (img *Image[T]) Neighborhood2D(x, y, size int) *SubImage[T] {
	s := &SubImage[T]{}
	img.Neighborhood2DInto(s, x, y, size)
	return s
}

// Neighborhood2DInto is Neighborhood2D writing into dst, reusing its storage.
func (img *Image[T]) Neighborhood2DInto(dst *SubImage[T], x, y, size int) {
	mustOddSize(size)
	img.Pixel(x, y)

	dst.pixels = dst.pixels[:0]
	half := size / 2
	for j := y - half; j <= y+half; j++ {
		cy := clampCenter(j, y, img.info.Height)
		for i := x - half; i <= x+half; i++ {
			dst.pixels = append(dst.pixels, img.PixelUnchecked(clampCenter(i, x, img.info.Width), cy))
		}
	}
	dst.info = img.info.WithSize(size, size)
}

func clampCenter(v, center, limit int) int {
	if v < 0 || v >= limit {
		return center
	}
	return v
}

func mustOddSize(size int) {
	if size < 1 || size%2 == 0 {
		panic(fmt.Sprintf("image: neighborhood size must be odd and positive, got %d", size))
	}
}
