package image

import "fmt"

// SubImage is a non-owning view made of pixel slices from a backing Image.
// It carries neighborhoods to kernel evaluators and describes arbitrary
// rectangles. A SubImage must not outlive the image it borrows from.
type SubImage[T Number] struct {
	info   Info
	pixels [][]T
}

// NewSubImage builds a view from pixel slices in row-major order.
func NewSubImage[T Number](width, height, channels int, alpha bool, pixels [][]T) *SubImage[T] {
	if len(pixels) != width*height {
		panic(fmt.Sprintf("image: sub-image of %dx%d needs %d pixels, got %d", width, height, width*height, len(pixels)))
	}
	return &SubImage[T]{
		info:   Info{Width: width, Height: height, Channels: channels, Alpha: alpha},
		pixels: pixels,
	}
}

// Info returns the shape of the view.
func (s *SubImage[T]) Info() Info { return s.info }

// Len returns the number of pixels in the view.
func (s *SubImage[T]) Len() int { return len(s.pixels) }

// At returns the pixel with index i.
func (s *SubImage[T]) At(i int) []T { return s.pixels[i] }

// Pixel returns the pixel at (x, y) within the view.
func (s *SubImage[T]) Pixel(x, y int) []T {
	if x < 0 || x >= s.info.Width || y < 0 || y >= s.info.Height {
		panic(fmt.Sprintf("image: sub-image index (%d, %d) out of bounds %dx%d", x, y, s.info.Width, s.info.Height))
	}
	return s.pixels[y*s.info.Width+x]
}

// Pixels returns the pixel slices in row-major order.
func (s *SubImage[T]) Pixels() [][]T { return s.pixels }

// ToImage copies the view into a new owned Image.
func (s *SubImage[T]) ToImage() *Image[T] {
	out := Empty[T](s.info)
	for _, p := range s.pixels {
		out.AppendPixel(p)
	}
	return out
}

// SubImage returns a view of the rectangle with top-left corner (x, y).
// It panics if the rectangle does not lie inside the image.
func (img *Image[T]) SubImage(x, y, width, height int) *SubImage[T] {
	if x < 0 || y < 0 || width < 1 || height < 1 || x+width > img.info.Width || y+height > img.info.Height {
		panic(fmt.Sprintf("image: rectangle (%d, %d, %d, %d) outside %dx%d image",
			x, y, width, height, img.info.Width, img.info.Height))
	}
	pixels := make([][]T, 0, width*height)
	for j := y; j < y+height; j++ {
		for i := x; i < x+width; i++ {
			pixels = append(pixels, img.PixelUnchecked(i, j))
		}
	}
	return &SubImage[T]{
		info:   img.info.WithSize(width, height),
		pixels: pixels,
	}
}
