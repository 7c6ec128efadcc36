// Package image provides the in-memory image representation used by every
// imgproc operator.
//
// An Image holds a dense, row-major, interleaved buffer: the pixel at (x, y)
// starts at offset (y*width + x) * channels. Pixels are exposed as slices of
// that buffer, never as owned per-pixel values.
//
// Pixel access outside the image bounds is a programming error and panics.
// Argument errors from constructors wrap imgproc.ErrInvalidArg.
package image

import (
	"fmt"
	"slices"

	"github.com/gogpu/imgproc/internal/check"
)

// Number is the set of supported element types.
type Number interface {
	~uint8 | ~uint16 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float is the set of floating element types accepted by convolution.
type Float interface {
	~float32 | ~float64
}

// Image is an owned image buffer with element type T.
//
// Thread safety: concurrent reads are safe. Writes require external
// synchronization.
type Image[T Number] struct {
	info Info
	data []T
}

// New creates an image that takes ownership of data.
// len(data) must equal info.FullSize().
func New[T Number](info Info, data []T) (*Image[T], error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if len(data) != info.FullSize() {
		return nil, check.Errorf("data length %d does not match %dx%dx%d",
			len(data), info.Width, info.Height, info.Channels)
	}
	return &Image[T]{info: info, data: data}, nil
}

// FromSlice creates an image from a copy of data.
func FromSlice[T Number](width, height, channels int, alpha bool, data []T) (*Image[T], error) {
	return New(Info{Width: width, Height: height, Channels: channels, Alpha: alpha}, slices.Clone(data))
}

// FromPixels creates an image by concatenating per-pixel slices in row-major
// order. Every pixel must have exactly channels values.
func FromPixels[T Number](width, height, channels int, alpha bool, pixels [][]T) (*Image[T], error) {
	info := Info{Width: width, Height: height, Channels: channels, Alpha: alpha}
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if len(pixels) != info.Size() {
		return nil, check.Errorf("got %d pixels for a %dx%d image", len(pixels), width, height)
	}

	data := make([]T, 0, info.FullSize())
	for i, p := range pixels {
		if len(p) != channels {
			return nil, check.Errorf("pixel %d has %d channels, want %d", i, len(p), channels)
		}
		data = append(data, p...)
	}
	return &Image[T]{info: info, data: data}, nil
}

// Blank creates a zero-filled image. It panics if info is invalid.
func Blank[T Number](info Info) *Image[T] {
	if err := info.Validate(); err != nil {
		panic(fmt.Sprintf("image: Blank: %v", err))
	}
	return &Image[T]{info: info, data: make([]T, info.FullSize())}
}

// Empty creates an image with capacity for info.FullSize() values and no
// pixels. Fill it with AppendPixel. It panics if info is invalid.
func Empty[T Number](info Info) *Image[T] {
	if err := info.Validate(); err != nil {
		panic(fmt.Sprintf("image: Empty: %v", err))
	}
	return &Image[T]{info: info, data: make([]T, 0, info.FullSize())}
}

// AppendPixel appends one pixel to an image created with Empty.
func (img *Image[T]) AppendPixel(p []T) {
	if len(p) != img.info.Channels {
		panic(fmt.Sprintf("image: pixel has %d channels, want %d", len(p), img.info.Channels))
	}
	if len(img.data)+len(p) > img.info.FullSize() {
		panic("image: AppendPixel beyond image size")
	}
	img.data = append(img.data, p...)
}

// Info returns the image shape.
func (img *Image[T]) Info() Info { return img.info }

// Width returns the image width in pixels.
func (img *Image[T]) Width() int { return img.info.Width }

// Height returns the image height in pixels.
func (img *Image[T]) Height() int { return img.info.Height }

// Channels returns the number of channels per pixel.
func (img *Image[T]) Channels() int { return img.info.Channels }

// WH returns width and height.
func (img *Image[T]) WH() (int, int) { return img.info.WH() }

// WHC returns width, height and channels.
func (img *Image[T]) WHC() (int, int, int) { return img.info.WHC() }

// WHCA returns width, height, channels and the alpha flag.
func (img *Image[T]) WHCA() (int, int, int, bool) { return img.info.WHCA() }

// Size returns the number of pixels.
func (img *Image[T]) Size() int { return img.info.Size() }

// FullSize returns the number of channel values.
func (img *Image[T]) FullSize() int { return img.info.FullSize() }

// ChannelsNonAlpha returns the number of color channels.
func (img *Image[T]) ChannelsNonAlpha() int { return img.info.ChannelsNonAlpha() }

// Data returns the underlying buffer. Writes through it modify the image.
func (img *Image[T]) Data() []T { return img.data }

// Index returns the pixel index of (x, y).
func (img *Image[T]) Index(x, y int) int { return y*img.info.Width + x }

// Pixel returns the pixel at (x, y). The returned slice aliases the image
// buffer, so it serves as the mutable accessor too. Pixel panics if (x, y)
// is out of bounds.
func (img *Image[T]) Pixel(x, y int) []T {
	if x < 0 || x >= img.info.Width {
		panic(fmt.Sprintf("image: index out of bounds: the width is %d, but the x index is %d", img.info.Width, x))
	}
	if y < 0 || y >= img.info.Height {
		panic(fmt.Sprintf("image: index out of bounds: the height is %d, but the y index is %d", img.info.Height, y))
	}
	return img.PixelUnchecked(x, y)
}

// PixelUnchecked returns the pixel at (x, y) without the bounds check.
// The caller guarantees 0 <= x < width and 0 <= y < height.
func (img *Image[T]) PixelUnchecked(x, y int) []T {
	c := img.info.Channels
	start := (y*img.info.Width + x) * c
	return img.data[start : start+c : start+c]
}

// At returns the pixel with index i in row-major order.
func (img *Image[T]) At(i int) []T {
	if i < 0 || i >= img.info.Size() {
		panic(fmt.Sprintf("image: index out of bounds: the len is %d, but the index is %d", img.info.Size(), i))
	}
	c := img.info.Channels
	return img.data[i*c : i*c+c : i*c+c]
}

// SetPixel copies p into the pixel at (x, y).
func (img *Image[T]) SetPixel(x, y int, p []T) {
	dst := img.Pixel(x, y)
	if len(p) != len(dst) {
		panic(fmt.Sprintf("image: pixel has %d channels, want %d", len(p), len(dst)))
	}
	copy(dst, p)
}

// SetPixelIndexed copies p into the pixel with index i.
func (img *Image[T]) SetPixelIndexed(i int, p []T) {
	dst := img.At(i)
	if len(p) != len(dst) {
		panic(fmt.Sprintf("image: pixel has %d channels, want %d", len(p), len(dst)))
	}
	copy(dst, p)
}

// Clone returns a deep copy.
func (img *Image[T]) Clone() *Image[T] {
	return &Image[T]{info: img.info, data: slices.Clone(img.data)}
}

// Equal reports whether both images have the same shape and values.
func (img *Image[T]) Equal(other *Image[T]) bool {
	return img.info == other.info && slices.Equal(img.data, other.data)
}

// Replace swaps in the buffer and shape of other. Mutating variants of
// operators are expressed as img.Replace(op(img)).
func (img *Image[T]) Replace(other *Image[T]) {
	img.info = other.info
	img.data = other.data
}
