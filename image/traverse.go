package image

import (
	"fmt"

	"github.com/gogpu/imgproc/internal/parallel"
)

// The traversal primitives below are the only code that knows the
// interleaved layout. Rows are evaluated through internal/parallel, so
// callbacks must be safe for concurrent use when parallelism is enabled.

// MapPixels builds a new image by calling f for every pixel. f appends the
// produced channels to out and returns it. The output channel count is taken
// from the first pixel and must stay constant; MapPixels panics otherwise.
func MapPixels[T, S Number](img *Image[T], f func(p []T, out []S) []S) *Image[S] {
	return mapPixels(img, f, img.info.Alpha)
}

// MapPixelsIfAlpha applies f to the color channels of every pixel and appends
// g(alpha). Without an alpha channel it is MapPixels(img, f).
func MapPixelsIfAlpha[T, S Number](img *Image[T], f func(p []T, out []S) []S, g func(T) S) *Image[S] {
	if !img.info.Alpha {
		return MapPixels(img, f)
	}
	return mapPixels(img, func(p []T, out []S) []S {
		out = f(WithoutAlpha(p), out)
		return append(out, g(Alpha(p)))
	}, true)
}

func mapPixels[T, S Number](img *Image[T], f func(p []T, out []S) []S, alpha bool) *Image[S] {
	first := f(img.At(0), nil)
	c := len(first)
	info := img.info.WithChannels(c, alpha && c > 1)
	if err := info.Validate(); err != nil {
		panic(fmt.Sprintf("image: MapPixels produced an invalid layout: %v", err))
	}

	out := &Image[S]{info: info, data: make([]S, info.FullSize())}
	copy(out.data, first)

	w := img.info.Width
	parallel.Rows(img.info.Height, func(y0, y1 int) {
		buf := make([]S, 0, c)
		for i := max(y0*w, 1); i < y1*w; i++ {
			buf = f(img.At(i), buf[:0])
			if len(buf) != c {
				panic(fmt.Sprintf("image: MapPixels: pixel %d produced %d channels, want %d", i, len(buf), c))
			}
			copy(out.data[i*c:], buf)
		}
	})
	return out
}

// MapChannels builds a new image with f applied to every channel value.
func MapChannels[T, S Number](img *Image[T], f func(T) S) *Image[S] {
	out := &Image[S]{info: img.info, data: make([]S, len(img.data))}
	rowLen := img.info.Width * img.info.Channels
	parallel.Rows(img.info.Height, func(y0, y1 int) {
		for i := y0 * rowLen; i < y1*rowLen; i++ {
			out.data[i] = f(img.data[i])
		}
	})
	return out
}

// MapChannelsIfAlpha applies f to color channels and g to the alpha channel.
// Without an alpha channel it is MapChannels(img, f).
func MapChannelsIfAlpha[T, S Number](img *Image[T], f, g func(T) S) *Image[S] {
	if !img.info.Alpha {
		return MapChannels(img, f)
	}
	out := &Image[S]{info: img.info, data: make([]S, len(img.data))}
	c := img.info.Channels
	rowLen := img.info.Width * c
	parallel.Rows(img.info.Height, func(y0, y1 int) {
		for i := y0 * rowLen; i < y1*rowLen; i++ {
			if i%c == c-1 {
				out.data[i] = g(img.data[i])
			} else {
				out.data[i] = f(img.data[i])
			}
		}
	})
	return out
}

// ApplyPixels calls f on every pixel; f modifies the pixel in place.
func (img *Image[T]) ApplyPixels(f func(p []T)) {
	w := img.info.Width
	parallel.Rows(img.info.Height, func(y0, y1 int) {
		for i := y0 * w; i < y1*w; i++ {
			f(img.At(i))
		}
	})
}

// ApplyPixelsIfAlpha calls f on the color channels of every pixel and
// replaces alpha with g(alpha). Without alpha it is ApplyPixels(f).
func (img *Image[T]) ApplyPixelsIfAlpha(f func(p []T), g func(T) T) {
	if !img.info.Alpha {
		img.ApplyPixels(f)
		return
	}
	img.ApplyPixels(func(p []T) {
		f(WithoutAlpha(p))
		p[len(p)-1] = g(p[len(p)-1])
	})
}

// ApplyChannels replaces every channel value v with f(v).
func (img *Image[T]) ApplyChannels(f func(T) T) {
	rowLen := img.info.Width * img.info.Channels
	parallel.Rows(img.info.Height, func(y0, y1 int) {
		for i := y0 * rowLen; i < y1*rowLen; i++ {
			img.data[i] = f(img.data[i])
		}
	})
}

// ApplyChannelsIfAlpha replaces color values with f(v) and alpha values with
// g(v). Without alpha it is ApplyChannels(f).
func (img *Image[T]) ApplyChannelsIfAlpha(f, g func(T) T) {
	if !img.info.Alpha {
		img.ApplyChannels(f)
		return
	}
	c := img.info.Channels
	rowLen := img.info.Width * c
	parallel.Rows(img.info.Height, func(y0, y1 int) {
		for i := y0 * rowLen; i < y1*rowLen; i++ {
			if i%c == c-1 {
				img.data[i] = g(img.data[i])
			} else {
				img.data[i] = f(img.data[i])
			}
		}
	})
}

// EditChannel replaces channel index of every pixel with f(v).
func (img *Image[T]) EditChannel(f func(T) T, index int) {
	c := img.info.Channels
	if index < 0 || index >= c {
		panic(fmt.Sprintf("image: channel index %d out of range [0, %d)", index, c))
	}
	for i := index; i < len(img.data); i += c {
		img.data[i] = f(img.data[i])
	}
}
