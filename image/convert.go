package image

import (
	"math"

	"github.com/gogpu/imgproc/internal/check"
)

// Convert returns a copy of img with every value converted to S by a plain
// numeric conversion.
func Convert[S, T Number](img *Image[T]) *Image[S] {
	return MapChannels(img, func(v T) S { return S(v) })
}

// ToFloat converts an 8-bit image to float64 with values kept in [0, 255].
func ToFloat(img *Image[uint8]) *Image[float64] {
	return Convert[float64](img)
}

// ToU8 rounds and clamps a floating image to 8 bits.
func ToU8[T Float](img *Image[T]) *Image[uint8] {
	return MapChannels(img, func(v T) uint8 { return ClampU8(float64(v)) })
}

// ClampU8 rounds v to the nearest integer and clamps it to [0, 255].
func ClampU8(v float64) uint8 {
	if v != v { //nolint:gocritic // NaN maps to 0
		return 0
	}
	r := math.Round(v)
	if r <= 0 {
		return 0
	}
	if r >= 255 {
		return 255
	}
	return uint8(r)
}

// SplitChannels returns one single-channel image per channel of img.
func SplitChannels[T Number](img *Image[T]) []*Image[T] {
	c := img.info.Channels
	out := make([]*Image[T], c)
	for k := range c {
		plane := Blank[T](img.info.WithChannels(1, false))
		for i := range img.info.Size() {
			plane.data[i] = img.data[i*c+k]
		}
		out[k] = plane
	}
	return out
}

// MergeChannels interleaves single-channel planes of equal size into one
// image. alpha marks the last plane as alpha.
func MergeChannels[T Number](planes []*Image[T], alpha bool) (*Image[T], error) {
	if err := check.InRange(len(planes), 1, MaxChannels, "planes"); err != nil {
		return nil, err
	}
	base := planes[0].info
	for _, p := range planes {
		if p.info.Channels != 1 || p.info.Width != base.Width || p.info.Height != base.Height {
			return nil, check.Errorf("planes must be single-channel %dx%d images", base.Width, base.Height)
		}
	}

	info := base.WithChannels(len(planes), alpha)
	if err := info.Validate(); err != nil {
		return nil, err
	}
	out := Blank[T](info)
	c := len(planes)
	for k, p := range planes {
		for i, v := range p.data {
			out.data[i*c+k] = v
		}
	}
	return out, nil
}
