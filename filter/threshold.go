package filter

import (
	"fmt"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
)

// Thresh selects the thresholding rule.
type Thresh int

const (
	// Binary maps v > t to max and everything else to 0.
	Binary Thresh = iota
	// BinaryInv maps v > t to 0 and everything else to max.
	BinaryInv
	// Trunc clips values above t to t.
	Trunc
	// ToZero zeroes values not above t.
	ToZero
	// ToZeroInv zeroes values above t.
	ToZeroInv
)

var threshNames = [...]string{"binary", "binary-inv", "trunc", "to-zero", "to-zero-inv"}

// String returns the mode name.
func (m Thresh) String() string {
	if m >= 0 && int(m) < len(threshNames) {
		return threshNames[m]
	}
	return fmt.Sprintf("Thresh(%d)", int(m))
}

// ParseThresh parses a mode name as returned by Thresh.String.
func ParseThresh(s string) (Thresh, error) {
	for i, name := range threshNames {
		if name == s {
			return Thresh(i), nil
		}
	}
	return 0, check.Errorf("unknown threshold mode %q", s)
}

// Threshold applies mode with threshold t to a grayscale image. maxVal is the
// value Binary and BinaryInv emit for "on" pixels. Alpha is kept.
func Threshold[T image.Float](img *image.Image[T], t, maxVal T, mode Thresh) (*image.Image[T], error) {
	if err := check.Grayscale(img.Channels(), img.Info().Alpha); err != nil {
		return nil, err
	}
	var f func(T) T
	switch mode {
	case Binary:
		f = func(v T) T {
			if v > t {
				return maxVal
			}
			return 0
		}
	case BinaryInv:
		f = func(v T) T {
			if v > t {
				return 0
			}
			return maxVal
		}
	case Trunc:
		f = func(v T) T {
			if v > t {
				return t
			}
			return v
		}
	case ToZero:
		f = func(v T) T {
			if v > t {
				return v
			}
			return 0
		}
	case ToZeroInv:
		f = func(v T) T {
			if v > t {
				return 0
			}
			return v
		}
	default:
		return nil, check.Errorf("unknown threshold mode %v", mode)
	}
	return image.MapChannelsIfAlpha(img, f, func(a T) T { return a }), nil
}

// Residual returns a - b, channel by channel. Both images must have the
// same layout.
func Residual[T image.Float](a, b *image.Image[T]) (*image.Image[T], error) {
	if err := check.Equal(a.Info(), b.Info(), "image layouts"); err != nil {
		return nil, err
	}
	out := a.Clone()
	bd := b.Data()
	data := out.Data()
	for i := range data {
		data[i] -= bd[i]
	}
	return out, nil
}
