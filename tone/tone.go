// Package tone adjusts brightness, contrast, saturation, gamma and the
// lightness histogram of 8-bit images. Alpha is never modified.
package tone

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/gogpu/imgproc/colorspace"
	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
)

// Method selects the space a tone adjustment is applied in.
type Method int

const (
	// RGB adjusts every color channel through a 256-entry lookup table.
	RGB Method = iota
	// Lab adjusts only the L* channel in CIELAB (D50).
	Lab
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case RGB:
		return "rgb"
	case Lab:
		return "lab"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod parses "rgb" or "lab".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "rgb":
		return RGB, nil
	case "lab":
		return Lab, nil
	}
	return 0, check.Errorf("unknown tone method %q", s)
}

func keep(a uint8) uint8 { return a }

// lookup builds a 256-entry table from f and applies it to the color
// channels of img.
func lookup(img *image.Image[uint8], f func(v float64) float64) *image.Image[uint8] {
	var table [256]uint8
	for i := range table {
		table[i] = image.ClampU8(f(float64(i)))
	}
	return image.MapChannelsIfAlpha(img, func(v uint8) uint8 { return table[v] }, keep)
}

// editLightness applies f to L* of img in CIELAB relative to white.
func editLightness(img *image.Image[uint8], white colorspace.White, f func(l float64) float64) (*image.Image[uint8], error) {
	lab, err := colorspace.SRGBToLab(img, white)
	if err != nil {
		return nil, err
	}
	lab.EditChannel(f, 0)
	return colorspace.LabToSRGB(lab, white)
}

// Brightness adds bias, in [-255, 255], to every color channel. With Lab the
// bias is scaled to the L* range and added to L*.
func Brightness(img *image.Image[uint8], bias int, method Method) (*image.Image[uint8], error) {
	if err := check.InRange(bias, -255, 255, "bias"); err != nil {
		return nil, err
	}
	switch method {
	case RGB:
		return lookup(img, func(v float64) float64 { return v + float64(bias) }), nil
	case Lab:
		b := float64(bias) / 255 * 100
		return editLightness(img, colorspace.D50, func(l float64) float64 { return l + b })
	}
	return nil, check.Errorf("unknown tone method %v", method)
}

// Contrast multiplies every color channel, or L* with Lab, by gain >= 0.
func Contrast(img *image.Image[uint8], gain float64, method Method) (*image.Image[uint8], error) {
	if err := check.NonNeg(gain, "gain"); err != nil {
		return nil, err
	}
	switch method {
	case RGB:
		return lookup(img, func(v float64) float64 { return v * gain }), nil
	case Lab:
		return editLightness(img, colorspace.D50, func(l float64) float64 { return l * gain })
	}
	return nil, check.Errorf("unknown tone method %v", method)
}

// Saturation adds s/255, with s in [-255, 255], to the HSV saturation of
// every pixel, clamping to [0, 1].
func Saturation(img *image.Image[uint8], s int) (*image.Image[uint8], error) {
	if err := check.InRange(s, -255, 255, "saturation"); err != nil {
		return nil, err
	}
	hsv, err := colorspace.RGBToHSV(img)
	if err != nil {
		return nil, err
	}
	delta := float64(s) / 255
	hsv.EditChannel(func(v float64) float64 {
		return min(max(v+delta, 0), 1)
	}, 1)
	return colorspace.HSVToRGB(hsv)
}

// Gamma maps every color channel c to round((c/maxVal)^gamma * maxVal).
func Gamma(img *image.Image[uint8], gamma float64, maxVal uint8) (*image.Image[uint8], error) {
	if err := check.NonNeg(gamma, "gamma"); err != nil {
		return nil, err
	}
	if err := check.Positive(maxVal, "max"); err != nil {
		return nil, err
	}
	m := float64(maxVal)
	return lookup(img, func(v float64) float64 {
		return math.Pow(v/m, gamma) * m
	}), nil
}

// HistogramEqualization spreads the lightness histogram of img.
//
// L* values are quantized to round(L*·precision). Every L* is replaced by
// alpha·p·100 + (1-alpha)·L*, where p is the fraction of pixels whose
// quantized lightness is at most its own. alpha in [0, 1] sets the strength;
// alpha = 0 returns an unchanged copy.
func HistogramEqualization(img *image.Image[uint8], alpha float64, white colorspace.White, precision float64) (*image.Image[uint8], error) {
	if err := check.InRange(alpha, 0, 1, "alpha"); err != nil {
		return nil, err
	}
	if err := check.Positive(precision, "precision"); err != nil {
		return nil, err
	}
	if alpha == 0 {
		return img.Clone(), nil
	}

	lab, err := colorspace.SRGBToLab(img, white)
	if err != nil {
		return nil, err
	}
	pct := percentiles(lab, precision)
	lab.EditChannel(func(l float64) float64 {
		p := pct[quantize(l, precision)]
		return alpha*p*100 + (1-alpha)*l
	}, 0)
	return colorspace.LabToSRGB(lab, white)
}

func quantize(l, precision float64) int {
	return int(math.Round(l * precision))
}

// percentiles maps every quantized L* present in lab to the fraction of
// pixels at or below it.
func percentiles(lab *image.Image[float64], precision float64) map[int]float64 {
	counts := make(map[int]int)
	c := lab.Channels()
	data := lab.Data()
	for i := 0; i < len(data); i += c {
		counts[quantize(data[i], precision)]++
	}

	out := make(map[int]float64, len(counts))
	n := float64(lab.Size())
	sum := 0
	for _, key := range slices.Sorted(maps.Keys(counts)) {
		sum += counts[key]
		out[key] = float64(sum) / n
	}
	return out
}

// Histogram counts the values of every color channel of img. Alpha is not
// counted.
func Histogram(img *image.Image[uint8]) [][256]int {
	n := img.ChannelsNonAlpha()
	hist := make([][256]int, n)
	c := img.Channels()
	data := img.Data()
	for i := 0; i < len(data); i += c {
		for k := range n {
			hist[k][data[i+k]]++
		}
	}
	return hist
}
