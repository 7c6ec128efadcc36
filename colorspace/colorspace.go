package colorspace

import (
	"math"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/imgmath"
	"github.com/gogpu/imgproc/internal/check"
)

// SRGBToXYZMatrix converts linear sRGB to CIE XYZ.
var SRGBToXYZMatrix = []float64{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
}

// XYZToSRGBMatrix converts CIE XYZ to linear sRGB.
var XYZToSRGBMatrix = []float64{
	3.2404542, -1.5371385, -0.4985314,
	-0.9692660, 1.8760108, 0.0415560,
	0.0556434, -0.2040259, 1.0572252,
}

func identity[T image.Number](a T) T { return a }

func toFloat(a uint8) float64 { return float64(a) }

func requireRGB(info image.Info) error {
	if info.ChannelsNonAlpha() != 3 {
		return check.Errorf("input must have 3 color channels, got %d", info.ChannelsNonAlpha())
	}
	return nil
}

// RGBToGrayscale averages the color channels of every pixel, rounding to
// the nearest integer. Alpha is kept.
func RGBToGrayscale(img *image.Image[uint8]) *image.Image[uint8] {
	return image.MapPixelsIfAlpha(img, func(p []uint8, out []uint8) []uint8 {
		sum := 0
		for _, v := range p {
			sum += int(v)
		}
		n := len(p)
		return append(out, uint8((sum+n/2)/n))
	}, identity[uint8])
}

// RGBToGrayscaleF is RGBToGrayscale for floating images, without rounding.
func RGBToGrayscaleF[T image.Float](img *image.Image[T]) *image.Image[T] {
	return image.MapPixelsIfAlpha(img, func(p []T, out []T) []T {
		var sum T
		for _, v := range p {
			sum += v
		}
		return append(out, sum/T(len(p)))
	}, identity[T])
}

// LinearizeSRGB converts 8-bit sRGB to linear sRGB in [0, 1].
func LinearizeSRGB(img *image.Image[uint8]) *image.Image[float64] {
	return image.MapChannelsIfAlpha(img, Linearize, toFloat)
}

// UnlinearizeSRGB converts linear sRGB back to 8-bit sRGB, rounding and
// clamping every value.
func UnlinearizeSRGB(img *image.Image[float64]) *image.Image[uint8] {
	return image.MapChannelsIfAlpha(img, func(n float64) uint8 {
		return image.ClampU8(unlinearize(n))
	}, image.ClampU8)
}

// LinearToXYZ converts linear sRGB to CIE XYZ.
func LinearToXYZ(img *image.Image[float64]) (*image.Image[float64], error) {
	return matrixMul(img, SRGBToXYZMatrix)
}

// XYZToLinear converts CIE XYZ to linear sRGB.
func XYZToLinear(img *image.Image[float64]) (*image.Image[float64], error) {
	return matrixMul(img, XYZToSRGBMatrix)
}

func matrixMul(img *image.Image[float64], m []float64) (*image.Image[float64], error) {
	if err := requireRGB(img.Info()); err != nil {
		return nil, err
	}
	return image.MapPixelsIfAlpha(img, func(p []float64, out []float64) []float64 {
		n := len(out)
		out = append(out, 0, 0, 0)
		// Lengths are fixed by requireRGB.
		_ = imgmath.VectorMulInto(out[n:], m, p)
		return out
	}, identity[float64]), nil
}

// XYZToLab converts CIE XYZ to CIELAB relative to the reference white.
func XYZToLab(img *image.Image[float64], white White) (*image.Image[float64], error) {
	if err := requireRGB(img.Info()); err != nil {
		return nil, err
	}
	xn, yn, zn := white.Tristimulus()
	return image.MapPixelsIfAlpha(img, func(p []float64, out []float64) []float64 {
		fx := labF(p[0] * 100 / xn)
		fy := labF(p[1] * 100 / yn)
		fz := labF(p[2] * 100 / zn)
		return append(out, 116*fy-16, 500*(fx-fy), 200*(fy-fz))
	}, identity[float64]), nil
}

// LabToXYZ converts CIELAB to CIE XYZ relative to the reference white.
func LabToXYZ(img *image.Image[float64], white White) (*image.Image[float64], error) {
	if err := requireRGB(img.Info()); err != nil {
		return nil, err
	}
	xn, yn, zn := white.Tristimulus()
	return image.MapPixelsIfAlpha(img, func(p []float64, out []float64) []float64 {
		n := (p[0] + 16) / 116
		return append(out,
			xn*labFInv(n+p[1]/500)/100,
			yn*labFInv(n)/100,
			zn*labFInv(n-p[2]/200)/100)
	}, identity[float64]), nil
}

const labDelta = 6.0 / 29.0

func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}

// RGBToHSV converts 8-bit RGB to HSV with every channel in [0, 1]. Hue is
// measured in turns.
func RGBToHSV(img *image.Image[uint8]) (*image.Image[float64], error) {
	if err := requireRGB(img.Info()); err != nil {
		return nil, err
	}
	return image.MapPixelsIfAlpha(img, func(p []uint8, out []float64) []float64 {
		r, g, b := float64(p[0])/255, float64(p[1])/255, float64(p[2])/255
		hi := imgmath.Max3(r, g, b)
		lo := imgmath.Min3(r, g, b)
		d := hi - lo

		var s float64
		if hi != 0 {
			s = d / hi
		}

		var h float64
		if d != 0 {
			switch hi {
			case r:
				h = (g - b) / d
			case g:
				h = (b-r)/d + 2
			default:
				h = (r-g)/d + 4
			}
		}
		h /= 6
		if h < 0 {
			h++
		} else if h >= 1 {
			h--
		}
		return append(out, h, s, hi)
	}, func(a uint8) float64 { return float64(a) / 255 }), nil
}

// HSVToRGB converts HSV with channels in [0, 1] back to 8-bit RGB.
func HSVToRGB(img *image.Image[float64]) (*image.Image[uint8], error) {
	if err := requireRGB(img.Info()); err != nil {
		return nil, err
	}
	return image.MapPixelsIfAlpha(img, func(p []float64, out []uint8) []uint8 {
		h, s, v := p[0], p[1], p[2]
		val := image.ClampU8(v * 255)
		if s == 0 {
			return append(out, val, val, val)
		}

		h6 := h * 6
		sector := math.Floor(h6)
		f := h6 - sector
		lo := image.ClampU8(v * (1 - s) * 255)
		q := image.ClampU8(v * (1 - s*f) * 255)
		t := image.ClampU8(v * (1 - s*(1-f)) * 255)

		switch ((int(sector) % 6) + 6) % 6 {
		case 0:
			return append(out, val, t, lo)
		case 1:
			return append(out, q, val, lo)
		case 2:
			return append(out, lo, val, t)
		case 3:
			return append(out, lo, q, val)
		case 4:
			return append(out, t, lo, val)
		default:
			return append(out, val, lo, q)
		}
	}, func(a float64) uint8 { return image.ClampU8(a * 255) }), nil
}

// SRGBToXYZ converts 8-bit sRGB to CIE XYZ.
func SRGBToXYZ(img *image.Image[uint8]) (*image.Image[float64], error) {
	return LinearToXYZ(LinearizeSRGB(img))
}

// XYZToSRGB converts CIE XYZ to 8-bit sRGB.
func XYZToSRGB(img *image.Image[float64]) (*image.Image[uint8], error) {
	lin, err := XYZToLinear(img)
	if err != nil {
		return nil, err
	}
	return UnlinearizeSRGB(lin), nil
}

// SRGBToLab converts 8-bit sRGB to CIELAB.
func SRGBToLab(img *image.Image[uint8], white White) (*image.Image[float64], error) {
	xyz, err := SRGBToXYZ(img)
	if err != nil {
		return nil, err
	}
	return XYZToLab(xyz, white)
}

// LabToSRGB converts CIELAB to 8-bit sRGB.
func LabToSRGB(img *image.Image[float64], white White) (*image.Image[uint8], error) {
	xyz, err := LabToXYZ(img, white)
	if err != nil {
		return nil, err
	}
	return XYZToSRGB(xyz)
}
