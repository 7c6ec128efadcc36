package transform

import (
	"fmt"
	"math"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
	"github.com/gogpu/imgproc/internal/parallel"
)

// Axis selects the reflection axis.
type Axis int

const (
	// Horizontal reflects across the horizontal center line: rows flip.
	Horizontal Axis = iota
	// Vertical reflects across the vertical center line: columns flip.
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Crop returns a copy of the width×height rectangle with top-left corner
// (x, y). The rectangle must lie inside img.
func Crop[T image.Number](img *image.Image[T], x, y, width, height int) (*image.Image[T], error) {
	w, h := img.WH()
	if x < 0 || y < 0 || width < 1 || height < 1 {
		return nil, check.Errorf("invalid crop rectangle (%d, %d, %d, %d)", x, y, width, height)
	}
	if x+width > w {
		return nil, check.Errorf("invalid width: input width is %d but x + width is %d", w, x+width)
	}
	if y+height > h {
		return nil, check.Errorf("invalid height: input height is %d but y + height is %d", h, y+height)
	}
	return img.SubImage(x, y, width, height).ToImage(), nil
}

// placement returns the rectangle of back, clipped, that front covers when
// its top-left corner is placed at (x, y).
func placement(bw, bh, fw, fh, x, y int) (x0, y0, x1, y1 int) {
	return max(x, 0), max(y, 0), min(x+fw, bw), min(y+fh, bh)
}

// Overlay places front onto a copy of back with its top-left corner at
// (x, y). Pixels of front that fall outside back are dropped.
func Overlay[T image.Number](back, front *image.Image[T], x, y int) (*image.Image[T], error) {
	if err := check.Equal(back.Channels(), front.Channels(), "image channels"); err != nil {
		return nil, err
	}

	out := back.Clone()
	x0, y0, x1, y1 := placement(back.Width(), back.Height(), front.Width(), front.Height(), x, y)
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			copy(out.PixelUnchecked(i, j), front.PixelUnchecked(i-x, j-y))
		}
	}
	return out, nil
}

// Superimpose blends front onto a copy of back with its top-left corner at
// (x, y). Covered pixels become alpha·back + (1-alpha)·front.
func Superimpose[T image.Float](back, front *image.Image[T], x, y int, alpha float64) (*image.Image[T], error) {
	if err := check.Equal(back.Channels(), front.Channels(), "image channels"); err != nil {
		return nil, err
	}
	if err := check.InRange(alpha, 0, 1, "alpha"); err != nil {
		return nil, err
	}

	out := back.Clone()
	x0, y0, x1, y1 := placement(back.Width(), back.Height(), front.Width(), front.Height(), x, y)
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			p := out.PixelUnchecked(i, j)
			f := front.PixelUnchecked(i-x, j-y)
			for c := range p {
				p[c] = T(alpha*float64(p[c]) + (1-alpha)*float64(f[c]))
			}
		}
	}
	return out, nil
}

// Translate moves img by (x, y) inside a blank image of the same size.
// Pixels moved out of bounds are lost; uncovered pixels are zero.
func Translate[T image.Number](img *image.Image[T], x, y int) *image.Image[T] {
	w, h := img.WH()
	out := image.Blank[T](img.Info())
	x0, y0, x1, y1 := placement(w, h, w, h, x, y)
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			copy(out.PixelUnchecked(i, j), img.PixelUnchecked(i-x, j-y))
		}
	}
	return out
}

// Reflect mirrors img across axis.
func Reflect[T image.Number](img *image.Image[T], axis Axis) (*image.Image[T], error) {
	w, h := img.WH()
	var src func(x, y int) []T
	switch axis {
	case Horizontal:
		src = func(x, y int) []T { return img.PixelUnchecked(x, h-y-1) }
	case Vertical:
		src = func(x, y int) []T { return img.PixelUnchecked(w-x-1, y) }
	default:
		return nil, check.Errorf("unknown axis %v", axis)
	}

	out := image.Blank[T](img.Info())
	for y := range h {
		for x := range w {
			copy(out.PixelUnchecked(x, y), src(x, y))
		}
	}
	return out, nil
}

// Scale resizes img by fx horizontally and fy vertically. The output is
// round(width·fx) × round(height·fy). Lanczos uses a window of
// DefaultLanczos.
//
// NearestNeighbor maps output pixel x to input pixel ⌈(x+1)/fx⌉ - 1. The
// other methods sample the input at (x/fx, y/fy).
func Scale[T image.Float](img *image.Image[T], fx, fy float64, method Method) (*image.Image[T], error) {
	return scale(img, fx, fy, method, DefaultLanczos)
}

// ScaleLanczos resizes img with a Lanczos window of size a.
func ScaleLanczos[T image.Float](img *image.Image[T], fx, fy float64, a int) (*image.Image[T], error) {
	if err := check.Positive(a, "a"); err != nil {
		return nil, err
	}
	return scale(img, fx, fy, Lanczos, a)
}

func scale[T image.Float](img *image.Image[T], fx, fy float64, method Method, a int) (*image.Image[T], error) {
	if err := check.Positive(fx, "fx"); err != nil {
		return nil, err
	}
	if err := check.Positive(fy, "fy"); err != nil {
		return nil, err
	}
	w, h := img.WH()
	ow := int(math.Round(float64(w) * fx))
	oh := int(math.Round(float64(h) * fy))
	if ow < 1 || oh < 1 {
		return nil, check.Errorf("scaled size %dx%d is empty", ow, oh)
	}
	out := image.Blank[T](img.Info().WithSize(ow, oh))

	if method == NearestNeighbor {
		parallel.Rows(oh, func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				yi := min(int(math.Ceil(float64(y+1)/fy))-1, h-1)
				for x := range ow {
					xi := min(int(math.Ceil(float64(x+1)/fx))-1, w-1)
					copy(out.PixelUnchecked(x, y), img.PixelUnchecked(xi, yi))
				}
			}
		})
		return out, nil
	}

	sample, err := samplerFor[T](method, a)
	if err != nil {
		return nil, err
	}
	parallel.Rows(oh, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			sy := float64(y) / fy
			for x := range ow {
				sample(img, float64(x)/fx, sy, out.PixelUnchecked(x, y))
			}
		}
	})
	return out, nil
}

// Rotate turns img counterclockwise by degrees about its center, sampling
// with NearestNeighbor. The output is the bounding box of the rotated image.
func Rotate[T image.Float](img *image.Image[T], degrees float64) (*image.Image[T], error) {
	return RotateWith(img, degrees, NearestNeighbor)
}

// RotateWith is Rotate with a choice of interpolation.
func RotateWith[T image.Float](img *image.Image[T], degrees float64, method Method) (*image.Image[T], error) {
	w, h := img.WH()
	// Rows grow downward, so a counterclockwise turn on screen is a
	// negative angle in image coordinates.
	angle := -degrees * math.Pi / 180
	ow, oh, _, _ := Rotation(angle).bounds(w, h)
	fwd := Translation(float64(ow-w)/2, float64(oh-h)/2).
		Multiply(RotationAt(angle, float64(w-1)/2, float64(h-1)/2))
	return Warp(img, fwd, ow, oh, method)
}

// Shear shears img by sx horizontally and sy vertically, sampling with
// NearestNeighbor. Source pixel (x, y) lands at (x - sx·y, y - sy·x),
// shifted so the output starts at the origin; the output grows by |sx·h|
// columns and |sy·w| rows.
func Shear[T image.Float](img *image.Image[T], sx, sy float64) (*image.Image[T], error) {
	return ShearWith(img, sx, sy, NearestNeighbor)
}

// ShearWith is Shear with a choice of interpolation.
func ShearWith[T image.Float](img *image.Image[T], sx, sy float64, method Method) (*image.Image[T], error) {
	w, h := img.WH()
	// Negated so that positive factors shear the top of the image right.
	sh := Shearing(-sx, -sy)
	ow, oh, dx, dy := sh.bounds(w, h)
	return Warp(img, Translation(dx, dy).Multiply(sh), ow, oh, method)
}

// Warp returns a width×height image whose pixel (x, y) is img sampled at
// fwd⁻¹(x, y). Output pixels that map outside img are zero.
func Warp[T image.Float](img *image.Image[T], fwd Affine, width, height int, method Method) (*image.Image[T], error) {
	inv, ok := fwd.Invert()
	if !ok {
		return nil, check.Errorf("transform is not invertible")
	}
	sample, err := samplerFor[T](method, DefaultLanczos)
	if err != nil {
		return nil, err
	}
	info, err := image.NewInfo(width, height, img.Channels(), img.Info().Alpha)
	if err != nil {
		return nil, err
	}

	w, h := img.WH()
	maxX, maxY := float64(w)-0.5, float64(h)-0.5
	out := image.Blank[T](info)
	parallel.Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				sx, sy := inv.Apply(float64(x), float64(y))
				if sx < -0.5 || sy < -0.5 || sx >= maxX || sy >= maxY {
					continue
				}
				sample(img, sx, sy, out.PixelUnchecked(x, y))
			}
		}
	})
	return out, nil
}
