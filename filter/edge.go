package filter

import (
	"math"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
	"github.com/gogpu/imgproc/kernel"
)

// DerivativeMask computes the gradient magnitude sqrt(gx² + gy²) of a
// grayscale image, where gx = SeparableFilter(kv, kh) and
// gy = SeparableFilter(kh, kv).
func DerivativeMask[T image.Float](img *image.Image[T], kv, kh []float64) (*image.Image[T], error) {
	if err := check.Grayscale(img.Channels(), img.Info().Alpha); err != nil {
		return nil, err
	}
	gx, err := SeparableFilter(img, kv, kh)
	if err != nil {
		return nil, err
	}
	gy, err := SeparableFilter(img, kh, kv)
	if err != nil {
		return nil, err
	}

	out := gx.Clone()
	gyData := gy.Data()
	c := img.Channels()
	data := out.Data()
	for i := 0; i < len(data); i += c {
		x, y := float64(data[i]), float64(gyData[i])
		data[i] = T(math.Sqrt(x*x + y*y))
	}
	return out, nil
}

// Prewitt computes the Prewitt gradient magnitude of a grayscale image.
func Prewitt[T image.Float](img *image.Image[T]) (*image.Image[T], error) {
	return DerivativeMask(img, kernel.PrewittVertical, kernel.PrewittHorizontal)
}

// Sobel computes the Sobel gradient magnitude of a grayscale image.
func Sobel[T image.Float](img *image.Image[T]) (*image.Image[T], error) {
	return DerivativeMask(img, kernel.SobelVertical, kernel.SobelHorizontal)
}

// SobelWeighted is Sobel with the smoothing factor [1, weight, 1].
func SobelWeighted[T image.Float](img *image.Image[T], weight float64) (*image.Image[T], error) {
	return DerivativeMask(img, []float64{1, weight, 1}, kernel.SobelHorizontal)
}

// Laplacian applies the 3x3 Laplacian. The output is signed; see
// NormalizeLaplacian.
func Laplacian[T image.Float](img *image.Image[T]) (*image.Image[T], error) {
	return UnseparableFilter(img, kernel.Laplacian)
}

// LaplacianOfGaussian applies a size x size Laplacian-of-Gaussian kernel.
// The output is signed; see NormalizeLaplacian.
func LaplacianOfGaussian[T image.Float](img *image.Image[T], size int, sigma float64) (*image.Image[T], error) {
	k, err := kernel.LoG(size, sigma)
	if err != nil {
		return nil, err
	}
	return UnseparableFilter(img, k)
}

// NormalizeLaplacian maps a signed grayscale image linearly onto [0, 255],
// sending its minimum to 0 and its maximum to 255. A flat image maps to 0.
func NormalizeLaplacian[T image.Float](img *image.Image[T]) (*image.Image[uint8], error) {
	if err := check.Grayscale(img.Channels(), img.Info().Alpha); err != nil {
		return nil, err
	}
	c := img.Channels()
	data := img.Data()
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < len(data); i += c {
		v := float64(data[i])
		lo = min(lo, v)
		hi = max(hi, v)
	}

	scale := 0.0
	if hi > lo {
		scale = 255 / (hi - lo)
	}
	return image.MapChannelsIfAlpha(img, func(v T) uint8 {
		return image.ClampU8((float64(v) - lo) * scale)
	}, func(a T) uint8 {
		return image.ClampU8(float64(a))
	}), nil
}
