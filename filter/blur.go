package filter

import (
	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/kernel"
)

// BoxFilter sums the size x size neighborhood of every pixel with two
// passes of a kernel of ones. The result is not divided by size².
func BoxFilter[T image.Float](img *image.Image[T], size int) (*image.Image[T], error) {
	k, err := kernel.Box(size, 1)
	if err != nil {
		return nil, err
	}
	return SeparableFilter(img, k, k)
}

// BoxFilterNormalized is BoxFilter with every 1D weight set to 1/size².
// Because the weight applies to each of the two passes, the 2D result is
// the neighborhood sum scaled by 1/size⁴. Use UnseparableFilter with a
// uniform kernel for a true mean.
func BoxFilterNormalized[T image.Float](img *image.Image[T], size int) (*image.Image[T], error) {
	k, err := kernel.Box(size, 1/float64(size*size))
	if err != nil {
		return nil, err
	}
	return SeparableFilter(img, k, k)
}

// WeightedAvgFilter averages the size x size neighborhood with the center
// pixel weighted w times as heavily as each neighbor.
func WeightedAvgFilter[T image.Float](img *image.Image[T], size int, w float64) (*image.Image[T], error) {
	k, err := kernel.WeightedAvg(size, w)
	if err != nil {
		return nil, err
	}
	return UnseparableFilter(img, k)
}

// GaussianBlur convolves img with the unnormalized size x size Gaussian of
// standard deviation sigma.
func GaussianBlur[T image.Float](img *image.Image[T], size int, sigma float64) (*image.Image[T], error) {
	k, err := kernel.CachedGaussian(size, sigma)
	if err != nil {
		return nil, err
	}
	return LinearFilter(img, k)
}

// GaussianBlurNormalized is GaussianBlur with the kernel scaled to unit
// gain, so flat regions keep their value.
func GaussianBlurNormalized[T image.Float](img *image.Image[T], size int, sigma float64) (*image.Image[T], error) {
	k, err := kernel.CachedGaussian(size, sigma)
	if err != nil {
		return nil, err
	}
	return LinearFilter(img, kernel.Normalized(k))
}

// Sharpen applies the 3x3 sharpening kernel.
func Sharpen[T image.Float](img *image.Image[T]) (*image.Image[T], error) {
	return UnseparableFilter(img, kernel.Sharpen)
}

// UnsharpMasking applies the 5x5 unsharp-masking kernel.
func UnsharpMasking[T image.Float](img *image.Image[T]) (*image.Image[T], error) {
	return UnseparableFilter(img, kernel.UnsharpMasking)
}
