package morphology

import (
	stdimage "image"
	"slices"

	"rescribe.xyz/preproc"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/check"
)

// Binarize thresholds a single-channel image with Sauvola's adaptive
// method and returns a binary image suitable for the other operators.
//
// Each pixel is compared with m·(1 + k·(s/128 - 1)), where m and s are the
// mean and standard deviation of the window×window block around it. Darker
// pixels become 0 and the rest 255. Typical values are k = 0.3 and a window
// of 15 to 30 pixels.
func Binarize(img *image.Image[uint8], k float64, window int) (*image.Image[uint8], error) {
	if img.Channels() != 1 {
		return nil, check.Errorf("input must be single-channel, got %d channels", img.Channels())
	}
	if err := check.NonNeg(k, "k"); err != nil {
		return nil, err
	}
	if err := check.Positive(window, "window"); err != nil {
		return nil, err
	}

	w, h := img.WH()
	gray := &stdimage.Gray{
		Pix:    slices.Clone(img.Data()),
		Stride: w,
		Rect:   stdimage.Rect(0, 0, w, h),
	}
	bin := preproc.IntegralSauvola(gray, k, window)

	data := make([]uint8, 0, w*h)
	for y := range h {
		data = append(data, bin.Pix[y*bin.Stride:y*bin.Stride+w]...)
	}
	return image.New(img.Info(), data)
}
