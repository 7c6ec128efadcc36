package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/colorspace"
	"github.com/gogpu/imgproc/filter"
	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/imageio"
	"github.com/gogpu/imgproc/morphology"
	"github.com/gogpu/imgproc/tone"
	"github.com/gogpu/imgproc/transform"
)

// operation turns one decoded image into another.
type operation func(*image.Image[uint8]) (*image.Image[uint8], error)

// command is a filter that maps one input file to one output file.
type command struct {
	name    string
	summary string
	// setup registers the command flags on fs. The returned operation reads
	// them, so it must only run after fs.Parse.
	setup func(fs *flag.FlagSet) operation
}

var commands = []command{
	{"blur", "normalized Gaussian blur", setupBlur},
	{"median", "median filter", setupMedian},
	{"bilateral", "edge-preserving bilateral filter", setupBilateral},
	{"sobel", "Sobel gradient magnitude of the grayscale image", setupSobel},
	{"threshold", "threshold the grayscale image", setupThreshold},
	{"morph", "binarize then erode, dilate, open, close, gradient or majority", setupMorph},
	{"brightness", "shift brightness", setupBrightness},
	{"contrast", "scale contrast", setupContrast},
	{"saturation", "shift saturation", setupSaturation},
	{"gamma", "gamma correction", setupGamma},
	{"equalize", "lightness histogram equalization", setupEqualize},
	{"rotate", "rotate counterclockwise by degrees", setupRotate},
	{"scale", "resize by factors", setupScale},
	{"reflect", "mirror the image", setupReflect},
	{"crop", "cut out a rectangle", setupCrop},
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// parseCommand builds the flag set of the named filter and parses args.
// It returns the operation and the positional arguments.
func parseCommand(name string, args []string, stderr io.Writer, synopsis string) (operation, []string, error) {
	c, ok := findCommand(name)
	if !ok {
		fmt.Fprintf(stderr, "imgproc: unknown command %q\n", name)
		return nil, nil, errUsage
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	op := c.setup(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: imgproc %s [flags] %s\n", name, synopsis)
		fs.PrintDefaults()
	}
	if err := parseFlags(fs, args); err != nil {
		return nil, nil, err
	}
	return op, fs.Args(), nil
}

func runFilter(name string, args []string, stderr io.Writer) error {
	op, files, err := parseCommand(name, args, stderr, "in out")
	if err != nil {
		return err
	}
	if len(files) != 2 {
		fmt.Fprintf(stderr, "Usage: imgproc %s [flags] in out\n", name)
		return errUsage
	}
	return processFile(name, op, files[0], files[1])
}

// processFile loads in, applies op and saves the result to out.
func processFile(name string, op operation, in, out string) error {
	start := time.Now()
	img, err := imageio.Load(in, imageio.WithAutoOrient(true))
	if err != nil {
		return err
	}
	res, err := op(img)
	if err != nil {
		return fmt.Errorf("%s %s: %w", name, in, err)
	}
	if err := imageio.Save(out, res); err != nil {
		return err
	}
	imgproc.Logger().Info("processed",
		"command", name, "in", in, "out", out,
		"width", res.Width(), "height", res.Height(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// viaFloat runs fn on img converted to float64 and converts the result back.
func viaFloat(img *image.Image[uint8], fn func(*image.Image[float64]) (*image.Image[float64], error)) (*image.Image[uint8], error) {
	res, err := fn(image.ToFloat(img))
	if err != nil {
		return nil, err
	}
	return image.ToU8(res), nil
}

// gray reduces img to a single channel, dropping alpha.
func gray(img *image.Image[uint8]) *image.Image[uint8] {
	if img.ChannelsNonAlpha() >= 3 {
		img = colorspace.RGBToGrayscale(img)
	}
	if img.Channels() > 1 {
		return image.SplitChannels(img)[0]
	}
	return img
}

func isBinary(img *image.Image[uint8]) bool {
	for _, v := range img.Data() {
		if v != 0 && v != 255 {
			return false
		}
	}
	return true
}

func setupBlur(fs *flag.FlagSet) operation {
	size := fs.Int("size", 5, "odd kernel size")
	sigma := fs.Float64("sigma", 1, "standard deviation")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		return viaFloat(img, func(f *image.Image[float64]) (*image.Image[float64], error) {
			return filter.GaussianBlurNormalized(f, *size, *sigma)
		})
	}
}

func setupMedian(fs *flag.FlagSet) operation {
	radius := fs.Int("radius", 2, "window radius")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		return filter.Median(img, *radius)
	}
}

func setupBilateral(fs *flag.FlagSet) operation {
	rangeSigma := fs.Float64("range", 10, "range standard deviation")
	spatialSigma := fs.Float64("spatial", 2, "spatial standard deviation")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		return filter.BilateralFilter(img, *rangeSigma, *spatialSigma, filter.Direct)
	}
}

func setupSobel(fs *flag.FlagSet) operation {
	weight := fs.Float64("weight", 2, "weight of the center row and column")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		return viaFloat(gray(img), func(f *image.Image[float64]) (*image.Image[float64], error) {
			return filter.SobelWeighted(f, *weight)
		})
	}
}

func setupThreshold(fs *flag.FlagSet) operation {
	t := fs.Float64("t", 128, "threshold")
	maxVal := fs.Float64("max", 255, "value for pixels that pass")
	mode := fs.String("mode", filter.Binary.String(), "binary, binary-inv, trunc, to-zero or to-zero-inv")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		m, err := filter.ParseThresh(*mode)
		if err != nil {
			return nil, err
		}
		return viaFloat(gray(img), func(f *image.Image[float64]) (*image.Image[float64], error) {
			return filter.Threshold(f, *t, *maxVal, m)
		})
	}
}

func setupMorph(fs *flag.FlagSet) operation {
	op := fs.String("op", "open", "binarize, erode, dilate, open, close, gradient or majority")
	radius := fs.Int("radius", 1, "window radius")
	k := fs.Float64("k", 0.3, "Sauvola k for non-binary input")
	window := fs.Int("window", 31, "Sauvola window for non-binary input")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		b := gray(img)
		if *op == "binarize" || !isBinary(b) {
			var err error
			if b, err = morphology.Binarize(b, *k, *window); err != nil {
				return nil, err
			}
		}
		switch *op {
		case "binarize":
			return b, nil
		case "erode":
			return morphology.Erode(b, *radius)
		case "dilate":
			return morphology.Dilate(b, *radius)
		case "open":
			return morphology.Open(b, *radius)
		case "close":
			return morphology.Close(b, *radius)
		case "gradient":
			return morphology.Gradient(b, *radius)
		case "majority":
			return morphology.Majority(b, *radius)
		}
		return nil, fmt.Errorf("%w: unknown morphology operation %q", imgproc.ErrInvalidArg, *op)
	}
}

func setupBrightness(fs *flag.FlagSet) operation {
	bias := fs.Int("bias", 20, "shift in [-255, 255]")
	method := fs.String("method", tone.RGB.String(), "rgb or lab")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		m, err := tone.ParseMethod(*method)
		if err != nil {
			return nil, err
		}
		return tone.Brightness(img, *bias, m)
	}
}

func setupContrast(fs *flag.FlagSet) operation {
	gain := fs.Float64("gain", 1.2, "contrast gain")
	method := fs.String("method", tone.RGB.String(), "rgb or lab")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		m, err := tone.ParseMethod(*method)
		if err != nil {
			return nil, err
		}
		return tone.Contrast(img, *gain, m)
	}
}

func setupSaturation(fs *flag.FlagSet) operation {
	s := fs.Int("s", 40, "shift in [-255, 255]")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		return tone.Saturation(img, *s)
	}
}

func setupGamma(fs *flag.FlagSet) operation {
	gamma := fs.Float64("gamma", 1/2.2, "exponent")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		return tone.Gamma(img, *gamma, 255)
	}
}

func setupEqualize(fs *flag.FlagSet) operation {
	alpha := fs.Float64("alpha", 1, "strength in [0, 1]")
	white := fs.String("white", "D65", "reference white, D50 or D65")
	precision := fs.Float64("precision", 10, "L* quantization steps per unit")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		w, err := colorspace.ParseWhite(*white)
		if err != nil {
			return nil, err
		}
		return tone.HistogramEqualization(img, *alpha, w, *precision)
	}
}

func setupRotate(fs *flag.FlagSet) operation {
	deg := fs.Float64("deg", 90, "angle in degrees, counterclockwise")
	method := fs.String("method", transform.NearestNeighbor.String(), "nearest, bilinear, bicubic or lanczos")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		m, err := transform.ParseMethod(*method)
		if err != nil {
			return nil, err
		}
		return viaFloat(img, func(f *image.Image[float64]) (*image.Image[float64], error) {
			return transform.RotateWith(f, *deg, m)
		})
	}
}

func setupScale(fs *flag.FlagSet) operation {
	fx := fs.Float64("fx", 2, "horizontal factor")
	fy := fs.Float64("fy", 0, "vertical factor (0 means fx)")
	method := fs.String("method", transform.Bilinear.String(), "nearest, bilinear, bicubic or lanczos")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		m, err := transform.ParseMethod(*method)
		if err != nil {
			return nil, err
		}
		y := *fy
		if y == 0 {
			y = *fx
		}
		return viaFloat(img, func(f *image.Image[float64]) (*image.Image[float64], error) {
			return transform.Scale(f, *fx, y, m)
		})
	}
}

func setupReflect(fs *flag.FlagSet) operation {
	vertical := fs.Bool("vertical", false, "flip columns instead of rows")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		axis := transform.Horizontal
		if *vertical {
			axis = transform.Vertical
		}
		return transform.Reflect(img, axis)
	}
}

func setupCrop(fs *flag.FlagSet) operation {
	x := fs.Int("x", 0, "left edge")
	y := fs.Int("y", 0, "top edge")
	w := fs.Int("w", 0, "width")
	h := fs.Int("h", 0, "height")
	return func(img *image.Image[uint8]) (*image.Image[uint8], error) {
		return transform.Crop(img, *x, *y, *w, *h)
	}
}
