package imageio

// Option configures Load, Save, Encode and the PDF writers.
//
// Example:
//
//	err := imageio.Save("out.jpg", img, imageio.WithJPEGQuality(85))
type Option func(*options)

type options struct {
	jpegQuality int
	autoOrient  bool
	// pageWidth and pageHeight are in points; zero sizes each page to its
	// image at one point per pixel.
	pageWidth  float64
	pageHeight float64
}

func defaultOptions() options {
	return options{jpegQuality: 90}
}

func collect(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithJPEGQuality sets the JPEG quality, clamped to [1, 100]. The default
// is 90.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.jpegQuality = min(max(q, 1), 100)
	}
}

// WithAutoOrient makes Load rotate JPEG and TIFF images according to their
// EXIF orientation tag.
func WithAutoOrient(enabled bool) Option {
	return func(o *options) {
		o.autoOrient = enabled
	}
}

// WithPDFPageSize gives every PDF page the same size in points. Images are
// scaled to fit and centered. Non-positive sizes restore the default of one
// page per image at its pixel size.
func WithPDFPageSize(width, height float64) Option {
	return func(o *options) {
		if width <= 0 || height <= 0 {
			width, height = 0, 0
		}
		o.pageWidth, o.pageHeight = width, height
	}
}
