// Package imgproc is a 2D raster image-processing library.
//
// # Overview
//
// Images are dense, row-major, interleaved channel buffers of a numeric
// element type (see package image). Every operator takes one or more images
// and returns a fresh image; nothing is shared between calls.
//
// # Packages
//
//   - image: Image, Info, SubImage, neighborhoods and traversal primitives
//   - kernel: Gaussian, Laplacian-of-Gaussian and spatial kernels, separability
//   - filter: convolution, blurs, edges, thresholding, median, bilateral
//   - sat: summed-area tables
//   - colorspace: sRGB, linear sRGB, CIE XYZ, CIELAB, HSV, grayscale
//   - tone: brightness, contrast, saturation, gamma, histogram equalization
//   - transform: crop, overlay, reflect, scale, shear, rotate
//   - morphology: binary erode, dilate, open, close, majority, gradient
//   - imageio: PNG, JPEG, BMP, TIFF and WebP adapters, PDF export
//
// # Quick Start
//
//	img, err := imageio.Load("photo.jpg")
//	if err != nil {
//	    return err
//	}
//	smooth, err := filter.Median(img, 2)
//	if err != nil {
//	    return err
//	}
//	out, err := tone.HistogramEqualization(smooth, 1, colorspace.D65, 10)
//	if err != nil {
//	    return err
//	}
//	return imageio.Save("photo-eq.png", out)
//
// # Errors
//
// Argument validation failures wrap ErrInvalidArg and failed numeric
// decompositions wrap ErrNumeric. Package imageio has its own sentinels for
// codec and file errors. Out-of-bounds pixel access is a programming error
// and panics.
//
// # Concurrency
//
// Operators run on the calling goroutine by default. SetParallelism enables
// row-parallel evaluation; output is bit-identical either way.
package imgproc

// Version is the library version.
const Version = "0.3.0"
