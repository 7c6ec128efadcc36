// Package colorspace converts images between sRGB, linear sRGB, CIE XYZ,
// CIELAB, HSV and grayscale.
//
// 8-bit sRGB images use channel values in [0, 255]. Linear sRGB and XYZ
// images are float64 with color channels nominally in [0, 1]. LAB images
// carry L* in [0, 100] and a*, b* roughly in [-128, 127]. In all of these the
// alpha channel is passed through unchanged as a float in [0, 255]. HSV
// images carry every channel, alpha included, in [0, 1].
//
// Conversions that need three color channels fail with imgproc.ErrInvalidArg
// for other layouts.
package colorspace
