// Package filter implements linear and non-linear neighborhood filters.
//
// Linear filters operate on floating images (float32 or float64) and
// accumulate in float64. Kernels follow the layout of package kernel. The
// neighborhood of a pixel is clamp-padded: out-of-range coordinates are
// replaced by the center pixel's coordinate on that axis. The alpha channel,
// when present, is copied from the center pixel and never convolved.
//
// The median and alpha-trimmed mean filters work on 8-bit images and pad by
// replicating the nearest edge pixel.
//
// Every filter returns a new image. Rows are evaluated through the shared
// worker pool configured with imgproc.SetParallelism; results do not depend
// on the degree of parallelism.
package filter
