// Package kernel synthesizes convolution kernels and tests them for
// separability.
//
// 2D kernels are square, row-major []float64 slices of odd side. 1D kernels
// are []float64 slices of odd length. The predefined kernels below are
// shared and must not be modified.
package kernel
