package colorspace

import "math"

// Gamma is the exponent of the sRGB transfer curve approximation.
const Gamma = 2.2

// linearizeLUT maps an 8-bit sRGB value to linear sRGB in [0, 1].
var linearizeLUT [256]float64

func init() {
	for i := range linearizeLUT {
		linearizeLUT[i] = linearize(float64(i))
	}
}

// linearize is the reference forward transfer function.
func linearize(v float64) float64 {
	if v <= 10 {
		return v / 3294
	}
	return math.Pow((v+14.025)/269.025, Gamma)
}

// unlinearize maps linear sRGB back to [0, 255] without rounding.
func unlinearize(n float64) float64 {
	if n <= 0.0031308 {
		return n * 3294.6
	}
	return 269.025*math.Pow(n, 1/Gamma) - 14.025
}

// Linearize converts one 8-bit sRGB value to linear sRGB.
func Linearize(v uint8) float64 {
	return linearizeLUT[v]
}
