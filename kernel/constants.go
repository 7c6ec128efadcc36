package kernel

// Sharpen is the 3x3 sharpening kernel.
var Sharpen = []float64{
	0, -1, 0,
	-1, 5, -1,
	0, -1, 0,
}

// UnsharpMasking is the 5x5 negative Gaussian with a center spike of 476/256.
var UnsharpMasking = scaled(-1.0/256.0, []float64{
	1, 4, 6, 4, 1,
	4, 16, 24, 16, 4,
	6, 24, -476, 24, 6,
	4, 16, 24, 16, 4,
	1, 4, 6, 4, 1,
})

// Laplacian is the 3x3 four-neighbor Laplacian. Positive at local minima.
var Laplacian = []float64{
	0, 1, 0,
	1, -4, 1,
	0, 1, 0,
}

// GaussianBlur3 is the 3x3 binomial blur [1 2 1; 2 4 2; 1 2 1]/16.
var GaussianBlur3 = scaled(1.0/16.0, []float64{
	1, 2, 1,
	2, 4, 2,
	1, 2, 1,
})

// Separable derivative factors.
var (
	SobelVertical     = []float64{1, 2, 1}
	SobelHorizontal   = []float64{-1, 0, 1}
	PrewittVertical   = []float64{1, 1, 1}
	PrewittHorizontal = []float64{-1, 0, 1}
)

func scaled(s float64, k []float64) []float64 {
	for i := range k {
		k[i] *= s
	}
	return k
}
