package filter

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/imgproc/image"
)

// Test helpers shared across filter tests.

const epsilon = 1e-9

func mustImage[T image.Number](t testing.TB, w, h, c int, alpha bool, data []T) *image.Image[T] {
	t.Helper()
	img, err := image.FromSlice(w, h, c, alpha, data)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	return img
}

func constant[T image.Number](w, h, c int, v T) *image.Image[T] {
	img := image.Blank[T](image.Info{Width: w, Height: h, Channels: c})
	img.ApplyChannels(func(T) T { return v })
	return img
}

func randomU8(w, h, c int, seed uint64) *image.Image[uint8] {
	r := rand.New(rand.NewPCG(seed, 11))
	data := make([]uint8, w*h*c)
	for i := range data {
		data[i] = uint8(r.IntN(256))
	}
	img, _ := image.FromSlice(w, h, c, false, data)
	return img
}

func randomF(w, h, c int, seed uint64) *image.Image[float64] {
	return image.ToFloat(randomU8(w, h, c, seed))
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// closeImages reports the first index where a and b differ by more than tol
// relative to max(1, |a|), or -1.
func closeImages[T image.Float](a, b *image.Image[T], tol float64) int {
	bd := b.Data()
	for i, v := range a.Data() {
		if absf(float64(v)-float64(bd[i])) > tol*max(1, absf(float64(v))) {
			return i
		}
	}
	return -1
}

// bruteMedian computes the median filter directly with edge replication.
func bruteMedian(img *image.Image[uint8], radius int) *image.Image[uint8] {
	w, h, c := img.WHC()
	out := image.Blank[uint8](img.Info())
	size := 2*radius + 1
	window := make([]uint8, 0, size*size)
	for y := range h {
		for x := range w {
			for ch := range c {
				window = window[:0]
				for j := y - radius; j <= y+radius; j++ {
					for i := x - radius; i <= x+radius; i++ {
						window = append(window, img.Pixel(clampInt(i, 0, w-1), clampInt(j, 0, h-1))[ch])
					}
				}
				slices.Sort(window)
				out.Pixel(x, y)[ch] = window[len(window)/2]
			}
		}
	}
	return out
}
