package sat

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/parallel"
)

func TestNew(t *testing.T) {
	img, err := image.FromSlice(6, 3, 1, false, []float64{
		31, 2, 4, 33, 5, 36,
		12, 26, 9, 10, 29, 25,
		13, 17, 21, 22, 20, 18,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{
		31, 33, 37, 70, 75, 111,
		43, 71, 84, 127, 161, 222,
		56, 101, 135, 200, 254, 333,
	}
	if got := New(img).Data(); !slices.Equal(got, want) {
		t.Errorf("New =\n%v\nwant\n%v", got, want)
	}
}

func randomImage(w, h, c int, seed uint64) *image.Image[uint8] {
	r := rand.New(rand.NewPCG(seed, 1))
	data := make([]uint8, w*h*c)
	for i := range data {
		data[i] = uint8(r.IntN(256))
	}
	img, _ := image.FromSlice(w, h, c, false, data)
	return img
}

func TestRectangularSumMatchesNestedSum(t *testing.T) {
	img := randomImage(9, 7, 3, 42)
	table := New(img)
	w, h, c := img.WHC()

	for y0 := range h {
		for x0 := range w {
			for y1 := y0; y1 < h; y1++ {
				for x1 := x0; x1 < w; x1++ {
					want := make([]float64, c)
					for y := y0; y <= y1; y++ {
						for x := x0; x <= x1; x++ {
							for k, v := range img.Pixel(x, y) {
								want[k] += float64(v)
							}
						}
					}
					got := RectangularSum(table, x0, y0, x1, y1)
					if !slices.Equal(got, want) {
						t.Fatalf("RectangularSum(%d,%d,%d,%d) = %v, want %v", x0, y0, x1, y1, got, want)
					}
					for k := range c {
						if s := ChannelSum(table, k, x0, y0, x1, y1); s != want[k] {
							t.Fatalf("ChannelSum(%d, %d,%d,%d,%d) = %v, want %v", k, x0, y0, x1, y1, s, want[k])
						}
					}
				}
			}
		}
	}
}

func TestNewParallel(t *testing.T) {
	img := randomImage(64, 61, 2, 7)
	want := New(img)

	parallel.SetWorkers(4)
	defer parallel.SetWorkers(0)
	if got := New(img); !got.Equal(want) {
		t.Error("parallel table differs from sequential table")
	}
}

func TestRectangularSumPanicsOnEmpty(t *testing.T) {
	table := New(randomImage(3, 3, 1, 1))
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	RectangularSum(table, 2, 0, 1, 2)
}
