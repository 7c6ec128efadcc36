package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/image"
)

func TestBilateralFlatImage(t *testing.T) {
	img := image.Blank[uint8](image.Info{Width: 8, Height: 6, Channels: 4, Alpha: true})
	img.ApplyPixels(func(p []uint8) {
		copy(p, []uint8{200, 120, 40, 180})
	})
	out, err := BilateralFilter(img, 10, 1, Direct)
	if err != nil {
		t.Fatal(err)
	}
	if out.Info() != img.Info() {
		t.Fatalf("info = %+v, want %+v", out.Info(), img.Info())
	}
	for i := range out.Size() {
		got, want := out.At(i), img.At(i)
		for c := range want {
			d := int(got[c]) - int(want[c])
			if d < -2 || d > 2 {
				t.Fatalf("pixel %d = %v, want %v", i, got, want)
			}
		}
	}
}

func TestBilateralPreservesEdges(t *testing.T) {
	img := image.Blank[uint8](image.Info{Width: 12, Height: 8, Channels: 3})
	for y := range 8 {
		for x := 6; x < 12; x++ {
			copy(img.Pixel(x, y), []uint8{255, 255, 255})
		}
	}
	out, err := BilateralFilter(img, 5, 1.5, Direct)
	if err != nil {
		t.Fatal(err)
	}
	if p := out.Pixel(5, 4); p[0] > 2 {
		t.Errorf("dark side of edge = %v, want ~0", p)
	}
	if p := out.Pixel(6, 4); p[0] < 253 {
		t.Errorf("bright side of edge = %v, want ~255", p)
	}
}

func TestBilateralInvalid(t *testing.T) {
	img := randomU8(4, 4, 3, 1)
	tests := []struct {
		name                  string
		rangeSigma, spatSigma float64
		alg                   Bilateral
	}{
		{"negative range", -1, 1, Direct},
		{"negative spatial", 1, -1, Direct},
		{"grid", 1, 1, Grid},
		{"local histogram", 1, 1, LocalHistogram},
	}
	for _, tt := range tests {
		if _, err := BilateralFilter(img, tt.rangeSigma, tt.spatSigma, tt.alg); !errors.Is(err, imgproc.ErrInvalidArg) {
			t.Errorf("%s: err = %v, want ErrInvalidArg", tt.name, err)
		}
	}
	if _, err := BilateralFilter(randomU8(4, 4, 1, 1), 1, 1, Direct); !errors.Is(err, imgproc.ErrInvalidArg) {
		t.Errorf("grayscale input err = %v, want ErrInvalidArg", err)
	}
}
