package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/parallel"
	"github.com/gogpu/imgproc/kernel"
)

func gaussianScenario(t *testing.T) *image.Image[float64] {
	return mustImage(t, 3, 3, 3, false, []float64{
		1, 2, 3, 2, 3, 4, 3, 4, 5,
		6, 5, 4, 5, 4, 3, 4, 3, 2,
		2, 4, 6, 3, 5, 7, 1, 3, 5,
	})
}

func TestGaussianBlur3Center(t *testing.T) {
	img := gaussianScenario(t)
	want := []float64{3.5625, 3.8125, 4.0625}

	for _, tt := range []struct {
		name string
		f    func(*image.Image[float64], []float64) (*image.Image[float64], error)
	}{
		{"UnseparableFilter", UnseparableFilter[float64]},
		{"LinearFilter", LinearFilter[float64]},
	} {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.f(img, kernel.GaussianBlur3)
			if err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			got := out.Pixel(1, 1)
			for i := range want {
				if absf(got[i]-want[i]) > 1e-9 {
					t.Errorf("center = %v, want %v", got, want)
					break
				}
			}
		})
	}
}

func TestSeparableEquivalence(t *testing.T) {
	img := randomF(23, 17, 3, 1)
	gauss, _ := kernel.Gaussian(5, 1.3)
	kernels := map[string][]float64{
		"GaussianBlur3": kernel.GaussianBlur3,
		"Gaussian5":     gauss,
		"box7":          constantKernel(49, 1.0/49),
		"outer":         outer([]float64{1, -2, 3}, []float64{0.5, 1, -0.25}),
	}
	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			if _, _, err := kernel.Separate(k); err != nil {
				t.Fatalf("Separate: %v", err)
			}
			lin, err := LinearFilter(img, k)
			if err != nil {
				t.Fatal(err)
			}
			direct, err := UnseparableFilter(img, k)
			if err != nil {
				t.Fatal(err)
			}
			if i := closeImages(lin, direct, 1e-6); i >= 0 {
				t.Errorf("value %d: separable %v, direct %v", i, lin.Data()[i], direct.Data()[i])
			}
		})
	}
}

func constantKernel(n int, v float64) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = v
	}
	return k
}

func outer(v, h []float64) []float64 {
	out := make([]float64, 0, len(v)*len(h))
	for _, a := range v {
		for _, b := range h {
			out = append(out, a*b)
		}
	}
	return out
}

func TestFilter1D(t *testing.T) {
	img := mustImage(t, 4, 1, 1, false, []float32{1, 2, 3, 4})
	out, err := Filter1D(img, []float64{1, 1, 1}, false)
	if err != nil {
		t.Fatal(err)
	}
	// Edges repeat the center pixel.
	want := []float32{1 + 1 + 2, 1 + 2 + 3, 2 + 3 + 4, 3 + 4 + 4}
	for i, v := range out.Data() {
		if v != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, v, want[i])
		}
	}

	vert, err := Filter1D(img, []float64{1, 1, 1}, true)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range vert.Data() {
		if want := 3 * img.Data()[i]; v != want {
			t.Errorf("vertical out[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestKernelValidation(t *testing.T) {
	img := randomF(4, 4, 1, 2)
	tests := []struct {
		name string
		run  func() error
	}{
		{"Filter1D even", func() error { _, err := Filter1D(img, []float64{1, 1}, false); return err }},
		{"Separable mismatch", func() error { _, err := SeparableFilter(img, []float64{1}, []float64{1, 1, 1}); return err }},
		{"Unseparable not square", func() error { _, err := UnseparableFilter(img, make([]float64, 8)); return err }},
		{"Unseparable even side", func() error { _, err := UnseparableFilter(img, make([]float64, 16)); return err }},
		{"Linear not square", func() error { _, err := LinearFilter(img, make([]float64, 5)); return err }},
		{"Box even", func() error { _, err := BoxFilter(img, 2); return err }},
		{"Gaussian even", func() error { _, err := GaussianBlur(img, 4, 1); return err }},
	}
	for _, tt := range tests {
		if err := tt.run(); !errors.Is(err, imgproc.ErrInvalidArg) {
			t.Errorf("%s: err = %v, want ErrInvalidArg", tt.name, err)
		}
	}
}

func TestUnitGainFiltersKeepFlatImages(t *testing.T) {
	img := constant[float64](9, 7, 3, 42)
	tests := []struct {
		name string
		run  func() (*image.Image[float64], error)
	}{
		{"WeightedAvgFilter", func() (*image.Image[float64], error) { return WeightedAvgFilter(img, 5, 3) }},
		{"GaussianBlurNormalized", func() (*image.Image[float64], error) { return GaussianBlurNormalized(img, 5, 1.5) }},
		{"Sharpen", func() (*image.Image[float64], error) { return Sharpen(img) }},
		{"UnsharpMasking", func() (*image.Image[float64], error) { return UnsharpMasking(img) }},
	}
	for _, tt := range tests {
		out, err := tt.run()
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if i := closeImages(out, img, 1e-9); i >= 0 {
			t.Errorf("%s: value %d = %v, want 42", tt.name, i, out.Data()[i])
		}
	}
}

func TestBoxFilter(t *testing.T) {
	img := constant[float64](5, 5, 1, 1)
	sum, err := BoxFilter(img, 3)
	if err != nil {
		t.Fatal(err)
	}
	norm, err := BoxFilterNormalized(img, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range sum.Data() {
		if got := sum.Data()[i]; absf(got-9) > epsilon {
			t.Fatalf("BoxFilter value = %v, want 9", got)
		}
		if got := norm.Data()[i]; absf(got-1.0/9) > epsilon {
			t.Fatalf("BoxFilterNormalized value = %v, want 1/9", got)
		}
	}
}

func TestGaussianBlurUnnormalized(t *testing.T) {
	img := constant[float64](6, 6, 1, 100)
	out, err := GaussianBlur(img, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	k, _ := kernel.Gaussian(3, 1)
	var gain float64
	for _, v := range k {
		gain += v
	}
	if got := out.Pixel(3, 3)[0]; absf(got-100*gain) > 1e-9 {
		t.Errorf("GaussianBlur = %v, want %v", got, 100*gain)
	}
}

func TestConvolutionKeepsAlpha(t *testing.T) {
	img := mustImage(t, 3, 1, 2, true, []float64{0, 10, 90, 20, 0, 30})
	out, err := BoxFilter(img, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		if got, want := out.At(i)[1], img.At(i)[1]; got != want {
			t.Errorf("alpha[%d] = %v, want %v", i, got, want)
		}
	}
	// Middle pixel: 3 rows of (0 + 90 + 0).
	if got := out.At(1)[0]; got != 270 {
		t.Errorf("color[1] = %v, want 270", got)
	}
}

func TestConvolutionParallel(t *testing.T) {
	img := randomF(64, 48, 3, 9)
	want, _ := UnseparableFilter(img, kernel.UnsharpMasking)

	parallel.SetWorkers(4)
	defer parallel.SetWorkers(0)
	got, _ := UnseparableFilter(img, kernel.UnsharpMasking)
	if !got.Equal(want) {
		t.Error("parallel result differs from sequential result")
	}
}
