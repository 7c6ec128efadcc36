package tone

import (
	"errors"
	"testing"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/colorspace"
	"github.com/gogpu/imgproc/image"
)

func mustRGBA(t *testing.T, w, h int, data []uint8) *image.Image[uint8] {
	t.Helper()
	img, err := image.FromSlice(w, h, 4, true, data)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func within(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestBrightnessRGB(t *testing.T) {
	img := mustRGBA(t, 2, 1, []uint8{220, 30, 0, 99, 10, 245, 128, 1})
	tests := []struct {
		bias int
		want []uint8
	}{
		{50, []uint8{255, 80, 50, 99, 60, 255, 178, 1}},
		{-50, []uint8{170, 0, 0, 99, 0, 195, 78, 1}},
		{0, []uint8{220, 30, 0, 99, 10, 245, 128, 1}},
	}
	for _, tt := range tests {
		out, err := Brightness(img, tt.bias, RGB)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range out.Data() {
			if v != tt.want[i] {
				t.Errorf("Brightness(%d)[%d] = %d, want %d", tt.bias, i, v, tt.want[i])
			}
		}
	}
}

func TestBrightnessLab(t *testing.T) {
	img := mustRGBA(t, 2, 1, []uint8{120, 120, 120, 7, 30, 160, 90, 255})
	same, err := Brightness(img, 0, Lab)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range same.Data() {
		if !within(v, img.Data()[i], 2) {
			t.Errorf("Brightness(0, Lab)[%d] = %d, want ~%d", i, v, img.Data()[i])
		}
	}

	brighter, _ := Brightness(img, 40, Lab)
	for c := range 3 {
		if brighter.Pixel(0, 0)[c] <= 120 {
			t.Errorf("Brightness(40, Lab) = %v, want brighter than 120", brighter.Pixel(0, 0))
		}
	}
	if a := brighter.Pixel(1, 0)[3]; a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
}

func TestBrightnessLabScale(t *testing.T) {
	img := mustRGBA(t, 2, 1, []uint8{120, 120, 120, 255, 0, 0, 0, 255})
	out, err := Brightness(img, 51, Lab)
	if err != nil {
		t.Fatal(err)
	}
	before, _ := colorspace.SRGBToLab(img, colorspace.D50)
	after, _ := colorspace.SRGBToLab(out, colorspace.D50)
	for x := range 2 {
		d := after.Pixel(x, 0)[0] - before.Pixel(x, 0)[0]
		if d < 19.4 || d > 20.6 {
			t.Errorf("Brightness(51, Lab) pixel %d shifts L* by %v, want ~20", x, d)
		}
	}

	white, _ := Brightness(img, 255, Lab)
	for c := range 3 {
		if v := white.Pixel(1, 0)[c]; !within(v, 255, 1) {
			t.Errorf("Brightness(255, Lab) of black = %v, want white", white.Pixel(1, 0))
		}
	}
}

func TestContrast(t *testing.T) {
	img := mustRGBA(t, 1, 1, []uint8{201, 100, 200, 3})
	out, err := Contrast(img, 0.5, RGB)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{101, 50, 100, 3}
	for i, v := range out.Data() {
		if v != want[i] {
			t.Errorf("Contrast[%d] = %d, want %d", i, v, want[i])
		}
	}

	up, _ := Contrast(img, 2, RGB)
	if got := up.Data()[0]; got != 255 {
		t.Errorf("Contrast(2) clamps to %d, want 255", got)
	}

	same, err := Contrast(img, 1, Lab)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range same.Data() {
		if !within(v, img.Data()[i], 2) {
			t.Errorf("Contrast(1, Lab)[%d] = %d, want ~%d", i, v, img.Data()[i])
		}
	}
}

func TestSaturation(t *testing.T) {
	img := mustRGBA(t, 1, 1, []uint8{200, 100, 50, 77})

	gray, err := Saturation(img, -255)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []uint8{200, 200, 200, 77} {
		if got := gray.Data()[i]; got != want {
			t.Errorf("desaturated[%d] = %d, want %d", i, got, want)
		}
	}

	vivid, _ := Saturation(img, 255)
	if p := vivid.Data(); p[0] != 200 || p[2] != 0 {
		t.Errorf("saturated = %v, want max 200 and min 0", p)
	}

	same, _ := Saturation(img, 0)
	for i, v := range same.Data() {
		if !within(v, img.Data()[i], 1) {
			t.Errorf("Saturation(0)[%d] = %d, want ~%d", i, v, img.Data()[i])
		}
	}
}

func TestGamma(t *testing.T) {
	img := mustRGBA(t, 1, 1, []uint8{128, 255, 0, 128})
	out, err := Gamma(img, 2, 255)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{64, 255, 0, 128}
	for i, v := range out.Data() {
		if v != want[i] {
			t.Errorf("Gamma[%d] = %d, want %d", i, v, want[i])
		}
	}

	id, _ := Gamma(img, 1, 255)
	if !id.Equal(img) {
		t.Error("Gamma(1) changed the image")
	}
}

func TestHistogramEqualization(t *testing.T) {
	// A low-contrast ramp of grays.
	img := image.Blank[uint8](image.Info{Width: 16, Height: 4, Channels: 3})
	for i := range img.Size() {
		v := uint8(100 + i%16)
		copy(img.At(i), []uint8{v, v, v})
	}

	id, err := HistogramEqualization(img, 0, colorspace.D65, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !id.Equal(img) {
		t.Error("alpha = 0 changed the image")
	}

	eq, err := HistogramEqualization(img, 1, colorspace.D65, 10)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := uint8(255), uint8(0)
	for _, v := range eq.Data() {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo >= 100 || hi < 250 {
		t.Errorf("equalized range = [%d, %d], want wider than [100, 115]", lo, hi)
	}

	// Equal counts per level give evenly spaced lightness.
	lab, _ := colorspace.SRGBToLab(eq, colorspace.D65)
	for x := range 16 {
		want := float64(x+1) / 16 * 100
		if got := lab.Pixel(x, 0)[0]; got < want-1.5 || got > want+1.5 {
			t.Errorf("L*(%d) = %.2f, want ~%.2f", x, got, want)
		}
	}
}

func TestPercentiles(t *testing.T) {
	lab, _ := image.FromSlice(4, 1, 1, false, []float64{10, 20, 10, 30})
	p := percentiles(lab, 1)
	want := map[int]float64{10: 0.5, 20: 0.75, 30: 1}
	for k, v := range want {
		if p[k] != v {
			t.Errorf("percentile[%d] = %v, want %v", k, p[k], v)
		}
	}
}

func TestToneInvalid(t *testing.T) {
	img := mustRGBA(t, 1, 1, []uint8{1, 2, 3, 4})
	tests := []struct {
		name string
		err  error
	}{
		{"bias", second(Brightness(img, 256, RGB))},
		{"method", second(Brightness(img, 1, Method(5)))},
		{"gain", second(Contrast(img, -1, RGB))},
		{"saturation", second(Saturation(img, -300))},
		{"gamma", second(Gamma(img, -1, 255))},
		{"max", second(Gamma(img, 1, 0))},
		{"alpha", second(HistogramEqualization(img, 1.5, colorspace.D50, 1))},
		{"precision", second(HistogramEqualization(img, 0.5, colorspace.D50, 0))},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, imgproc.ErrInvalidArg) {
			t.Errorf("%s: err = %v, want ErrInvalidArg", tt.name, tt.err)
		}
	}
}

func second[T any](_ T, err error) error { return err }

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{RGB, Lab} {
		if got, err := ParseMethod(m.String()); err != nil || got != m {
			t.Errorf("ParseMethod(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMethod("hsv"); err == nil {
		t.Error("ParseMethod(hsv) succeeded")
	}
}

func TestHistogram(t *testing.T) {
	img := mustRGBA(t, 2, 1, []uint8{5, 6, 7, 0, 5, 9, 7, 0})
	h := Histogram(img)
	if len(h) != 3 {
		t.Fatalf("len(Histogram) = %d, want 3", len(h))
	}
	if h[0][5] != 2 || h[1][6] != 1 || h[1][9] != 1 || h[2][7] != 2 {
		t.Errorf("Histogram counts wrong: r5=%d g6=%d g9=%d b7=%d", h[0][5], h[1][6], h[1][9], h[2][7])
	}
	if h[0][0] != 0 {
		t.Errorf("alpha counted: r0 = %d", h[0][0])
	}
}
