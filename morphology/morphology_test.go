package morphology

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/gogpu/imgproc"
	"github.com/gogpu/imgproc/image"
	"github.com/gogpu/imgproc/internal/parallel"
)

// binary builds a single-channel image from rows of '#' (255) and '.' (0).
func binary(t *testing.T, rows ...string) *image.Image[uint8] {
	t.Helper()
	var data []uint8
	for _, r := range rows {
		for _, c := range r {
			if c == '#' {
				data = append(data, 255)
			} else {
				data = append(data, 0)
			}
		}
	}
	img, err := image.FromSlice(len(rows[0]), len(rows), 1, false, data)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func randomBinary(w, h int, seed uint64) *image.Image[uint8] {
	rng := rand.New(rand.NewPCG(seed, 1))
	img := image.Blank[uint8](image.Info{Width: w, Height: h, Channels: 1})
	for i := range img.Data() {
		if rng.IntN(2) == 1 {
			img.Data()[i] = 255
		}
	}
	return img
}

func wantRows(t *testing.T, name string, got *image.Image[uint8], rows ...string) {
	t.Helper()
	want := binary(t, rows...)
	if !got.Equal(want) {
		t.Errorf("%s = %v, want %v", name, got.Data(), want.Data())
	}
}

func TestErodeDilate(t *testing.T) {
	img := binary(t,
		".......",
		".####..",
		".####..",
		".####..",
		".......",
	)

	e, err := Erode(img, 1)
	if err != nil {
		t.Fatal(err)
	}
	wantRows(t, "Erode", e,
		".......",
		".......",
		"..##...",
		".......",
		".......",
	)

	d, err := Dilate(img, 1)
	if err != nil {
		t.Fatal(err)
	}
	wantRows(t, "Dilate", d,
		"######.",
		"######.",
		"######.",
		"######.",
		"######.",
	)
}

func TestErodeBorder(t *testing.T) {
	// A white image stays white: clipped windows are all white.
	img := binary(t, "###", "###")
	e, _ := Erode(img, 2)
	wantRows(t, "Erode(white)", e, "###", "###")
}

func TestRadiusZeroIsIdentity(t *testing.T) {
	img := randomBinary(9, 7, 3)
	for name, op := range map[string]func(*image.Image[uint8], int) (*image.Image[uint8], error){
		"Erode": Erode, "Dilate": Dilate, "Open": Open, "Close": Close,
	} {
		out, err := op(img, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !out.Equal(img) {
			t.Errorf("%s(0) changed the image", name)
		}
	}
}

func TestMajority(t *testing.T) {
	img := binary(t,
		"#.#",
		"...",
		"#.#",
	)
	out, err := Majority(img, 1)
	if err != nil {
		t.Fatal(err)
	}
	// The center sees 4 of 9 white pixels and needs 9/2 = 4. A corner
	// sees 1 of 4 and needs 2; an edge sees 2 of 6 and needs 3.
	wantRows(t, "Majority", out,
		"...",
		".#.",
		"...",
	)

	// With radius 0 half the window rounds down to nothing.
	all, _ := Majority(img, 0)
	wantRows(t, "Majority(0)", all, "###", "###", "###")
}

func TestOpenClose(t *testing.T) {
	img := binary(t,
		"........",
		".#......",
		"...###..",
		"...#.#..",
		"...###..",
		"........",
	)

	open, err := Open(img, 1)
	if err != nil {
		t.Fatal(err)
	}
	// The speck and the ring are both thinner than the 3×3 window.
	wantRows(t, "Open", open,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)

	closed, err := Close(img, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v := closed.Pixel(4, 3)[0]; v != 255 {
		t.Errorf("Close filled hole = %d, want 255", v)
	}
}

func TestGradient(t *testing.T) {
	img := binary(t,
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	)
	out, err := Gradient(img, 1)
	if err != nil {
		t.Fatal(err)
	}
	wantRows(t, "Gradient", out,
		"#####",
		"#####",
		"##.##",
		"#####",
		"#####",
	)
}

func TestDuality(t *testing.T) {
	for _, r := range []int{1, 2, 4} {
		b := randomBinary(13, 11, uint64(r))
		inv, _ := Invert(b)
		lhs, err := Dilate(inv, r)
		if err != nil {
			t.Fatal(err)
		}
		e, _ := Erode(b, r)
		rhs, _ := Invert(e)
		if !lhs.Equal(rhs) {
			t.Errorf("r=%d: Dilate(Invert(b)) != Invert(Erode(b))", r)
		}
	}
}

func TestParallel(t *testing.T) {
	img := randomBinary(40, 37, 9)
	want, _ := Gradient(img, 2)

	parallel.SetWorkers(4)
	defer parallel.SetWorkers(0)
	got, _ := Gradient(img, 2)
	if !got.Equal(want) {
		t.Error("parallel Gradient differs from sequential")
	}
}

func TestInvalid(t *testing.T) {
	gray, _ := image.FromSlice(2, 1, 1, false, []uint8{0, 128})
	rgb := image.Blank[uint8](image.Info{Width: 1, Height: 1, Channels: 3})
	ok := binary(t, "#.")

	tests := []struct {
		name string
		err  error
	}{
		{"non-binary", second(Erode(gray, 1))},
		{"channels", second(Dilate(rgb, 1))},
		{"radius", second(Majority(ok, -1))},
		{"invert", second(Invert(gray))},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, imgproc.ErrInvalidArg) {
			t.Errorf("%s: err = %v, want ErrInvalidArg", tt.name, tt.err)
		}
	}
}

func second[T any](_ T, err error) error { return err }

func TestBinarize(t *testing.T) {
	const n = 21
	data := make([]uint8, n*n)
	for i := range data {
		data[i] = 200
	}
	for y := 9; y <= 11; y++ {
		for x := 9; x <= 11; x++ {
			data[y*n+x] = 0
		}
	}
	img, _ := image.FromSlice(n, n, 1, false, data)

	out, err := Binarize(img, 0.3, 15)
	if err != nil {
		t.Fatal(err)
	}
	want := slices.Clone(data)
	for i, v := range want {
		if v == 200 {
			want[i] = 255
		}
	}
	if !slices.Equal(out.Data(), want) {
		t.Errorf("Binarize = %v, want the dark block on white", out.Data())
	}

	// The result feeds straight into the binary operators.
	if _, err := Dilate(out, 1); err != nil {
		t.Errorf("Dilate(Binarize) = %v", err)
	}

	if _, err := Binarize(img, 0.3, 0); !errors.Is(err, imgproc.ErrInvalidArg) {
		t.Errorf("window 0 err = %v, want ErrInvalidArg", err)
	}
}
