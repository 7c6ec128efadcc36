package transform

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func TestAffineApply(t *testing.T) {
	tests := []struct {
		name       string
		m          Affine
		inX, inY   float64
		outX, outY float64
	}{
		{"identity", Identity(), 10, 20, 10, 20},
		{"translate", Translation(3, -4), 2, 8, 5, 4},
		{"scale", Scaling(3, 0.5), 4, 10, 12, 5},
		{"flip-x", Scaling(-1, 1), 5, 10, -5, 10},
		{"rotate-90", Rotation(math.Pi / 2), 1, 0, 0, 1},
		{"rotate-180", Rotation(math.Pi), 1, 0, -1, 0},
		{"rotate-45", Rotation(math.Pi / 4), 1, 0, math.Sqrt(2) / 2, math.Sqrt(2) / 2},
		{"shear-x", Shearing(2, 0), 1, 3, 7, 3},
		{"shear-both", Shearing(1, 1), 2, 3, 5, 5},
		{"rotate-at", RotationAt(math.Pi/2, 1, 1), 2, 1, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.Apply(tt.inX, tt.inY)
			if math.Abs(x-tt.outX) > epsilon || math.Abs(y-tt.outY) > epsilon {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.inX, tt.inY, x, y, tt.outX, tt.outY)
			}
		})
	}
}

func TestAffineMultiplyOrder(t *testing.T) {
	translate := Translation(10, 20)
	scale := Scaling(2, 2)

	// Translate first, then scale.
	x, y := scale.Multiply(translate).Apply(0, 0)
	if math.Abs(x-20) > epsilon || math.Abs(y-40) > epsilon {
		t.Errorf("scale·translate (0, 0) = (%v, %v), want (20, 40)", x, y)
	}

	x, y = translate.Multiply(scale).Apply(0, 0)
	if math.Abs(x-10) > epsilon || math.Abs(y-20) > epsilon {
		t.Errorf("translate·scale (0, 0) = (%v, %v), want (10, 20)", x, y)
	}
}

func TestAffineInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Affine
		ok   bool
	}{
		{"identity", Identity(), true},
		{"translate", Translation(10, 20), true},
		{"scale", Scaling(2, 3), true},
		{"rotate", Rotation(math.Pi / 4), true},
		{"shear", Shearing(0.5, -0.25), true},
		{"singular", Affine{a: 1, b: 2, d: 2, e: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if ok != tt.ok {
				t.Fatalf("Invert() ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			x, y := tt.m.Multiply(inv).Apply(5, 7)
			if math.Abs(x-5) > epsilon || math.Abs(y-7) > epsilon {
				t.Errorf("m·m⁻¹ (5, 7) = (%v, %v), want (5, 7)", x, y)
			}
		})
	}
}

func TestAffineBounds(t *testing.T) {
	tests := []struct {
		name   string
		m      Affine
		w, h   int
		ow, oh int
		dx, dy float64
	}{
		{"identity", Identity(), 4, 3, 4, 3, 0, 0},
		{"quarter-turn", Rotation(math.Pi / 2), 3, 2, 2, 3, 2, 0},
		{"shear", Shearing(-1, 0), 2, 2, 4, 2, 2, 0},
		{"half-shear", Shearing(0.5, 0), 4, 3, 6, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ow, oh, dx, dy := tt.m.bounds(tt.w, tt.h)
			if ow != tt.ow || oh != tt.oh {
				t.Errorf("bounds size = %dx%d, want %dx%d", ow, oh, tt.ow, tt.oh)
			}
			if math.Abs(dx-tt.dx) > epsilon || math.Abs(dy-tt.dy) > epsilon {
				t.Errorf("bounds offset = (%v, %v), want (%v, %v)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}
