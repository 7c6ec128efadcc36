package transform

import (
	"math"

	"github.com/gogpu/imgproc/imgmath"
)

// Affine is a 2D affine matrix
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// mapping (x, y) to (a·x + b·y + c, d·x + e·y + f).
type Affine struct {
	a, b, c float64
	d, e, f float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{a: 1, e: 1}
}

// Translation shifts points by (tx, ty).
func Translation(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Scaling scales by (sx, sy) about the origin.
func Scaling(sx, sy float64) Affine {
	return Affine{a: sx, e: sy}
}

// Rotation rotates by angle radians about the origin. In image coordinates,
// where y grows downward, positive angles turn clockwise on screen.
func Rotation(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		a: cos, b: -sin,
		d: sin, e: cos,
	}
}

// Shearing returns the matrix [[1, sx], [sy, 1]].
func Shearing(sx, sy float64) Affine {
	return Affine{a: 1, b: sx, d: sy, e: 1}
}

// Multiply returns m·other, which applies other first.
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		a: m.a*other.a + m.b*other.d,
		b: m.a*other.b + m.b*other.e,
		c: m.a*other.c + m.b*other.f + m.c,
		d: m.d*other.a + m.e*other.d,
		e: m.d*other.b + m.e*other.e,
		f: m.d*other.c + m.e*other.f + m.f,
	}
}

// Invert returns the inverse transformation, or false if m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}

	inv := 1 / det
	return Affine{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.c*m.e) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.c*m.d - m.a*m.f) * inv,
	}, true
}

// Apply maps (x, y) through m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

// RotationAt rotates by angle radians about (cx, cy).
func RotationAt(angle, cx, cy float64) Affine {
	return Translation(cx, cy).Multiply(Rotation(angle)).Multiply(Translation(-cx, -cy))
}

// bounds returns the size of the axis-aligned box that holds the w×h
// rectangle after m, and the offset that moves that box to the origin.
func (m Affine) bounds(w, h int) (width, height int, dx, dy float64) {
	x0, y0 := m.Apply(0, 0)
	x1, y1 := m.Apply(float64(w), 0)
	x2, y2 := m.Apply(0, float64(h))
	x3, y3 := m.Apply(float64(w), float64(h))
	minX, maxX := imgmath.Min4(x0, x1, x2, x3), imgmath.Max4(x0, x1, x2, x3)
	minY, maxY := imgmath.Min4(y0, y1, y2, y3), imgmath.Max4(y0, y1, y2, y3)

	// Float noise must not add a column: a quarter turn of 3×2 is 2×3.
	width = int(math.Ceil(maxX - minX - 1e-9))
	height = int(math.Ceil(maxY - minY - 1e-9))
	return max(width, 1), max(height, 1), -minX, -minY
}
