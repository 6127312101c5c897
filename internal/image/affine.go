package image

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine represents a 2D affine transformation matrix.
//
// The matrix is stored as an f64.Aff3 in row-major order:
//
//	| m[0]  m[1]  m[2] |
//	| m[3]  m[4]  m[5] |
//	|  0     0     1   |
type Affine struct {
	m f64.Aff3
}

// Identity returns the identity transformation (no change).
func Identity() Affine {
	return Affine{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{m: f64.Aff3{1, 0, tx, 0, 1, ty}}
}

// Scale returns a scaling by (sx, sy) around the origin.
func Scale(sx, sy float64) Affine {
	return Affine{m: f64.Aff3{sx, 0, 0, 0, sy, 0}}
}

// Rotate returns a rotation by angle radians around the origin.
// In a y-down pixel grid a positive angle turns counter-clockwise on screen.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{m: f64.Aff3{cos, sin, 0, -sin, cos, 0}}
}

// Matrix returns the underlying matrix.
func (a Affine) Matrix() f64.Aff3 {
	return a.m
}

// Multiply returns a * other: other is applied first, then a.
func (a Affine) Multiply(other Affine) Affine {
	p, q := a.m, other.m
	return Affine{m: f64.Aff3{
		p[0]*q[0] + p[1]*q[3],
		p[0]*q[1] + p[1]*q[4],
		p[0]*q[2] + p[1]*q[5] + p[2],
		p[3]*q[0] + p[4]*q[3],
		p[3]*q[1] + p[4]*q[4],
		p[3]*q[2] + p[4]*q[5] + p[5],
	}}
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular.
func (a Affine) Invert() (Affine, bool) {
	m := a.m
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}

	inv := 1.0 / det
	return Affine{m: f64.Aff3{
		m[4] * inv,
		-m[1] * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		-m[3] * inv,
		m[0] * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
	}}, true
}

// TransformPoint applies the transformation to (x, y).
func (a Affine) TransformPoint(x, y float64) (float64, float64) {
	m := a.m
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// Bounds returns the size of the axis-aligned box that contains a w x h
// rectangle after the linear part of a is applied.
func (a Affine) Bounds(w, h float64) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}} {
		m := a.m
		x := m[0]*c[0] + m[1]*c[1]
		y := m[3]*c[0] + m[4]*c[1]
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return maxX - minX, maxY - minY
}
