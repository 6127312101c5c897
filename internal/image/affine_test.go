package image

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAffineIdentityAndTranslate(t *testing.T) {
	x, y := Identity().TransformPoint(10, 20)
	if !near(x, 10) || !near(y, 20) {
		t.Errorf("Identity() moved point to (%f, %f)", x, y)
	}

	x, y = Translate(3, -4).TransformPoint(2, 8)
	if !near(x, 5) || !near(y, 4) {
		t.Errorf("Translate(3, -4) = (%f, %f), want (5, 4)", x, y)
	}
}

func TestAffineRotateQuarterTurn(t *testing.T) {
	// A quarter turn moves the +x axis to screen-up (negative y).
	x, y := Rotate(math.Pi/2).TransformPoint(1, 0)
	if !near(x, 0) || !near(y, -1) {
		t.Errorf("Rotate(pi/2)(1, 0) = (%f, %f), want (0, -1)", x, y)
	}
}

func TestAffineMultiplyOrder(t *testing.T) {
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(1, 1)
	if !near(x, 12) || !near(y, 2) {
		t.Errorf("Translate*Scale(1, 1) = (%f, %f), want (12, 2)", x, y)
	}
}

func TestAffineInvert(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, 3))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular matrix")
	}
	x, y := inv.TransformPoint(m.TransformPoint(4, -2))
	if !near(x, 4) || !near(y, -2) {
		t.Errorf("round trip = (%f, %f), want (4, -2)", x, y)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Invert() of singular matrix reported ok")
	}
}

func TestAffineBounds(t *testing.T) {
	w, h := Rotate(math.Pi/2).Bounds(10, 4)
	if !near(w, 4) || !near(h, 10) {
		t.Errorf("Bounds() = (%f, %f), want (4, 10)", w, h)
	}
	w, h = Scale(2, 0.5).Bounds(10, 4)
	if !near(w, 20) || !near(h, 2) {
		t.Errorf("Bounds() = (%f, %f), want (20, 2)", w, h)
	}
}
