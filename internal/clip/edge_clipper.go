package clip

// EdgeClipper clips segments and spans against a rectangular clip region.
type EdgeClipper struct {
	clip Rect

	// Inclusive pixel bounds of clip.
	left, top, right, bottom int
}

// NewEdgeClipper creates an edge clipper for the given bounds.
func NewEdgeClipper(clip Rect) *EdgeClipper {
	return &EdgeClipper{
		clip:   clip,
		left:   clip.X,
		top:    clip.Y,
		right:  clip.Right() - 1,
		bottom: clip.Bottom() - 1,
	}
}

// Clip returns the clip rectangle.
func (ec *EdgeClipper) Clip() Rect {
	return ec.clip
}

// Outcode constants for Cohen-Sutherland algorithm.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

// outcode computes the Cohen-Sutherland outcode for a pixel.
func (ec *EdgeClipper) outcode(x, y int) int {
	code := outcodeInside

	if x < ec.left {
		code |= outcodeLeft
	}
	if x > ec.right {
		code |= outcodeRight
	}
	if y < ec.top {
		code |= outcodeTop
	}
	if y > ec.bottom {
		code |= outcodeBottom
	}

	return code
}

// maxClipIterations bounds the endpoint moves of ClipSegment; a segment
// still unresolved after that many moves is rejected.
const maxClipIterations = 16

// ClipSegment clips s to the clip rectangle using the Cohen-Sutherland
// algorithm. It reports false when no part of the segment is inside.
//
// An outside endpoint is moved onto the violated edge along the segment's
// slope, with the other coordinate truncated toward zero. When the first
// endpoint is already inside, the endpoints are swapped so that the moving
// end is always the first one; the returned segment may therefore run in
// the opposite direction of s.
func (ec *EdgeClipper) ClipSegment(s Seg) (Seg, bool) {
	if ec.clip.IsEmpty() {
		return Seg{}, false
	}

	x1, y1, x2, y2 := s.X0, s.Y0, s.X1, s.Y1
	for range maxClipIterations {
		code1 := ec.outcode(x1, y1)
		code2 := ec.outcode(x2, y2)

		if code1|code2 == 0 {
			return Seg{X0: x1, Y0: y1, X1: x2, Y1: y2}, true
		}
		if code1&code2 != 0 {
			return Seg{}, false
		}

		if code1 == outcodeInside {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
			code1 = code2
		}

		m := 1.0
		if x2 != x1 {
			m = float64(y2-y1) / float64(x2-x1)
		}

		switch {
		case code1&outcodeLeft != 0:
			y1 += int(float64(ec.left-x1) * m)
			x1 = ec.left
		case code1&outcodeRight != 0:
			y1 += int(float64(ec.right-x1) * m)
			x1 = ec.right
		case code1&outcodeBottom != 0:
			if x2 != x1 {
				x1 += int(float64(ec.bottom-y1) / m)
			}
			y1 = ec.bottom
		case code1&outcodeTop != 0:
			if x2 != x1 {
				x1 += int(float64(ec.top-y1) / m)
			}
			y1 = ec.top
		}
	}
	return Seg{}, false
}

// ClipSpan clips the inclusive horizontal run x0..x1 on row y.
// The returned run is ordered left to right.
func (ec *EdgeClipper) ClipSpan(x0, x1, y int) (int, int, bool) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y < ec.top || y > ec.bottom || x1 < ec.left || x0 > ec.right {
		return 0, 0, false
	}
	return ec.ClampX(x0), ec.ClampX(x1), true
}

// ClipVSpan clips the inclusive vertical run y0..y1 on column x.
// The returned run is ordered top to bottom.
func (ec *EdgeClipper) ClipVSpan(x, y0, y1 int) (int, int, bool) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x < ec.left || x > ec.right || y1 < ec.top || y0 > ec.bottom {
		return 0, 0, false
	}
	return max(y0, ec.top), min(y1, ec.bottom), true
}

// ClampX clamps x into the clip's horizontal pixel range.
func (ec *EdgeClipper) ClampX(x int) int {
	return min(max(x, ec.left), ec.right)
}

// Contains reports whether pixel (x, y) is inside the clip region.
func (ec *EdgeClipper) Contains(x, y int) bool {
	return ec.outcode(x, y) == outcodeInside
}
