package raster

import "github.com/gogpu/pixsurf/internal/clip"

// Line draws a one pixel wide line from (x0, y0) to (x1, y1), both
// endpoints included. It reports whether any pixel was drawn.
//
// Horizontal and vertical lines become a single span. Other lines are
// clipped first and then walked with Bresenham's algorithm; both clipped
// endpoints are always set directly, independent of the walk.
func (r *Rasterizer) Line(x0, y0, x1, y1 int) bool {
	s, ok := r.ec.ClipSegment(clip.Seg{X0: x0, Y0: y0, X1: x1, Y1: y1})
	if !ok {
		return false
	}

	switch {
	case s.Y0 == s.Y1:
		return r.span(s.X0, s.X1, s.Y0)
	case s.X0 == s.X1:
		return r.vspan(s.X0, s.Y0, s.Y1)
	}

	r.bresenham(s.X0, s.Y0, s.X1, s.Y1)
	return true
}

// bresenham walks an in-clip segment.
func (r *Rasterizer) bresenham(x0, y0, x1, y1 int) {
	r.plot(x0, y0)
	r.plot(x1, y1)

	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := abs(y1-y0), sign(y1-y0)

	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	x, y := x0, y0
	for {
		e2 := err
		if e2 > -dx {
			err -= dy
			x += sx
		}
		if e2 < dy {
			err += dx
			y += sy
		}
		if x == x1 && y == y1 {
			return
		}
		r.plot(x, y)
	}
}

// ThickLine draws a line of the given width as parallel one pixel lines.
//
// The centre line is drawn first, followed by copies offset by +1, -1, +2,
// -2 and so on, perpendicular to the dominant axis: lines that are wider
// than tall are thickened vertically and all others horizontally. When the
// width is even the positive side receives the extra copy. Each copy is
// clipped on its own. A width below 1 draws nothing.
func (r *Rasterizer) ThickLine(x0, y0, x1, y1, width int) bool {
	if width < 1 {
		return false
	}

	xinc, yinc := 0, 0
	if abs(x0-x1) > abs(y0-y1) {
		yinc = 1
	} else {
		xinc = 1
	}

	drawn := r.Line(x0, y0, x1, y1)
	for loop := 1; loop < width; loop += 2 {
		off := loop/2 + 1
		if r.Line(x0+xinc*off, y0+yinc*off, x1+xinc*off, y1+yinc*off) {
			drawn = true
		}
		if loop+1 < width {
			if r.Line(x0-xinc*off, y0-yinc*off, x1-xinc*off, y1-yinc*off) {
				drawn = true
			}
		}
	}
	return drawn
}

// Polyline draws connected segments through pts with the given width.
// When closed is set and more than two points are given, a final segment
// joins the last point back to the first. It reports whether any pixel
// was drawn.
func (r *Rasterizer) Polyline(pts []Point, closed bool, width int) bool {
	if len(pts) == 0 || width < 1 {
		return false
	}

	drawn := false
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if r.ThickLine(a.X, a.Y, b.X, b.Y, width) {
			drawn = true
		}
	}
	if closed && len(pts) > 2 {
		a, b := pts[len(pts)-1], pts[0]
		if r.ThickLine(a.X, a.Y, b.X, b.Y, width) {
			drawn = true
		}
	}
	return drawn
}
