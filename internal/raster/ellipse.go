package raster

import "math"

// Ellipse draws the ellipse inscribed in the rectangle (x, y, w, h).
//
// A pixel belongs to the ellipse when its centre lies inside it; every row
// of the rectangle gets at least one pixel so thin ellipses stay connected.
// A width of 0, or one that reaches the centre, fills the ellipse;
// otherwise the band between the outer ellipse and the one inscribed in the
// rectangle inset by width is drawn. Empty rectangles or a negative width
// draw nothing.
func (r *Rasterizer) Ellipse(x, y, w, h, width int) bool {
	if w <= 0 || h <= 0 || width < 0 {
		return false
	}
	start := r.writes

	if width == 0 || 2*width >= min(w, h) {
		for row := y; row < y+h; row++ {
			x0, x1 := ellipseSpan(x, y, w, h, row)
			r.span(x0, x1, row)
		}
		return r.writes > start
	}

	ix, iy, iw, ih := x+width, y+width, w-2*width, h-2*width
	for row := y; row < y+h; row++ {
		x0, x1 := ellipseSpan(x, y, w, h, row)
		if row < iy || row >= iy+ih {
			r.span(x0, x1, row)
			continue
		}
		i0, i1 := ellipseSpan(ix, iy, iw, ih, row)
		r.span(x0, max(x0, i0-1), row)
		r.span(min(x1, i1+1), x1, row)
	}
	return r.writes > start
}

// ellipseSpan returns the inclusive columns of row covered by the ellipse
// inscribed in (x, y, w, h). The row must lie inside the rectangle.
func ellipseSpan(x, y, w, h, row int) (int, int) {
	rx := float64(w) / 2
	ry := float64(h) / 2
	cx := float64(x) + rx
	cy := float64(y) + ry

	dy := (float64(row) + 0.5 - cy) / ry
	half := rx * math.Sqrt(math.Max(0, 1-dy*dy))

	x0 := int(math.Ceil(cx - half - 0.5))
	x1 := int(math.Floor(cx + half - 0.5))
	if x0 > x1 {
		x0 = int(math.Floor(cx - 0.5))
		x1 = int(math.Ceil(cx - 0.5))
	}
	return x0, x1
}
