package raster

import "slices"

// FillPolygon fills the polygon through pts using the even-odd rule.
//
// Each scanline inside the polygon's vertical extent (limited to the clip
// region) is intersected with every non-horizontal edge. An edge spanning
// y1..y2 (y1 < y2) contributes when y1 <= y < y2, and also when it ends
// on the polygon's last row, which makes the bottom row inclusive. The
// intersection uses truncating integer division. Sorted intersections are
// filled pairwise. Horizontal edges strictly between the top and bottom
// rows are drawn afterwards, since the half-open test skips them.
//
// A polygon whose vertices all share one row is drawn as a single span.
func (r *Rasterizer) FillPolygon(pts []Point) bool {
	n := len(pts)
	if n == 0 {
		return false
	}

	miny, maxy := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		miny = min(miny, p.Y)
		maxy = max(maxy, p.Y)
	}

	drawn := false
	if miny == maxy {
		minx, maxx := pts[0].X, pts[0].X
		for _, p := range pts[1:] {
			minx = min(minx, p.X)
			maxx = max(maxx, p.X)
		}
		return r.span(minx, maxx, miny)
	}

	c := r.ec.Clip()
	ystart := max(miny, c.Y)
	yend := min(maxy, c.Bottom()-1)

	if cap(r.ints) < n {
		r.ints = make([]int, 0, n)
	}

	for y := ystart; y <= yend; y++ {
		ints := r.ints[:0]
		for i := range n {
			prev := i - 1
			if i == 0 {
				prev = n - 1
			}

			y1, y2 := pts[prev].Y, pts[i].Y
			var x1, x2 int
			switch {
			case y1 < y2:
				x1, x2 = pts[prev].X, pts[i].X
			case y1 > y2:
				y1, y2 = y2, y1
				x1, x2 = pts[i].X, pts[prev].X
			default:
				continue
			}

			if (y >= y1 && y < y2) || (y == maxy && y2 == maxy) {
				ints = append(ints, (y-y1)*(x2-x1)/(y2-y1)+x1)
			}
		}
		slices.Sort(ints)

		for i := 0; i+1 < len(ints); i += 2 {
			if r.span(ints[i], ints[i+1], y) {
				drawn = true
			}
		}
		r.ints = ints
	}

	for i := range n {
		prev := i - 1
		if i == 0 {
			prev = n - 1
		}
		y := pts[i].Y
		if miny < y && pts[prev].Y == y && y < maxy {
			if r.span(pts[i].X, pts[prev].X, y) {
				drawn = true
			}
		}
	}
	return drawn
}
