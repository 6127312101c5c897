package raster

// Circle draws a circle of the given radius centred on (x0, y0).
//
// A width of 0, or one at least as large as the radius, fills the circle.
// Otherwise a ring of the given thickness is drawn inwards from the
// radius. The circle covers columns x0-radius..x0+radius-1 and the same
// rows, so its diameter is exactly 2*radius pixels. A radius below 1 or a
// negative width draws nothing.
func (r *Rasterizer) Circle(x0, y0, radius, width int) bool {
	if radius < 1 || width < 0 {
		return false
	}
	start := r.writes

	if width == 0 || width >= radius {
		r.filledCircle(x0, y0, radius)
	} else {
		r.ringCircle(x0, y0, radius, width)
	}
	return r.writes > start
}

// filledCircle fills the circle with horizontal spans, one per row.
func (r *Rasterizer) filledCircle(x0, y0, radius int) {
	f := 1 - radius
	ddx := 0
	ddy := -2 * radius
	x := 0
	y := radius

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		x++
		ddx += 2
		f += ddx + 1

		// The outer rows only change when y is about to step.
		if f >= 0 {
			r.span(x0-x, x0+x-1, y0+y-1)
			r.span(x0-x, x0+x-1, y0-y)
		}
		r.span(x0-y, x0+y-1, y0+x-1)
		r.span(x0-y, x0+y-1, y0-x)
	}
}

// ringCircle draws the octants of a ring between radius and
// radius-thickness, walking an outer and an inner midpoint circle together.
func (r *Rasterizer) ringCircle(x0, y0, radius, thickness int) {
	f := 1 - radius
	ddx := 0
	ddy := -2 * radius
	x := 0
	y := radius

	iy := radius - thickness
	iF := 1 - iy
	iddx := 0
	iddy := -2 * iy

	for x < y {
		if f >= 0 {
			y--
			ddy += 2
			f += ddy
		}
		if iF >= 0 {
			iy--
			iddy += 2
			iF += iddy
		}
		x++
		ddx += 2
		f += ddx + 1

		iddx += 2
		iF += iddx + 1

		if thickness > 1 {
			thickness = y - iy
		}

		for i := range thickness {
			y1 := y - i
			if y0-y1 < y0-x {
				r.plotClipped(x0+x-1, y0-y1)
				r.plotClipped(x0-x, y0-y1)
			}
			if y0+y1-1 > y0+x-1 {
				r.plotClipped(x0+x-1, y0+y1-1)
				r.plotClipped(x0-x, y0+y1-1)
			}
			r.plotClipped(x0+y1-1, y0+x-1)
			r.plotClipped(x0+y1-1, y0-x)
			r.plotClipped(x0-y1, y0+x-1)
			r.plotClipped(x0-y1, y0-x)
		}
	}
}
