package raster

import "math"

// AALine draws an anti-aliased line from (x0, y0) to (x1, y1) using
// Xiaolin Wu's algorithm. Pixel centres sit on integer coordinates. Each
// pixel is handed to the target's Blend method with its coverage; targets
// without Blend get a plain Plot for coverages of one half or more.
func (r *Rasterizer) AALine(x0, y0, x1, y1 float64) bool {
	start := r.writes

	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	put := func(x, y int, c float64) {
		if steep {
			x, y = y, x
		}
		r.blend(x, y, c)
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	// first endpoint
	xend := math.Floor(x0 + 0.5)
	yend := y0 + gradient*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpx1 := int(xend)
	ypx1 := int(math.Floor(yend))
	put(xpx1, ypx1, rfpart(yend)*xgap)
	put(xpx1, ypx1+1, fpart(yend)*xgap)
	intery := yend + gradient

	// second endpoint
	xend = math.Floor(x1 + 0.5)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpx2 := int(xend)
	ypx2 := int(math.Floor(yend))
	put(xpx2, ypx2, rfpart(yend)*xgap)
	put(xpx2, ypx2+1, fpart(yend)*xgap)

	for x := xpx1 + 1; x < xpx2; x++ {
		iy := int(math.Floor(intery))
		put(x, iy, rfpart(intery))
		put(x, iy+1, fpart(intery))
		intery += gradient
	}
	return r.writes > start
}

// blend mixes the drawing color into an arbitrary pixel.
func (r *Rasterizer) blend(x, y int, coverage float64) {
	if coverage <= 0 || !r.ec.Contains(x, y) {
		return
	}
	coverage = math.Min(coverage, 1)

	if b, ok := r.dst.(Blender); ok {
		b.Blend(x, y, coverage)
		r.area.add(x, y, x, y)
		r.writes++
		return
	}
	if coverage >= 0.5 {
		r.plot(x, y)
	}
}

func fpart(v float64) float64 {
	return v - math.Floor(v)
}

func rfpart(v float64) float64 {
	return 1 - fpart(v)
}
