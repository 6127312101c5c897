// Package raster provides integer rasterization of lines, polylines,
// polygons, circles and ellipses onto a clipped pixel target.
package raster

import (
	"golang.org/x/exp/constraints"

	"github.com/gogpu/pixsurf/internal/clip"
)

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Target receives the pixels produced by a Rasterizer. Every coordinate
// passed to a Target lies inside the rasterizer's clip region.
type Target interface {
	// Plot sets a single pixel.
	Plot(x, y int)

	// Span sets the inclusive run x0..x1 of row y, with x0 <= x1.
	Span(x0, x1, y int)
}

// Blender is an optional interface for targets that can mix the drawing
// color into the existing pixel. Anti-aliased drawing uses it when present
// and falls back to thresholded Plot calls otherwise.
type Blender interface {
	// Blend mixes the drawing color into (x, y) with weight coverage in (0, 1].
	Blend(x, y int, coverage float64)
}

// Rasterizer draws primitives onto a Target, discarding everything outside
// its clip region and recording the area it touched.
type Rasterizer struct {
	dst    Target
	ec     *clip.EdgeClipper
	area   Area
	writes int

	// scratch for polygon intersections
	ints []int
}

// NewRasterizer creates a rasterizer that draws onto dst within clipRect.
func NewRasterizer(dst Target, clipRect clip.Rect) *Rasterizer {
	return &Rasterizer{
		dst: dst,
		ec:  clip.NewEdgeClipper(clipRect),
	}
}

// Area returns the area touched since creation.
func (r *Rasterizer) Area() Area {
	return r.area
}

// plot sets an in-clip pixel.
func (r *Rasterizer) plot(x, y int) {
	r.dst.Plot(x, y)
	r.area.add(x, y, x, y)
	r.writes++
}

// plotClipped sets (x, y) if it lies inside the clip region.
func (r *Rasterizer) plotClipped(x, y int) {
	if r.ec.Contains(x, y) {
		r.plot(x, y)
	}
}

// span fills the inclusive run x0..x1 of row y after clipping it.
func (r *Rasterizer) span(x0, x1, y int) bool {
	x0, x1, ok := r.ec.ClipSpan(x0, x1, y)
	if !ok {
		return false
	}
	r.dst.Span(x0, x1, y)
	r.area.add(x0, y, x1, y)
	r.writes++
	return true
}

// vspan fills the inclusive run y0..y1 of column x after clipping it.
func (r *Rasterizer) vspan(x, y0, y1 int) bool {
	y0, y1, ok := r.ec.ClipVSpan(x, y0, y1)
	if !ok {
		return false
	}
	for y := y0; y <= y1; y++ {
		r.dst.Plot(x, y)
	}
	r.area.add(x, y0, x, y1)
	r.writes++
	return true
}

// Area is the bounding box of the pixels a Rasterizer has written.
type Area struct {
	drawn                  bool
	minX, minY, maxX, maxY int
}

// add grows the area by the inclusive box (x0, y0)-(x1, y1).
func (a *Area) add(x0, y0, x1, y1 int) {
	if !a.drawn {
		a.drawn = true
		a.minX, a.minY, a.maxX, a.maxY = x0, y0, x1, y1
		return
	}
	a.minX = min(a.minX, x0)
	a.minY = min(a.minY, y0)
	a.maxX = max(a.maxX, x1)
	a.maxY = max(a.maxY, y1)
}

// Empty reports whether nothing was drawn.
func (a Area) Empty() bool {
	return !a.drawn
}

// Rect returns the drawn area as a rectangle with exclusive right and
// bottom edges. When nothing was drawn it returns a zero-sized rectangle
// anchored at (x, y).
func (a Area) Rect(x, y int) clip.Rect {
	if !a.drawn {
		return clip.Rect{X: x, Y: y}
	}
	return clip.Rect{X: a.minX, Y: a.minY, W: a.maxX - a.minX + 1, H: a.maxY - a.minY + 1}
}

func abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	if v < 0 {
		return -1
	}
	return 1
}
