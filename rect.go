package pixsurf

import (
	"fmt"

	"github.com/gogpu/pixsurf/internal/clip"
)

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an integer rectangle. The right and bottom edges are exclusive:
// a Rect covers columns X..X+W-1 and rows Y..Y+H-1.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a Rect.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d, %d, %d, %d)", r.X, r.Y, r.W, r.H)
}

// Left returns the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the width and height.
func (r Rect) Size() (int, int) { return r.W, r.H }

// Center returns the centre, rounded towards the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Normalize returns r with negative sizes flipped so that W and H are
// not negative and the same area is covered.
func (r Rect) Normalize() Rect {
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

// Move returns r translated by (dx, dy).
func (r Rect) Move(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inflate grows r by dx horizontally and dy vertically, keeping the
// centre in place.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{X: r.X - dx/2, Y: r.Y - dy/2, W: r.W + dx, H: r.H + dy}
}

// Clip returns the intersection of r and o. Rectangles that do not
// overlap give a zero-sized Rect at r's position.
func (r Rect) Clip(o Rect) Rect {
	return fromClip(toClip(r).Intersect(toClip(o)))
}

// Union returns the smallest rectangle containing r and o. Empty
// rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case o.Empty():
		return r
	case r.Empty():
		return o
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom() &&
		!r.Empty()
}

// CollidePoint reports whether pixel p lies inside r.
func (r Rect) CollidePoint(p Point) bool {
	return toClip(r).Contains(p.X, p.Y)
}

// CollideRect reports whether r and o overlap.
func (r Rect) CollideRect(o Rect) bool {
	return !r.Clip(o).Empty()
}

func toClip(r Rect) clip.Rect {
	return clip.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func fromClip(r clip.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
