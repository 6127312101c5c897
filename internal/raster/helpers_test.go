package raster

import (
	"testing"

	"github.com/gogpu/pixsurf/internal/clip"
)

// gridTarget records every pixel written by a Rasterizer. Writes outside
// the grid fail the test immediately.
type gridTarget struct {
	t      *testing.T
	width  int
	height int
	hits   []int
	blends []float64
}

func newGridTarget(t *testing.T, w, h int) *gridTarget {
	t.Helper()
	return &gridTarget{t: t, width: w, height: h, hits: make([]int, w*h), blends: make([]float64, w*h)}
}

func (g *gridTarget) check(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		g.t.Fatalf("write outside grid at (%d, %d)", x, y)
	}
}

func (g *gridTarget) Plot(x, y int) {
	g.check(x, y)
	g.hits[y*g.width+x]++
}

func (g *gridTarget) Span(x0, x1, y int) {
	if x0 > x1 {
		g.t.Fatalf("Span(%d, %d, %d) with x0 > x1", x0, x1, y)
	}
	for x := x0; x <= x1; x++ {
		g.Plot(x, y)
	}
}

func (g *gridTarget) set(x, y int) bool {
	return g.hits[y*g.width+x] > 0
}

func (g *gridTarget) count() int {
	n := 0
	for _, h := range g.hits {
		if h > 0 {
			n++
		}
	}
	return n
}

// outside reports the first written pixel outside r.
func (g *gridTarget) outside(r clip.Rect) (int, int, bool) {
	for y := range g.height {
		for x := range g.width {
			if g.set(x, y) && !r.Contains(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// blendTarget additionally implements Blender.
type blendTarget struct {
	*gridTarget
}

func (b blendTarget) Blend(x, y int, c float64) {
	b.check(x, y)
	b.blends[y*b.width+x] += c
	b.hits[y*b.width+x]++
}

func newRaster(t *testing.T, w, h int) (*Rasterizer, *gridTarget) {
	t.Helper()
	g := newGridTarget(t, w, h)
	return NewRasterizer(g, clip.NewRect(0, 0, w, h)), g
}
