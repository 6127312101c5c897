package pixsurf

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/pixsurf/internal/blend"
	"github.com/gogpu/pixsurf/internal/image"
	"github.com/gogpu/pixsurf/internal/raster"
)

// surfaceTarget writes one color into a pixel buffer for the rasterizer.
type surfaceTarget struct {
	buf    *image.Buf
	format *PixelFormat
	color  Color
	value  uint32
}

func (t *surfaceTarget) Plot(x, y int) {
	t.buf.Put(x, y, t.value)
}

func (t *surfaceTarget) Span(x0, x1, y int) {
	t.buf.FillSpan(x0, x1, y, t.value)
}

// Blend mixes the color into (x, y) weighted by coverage.
func (t *surfaceTarget) Blend(x, y int, coverage float64) {
	w := byte(math.Round(coverage * 255))
	d := t.format.Unmap(t.buf.At(x, y))
	c := Color{
		R: blend.Lerp(t.color.R, d.R, w),
		G: blend.Lerp(t.color.G, d.G, w),
		B: blend.Lerp(t.color.B, d.B, w),
		A: blend.Lerp(t.color.A, d.A, w),
	}
	t.buf.Put(x, y, t.format.Map(c))
}

// draw runs fn on a rasterizer clipped to the clip rectangle of s and
// returns the drawn area. An empty area is anchored at anchor.
func (s *Surface) draw(c Color, anchor Point, fn func(r *raster.Rasterizer)) Rect {
	defer s.acquire()()

	t := &surfaceTarget{buf: s.buf, format: s.format, color: c, value: s.format.Map(c)}
	r := raster.NewRasterizer(t, s.clipRect())
	fn(r)
	return fromClip(r.Area().Rect(anchor.X, anchor.Y))
}

func rasterPoints(pts []Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = raster.Pt(p.X, p.Y)
	}
	return out
}

// DrawLine draws a line of the given width from start to end, both
// included, and returns the area it changed. A width below 1 draws
// nothing.
func (s *Surface) DrawLine(c Color, start, end Point, width int) Rect {
	return s.draw(c, start, func(r *raster.Rasterizer) {
		r.ThickLine(start.X, start.Y, end.X, end.Y, width)
	})
}

// DrawLines draws connected lines through pts. When closed is set and
// there are more than two points the last point is joined to the first.
func (s *Surface) DrawLines(c Color, closed bool, pts []Point, width int) (Rect, error) {
	if len(pts) < 2 {
		return Rect{}, fmt.Errorf("%w: lines need at least 2 points, have %d", ErrInvalidArgument, len(pts))
	}
	return s.draw(c, pts[0], func(r *raster.Rasterizer) {
		r.Polyline(rasterPoints(pts), closed, width)
	}), nil
}

// DrawAALine draws an anti-aliased line from start to end, blending the
// color into the existing pixels.
func (s *Surface) DrawAALine(c Color, start, end Point) Rect {
	return s.draw(c, start, func(r *raster.Rasterizer) {
		r.AALine(float64(start.X), float64(start.Y), float64(end.X), float64(end.Y))
	})
}

// DrawAALines draws anti-aliased connected lines through pts.
func (s *Surface) DrawAALines(c Color, closed bool, pts []Point) (Rect, error) {
	if len(pts) < 2 {
		return Rect{}, fmt.Errorf("%w: lines need at least 2 points, have %d", ErrInvalidArgument, len(pts))
	}
	return s.draw(c, pts[0], func(r *raster.Rasterizer) {
		seg := func(a, b Point) {
			r.AALine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
		}
		for i := 1; i < len(pts); i++ {
			seg(pts[i-1], pts[i])
		}
		if closed && len(pts) > 2 {
			seg(pts[len(pts)-1], pts[0])
		}
	}), nil
}

// DrawPolygon fills the polygon through pts when width is 0 and draws its
// outline with the given width otherwise. A negative width draws
// nothing.
func (s *Surface) DrawPolygon(c Color, pts []Point, width int) (Rect, error) {
	if len(pts) < 3 {
		return Rect{}, fmt.Errorf("%w: polygon needs at least 3 points, have %d", ErrInvalidArgument, len(pts))
	}
	return s.polygon(c, pts, width), nil
}

// polygon draws a polygon through at least 3 points.
func (s *Surface) polygon(c Color, pts []Point, width int) Rect {
	return s.draw(c, pts[0], func(r *raster.Rasterizer) {
		switch {
		case width == 0:
			r.FillPolygon(rasterPoints(pts))
		case width > 0:
			r.Polyline(rasterPoints(pts), true, width)
		}
	})
}

// DrawRect draws rect as a polygon through its four corner pixels, filled
// when width is 0.
func (s *Surface) DrawRect(c Color, rect Rect, width int) Rect {
	rect = rect.Normalize()
	if rect.Empty() {
		return Rect{X: rect.X, Y: rect.Y}
	}
	pts := []Point{
		{rect.X, rect.Y},
		{rect.Right() - 1, rect.Y},
		{rect.Right() - 1, rect.Bottom() - 1},
		{rect.X, rect.Bottom() - 1},
	}
	return s.polygon(c, pts, width)
}

// DrawCircle draws a circle around center. A width of 0, or one at least
// as large as the radius, fills it; otherwise a ring of that thickness is
// drawn inside the radius.
func (s *Surface) DrawCircle(c Color, center Point, radius, width int) Rect {
	return s.draw(c, center, func(r *raster.Rasterizer) {
		r.Circle(center.X, center.Y, radius, width)
	})
}

// DrawEllipse draws the ellipse inscribed in rect, filled when width is 0.
func (s *Surface) DrawEllipse(c Color, rect Rect, width int) Rect {
	rect = rect.Normalize()
	return s.draw(c, rect.TopLeft(), func(r *raster.Rasterizer) {
		r.Ellipse(rect.X, rect.Y, rect.W, rect.H, width)
	})
}

// ParsePoints converts loosely typed coordinate pairs into points. It
// accepts Point, [2]int, [2]float64 and two element []int, []float64 and
// []any of numbers; floats are truncated. A malformed first entry is an
// error; later malformed entries are skipped.
func ParsePoints(values []any) ([]Point, error) {
	pts := make([]Point, 0, len(values))
	for i, v := range values {
		p, ok := toPoint(v)
		if !ok {
			if i == 0 {
				return nil, fmt.Errorf("%w: first point %v is not a coordinate pair", ErrInvalidArgument, v)
			}
			Logger().Debug("pixsurf: skipping malformed point", slog.Int("index", i))
			continue
		}
		pts = append(pts, p)
	}
	return pts, nil
}

func toPoint(v any) (Point, bool) {
	switch p := v.(type) {
	case Point:
		return p, true
	case [2]int:
		return Point{p[0], p[1]}, true
	case [2]float64:
		return Point{int(p[0]), int(p[1])}, true
	case []int:
		if len(p) == 2 {
			return Point{p[0], p[1]}, true
		}
	case []float64:
		if len(p) == 2 {
			return Point{int(p[0]), int(p[1])}, true
		}
	case []any:
		if len(p) == 2 {
			x, okx := toCoord(p[0])
			y, oky := toCoord(p[1])
			return Point{x, y}, okx && oky
		}
	}
	return Point{}, false
}

func toCoord(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
