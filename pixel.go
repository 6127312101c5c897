package pixsurf

import (
	"fmt"

	"github.com/gogpu/pixsurf/internal/blend"
)

// MapRGBA packs c in the surface's format.
func (s *Surface) MapRGBA(c Color) uint32 {
	return s.format.Map(c)
}

// UnmapRGBA expands a pixel value of the surface's format.
func (s *Surface) UnmapRGBA(v uint32) Color {
	return s.format.Unmap(v)
}

func (s *Surface) checkPoint(x, y int) error {
	if !s.buf.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, s.Width(), s.Height())
	}
	return nil
}

// At returns the color of pixel (x, y).
func (s *Surface) At(x, y int) (Color, error) {
	defer s.acquire()()
	if err := s.checkPoint(x, y); err != nil {
		return Color{}, err
	}
	return s.format.Unmap(s.buf.At(x, y)), nil
}

// AtMapped returns the raw pixel value at (x, y).
func (s *Surface) AtMapped(x, y int) (uint32, error) {
	defer s.acquire()()
	if err := s.checkPoint(x, y); err != nil {
		return 0, err
	}
	return s.buf.At(x, y), nil
}

// Set stores c at (x, y). Points inside the surface but outside the clip
// rectangle are left unchanged.
func (s *Surface) Set(x, y int, c Color) error {
	return s.SetMapped(x, y, s.format.Map(c))
}

// SetMapped stores a raw pixel value at (x, y), honouring the clip
// rectangle like Set.
func (s *Surface) SetMapped(x, y int, v uint32) error {
	defer s.acquire()()
	if err := s.checkPoint(x, y); err != nil {
		return err
	}
	if s.clipRect().Contains(x, y) {
		s.buf.Put(x, y, v)
	}
	return nil
}

// Fill fills r, or the whole surface when r is nil, with c. Only the
// part inside the clip rectangle changes, and that part is returned.
// With BlendNone the pixels are replaced; other flags combine c with the
// existing pixels.
func (s *Surface) Fill(c Color, r *Rect, flags BlendFlags) (Rect, error) {
	if !flags.Valid() {
		return Rect{}, fmt.Errorf("%w: blend flags %d", ErrInvalidArgument, flags)
	}
	defer s.acquire()()

	area := s.Bounds()
	if r != nil {
		area = r.Normalize()
	}
	area = fromClip(s.clipRect().Intersect(toClip(area)))
	if area.Empty() {
		return area, nil
	}

	if flags == BlendNone {
		s.buf.FillRect(area.X, area.Y, area.W, area.H, s.format.Map(c))
		return area, nil
	}

	op := blend.GetFunc(flags.mode())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			d := s.format.Unmap(s.buf.At(x, y))
			r, g, b, a := op(c.R, c.G, c.B, c.A, d.R, d.G, d.B, d.A)
			s.buf.Put(x, y, s.format.Map(Color{R: r, G: g, B: b, A: a}))
		}
	}
	return area, nil
}

// Scroll moves the contents of the clip rectangle by (dx, dy) pixels.
// Areas uncovered by the move keep their previous pixels.
func (s *Surface) Scroll(dx, dy int) {
	defer s.acquire()()

	c := s.clipRect()
	w, h := c.W-abs(dx), c.H-abs(dy)
	if w <= 0 || h <= 0 || (dx == 0 && dy == 0) {
		return
	}
	src, err := s.buf.Sub(c.X+max(-dx, 0), c.Y+max(-dy, 0), w, h)
	if err != nil {
		return
	}
	dst, err := s.buf.Sub(c.X+max(dx, 0), c.Y+max(dy, 0), w, h)
	if err != nil {
		return
	}
	dst.CopyRows(src)
}

// BoundingRect returns the smallest rectangle containing every visible
// pixel. For formats with alpha a pixel is visible when its alpha is at
// least minAlpha; otherwise, with a colorkey set, when it differs from
// the colorkey. Surfaces with neither report their full size. A surface
// without visible pixels gives an empty Rect at the origin.
func (s *Surface) BoundingRect(minAlpha uint8) Rect {
	defer s.acquire()()

	visible := func(x, y int) bool { return true }
	switch {
	case s.format.HasAlpha():
		visible = func(x, y int) bool {
			return s.format.Unmap(s.buf.At(x, y)).A >= minAlpha
		}
	case s.hasColorKey:
		visible = func(x, y int) bool {
			return s.buf.At(x, y) != s.colorKey
		}
	default:
		return s.Bounds()
	}

	minX, minY, maxX, maxY := s.Width(), s.Height(), -1, -1
	for y := range s.Height() {
		for x := range s.Width() {
			if visible(x, y) {
				minX, maxX = min(minX, x), max(maxX, x)
				minY, maxY = min(minY, y), max(maxY, y)
			}
		}
	}
	if maxX < 0 {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// PremulAlpha returns a copy of s with every color channel multiplied by
// the pixel's alpha. The surface must be 32-bit with per-pixel alpha.
func (s *Surface) PremulAlpha() (*Surface, error) {
	defer s.acquire()()
	if s.format.BitsPerPixel() != 32 || !s.format.HasAlpha() {
		return nil, fmt.Errorf("%w: premultiplying needs 32-bit alpha, have %v", ErrUnsupportedFormat, s.format)
	}
	d, err := s.newLike(s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	for y := range s.Height() {
		for x := range s.Width() {
			c := s.format.Unmap(s.buf.At(x, y))
			r, g, b, a := blend.Premultiply(c.R, c.G, c.B, c.A)
			d.buf.Put(x, y, s.format.Map(Color{R: r, G: g, B: b, A: a}))
		}
	}
	return d, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
