package pixsurf

import (
	"fmt"

	"github.com/gogpu/pixsurf/internal/blend"
	"github.com/gogpu/pixsurf/internal/image"
)

// BlendFlags selects how Blit and Fill combine source and destination.
type BlendFlags uint8

const (
	// BlendNone copies, skipping colorkeyed pixels and compositing sources
	// with per-pixel or surface alpha over the destination.
	BlendNone BlendFlags = iota

	// RGB arithmetic; the destination alpha is kept.
	BlendAdd
	BlendSub
	BlendMult
	BlendMin
	BlendMax

	// The same arithmetic applied to alpha as well.
	BlendRGBAAdd
	BlendRGBASub
	BlendRGBAMult
	BlendRGBAMin
	BlendRGBAMax

	// BlendPremultiplied composites a source with premultiplied alpha.
	BlendPremultiplied
)

var blendModes = [...]blend.Mode{
	BlendNone:          blend.ModeCopy,
	BlendAdd:           blend.ModeAdd,
	BlendSub:           blend.ModeSub,
	BlendMult:          blend.ModeMult,
	BlendMin:           blend.ModeMin,
	BlendMax:           blend.ModeMax,
	BlendRGBAAdd:       blend.ModeRGBAAdd,
	BlendRGBASub:       blend.ModeRGBASub,
	BlendRGBAMult:      blend.ModeRGBAMult,
	BlendRGBAMin:       blend.ModeRGBAMin,
	BlendRGBAMax:       blend.ModeRGBAMax,
	BlendPremultiplied: blend.ModePremultiplied,
}

// Valid reports whether f is a known flag.
func (f BlendFlags) Valid() bool {
	return int(f) < len(blendModes)
}

// String returns the flag name.
func (f BlendFlags) String() string {
	switch {
	case f == BlendNone:
		return "None"
	case f.Valid():
		return f.mode().String()
	}
	return fmt.Sprintf("BlendFlags(%d)", uint8(f))
}

func (f BlendFlags) mode() blend.Mode {
	return blendModes[f]
}

// Blit draws src onto s with its top-left corner at dest. When area is
// non-nil only that part of src is drawn. The source rectangle is first
// clipped to src, then the destination to the clip rectangle of s. The
// changed area of s is returned; when nothing is drawn it is an empty
// Rect at dest.
//
// Pixels are converted between formats as needed. With BlendNone source
// pixels equal to the colorkey are skipped, and sources with per-pixel
// alpha or a surface alpha are composited over the destination. Other
// flags apply their arithmetic to every source pixel that is not
// colorkeyed. Blitting between overlapping parts of one surface is safe.
func (s *Surface) Blit(src *Surface, dest Point, area *Rect, flags BlendFlags) (Rect, error) {
	if src == nil {
		return Rect{}, fmt.Errorf("%w: nil source surface", ErrInvalidArgument)
	}
	if !flags.Valid() {
		return Rect{}, fmt.Errorf("%w: blend flags %d", ErrInvalidArgument, flags)
	}
	defer acquirePair(s, src)()

	sr, dr, ok := s.clipBlit(src, dest, area)
	if !ok {
		return Rect{X: dest.X, Y: dest.Y}, nil
	}

	sb, err := src.buf.Sub(sr.X, sr.Y, sr.W, sr.H)
	if err != nil {
		return Rect{}, fmt.Errorf("pixsurf: blit: %w", err)
	}
	db, err := s.buf.Sub(dr.X, dr.Y, dr.W, dr.H)
	if err != nil {
		return Rect{}, fmt.Errorf("pixsurf: blit: %w", err)
	}
	if flags == BlendNone && src.opaque() && src.format.Equal(s.format) {
		db.CopyRows(sb)
	} else {
		s.blitPixels(db, sb, src, flags)
	}
	return dr, nil
}

// clipBlit computes the source and destination rectangles of a blit.
func (s *Surface) clipBlit(src *Surface, dest Point, area *Rect) (Rect, Rect, bool) {
	sr := src.Bounds()
	if area != nil {
		sr = area.Normalize()
	}

	// Clip the source to its surface, moving dest along.
	if sr.X < 0 {
		dest.X -= sr.X
		sr.W += sr.X
		sr.X = 0
	}
	if sr.Y < 0 {
		dest.Y -= sr.Y
		sr.H += sr.Y
		sr.Y = 0
	}
	sr.W = min(sr.W, src.Width()-sr.X)
	sr.H = min(sr.H, src.Height()-sr.Y)
	if sr.W <= 0 || sr.H <= 0 {
		return Rect{}, Rect{}, false
	}

	dr := fromClip(s.clipRect().Intersect(toClip(Rect{X: dest.X, Y: dest.Y, W: sr.W, H: sr.H})))
	if dr.Empty() {
		return Rect{}, Rect{}, false
	}
	sr.X += dr.X - dest.X
	sr.Y += dr.Y - dest.Y
	sr.W, sr.H = dr.W, dr.H
	return sr, dr, true
}

// opaque reports whether every source pixel replaces its destination.
func (s *Surface) opaque() bool {
	return !s.hasColorKey && !s.format.HasAlpha() && (!s.hasAlpha || s.alpha == 255)
}

// blitPixels combines sb into db one pixel at a time. Both views have the
// same size.
func (s *Surface) blitPixels(db, sb *image.Buf, src *Surface, flags BlendFlags) {
	sf, df := src.format, s.format
	_, _, _, amask := sf.Masks()
	key := src.colorKey &^ amask

	var op blend.Func
	switch {
	case flags != BlendNone:
		op = blend.GetFunc(flags.mode())
	case sf.HasAlpha() || src.hasAlpha:
		op = blend.Over
	default:
		op = blend.Copy
	}
	modulate := src.hasAlpha && src.alpha != 255 && !flags.mode().Special()

	pixel := func(x, y int) {
		v := sb.At(x, y)
		if src.hasColorKey && v&^amask == key {
			return
		}
		c := sf.Unmap(v)
		if modulate {
			c.A = blend.Scale(c.A, src.alpha)
		}
		d := df.Unmap(db.At(x, y))
		r, g, b, a := op(c.R, c.G, c.B, c.A, d.R, d.G, d.B, d.A)
		db.Put(x, y, df.Map(Color{R: r, G: g, B: b, A: a}))
	}

	w, h := db.Width(), db.Height()
	if db.SharesMemory(sb) && db.Offset() > sb.Offset() {
		for y := h - 1; y >= 0; y-- {
			for x := w - 1; x >= 0; x-- {
				pixel(x, y)
			}
		}
		return
	}
	for y := range h {
		for x := range w {
			pixel(x, y)
		}
	}
}

// BlitItem is one entry of a Blits batch.
type BlitItem struct {
	Source *Surface
	Dest   Point
	Area   *Rect
	Flags  BlendFlags
}

// Blits performs a sequence of blits onto s and returns the changed area
// of each. It stops at the first failing blit.
func (s *Surface) Blits(items []BlitItem) ([]Rect, error) {
	rects := make([]Rect, 0, len(items))
	for i, it := range items {
		r, err := s.Blit(it.Source, it.Dest, it.Area, it.Flags)
		if err != nil {
			return rects, fmt.Errorf("blit %d: %w", i, err)
		}
		rects = append(rects, r)
	}
	return rects, nil
}
