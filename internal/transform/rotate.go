package transform

import (
	"math"

	"github.com/gogpu/pixsurf/internal/image"
)

// RotateSize returns the size of the box that holds a w x h buffer
// rotated by angle degrees: the largest projected extent of the rotated
// corners, truncated.
func RotateSize(w, h int, angle float64) (int, int) {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	cx, cy := cos*float64(w), cos*float64(h)
	sx, sy := sin*float64(w), sin*float64(h)

	nw := max(math.Abs(cx+sy), math.Abs(cx-sy), math.Abs(-cx+sy), math.Abs(-cx-sy))
	nh := max(math.Abs(sx+cy), math.Abs(sx-cy), math.Abs(-sx+cy), math.Abs(-sx-cy))
	return int(nw), int(nh)
}

// Rotate rotates src counter-clockwise by angle degrees into dst, which
// must have the size reported by RotateSize. Each destination pixel is
// mapped back into the source with 16.16 fixed point steps; pixels that
// land outside the source get bg.
//
// Callers with angles that are multiples of 90 should use Rotate90.
func Rotate(dst, src *image.Buf, angle float64, bg uint32) error {
	if err := checkDepth(dst, src); err != nil {
		return err
	}
	dw, dh := RotateSize(src.Width(), src.Height(), angle)
	if err := checkSize(dst, dw, dh); err != nil {
		return err
	}

	sin, cos := math.Sincos(angle * math.Pi / 180)
	sw, sh := src.Width(), src.Height()

	isin := int(sin * 65536)
	icos := int(cos * 65536)
	xd := (sw - dw) << 15
	yd := (sh - dh) << 15
	ax := dw<<15 - int(cos*float64((dw-1)<<15))
	ay := dh<<15 - int(sin*float64((dw-1)<<15))
	xmax := sw<<16 - 1
	ymax := sh<<16 - 1
	cy := dh / 2

	for y := range dh {
		dx := ax + isin*(cy-y) + xd
		dy := ay - icos*(cy-y) + yd
		for x := range dw {
			if dx < 0 || dy < 0 || dx > xmax || dy > ymax {
				dst.Put(x, y, bg)
			} else {
				dst.Put(x, y, src.At(dx>>16, dy>>16))
			}
			dx += icos
			dy += isin
		}
	}
	return nil
}
