// Package transform implements geometric operations on pixel buffers:
// mirroring, rotation, nearest and smooth scaling, Scale2x and chopping.
//
// Functions write into a caller-supplied destination buffer whose size
// the caller obtains from the matching *Size helper. Source and
// destination must not share memory unless a function says otherwise.
package transform

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixsurf/internal/image"
)

var (
	// ErrSizeMismatch is returned when the destination has the wrong size.
	ErrSizeMismatch = errors.New("transform: destination size mismatch")

	// ErrDepthMismatch is returned when source and destination pixels differ in size.
	ErrDepthMismatch = errors.New("transform: pixel size mismatch")

	// ErrUnsupportedDepth is returned for pixel sizes an operation cannot handle.
	ErrUnsupportedDepth = errors.New("transform: unsupported pixel size")
)

func checkDepth(dst, src *image.Buf) error {
	if dst.BytesPerPixel() != src.BytesPerPixel() {
		return fmt.Errorf("%w: %d and %d bytes", ErrDepthMismatch, dst.BytesPerPixel(), src.BytesPerPixel())
	}
	return nil
}

func checkSize(dst *image.Buf, w, h int) error {
	if dst.Width() != w || dst.Height() != h {
		return fmt.Errorf("%w: have %dx%d, want %dx%d", ErrSizeMismatch, dst.Width(), dst.Height(), w, h)
	}
	return nil
}

// Flip mirrors src into dst, which must have the same size. xflip reverses
// the columns, yflip the rows.
func Flip(dst, src *image.Buf, xflip, yflip bool) error {
	if err := checkDepth(dst, src); err != nil {
		return err
	}
	if err := checkSize(dst, src.Width(), src.Height()); err != nil {
		return err
	}

	w, h := src.Width(), src.Height()
	bpp := src.BytesPerPixel()
	for y := range h {
		sy := y
		if yflip {
			sy = h - 1 - y
		}
		srow := src.RowBytes(sy)
		drow := dst.RowBytes(y)
		if !xflip {
			copy(drow, srow)
			continue
		}
		for x := range w {
			sx := (w - 1 - x) * bpp
			copy(drow[x*bpp:x*bpp+bpp], srow[sx:sx+bpp])
		}
	}
	return nil
}

// Rotate90Size returns the size of a w x h buffer after the given number
// of quarter turns.
func Rotate90Size(w, h, turns int) (int, int) {
	if normTurns(turns)%2 == 1 {
		return h, w
	}
	return w, h
}

func normTurns(turns int) int {
	turns %= 4
	if turns < 0 {
		turns += 4
	}
	return turns
}

// Rotate90 rotates src counter-clockwise by turns quarter turns into dst.
// Negative turns rotate clockwise. No resampling takes place.
func Rotate90(dst, src *image.Buf, turns int) error {
	if err := checkDepth(dst, src); err != nil {
		return err
	}
	turns = normTurns(turns)
	w, h := src.Width(), src.Height()
	dw, dh := Rotate90Size(w, h, turns)
	if err := checkSize(dst, dw, dh); err != nil {
		return err
	}

	switch turns {
	case 0:
		dst.CopyRows(src)
	case 1:
		for dy := range dh {
			for dx := range dw {
				dst.Put(dx, dy, src.At(w-1-dy, dx))
			}
		}
	case 2:
		for dy := range dh {
			for dx := range dw {
				dst.Put(dx, dy, src.At(w-1-dx, h-1-dy))
			}
		}
	case 3:
		for dy := range dh {
			for dx := range dw {
				dst.Put(dx, dy, src.At(dy, h-1-dx))
			}
		}
	}
	return nil
}

// Chop removes the band of rows y..y+h-1 and the band of columns
// x..x+w-1 from src. The remaining pixels are packed towards the top-left
// corner of dst, which has the source's size; the vacated right and
// bottom strips are cleared to zero. The band is clamped to the source.
func Chop(dst, src *image.Buf, x, y, w, h int) error {
	if err := checkDepth(dst, src); err != nil {
		return err
	}
	sw, sh := src.Width(), src.Height()
	if err := checkSize(dst, sw, sh); err != nil {
		return err
	}

	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	x, y = min(x, sw), min(y, sh)
	w = max(0, min(w, sw-x))
	h = max(0, min(h, sh-y))

	dst.Clear()
	bpp := src.BytesPerPixel()
	dy := 0
	for sy := range sh {
		if sy >= y && sy < y+h {
			continue
		}
		srow := src.RowBytes(sy)
		drow := dst.RowBytes(dy)
		n := copy(drow, srow[:x*bpp])
		copy(drow[n:], srow[(x+w)*bpp:])
		dy++
	}
	return nil
}
