package transform

import (
	"fmt"

	"github.com/gogpu/pixsurf/internal/image"
)

// SmoothScale resizes src to the size of dst, filtering each byte channel
// separately. Shrinking averages the covered source pixels (box filter
// with fractional edges); growing interpolates linearly between
// neighbours. Width is processed first, then height. Unchanged sizes copy.
//
// Only 3 and 4 byte pixels are supported; 3 byte pixels are widened into
// 4 byte scratch buffers for the duration of the call.
func SmoothScale(dst, src *image.Buf) error {
	if err := checkDepth(dst, src); err != nil {
		return err
	}
	bpp := src.BytesPerPixel()
	if bpp != 3 && bpp != 4 {
		return fmt.Errorf("%w: smooth scaling needs 3 or 4 bytes per pixel, have %d", ErrUnsupportedDepth, bpp)
	}
	if dst.IsEmpty() {
		return nil
	}
	if src.IsEmpty() {
		dst.Clear()
		return nil
	}
	if dst.Width() == src.Width() && dst.Height() == src.Height() {
		dst.CopyRows(src)
		return nil
	}

	if bpp == 3 {
		s32 := image.GetScratch(src.Width(), src.Height(), image.Depth32)
		defer image.PutScratch(s32)
		d32 := image.GetScratch(dst.Width(), dst.Height(), image.Depth32)
		defer image.PutScratch(d32)

		widen(s32, src)
		scale32(d32, s32)
		narrow(dst, d32)
		return nil
	}
	scale32(dst, src)
	return nil
}

func scale32(dst, src *image.Buf) {
	sw, sh := src.Width(), src.Height()
	dw, dh := dst.Width(), dst.Height()

	// The X pass writes straight into dst when the height is unchanged and
	// the Y pass reads straight from src when the width is unchanged.
	mid := dst
	if sw != dw && sh != dh {
		mid = image.GetScratch(dw, sh, image.Depth32)
		defer image.PutScratch(mid)
	} else if sw == dw {
		mid = src
	}

	switch {
	case dw < sw:
		shrinkX(mid, src)
	case dw > sw:
		expandX(mid, src)
	}
	switch {
	case dh < sh:
		shrinkY(dst, mid)
	case dh > sh:
		expandY(dst, mid)
	}
}

// shrinkX box-filters each row of src into the narrower mid.
func shrinkX(dst, src *image.Buf) {
	sw, dw := src.Width(), dst.Width()
	xspace := uint64(0x10000 * sw / dw)
	xrecip := uint64(0x100000000) / xspace

	for y := range src.Height() {
		s := src.RowBytes(y)
		d := dst.RowBytes(y)
		var acc [4]uint64
		counter := xspace
		di := 0
		for x := range sw {
			p := s[x*4 : x*4+4]
			if counter > 0x10000 {
				for c := range 4 {
					acc[c] += uint64(p[c])
				}
				counter -= 0x10000
				continue
			}
			frac := 0x10000 - counter
			if di < dw {
				for c := range 4 {
					d[di*4+c] = byte(min(255, ((acc[c]+(uint64(p[c])*counter)>>16)*xrecip)>>16))
				}
				di++
			}
			for c := range 4 {
				acc[c] = (uint64(p[c]) * frac) >> 16
			}
			counter = xspace - frac
		}
	}
}

// shrinkY box-filters each column of src into the shorter dst.
func shrinkY(dst, src *image.Buf) {
	sh, dh := src.Height(), dst.Height()
	yspace := uint64(0x10000 * sh / dh)
	yrecip := uint64(0x100000000) / yspace
	n := src.Width() * 4

	acc := make([]uint64, n)
	counter := yspace
	dy := 0
	for y := range sh {
		s := src.RowBytes(y)
		if counter > 0x10000 {
			for i := range n {
				acc[i] += uint64(s[i])
			}
			counter -= 0x10000
			continue
		}
		frac := 0x10000 - counter
		if dy < dh {
			d := dst.RowBytes(dy)
			for i := range n {
				d[i] = byte(min(255, ((acc[i]+(uint64(s[i])*counter)>>16)*yrecip)>>16))
			}
			dy++
		}
		for i := range n {
			acc[i] = (uint64(s[i]) * frac) >> 16
		}
		counter = yspace - frac
	}
}

// expandX interpolates each row of src into the wider dst.
func expandX(dst, src *image.Buf) {
	sw, dw := src.Width(), dst.Width()
	idx := make([]int, dw)
	mult0 := make([]uint32, dw)
	mult1 := make([]uint32, dw)
	for x := range dw {
		idx[x] = x * (sw - 1) / dw
		mult1[x] = uint32(0x10000 * ((x * (sw - 1)) % dw) / dw)
		mult0[x] = 0x10000 - mult1[x]
	}

	for y := range src.Height() {
		s := src.RowBytes(y)
		d := dst.RowBytes(y)
		for x := range dw {
			i0 := idx[x] * 4
			i1 := min(i0+4, (sw-1)*4)
			for c := range 4 {
				d[x*4+c] = byte((uint32(s[i0+c])*mult0[x] + uint32(s[i1+c])*mult1[x]) >> 16)
			}
		}
	}
}

// expandY interpolates each column of src into the taller dst.
func expandY(dst, src *image.Buf) {
	sh, dh := src.Height(), dst.Height()
	for y := range dh {
		y0 := y * (sh - 1) / dh
		m1 := uint32(0x10000 * ((y * (sh - 1)) % dh) / dh)
		m0 := 0x10000 - m1
		r0 := src.RowBytes(y0)
		r1 := src.RowBytes(min(y0+1, sh-1))
		d := dst.RowBytes(y)
		for i := range d {
			d[i] = byte((uint32(r0[i])*m0 + uint32(r1[i])*m1) >> 16)
		}
	}
}

// widen copies 3 byte pixels into a 4 byte buffer, zeroing the fourth byte.
func widen(dst, src *image.Buf) {
	for y := range src.Height() {
		s := src.RowBytes(y)
		d := dst.RowBytes(y)
		for x := range src.Width() {
			copy(d[x*4:x*4+3], s[x*3:x*3+3])
			d[x*4+3] = 0
		}
	}
}

// narrow drops the fourth byte of every pixel.
func narrow(dst, src *image.Buf) {
	for y := range src.Height() {
		s := src.RowBytes(y)
		d := dst.RowBytes(y)
		for x := range src.Width() {
			copy(d[x*3:x*3+3], s[x*4:x*4+3])
		}
	}
}
