package pixsurf

import (
	"fmt"
	"math/bits"
	"slices"

	"github.com/gogpu/pixsurf/internal/image"
)

// PixelFormat describes how colors are packed into pixel values.
//
// Each channel occupies the bits of its mask. Shift is the position of the
// mask's lowest bit and loss is the number of bits dropped from the 8-bit
// channel value. Formats with 8 bits and no masks are indexed and carry a
// Palette. A PixelFormat is immutable once created, except for the
// entries of its palette.
type PixelFormat struct {
	bits  int
	bytes int
	masks [4]uint32
	shift [4]uint8
	loss  [4]uint8
	pal   *Palette
}

// Predefined formats.
var (
	FormatIndex8   = mustFormat(8, 0, 0, 0, 0)
	FormatRGB332   = mustFormat(8, 0xe0, 0x1c, 0x03, 0)
	FormatRGB555   = mustFormat(15, 0x7c00, 0x03e0, 0x001f, 0)
	FormatRGB565   = mustFormat(16, 0xf800, 0x07e0, 0x001f, 0)
	FormatARGB4444 = mustFormat(16, 0x0f00, 0x00f0, 0x000f, 0xf000)
	FormatRGB888   = mustFormat(24, 0xff0000, 0x00ff00, 0x0000ff, 0)
	FormatXRGB8888 = mustFormat(32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0)
	FormatARGB8888 = mustFormat(32, 0x00ff0000, 0x0000ff00, 0x000000ff, 0xff000000)
	FormatABGR8888 = mustFormat(32, 0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000)
)

func mustFormat(bpp int, r, g, b, a uint32) *PixelFormat {
	f, err := NewPixelFormat(bpp, r, g, b, a)
	if err != nil {
		panic(err)
	}
	return f
}

// NewPixelFormat creates a format from a bit depth (8, 15, 16, 24 or 32)
// and channel masks. Masks must not overlap and must fit in the depth.
// An 8-bit format without masks is indexed and gets a fresh default
// palette with 3 bits of red, 3 of green and 2 of blue.
func NewPixelFormat(bpp int, rmask, gmask, bmask, amask uint32) (*PixelFormat, error) {
	var bytes int
	switch bpp {
	case 8:
		bytes = 1
	case 15, 16:
		bytes = 2
	case 24:
		bytes = 3
	case 32:
		bytes = 4
	default:
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, bpp)
	}

	f := &PixelFormat{bits: bpp, bytes: bytes, masks: [4]uint32{rmask, gmask, bmask, amask}}

	var seen uint32
	for i, m := range f.masks {
		if m&seen != 0 {
			return nil, fmt.Errorf("%w: overlapping channel masks %#x", ErrUnsupportedFormat, m&seen)
		}
		if bpp < 32 && m>>uint(bpp) != 0 {
			return nil, fmt.Errorf("%w: mask %#x exceeds %d bits", ErrUnsupportedFormat, m, bpp)
		}
		seen |= m
		if m == 0 {
			f.loss[i] = 8
			continue
		}
		n := bits.OnesCount32(m)
		if n > 8 {
			return nil, fmt.Errorf("%w: mask %#x wider than 8 bits", ErrUnsupportedFormat, m)
		}
		f.shift[i] = uint8(bits.TrailingZeros32(m))
		f.loss[i] = uint8(8 - n)
	}

	if bpp == 8 && seen == 0 {
		f.pal = DefaultPalette()
	}
	return f, nil
}

// DefaultFormat returns the usual format for a bit depth: indexed for 8,
// RGB555 for 15, RGB565 for 16, RGB888 for 24 and XRGB8888 for 32.
func DefaultFormat(bpp int) (*PixelFormat, error) {
	switch bpp {
	case 8:
		return NewPixelFormat(8, 0, 0, 0, 0)
	case 15:
		return FormatRGB555, nil
	case 16:
		return FormatRGB565, nil
	case 24:
		return FormatRGB888, nil
	case 32:
		return FormatXRGB8888, nil
	}
	return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, bpp)
}

// BitsPerPixel returns the bit depth.
func (f *PixelFormat) BitsPerPixel() int { return f.bits }

// BytesPerPixel returns the storage size of one pixel.
func (f *PixelFormat) BytesPerPixel() int { return f.bytes }

// Masks returns the red, green, blue and alpha masks.
func (f *PixelFormat) Masks() (r, g, b, a uint32) {
	return f.masks[0], f.masks[1], f.masks[2], f.masks[3]
}

// Shifts returns the bit position of each channel.
func (f *PixelFormat) Shifts() (r, g, b, a uint8) {
	return f.shift[0], f.shift[1], f.shift[2], f.shift[3]
}

// Losses returns the number of bits each channel drops.
func (f *PixelFormat) Losses() (r, g, b, a uint8) {
	return f.loss[0], f.loss[1], f.loss[2], f.loss[3]
}

// Palette returns the palette of an indexed format, or nil.
func (f *PixelFormat) Palette() *Palette { return f.pal }

// Indexed reports whether pixels are palette indices.
func (f *PixelFormat) Indexed() bool { return f.pal != nil }

// HasAlpha reports whether the format stores per-pixel alpha.
func (f *PixelFormat) HasAlpha() bool { return f.masks[3] != 0 }

// Equal reports whether f and o pack colors identically. Indexed formats
// also need palettes with the same entries.
func (f *PixelFormat) Equal(o *PixelFormat) bool {
	if f == o {
		return true
	}
	if f == nil || o == nil || f.bits != o.bits || f.masks != o.masks {
		return false
	}
	if f.pal == o.pal {
		return true
	}
	if f.pal == nil || o.pal == nil {
		return false
	}
	return slices.Equal(f.pal.Colors(), o.pal.Colors())
}

// own returns f for direct-color formats and a copy with a private
// palette for indexed ones, so that surfaces never share palette entries.
func (f *PixelFormat) own() *PixelFormat {
	if f.pal == nil {
		return f
	}
	c := *f
	c.pal = &Palette{colors: f.pal.Colors()}
	return &c
}

func (f *PixelFormat) String() string {
	if f.Indexed() {
		return fmt.Sprintf("Index%d", f.bits)
	}
	return fmt.Sprintf("%dbpp(R=%#x G=%#x B=%#x A=%#x)", f.bits, f.masks[0], f.masks[1], f.masks[2], f.masks[3])
}

// codec returns the storage strategy for the format's pixel size.
func (f *PixelFormat) codec() image.Codec {
	c, _ := image.CodecFor(f.bytes)
	return c
}

// Map packs c into a pixel value. Indexed formats return the nearest
// palette entry. Channels without a mask are dropped.
func (f *PixelFormat) Map(c Color) uint32 {
	if f.pal != nil {
		return uint32(f.pal.Nearest(c))
	}
	ch := [4]uint8{c.R, c.G, c.B, c.A}
	var v uint32
	for i, m := range f.masks {
		if m == 0 {
			continue
		}
		v |= uint32(ch[i]>>f.loss[i]) << f.shift[i] & m
	}
	return v
}

// Unmap expands a pixel value into a Color. Channels are widened to 8 bits
// by repeating their bits, so the maximum value of every channel maps to
// 255. Formats without alpha give opaque colors.
func (f *PixelFormat) Unmap(v uint32) Color {
	if f.pal != nil {
		c, ok := f.pal.at(int(v))
		if !ok {
			return ColorBlack
		}
		return c
	}
	var ch [4]uint8
	for i, m := range f.masks {
		if m == 0 {
			ch[i] = 0
			continue
		}
		ch[i] = expand((v&m)>>f.shift[i], 8-f.loss[i])
	}
	if f.masks[3] == 0 {
		ch[3] = 255
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
}

// expand widens an n-bit value to 8 bits by bit replication.
func expand(v uint32, n uint8) uint8 {
	if n >= 8 {
		return uint8(v)
	}
	out := v << (8 - n)
	for k := n; k < 8; k *= 2 {
		out |= out >> k
	}
	return uint8(out)
}
