package image

import "math"

// SampleBilinear blends the four pixels whose centres surround (x, y).
// Neighbours outside the buffer are clamped to the edge.
func SampleBilinear(b *Buf, x, y float64) (uint32, bool) {
	if x < 0 || y < 0 || x >= float64(b.width) || y >= float64(b.height) {
		return 0, false
	}

	fx := x - 0.5
	fy := y - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := min(x0+1, b.width-1)
	y1 := min(y0+1, b.height-1)
	x0 = max(x0, 0)
	y0 = max(y0, 0)

	p00 := b.At(x0, y0)
	p10 := b.At(x1, y0)
	p01 := b.At(x0, y1)
	p11 := b.At(x1, y1)

	var out uint32
	for shift := 0; shift < 8*b.codec.Size(); shift += 8 {
		c00 := float64(p00 >> shift & 0xff)
		c10 := float64(p10 >> shift & 0xff)
		c01 := float64(p01 >> shift & 0xff)
		c11 := float64(p11 >> shift & 0xff)

		top := c00 + (c10-c00)*tx
		bot := c01 + (c11-c01)*tx
		v := top + (bot-top)*ty
		out |= uint32(clampByte(v+0.5)) << shift
	}
	return out, true
}

// clampByte clamps v to [0, 255] and truncates.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
