package blend

// div255 divides x by 255 exactly for every x in 0..255*255 without using
// division. Formula: ((x + 1) + ((x + 1) >> 8)) >> 8 (Alvy Ray Smith).
func div255(x uint32) uint32 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns a*b/255 rounded down.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// Scale multiplies v by the fraction f/255.
func Scale(v, f byte) byte {
	return mulDiv255(v, f)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// subClamp subtracts b from a, clamping to 0.
func subClamp(a, b byte) byte {
	if b >= a {
		return 0
	}
	return a - b
}

// mult8 is the channel product used by the multiply modes:
// (a*b + 255) >> 8, which keeps 255*255 at 255 and 0*x at 0.
func mult8(a, b byte) byte {
	return byte((uint32(a)*uint32(b) + 255) >> 8)
}

// over blends one straight-alpha channel d toward s by weight a.
func over(s, d, a byte) byte {
	si, di := int32(s), int32(d)
	return byte(di + ((si-di)*int32(a)+si)>>8)
}

// Lerp mixes s into d with weight w in 0..255, rounding to nearest.
func Lerp(s, d, w byte) byte {
	si, di := int32(s), int32(d)
	v := di*255 + (si-di)*int32(w)
	return byte((v + 127) / 255)
}

func minByte(a, b byte) byte { return min(a, b) }

func maxByte(a, b byte) byte { return max(a, b) }
