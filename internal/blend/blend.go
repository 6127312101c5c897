// Package blend implements the per-channel 8-bit compositing used by blits
// and fills.
//
// Colors are straight (non-premultiplied) RGBA bytes unless a mode says
// otherwise. Every function saturates its results to 0..255.
package blend

// Mode selects how a source pixel is combined with the destination.
type Mode uint8

const (
	// ModeCopy replaces the destination with the source.
	ModeCopy Mode = iota
	// ModeOver composites a straight-alpha source over the destination.
	ModeOver

	// RGB modes leave the destination alpha untouched.
	ModeAdd  // d + s
	ModeSub  // d - s
	ModeMult // d * s
	ModeMin  // min(d, s)
	ModeMax  // max(d, s)

	// RGBA modes apply the same operation to alpha.
	ModeRGBAAdd
	ModeRGBASub
	ModeRGBAMult
	ModeRGBAMin
	ModeRGBAMax

	// ModePremultiplied composites a premultiplied source:
	// d = s + d*(1-sa).
	ModePremultiplied
)

var modeNames = [...]string{
	ModeCopy:          "Copy",
	ModeOver:          "Over",
	ModeAdd:           "Add",
	ModeSub:           "Sub",
	ModeMult:          "Mult",
	ModeMin:           "Min",
	ModeMax:           "Max",
	ModeRGBAAdd:       "RGBAAdd",
	ModeRGBASub:       "RGBASub",
	ModeRGBAMult:      "RGBAMult",
	ModeRGBAMin:       "RGBAMin",
	ModeRGBAMax:       "RGBAMax",
	ModePremultiplied: "Premultiplied",
}

// String returns the mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Unknown"
}

// Special reports whether m is one of the arithmetic modes.
func (m Mode) Special() bool {
	return m >= ModeAdd && m <= ModeRGBAMax
}

// Func combines source and destination channels into the new destination.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the function for mode. Unknown modes copy.
func GetFunc(mode Mode) Func {
	switch mode {
	case ModeOver:
		return Over
	case ModeAdd:
		return rgbOp(addClamp)
	case ModeSub:
		return rgbOp(subClamp)
	case ModeMult:
		return rgbOp(mult8)
	case ModeMin:
		return rgbOp(minByte)
	case ModeMax:
		return rgbOp(maxByte)
	case ModeRGBAAdd:
		return rgbaOp(addClamp)
	case ModeRGBASub:
		return rgbaOp(subClamp)
	case ModeRGBAMult:
		return rgbaOp(mult8)
	case ModeRGBAMin:
		return rgbaOp(minByte)
	case ModeRGBAMax:
		return rgbaOp(maxByte)
	case ModePremultiplied:
		return Premultiplied
	default:
		return Copy
	}
}

// Copy returns the source unchanged.
func Copy(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// Over composites a straight-alpha source over the destination. A fully
// transparent destination takes the source as is.
func Over(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	if da == 0 {
		return sr, sg, sb, sa
	}
	switch sa {
	case 0:
		return dr, dg, db, da
	case 255:
		return sr, sg, sb, 255
	}
	a := uint32(sa) + uint32(da) - div255(uint32(sa)*uint32(da))
	return over(sr, dr, sa), over(sg, dg, sa), over(sb, db, sa), byte(a)
}

// Premultiplied composites a premultiplied source over the destination.
func Premultiplied(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

func rgbOp(op func(d, s byte) byte) Func {
	return func(sr, sg, sb, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
		return op(dr, sr), op(dg, sg), op(db, sb), da
	}
}

func rgbaOp(op func(d, s byte) byte) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		return op(dr, sr), op(dg, sg), op(db, sb), op(da, sa)
	}
}

// Premultiply scales the color channels by alpha.
func Premultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	return mulDiv255(r, a), mulDiv255(g, a), mulDiv255(b, a), a
}
