package transform

import "github.com/gogpu/pixsurf/internal/image"

// Stretch resizes src to the size of dst with nearest neighbour sampling.
// Source indices are stepped with an integer error term, so every
// destination pixel copies exactly one source pixel.
func Stretch(dst, src *image.Buf) error {
	if err := checkDepth(dst, src); err != nil {
		return err
	}
	if dst.IsEmpty() {
		return nil
	}
	if src.IsEmpty() {
		dst.Clear()
		return nil
	}

	cols := steps(src.Width(), dst.Width())
	rows := steps(src.Height(), dst.Height())
	bpp := src.BytesPerPixel()

	for dy, sy := range rows {
		srow := src.RowBytes(sy)
		drow := dst.RowBytes(dy)
		for dx, sx := range cols {
			copy(drow[dx*bpp:dx*bpp+bpp], srow[sx*bpp:sx*bpp+bpp])
		}
	}
	return nil
}

// steps maps each of n destination indices onto one of m source indices.
func steps(m, n int) []int {
	idx := make([]int, n)
	m2, n2 := 2*m, 2*n
	err := m2 - n2
	s := 0
	for i := range idx {
		idx[i] = s
		for err >= 0 {
			s++
			err -= n2
		}
		err += m2
	}
	return idx
}
