package transform

import "github.com/gogpu/pixsurf/internal/image"

// Scale2x doubles src into dst with the EPX edge rule. Every source pixel
// E becomes a 2x2 block; a corner of the block copies a neighbour when the
// two neighbours meeting at that corner agree and the opposite pair does
// not, and copies E otherwise. Neighbours past the edge repeat the edge.
//
//	  B        E0 E1
//	D E F  ->  E2 E3
//	  H
func Scale2x(dst, src *image.Buf) error {
	if err := checkDepth(dst, src); err != nil {
		return err
	}
	w, h := src.Width(), src.Height()
	if err := checkSize(dst, 2*w, 2*h); err != nil {
		return err
	}

	for y := range h {
		up := max(y-1, 0)
		down := min(y+1, h-1)
		for x := range w {
			left := max(x-1, 0)
			right := min(x+1, w-1)

			b := src.At(x, up)
			d := src.At(left, y)
			e := src.At(x, y)
			f := src.At(right, y)
			hh := src.At(x, down)

			e0, e1, e2, e3 := e, e, e, e
			if b != hh && d != f {
				if d == b {
					e0 = d
				}
				if b == f {
					e1 = f
				}
				if d == hh {
					e2 = d
				}
				if hh == f {
					e3 = f
				}
			}

			dst.Put(2*x, 2*y, e0)
			dst.Put(2*x+1, 2*y, e1)
			dst.Put(2*x, 2*y+1, e2)
			dst.Put(2*x+1, 2*y+1, e3)
		}
	}
	return nil
}
