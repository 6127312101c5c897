package transform

import (
	"fmt"
	"math"

	"github.com/gogpu/pixsurf/internal/image"
)

// RotoZoomSize returns the size of a w x h buffer rotated by angle degrees
// and scaled by scale. Both sides are rounded up to an even number of at
// least 2 so the result stays centred.
func RotoZoomSize(w, h int, angle, scale float64) (int, int) {
	m := rotoZoomMatrix(angle, scale)
	bw, bh := m.Bounds(float64(w), float64(h))
	return 2 * max(int(math.Ceil(bw/2)), 1), 2 * max(int(math.Ceil(bh/2)), 1)
}

func rotoZoomMatrix(angle, scale float64) image.Affine {
	return image.Rotate(angle * math.Pi / 180).Multiply(image.Scale(scale, scale))
}

// RotoZoom rotates src counter-clockwise by angle degrees and scales it
// by scale around its centre, writing the result into dst (sized by
// RotoZoomSize). Destination pixels are mapped back through the inverse
// transform and sampled bilinearly; pixels that fall outside the source
// get bg. Only 4 byte pixels are supported.
func RotoZoom(dst, src *image.Buf, angle, scale float64, bg uint32) error {
	if err := checkDepth(dst, src); err != nil {
		return err
	}
	if src.BytesPerPixel() != 4 {
		return fmt.Errorf("%w: rotozoom needs 4 bytes per pixel, have %d", ErrUnsupportedDepth, src.BytesPerPixel())
	}

	inv, ok := rotoZoomMatrix(angle, scale).Invert()
	if !ok {
		dst.FillRect(0, 0, dst.Width(), dst.Height(), bg)
		return nil
	}

	// Map destination pixel centres into the source around both centres.
	m := image.Translate(float64(src.Width())/2, float64(src.Height())/2).
		Multiply(inv).
		Multiply(image.Translate(-float64(dst.Width())/2, -float64(dst.Height())/2))

	for y := range dst.Height() {
		for x := range dst.Width() {
			sx, sy := m.TransformPoint(float64(x)+0.5, float64(y)+0.5)
			v, ok := image.SampleBilinear(src, sx, sy)
			if !ok {
				v = bg
			}
			dst.Put(x, y, v)
		}
	}
	return nil
}
