package pixsurf

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/pixsurf/internal/image"
	"github.com/gogpu/pixsurf/internal/transform"
)

// transformError maps errors of the transform package onto the public
// sentinels.
func transformError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, transform.ErrDepthMismatch), errors.Is(err, transform.ErrUnsupportedDepth):
		return fmt.Errorf("pixsurf: %s: %w: %w", op, ErrUnsupportedFormat, err)
	case errors.Is(err, transform.ErrSizeMismatch):
		return fmt.Errorf("pixsurf: %s: %w: %w", op, ErrInvalidSize, err)
	}
	return fmt.Errorf("pixsurf: %s: %w", op, err)
}

// derive creates a w x h surface like src and fills it with fn while src
// is held.
func derive(op string, src *Surface, w, h int, fn func(dst, src *image.Buf) error) (*Surface, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %s to %dx%d", ErrInvalidSize, op, w, h)
	}
	defer src.acquire()()

	d, err := src.newLike(w, h)
	if err != nil {
		return nil, err
	}
	if err := fn(d.buf, src.buf); err != nil {
		return nil, transformError(op, err)
	}
	return d, nil
}

// into runs fn with both surfaces held. They must not share pixels.
func into(op string, dst, src *Surface, fn func(dst, src *image.Buf) error) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	if dst.shared == src.shared {
		return fmt.Errorf("%w: %s source and destination share pixels", ErrInvalidArgument, op)
	}
	defer acquirePair(dst, src)()

	return transformError(op, fn(dst.buf, src.buf))
}

// Flip returns a copy of s mirrored horizontally when xflip is set and
// vertically when yflip is set.
func Flip(s *Surface, xflip, yflip bool) (*Surface, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	return derive("flip", s, s.Width(), s.Height(), func(dst, src *image.Buf) error {
		return transform.Flip(dst, src, xflip, yflip)
	})
}

// Rotate returns s rotated counter-clockwise by angle degrees. Multiples
// of 90 degrees are exact. Other angles grow the surface to hold the
// rotated corners; uncovered pixels get the colorkey when one is set and
// otherwise the color of pixel (0, 0) without alpha.
func Rotate(s *Surface, angle float64) (*Surface, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, fmt.Errorf("%w: rotation angle %v", ErrInvalidArgument, angle)
	}

	if math.Mod(angle, 90) == 0 {
		turns := int(math.Mod(angle/90, 4))
		w, h := transform.Rotate90Size(s.Width(), s.Height(), turns)
		return derive("rotate", s, w, h, func(dst, src *image.Buf) error {
			return transform.Rotate90(dst, src, turns)
		})
	}

	w, h := transform.RotateSize(s.Width(), s.Height(), angle)
	return derive("rotate", s, w, h, func(dst, src *image.Buf) error {
		return transform.Rotate(dst, src, angle, s.rotateBackground())
	})
}

// rotateBackground is called with s held.
func (s *Surface) rotateBackground() uint32 {
	if s.hasColorKey {
		return s.colorKey
	}
	if s.buf.IsEmpty() {
		return 0
	}
	_, _, _, amask := s.format.Masks()
	return s.buf.At(0, 0) &^ amask
}

// Scale returns s resized to w x h with nearest neighbour sampling.
func Scale(s *Surface, w, h int) (*Surface, error) {
	return derive("scale", s, w, h, transform.Stretch)
}

// ScaleInto resizes src into dst, which must use pixels of the same size.
func ScaleInto(dst, src *Surface) error {
	return into("scale", dst, src, transform.Stretch)
}

// SmoothScale returns s resized to w x h with filtering: box averaging
// when shrinking and linear interpolation when growing. Only 24 and 32
// bit surfaces are supported.
func SmoothScale(s *Surface, w, h int) (*Surface, error) {
	if err := checkSmooth(s); err != nil {
		return nil, err
	}
	return derive("smoothscale", s, w, h, transform.SmoothScale)
}

// SmoothScaleInto smooth-scales src into dst.
func SmoothScaleInto(dst, src *Surface) error {
	if err := checkSmooth(src); err != nil {
		return err
	}
	return into("smoothscale", dst, src, transform.SmoothScale)
}

func checkSmooth(s *Surface) error {
	if s == nil {
		return fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	if bpp := s.format.BitsPerPixel(); bpp != 24 && bpp != 32 {
		return fmt.Errorf("%w: smoothscale needs a 24 or 32 bit surface, have %d", ErrUnsupportedFormat, bpp)
	}
	return nil
}

// Scale2x returns s at twice its size, enlarged with the EPX rule that
// keeps the edges of pixel art sharp.
func Scale2x(s *Surface) (*Surface, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	return derive("scale2x", s, 2*s.Width(), 2*s.Height(), transform.Scale2x)
}

// Chop returns a surface of the size of s holding s with the rows and
// columns of r removed. The remaining pixels move up and left; the freed
// strips at the right and bottom are zero.
func Chop(s *Surface, r Rect) (*Surface, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	r = r.Normalize()
	return derive("chop", s, s.Width(), s.Height(), func(dst, src *image.Buf) error {
		return transform.Chop(dst, src, r.X, r.Y, r.W, r.H)
	})
}

// RotoZoom returns s rotated counter-clockwise by angle degrees and
// scaled by scale, sampled bilinearly. Surfaces that are not 32-bit are
// converted to FormatARGB8888 first. Uncovered pixels are zero.
func RotoZoom(s *Surface, angle, scale float64) (*Surface, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidArgument)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: rotozoom by %v at %v", ErrInvalidArgument, angle, scale)
	}

	src := s
	if s.format.BitsPerPixel() != 32 {
		Logger().Debug("pixsurf: rotozoom converting source",
			slog.String("from", s.format.String()), slog.String("to", FormatARGB8888.String()))
		c, err := s.ConvertAlpha()
		if err != nil {
			return nil, err
		}
		src = c
	}

	w, h := transform.RotoZoomSize(src.Width(), src.Height(), angle, scale)
	return derive("rotozoom", src, w, h, func(dst, sb *image.Buf) error {
		return transform.RotoZoom(dst, sb, angle, scale, 0)
	})
}
