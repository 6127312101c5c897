package pixsurf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradient returns a w x h surface whose pixel (x, y) holds x + 16*y + 1.
func gradient(t *testing.T, w, h int, opts ...SurfaceOption) *Surface {
	t.Helper()
	s := newTestSurface(t, w, h, opts...)
	for y := range h {
		for x := range w {
			require.NoError(t, s.SetMapped(x, y, uint32(x+16*y+1)))
		}
	}
	return s
}

func mapped(t *testing.T, s *Surface, x, y int) uint32 {
	t.Helper()
	v, err := s.AtMapped(x, y)
	require.NoError(t, err)
	return v
}

func TestBlitOpaque(t *testing.T) {
	dst := newTestSurface(t, 20, 20)
	_, err := dst.Fill(ColorBlack, nil, BlendNone)
	require.NoError(t, err)

	red := Color{255, 0, 0, 255}
	src := newTestSurface(t, 10, 10)
	_, err = src.Fill(red, nil, BlendNone)
	require.NoError(t, err)

	r, err := dst.Blit(src, Pt(5, 5), nil, BlendNone)
	require.NoError(t, err)
	assert.Equal(t, NewRect(5, 5, 10, 10), r)

	for y := range 20 {
		for x := range 20 {
			got, _ := dst.At(x, y)
			want := ColorBlack
			if x >= 5 && x <= 14 && y >= 5 && y <= 14 {
				want = red
			}
			require.Equal(t, want, got, "pixel (%d, %d)", x, y)
		}
	}
	assert.Equal(t, 0, dst.LockCount())
	assert.Equal(t, 0, src.LockCount())
}

func TestBlitClipping(t *testing.T) {
	src := gradient(t, 10, 10)

	t.Run("destination clip", func(t *testing.T) {
		dst := newTestSurface(t, 20, 20)
		dst.SetClip(NewRect(0, 0, 10, 10))
		r, err := dst.Blit(src, Pt(5, 5), nil, BlendNone)
		require.NoError(t, err)
		assert.Equal(t, NewRect(5, 5, 5, 5), r)
		assert.Equal(t, uint32(0), mapped(t, dst, 10, 10))
		assert.Equal(t, mapped(t, src, 4, 4), mapped(t, dst, 9, 9))
	})

	t.Run("negative destination", func(t *testing.T) {
		dst := newTestSurface(t, 20, 20)
		r, err := dst.Blit(src, Pt(-3, -2), nil, BlendNone)
		require.NoError(t, err)
		assert.Equal(t, NewRect(0, 0, 7, 8), r)
		assert.Equal(t, mapped(t, src, 3, 2), mapped(t, dst, 0, 0))
		assert.Equal(t, mapped(t, src, 9, 9), mapped(t, dst, 6, 7))
	})

	t.Run("area", func(t *testing.T) {
		dst := newTestSurface(t, 20, 20)
		r, err := dst.Blit(src, Pt(0, 0), &Rect{X: 2, Y: 2, W: 3, H: 3}, BlendNone)
		require.NoError(t, err)
		assert.Equal(t, NewRect(0, 0, 3, 3), r)
		assert.Equal(t, mapped(t, src, 2, 2), mapped(t, dst, 0, 0))
		assert.Equal(t, uint32(0), mapped(t, dst, 3, 0))
	})

	t.Run("area outside source", func(t *testing.T) {
		dst := newTestSurface(t, 20, 20)
		r, err := dst.Blit(src, Pt(0, 0), &Rect{X: -2, Y: 0, W: 5, H: 5}, BlendNone)
		require.NoError(t, err)
		assert.Equal(t, NewRect(2, 0, 3, 5), r)
		assert.Equal(t, mapped(t, src, 0, 0), mapped(t, dst, 2, 0))
		assert.Equal(t, uint32(0), mapped(t, dst, 1, 0))
	})

	t.Run("nothing visible", func(t *testing.T) {
		dst := newTestSurface(t, 20, 20)
		r, err := dst.Blit(src, Pt(30, 4), nil, BlendNone)
		require.NoError(t, err)
		assert.Equal(t, Rect{X: 30, Y: 4}, r)
	})
}

func TestBlitColorKey(t *testing.T) {
	magenta := Color{255, 0, 255, 255}
	src := newTestSurface(t, 2, 1)
	require.NoError(t, src.Set(0, 0, magenta))
	require.NoError(t, src.Set(1, 0, ColorWhite))
	src.SetColorKey(&magenta)

	dst := newTestSurface(t, 2, 1)
	_, err := dst.Fill(Color{0, 0, 255, 255}, nil, BlendNone)
	require.NoError(t, err)

	_, err = dst.Blit(src, Pt(0, 0), nil, BlendNone)
	require.NoError(t, err)
	got, _ := dst.At(0, 0)
	assert.Equal(t, Color{0, 0, 255, 255}, got)
	got, _ = dst.At(1, 0)
	assert.Equal(t, ColorWhite, got)
}

func TestBlitColorKeyIgnoresAlpha(t *testing.T) {
	key := Color{255, 0, 255, 255}
	src := newTestSurface(t, 1, 1, WithSrcAlpha())
	require.NoError(t, src.Set(0, 0, Color{255, 0, 255, 0}))
	src.SetColorKey(&key)

	dst := newTestSurface(t, 1, 1, WithSrcAlpha())
	_, err := dst.Fill(ColorWhite, nil, BlendNone)
	require.NoError(t, err)

	_, err = dst.Blit(src, Pt(0, 0), nil, BlendRGBAMin)
	require.NoError(t, err)
	got, _ := dst.At(0, 0)
	assert.Equal(t, ColorWhite, got)
}

func TestBlitPerPixelAlpha(t *testing.T) {
	src := newTestSurface(t, 1, 1, WithSrcAlpha())
	require.NoError(t, src.Set(0, 0, Color{255, 0, 0, 128}))

	dst := newTestSurface(t, 1, 1)
	_, err := dst.Blit(src, Pt(0, 0), nil, BlendNone)
	require.NoError(t, err)
	got, _ := dst.At(0, 0)
	assert.Equal(t, Color{128, 0, 0, 255}, got)

	// A transparent destination takes the source unchanged.
	transparent := newTestSurface(t, 1, 1, WithSrcAlpha())
	_, err = transparent.Blit(src, Pt(0, 0), nil, BlendNone)
	require.NoError(t, err)
	got, _ = transparent.At(0, 0)
	assert.Equal(t, Color{255, 0, 0, 128}, got)
}

func TestBlitSurfaceAlpha(t *testing.T) {
	src := newTestSurface(t, 1, 1)
	_, err := src.Fill(Color{255, 0, 0, 255}, nil, BlendNone)
	require.NoError(t, err)
	a := uint8(128)
	src.SetAlpha(&a)

	dst := newTestSurface(t, 1, 1)
	_, err = dst.Blit(src, Pt(0, 0), nil, BlendNone)
	require.NoError(t, err)
	got, _ := dst.At(0, 0)
	assert.Equal(t, Color{128, 0, 0, 255}, got)

	a = 255
	src.SetAlpha(&a)
	_, err = dst.Blit(src, Pt(0, 0), nil, BlendNone)
	require.NoError(t, err)
	got, _ = dst.At(0, 0)
	assert.Equal(t, Color{255, 0, 0, 255}, got)
}

func TestBlitSurfaceAlphaSkipsArithmetic(t *testing.T) {
	src := newTestSurface(t, 1, 1, WithSrcAlpha())
	require.NoError(t, src.Set(0, 0, Color{10, 20, 30, 100}))
	a := uint8(128)
	src.SetAlpha(&a)

	dst := newTestSurface(t, 1, 1, WithSrcAlpha())
	require.NoError(t, dst.Set(0, 0, Color{100, 100, 100, 100}))
	_, err := dst.Blit(src, Pt(0, 0), nil, BlendRGBAAdd)
	require.NoError(t, err)
	got, _ := dst.At(0, 0)
	assert.Equal(t, Color{110, 120, 130, 200}, got)
}

func TestBlitConvertsFormat(t *testing.T) {
	src := newTestSurface(t, 2, 2, WithDepth(16))
	_, err := src.Fill(Color{255, 0, 0, 255}, nil, BlendNone)
	require.NoError(t, err)

	for _, opt := range []SurfaceOption{WithDepth(24), WithDepth(32), WithSrcAlpha(), WithDepth(15)} {
		dst := newTestSurface(t, 2, 2, opt)
		_, err := dst.Blit(src, Pt(0, 0), nil, BlendNone)
		require.NoError(t, err)
		got, _ := dst.At(1, 1)
		assert.Equal(t, Color{255, 0, 0, 255}, got, "format %v", dst.Format())
	}

	idx := newTestSurface(t, 2, 2, WithDepth(8))
	_, err = idx.Blit(src, Pt(0, 0), nil, BlendNone)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xe0), mapped(t, idx, 0, 0))
}

func TestBlitSpecialFlags(t *testing.T) {
	src := newTestSurface(t, 1, 1)
	_, err := src.Fill(Color{100, 100, 100, 255}, nil, BlendNone)
	require.NoError(t, err)

	dst := newTestSurface(t, 1, 1)
	_, err = dst.Fill(Color{200, 50, 0, 255}, nil, BlendNone)
	require.NoError(t, err)

	_, err = dst.Blit(src, Pt(0, 0), nil, BlendAdd)
	require.NoError(t, err)
	got, _ := dst.At(0, 0)
	assert.Equal(t, Color{255, 150, 100, 255}, got)

	_, err = dst.Blit(src, Pt(0, 0), nil, BlendSub)
	require.NoError(t, err)
	got, _ = dst.At(0, 0)
	assert.Equal(t, Color{155, 50, 0, 255}, got)

	_, err = dst.Blit(src, Pt(0, 0), nil, BlendFlags(99))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = dst.Blit(nil, Pt(0, 0), nil, BlendNone)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBlitPremultiplied(t *testing.T) {
	src := newTestSurface(t, 1, 1, WithSrcAlpha())
	require.NoError(t, src.Set(0, 0, Color{128, 0, 0, 128}))

	dst := newTestSurface(t, 1, 1)
	_, err := dst.Fill(Color{0, 0, 200, 255}, nil, BlendNone)
	require.NoError(t, err)

	_, err = dst.Blit(src, Pt(0, 0), nil, BlendPremultiplied)
	require.NoError(t, err)
	got, _ := dst.At(0, 0)
	assert.Equal(t, Color{128, 0, 99, 255}, got)
}

func TestBlitOverlapping(t *testing.T) {
	key := Color{0, 0, 99, 255}
	for _, keyed := range []bool{false, true} {
		name := "copy"
		if keyed {
			name = "per pixel"
		}
		t.Run(name, func(t *testing.T) {
			s := gradient(t, 5, 1)
			if keyed {
				s.SetColorKey(&key)
			}
			_, err := s.Blit(s, Pt(1, 0), &Rect{W: 4, H: 1}, BlendNone)
			require.NoError(t, err)
			assert.Equal(t, []uint32{1, 1, 2, 3, 4}, rowValues(t, s, 0))

			s = gradient(t, 5, 1)
			if keyed {
				s.SetColorKey(&key)
			}
			_, err = s.Blit(s, Pt(0, 0), &Rect{X: 1, W: 4, H: 1}, BlendNone)
			require.NoError(t, err)
			assert.Equal(t, []uint32{2, 3, 4, 5, 5}, rowValues(t, s, 0))
		})
	}
}

func TestBlitSubsurfaceToParent(t *testing.T) {
	s := gradient(t, 6, 6)
	sub, err := s.Subsurface(NewRect(0, 0, 3, 3))
	require.NoError(t, err)

	r, err := s.Blit(sub, Pt(3, 3), nil, BlendNone)
	require.NoError(t, err)
	assert.Equal(t, NewRect(3, 3, 3, 3), r)
	assert.Equal(t, uint32(1), mapped(t, s, 3, 3))
	assert.Equal(t, uint32(2+2*16+1), mapped(t, s, 5, 5))
	assert.Equal(t, 0, s.LockCount())
}

func TestBlits(t *testing.T) {
	dst := newTestSurface(t, 10, 10)
	src := newTestSurface(t, 2, 2)

	rects, err := dst.Blits([]BlitItem{
		{Source: src, Dest: Pt(0, 0)},
		{Source: src, Dest: Pt(9, 9)},
	})
	require.NoError(t, err)
	assert.Equal(t, []Rect{NewRect(0, 0, 2, 2), NewRect(9, 9, 1, 1)}, rects)

	rects, err = dst.Blits([]BlitItem{
		{Source: src, Dest: Pt(1, 1)},
		{Source: nil},
	})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Len(t, rects, 1)
}

func TestBlendFlagsString(t *testing.T) {
	assert.Equal(t, "None", BlendNone.String())
	assert.Equal(t, "RGBAMult", BlendRGBAMult.String())
	assert.Equal(t, "BlendFlags(77)", BlendFlags(77).String())
	assert.False(t, BlendFlags(77).Valid())
}
