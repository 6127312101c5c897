package pixsurf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceAtSetBounds(t *testing.T) {
	s := newTestSurface(t, 4, 3)
	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		_, err := s.At(p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds, "At%v", p)
		assert.ErrorIs(t, s.Set(p.X, p.Y, ColorWhite), ErrOutOfBounds, "Set%v", p)
		_, err = s.AtMapped(p.X, p.Y)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.ErrorIs(t, s.SetMapped(p.X, p.Y, 1), ErrOutOfBounds)
	}
}

func TestSurfaceSetHonoursClip(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	s.SetClip(NewRect(1, 1, 2, 2))

	require.NoError(t, s.Set(0, 0, ColorWhite))
	require.NoError(t, s.Set(1, 1, ColorWhite))

	got, _ := s.At(0, 0)
	assert.Equal(t, ColorBlack, got)
	got, _ = s.At(1, 1)
	assert.Equal(t, ColorWhite, got)
}

func TestMapUnmapRGBA(t *testing.T) {
	s := newTestSurface(t, 1, 1, WithDepth(16))
	v := s.MapRGBA(Color{255, 0, 0, 255})
	assert.Equal(t, uint32(0xf800), v)
	assert.Equal(t, Color{255, 0, 0, 255}, s.UnmapRGBA(v))
}

func TestFill(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	red := Color{255, 0, 0, 255}

	r, err := s.Fill(red, nil, BlendNone)
	require.NoError(t, err)
	assert.Equal(t, NewRect(0, 0, 10, 10), r)

	r, err = s.Fill(ColorWhite, &Rect{X: 8, Y: -2, W: 5, H: 4}, BlendNone)
	require.NoError(t, err)
	assert.Equal(t, NewRect(8, 0, 2, 2), r)

	got, _ := s.At(9, 1)
	assert.Equal(t, ColorWhite, got)
	got, _ = s.At(7, 1)
	assert.Equal(t, red, got)
	got, _ = s.At(9, 2)
	assert.Equal(t, red, got)
}

func TestFillRespectsClip(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.SetClip(NewRect(2, 2, 3, 3))

	r, err := s.Fill(ColorWhite, nil, BlendNone)
	require.NoError(t, err)
	assert.Equal(t, NewRect(2, 2, 3, 3), r)

	count := 0
	for y := range 10 {
		for x := range 10 {
			if c, _ := s.At(x, y); c == ColorWhite {
				count++
				assert.True(t, r.CollidePoint(Pt(x, y)))
			}
		}
	}
	assert.Equal(t, 9, count)

	r, err = s.Fill(ColorWhite, &Rect{X: 7, Y: 7, W: 2, H: 2}, BlendNone)
	require.NoError(t, err)
	assert.True(t, r.Empty())
}

func TestFillBlend(t *testing.T) {
	tests := []struct {
		flags BlendFlags
		base  Color
		fill  Color
		want  Color
	}{
		{BlendAdd, Color{100, 0, 200, 255}, Color{100, 50, 100, 255}, Color{200, 50, 255, 255}},
		{BlendSub, Color{100, 0, 200, 255}, Color{50, 50, 50, 255}, Color{50, 0, 150, 255}},
		{BlendMult, Color{255, 128, 0, 255}, Color{255, 255, 255, 255}, Color{255, 128, 0, 255}},
		{BlendMin, Color{100, 0, 200, 255}, Color{50, 50, 250, 255}, Color{50, 0, 200, 255}},
		{BlendMax, Color{100, 0, 200, 255}, Color{50, 50, 250, 255}, Color{100, 50, 250, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.flags.String(), func(t *testing.T) {
			s := newTestSurface(t, 2, 2, WithDepth(24))
			_, err := s.Fill(tt.base, nil, BlendNone)
			require.NoError(t, err)
			_, err = s.Fill(tt.fill, nil, tt.flags)
			require.NoError(t, err)
			got, _ := s.At(1, 1)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFillRGBABlendTouchesAlpha(t *testing.T) {
	s := newTestSurface(t, 1, 1, WithSrcAlpha())
	_, err := s.Fill(Color{10, 10, 10, 100}, nil, BlendNone)
	require.NoError(t, err)

	_, err = s.Fill(Color{5, 5, 5, 50}, nil, BlendAdd)
	require.NoError(t, err)
	got, _ := s.At(0, 0)
	assert.Equal(t, Color{15, 15, 15, 100}, got)

	_, err = s.Fill(Color{5, 5, 5, 50}, nil, BlendRGBAAdd)
	require.NoError(t, err)
	got, _ = s.At(0, 0)
	assert.Equal(t, Color{20, 20, 20, 150}, got)
}

func TestFillInvalidFlags(t *testing.T) {
	s := newTestSurface(t, 1, 1)
	_, err := s.Fill(ColorWhite, nil, BlendFlags(200))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func rowValues(t *testing.T, s *Surface, y int) []uint32 {
	t.Helper()
	out := make([]uint32, s.Width())
	for x := range out {
		v, err := s.AtMapped(x, y)
		require.NoError(t, err)
		out[x] = v
	}
	return out
}

func TestScroll(t *testing.T) {
	fill := func() *Surface {
		s := newTestSurface(t, 5, 1)
		for x := range 5 {
			require.NoError(t, s.SetMapped(x, 0, uint32(x+1)))
		}
		return s
	}

	s := fill()
	s.Scroll(2, 0)
	assert.Equal(t, []uint32{1, 2, 1, 2, 3}, rowValues(t, s, 0))

	s = fill()
	s.Scroll(-1, 0)
	assert.Equal(t, []uint32{2, 3, 4, 5, 5}, rowValues(t, s, 0))

	s = fill()
	s.Scroll(5, 0)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, rowValues(t, s, 0))
}

func TestScrollVerticalWithinClip(t *testing.T) {
	s := newTestSurface(t, 1, 4)
	for y := range 4 {
		require.NoError(t, s.SetMapped(0, y, uint32(10+y)))
	}
	s.SetClip(NewRect(0, 1, 1, 3))
	s.Scroll(0, 1)

	var col []uint32
	for y := range 4 {
		v, _ := s.AtMapped(0, y)
		col = append(col, v)
	}
	assert.Equal(t, []uint32{10, 11, 11, 12}, col)
}

func TestBoundingRect(t *testing.T) {
	s := newTestSurface(t, 8, 8, WithSrcAlpha())
	assert.Equal(t, Rect{}, s.BoundingRect(1))

	require.NoError(t, s.Set(2, 3, Color{0, 0, 0, 200}))
	require.NoError(t, s.Set(5, 1, Color{0, 0, 0, 50}))
	assert.Equal(t, NewRect(2, 1, 4, 3), s.BoundingRect(1))
	assert.Equal(t, NewRect(2, 3, 1, 1), s.BoundingRect(100))
}

func TestBoundingRectColorKey(t *testing.T) {
	s := newTestSurface(t, 6, 6)
	assert.Equal(t, NewRect(0, 0, 6, 6), s.BoundingRect(1))

	key := ColorBlack
	s.SetColorKey(&key)
	require.NoError(t, s.Set(4, 4, ColorWhite))
	assert.Equal(t, NewRect(4, 4, 1, 1), s.BoundingRect(1))
}

func TestSurfacePremulAlpha(t *testing.T) {
	s := newTestSurface(t, 2, 1, WithSrcAlpha())
	require.NoError(t, s.Set(0, 0, Color{255, 128, 0, 128}))
	require.NoError(t, s.Set(1, 0, Color{200, 200, 200, 0}))

	p, err := s.PremulAlpha()
	require.NoError(t, err)
	got, _ := p.At(0, 0)
	assert.Equal(t, Color{128, 64, 0, 128}, got)
	got, _ = p.At(1, 0)
	assert.Equal(t, Color{}, got)

	// The source is unchanged.
	got, _ = s.At(0, 0)
	assert.Equal(t, Color{255, 128, 0, 128}, got)

	_, err = newTestSurface(t, 1, 1).PremulAlpha()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
