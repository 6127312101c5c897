package pixsurf

import (
	"image"
	"image/color"
	stddraw "image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceImage(t *testing.T) {
	s := newTestSurface(t, 4, 3, WithSrcAlpha())
	img := s.Image()
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Equal(t, color.NRGBAModel, img.ColorModel())

	img.Set(1, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	got, err := s.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Color{10, 20, 30, 40}, got)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 40}, img.At(1, 2))
	assert.Equal(t, color.NRGBA{}, img.At(10, 10))

	// The standard library can draw straight onto a surface.
	src := image.NewUniform(color.NRGBA{R: 255, A: 255})
	stddraw.Draw(img, image.Rect(0, 0, 2, 1), src, image.Point{}, stddraw.Src)
	got, _ = s.At(1, 0)
	assert.Equal(t, Color{255, 0, 0, 255}, got)
	got, _ = s.At(2, 0)
	assert.Equal(t, Color{}, got)
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 8, 7))
	img.Set(5, 5, color.RGBA{R: 255, A: 255})
	img.Set(7, 6, color.RGBA{B: 255, A: 255})

	s, err := FromImage(img, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Width())
	assert.Equal(t, 2, s.Height())
	assert.True(t, s.Format().HasAlpha())

	got, _ := s.At(0, 0)
	assert.Equal(t, Color{255, 0, 0, 255}, got)
	got, _ = s.At(2, 1)
	assert.Equal(t, Color{0, 0, 255, 255}, got)
	got, _ = s.At(1, 0)
	assert.Equal(t, Color{}, got)

	s16, err := FromImage(img, FormatRGB565)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xf800), mapped(t, s16, 0, 0))

	_, err = FromImage(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestScaleImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	stddraw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{G: 200, A: 255}), image.Point{}, stddraw.Src)

	s, err := ScaleImage(img, 8, 2, FormatRGB888)
	require.NoError(t, err)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 2, s.Height())
	got, _ := s.At(4, 1)
	assert.Equal(t, Color{0, 200, 0, 255}, got)

	_, err = ScaleImage(img, -1, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestExportImportRows(t *testing.T) {
	src := gradient(t, 3, 2, WithDepth(24))
	rows := src.ExportRows()
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 9)
	assert.Equal(t, []byte{1, 0, 0}, rows[0][:3])

	// Exported rows are copies.
	rows[0][0] = 99
	assert.Equal(t, uint32(1), mapped(t, src, 0, 0))

	dst := newTestSurface(t, 3, 2, WithDepth(24))
	require.NoError(t, dst.ImportRows(src.ExportRows()))
	requireSamePixels(t, src, dst)
	assert.Equal(t, 0, dst.LockCount())

	assert.ErrorIs(t, dst.ImportRows(rows[:1]), ErrInvalidArgument)
	assert.ErrorIs(t, dst.ImportRows([][]byte{rows[0], rows[1][:4]}), ErrInvalidArgument)
}
