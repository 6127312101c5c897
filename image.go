package pixsurf

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// surfaceImage adapts a Surface to draw.Image.
type surfaceImage struct {
	s *Surface
}

// Image returns a draw.Image backed by the pixels of s. Colors are
// exchanged as color.NRGBA; Set honours the clip rectangle.
func (s *Surface) Image() draw.Image {
	return surfaceImage{s: s}
}

func (im surfaceImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (im surfaceImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.s.Width(), im.s.Height())
}

func (im surfaceImage) At(x, y int) color.Color {
	c, err := im.s.At(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (im surfaceImage) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	_ = im.s.Set(x, y, Color{R: n.R, G: n.G, B: n.B, A: n.A})
}

// FromImage creates a surface holding a copy of img in format f, or in
// FormatARGB8888 when f is nil.
func FromImage(img image.Image, f *PixelFormat) (*Surface, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if f == nil {
		f = FormatARGB8888
	}
	b := img.Bounds()
	s, err := NewSurface(b.Dx(), b.Dy(), WithFormat(f))
	if err != nil {
		return nil, err
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	for y := range b.Dy() {
		for x := range b.Dx() {
			i := rgba.PixOffset(x, y)
			p := rgba.Pix[i : i+4 : i+4]
			s.buf.Put(x, y, s.format.Map(Color{R: p[0], G: p[1], B: p[2], A: p[3]}))
		}
	}
	return s, nil
}

// ScaleImage draws img resized to w x h onto a new surface in format f
// (FormatARGB8888 when nil), using Catmull-Rom resampling.
func ScaleImage(img image.Image, w, h int, f *PixelFormat) (*Surface, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return FromImage(dst, f)
}

// ExportRows returns a copy of the pixel bytes of every row, without
// padding.
func (s *Surface) ExportRows() [][]byte {
	defer s.acquire()()

	n := s.Width() * s.BytesPerPixel()
	rows := make([][]byte, s.Height())
	for y := range rows {
		rows[y] = append([]byte(nil), s.buf.RowBytes(y)[:n]...)
	}
	return rows
}

// ImportRows replaces the pixels of s with rows in the layout returned by
// ExportRows. There must be one row per surface row, each holding at
// least a full row of pixels.
func (s *Surface) ImportRows(rows [][]byte) error {
	defer s.acquire()()

	if len(rows) != s.Height() {
		return fmt.Errorf("%w: %d rows for a surface of height %d", ErrInvalidArgument, len(rows), s.Height())
	}
	n := s.Width() * s.BytesPerPixel()
	for y, r := range rows {
		if len(r) < n {
			return fmt.Errorf("%w: row %d has %d bytes, need %d", ErrInvalidArgument, y, len(r), n)
		}
	}
	for y, r := range rows {
		copy(s.buf.RowBytes(y), r[:n])
	}
	return nil
}
