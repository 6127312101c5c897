package image

import (
	"errors"
	"fmt"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside buffer bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrNilCodec is returned when a buffer is created without a codec.
	ErrNilCodec = errors.New("image: nil codec")
)

// Buf is a strided buffer of packed pixel values.
//
// A Buf either owns its memory or is a view into the memory of another Buf
// (see Sub). Views keep a reference to the whole backing slice together with
// the byte offset of their first pixel, so two buffers can always tell
// whether, and where, their pixels alias.
//
// Thread safety: Buf performs no locking. Callers serialise access.
type Buf struct {
	data   []byte // whole backing slice, shared by views
	off    int    // byte offset of pixel (0, 0) within data
	width  int
	height int
	stride int
	codec  Codec
}

// NewBuf creates a zeroed buffer with a tight stride.
// Zero-sized buffers are valid; negative dimensions are not.
func NewBuf(width, height int, codec Codec) (*Buf, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}
	return NewBufWithStride(width, height, codec, width*codec.Size())
}

// NewBufWithStride creates a zeroed buffer with a custom stride.
// Stride must be at least width * codec.Size().
func NewBufWithStride(width, height int, codec Codec, stride int) (*Buf, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if codec == nil {
		return nil, ErrNilCodec
	}
	if stride < width*codec.Size() {
		return nil, ErrInvalidStride
	}

	return &Buf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		codec:  codec,
	}, nil
}

// FromRaw wraps existing memory without copying.
// The caller must keep data alive for the lifetime of the Buf.
func FromRaw(data []byte, width, height int, codec Codec, stride int) (*Buf, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if codec == nil {
		return nil, ErrNilCodec
	}
	if stride < width*codec.Size() {
		return nil, ErrInvalidStride
	}
	if height > 0 && len(data) < (height-1)*stride+width*codec.Size() {
		return nil, ErrDataTooSmall
	}

	return &Buf{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		codec:  codec,
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buf) Stride() int {
	return b.stride
}

// Codec returns the pixel codec.
func (b *Buf) Codec() Codec {
	return b.codec
}

// BytesPerPixel returns the codec size.
func (b *Buf) BytesPerPixel() int {
	return b.codec.Size()
}

// Data returns the whole backing slice, including memory outside this view.
func (b *Buf) Data() []byte {
	return b.data
}

// Offset returns the byte offset of pixel (0, 0) within Data.
func (b *Buf) Offset() int {
	return b.off
}

// IsEmpty reports whether the buffer has no pixels.
func (b *Buf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buf) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// RowBytes returns the pixel bytes of row y, excluding padding.
// Returns nil if y is out of bounds.
func (b *Buf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := b.off + y*b.stride
	return b.data[start : start+b.width*b.codec.Size()]
}

// At returns the packed value at (x, y) without bounds checking.
func (b *Buf) At(x, y int) uint32 {
	return b.codec.Load(b.data[b.off+y*b.stride+x*b.codec.Size():])
}

// Put stores the packed value at (x, y) without bounds checking.
func (b *Buf) Put(x, y int, v uint32) {
	b.codec.Store(b.data[b.off+y*b.stride+x*b.codec.Size():], v)
}

// FillSpan stores v into the inclusive run x0..x1 of row y.
// The run must lie inside the buffer.
func (b *Buf) FillSpan(x0, x1, y int, v uint32) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	size := b.codec.Size()
	row := b.data[b.off+y*b.stride:]
	if size == 1 {
		seg := row[x0 : x1+1]
		for i := range seg {
			seg[i] = byte(v)
		}
		return
	}
	for x := x0; x <= x1; x++ {
		b.codec.Store(row[x*size:], v)
	}
}

// FillRect stores v into the rectangle (x, y, w, h) clipped to the buffer.
func (b *Buf) FillRect(x, y, w, h int, v uint32) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.width), min(y+h, b.height)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	size := b.codec.Size()
	first := b.off + y0*b.stride
	b.FillSpan(x0, x1-1, y0, v)
	src := b.data[first+x0*size : first+x1*size]
	for row := y0 + 1; row < y1; row++ {
		start := b.off + row*b.stride
		copy(b.data[start+x0*size:start+x1*size], src)
	}
}

// Clear zeroes every pixel of the view. Padding bytes are left alone.
func (b *Buf) Clear() {
	for y := range b.height {
		clear(b.RowBytes(y))
	}
}

// Sub returns a view into the rectangle (x, y, w, h).
// The view shares memory with b.
func (b *Buf) Sub(x, y, w, h int) (*Buf, error) {
	if x < 0 || y < 0 || w < 0 || h < 0 || x+w > b.width || y+h > b.height {
		return nil, fmt.Errorf("%w: (%d, %d, %d, %d) in %dx%d", ErrOutOfBounds, x, y, w, h, b.width, b.height)
	}

	return &Buf{
		data:   b.data,
		off:    b.off + y*b.stride + x*b.codec.Size(),
		width:  w,
		height: h,
		stride: b.stride,
		codec:  b.codec,
	}, nil
}

// SharesMemory reports whether b and o use the same backing slice.
func (b *Buf) SharesMemory(o *Buf) bool {
	if b == nil || o == nil || len(b.data) == 0 || len(o.data) == 0 {
		return false
	}
	return &b.data[0] == &o.data[0]
}

// CopyRows copies the pixel bytes of every row from src into b.
// Both buffers must have the same size and codec size. Rows are copied in
// an order that is safe when src and b alias the same memory.
func (b *Buf) CopyRows(src *Buf) {
	if b.SharesMemory(src) && b.off > src.off {
		for y := b.height - 1; y >= 0; y-- {
			copy(b.RowBytes(y), src.RowBytes(y))
		}
		return
	}
	for y := range b.height {
		copy(b.RowBytes(y), src.RowBytes(y))
	}
}
