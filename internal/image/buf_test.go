package image

import (
	"errors"
	"testing"
)

func TestNewBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		codec   Codec
		wantErr error
	}{
		{"valid 32-bit", 100, 100, Depth32, nil},
		{"valid 8-bit", 50, 50, Depth8, nil},
		{"zero size allowed", 0, 0, Depth16, nil},
		{"negative width", -1, 100, Depth32, ErrInvalidDimensions},
		{"negative height", 100, -1, Depth32, ErrInvalidDimensions},
		{"nil codec", 10, 10, nil, ErrNilCodec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuf(tt.width, tt.height, tt.codec)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBuf() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if want := tt.width * tt.codec.Size(); buf.Stride() != want {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), want)
			}
			if len(buf.Data()) != buf.Stride()*tt.height {
				t.Errorf("len(Data()) = %d, want %d", len(buf.Data()), buf.Stride()*tt.height)
			}
		})
	}
}

func TestNewBufWithStride(t *testing.T) {
	if _, err := NewBufWithStride(10, 10, Depth32, 39); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("stride 39 error = %v, want ErrInvalidStride", err)
	}
	buf, err := NewBufWithStride(10, 10, Depth24, 32)
	if err != nil {
		t.Fatalf("NewBufWithStride() error = %v", err)
	}
	if buf.Stride() != 32 {
		t.Errorf("Stride() = %d, want 32", buf.Stride())
	}
	if len(buf.RowBytes(0)) != 30 {
		t.Errorf("len(RowBytes(0)) = %d, want 30", len(buf.RowBytes(0)))
	}
}

func TestFromRaw(t *testing.T) {
	data := make([]byte, 2*14+4*3)
	buf, err := FromRaw(data, 3, 3, Depth32, 14)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	buf.Put(2, 2, 0x01020304)
	if data[2*14+8] != 0x04 {
		t.Errorf("FromRaw did not alias caller memory")
	}

	if _, err := FromRaw(make([]byte, 10), 3, 3, Depth32, 12); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
}

func TestBufFillRect(t *testing.T) {
	for _, codec := range []Codec{Depth8, Depth16, Depth24, Depth32} {
		buf, _ := NewBufWithStride(6, 5, codec, 6*codec.Size()+3)
		buf.FillRect(-2, 1, 5, 10, 0x42)

		for y := range 5 {
			for x := range 6 {
				want := uint32(0)
				if x < 3 && y >= 1 {
					want = 0x42
				}
				if got := buf.At(x, y); got != want {
					t.Errorf("size %d: At(%d, %d) = %#x, want %#x", codec.Size(), x, y, got, want)
				}
			}
		}
		for y := range 5 {
			pad := buf.Data()[y*buf.Stride()+6*codec.Size() : (y+1)*buf.Stride()]
			for _, p := range pad {
				if p != 0 {
					t.Fatalf("size %d: padding of row %d written", codec.Size(), y)
				}
			}
		}
	}
}

func TestBufFillSpanReversed(t *testing.T) {
	buf, _ := NewBuf(5, 1, Depth32)
	buf.FillSpan(3, 1, 0, 7)
	want := []uint32{0, 7, 7, 7, 0}
	for x, w := range want {
		if got := buf.At(x, 0); got != w {
			t.Errorf("At(%d, 0) = %d, want %d", x, got, w)
		}
	}
}

func TestBufSub(t *testing.T) {
	parent, _ := NewBuf(10, 10, Depth32)
	sub, err := parent.Sub(2, 3, 4, 5)
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	if !sub.SharesMemory(parent) {
		t.Error("sub-view does not share memory with parent")
	}

	sub.Put(0, 0, 99)
	if got := parent.At(2, 3); got != 99 {
		t.Errorf("parent.At(2, 3) = %d, want 99", got)
	}
	sub.FillRect(0, 0, 4, 5, 1)
	if got := parent.At(6, 3); got != 0 {
		t.Errorf("fill leaked outside sub-view: parent.At(6, 3) = %d", got)
	}

	nested, err := sub.Sub(1, 1, 2, 2)
	if err != nil {
		t.Fatalf("nested Sub() error = %v", err)
	}
	if want := 4*parent.Stride() + 3*parent.BytesPerPixel(); nested.Offset() != want {
		t.Errorf("nested Offset() = %d, want %d", nested.Offset(), want)
	}

	if _, err := parent.Sub(8, 8, 3, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of range Sub() error = %v, want ErrOutOfBounds", err)
	}
}

func TestBufCopyRowsOverlap(t *testing.T) {
	parent, _ := NewBuf(1, 6, Depth8)
	for y := range 6 {
		parent.Put(0, y, uint32(y+1))
	}
	src, _ := parent.Sub(0, 0, 1, 4)
	dst, _ := parent.Sub(0, 2, 1, 4)
	dst.CopyRows(src)

	want := []uint32{1, 2, 1, 2, 3, 4}
	for y, w := range want {
		if got := parent.At(0, y); got != w {
			t.Errorf("row %d = %d, want %d", y, got, w)
		}
	}
}
