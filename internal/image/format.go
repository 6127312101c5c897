// Package image provides raw pixel buffer management for pixsurf.
//
// Buffers store packed pixel values of 1 to 4 bytes in row-major order with
// an arbitrary stride. The channel layout of a packed value is not known at
// this level; the Codec for a buffer only moves packed integers in and out of
// memory.
package image

import "encoding/binary"

// Codec reads and writes packed pixel values of one storage depth.
//
// Codecs form a small closed set, one per byte depth, so that every buffer
// operation dispatches through a single strategy value instead of branching
// on bytes-per-pixel.
type Codec interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Load reads the packed value stored at the start of p.
	Load(p []byte) uint32

	// Store writes the packed value v at the start of p.
	Store(p []byte, v uint32)
}

// Predefined codecs. Multi-byte values are stored little endian.
var (
	Depth8  Codec = depth8{}
	Depth16 Codec = depth16{}
	Depth24 Codec = depth24{}
	Depth32 Codec = depth32{}
)

// CodecFor returns the codec for the given number of bytes per pixel.
func CodecFor(bytesPerPixel int) (Codec, bool) {
	switch bytesPerPixel {
	case 1:
		return Depth8, true
	case 2:
		return Depth16, true
	case 3:
		return Depth24, true
	case 4:
		return Depth32, true
	default:
		return nil, false
	}
}

type depth8 struct{}

func (depth8) Size() int                { return 1 }
func (depth8) Load(p []byte) uint32     { return uint32(p[0]) }
func (depth8) Store(p []byte, v uint32) { p[0] = byte(v) }
func (depth8) String() string           { return "Depth8" }

type depth16 struct{}

func (depth16) Size() int                { return 2 }
func (depth16) Load(p []byte) uint32     { return uint32(binary.LittleEndian.Uint16(p)) }
func (depth16) Store(p []byte, v uint32) { binary.LittleEndian.PutUint16(p, uint16(v)) }
func (depth16) String() string           { return "Depth16" }

type depth24 struct{}

func (depth24) Size() int { return 3 }

func (depth24) Load(p []byte) uint32 {
	_ = p[2]
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16
}

func (depth24) Store(p []byte, v uint32) {
	_ = p[2]
	p[0] = byte(v)
	p[1] = byte(v >> 8)
	p[2] = byte(v >> 16)
}

func (depth24) String() string { return "Depth24" }

type depth32 struct{}

func (depth32) Size() int                { return 4 }
func (depth32) Load(p []byte) uint32     { return binary.LittleEndian.Uint32(p) }
func (depth32) Store(p []byte, v uint32) { binary.LittleEndian.PutUint32(p, v) }
func (depth32) String() string           { return "Depth32" }
