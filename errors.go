package pixsurf

import "errors"

var (
	// ErrInvalidSize is returned for negative surface dimensions.
	ErrInvalidSize = errors.New("pixsurf: invalid size")

	// ErrOutOfBounds is returned when coordinates or rectangles fall
	// outside a surface.
	ErrOutOfBounds = errors.New("pixsurf: out of bounds")

	// ErrInvalidColor is returned for color values that cannot be parsed.
	ErrInvalidColor = errors.New("pixsurf: invalid color")

	// ErrUnsupportedFormat is returned when an operation needs a pixel
	// format the surface does not have, or a format is malformed.
	ErrUnsupportedFormat = errors.New("pixsurf: unsupported format")

	// ErrLockState is returned by Unlock without a matching Lock and by
	// Pixels on an unlocked surface.
	ErrLockState = errors.New("pixsurf: invalid lock state")

	// ErrInvalidArgument is returned for malformed point lists, too few
	// points and mismatched destination surfaces.
	ErrInvalidArgument = errors.New("pixsurf: invalid argument")
)
