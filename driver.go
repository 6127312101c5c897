// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixsurf

import "fmt"

// Driver allocates pixel memory for surfaces. It stands in for the
// platform layer that owns video memory; the software driver simply uses
// the Go heap.
type Driver interface {
	// Name returns the driver's identifier.
	Name() string

	// NativeFormat returns the format surfaces use when none is requested.
	NativeFormat() *PixelFormat

	// Allocate returns zeroed memory for a w x h surface in format f and
	// the row pitch in bytes, which is at least w * f.BytesPerPixel().
	Allocate(w, h int, f *PixelFormat) ([]byte, int, error)
}

// SoftwareDriver allocates surfaces on the Go heap.
type SoftwareDriver struct {
	// Format is the native format. Nil means FormatXRGB8888.
	Format *PixelFormat

	// Align is the row alignment in bytes. Values below 1 mean 4.
	Align int
}

// Name implements Driver.
func (d *SoftwareDriver) Name() string { return "software" }

// NativeFormat implements Driver.
func (d *SoftwareDriver) NativeFormat() *PixelFormat {
	if d.Format == nil {
		return FormatXRGB8888
	}
	return d.Format
}

// Allocate implements Driver.
func (d *SoftwareDriver) Allocate(w, h int, f *PixelFormat) ([]byte, int, error) {
	if w < 0 || h < 0 {
		return nil, 0, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	align := d.Align
	if align < 1 {
		align = 4
	}
	pitch := w * f.BytesPerPixel()
	if r := pitch % align; r != 0 {
		pitch += align - r
	}
	return make([]byte, pitch*h), pitch, nil
}
