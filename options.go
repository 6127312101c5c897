package pixsurf

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	// Native format of the default driver
//	s, _ := pixsurf.NewSurface(640, 480)
//
//	// 16-bit surface
//	s, _ = pixsurf.NewSurface(640, 480, pixsurf.WithDepth(16))
//
//	// 32-bit surface with per-pixel alpha
//	s, _ = pixsurf.NewSurface(64, 64, pixsurf.WithSrcAlpha())
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	format   *PixelFormat
	depth    int
	masks    *[4]uint32
	srcAlpha bool
	driver   Driver
}

// WithFormat sets the pixel format explicitly. It overrides every other
// format option.
func WithFormat(f *PixelFormat) SurfaceOption {
	return func(o *surfaceOptions) {
		o.format = f
	}
}

// WithDepth selects the default format for a bit depth (see DefaultFormat).
func WithDepth(bpp int) SurfaceOption {
	return func(o *surfaceOptions) {
		o.depth = bpp
	}
}

// WithMasks builds the format from a bit depth and channel masks.
func WithMasks(bpp int, rmask, gmask, bmask, amask uint32) SurfaceOption {
	return func(o *surfaceOptions) {
		o.depth = bpp
		o.masks = &[4]uint32{rmask, gmask, bmask, amask}
	}
}

// WithSrcAlpha requests a format with per-pixel alpha: ARGB8888, or
// ARGB4444 when combined with WithDepth(16).
func WithSrcAlpha() SurfaceOption {
	return func(o *surfaceOptions) {
		o.srcAlpha = true
	}
}

// WithDriver allocates the surface with d instead of the best driver of
// the global registry.
func WithDriver(d Driver) SurfaceOption {
	return func(o *surfaceOptions) {
		o.driver = d
	}
}

// resolveFormat picks the surface format from the options.
func (o *surfaceOptions) resolveFormat() (*PixelFormat, error) {
	switch {
	case o.format != nil:
		return o.format, nil
	case o.masks != nil:
		m := o.masks
		return NewPixelFormat(o.depth, m[0], m[1], m[2], m[3])
	case o.srcAlpha && o.depth == 16:
		return FormatARGB4444, nil
	case o.srcAlpha && (o.depth == 0 || o.depth == 32):
		return FormatARGB8888, nil
	case o.depth != 0:
		return DefaultFormat(o.depth)
	}
	return o.driver.NativeFormat(), nil
}
