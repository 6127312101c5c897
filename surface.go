package pixsurf

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/pixsurf/internal/clip"
	"github.com/gogpu/pixsurf/internal/image"
)

// Surface is a rectangle of packed pixels with a pixel format, a clip
// rectangle and optional colorkey and surface alpha.
//
// A subsurface is a view into a region of its parent: both see the same
// pixels, and the subsurface keeps the parent's memory alive. All surfaces
// cut from one root share its lock count and its access mutex.
type Surface struct {
	shared *shared
	parent *Surface
	offset Point

	buf    *image.Buf
	format *PixelFormat
	driver Driver

	clips *clip.ClipStack

	colorKey    uint32
	hasColorKey bool
	alpha       uint8
	hasAlpha    bool
}

// shared is the state common to a root surface and its subsurfaces.
type shared struct {
	id uint64

	// mu serialises every operation on the pixels and settings.
	mu sync.Mutex

	// locks counts Lock calls; operations wait on unlocked while it is
	// positive.
	lockMu   sync.Mutex
	unlocked *sync.Cond
	locks    int
}

func newShared() *shared {
	sh := &shared{id: surfaceIDs.Add(1)}
	sh.unlocked = sync.NewCond(&sh.lockMu)
	return sh
}

// held reports whether a lock scope is open.
func (sh *shared) held() bool {
	sh.lockMu.Lock()
	defer sh.lockMu.Unlock()
	return sh.locks > 0
}

// waitUnlocked blocks until the lock count drops to zero.
func (sh *shared) waitUnlocked() {
	sh.lockMu.Lock()
	for sh.locks > 0 {
		sh.unlocked.Wait()
	}
	sh.lockMu.Unlock()
}

var surfaceIDs atomic.Uint64

// NewSurface creates a zero-filled w x h surface. Without format options
// it uses the native format of its driver.
func NewSurface(w, h int, opts ...SurfaceOption) (*Surface, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}

	o := surfaceOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.driver == nil {
		d, err := DefaultDriver()
		if err != nil {
			return nil, err
		}
		o.driver = d
	}

	f, err := o.resolveFormat()
	if err != nil {
		return nil, err
	}
	return newSurface(w, h, f, o.driver)
}

func newSurface(w, h int, f *PixelFormat, d Driver) (*Surface, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	data, pitch, err := d.Allocate(w, h, f)
	if err != nil {
		return nil, fmt.Errorf("pixsurf: allocate %dx%d: %w", w, h, err)
	}
	buf, err := image.FromRaw(data, w, h, f.codec(), pitch)
	if err != nil {
		return nil, fmt.Errorf("pixsurf: driver %s returned unusable memory: %w", d.Name(), err)
	}

	s := &Surface{
		shared: newShared(),
		buf:    buf,
		format: f.own(),
		driver: d,
		clips:  clip.NewClipStack(clip.NewRect(0, 0, w, h)),
		alpha:  255,
	}
	Logger().Debug("pixsurf: surface created",
		slog.Int("width", w), slog.Int("height", h),
		slog.String("format", f.String()), slog.String("driver", d.Name()))
	return s, nil
}

// newLike creates an empty w x h surface with the format, driver,
// colorkey and alpha settings of s.
func (s *Surface) newLike(w, h int) (*Surface, error) {
	d, err := newSurface(w, h, s.format, s.driver)
	if err != nil {
		return nil, err
	}
	d.colorKey, d.hasColorKey = s.colorKey, s.hasColorKey
	d.alpha, d.hasAlpha = s.alpha, s.hasAlpha
	return d, nil
}

// acquire takes the access mutex of s once no lock scope is open and
// returns its release.
func (s *Surface) acquire() func() {
	sh := s.shared
	for {
		sh.mu.Lock()
		if !sh.held() {
			return sh.mu.Unlock
		}
		sh.mu.Unlock()
		sh.waitUnlocked()
	}
}

// acquirePair is acquire for two surfaces, taking the mutexes in a fixed
// order.
func acquirePair(a, b *Surface) func() {
	if a.shared == b.shared {
		return a.acquire()
	}
	first, second := a.shared, b.shared
	if first.id > second.id {
		first, second = second, first
	}
	for {
		first.mu.Lock()
		second.mu.Lock()
		blocker := first
		if !blocker.held() {
			blocker = second
			if !blocker.held() {
				return func() {
					second.mu.Unlock()
					first.mu.Unlock()
				}
			}
		}
		second.mu.Unlock()
		first.mu.Unlock()
		blocker.waitUnlocked()
	}
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.buf.Width() }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.buf.Height() }

// Size returns the width and height in pixels.
func (s *Surface) Size() (int, int) { return s.buf.Width(), s.buf.Height() }

// Bounds returns the surface rectangle at the origin.
func (s *Surface) Bounds() Rect { return Rect{W: s.buf.Width(), H: s.buf.Height()} }

// Pitch returns the number of bytes between the starts of two rows.
func (s *Surface) Pitch() int { return s.buf.Stride() }

// Format returns the pixel format.
func (s *Surface) Format() *PixelFormat { return s.format }

// BitsPerPixel returns the bit depth.
func (s *Surface) BitsPerPixel() int { return s.format.BitsPerPixel() }

// BytesPerPixel returns the storage size of one pixel.
func (s *Surface) BytesPerPixel() int { return s.format.BytesPerPixel() }

// Driver returns the driver that allocated the surface memory.
func (s *Surface) Driver() Driver { return s.driver }

// Subsurface returns a surface that shares the pixels of r. The
// rectangle must lie inside s. The subsurface inherits the format,
// colorkey and alpha settings; its clip is its whole area.
func (s *Surface) Subsurface(r Rect) (*Surface, error) {
	defer s.acquire()()

	buf, err := s.buf.Sub(r.X, r.Y, r.W, r.H)
	if err != nil {
		return nil, fmt.Errorf("%w: subsurface %v of %dx%d", ErrOutOfBounds, r, s.Width(), s.Height())
	}
	return &Surface{
		shared:      s.shared,
		parent:      s,
		offset:      r.TopLeft(),
		buf:         buf,
		format:      s.format,
		driver:      s.driver,
		clips:       clip.NewClipStack(clip.NewRect(0, 0, r.W, r.H)),
		colorKey:    s.colorKey,
		hasColorKey: s.hasColorKey,
		alpha:       s.alpha,
		hasAlpha:    s.hasAlpha,
	}, nil
}

// Parent returns the surface s was cut from, or nil.
func (s *Surface) Parent() *Surface { return s.parent }

// AbsParent returns the root surface, which is s itself when s is not a
// subsurface.
func (s *Surface) AbsParent() *Surface {
	for s.parent != nil {
		s = s.parent
	}
	return s
}

// Offset returns the position of s within its parent.
func (s *Surface) Offset() Point { return s.offset }

// AbsOffset returns the position of s within its root surface.
func (s *Surface) AbsOffset() Point {
	var p Point
	for ; s.parent != nil; s = s.parent {
		p = p.Add(s.offset)
	}
	return p
}

// Clip returns the clip rectangle.
func (s *Surface) Clip() Rect {
	defer s.acquire()()
	return fromClip(s.clips.Bounds())
}

// SetClip sets the clip rectangle to r intersected with the surface.
func (s *Surface) SetClip(r Rect) {
	defer s.acquire()()
	s.clips.Set(toClip(s.Bounds().Clip(r)))
}

// ResetClip makes the whole surface drawable and forgets pushed clips.
func (s *Surface) ResetClip() {
	defer s.acquire()()
	s.clips.Reset(toClip(s.Bounds()))
}

// PushClip saves the clip rectangle and narrows it to its intersection
// with r.
func (s *Surface) PushClip(r Rect) {
	defer s.acquire()()
	s.clips.PushRect(toClip(r))
}

// PopClip restores the clip rectangle saved by the last PushClip. It
// reports false when nothing was pushed.
func (s *Surface) PopClip() bool {
	defer s.acquire()()
	return s.clips.Pop()
}

func (s *Surface) clipRect() clip.Rect {
	return s.clips.Bounds()
}

// SetColorKey makes pixels equal to c transparent when s is blitted. Nil
// disables the colorkey.
func (s *Surface) SetColorKey(c *Color) {
	defer s.acquire()()
	if c == nil {
		s.hasColorKey = false
		s.colorKey = 0
		return
	}
	s.hasColorKey = true
	s.colorKey = s.format.Map(*c)
}

// ColorKey returns the colorkey and whether one is set.
func (s *Surface) ColorKey() (Color, bool) {
	defer s.acquire()()
	if !s.hasColorKey {
		return Color{}, false
	}
	return s.format.Unmap(s.colorKey), true
}

// SetAlpha sets a surface-wide alpha applied when s is blitted. Nil
// disables it.
func (s *Surface) SetAlpha(a *uint8) {
	defer s.acquire()()
	if a == nil {
		s.hasAlpha = false
		s.alpha = 255
		return
	}
	s.hasAlpha = true
	s.alpha = *a
}

// Alpha returns the surface alpha and whether one is set.
func (s *Surface) Alpha() (uint8, bool) {
	defer s.acquire()()
	return s.alpha, s.hasAlpha
}

// SetPalette replaces the palette entries of an indexed surface starting
// at index 0.
func (s *Surface) SetPalette(colors []Color) error {
	return s.SetPaletteAt(0, colors)
}

// SetPaletteAt replaces palette entries starting at index first.
func (s *Surface) SetPaletteAt(first int, colors []Color) error {
	p := s.format.Palette()
	if p == nil {
		return fmt.Errorf("%w: %v has no palette", ErrUnsupportedFormat, s.format)
	}
	return p.SetColors(first, colors)
}

// PaletteAt returns palette entry i of an indexed surface.
func (s *Surface) PaletteAt(i int) (Color, error) {
	p := s.format.Palette()
	if p == nil {
		return Color{}, fmt.Errorf("%w: %v has no palette", ErrUnsupportedFormat, s.format)
	}
	return p.At(i)
}

// Copy returns a new surface with the same pixels and settings.
func (s *Surface) Copy() (*Surface, error) {
	defer s.acquire()()
	d, err := s.newLike(s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	d.buf.CopyRows(s.buf)
	d.clips.Set(s.clipRect())
	return d, nil
}

// Convert returns a copy of s in format f. A colorkey is converted to the
// new format; the surface alpha is kept.
func (s *Surface) Convert(f *PixelFormat) (*Surface, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil format", ErrUnsupportedFormat)
	}
	defer s.acquire()()
	return s.convert(f)
}

// ConvertAlpha returns a copy of s in FormatARGB8888.
func (s *Surface) ConvertAlpha() (*Surface, error) {
	defer s.acquire()()
	return s.convert(FormatARGB8888)
}

func (s *Surface) convert(f *PixelFormat) (*Surface, error) {
	d, err := newSurface(s.Width(), s.Height(), f, s.driver)
	if err != nil {
		return nil, err
	}
	f = d.format
	Logger().Debug("pixsurf: convert", slog.String("from", s.format.String()), slog.String("to", f.String()))

	if s.format.Equal(f) {
		d.buf.CopyRows(s.buf)
	} else {
		for y := range s.Height() {
			for x := range s.Width() {
				d.buf.Put(x, y, f.Map(s.format.Unmap(s.buf.At(x, y))))
			}
		}
	}
	if s.hasColorKey {
		d.hasColorKey = true
		d.colorKey = f.Map(s.format.Unmap(s.colorKey))
	}
	d.alpha, d.hasAlpha = s.alpha, s.hasAlpha
	return d, nil
}
