package pixsurf

import (
	"fmt"
	"sync"
)

// MaxPaletteSize is the number of entries an 8-bit index can address.
const MaxPaletteSize = 256

// Palette is an ordered list of colors used by indexed formats. A surface
// shares its palette with its subsurfaces only; palettes are safe for
// concurrent use.
type Palette struct {
	mu     sync.RWMutex
	colors []Color
}

// NewPalette creates a palette from at most MaxPaletteSize colors.
func NewPalette(colors ...Color) (*Palette, error) {
	if len(colors) > MaxPaletteSize {
		return nil, fmt.Errorf("%w: %d palette entries", ErrInvalidArgument, len(colors))
	}
	return &Palette{colors: append([]Color(nil), colors...)}, nil
}

// DefaultPalette returns a new 256 entry palette with 3 bits of red, 3 of
// green and 2 of blue per index, laid out as RRRGGGBB.
func DefaultPalette() *Palette {
	colors := make([]Color, MaxPaletteSize)
	for i := range colors {
		colors[i] = Color{
			R: expand(uint32(i>>5)&7, 3),
			G: expand(uint32(i>>2)&7, 3),
			B: expand(uint32(i)&3, 2),
			A: 255,
		}
	}
	return &Palette{colors: colors}
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.colors)
}

// Colors returns a copy of the entries.
func (p *Palette) Colors() []Color {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Color(nil), p.colors...)
}

// At returns entry i.
func (p *Palette) At(i int) (Color, error) {
	c, ok := p.at(i)
	if !ok {
		return Color{}, fmt.Errorf("%w: palette index %d", ErrOutOfBounds, i)
	}
	return c, nil
}

func (p *Palette) at(i int) (Color, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if i < 0 || i >= len(p.colors) {
		return Color{}, false
	}
	return p.colors[i], true
}

// Set replaces entry i.
func (p *Palette) Set(i int, c Color) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.colors) {
		return fmt.Errorf("%w: palette index %d", ErrOutOfBounds, i)
	}
	p.colors[i] = c
	return nil
}

// SetColors replaces the entries starting at index first, growing the
// palette up to MaxPaletteSize entries when needed.
func (p *Palette) SetColors(first int, colors []Color) error {
	if first < 0 || first+len(colors) > MaxPaletteSize {
		return fmt.Errorf("%w: palette range %d..%d", ErrOutOfBounds, first, first+len(colors))
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := first + len(colors); n > len(p.colors) {
		p.colors = append(p.colors, make([]Color, n-len(p.colors))...)
	}
	copy(p.colors[first:], colors)
	return nil
}

// Nearest returns the index of the entry closest to c by squared RGB
// distance. Ties go to the lower index; an empty palette gives 0.
func (p *Palette) Nearest(c Color) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	best, bestDist := 0, -1
	for i, e := range p.colors {
		dr := int(e.R) - int(c.R)
		dg := int(e.G) - int(c.G)
		db := int(e.B) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return best
}
