package pixsurf

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Color is a straight (non-premultiplied) RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// Frequently used colors.
var (
	ColorBlack       = Color{A: 255}
	ColorWhite       = Color{R: 255, G: 255, B: 255, A: 255}
	ColorTransparent = Color{}
)

// NewColor creates a Color from its channels.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ColorFromUint32 unpacks 0xRRGGBBAA.
func ColorFromUint32(v uint32) Color {
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// ColorFromSlice creates a Color from 3 or 4 channel values in 0..255.
// A missing alpha defaults to 255.
func ColorFromSlice(v []int) (Color, error) {
	if len(v) != 3 && len(v) != 4 {
		return Color{}, fmt.Errorf("%w: need 3 or 4 channels, got %d", ErrInvalidColor, len(v))
	}
	ch := [4]uint8{3: 255}
	for i, c := range v {
		if c < 0 || c > 255 {
			return Color{}, fmt.Errorf("%w: channel %d out of range: %d", ErrInvalidColor, i, c)
		}
		ch[i] = uint8(c)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// ParseColor parses a color name such as "cornflower blue", or a hex
// string of the form #RRGGBB, #RRGGBBAA, 0xRRGGBB or 0xRRGGBBAA. Names
// ignore case and spaces.
func ParseColor(s string) (Color, error) {
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s, s[1:])
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return parseHex(s, s[2:])
	}

	key := cases.Fold().String(strings.ReplaceAll(s, " ", ""))
	c, ok := colornames.Map[key]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

func parseHex(orig, digits string) (Color, error) {
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	if len(digits) == 6 {
		v = v<<8 | 0xff
	}
	return ColorFromUint32(uint32(v)), nil
}

// ToColor converts v into a Color. Accepted types are Color, color.Color,
// string (see ParseColor), int and uint32 (0xRRGGBBAA), and []int, [3]int
// or [4]int channel lists.
func ToColor(v any) (Color, error) {
	switch c := v.(type) {
	case Color:
		return c, nil
	case string:
		return ParseColor(c)
	case uint32:
		return ColorFromUint32(c), nil
	case int:
		if c < 0 || int64(c) > 0xffffffff {
			return Color{}, fmt.Errorf("%w: integer out of range: %d", ErrInvalidColor, c)
		}
		return ColorFromUint32(uint32(c)), nil
	case []int:
		return ColorFromSlice(c)
	case [3]int:
		return ColorFromSlice(c[:])
	case [4]int:
		return ColorFromSlice(c[:])
	case color.Color:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return Color{R: n.R, G: n.G, B: n.B, A: n.A}, nil
	default:
		return Color{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidColor, v)
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Uint32 packs the color as 0xRRGGBBAA.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func (c Color) String() string {
	return fmt.Sprintf("Color(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Channel returns channel i, where 0..3 are R, G, B and A.
func (c Color) Channel(i int) (uint8, error) {
	switch i {
	case 0:
		return c.R, nil
	case 1:
		return c.G, nil
	case 2:
		return c.B, nil
	case 3:
		return c.A, nil
	}
	return 0, fmt.Errorf("%w: channel index %d", ErrOutOfBounds, i)
}

// SetChannel sets channel i, where 0..3 are R, G, B and A.
func (c *Color) SetChannel(i int, v uint8) error {
	switch i {
	case 0:
		c.R = v
	case 1:
		c.G = v
	case 2:
		c.B = v
	case 3:
		c.A = v
	default:
		return fmt.Errorf("%w: channel index %d", ErrOutOfBounds, i)
	}
	return nil
}

func (c Color) channels() [4]int {
	return [4]int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

func colorOf(ch [4]int) Color {
	return Color{R: clampChannel(ch[0]), G: clampChannel(ch[1]), B: clampChannel(ch[2]), A: clampChannel(ch[3])}
}

func (c Color) apply(o Color, op func(a, b int) int) Color {
	x, y := c.channels(), o.channels()
	var out [4]int
	for i := range out {
		out[i] = op(x[i], y[i])
	}
	return colorOf(out)
}

// Add returns the per-channel sum, clamped to 255.
func (c Color) Add(o Color) Color {
	return c.apply(o, func(a, b int) int { return a + b })
}

// Sub returns the per-channel difference, clamped to 0.
func (c Color) Sub(o Color) Color {
	return c.apply(o, func(a, b int) int { return a - b })
}

// Mul returns the per-channel product, clamped to 255.
func (c Color) Mul(o Color) Color {
	return c.apply(o, func(a, b int) int { return a * b })
}

// Div returns the per-channel integer quotient. Division by zero gives 0.
func (c Color) Div(o Color) Color {
	return c.apply(o, func(a, b int) int {
		if b == 0 {
			return 0
		}
		return a / b
	})
}

// Mod returns the per-channel remainder. A zero divisor gives 0.
func (c Color) Mod(o Color) Color {
	return c.apply(o, func(a, b int) int {
		if b == 0 {
			return 0
		}
		return a % b
	})
}

// Normalize returns the channels scaled to 0..1.
func (c Color) Normalize() [4]float64 {
	return [4]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}
}

// Lerp interpolates from c towards o; t is clamped to 0..1.
func (c Color) Lerp(o Color, t float64) Color {
	t = min(max(t, 0), 1)
	x, y := c.channels(), o.channels()
	var out [4]int
	for i := range out {
		out[i] = int(float64(x[i]) + float64(y[i]-x[i])*t + 0.5)
	}
	return colorOf(out)
}

// PremulAlpha returns the color with R, G and B multiplied by alpha.
func (c Color) PremulAlpha() Color {
	a := int(c.A)
	return Color{
		R: uint8((int(c.R)*a + 127) / 255),
		G: uint8((int(c.G)*a + 127) / 255),
		B: uint8((int(c.B)*a + 127) / 255),
		A: c.A,
	}
}

// Grayscale returns the luma of c (ITU-R BT.601) in every color channel.
func (c Color) Grayscale() Color {
	y := clampChannel(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B) + 0.5)
	return Color{R: y, G: y, B: y, A: c.A}
}

// CorrectGamma raises each color channel, scaled to 0..1, to the power
// gamma. Alpha is kept.
func (c Color) CorrectGamma(gamma float64) Color {
	g := float32(gamma)
	f := func(v uint8) uint8 {
		return clampChannel(math32.Floor(math32.Pow(float32(v)/255, g)*255 + 0.5))
	}
	return Color{R: f(c.R), G: f(c.G), B: f(c.B), A: c.A}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cc colorful.Color, alpha float64) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: clampChannel(alpha*255/100 + 0.5)}
}

// HSVA returns hue in 0..360 and saturation, value and alpha in 0..100.
func (c Color) HSVA() (h, s, v, a float64) {
	h, s, v = c.colorful().Hsv()
	return h, s * 100, v * 100, float64(c.A) * 100 / 255
}

// SetHSVA sets the color from hue in 0..360 and saturation, value and
// alpha in 0..100.
func (c *Color) SetHSVA(h, s, v, a float64) error {
	if err := checkHueRanges(h, s, v, a); err != nil {
		return err
	}
	*c = fromColorful(colorful.Hsv(h, s/100, v/100), a)
	return nil
}

// HSLA returns hue in 0..360 and saturation, lightness and alpha in 0..100.
func (c Color) HSLA() (h, s, l, a float64) {
	h, s, l = c.colorful().Hsl()
	return h, s * 100, l * 100, float64(c.A) * 100 / 255
}

// SetHSLA sets the color from hue in 0..360 and saturation, lightness
// and alpha in 0..100.
func (c *Color) SetHSLA(h, s, l, a float64) error {
	if err := checkHueRanges(h, s, l, a); err != nil {
		return err
	}
	*c = fromColorful(colorful.Hsl(h, s/100, l/100), a)
	return nil
}

func checkHueRanges(h, x, y, a float64) error {
	if h < 0 || h > 360 || x < 0 || x > 100 || y < 0 || y > 100 || a < 0 || a > 100 {
		return fmt.Errorf("%w: hsv/hsl components out of range (%v, %v, %v, %v)", ErrInvalidColor, h, x, y, a)
	}
	return nil
}

// clampChannel converts v to a channel value, saturating at 0 and 255.
// Floating point values are truncated.
func clampChannel[T ~int | constraints.Float](v T) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
