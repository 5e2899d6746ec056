package colors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Charcoal = Color{0.2, 0.22, 0.25, 1}
	Teal     = Color{0.16, 0.6, 0.62, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Luminance is the relative luminance of the RGB channels (Rec. 709 weights).
func (c Color) Luminance() float32 {
	return 0.2126*c[0] + 0.7152*c[1] + 0.0722*c[2]
}

// Highlighted returns the hover variant: bright colours get darker, the rest
// move towards white.
func (c Color) Highlighted() Color {
	l := c.Luminance()
	switch {
	case l > 0.8:
		return c.offset(-0.1)
	case l < 0.2:
		return c.offset(0.15)
	default:
		return c.mix(White, 0.2)
	}
}

// Clicked returns the pressed variant. It is always further from c than
// Highlighted.
func (c Color) Clicked() Color {
	l := c.Luminance()
	switch {
	case l > 0.8:
		return c.offset(-0.25)
	case l < 0.2:
		return c.offset(0.3)
	default:
		return c.scale(0.7)
	}
}

func (c Color) offset(d float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp01(c[i] + d)
	}
	return c
}

func (c Color) scale(f float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp01(c[i] * f)
	}
	return c
}

func (c Color) mix(o Color, t float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = clamp01(c[i] + (o[i]-c[i])*t)
	}
	return c
}

func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Max(0, math32.Min(1, v))
}

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func Hex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colors: invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: invalid hex colour %q: %w", s, err)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// Hex formats c as "#rrggbbaa".
func (c Color) Hex() string {
	b := func(f float32) uint8 { return uint8(math32.Floor(clamp01(f)*255 + 0.5)) }
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c[0]), b(c[1]), b(c[2]), b(c[3]))
}

// HSV builds an opaque colour from a hue in degrees and saturation/value in
// [0,1].
func HSV(h, s, v float32) Color {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, v = clamp01(s), clamp01(v)
	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float32
	switch int(h / 60) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{r + m, g + m, b + m, 1}
}
