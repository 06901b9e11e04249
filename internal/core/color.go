package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a straight (non-premultiplied) RGBA color.
// The zero value means "unset" and renders with the terminal default.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// ParseHexColor parses "#rrggbb" or "#rgb".
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("core: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustHex is ParseHexColor for compile-time constants.
func MustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

// WithAlpha returns the color with alpha set from a [0, 1] fraction.
func (c Color) WithAlpha(a float64) Color {
	c.A = uint8(Clamp(a, 0, 1)*255 + 0.5)
	return c
}

// Over composites c on top of dst and returns an opaque result.
func (c Color) Over(dst Color) Color {
	if c.A == 255 || dst.IsZero() {
		c.A = 255
		return c
	}
	a := float64(c.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return RGB(mix(c.R, dst.R), mix(c.G, dst.G), mix(c.B, dst.B))
}

// Hex returns the "#rrggbb" form, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors for the shell.
var (
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(239, 68, 68)
	ColorGray  = RGB(156, 163, 175)
)
