package layer

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from integer channels, clamping each to [0, 255].
func RGB(r, g, b int) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Inverted returns the colour with every channel replaced by 255 minus itself.
func (c Color) Inverted() Color {
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// RGBA returns c as an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex formats c as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" (or the short "#rgb" form).
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// fromColorful truncates each channel to an integer rather than rounding.
func fromColorful(cf colorful.Color) Color {
	cf = cf.Clamped()
	return Color{
		R: uint8(cf.R * 255),
		G: uint8(cf.G * 255),
		B: uint8(cf.B * 255),
	}
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return uint8(v)
	}
}
