package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an opaque 8-bit colour triple. It is the only colour type used by
// game state; string formatting belongs to the renderers.
type RGB struct {
	R, G, B uint8
}

// Common colours.
var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Paddle = RGB{0x00, 0xDD, 0x00}
)

// HSV converts a hue in degrees and saturation/value in [0, 1] to RGB.
func HSV(h, s, v float64) RGB {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hex returns the colour as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Fade moves the colour toward black by amount (0 keeps it, 1 yields black).
// A dim colour that rounding can no longer darken becomes black.
func (c RGB) Fade(amount float64) RGB {
	if amount <= 0 {
		return c
	}
	if amount >= 1 {
		return Black
	}
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := src.BlendRgb(colorful.Color{}, amount).Clamped().RGB255()
	out := RGB{R: r, G: g, B: b}
	if out == c {
		// Rounding stalled short of black
		return Black
	}
	return out
}

// IsBlack reports whether all channels are zero.
func (c RGB) IsBlack() bool {
	return c == Black
}
