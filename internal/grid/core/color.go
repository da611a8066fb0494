package core

import "fmt"

// Color represents an RGBA color value. Alpha 255 is opaque.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	ColorBlack       = Color{0, 0, 0, 255}
	ColorWhite       = Color{255, 255, 255, 255}
	ColorTransparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// IsTransparent returns true if the color is fully transparent.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// IsZero returns true for the zero value, which callers treat as "unset".
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex returns the #RRGGBB representation, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns a readable representation for debugging and recorder output.
func (c Color) String() string {
	if c.A == 255 {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float64(c.A)/255)
}
