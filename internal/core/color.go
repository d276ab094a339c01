package core

import "fmt"

// Color is a 24-bit foreground color for a screen cell.
// The zero value is the terminal's default foreground.
type Color uint32

const colorSet Color = 1 << 24

// ColorDefault leaves the cell in the terminal's default foreground.
const ColorDefault Color = 0

// Interface colors shared by the platform and games.
var (
	ColorWhite = RGB(0xff, 0xff, 0xff)
	ColorGray  = RGB(0x88, 0x88, 0x88)
	ColorDim   = RGB(0x44, 0x44, 0x44)
	ColorRed   = RGB(0xff, 0x00, 0x00)
	ColorGold  = RGB(0xff, 0xd7, 0x00)
)

// RGB builds a truecolor value.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Scale darkens (or brightens) a color by the given factor.
func (c Color) Scale(f float64) Color {
	if c.IsDefault() {
		return c
	}
	r, g, b := c.Channels()
	return RGB(scaleChannel(r, f), scaleChannel(g, f), scaleChannel(b, f))
}

func scaleChannel(v uint8, f float64) uint8 {
	return uint8(ClampF(float64(v)*f, 0, 255))
}
