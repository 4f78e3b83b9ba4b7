// Package palette maps the 2-bit colour indices produced by
// the PPU to output shades, and shades to RGB colours for
// display.
package palette

// The four output shades of the DMG, lightest first.
const (
	White     uint8 = 0xFF
	LightGrey uint8 = 0xC0
	DarkGrey  uint8 = 0x60
	Black     uint8 = 0x00
)

// Shades holds the output shades, indexed by the 2-bit
// value of a palette sub-field.
var Shades = [4]uint8{White, LightGrey, DarkGrey, Black}

// Palette maps a 2-bit colour index to an output shade.
type Palette [4]uint8

// ByteToPalette decodes a palette register, where bits 1-0
// give the shade of colour 0, bits 3-2 colour 1, and so on.
func ByteToPalette(b byte) Palette {
	var p Palette
	for i := 0; i < 4; i++ {
		p[i] = Shades[(b>>(i*2))&0x03]
	}
	return p
}

// Shade returns the output shade of colour index i.
func (p Palette) Shade(i uint8) uint8 {
	return p[i&0x03]
}

const (
	// Greyscale is the default greyscale scheme.
	Greyscale = iota
	// Green is the green scheme which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
	// Red is a red scheme.
	Red
	// Yellow is a yellow scheme.
	Yellow
)

// Scheme holds the RGB colour of each of the four shades,
// lightest first.
type Scheme [4][3]uint8

// Schemes is a list of all available schemes.
var Schemes = []Scheme{
	Greyscale: {
		{0xFF, 0xFF, 0xFF},
		{0xC0, 0xC0, 0xC0},
		{0x60, 0x60, 0x60},
		{0x00, 0x00, 0x00},
	},
	Green: {
		{0x9B, 0xBC, 0x0F},
		{0x8B, 0xAC, 0x0F},
		{0x30, 0x62, 0x30},
		{0x0F, 0x38, 0x0F},
	},
	Red: {
		{0xFF, 0x00, 0x00},
		{0xCC, 0x00, 0x00},
		{0x77, 0x00, 0x00},
		{0x00, 0x00, 0x00},
	},
	Yellow: {
		{0xFF, 0xFF, 0x00},
		{0xCC, 0xCC, 0x00},
		{0x77, 0x77, 0x00},
		{0x00, 0x00, 0x00},
	},
}

// RGB returns the colour of an output shade in the scheme.
func (s Scheme) RGB(shade uint8) [3]uint8 {
	switch {
	case shade > LightGrey:
		return s[0]
	case shade > DarkGrey:
		return s[1]
	case shade > Black:
		return s[2]
	}
	return s[3]
}
