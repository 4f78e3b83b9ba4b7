// Package lcd decodes the LCD control register and holds the
// mode timings of the PPU.
package lcd

// Controller is the LCD controller. It is responsible for controlling various
// aspects of the LCD, such as enabling the background and window display.
//
// Its value is stored in the LCD Control Register (0xFF40) as follows:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG Display                     (0=Off, 1=On)
//
// Map addresses are offsets into video RAM.
type Controller struct {
	// Enabled is the LCD Enable bit.
	Enabled bool
	// WindowTileMapAddress is 0x1C00 when bit 6 is set,
	// 0x1800 otherwise.
	WindowTileMapAddress uint16
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// UnsignedTileData is the BG & Window Tile Data Select bit.
	// When set, tile indices 0-255 address tiles 0-255. When
	// reset, indices are signed around tile 256.
	UnsignedTileData bool
	// BackgroundTileMapAddress is 0x1C00 when bit 3 is set,
	// 0x1800 otherwise.
	BackgroundTileMapAddress uint16
	// SpriteSize is 8 or 16.
	SpriteSize uint8
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG Display bit.
	BackgroundEnabled bool
}

// NewController returns a new LCD controller holding the
// decoded value of 0x00.
func NewController() *Controller {
	c := &Controller{}
	c.Write(0)
	return c
}

// Write decodes value into the controller fields.
func (c *Controller) Write(value uint8) {
	c.Enabled = value&0x80 != 0
	c.WindowTileMapAddress = 0x1800
	if value&0x40 != 0 {
		c.WindowTileMapAddress = 0x1C00
	}
	c.WindowEnabled = value&0x20 != 0
	c.UnsignedTileData = value&0x10 != 0
	c.BackgroundTileMapAddress = 0x1800
	if value&0x08 != 0 {
		c.BackgroundTileMapAddress = 0x1C00
	}
	c.SpriteSize = 8
	if value&0x04 != 0 {
		c.SpriteSize = 16
	}
	c.SpriteEnabled = value&0x02 != 0
	c.BackgroundEnabled = value&0x01 != 0
}

// Read encodes the controller fields back into a byte.
func (c *Controller) Read() uint8 {
	var v uint8
	if c.Enabled {
		v |= 0x80
	}
	if c.WindowTileMapAddress == 0x1C00 {
		v |= 0x40
	}
	if c.WindowEnabled {
		v |= 0x20
	}
	if c.UnsignedTileData {
		v |= 0x10
	}
	if c.BackgroundTileMapAddress == 0x1C00 {
		v |= 0x08
	}
	if c.SpriteSize == 16 {
		v |= 0x04
	}
	if c.SpriteEnabled {
		v |= 0x02
	}
	if c.BackgroundEnabled {
		v |= 0x01
	}
	return v
}

// TileIndex resolves a tile map entry to an index into the
// 384 entry tile cache.
func (c *Controller) TileIndex(entry uint8) uint16 {
	if c.UnsignedTileData || entry >= 128 {
		return uint16(entry)
	}
	return 256 + uint16(entry)
}
