// Package cartridge provides the fixed, unbanked cartridge
// mapping of the DMG. The cartridge holds the game ROM
// visible at 0x0000 - 0x7FFF.
package cartridge

import "github.com/cespare/xxhash"

// Size is the size of the address window the cartridge
// ROM is mapped into.
const Size = 0x8000

// Patcher substitutes the values read from the cartridge, as a
// Game Genie does.
type Patcher interface {
	Read(address uint16, value uint8) uint8
}

// Cartridge represents a basic game cartridge, with no
// memory bank controller.
type Cartridge struct {
	rom    []byte
	header Header
	length int
	patch  Patcher
}

// NewCartridge returns a new Cartridge holding a copy of rom.
// Images shorter than the ROM window are padded with 0xFF, the
// value an empty socket reads as. Bytes past the window are
// kept, but are never addressable.
func NewCartridge(rom []byte) *Cartridge {
	size := len(rom)
	if size < Size {
		size = Size
	}
	c := &Cartridge{
		rom:    make([]byte, size),
		length: len(rom),
	}
	n := copy(c.rom, rom)
	for i := n; i < size; i++ {
		c.rom[i] = 0xFF
	}
	c.header = parseHeader(c.rom[0x100:0x150])
	c.header.fingerprint = xxhash.Sum64(rom)

	return c
}

// NewEmptyCartridge returns an empty cartridge.
func NewEmptyCartridge() *Cartridge {
	return NewCartridge(nil)
}

// Header returns the header parsed when the cartridge was
// created.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Len returns the length of the original ROM image.
func (c *Cartridge) Len() int {
	return c.length
}

// AttachPatcher routes every read through p.
func (c *Cartridge) AttachPatcher(p Patcher) {
	c.patch = p
}

// Read returns the value at the given address.
func (c *Cartridge) Read(address uint16) uint8 {
	v := c.rom[address&(Size-1)]
	if c.patch != nil {
		return c.patch.Read(address, v)
	}
	return v
}

// Write stores value at the given address, as a flash
// cartridge would.
func (c *Cartridge) Write(address uint16, value uint8) {
	c.rom[address&(Size-1)] = value
}
