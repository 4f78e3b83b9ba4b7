package ppu

// OAMSize is the size of the object attribute memory, located
// at 0xFE00-0xFE9F and divided into 40 entries of 4 bytes each.
const OAMSize = 0xA0

// writeOAM stores value at the OAM offset, decodes it into the
// owning sprite and re-sorts the drawing order.
func (p *PPU) writeOAM(offset uint16, value uint8) {
	if offset >= OAMSize {
		return
	}
	p.oam[offset] = value
	p.sprites[offset>>2].update(offset, value)
	p.sortSprites()
}
