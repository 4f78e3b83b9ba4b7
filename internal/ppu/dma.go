package ppu

// Reader is the bus view the DMA transfer copies from.
type Reader interface {
	Read(address uint16) uint8
}

// AttachBus sets the bus the DMA transfer reads from.
func (p *PPU) AttachBus(bus Reader) {
	p.bus = bus
}

// dma copies OAMSize bytes starting at value << 8 into OAM,
// through the same path as a CPU write to OAM.
func (p *PPU) dma(value uint8) {
	p.dmaSource = value
	if p.bus == nil {
		return
	}
	source := uint16(value) << 8
	for i := uint16(0); i < OAMSize; i++ {
		p.writeOAM(i, p.bus.Read(source+i))
	}
}
