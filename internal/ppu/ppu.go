// Package ppu implements the timing and rendering of the
// Game Boy's (P)ixel (P)rocessing (U)nit. Every scanline is
// rendered in one go at the end of pixel transfer.
package ppu

import (
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/ppu/lcd"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"github.com/thelolagemann/dmgboy/internal/types"
)

const (
	// VRAMSize is the size of video RAM, mapped at 0x8000-0x9FFF.
	VRAMSize = 0x2000

	// lastVisibleLine is the last scanline drawn to the screen.
	lastVisibleLine = ScreenHeight - 1
	// lastLine is the last scanline of VBlank.
	lastLine = 153
	// FrameCycles is the number of cycles in one frame.
	FrameCycles = (lastLine + 1) * lcd.LineCycles
)

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit.
type PPU struct {
	Controller *lcd.Controller

	mode  lcd.Mode
	ly    uint8
	clock uint16 // cycles spent in the current mode

	scy, scx uint8
	wy, wx   uint8
	lyc      uint8
	statInt  uint8 // STAT interrupt enables, bits 3-6

	bgp, obp0, obp1 uint8 // raw palette registers
	bgPalette       palette.Palette
	objPalette      [2]palette.Palette
	dmaSource       uint8

	vRAM    [VRAMSize]uint8
	oam     [OAMSize]uint8
	tiles   [TileCount]Tile
	sprites [40]Sprite
	order   [40]uint8

	bgIndex [ScreenWidth]uint8 // background colour index of each column on the current line
	frame   Frame

	irq  *interrupts.Service
	bus  Reader
	sink Sink
}

// New returns a new PPU, scanning OAM on line 0.
func New(irq *interrupts.Service) *PPU {
	p := &PPU{
		Controller: lcd.NewController(),
		mode:       lcd.OAM,
		irq:        irq,
	}
	p.bgPalette = palette.ByteToPalette(0)
	p.objPalette[0] = palette.ByteToPalette(0)
	p.objPalette[1] = palette.ByteToPalette(0)
	for i := range p.sprites {
		p.sprites[i] = Sprite{Y: -16, X: -8, Index: uint8(i)}
	}
	p.sortSprites()

	return p
}

// AttachSink sets the sink completed frames are flushed to.
func (p *PPU) AttachSink(s Sink) {
	p.sink = s
}

// Mode returns the current mode.
func (p *PPU) Mode() lcd.Mode {
	return p.mode
}

// Line returns the current scanline.
func (p *PPU) Line() uint8 {
	return p.ly
}

// Frame returns the frame being drawn.
func (p *PPU) Frame() *Frame {
	return &p.frame
}

// Step advances the mode state machine by the given number of
// cycles, rendering each scanline as its pixel transfer ends.
func (p *PPU) Step(cycles uint16) {
	p.clock += cycles
	for {
		switch p.mode {
		case lcd.OAM:
			if p.clock < lcd.OAMCycles {
				return
			}
			p.clock -= lcd.OAMCycles
			p.setMode(lcd.VRAM)
		case lcd.VRAM:
			if p.clock < lcd.VRAMCycles {
				return
			}
			p.clock -= lcd.VRAMCycles
			p.setMode(lcd.HBlank)
			if p.Controller.Enabled {
				p.renderBackground()
				p.renderSprites()
				p.renderWindow()
			}
		case lcd.HBlank:
			if p.clock < lcd.HBlankCycles {
				return
			}
			p.clock -= lcd.HBlankCycles
			if p.ly == lastVisibleLine {
				p.setMode(lcd.VBlank)
				if p.sink != nil {
					p.sink.Blit(&p.frame)
				}
				p.irq.Request(interrupts.VBlankFlag)
			} else {
				p.setMode(lcd.OAM)
			}
			p.setLine(p.ly + 1)
		case lcd.VBlank:
			if p.clock < lcd.LineCycles {
				return
			}
			p.clock -= lcd.LineCycles
			if p.ly == lastLine {
				p.setLine(0)
				p.setMode(lcd.OAM)
			} else {
				p.setLine(p.ly + 1)
			}
		}
	}
}

// setMode switches mode, requesting an LCD interrupt when the
// matching STAT enable bit is set.
func (p *PPU) setMode(m lcd.Mode) {
	p.mode = m
	var enable uint8
	switch m {
	case lcd.HBlank:
		enable = types.Bit3
	case lcd.VBlank:
		enable = types.Bit4
	case lcd.OAM:
		enable = types.Bit5
	}
	if p.statInt&enable != 0 {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// setLine moves to scanline ly, requesting an LCD interrupt on
// LY=LYC when enabled.
func (p *PPU) setLine(ly uint8) {
	p.ly = ly
	if p.ly == p.lyc && p.statInt&types.Bit6 != 0 {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// renderBackground draws the background row of the current
// scanline, recording the colour index of every column.
func (p *PPU) renderBackground() {
	row := &p.frame[p.ly]
	if !p.Controller.BackgroundEnabled {
		for x := range row {
			row[x] = palette.White
			p.bgIndex[x] = 0
		}
		return
	}

	line := uint16(p.ly+p.scy) & 0xFF
	mapBase := p.Controller.BackgroundTileMapAddress + (line>>3)<<5
	y := line & 7
	x := uint16(p.scx & 7)
	t := uint16(p.scx>>3) & 31

	pixels := p.tiles[p.Controller.TileIndex(p.vRAM[mapBase+t])][y]
	for i := 0; i < ScreenWidth; i++ {
		colour := pixels[x]
		p.bgIndex[i] = colour
		row[i] = p.bgPalette.Shade(colour)

		x++
		if x == 8 {
			x = 0
			t = (t + 1) & 31
			pixels = p.tiles[p.Controller.TileIndex(p.vRAM[mapBase+t])][y]
		}
	}
}

// renderWindow is called after the sprites of each line and
// currently draws nothing.
// TODO: draw the window from Controller.WindowTileMapAddress at
// WY/WX, and move the call before renderSprites when it draws.
func (p *PPU) renderWindow() {}

// Read returns the value of video RAM, OAM or the LCD register
// at address.
func (p *PPU) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return p.vRAM[address&0x1FFF]
	case address >= 0xFE00 && address <= 0xFE9F:
		return p.oam[address-0xFE00]
	}

	switch address {
	case types.LCDC:
		return p.Controller.Read()
	case types.STAT:
		return p.statInt | lcd.Status(p.mode, p.ly == p.lyc)
	case types.SCY:
		return p.scy
	case types.SCX:
		return p.scx
	case types.LY:
		return p.ly
	case types.LYC:
		return p.lyc
	case types.DMA:
		return p.dmaSource
	case types.BGP:
		return p.bgp
	case types.OBP0:
		return p.obp0
	case types.OBP1:
		return p.obp1
	case types.WY:
		return p.wy
	case types.WX:
		return p.wx
	}
	return 0
}

// Write writes value to video RAM, OAM or the LCD register at
// address. Writes to video RAM rebuild the tile cache and writes
// to OAM update the sprite table before returning.
func (p *PPU) Write(address uint16, value uint8) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		offset := address & 0x1FFF
		p.vRAM[offset] = value
		p.updateTile(offset)
		return
	case address >= 0xFE00 && address <= 0xFE9F:
		p.writeOAM(address-0xFE00, value)
		return
	}

	switch address {
	case types.LCDC:
		p.Controller.Write(value)
	case types.STAT:
		p.statInt = value & 0x78
	case types.SCY:
		p.scy = value
	case types.SCX:
		p.scx = value
	case types.LYC:
		p.lyc = value
	case types.DMA:
		p.dma(value)
	case types.BGP:
		p.bgp = value
		p.bgPalette = palette.ByteToPalette(value)
	case types.OBP0:
		p.obp0 = value
		p.objPalette[0] = palette.ByteToPalette(value)
	case types.OBP1:
		p.obp1 = value
		p.objPalette[1] = palette.ByteToPalette(value)
	case types.WY:
		p.wy = value
	case types.WX:
		p.wx = value
	}
}
