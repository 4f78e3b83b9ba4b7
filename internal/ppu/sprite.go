package ppu

import "sort"

// MaxSpritesPerLine is the number of sprites drawn on a
// single scanline; later sprites are skipped.
const MaxSpritesPerLine = 10

// Sprite holds the decoded attributes of one OAM entry, with
// the position already converted to screen coordinates.
type Sprite struct {
	Y, X    int16 // top left corner on screen
	Tile    uint8
	Palette uint8 // 0 = OBP0, 1 = OBP1

	// Bit 7 - draw over the background regardless of its colour
	Priority bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	FlipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	FlipX bool

	// Index is the position of the entry in OAM.
	Index uint8
}

// update decodes the OAM byte at offset into the matching
// sprite field.
func (s *Sprite) update(offset uint16, value uint8) {
	switch offset & 0x03 {
	case 0:
		s.Y = int16(value) - 16
	case 1:
		s.X = int16(value) - 8
	case 2:
		s.Tile = value
	case 3:
		s.Palette = (value >> 4) & 1
		s.FlipX = value&0x20 != 0
		s.FlipY = value&0x40 != 0
		s.Priority = value&0x80 != 0
	}
}

// sortSprites rebuilds the drawing order: ascending X, with
// the lower OAM index first when two sprites share an X.
func (p *PPU) sortSprites() {
	for i := range p.order {
		p.order[i] = uint8(i)
	}
	sort.SliceStable(p.order[:], func(a, b int) bool {
		return p.sprites[p.order[a]].X < p.sprites[p.order[b]].X
	})
}

// Sprites returns the sprites in drawing order.
func (p *PPU) Sprites() []Sprite {
	s := make([]Sprite, 0, len(p.sprites))
	for _, i := range p.order {
		s = append(s, p.sprites[i])
	}
	return s
}

// renderSprites draws the sprites covering the current
// scanline. A column drawn by one sprite is never drawn over
// by a later one in the drawing order.
func (p *PPU) renderSprites() {
	if !p.Controller.SpriteEnabled {
		return
	}

	height := int16(p.Controller.SpriteSize)
	line := int16(p.ly)
	var claimed [ScreenWidth]bool
	drawn := 0

	for _, i := range p.order {
		s := &p.sprites[i]
		if line < s.Y || line >= s.Y+height {
			continue
		}

		row := line - s.Y
		if s.FlipY {
			row = height - 1 - row
		}
		tile := uint16(s.Tile)
		if height == 16 {
			tile &= 0xFE
		}
		tile += uint16(row >> 3)
		pixels := p.tiles[tile][row&7]

		pal := p.objPalette[s.Palette]
		for x := int16(0); x < 8; x++ {
			px := s.X + x
			if px < 0 || px >= ScreenWidth {
				continue
			}
			col := x
			if s.FlipX {
				col = 7 - x
			}
			colour := pixels[col]
			if colour == 0 || claimed[px] {
				continue
			}
			claimed[px] = true
			if s.Priority || p.bgIndex[px] == 0 {
				p.frame[p.ly][px] = pal.Shade(colour)
			}
		}

		drawn++
		if drawn == MaxSpritesPerLine {
			break
		}
	}
}
