package ppu

// TileCount is the number of tiles addressable in the 0x1800
// bytes of tile data at the start of video RAM.
const TileCount = 384

// Tile represents a decoded tile. Each tile has a size of 8x8
// pixels, each holding a 2-bit colour index, indexed [row][column].
type Tile [8][8]uint8

// decodeRow decodes one 8-pixel row from its two bitplanes, with
// the leftmost pixel in bit 7 of each byte.
func decodeRow(lo, hi uint8) [8]uint8 {
	var row [8]uint8
	for x := 0; x < 8; x++ {
		bit := uint(7 - x)
		row[x] = (lo>>bit)&1 | ((hi>>bit)&1)<<1
	}
	return row
}

// updateTile rebuilds the tile cache row encoded by the byte
// at the given video RAM offset.
func (p *PPU) updateTile(offset uint16) {
	if offset >= TileCount*16 {
		return // tile maps
	}
	offset &^= 1
	tile := (offset >> 4) & 0x1FF
	y := (offset >> 1) & 7
	p.tiles[tile][y] = decodeRow(p.vRAM[offset], p.vRAM[offset+1])
}

// Tile returns the decoded tile at index i.
func (p *PPU) Tile(i uint16) Tile {
	return p.tiles[i%TileCount]
}
