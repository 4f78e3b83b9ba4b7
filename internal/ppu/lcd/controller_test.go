package lcd

import "testing"

func TestController_ReadWrite(t *testing.T) {
	c := NewController()
	for v := 0; v < 256; v++ {
		c.Write(uint8(v))
		if c.Read() != uint8(v) {
			t.Fatalf("%02x: read back %02x", v, c.Read())
		}
	}
}

func TestController_Fields(t *testing.T) {
	c := NewController()
	c.Write(0x91)

	if !c.Enabled || !c.BackgroundEnabled || !c.UnsignedTileData {
		t.Errorf("expected lcd, background and unsigned tile data enabled")
	}
	if c.SpriteEnabled || c.WindowEnabled {
		t.Errorf("expected sprites and window disabled")
	}
	if c.BackgroundTileMapAddress != 0x1800 || c.SpriteSize != 8 {
		t.Errorf("unexpected map %04x / sprite size %d", c.BackgroundTileMapAddress, c.SpriteSize)
	}

	c.Write(0x0E)
	if c.BackgroundTileMapAddress != 0x1C00 || c.SpriteSize != 16 || !c.SpriteEnabled {
		t.Errorf("unexpected decode of 0x0E: %+v", c)
	}
}

func TestController_TileIndex(t *testing.T) {
	c := NewController()
	c.Write(0x10)
	if c.TileIndex(0x05) != 0x05 || c.TileIndex(0xFF) != 0xFF {
		t.Errorf("unsigned addressing broken")
	}

	c.Write(0x00)
	tests := map[uint8]uint16{0x00: 256, 0x7F: 383, 0x80: 128, 0xFF: 255}
	for entry, want := range tests {
		if got := c.TileIndex(entry); got != want {
			t.Errorf("signed %02x: got %d want %d", entry, got, want)
		}
	}
}

func TestStatus(t *testing.T) {
	if Status(VRAM, true) != 0x07 {
		t.Errorf("expected 0x07, got %02x", Status(VRAM, true))
	}
	if Status(HBlank, false) != 0x00 {
		t.Errorf("expected 0x00, got %02x", Status(HBlank, false))
	}
	if OAMCycles+VRAMCycles+HBlankCycles != LineCycles {
		t.Errorf("mode cycles do not add up to a scanline")
	}
}
