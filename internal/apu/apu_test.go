package apu

import "testing"

func TestAPU_ReadWrite(t *testing.T) {
	a := NewAPU()
	for addr := uint16(0xFF10); addr <= 0xFF3F; addr++ {
		a.Write(addr, uint8(addr))
	}
	a.Step(4096)
	for addr := uint16(0xFF10); addr <= 0xFF3F; addr++ {
		if got := a.Read(addr); got != uint8(addr) {
			t.Errorf("%04x: got %02x want %02x", addr, got, uint8(addr))
		}
	}

	a.Write(0xFF40, 0x12)
	if a.Read(0xFF40) != 0 {
		t.Errorf("expected out of range read to return 0")
	}
}
