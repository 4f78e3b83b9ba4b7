package interrupts

import (
	"testing"

	"github.com/thelolagemann/dmgboy/internal/types"
)

func TestService_Vector(t *testing.T) {
	s := NewService()
	s.Enable = VBlankFlag | TimerFlag
	s.Request(VBlankFlag)
	s.Request(TimerFlag)

	v, ok := s.Vector()
	if !ok || v != 0x40 {
		t.Fatalf("expected vblank vector 0x40, got %04x (%v)", v, ok)
	}
	if s.Flag != TimerFlag {
		t.Errorf("expected only timer flag to remain, got %08b", s.Flag)
	}

	v, ok = s.Vector()
	if !ok || v != 0x50 {
		t.Fatalf("expected timer vector 0x50, got %04x (%v)", v, ok)
	}

	if _, ok = s.Vector(); ok {
		t.Errorf("expected no pending interrupts")
	}
}

func TestService_VectorAll(t *testing.T) {
	for i := uint8(0); i < Count; i++ {
		s := &Service{Enable: 0x1F, Flag: 1 << i}
		v, ok := s.Vector()
		if !ok || v != uint16(0x40+8*i) {
			t.Errorf("bit %d: got vector %04x (%v)", i, v, ok)
		}
	}
}

func TestService_DisabledNotServiced(t *testing.T) {
	s := &Service{Enable: SerialFlag, Flag: JoypadFlag | types.Bit5}
	if _, ok := s.Vector(); ok {
		t.Errorf("serviced an interrupt that is not enabled")
	}
	if s.Flag != JoypadFlag|types.Bit5 {
		t.Errorf("flag register changed: %08b", s.Flag)
	}
}

func TestService_ReadWrite(t *testing.T) {
	s := NewService()
	s.Write(types.IF, 0x05)
	s.Write(types.IE, 0x1F)
	if s.Read(types.IF) != 0x05 || s.Read(types.IE) != 0x1F {
		t.Errorf("unexpected register values IF=%02x IE=%02x", s.Read(types.IF), s.Read(types.IE))
	}
}
