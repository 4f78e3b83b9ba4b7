package joypad

import (
	"testing"

	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
)

func TestState_Columns(t *testing.T) {
	irq := interrupts.NewService()
	s := New(irq)

	s.Press(ButtonStart)
	s.Press(ButtonLeft)

	s.Write(types.P1, SelectButtons)
	if got := s.Read(types.P1); got != 0x07 {
		t.Errorf("buttons: got %04b want 0111", got)
	}
	s.Write(types.P1, SelectDirections)
	if got := s.Read(types.P1); got != 0x0D {
		t.Errorf("directions: got %04b want 1101", got)
	}
	s.Write(types.P1, 0x00)
	if got := s.Read(types.P1); got != 0 {
		t.Errorf("no column selected: got %04b want 0", got)
	}

	if irq.Flag&interrupts.JoypadFlag == 0 {
		t.Errorf("expected joypad interrupt")
	}

	s.Release(ButtonStart)
	s.Write(types.P1, SelectButtons)
	if got := s.Read(types.P1); got != 0x0F {
		t.Errorf("after release: got %04b want 1111", got)
	}
}
