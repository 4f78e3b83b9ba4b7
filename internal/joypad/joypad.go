// Package joypad provides an implementation of the Game Boy
// joypad. The joypad is used to read the state of the buttons
// and the direction keys.
package joypad

import (
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
)

// Button represents a physical button on the Game Boy.
type Button = uint8

const (
	// ButtonA is the A button.
	ButtonA Button = iota
	// ButtonB is the B button.
	ButtonB
	// ButtonSelect is the Select button.
	ButtonSelect
	// ButtonStart is the Start button.
	ButtonStart
	// ButtonRight is the Right button.
	ButtonRight
	// ButtonLeft is the Left button.
	ButtonLeft
	// ButtonUp is the Up button.
	ButtonUp
	// ButtonDown is the Down button.
	ButtonDown
)

const (
	// SelectDirections selects the direction column.
	SelectDirections = types.Bit4
	// SelectButtons selects the button column.
	SelectButtons = types.Bit5

	released = 0x0F
)

// State represents the state of the joypad. Select either
// the direction or the button column by writing to the
// register, and then read out bits 0-3 to get the state of
// the column. A 0 bit means the key is pressed.
//
//	Bit 3 - Down  or Start
//	Bit 2 - Up    or Select
//	Bit 1 - Left  or Button B
//	Bit 0 - Right or Button A
type State struct {
	// Columns holds the direction keys at index 0
	// and the button keys at index 1.
	Columns [2]uint8
	column  uint8

	irq *interrupts.Service
}

// New returns a new joypad state with every key released.
func New(irq *interrupts.Service) *State {
	return &State{
		Columns: [2]uint8{released, released},
		irq:     irq,
	}
}

// locate returns the column and bit mask of button.
func locate(button Button) (int, uint8) {
	switch button {
	case ButtonA:
		return 1, types.Bit0
	case ButtonB:
		return 1, types.Bit1
	case ButtonSelect:
		return 1, types.Bit2
	case ButtonStart:
		return 1, types.Bit3
	case ButtonRight:
		return 0, types.Bit0
	case ButtonLeft:
		return 0, types.Bit1
	case ButtonUp:
		return 0, types.Bit2
	}
	return 0, types.Bit3
}

// Press presses a button and requests a joypad interrupt.
func (s *State) Press(button Button) {
	col, mask := locate(button)
	s.Columns[col] &^= mask
	s.irq.Request(interrupts.JoypadFlag)
}

// Release releases a button.
func (s *State) Release(button Button) {
	col, mask := locate(button)
	s.Columns[col] |= mask
}

// Read returns the selected column, or 0 when no single
// column is selected.
func (s *State) Read(address uint16) uint8 {
	switch s.column {
	case SelectDirections:
		return s.Columns[0]
	case SelectButtons:
		return s.Columns[1]
	}
	return 0
}

// Write selects the column returned by subsequent reads.
func (s *State) Write(address uint16, value uint8) {
	s.column = value & (SelectDirections | SelectButtons)
}
