// Package interrupts provides the interrupt flag and enable
// registers, and the fixed priority used to pick which
// pending interrupt is serviced.
package interrupts

import (
	"github.com/thelolagemann/dmgboy/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0),
	// which is requested every time the PPU enters
	// VBlank mode.
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when types.TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt flag (bit 4),
	// which is requested when a button is pressed.
	JoypadFlag = types.Bit4
)

// Count is the number of interrupt sources.
const Count = 5

// Service holds the interrupt flag and enable registers.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. Peripherals only ever OR a bit into Flag, the
// CPU clears a bit when it services the interrupt.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Pending returns the interrupts that are both requested
// and enabled.
func (s *Service) Pending() uint8 {
	return s.Enable & s.Flag
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Vector returns the vector of the highest priority interrupt
// that is requested and enabled, clearing its bit in the Flag
// register. Bit 0 has the highest priority. ok is false when
// none of the five sources are pending, in which case nothing
// is cleared.
func (s *Service) Vector() (vector uint16, ok bool) {
	pending := s.Pending()
	for i := uint8(0); i < Count; i++ {
		flag := uint8(1 << i)
		if pending&flag != 0 {
			s.Flag &^= flag
			return uint16(0x0040 + i*8), true
		}
	}

	return 0, false
}

// Read implements the mmu.IOBus interface for types.IF
// and types.IE.
func (s *Service) Read(address uint16) uint8 {
	switch address {
	case types.IF:
		return s.Flag
	case types.IE:
		return s.Enable
	}
	return 0
}

// Write implements the mmu.IOBus interface for types.IF
// and types.IE.
func (s *Service) Write(address uint16, value uint8) {
	switch address {
	case types.IF:
		s.Flag = value
	case types.IE:
		s.Enable = value
	}
}
