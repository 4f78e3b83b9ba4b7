package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalOpcode is returned when an opcode that is not defined
	// on the hardware is fetched.
	ErrIllegalOpcode = errors.New("illegal opcode")
	// ErrUnimplementedOpcode is returned when a defined opcode has no
	// handler.
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
	// ErrAddressRange is returned when PC or SP is assigned a value
	// outside of the 16-bit address space.
	ErrAddressRange = errors.New("address out of range")
)

// Error describes a fault raised while executing an instruction. The
// CPU refuses to step once it has faulted.
type Error struct {
	Err      error
	Addr     uint16 // PC of the faulting instruction
	Opcode   uint8
	Mnemonic string
}

func (e *Error) Error() string {
	if e.Mnemonic != "" {
		return fmt.Sprintf("cpu: %v at $%04X (%02X %s)", e.Err, e.Addr, e.Opcode, e.Mnemonic)
	}
	return fmt.Sprintf("cpu: %v at $%04X (%02X)", e.Err, e.Addr, e.Opcode)
}

func (e *Error) Unwrap() error {
	return e.Err
}
