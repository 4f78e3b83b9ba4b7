package mmu

import (
	"errors"
	"fmt"
)

// ErrBiosWrite is returned when the boot ROM is written to while
// it is overlaid on the cartridge.
var ErrBiosWrite = errors.New("write to BIOS ROM")

// Error describes a failed bus access.
type Error struct {
	Addr  uint16
	Value uint8
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("mmu: $%02X to $%04X: %v", e.Value, e.Addr, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
