// Package apu provides the register file of the Game Boy's
// audio processing unit. No samples are synthesised; the
// registers only hold what the CPU writes so that reads
// return it back.
package apu

import (
	"github.com/thelolagemann/dmgboy/internal/types"
)

// APU represents the GameBoy's audio processing unit, as seen
// from the bus at types.NR10 through types.WaveRAMEnd.
type APU struct {
	memory [types.WaveRAMEnd - types.NR10 + 1]byte
}

// NewAPU returns a new APU with every register cleared.
func NewAPU() *APU {
	return &APU{}
}

// Step advances the APU by the given number of clock cycles.
// The register file has no timing of its own.
func (a *APU) Step(cycles uint16) {}

// Read returns the last value written to address.
func (a *APU) Read(address uint16) uint8 {
	if address < types.NR10 || address > types.WaveRAMEnd {
		return 0
	}
	return a.memory[address-types.NR10]
}

// Write stores value at address.
func (a *APU) Write(address uint16, value uint8) {
	if address < types.NR10 || address > types.WaveRAMEnd {
		return
	}
	a.memory[address-types.NR10] = value
}
