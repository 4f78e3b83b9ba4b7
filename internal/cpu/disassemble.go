package cpu

import (
	"fmt"
	"strings"
)

// Disassembly is a single decoded instruction.
type Disassembly struct {
	Address  uint16
	Bytes    []uint8
	Mnemonic string
}

// String formats the instruction as an address, the raw bytes
// and the mnemonic.
func (d Disassembly) String() string {
	raw := make([]string, len(d.Bytes))
	for i, v := range d.Bytes {
		raw[i] = fmt.Sprintf("%02X", v)
	}
	return fmt.Sprintf("$%04X  %-9s %s", d.Address, strings.Join(raw, " "), d.Mnemonic)
}

// Disassemble decodes count instructions starting at address. The
// bus is only read from.
func (c *CPU) Disassemble(b Bus, address uint16, count int) []Disassembly {
	out := make([]Disassembly, 0, count)
	for i := 0; i < count; i++ {
		opcode := b.Read(address)
		in := &InstructionSet[opcode]
		mnemonic := in.Mnemonic
		if opcode == 0xCB {
			mnemonic = InstructionSetCB[b.Read(address+1)].Mnemonic
		}

		d := Disassembly{Address: address, Mnemonic: mnemonic}
		for j := uint16(0); j < uint16(in.Length); j++ {
			d.Bytes = append(d.Bytes, b.Read(address+j))
		}
		out = append(out, d)
		address += uint16(in.Length)
	}
	return out
}
