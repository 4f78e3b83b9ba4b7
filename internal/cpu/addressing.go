package cpu

// AddrMode computes the effective address an instruction operates
// on, relative to the current PC.
type AddrMode func(c *CPU, b Bus) uint16

// immediate is the address of the byte following the opcode.
func immediate(c *CPU, _ Bus) uint16 {
	return c.PC + 1
}

// immediateWord is the address of the little-endian word following
// the opcode.
func immediateWord(c *CPU, _ Bus) uint16 {
	return c.PC + 1
}

// indirectNN reads the word following the opcode as an address.
func indirectNN(c *CPU, b Bus) uint16 {
	return readWord(b, c.PC+1)
}

func indirectBC(c *CPU, _ Bus) uint16 { return c.BC() }
func indirectDE(c *CPU, _ Bus) uint16 { return c.DE() }
func indirectHL(c *CPU, _ Bus) uint16 { return c.HL() }

// indirectC addresses the I/O page at 0xFF00 + C.
func indirectC(c *CPU, _ Bus) uint16 {
	return 0xFF00 + uint16(c.C)
}

// indirectN addresses the I/O page at 0xFF00 + the byte following
// the opcode.
func indirectN(c *CPU, b Bus) uint16 {
	return 0xFF00 + uint16(b.Read(c.PC+1))
}
