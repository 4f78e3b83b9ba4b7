package cpu

import "fmt"

// Handler executes an instruction. addr is the effective address
// computed by the instruction's AddrMode, or 0 when it has none.
// The returned value is the number of cycles spent on top of the
// base cost, e.g. for a conditional branch that was taken.
type Handler func(c *CPU, b Bus, addr uint16) uint8

// Instruction describes a single opcode.
type Instruction struct {
	Mnemonic string
	Execute  Handler
	Address  AddrMode
	Length   uint8
	Cycles   uint8
	Illegal  bool
}

var (
	aluNames       = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	pairNames      = [4]string{"BC", "DE", "HL", "SP"}
	stackPairNames = [4]string{"BC", "DE", "HL", "AF"}
	conditionNames = [4]string{"NZ", "Z", "NC", "C"}
	illegalOpcodes = []uint8{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD}
)

// jump loads PC, marking the instruction as having jumped so that
// PC isn't advanced past it.
func (c *CPU) jump(address uint16) {
	c.PC = address
	c.jumped = true
}

// condition evaluates the branch condition encoded in bits 3-4
// of a conditional opcode.
func (c *CPU) condition(cc uint8) bool {
	switch cc & 3 {
	case 0:
		return !c.Flags.Z
	case 1:
		return c.Flags.Z
	case 2:
		return !c.Flags.C
	}
	return c.Flags.C
}

// pair returns the register pair encoded in bits 4-5 of an opcode.
func (c *CPU) pair(p uint8) uint16 {
	switch p & 3 {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	}
	return c.SP
}

func (c *CPU) setPair(p uint8, value uint16) {
	switch p & 3 {
	case 0:
		c.SetBC(value)
	case 1:
		c.SetDE(value)
	case 2:
		c.SetHL(value)
	default:
		c.SP = value
	}
}

// alu performs the arithmetic operation encoded in bits 3-5 of
// opcodes 0x80 - 0xBF and 0xC6 - 0xFE.
func (c *CPU) alu(op uint8, n uint8) {
	switch op & 7 {
	case 0:
		c.add(n, false)
	case 1:
		c.add(n, true)
	case 2:
		c.sub(n, false)
	case 3:
		c.sub(n, true)
	case 4:
		c.and(n)
	case 5:
		c.xor(n)
	case 6:
		c.or(n)
	case 7:
		c.compare(n)
	}
}

// operandCycles returns cycles, plus extra when r addresses memory.
func operandCycles(r Reg, cycles, extra uint8) uint8 {
	if r == RegHLIndirect {
		return cycles + extra
	}
	return cycles
}

func loadRegister(dst, src Reg) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("LD %s,%s", dst, src),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.set(b, dst, c.get(b, src))
			return 0
		},
		Length: 1,
		Cycles: operandCycles(dst, operandCycles(src, 4, 4), 4),
	}
}

func loadImmediate(dst Reg) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("LD %s,d8", dst),
		Execute: func(c *CPU, b Bus, addr uint16) uint8 {
			c.set(b, dst, b.Read(addr))
			return 0
		},
		Address: immediate,
		Length:  2,
		Cycles:  operandCycles(dst, 8, 4),
	}
}

func incrementRegister(r Reg) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("INC %s", r),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.set(b, r, c.increment(c.get(b, r)))
			return 0
		},
		Length: 1,
		Cycles: operandCycles(r, 4, 8),
	}
}

func decrementRegister(r Reg) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("DEC %s", r),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.set(b, r, c.decrement(c.get(b, r)))
			return 0
		},
		Length: 1,
		Cycles: operandCycles(r, 4, 8),
	}
}

func aluRegister(op uint8, r Reg) Instruction {
	return Instruction{
		Mnemonic: aluNames[op] + r.String(),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.alu(op, c.get(b, r))
			return 0
		},
		Length: 1,
		Cycles: operandCycles(r, 4, 4),
	}
}

func aluImmediate(op uint8) Instruction {
	return Instruction{
		Mnemonic: aluNames[op] + "d8",
		Execute: func(c *CPU, b Bus, addr uint16) uint8 {
			c.alu(op, b.Read(addr))
			return 0
		},
		Address: immediate,
		Length:  2,
		Cycles:  8,
	}
}

func loadPair(p uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("LD %s,d16", pairNames[p]),
		Execute: func(c *CPU, b Bus, addr uint16) uint8 {
			c.setPair(p, readWord(b, addr))
			return 0
		},
		Address: immediateWord,
		Length:  3,
		Cycles:  12,
	}
}

func incrementPair(p uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("INC %s", pairNames[p]),
		Execute: func(c *CPU, _ Bus, _ uint16) uint8 {
			c.setPair(p, c.pair(p)+1)
			return 0
		},
		Length: 1,
		Cycles: 8,
	}
}

func decrementPair(p uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("DEC %s", pairNames[p]),
		Execute: func(c *CPU, _ Bus, _ uint16) uint8 {
			c.setPair(p, c.pair(p)-1)
			return 0
		},
		Length: 1,
		Cycles: 8,
	}
}

func addPairHL(p uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("ADD HL,%s", pairNames[p]),
		Execute: func(c *CPU, _ Bus, _ uint16) uint8 {
			c.addHL(c.pair(p))
			return 0
		},
		Length: 1,
		Cycles: 8,
	}
}

func pushPair(p uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("PUSH %s", stackPairNames[p]),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			if p == 3 {
				c.push(b, c.AF())
			} else {
				c.push(b, c.pair(p))
			}
			return 0
		},
		Length: 1,
		Cycles: 16,
	}
}

func popPair(p uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("POP %s", stackPairNames[p]),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			if p == 3 {
				c.SetAF(c.pop(b))
			} else {
				c.setPair(p, c.pop(b))
			}
			return 0
		},
		Length: 1,
		Cycles: 12,
	}
}

func jumpRelativeIf(cc uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("JR %s,r8", conditionNames[cc]),
		Execute: func(c *CPU, b Bus, addr uint16) uint8 {
			if !c.condition(cc) {
				return 0
			}
			c.jump(c.PC + 2 + uint16(int8(b.Read(addr))))
			return 4
		},
		Address: immediate,
		Length:  2,
		Cycles:  8,
	}
}

func jumpIf(cc uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("JP %s,a16", conditionNames[cc]),
		Execute: func(c *CPU, b Bus, addr uint16) uint8 {
			if !c.condition(cc) {
				return 0
			}
			c.jump(readWord(b, addr))
			return 4
		},
		Address: immediateWord,
		Length:  3,
		Cycles:  12,
	}
}

func callIf(cc uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("CALL %s,a16", conditionNames[cc]),
		Execute: func(c *CPU, b Bus, addr uint16) uint8 {
			if !c.condition(cc) {
				return 0
			}
			c.push(b, c.PC+3)
			c.jump(readWord(b, addr))
			return 12
		},
		Address: immediateWord,
		Length:  3,
		Cycles:  12,
	}
}

func returnIf(cc uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("RET %s", conditionNames[cc]),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			if !c.condition(cc) {
				return 0
			}
			c.jump(c.pop(b))
			return 12
		},
		Length: 1,
		Cycles: 8,
	}
}

func restart(vector uint16) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("RST %02XH", vector),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.push(b, c.PC+1)
			c.jump(vector)
			return 0
		},
		Length: 1,
		Cycles: 16,
	}
}

func illegal(opcode uint8) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("ILLEGAL_%02X", opcode),
		Length:   1,
		Cycles:   4,
		Illegal:  true,
	}
}
