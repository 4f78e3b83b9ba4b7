package cpu

// InstructionSet holds the 256 unprefixed instructions. It is
// built once at package init and never modified.
var InstructionSet = newInstructionSet()

func newInstructionSet() [256]Instruction {
	set := [256]Instruction{
		0x00: {Mnemonic: "NOP", Execute: func(c *CPU, b Bus, addr uint16) uint8 { return 0 }, Length: 1, Cycles: 4},
		0x02: {
			Mnemonic: "LD (BC),A",
			Execute:  storeA,
			Address:  indirectBC,
			Length:   1,
			Cycles:   8,
		},
		0x07: {
			Mnemonic: "RLCA",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.A = c.rotateLeft(c.A)
				c.Flags.Z = false
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0x08: {
			Mnemonic: "LD (a16),SP",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.write(b, addr, uint8(c.SP))
				c.write(b, addr+1, uint8(c.SP>>8))
				return 0
			},
			Address: indirectNN,
			Length:  3,
			Cycles:  20,
		},
		0x0A: {
			Mnemonic: "LD A,(BC)",
			Execute:  loadA,
			Address:  indirectBC,
			Length:   1,
			Cycles:   8,
		},
		0x0F: {
			Mnemonic: "RRCA",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.A = c.rotateRight(c.A)
				c.Flags.Z = false
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0x10: {
			Mnemonic: "STOP",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.stopped = true
				return 0
			},
			Length: 2,
			Cycles: 4,
		},
		0x12: {
			Mnemonic: "LD (DE),A",
			Execute:  storeA,
			Address:  indirectDE,
			Length:   1,
			Cycles:   8,
		},
		0x17: {
			Mnemonic: "RLA",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.A = c.rotateLeftThroughCarry(c.A)
				c.Flags.Z = false
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0x18: {
			Mnemonic: "JR r8",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.jump(c.PC + 2 + uint16(int8(b.Read(addr))))
				return 0
			},
			Address: immediate,
			Length:  2,
			Cycles:  12,
		},
		0x1A: {
			Mnemonic: "LD A,(DE)",
			Execute:  loadA,
			Address:  indirectDE,
			Length:   1,
			Cycles:   8,
		},
		0x1F: {
			Mnemonic: "RRA",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.A = c.rotateRightThroughCarry(c.A)
				c.Flags.Z = false
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0x22: {
			Mnemonic: "LD (HL+),A",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.write(b, addr, c.A)
				c.SetHL(addr + 1)
				return 0
			},
			Address: indirectHL,
			Length:  1,
			Cycles:  8,
		},
		0x27: {
			Mnemonic: "DAA",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.decimalAdjust()
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0x2A: {
			Mnemonic: "LD A,(HL+)",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.A = b.Read(addr)
				c.SetHL(addr + 1)
				return 0
			},
			Address: indirectHL,
			Length:  1,
			Cycles:  8,
		},
		0x2F: {
			Mnemonic: "CPL",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.A = ^c.A
				c.Flags.N = true
				c.Flags.H = true
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0x32: {
			Mnemonic: "LD (HL-),A",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.write(b, addr, c.A)
				c.SetHL(addr - 1)
				return 0
			},
			Address: indirectHL,
			Length:  1,
			Cycles:  8,
		},
		0x37: {
			Mnemonic: "SCF",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.setFlags(c.Flags.Z, false, false, true)
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0x3A: {
			Mnemonic: "LD A,(HL-)",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.A = b.Read(addr)
				c.SetHL(addr - 1)
				return 0
			},
			Address: indirectHL,
			Length:  1,
			Cycles:  8,
		},
		0x3F: {
			Mnemonic: "CCF",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.setFlags(c.Flags.Z, false, false, !c.Flags.C)
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0x76: {
			Mnemonic: "HALT",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.halted = true
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0xC3: {
			Mnemonic: "JP a16",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.jump(readWord(b, addr))
				return 0
			},
			Address: immediateWord,
			Length:  3,
			Cycles:  16,
		},
		0xC9: {
			Mnemonic: "RET",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.jump(c.pop(b))
				return 0
			},
			Length: 1,
			Cycles: 16,
		},
		0xCB: {
			Mnemonic: "PREFIX CB",
			Execute:  prefixCB,
			Address:  immediate,
			Length:   2,
		},
		0xCD: {
			Mnemonic: "CALL a16",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.push(b, c.PC+3)
				c.jump(readWord(b, addr))
				return 0
			},
			Address: immediateWord,
			Length:  3,
			Cycles:  24,
		},
		0xD9: {
			Mnemonic: "RETI",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.jump(c.pop(b))
				c.IME = true
				return 0
			},
			Length: 1,
			Cycles: 16,
		},
		0xE0: {
			Mnemonic: "LDH (a8),A",
			Execute:  storeA,
			Address:  indirectN,
			Length:   2,
			Cycles:   12,
		},
		0xE2: {
			Mnemonic: "LD (C),A",
			Execute:  storeA,
			Address:  indirectC,
			Length:   1,
			Cycles:   8,
		},
		0xE8: {
			Mnemonic: "ADD SP,r8",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.SP = c.addSPSigned(b.Read(addr))
				return 0
			},
			Address: immediate,
			Length:  2,
			Cycles:  16,
		},
		0xE9: {
			Mnemonic: "JP (HL)",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.jump(c.HL())
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0xEA: {
			Mnemonic: "LD (a16),A",
			Execute:  storeA,
			Address:  indirectNN,
			Length:   3,
			Cycles:   16,
		},
		0xF0: {
			Mnemonic: "LDH A,(a8)",
			Execute:  loadA,
			Address:  indirectN,
			Length:   2,
			Cycles:   12,
		},
		0xF2: {
			Mnemonic: "LD A,(C)",
			Execute:  loadA,
			Address:  indirectC,
			Length:   1,
			Cycles:   8,
		},
		0xF3: {
			Mnemonic: "DI",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.IME = false
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
		0xF8: {
			Mnemonic: "LD HL,SP+r8",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.SetHL(c.addSPSigned(b.Read(addr)))
				return 0
			},
			Address: immediate,
			Length:  2,
			Cycles:  12,
		},
		0xF9: {
			Mnemonic: "LD SP,HL",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.SP = c.HL()
				return 0
			},
			Length: 1,
			Cycles: 8,
		},
		0xFA: {
			Mnemonic: "LD A,(a16)",
			Execute:  loadA,
			Address:  indirectNN,
			Length:   3,
			Cycles:   16,
		},
		0xFB: {
			Mnemonic: "EI",
			Execute: func(c *CPU, b Bus, addr uint16) uint8 {
				c.IME = true
				return 0
			},
			Length: 1,
			Cycles: 4,
		},
	}

	// 0x00 - 0x3F: the regular columns
	for p := uint8(0); p < 4; p++ {
		set[0x01|p<<4] = loadPair(p)
		set[0x03|p<<4] = incrementPair(p)
		set[0x09|p<<4] = addPairHL(p)
		set[0x0B|p<<4] = decrementPair(p)
		set[0x20|p<<3] = jumpRelativeIf(p)
	}
	for r := RegB; r <= RegA; r++ {
		set[0x04|uint8(r)<<3] = incrementRegister(r)
		set[0x05|uint8(r)<<3] = decrementRegister(r)
		set[0x06|uint8(r)<<3] = loadImmediate(r)
	}

	// 0x40 - 0x7F: LD r,r' (0x76 is HALT)
	for dst := RegB; dst <= RegA; dst++ {
		for src := RegB; src <= RegA; src++ {
			if dst == RegHLIndirect && src == RegHLIndirect {
				continue
			}
			set[0x40|uint8(dst)<<3|uint8(src)] = loadRegister(dst, src)
		}
	}

	// 0x80 - 0xBF: ALU A,r
	for op := uint8(0); op < 8; op++ {
		for r := RegB; r <= RegA; r++ {
			set[0x80|op<<3|uint8(r)] = aluRegister(op, r)
		}
		set[0xC6|op<<3] = aluImmediate(op)
		set[0xC7|op<<3] = restart(uint16(op) * 8)
	}

	// 0xC0 - 0xFF: the regular columns
	for p := uint8(0); p < 4; p++ {
		set[0xC0|p<<3] = returnIf(p)
		set[0xC2|p<<3] = jumpIf(p)
		set[0xC4|p<<3] = callIf(p)
		set[0xC1|p<<4] = popPair(p)
		set[0xC5|p<<4] = pushPair(p)
	}

	for _, opcode := range illegalOpcodes {
		set[opcode] = illegal(opcode)
	}

	return set
}

// loadA loads A from addr.
func loadA(c *CPU, b Bus, addr uint16) uint8 {
	c.A = b.Read(addr)
	return 0
}

// storeA stores A to addr.
func storeA(c *CPU, b Bus, addr uint16) uint8 {
	c.write(b, addr, c.A)
	return 0
}

// prefixCB executes the instruction from InstructionSetCB named
// by the byte at addr, returning its cycles.
func prefixCB(c *CPU, b Bus, addr uint16) uint8 {
	in := &InstructionSetCB[b.Read(addr)]
	var operand uint16
	if in.Address != nil {
		operand = in.Address(c, b)
	}
	return in.Cycles + in.Execute(c, b, operand)
}
