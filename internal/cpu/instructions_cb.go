package cpu

import "fmt"

// InstructionSetCB holds the 256 instructions following the 0xCB
// prefix. Cycles include the fetch of the prefix.
var InstructionSetCB = newInstructionSetCB()

var shiftNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

func newInstructionSetCB() [256]Instruction {
	var set [256]Instruction
	for r := RegB; r <= RegA; r++ {
		for op := uint8(0); op < 8; op++ {
			set[op<<3|uint8(r)] = shiftInstruction(op, r)
			set[0x40|op<<3|uint8(r)] = bitInstruction(op, r)
			set[0x80|op<<3|uint8(r)] = resetInstruction(op, r)
			set[0xC0|op<<3|uint8(r)] = setInstruction(op, r)
		}
	}
	return set
}

// shift applies the rotate or shift encoded in bits 3-5 of
// opcodes 0x00 - 0x3F.
func (c *CPU) shift(op uint8, n uint8) uint8 {
	switch op & 7 {
	case 0:
		return c.rotateLeft(n)
	case 1:
		return c.rotateRight(n)
	case 2:
		return c.rotateLeftThroughCarry(n)
	case 3:
		return c.rotateRightThroughCarry(n)
	case 4:
		return c.shiftLeftArithmetic(n)
	case 5:
		return c.shiftRightArithmetic(n)
	case 6:
		return c.swap(n)
	}
	return c.shiftRightLogical(n)
}

func shiftInstruction(op uint8, r Reg) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("%s %s", shiftNames[op], r),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.set(b, r, c.shift(op, c.get(b, r)))
			return 0
		},
		Length: 2,
		Cycles: operandCycles(r, 8, 8),
	}
}

func bitInstruction(bit uint8, r Reg) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("BIT %d,%s", bit, r),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.testBit(bit, c.get(b, r))
			return 0
		},
		Length: 2,
		Cycles: operandCycles(r, 8, 4),
	}
}

func resetInstruction(bit uint8, r Reg) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("RES %d,%s", bit, r),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.set(b, r, c.get(b, r)&^(1<<bit))
			return 0
		},
		Length: 2,
		Cycles: operandCycles(r, 8, 8),
	}
}

func setInstruction(bit uint8, r Reg) Instruction {
	return Instruction{
		Mnemonic: fmt.Sprintf("SET %d,%s", bit, r),
		Execute: func(c *CPU, b Bus, _ uint16) uint8 {
			c.set(b, r, c.get(b, r)|1<<bit)
			return 0
		},
		Length: 2,
		Cycles: operandCycles(r, 8, 8),
	}
}
