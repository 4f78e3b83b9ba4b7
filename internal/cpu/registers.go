package cpu

import "github.com/thelolagemann/dmgboy/internal/types"

// Reg identifies one of the 8-bit operands encoded in the low
// (or middle) three bits of an opcode. RegHLIndirect is the byte
// in memory addressed by HL.
type Reg uint8

const (
	RegB Reg = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegHLIndirect
	RegA
)

var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// String returns the assembler name of the register.
func (r Reg) String() string {
	return regNames[r&7]
}

// Flags holds the four condition flags. They are kept apart
// from A and only packed into a byte for PUSH AF and POP AF.
type Flags struct {
	Z bool // zero
	N bool // subtract
	H bool // half carry
	C bool // carry
}

const (
	flagZero      = types.Bit7
	flagSubtract  = types.Bit6
	flagHalfCarry = types.Bit5
	flagCarry     = types.Bit4
)

// Registers holds the 8-bit registers of the CPU. The 16-bit
// pairs BC, DE and HL are views over two 8-bit registers.
type Registers struct {
	A, B, C, D, E, H, L uint8
	Flags
}

// F packs the flags into the layout of the F register.
func (r *Registers) F() uint8 {
	var f uint8
	if r.Flags.Z {
		f |= flagZero
	}
	if r.Flags.N {
		f |= flagSubtract
	}
	if r.Flags.H {
		f |= flagHalfCarry
	}
	if r.Flags.C {
		f |= flagCarry
	}
	return f
}

// SetF unpacks f into the flags. The low nibble is discarded.
func (r *Registers) SetF(f uint8) {
	r.Flags = Flags{
		Z: types.Test(f, flagZero),
		N: types.Test(f, flagSubtract),
		H: types.Test(f, flagHalfCarry),
		C: types.Test(f, flagCarry),
	}
}

// AF returns the accumulator and flags as a pair.
func (r *Registers) AF() uint16 { return types.Word(r.F(), r.A) }

// SetAF sets the accumulator and flags from a pair.
func (r *Registers) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.SetF(uint8(v))
}

// BC returns the BC register pair.
func (r *Registers) BC() uint16 { return types.Word(r.C, r.B) }

// SetBC sets the BC register pair.
func (r *Registers) SetBC(v uint16) { r.B, r.C = uint8(v>>8), uint8(v) }

// DE returns the DE register pair.
func (r *Registers) DE() uint16 { return types.Word(r.E, r.D) }

// SetDE sets the DE register pair.
func (r *Registers) SetDE(v uint16) { r.D, r.E = uint8(v>>8), uint8(v) }

// HL returns the HL register pair.
func (r *Registers) HL() uint16 { return types.Word(r.L, r.H) }

// SetHL sets the HL register pair.
func (r *Registers) SetHL(v uint16) { r.H, r.L = uint8(v>>8), uint8(v) }

// setFlags sets all four flags at once.
func (r *Registers) setFlags(z, n, h, c bool) {
	r.Flags = Flags{Z: z, N: n, H: h, C: c}
}
