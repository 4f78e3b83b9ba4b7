package cpu

// add adds n (and the carry flag when carry is set) to the A
// Register.
//
//	ADD A,n
//	ADC A,n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, carry bool) {
	var cin uint8
	if carry && c.Flags.C {
		cin = 1
	}
	sum := uint16(c.A) + uint16(n) + uint16(cin)
	half := c.A&0x0F+n&0x0F+cin > 0x0F
	c.A = uint8(sum)
	c.setFlags(c.A == 0, false, half, sum > 0xFF)
}

// sub subtracts n (and the carry flag when carry is set) from
// the A Register.
//
//	SUB n
//	SBC A,n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, carry bool) {
	var cin uint8
	if carry && c.Flags.C {
		cin = 1
	}
	diff := int16(c.A) - int16(n) - int16(cin)
	half := int16(c.A&0x0F)-int16(n&0x0F)-int16(cin) < 0
	c.A = uint8(diff)
	c.setFlags(c.A == 0, true, half, diff < 0)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Set if no borrow.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0x0F > c.A&0x0F, n > c.A)
}

// increment returns n + 1.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&0x0F == 0x0F, c.Flags.C)
	return result
}

// decrement returns n - 1.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if no borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&0x0F == 0, c.Flags.C)
	return result
}

// addHL adds n to HL.
//
//	ADD HL,n
//	n = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.Flags.Z, false, hl&0x0FFF+n&0x0FFF > 0x0FFF, sum > 0xFFFF)
	c.SetHL(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e, as used by
// ADD SP,e and LD HL,SP+e. The flags are computed from the low
// byte as an unsigned addition.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	result := c.SP + uint16(int8(e))
	c.setFlags(false, false, c.SP&0x0F+uint16(e&0x0F) > 0x0F, c.SP&0xFF+uint16(e) > 0xFF)
	return result
}

// decimalAdjust adjusts A to a packed BCD result following an
// addition or subtraction.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	carry := c.Flags.C
	if !c.Flags.N {
		if c.Flags.C || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.Flags.H || c.A&0x0F > 0x09 {
			c.A += 0x06
		}
	} else {
		if c.Flags.C {
			c.A -= 0x60
		}
		if c.Flags.H {
			c.A -= 0x06
		}
	}
	c.setFlags(c.A == 0, c.Flags.N, false, carry)
}
