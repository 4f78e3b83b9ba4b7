package types

const (
	Bit0 = 1 << iota // 0b0000_0001
	Bit1             // 0b0000_0010
	Bit2             // 0b0000_0100
	Bit3             // 0b0000_1000
	Bit4             // 0b0001_0000
	Bit5             // 0b0010_0000
	Bit6             // 0b0100_0000
	Bit7             // 0b1000_0000
)

// Test reports whether any of the bits in mask are set in v.
func Test(v, mask uint8) bool {
	return v&mask != 0
}

// Word composes a little-endian 16-bit value from its
// low and high bytes.
func Word(low, high uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}
