// Package ram provides a basic RAM implementation.
package ram

// RAM represents a block of RAM whose size is a power of two.
// Addresses are masked to the size of the block, so a block
// mapped at an aligned base can be addressed with absolute
// addresses, and any mirror of it lands on the same bytes.
type RAM struct {
	data []uint8
	mask uint16
}

// NewRAM returns a new RAM of size bytes. size must be a
// power of two.
func NewRAM(size uint32) *RAM {
	if size == 0 || size&(size-1) != 0 || size > 0x10000 {
		panic("ram: size must be a power of two no larger than 64kB")
	}
	return &RAM{
		data: make([]uint8, size),
		mask: uint16(size - 1),
	}
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	return r.data[address&r.mask]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	r.data[address&r.mask] = value
}

// Size returns the size of the block in bytes.
func (r *RAM) Size() int {
	return len(r.data)
}
