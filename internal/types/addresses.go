package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 is the address of the P1 hardware register. Writing
	// selects a button column, reading returns the 4-bit state
	// of the selected column.
	P1 HardwareAddress = 0xFF00
	// SB is the serial transfer data register.
	SB HardwareAddress = 0xFF01
	// SC is the serial transfer control register.
	SC HardwareAddress = 0xFF02
	// DIV is the divider register. It is incremented at a
	// fixed rate, and writing any value resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the timer counter. When TIMA overflows, it is
	// reloaded from TMA and a timer interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the timer modulo, loaded into TIMA on overflow.
	TMA HardwareAddress = 0xFF06
	// TAC is the timer control register.
	//
	//	Bit 2   - Timer Enable
	//	Bit 1-0 - Input Clock Select
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt flag register.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// NR10 is the first sound register.
	NR10 HardwareAddress = 0xFF10
	// WaveRAMEnd is the last byte of the sound register window.
	WaveRAMEnd HardwareAddress = 0xFF3F
	// LCDC is the LCD control register.
	//
	//	Bit 7 - LCD Display Enable             (0=Off, 1=On)
	//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 5 - Window Display Enable          (0=Off, 1=On)
	//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//	Bit 0 - BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT is the LCD status register. Bit 2 is the LY=LYC
	// coincidence flag, bits 1-0 hold the current mode.
	STAT HardwareAddress = 0xFF41
	// SCY is the background scroll Y.
	SCY HardwareAddress = 0xFF42
	// SCX is the background scroll X.
	SCX HardwareAddress = 0xFF43
	// LY is the current scanline (0-153). Read only.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY to produce the coincidence flag.
	LYC HardwareAddress = 0xFF45
	// DMA starts a transfer of 160 bytes from XX00-XX9F into OAM,
	// where XX is the written value.
	DMA HardwareAddress = 0xFF46
	// BGP is the background palette.
	BGP HardwareAddress = 0xFF47
	// OBP0 is object palette 0.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is object palette 1.
	OBP1 HardwareAddress = 0xFF49
	// WY is the window Y position.
	WY HardwareAddress = 0xFF4A
	// WX is the window X position plus 7.
	WX HardwareAddress = 0xFF4B
	// BDIS disables the boot ROM overlay. Once disabled
	// it cannot be enabled again.
	BDIS HardwareAddress = 0xFF50
	// IE is the interrupt enable register, laid out as IF.
	IE HardwareAddress = 0xFFFF
)

// Address represents a memory address in the Game Boy's memory,
// which can be read from or written to. It is used to abstract
// away the component that backs a range of addresses.
type Address struct {
	// Read is a function that is called when the CPU reads from
	// the address.
	Read func(address uint16) uint8
	// Write is a function that is called when the CPU writes to
	// the address.
	Write func(address uint16, value uint8)
}
