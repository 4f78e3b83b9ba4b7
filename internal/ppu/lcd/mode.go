package lcd

// Mode represents a mode of the LCD, as reported in bits
// 1-0 of types.STAT.
type Mode = uint8

const (
	// HBlank is the horizontal blanking mode.
	HBlank Mode = iota
	// VBlank is the vertical blanking mode, spanning the
	// 10 scanlines after the last visible one.
	VBlank
	// OAM is the OAM scan mode.
	OAM
	// VRAM is the pixel transfer mode.
	VRAM
)

// Cycles spent in each mode. A scanline is always
// OAMCycles + VRAMCycles + HBlankCycles = LineCycles.
const (
	OAMCycles    = 80
	VRAMCycles   = 172
	HBlankCycles = 204
	LineCycles   = 456
)

// Status returns the value of types.STAT for the given
// mode and coincidence state.
func Status(mode Mode, coincidence bool) uint8 {
	if coincidence {
		return 0x04 | mode
	}
	return mode
}
