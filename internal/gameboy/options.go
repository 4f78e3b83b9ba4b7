package gameboy

import (
	"io"

	"github.com/thelolagemann/dmgboy/internal/cheats"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// WithLogger sets the logger the components log through.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator. The GameBoy
// starts executing from 0x0000 with the boot ROM overlaid on the
// cartridge, until it disables itself.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// SkipBoot starts the GameBoy at 0x0100, even if a boot ROM has
// been provided.
func SkipBoot() Opt {
	return func(gb *GameBoy) {
		gb.skipBoot = true
	}
}

// WithSink sets where completed frames are sent.
func WithSink(sink ppu.Sink) Opt {
	return func(gb *GameBoy) {
		gb.sink = sink
	}
}

// WithSerialOutput forwards everything written to the serial
// port to w. Test ROMs commonly report their results this way.
func WithSerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.serialOut = w
	}
}

// WithCheats plugs in a Game Genie, which patches cartridge
// reads, and a GameShark, whose codes are written to RAM at the
// end of every frame. Either may be nil.
func WithCheats(genie *cheats.GameGenie, shark *cheats.GameShark) Opt {
	return func(gb *GameBoy) {
		gb.genie = genie
		gb.shark = shark
	}
}
