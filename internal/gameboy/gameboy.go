// Package gameboy provides an emulation of a Nintendo Game Boy.
package gameboy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thelolagemann/dmgboy/internal/apu"
	"github.com/thelolagemann/dmgboy/internal/boot"
	"github.com/thelolagemann/dmgboy/internal/cartridge"
	"github.com/thelolagemann/dmgboy/internal/cheats"
	"github.com/thelolagemann/dmgboy/internal/cpu"
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/internal/mmu"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/serial"
	"github.com/thelolagemann/dmgboy/internal/timer"
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = ppu.FrameCycles // 70224
)

// ErrStepLimit is returned by RunTo when the target address
// isn't reached within the step limit.
var ErrStepLimit = errors.New("gameboy: step limit reached")

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	APU        *apu.APU
	Joypad     *joypad.State
	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller

	log.Logger

	rom       []byte
	bootROM   []byte
	skipBoot  bool
	sink      ppu.Sink
	serialOut io.Writer
	genie     *cheats.GameGenie
	shark     *cheats.GameShark
}

// NewGameBoy returns a new GameBoy running rom. Without a boot
// ROM (see WithBootROM) the GameBoy starts in the state the boot
// ROM leaves behind.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		rom:    rom,
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rebuilds every component, discarding all state except
// the options the GameBoy was created with.
func (g *GameBoy) Reset() error {
	var bootROM *boot.ROM
	if g.bootROM != nil && !g.skipBoot {
		b, err := boot.LoadBootROM(g.bootROM)
		if err != nil {
			return fmt.Errorf("gameboy: loading boot rom: %w", err)
		}
		g.Logger.Infof("boot rom %s (%s)", b.Model(), b.Checksum())
		bootROM = b
	}

	cart := cartridge.NewCartridge(g.rom)
	if g.genie != nil {
		cart.AttachPatcher(g.genie)
	}
	irq := interrupts.NewService()
	pad := joypad.New(irq)
	serialCtl := serial.NewController(log.WithComponent(g.Logger, "serial"))
	if g.serialOut != nil {
		serialCtl.Attach(g.serialOut)
	}
	timerCtl := timer.NewController(irq)
	sound := apu.NewAPU()

	memBus := mmu.NewMMU(cart, bootROM, mmu.Peripherals{
		Joypad:     pad,
		Serial:     serialCtl,
		Timer:      timerCtl,
		Interrupts: irq,
		Sound:      sound,
	}, g.Logger)
	video := ppu.New(irq)
	video.AttachBus(memBus)
	if g.sink != nil {
		video.AttachSink(g.sink)
	}
	memBus.AttachVideo(video)

	g.CPU = cpu.NewCPU(memBus, irq)
	g.MMU = memBus
	g.PPU = video
	g.APU = sound
	g.Joypad = pad
	g.Interrupts = irq
	g.Timer = timerCtl
	g.Serial = serialCtl

	g.Logger.Infof("loaded %s", cart.Header())
	if bootROM == nil {
		return g.postBoot()
	}
	return nil
}

// postBoot puts the registers in the state the DMG boot ROM
// leaves them in when it hands over to the cartridge.
func (g *GameBoy) postBoot() error {
	g.MMU.DisableBootROM()

	g.CPU.SetAF(0x01B0)
	g.CPU.SetBC(0x0013)
	g.CPU.SetDE(0x00D8)
	g.CPU.SetHL(0x014D)
	g.CPU.SP = 0xFFFE
	g.CPU.PC = 0x0100

	for _, r := range []struct {
		address types.HardwareAddress
		value   uint8
	}{
		{types.LCDC, 0x91},
		{types.BGP, 0xFC},
		{types.OBP0, 0xFF},
		{types.OBP1, 0xFF},
	} {
		if err := g.MMU.Write(r.address, r.value); err != nil {
			return err
		}
	}
	return nil
}

// Step executes a single CPU step, and then steps the PPU, timer
// and sound by the cycles it took.
func (g *GameBoy) Step() (uint8, error) {
	cycles, err := g.CPU.Step()
	if err != nil {
		return 0, err
	}
	g.PPU.Step(uint16(cycles))
	g.Timer.Step(uint16(cycles))
	g.APU.Step(uint16(cycles))
	return cycles, nil
}

// Frame steps the emulation for one frame's worth of cycles. Any
// cycles the last instruction overshoots by are taken from the
// next frame.
func (g *GameBoy) Frame() error {
	target := g.CPU.Cycles + CyclesPerFrame
	for g.CPU.Cycles < target {
		if _, err := g.Step(); err != nil {
			return err
		}
	}

	if g.shark != nil {
		g.shark.Apply(func(address uint16, value uint8) {
			if err := g.MMU.Write(address, value); err != nil {
				g.Logger.Errorf("applying cheat: %v", err)
			}
		})
	}
	return nil
}

// Run emulates frames frames, or until ctx is done when frames is
// zero or less. The context is only checked between frames.
func (g *GameBoy) Run(ctx context.Context, frames int) error {
	for i := 0; frames <= 0 || i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := g.Frame(); err != nil {
			return err
		}
	}
	return nil
}

// RunTo steps until PC reaches address, executing at most limit
// steps.
func (g *GameBoy) RunTo(address uint16, limit int) error {
	for i := 0; g.CPU.PC != address; i++ {
		if i >= limit {
			return fmt.Errorf("%w: PC $%04X after %d steps", ErrStepLimit, g.CPU.PC, limit)
		}
		if _, err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Title returns the title of the loaded cartridge.
func (g *GameBoy) Title() string {
	return g.MMU.Cart.Title()
}

// String returns a dump of the registers.
func (g *GameBoy) String() string {
	c := g.CPU
	flag := func(name string, set bool) string {
		if set {
			return name + "!"
		}
		return name + " "
	}

	var sb strings.Builder
	fmt.Fprintln(&sb, g.Title())
	fmt.Fprintf(&sb, "A: $%02X  PC: $%04X  SP: $%04X ($%04X)\n", c.A, c.PC, c.SP, g.MMU.ReadWord(c.SP))
	fmt.Fprintf(&sb, "B: $%02X  C: $%02X  D: $%02X  E: $%02X\n", c.B, c.C, c.D, c.E)
	fmt.Fprintf(&sb, "H: $%02X  L: $%02X  F: %s%s%s%s\n", c.H, c.L,
		flag("z", c.Flags.Z), flag("n", c.Flags.N), flag("h", c.Flags.H), flag("c", c.Flags.C))
	fmt.Fprintf(&sb, "Input: b%04b%04b", g.Joypad.Columns[0], g.Joypad.Columns[1])
	return sb.String()
}
