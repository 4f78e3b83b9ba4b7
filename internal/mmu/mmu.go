// Package mmu provides a memory management unit for the Game Boy. The
// MMU is unaware of the other components, and handles all the memory
// reads and writes via the IOBus interface.
package mmu

import (
	"github.com/thelolagemann/dmgboy/internal/boot"
	"github.com/thelolagemann/dmgboy/internal/cartridge"
	"github.com/thelolagemann/dmgboy/internal/ram"
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the other
// components.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Peripherals groups the components mapped into the I/O page.
type Peripherals struct {
	Joypad     IOBus // 0xFF00
	Serial     IOBus // 0xFF01 - 0xFF02
	Timer      IOBus // 0xFF04 - 0xFF07
	Interrupts IOBus // 0xFF0F, 0xFFFF
	Sound      IOBus // 0xFF10 - 0xFF3F
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory, and
// delegates to the other components through the IOBus interface.
type MMU struct {
	// 64kB address space
	raw [65536]*types.Address

	// 0x0000 - 0x00FF - BOOT ROM (256B)
	bootROM     *boot.ROM
	bootROMDone bool

	// 0x0000 - 0x7FFF - ROM (32kB)
	Cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	// 0xFF40 - 0xFF4B - LCD registers
	Video IOBus

	// 0xA000 - 0xBFFF - External RAM (8kB)
	eRAM *ram.RAM

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *ram.RAM

	// 0xFF00 - 0xFF7F - I/O Registers
	io Peripherals

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	Log log.Logger
}

// NewMMU returns a new MMU. bootROM may be nil, in which case the
// cartridge is visible from address 0 immediately.
func NewMMU(cart *cartridge.Cartridge, bootROM *boot.ROM, io Peripherals, l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	m := &MMU{
		bootROM:     bootROM,
		bootROMDone: bootROM == nil,
		Cart:        cart,
		eRAM:        ram.NewRAM(0x2000),
		wRAM:        ram.NewRAM(0x2000),
		zRAM:        ram.NewRAM(0x80),
		io:          io,
		Log:         log.WithComponent(l, "mmu"),
	}
	m.init()

	return m
}

func (m *MMU) init() {
	unmapped := &types.Address{
		Read:  func(uint16) uint8 { return 0 },
		Write: func(uint16, uint8) {},
	}
	for i := range m.raw {
		m.raw[i] = unmapped
	}

	addresses := []types.Address{
		{Read: m.readCart, Write: m.writeCart},
		{Read: m.eRAM.Read, Write: m.eRAM.Write},
		{Read: m.wRAM.Read, Write: m.wRAM.Write},
		{Read: m.zRAM.Read, Write: m.zRAM.Write},
		{Read: m.readIO, Write: m.writeIO},
	}

	// 0x0000 - 0x7FFF - ROM (32kB)
	for i := 0x0000; i < 0x8000; i++ {
		m.raw[i] = &addresses[0]
	}

	// 0xA000 - 0xBFFF - external RAM (8kB)
	for i := 0xA000; i < 0xC000; i++ {
		m.raw[i] = &addresses[1]
	}

	// 0xC000 - 0xFDFF - internal RAM (8kB) and its echo
	for i := 0xC000; i < 0xFE00; i++ {
		m.raw[i] = &addresses[2]
	}

	// 0xFF00 - 0xFF7F - I/O (128B), 0xFFFF - interrupt enable
	for i := 0xFF00; i < 0xFF80; i++ {
		m.raw[i] = &addresses[4]
	}
	m.raw[types.IE] = &addresses[4]

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	for i := 0xFF80; i < 0xFFFF; i++ {
		m.raw[i] = &addresses[3]
	}
}

// AttachVideo attaches the video component to the MMU.
func (m *MMU) AttachVideo(video IOBus) {
	m.Video = video

	address := &types.Address{Read: video.Read, Write: video.Write}

	// 0x8000 - 0x9FFF - VRAM (8kB)
	for i := 0x8000; i < 0xA000; i++ {
		m.raw[i] = address
	}

	// 0xFE00 - 0xFE9F - sprite attribute table (OAM) (160B)
	for i := 0xFE00; i < 0xFEA0; i++ {
		m.raw[i] = address
	}
}

// BootROMActive reports whether the boot ROM is still overlaid
// on the start of the cartridge.
func (m *MMU) BootROMActive() bool {
	return !m.bootROMDone
}

// DisableBootROM removes the boot ROM overlay, as a write to
// types.BDIS would.
func (m *MMU) DisableBootROM() {
	m.bootROMDone = true
}

func (m *MMU) readCart(address uint16) uint8 {
	// handle the boot ROM (if enabled)
	if !m.bootROMDone && address < boot.Size {
		return m.bootROM.Read(address)
	}

	return m.Cart.Read(address)
}

func (m *MMU) writeCart(address uint16, value uint8) {
	m.Log.Warnf("write to ROM $%04X - $%02X", address, value)
	m.Cart.Write(address, value)
}

func (m *MMU) readIO(address uint16) uint8 {
	switch {
	case address == types.P1:
		return m.io.Joypad.Read(address)
	case address == types.SB || address == types.SC:
		return m.io.Serial.Read(address)
	case address >= types.DIV && address <= types.TAC:
		return m.io.Timer.Read(address)
	case address == types.IF || address == types.IE:
		return m.io.Interrupts.Read(address)
	case address >= types.NR10 && address <= types.WaveRAMEnd:
		return m.io.Sound.Read(address)
	case address >= types.LCDC && address <= types.WX:
		if m.Video != nil {
			return m.Video.Read(address)
		}
	}
	return 0
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case address == types.P1:
		m.io.Joypad.Write(address, value)
	case address == types.SB || address == types.SC:
		m.io.Serial.Write(address, value)
	case address >= types.DIV && address <= types.TAC:
		m.io.Timer.Write(address, value)
	case address == types.IF || address == types.IE:
		m.io.Interrupts.Write(address, value)
	case address >= types.NR10 && address <= types.WaveRAMEnd:
		m.io.Sound.Write(address, value)
	case address >= types.LCDC && address <= types.WX:
		if m.Video != nil {
			m.Video.Write(address, value)
		}
	case address == types.BDIS:
		// it's assumed any write to this register will disable the boot rom
		m.bootROMDone = true
	}
}

// Read returns the value at the given address. It handles all the memory
// banks, mirroring, I/O, etc.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes value to the given address. Writing to the boot ROM
// while it is overlaid is an error; every other write succeeds, even
// when the value is discarded.
func (m *MMU) Write(address uint16, value uint8) error {
	if !m.bootROMDone && address < boot.Size {
		return &Error{Addr: address, Value: value, Err: ErrBiosWrite}
	}
	m.raw[address].Write(address, value)
	return nil
}

// ReadWord returns the little-endian 16-bit value at address.
func (m *MMU) ReadWord(address uint16) uint16 {
	return types.Word(m.Read(address), m.Read(address+1))
}

// WriteWord writes value at address, low byte first.
func (m *MMU) WriteWord(address uint16, value uint16) error {
	if err := m.Write(address, uint8(value)); err != nil {
		return err
	}
	return m.Write(address+1, uint8(value>>8))
}
