package mmu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/thelolagemann/dmgboy/internal/boot"
	"github.com/thelolagemann/dmgboy/internal/cartridge"
	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// device records the last access made to it.
type device struct {
	mem       [0x10000]uint8
	lastWrite uint16
}

func (d *device) Read(address uint16) uint8 { return d.mem[address] }
func (d *device) Write(address uint16, value uint8) {
	d.mem[address] = value
	d.lastWrite = address
}

type fixture struct {
	mmu    *MMU
	joypad *device
	serial *device
	timer  *device
	irq    *device
	sound  *device
	video  *device
}

func newROM(title string) []byte {
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = 0xAA
	}
	for i := 0x134; i <= 0x142; i++ {
		rom[i] = 0
	}
	copy(rom[0x134:], title)
	return rom
}

func newFixture(t *testing.T, bootROM []byte, l log.Logger) *fixture {
	t.Helper()
	var b *boot.ROM
	if bootROM != nil {
		var err error
		if b, err = boot.LoadBootROM(bootROM); err != nil {
			t.Fatal(err)
		}
	}
	f := &fixture{
		joypad: &device{}, serial: &device{}, timer: &device{},
		irq: &device{}, sound: &device{}, video: &device{},
	}
	f.mmu = NewMMU(cartridge.NewCartridge(newROM("TESTROM")), b, Peripherals{
		Joypad:     f.joypad,
		Serial:     f.serial,
		Timer:      f.timer,
		Interrupts: f.irq,
		Sound:      f.sound,
	}, l)
	f.mmu.AttachVideo(f.video)
	return f
}

func write(t *testing.T, m *MMU, address uint16, value uint8) {
	t.Helper()
	if err := m.Write(address, value); err != nil {
		t.Fatalf("unexpected error writing $%04X: %v", address, err)
	}
}

func TestMMU_EchoRAM(t *testing.T) {
	f := newFixture(t, nil, nil)

	// $E000-$FDFF mirrors $C000-$DDFF
	for off := uint16(0); off < 0x1E00; off++ {
		write(t, f.mmu, 0xC000+off, uint8(off^off>>8))
	}
	for off := uint16(0); off < 0x1E00; off++ {
		if got, want := f.mmu.Read(0xE000+off), uint8(off^off>>8); got != want {
			t.Fatalf("expected echo $%04X to read $%02X, got $%02X", 0xE000+off, want, got)
		}
	}

	for off := uint16(0); off < 0x1E00; off++ {
		write(t, f.mmu, 0xE000+off, ^uint8(off))
	}
	for off := uint16(0); off < 0x1E00; off++ {
		if got, want := f.mmu.Read(0xC000+off), ^uint8(off); got != want {
			t.Fatalf("expected $%04X to read $%02X after echo write, got $%02X", 0xC000+off, want, got)
		}
	}
}

func TestMMU_BootROM(t *testing.T) {
	bootROM := bytes.Repeat([]byte{0x31}, boot.Size)
	f := newFixture(t, bootROM, nil)

	if !f.mmu.BootROMActive() {
		t.Fatal("expected boot rom to be active")
	}
	for a := uint16(0); a < boot.Size; a++ {
		if got := f.mmu.Read(a); got != 0x31 {
			t.Fatalf("expected boot rom byte $31 at $%04X, got $%02X", a, got)
		}
	}
	// the header is never covered by the boot rom
	var title []byte
	for a := uint16(0x134); a < 0x134+7; a++ {
		title = append(title, f.mmu.Read(a))
	}
	if string(title) != "TESTROM" {
		t.Errorf("expected title TESTROM, got %q", title)
	}

	write(t, f.mmu, types.BDIS, 0x01)
	if f.mmu.BootROMActive() {
		t.Fatal("expected boot rom to be disabled")
	}
	for a := uint16(0); a < boot.Size; a++ {
		if got := f.mmu.Read(a); got != 0xAA {
			t.Fatalf("expected cartridge byte $AA at $%04X, got $%02X", a, got)
		}
	}

	// the latch is permanent
	write(t, f.mmu, types.BDIS, 0x00)
	if f.mmu.BootROMActive() {
		t.Error("expected boot rom to stay disabled")
	}
}

func TestMMU_BiosWrite(t *testing.T) {
	f := newFixture(t, make([]byte, boot.Size), nil)

	err := f.mmu.Write(0x0010, 0x99)
	if !errors.Is(err, ErrBiosWrite) {
		t.Fatalf("expected ErrBiosWrite, got %v", err)
	}
	var mmuErr *Error
	if !errors.As(err, &mmuErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if mmuErr.Addr != 0x0010 || mmuErr.Value != 0x99 {
		t.Errorf("unexpected error details %+v", mmuErr)
	}

	// above the overlay the write goes to the cartridge
	write(t, f.mmu, 0x0100, 0x99)
}

func TestMMU_ROMWrite(t *testing.T) {
	var buf bytes.Buffer
	f := newFixture(t, nil, log.NewWithLevel(&buf, "warn"))

	write(t, f.mmu, 0x2000, 0x01)
	if !strings.Contains(buf.String(), "write to ROM") {
		t.Errorf("expected ROM write to be logged, got %q", buf.String())
	}
	if got := f.mmu.Read(0x2000); got != 0x01 {
		t.Errorf("expected ROM write to be stored, got $%02X", got)
	}
}

func TestMMU_Unused(t *testing.T) {
	f := newFixture(t, nil, nil)

	for _, address := range []uint16{0xFEA0, 0xFEFF, 0xFF03, 0xFF08, 0xFF0E, 0xFF4C, 0xFF7F} {
		write(t, f.mmu, address, 0x55)
		if got := f.mmu.Read(address); got != 0 {
			t.Errorf("expected $%04X to read 0, got $%02X", address, got)
		}
	}
}

func TestMMU_Words(t *testing.T) {
	f := newFixture(t, nil, nil)

	if err := f.mmu.WriteWord(0xC100, 0xBEEF); err != nil {
		t.Fatal(err)
	}
	if f.mmu.Read(0xC100) != 0xEF || f.mmu.Read(0xC101) != 0xBE {
		t.Errorf("expected little-endian layout, got $%02X $%02X", f.mmu.Read(0xC100), f.mmu.Read(0xC101))
	}
	if got := f.mmu.ReadWord(0xC100); got != 0xBEEF {
		t.Errorf("expected $BEEF, got $%04X", got)
	}
}

func TestMMU_RAM(t *testing.T) {
	f := newFixture(t, nil, nil)

	write(t, f.mmu, 0xFF80, 0x01)
	write(t, f.mmu, 0xFFFE, 0x02)
	write(t, f.mmu, 0xA000, 0x03)
	if f.mmu.Read(0xFF80) != 0x01 || f.mmu.Read(0xFFFE) != 0x02 || f.mmu.Read(0xA000) != 0x03 {
		t.Errorf("unexpected HRAM/ERAM contents")
	}
}

func TestMMU_Dispatch(t *testing.T) {
	f := newFixture(t, nil, nil)

	tests := []struct {
		address uint16
		device  *device
	}{
		{types.P1, f.joypad},
		{types.SB, f.serial},
		{types.SC, f.serial},
		{types.DIV, f.timer},
		{types.TAC, f.timer},
		{types.IF, f.irq},
		{types.IE, f.irq},
		{types.NR10, f.sound},
		{0xFF30, f.sound},
		{types.LCDC, f.video},
		{types.WX, f.video},
		{0x8000, f.video},
		{0x9FFF, f.video},
		{0xFE00, f.video},
		{0xFE9F, f.video},
	}
	for _, tt := range tests {
		write(t, f.mmu, tt.address, 0x5A)
		if tt.device.lastWrite != tt.address || tt.device.mem[tt.address] != 0x5A {
			t.Errorf("expected write to $%04X to reach its device", tt.address)
		}
		if got := f.mmu.Read(tt.address); got != 0x5A {
			t.Errorf("expected $%04X to read back $5A, got $%02X", tt.address, got)
		}
	}
}
