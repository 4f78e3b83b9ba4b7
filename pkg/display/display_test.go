package display

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/thelolagemann/dmgboy/internal/gameboy"
	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// fakeDriver takes frames frames and then returns, unless it
// is stopped first.
type fakeDriver struct {
	frames   int
	received [][]byte
	stop     chan struct{}
	stopErr  error
}

func newFakeDriver(frames int) *fakeDriver {
	return &fakeDriver{frames: frames, stop: make(chan struct{})}
}

func (d *fakeDriver) Start(fb <-chan []byte, pressed, released chan<- joypad.Button) error {
	for len(d.received) < d.frames {
		select {
		case f := <-fb:
			d.received = append(d.received, f)
		case <-d.stop:
			return nil
		}
	}
	return nil
}

func (d *fakeDriver) Stop() error {
	close(d.stop)
	return d.stopErr
}

func newGameBoy(t *testing.T) *gameboy.GameBoy {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{0x18, 0xFE}) // JR -2
	gb, err := gameboy.NewGameBoy(rom)
	if err != nil {
		t.Fatal(err)
	}
	return gb
}

func TestRun(t *testing.T) {
	gb := newGameBoy(t)
	d := newFakeDriver(2)

	if err := Run(context.Background(), gb, d, palette.Schemes[palette.Greyscale]); err != nil {
		t.Fatal(err)
	}
	if len(d.received) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(d.received))
	}
	if len(d.received[0]) != ppu.ScreenWidth*ppu.ScreenHeight*4 {
		t.Errorf("unexpected frame size %d", len(d.received[0]))
	}
	// the screen is blank, so every pixel is white
	if d.received[0][0] != 0xFF || d.received[0][3] != 0xFF {
		t.Errorf("expected an opaque white pixel, got %v", d.received[0][:4])
	}
	if gb.CPU.Cycles < 2*gameboy.CyclesPerFrame {
		t.Errorf("expected at least 2 frames to be emulated, got %d cycles", gb.CPU.Cycles)
	}
}

func TestRun_Cancel(t *testing.T) {
	gb := newGameBoy(t)
	d := newFakeDriver(1 << 30)
	ctx, cancel := context.WithTimeout(context.Background(), 5*FrameTime)
	defer cancel()

	if err := Run(ctx, gb, d, palette.Schemes[palette.Greyscale]); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestRun_StopError(t *testing.T) {
	gb := newGameBoy(t)
	var buf bytes.Buffer
	gb.Logger = log.NewWithLevel(&buf, "debug")
	d := newFakeDriver(1 << 30)
	d.stopErr = errors.New("window already closed")
	ctx, cancel := context.WithTimeout(context.Background(), 2*FrameTime)
	defer cancel()

	if err := Run(ctx, gb, d, palette.Schemes[palette.Greyscale]); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("window already closed")) {
		t.Errorf("expected the driver's stop error to be logged, got %q", buf.String())
	}
}

func TestRegistry(t *testing.T) {
	saved := InstalledDrivers
	defer func() { InstalledDrivers = saved }()
	InstalledDrivers = nil

	var addr string
	var scale int
	Install("fake", newFakeDriver(0), []DriverOption{
		{Name: "addr", Default: ":8090", Value: &addr, Description: "listen address", Type: "string"},
		{Name: "scale", Default: 3, Value: &scale, Description: "scale", Type: "int"},
	})

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"-fake-scale", "4"}); err != nil {
		t.Fatal(err)
	}
	if addr != ":8090" || scale != 4 {
		t.Errorf("unexpected option values %q %d", addr, scale)
	}

	if _, err := GetDriver("auto"); err != nil {
		t.Errorf("expected auto to select the fake driver: %v", err)
	}
	if _, err := GetDriver("missing"); !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("expected ErrUnknownDriver, got %v", err)
	}
}

func TestFrameTime(t *testing.T) {
	if FrameTime < 16*time.Millisecond || FrameTime > 17*time.Millisecond {
		t.Errorf("unexpected frame time %v", FrameTime)
	}
}
