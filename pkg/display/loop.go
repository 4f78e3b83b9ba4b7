package display

import (
	"context"
	"time"

	"github.com/thelolagemann/dmgboy/internal/gameboy"
	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"github.com/thelolagemann/dmgboy/pkg/utils"
)

// FrameTime is the time the hardware takes to draw one frame.
const FrameTime = time.Second * gameboy.CyclesPerFrame / gameboy.ClockSpeed

// Run emulates gb in real time, sending every frame to driver
// coloured with scheme, until ctx is done, the driver is closed,
// or the emulation fails. Key events from the driver are applied
// between frames, so the GameBoy is only ever touched by the
// calling goroutine.
func Run(ctx context.Context, gb *gameboy.GameBoy, driver Driver, scheme palette.Scheme) error {
	fb := make(chan []byte, 1)
	pressed := make(chan joypad.Button, 16)
	released := make(chan joypad.Button, 16)

	driverErr := make(chan error, 1)
	go func() {
		driverErr <- driver.Start(fb, pressed, released)
	}()

	ticker := time.NewTicker(FrameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if err := driver.Stop(); err != nil {
				gb.Logger.Errorf("stopping display: %v", err)
			}
			<-driverErr
			return ctx.Err()
		case err := <-driverErr:
			return err
		case b := <-pressed:
			gb.Joypad.Press(b)
		case b := <-released:
			gb.Joypad.Release(b)
		case <-ticker.C:
			if err := gb.Frame(); err != nil {
				if stopErr := driver.Stop(); stopErr != nil {
					gb.Logger.Errorf("stopping display: %v", stopErr)
				}
				<-driverErr
				return err
			}

			frame := make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4)
			utils.FrameToRGBA(gb.PPU.Frame(), scheme, frame)

			// drop the frame if the driver hasn't taken the last one
			select {
			case fb <- frame:
			default:
			}
		}
	}
}
