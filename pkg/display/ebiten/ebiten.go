// Package ebiten provides a windowed display driver built on
// ebiten.
package ebiten

import (
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/internal/ppu"
	"github.com/thelolagemann/dmgboy/pkg/display"
	"github.com/thelolagemann/dmgboy/pkg/log"
	"github.com/thelolagemann/dmgboy/pkg/utils"
	"github.com/thelolagemann/dmgboy/pkg/utils/desktop"
)

var keyMap = map[ebiten.Key]joypad.Button{
	ebiten.KeyZ:          joypad.ButtonA,
	ebiten.KeyX:          joypad.ButtonB,
	ebiten.KeyShiftRight: joypad.ButtonSelect,
	ebiten.KeyEnter:      joypad.ButtonStart,
	ebiten.KeyArrowRight: joypad.ButtonRight,
	ebiten.KeyArrowLeft:  joypad.ButtonLeft,
	ebiten.KeyArrowUp:    joypad.ButtonUp,
	ebiten.KeyArrowDown:  joypad.ButtonDown,
}

type driver struct {
	scale int
	title string

	fb                <-chan []byte
	pressed, released chan<- joypad.Button

	frame   []byte
	texture *ebiten.Image
	stopped atomic.Bool
	log     log.Logger
}

var d = &driver{log: log.New()}

func init() {
	display.Install("ebiten", d, []display.DriverOption{
		{
			Name:        "scale",
			Default:     4,
			Value:       &d.scale,
			Description: "window scale factor",
			Type:        "int",
		},
		{
			Name:        "title",
			Default:     "dmgboy",
			Value:       &d.title,
			Description: "window title",
			Type:        "string",
		},
	})
}

// Start opens the window and runs until it is closed.
func (d *driver) Start(fb <-chan []byte, pressed, released chan<- joypad.Button) error {
	d.fb = fb
	d.pressed = pressed
	d.released = released
	d.frame = make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4)

	scale := utils.Clamp(1, d.scale, utils.MaxScale)
	ebiten.SetWindowTitle(d.title)
	ebiten.SetWindowSize(ppu.ScreenWidth*scale, ppu.ScreenHeight*scale)
	return ebiten.RunGame(d)
}

// Stop closes the window on the next update.
func (d *driver) Stop() error {
	d.stopped.Store(true)
	return nil
}

func (d *driver) Update() error {
	if d.stopped.Load() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, button := range keyMap {
		if inpututil.IsKeyJustPressed(key) {
			d.send(d.pressed, button)
		}
		if inpututil.IsKeyJustReleased(key) {
			d.send(d.released, button)
		}
	}

	// Screenshot (F12)
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if err := desktop.CopyImage(d.image()); err != nil {
			d.log.Errorf("copying screenshot: %v", err)
		}
	}

	// take the newest frame, if there is one
	for {
		select {
		case f := <-d.fb:
			d.frame = f
			continue
		default:
		}
		break
	}
	return nil
}

func (d *driver) send(ch chan<- joypad.Button, b joypad.Button) {
	select {
	case ch <- b:
	default:
		d.log.Warnf("dropped key event for button %d", b)
	}
}

func (d *driver) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	copy(img.Pix, d.frame)
	return img
}

func (d *driver) Draw(screen *ebiten.Image) {
	if d.texture == nil {
		d.texture = ebiten.NewImage(ppu.ScreenWidth, ppu.ScreenHeight)
	}
	d.texture.WritePixels(d.frame)
	screen.DrawImage(d.texture, nil)
}

func (d *driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.ScreenWidth, ppu.ScreenHeight
}
