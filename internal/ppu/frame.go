package ppu

import "github.com/cespare/xxhash"

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// Frame holds one output shade per pixel, indexed [y][x].
type Frame [ScreenHeight][ScreenWidth]uint8

// Hash returns the xxhash digest of the frame.
func (f *Frame) Hash() uint64 {
	d := xxhash.New()
	for y := range f {
		d.Write(f[y][:])
	}
	return d.Sum64()
}

// Sink receives every completed frame. The frame is only
// valid for the duration of the call.
type Sink interface {
	Blit(frame *Frame)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(frame *Frame)

// Blit calls f(frame).
func (f SinkFunc) Blit(frame *Frame) {
	f(frame)
}
