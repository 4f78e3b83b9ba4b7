// Package serial provides a stub of the Game Boy serial
// port. No link partner is emulated; bytes written to the
// transfer register are logged and collected so test ROMs
// that report over serial can be read back.
package serial

import (
	"bytes"
	"io"

	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// Controller is the serial controller.
type Controller struct {
	out    bytes.Buffer
	writer io.Writer
	log    log.Logger
}

// NewController creates a new Controller.
func NewController(l log.Logger) *Controller {
	return &Controller{log: l}
}

// Read always returns 0, as there is never a device
// attached to the other end.
func (c *Controller) Read(address uint16) uint8 {
	c.log.Debugf("serial read $%04X", address)
	return 0
}

// Write logs the write, collecting bytes written to
// types.SB.
func (c *Controller) Write(address uint16, value uint8) {
	c.log.Debugf("serial write $%04X - $%02X", address, value)
	if address == types.SB {
		c.out.WriteByte(value)
		if c.writer != nil {
			if _, err := c.writer.Write([]byte{value}); err != nil {
				c.log.Errorf("serial: forwarding output: %v", err)
			}
		}
	}
}

// Attach forwards every byte written to types.SB to w as well.
func (c *Controller) Attach(w io.Writer) {
	c.writer = w
}

// Output returns everything written to types.SB so far.
func (c *Controller) Output() string {
	return c.out.String()
}
