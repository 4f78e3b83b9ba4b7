// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a frequency
// configured using the types.TAC register.
package timer

import (
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
)

const (
	// cyclesPerTick is the number of clock cycles in one main
	// timer tick.
	cyclesPerTick = 4
	// ticksPerDiv is the number of main ticks between two
	// increments of types.DIV.
	ticksPerDiv = 16
)

// rates holds the number of main ticks between two increments
// of types.TIMA, indexed by the input clock select bits of
// types.TAC.
var rates = [4]uint16{64, 1, 4, 16}

// Controller is a timer controller. It is used to generate
// interrupts at a specific frequency. The frequency can be
// configured using the types.TAC register.
type Controller struct {
	div  uint8
	tima uint8
	tma  uint8
	tac  uint8

	// clocks
	sub     uint16 // cycles not yet converted into a main tick
	main    uint16 // main ticks since the last TIMA increment
	divTick uint16 // main ticks since the last DIV increment

	irq *interrupts.Service
}

// NewController returns a new timer controller.
func NewController(irq *interrupts.Service) *Controller {
	return &Controller{irq: irq}
}

// Enabled returns true if TIMA is counting.
func (c *Controller) Enabled() bool {
	return c.tac&types.Bit2 != 0
}

// Step advances the timer by the given number of clock cycles.
func (c *Controller) Step(cycles uint16) {
	c.sub += cycles
	for c.sub >= cyclesPerTick {
		c.sub -= cyclesPerTick
		c.main++

		c.divTick++
		if c.divTick == ticksPerDiv {
			c.divTick = 0
			c.div++
		}

		if c.Enabled() && c.main >= rates[c.tac&0x3] {
			c.increment()
		}
	}
}

// increment increments TIMA, reloading it from TMA and
// requesting a timer interrupt when it overflows.
func (c *Controller) increment() {
	c.main = 0
	c.tima++
	if c.tima == 0 {
		c.tima = c.tma
		c.irq.Request(interrupts.TimerFlag)
	}
}

// Read returns the value of the timer register at address.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return c.div
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac
	}
	return 0
}

// Write writes value to the timer register at address. Any
// write to types.DIV resets it.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		c.div = 0
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.tac = value & 0x7
	}
}
