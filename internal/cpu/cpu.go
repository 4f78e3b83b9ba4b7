// Package cpu implements the Sharp LR35902 found in the original
// Game Boy. Instructions are described by two immutable tables of
// Instruction descriptors, one for the unprefixed opcodes and one
// for the opcodes following the 0xCB prefix.
package cpu

import (
	"github.com/thelolagemann/dmgboy/internal/interrupts"
	"github.com/thelolagemann/dmgboy/internal/types"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
	// HaltCycles is the number of cycles that pass for each step
	// while the CPU is halted or stopped.
	HaltCycles = 4
	// InterruptCycles is the cost of dispatching an interrupt.
	InterruptCycles = 20
)

// Bus is the view of memory the CPU executes against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8) error
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers and the flags.
	Registers
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// IME is the interrupt master enable latch.
	IME bool
	// Cycles is the total number of cycles executed.
	Cycles uint64

	IRQ *interrupts.Service
	bus Bus

	halted  bool
	stopped bool
	jumped  bool // set by handlers that load PC

	fault  error
	busErr error
}

// NewCPU creates a new CPU instance with the given Bus and
// interrupt service. All registers start at zero.
func NewCPU(bus Bus, irq *interrupts.Service) *CPU {
	return &CPU{
		bus: bus,
		IRQ: irq,
	}
}

// Halted reports whether the CPU is waiting in HALT.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is waiting in STOP.
func (c *CPU) Stopped() bool { return c.stopped }

// Fault returns the error that stopped the CPU, if any.
func (c *CPU) Fault() error { return c.fault }

// SetPC sets the program counter. Values outside of the 16-bit
// address space fault the CPU.
func (c *CPU) SetPC(pc int) error {
	if pc < 0 || pc > 0xFFFF {
		return c.raise(&Error{Err: ErrAddressRange, Addr: c.PC})
	}
	c.PC = uint16(pc)
	return nil
}

// SetSP sets the stack pointer. Values outside of the 16-bit
// address space fault the CPU.
func (c *CPU) SetSP(sp int) error {
	if sp < 0 || sp > 0xFFFF {
		return c.raise(&Error{Err: ErrAddressRange, Addr: c.PC})
	}
	c.SP = uint16(sp)
	return nil
}

func (c *CPU) raise(err *Error) error {
	c.fault = err
	return err
}

// Step executes a single instruction, or a single machine cycle
// when halted or stopped, and then services at most one pending
// interrupt. It returns the number of cycles that passed. Once an
// error has been returned the CPU is faulted and every following
// call returns the same error.
func (c *CPU) Step() (uint8, error) {
	if c.fault != nil {
		return 0, c.fault
	}

	var cycles uint8
	if c.halted || c.stopped {
		cycles = HaltCycles
	} else {
		opcode := c.bus.Read(c.PC)
		n, err := c.execute(opcode, &InstructionSet[opcode])
		if err != nil {
			return 0, err
		}
		cycles = n
	}

	pc := c.PC
	cycles += c.serviceInterrupts()
	if c.busErr != nil {
		return 0, c.raise(&Error{Err: c.takeBusErr(), Addr: pc})
	}

	c.Cycles += uint64(cycles)
	return cycles, nil
}

// execute runs the instruction described by in, as fetched from
// the byte opcode at PC. It returns the cycles the instruction took.
func (c *CPU) execute(opcode uint8, in *Instruction) (uint8, error) {
	if in.Illegal {
		return 0, c.raise(&Error{Err: ErrIllegalOpcode, Addr: c.PC, Opcode: opcode})
	}
	if in.Execute == nil {
		return 0, c.raise(&Error{Err: ErrUnimplementedOpcode, Addr: c.PC, Opcode: opcode, Mnemonic: in.Mnemonic})
	}

	var addr uint16
	if in.Address != nil {
		addr = in.Address(c, c.bus)
	}

	pc := c.PC
	c.jumped = false
	extra := in.Execute(c, c.bus, addr)
	if c.busErr != nil {
		return 0, c.raise(&Error{Err: c.takeBusErr(), Addr: pc, Opcode: opcode, Mnemonic: in.Mnemonic})
	}
	if !c.jumped {
		c.PC += uint16(in.Length)
	}

	return in.Cycles + extra, nil
}

// serviceInterrupts dispatches the highest priority pending
// interrupt if the master enable latch is set, and returns the
// cycles spent doing so.
func (c *CPU) serviceInterrupts() uint8 {
	if !c.IME {
		// a pending interrupt still ends HALT, it just isn't serviced
		if c.halted && c.IRQ.Pending()&0x1F != 0 {
			c.halted = false
		}
		// only the joypad line can end STOP
		if c.stopped && c.IRQ.Pending()&interrupts.JoypadFlag != 0 {
			c.stopped = false
		}
		return 0
	}
	if c.IRQ.Pending() == 0 {
		return 0
	}

	c.IME = false
	c.halted = false
	c.stopped = false

	vector, ok := c.IRQ.Vector()
	if !ok {
		c.IME = true
		return 0
	}

	c.push(c.bus, c.PC)
	c.PC = vector
	return InterruptCycles
}

func (c *CPU) takeBusErr() error {
	err := c.busErr
	c.busErr = nil
	return err
}

// write writes to the bus, holding on to the first error so that
// it can be reported once the handler returns.
func (c *CPU) write(b Bus, address uint16, value uint8) {
	if err := b.Write(address, value); err != nil && c.busErr == nil {
		c.busErr = err
	}
}

// push pushes a word onto the stack, high byte first.
func (c *CPU) push(b Bus, value uint16) {
	c.SP--
	c.write(b, c.SP, uint8(value>>8))
	c.SP--
	c.write(b, c.SP, uint8(value))
}

// pop pops a word off the stack.
func (c *CPU) pop(b Bus) uint16 {
	low := b.Read(c.SP)
	c.SP++
	high := b.Read(c.SP)
	c.SP++
	return types.Word(low, high)
}

// get returns the value of the operand r.
func (c *CPU) get(b Bus, r Reg) uint8 {
	switch r {
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	case RegHLIndirect:
		return b.Read(c.HL())
	}
	return c.A
}

// set assigns value to the operand r.
func (c *CPU) set(b Bus, r Reg, value uint8) {
	switch r {
	case RegB:
		c.B = value
	case RegC:
		c.C = value
	case RegD:
		c.D = value
	case RegE:
		c.E = value
	case RegH:
		c.H = value
	case RegL:
		c.L = value
	case RegHLIndirect:
		c.write(b, c.HL(), value)
	default:
		c.A = value
	}
}

func readWord(b Bus, address uint16) uint16 {
	return types.Word(b.Read(address), b.Read(address+1))
}
