package cpu

import (
	"errors"
	"fmt"
)

// Bus provides the CPU's view of the address space. The core only needs the
// byte-level pair; memory-mapped devices wrap this interface externally.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// ErrUnknownOpcode is returned by Step when the fetched byte has no defined
// encoding. The failing Step mutates no state, so a caller may inspect the
// machine exactly as it was before the fetch.
var ErrUnknownOpcode = errors.New("unknown opcode")

// CPU is the DMG-01 execution engine: the register file plus the program
// counter, driven one fetch-decode-execute transition per Step call.
type CPU struct {
	Registers

	pc     uint16
	halted bool
	cycles uint64

	bus Bus
}

// New returns a CPU wired to the given bus, with registers in the usual
// post-boot state.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}

	c.SetAF(0x01B0)
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.SP = 0xFFFE
	c.pc = 0x0100

	return c
}

// Step executes exactly one instruction: fetch the opcode at PC (two bytes
// for the CB-prefixed forms), decode, advance PC past the consumed bytes and
// dispatch. It returns the elapsed machine cycles.
//
// An undefined opcode returns a wrapped ErrUnknownOpcode and leaves the
// registers, PC and memory untouched: the policy is halt-and-report, the
// caller decides whether to stop or to skip the byte.
//
// A halted CPU burns 4 cycles per Step without fetching. There is no wake-up
// path in this core, interrupt delivery belongs to an external collaborator.
func (c *CPU) Step() (int, error) {
	if c.halted {
		c.cycles += 4
		return 4, nil
	}

	opcode := c.bus.Read(c.pc)
	prefixed := opcode == cbPrefix
	length := uint16(1)
	if prefixed {
		opcode = c.bus.Read(c.pc + 1)
		length = 2
	}

	instruction, ok := Decode(opcode, prefixed)
	if !ok {
		return 0, fmt.Errorf("%w: 0x%02X at 0x%04X", ErrUnknownOpcode, opcode, c.pc)
	}

	c.pc += length
	cycles := c.execute(instruction)
	c.cycles += uint64(cycles)

	return cycles, nil
}

// PC returns the program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// SetPC moves the program counter, e.g. to the entry point of a loaded image.
func (c *CPU) SetPC(address uint16) {
	c.pc = address
}

// Cycles returns the total machine cycles elapsed since construction.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Halted reports whether the CPU has executed HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// read8 resolves an 8-bit operand target, going through the bus for (HL).
func (c *CPU) read8(target Target) uint8 {
	switch target {
	case TargetA:
		return c.A
	case TargetB:
		return c.B
	case TargetC:
		return c.C
	case TargetD:
		return c.D
	case TargetE:
		return c.E
	case TargetH:
		return c.H
	case TargetL:
		return c.L
	case TargetHLPtr:
		return c.bus.Read(c.HL())
	}

	return 0
}

// write8 stores into an 8-bit operand target, going through the bus for (HL).
func (c *CPU) write8(target Target, value uint8) {
	switch target {
	case TargetA:
		c.A = value
	case TargetB:
		c.B = value
	case TargetC:
		c.C = value
	case TargetD:
		c.D = value
	case TargetE:
		c.E = value
	case TargetH:
		c.H = value
	case TargetL:
		c.L = value
	case TargetHLPtr:
		c.bus.Write(c.HL(), value)
	}
}

// read16 resolves a 16-bit register pair target.
func (c *CPU) read16(target Target) uint16 {
	switch target {
	case TargetBC:
		return c.BC()
	case TargetDE:
		return c.DE()
	case TargetHL:
		return c.HL()
	case TargetSP:
		return c.SP
	case TargetAF:
		return c.AF()
	}

	return 0
}

// write16 stores into a 16-bit register pair target. Writing AF discards the
// low nibble of the flag byte, as the register file does.
func (c *CPU) write16(target Target, value uint16) {
	switch target {
	case TargetBC:
		c.SetBC(value)
	case TargetDE:
		c.SetDE(value)
	case TargetHL:
		c.SetHL(value)
	case TargetSP:
		c.SP = value
	case TargetAF:
		c.SetAF(value)
	}
}
