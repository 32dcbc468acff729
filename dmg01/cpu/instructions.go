package cpu

import "github.com/fpetroni/dmg01/dmg01/bit"

// execute dispatches one decoded instruction and returns its cycle cost.
// Register operands cost 4 cycles per memory access the bus would make on
// hardware; (HL) operands pay for the extra bus round-trips.
func (c *CPU) execute(i Instruction) int {
	switch i.Op {
	case OpNop:
		return 4

	case OpHalt:
		c.halted = true
		return 4

	case OpLd:
		c.write8(i.Dst, c.read8(i.Src))
		if i.Dst == TargetHLPtr || i.Src == TargetHLPtr {
			return 8
		}
		return 4

	case OpAdd:
		c.add(c.read8(i.Src), 0)
		return memCycles(i.Src, 4, 8)
	case OpAdc:
		c.add(c.read8(i.Src), c.F.carryBit())
		return memCycles(i.Src, 4, 8)
	case OpSub:
		c.A = c.sub(c.read8(i.Src), 0)
		return memCycles(i.Src, 4, 8)
	case OpSbc:
		c.A = c.sub(c.read8(i.Src), c.F.carryBit())
		return memCycles(i.Src, 4, 8)
	case OpCp:
		// same flags as SUB, result discarded
		c.sub(c.read8(i.Src), 0)
		return memCycles(i.Src, 4, 8)
	case OpAnd:
		c.and(c.read8(i.Src))
		return memCycles(i.Src, 4, 8)
	case OpXor:
		c.xor(c.read8(i.Src))
		return memCycles(i.Src, 4, 8)
	case OpOr:
		c.or(c.read8(i.Src))
		return memCycles(i.Src, 4, 8)

	case OpInc:
		c.write8(i.Dst, c.inc(c.read8(i.Dst)))
		return memCycles(i.Dst, 4, 12)
	case OpDec:
		c.write8(i.Dst, c.dec(c.read8(i.Dst)))
		return memCycles(i.Dst, 4, 12)

	case OpAddHL:
		c.addToHL(c.read16(i.Src))
		return 8
	case OpInc16:
		// 16-bit INC/DEC touch no flags
		c.write16(i.Dst, c.read16(i.Dst)+1)
		return 8
	case OpDec16:
		c.write16(i.Dst, c.read16(i.Dst)-1)
		return 8

	case OpPush:
		c.pushStack(c.read16(i.Src))
		return 16
	case OpPop:
		c.write16(i.Dst, c.popStack())
		return 12

	case OpRlca:
		c.A = c.rlc(c.A)
		c.F.Zero = false
		return 4
	case OpRrca:
		c.A = c.rrc(c.A)
		c.F.Zero = false
		return 4
	case OpRla:
		c.A = c.rl(c.A)
		c.F.Zero = false
		return 4
	case OpRra:
		c.A = c.rr(c.A)
		c.F.Zero = false
		return 4

	case OpCpl:
		c.A = ^c.A
		c.F.Subtract = true
		c.F.HalfCarry = true
		return 4
	case OpScf:
		c.F.Carry = true
		c.F.Subtract = false
		c.F.HalfCarry = false
		return 4
	case OpCcf:
		c.F.Carry = !c.F.Carry
		c.F.Subtract = false
		c.F.HalfCarry = false
		return 4

	case OpRlc:
		c.write8(i.Dst, c.rlc(c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	case OpRrc:
		c.write8(i.Dst, c.rrc(c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	case OpRl:
		c.write8(i.Dst, c.rl(c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	case OpRr:
		c.write8(i.Dst, c.rr(c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	case OpSla:
		c.write8(i.Dst, c.sla(c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	case OpSra:
		c.write8(i.Dst, c.sra(c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	case OpSwap:
		c.write8(i.Dst, c.swap(c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	case OpSrl:
		c.write8(i.Dst, c.srl(c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)

	case OpBit:
		c.bitTest(i.Bit, c.read8(i.Dst))
		return memCycles(i.Dst, 8, 12)
	case OpRes:
		c.write8(i.Dst, bit.Clear(i.Bit, c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	case OpSet:
		c.write8(i.Dst, bit.Set(i.Bit, c.read8(i.Dst)))
		return memCycles(i.Dst, 8, 16)
	}

	return 0
}

// memCycles picks the cycle cost depending on whether the operand lives in a
// register or behind the (HL) pointer.
func memCycles(target Target, register, memory int) int {
	if target == TargetHLPtr {
		return memory
	}
	return register
}

// add sets A to A + value + carry (0 or 1), updating all four flags.
func (c *CPU) add(value, carry uint8) {
	a := c.A
	result := a + value + carry

	c.F = Flags{
		Zero:      result == 0,
		Carry:     uint16(a)+uint16(value)+uint16(carry) > 0xFF,
		HalfCarry: bit.HalfCarryAdd(a, value, carry),
	}

	c.A = result
}

// sub returns A - value - carry (0 or 1), updating all four flags. SUB and
// SBC store the result back into A, CP only keeps the flags.
func (c *CPU) sub(value, carry uint8) uint8 {
	a := c.A
	result := a - value - carry

	c.F = Flags{
		Zero:      result == 0,
		Subtract:  true,
		Carry:     uint16(value)+uint16(carry) > uint16(a),
		HalfCarry: bit.HalfBorrowSub(a, value, carry),
	}

	return result
}

func (c *CPU) and(value uint8) {
	c.A &= value
	c.F = Flags{Zero: c.A == 0, HalfCarry: true}
}

func (c *CPU) or(value uint8) {
	c.A |= value
	c.F = Flags{Zero: c.A == 0}
}

func (c *CPU) xor(value uint8) {
	c.A ^= value
	c.F = Flags{Zero: c.A == 0}
}

// inc increments an 8-bit value by one. Carry is left untouched, only
// Zero/Subtract/HalfCarry change.
func (c *CPU) inc(value uint8) uint8 {
	result := value + 1

	c.F.Zero = result == 0
	c.F.Subtract = false
	c.F.HalfCarry = value&0xF == 0xF

	return result
}

// dec decrements an 8-bit value by one. Carry is left untouched.
func (c *CPU) dec(value uint8) uint8 {
	result := value - 1

	c.F.Zero = result == 0
	c.F.Subtract = true
	c.F.HalfCarry = value&0xF == 0

	return result
}

// addToHL adds a 16-bit value into HL. The half carry is the bit 11 carry,
// not the 8-bit nibble one, and Zero is left untouched.
func (c *CPU) addToHL(value uint16) {
	hl := c.HL()

	c.F.Subtract = false
	c.F.Carry = uint32(hl)+uint32(value) > 0xFFFF
	c.F.HalfCarry = hl&0xFFF+value&0xFFF > 0xFFF

	c.SetHL(hl + value)
}

// setRotateFlags is shared by the rotate/shift family: Zero from the result,
// Carry from the bit shifted out, the others cleared.
func (c *CPU) setRotateFlags(result, carried uint8) {
	c.F = Flags{Zero: result == 0, Carry: carried != 0}
}

// rlc rotates left, bit 7 wraps to bit 0 and into Carry.
func (c *CPU) rlc(value uint8) uint8 {
	carried := value >> 7
	result := value<<1 | carried
	c.setRotateFlags(result, carried)
	return result
}

// rl rotates left through Carry: the old Carry becomes bit 0.
func (c *CPU) rl(value uint8) uint8 {
	result := value<<1 | c.F.carryBit()
	c.setRotateFlags(result, value>>7)
	return result
}

// rrc rotates right, bit 0 wraps to bit 7 and into Carry.
func (c *CPU) rrc(value uint8) uint8 {
	carried := value & 1
	result := value>>1 | carried<<7
	c.setRotateFlags(result, carried)
	return result
}

// rr rotates right through Carry: the old Carry becomes bit 7.
func (c *CPU) rr(value uint8) uint8 {
	result := value>>1 | c.F.carryBit()<<7
	c.setRotateFlags(result, value&1)
	return result
}

// sla shifts left, bit 0 filled with zero.
func (c *CPU) sla(value uint8) uint8 {
	result := value << 1
	c.setRotateFlags(result, value>>7)
	return result
}

// sra shifts right arithmetically, bit 7 keeps its value.
func (c *CPU) sra(value uint8) uint8 {
	result := value>>1 | value&0x80
	c.setRotateFlags(result, value&1)
	return result
}

// srl shifts right, bit 7 filled with zero.
func (c *CPU) srl(value uint8) uint8 {
	result := value >> 1
	c.setRotateFlags(result, value&1)
	return result
}

// swap exchanges the high and low nibbles.
func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.setRotateFlags(result, 0)
	return result
}

// bitTest sets Zero from the complement of the tested bit. The register and
// the Carry flag are untouched.
func (c *CPU) bitTest(index, value uint8) {
	c.F.Zero = !bit.IsSet(index, value)
	c.F.Subtract = false
	c.F.HalfCarry = true
}

// pushStack pushes a word onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.bus.Write(c.SP, bit.High(value))
	c.SP--
	c.bus.Write(c.SP, bit.Low(value))
}

// popStack pops a word off the stack.
func (c *CPU) popStack() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++

	return bit.Combine(high, low)
}
