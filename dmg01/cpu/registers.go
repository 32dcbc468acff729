package cpu

import "github.com/fpetroni/dmg01/dmg01/bit"

// Registers is the DMG-01 register file: eight 8-bit cells (F holds the
// condition flags) plus the 16-bit stack pointer. The 16-bit pairs BC, DE,
// HL and AF are views over the 8-bit cells, never separate storage.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F Flags

	SP uint16
}

// BC returns the 16-bit BC register pair.
func (r Registers) BC() uint16 {
	return bit.Combine(r.B, r.C)
}

// SetBC sets the 16-bit BC register pair.
func (r *Registers) SetBC(value uint16) {
	r.B = bit.High(value)
	r.C = bit.Low(value)
}

// DE returns the 16-bit DE register pair.
func (r Registers) DE() uint16 {
	return bit.Combine(r.D, r.E)
}

// SetDE sets the 16-bit DE register pair.
func (r *Registers) SetDE(value uint16) {
	r.D = bit.High(value)
	r.E = bit.Low(value)
}

// HL returns the 16-bit HL register pair.
func (r Registers) HL() uint16 {
	return bit.Combine(r.H, r.L)
}

// SetHL sets the 16-bit HL register pair.
func (r *Registers) SetHL(value uint16) {
	r.H = bit.High(value)
	r.L = bit.Low(value)
}

// AF returns the 16-bit AF register pair. The low byte is derived from the
// flags, so its low nibble is always zero.
func (r Registers) AF() uint16 {
	return bit.Combine(r.A, r.F.Byte())
}

// SetAF sets the 16-bit AF register pair. Non-flag bits of the low byte are
// discarded.
func (r *Registers) SetAF(value uint16) {
	r.A = bit.High(value)
	r.F = FlagsFromByte(bit.Low(value))
}
