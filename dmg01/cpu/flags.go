package cpu

import "github.com/fpetroni/dmg01/dmg01/bit"

// Bit positions of the four condition flags inside the F register.
// The low nibble of F is unused and always reads back as zero.
const (
	zeroFlagPosition      = 7
	subtractFlagPosition  = 6
	halfCarryFlagPosition = 5
	carryFlagPosition     = 4
)

// Flags is the F register of the CPU. The four conditions are kept as
// booleans and packed into a byte only at the AF boundary.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte packs the flags into their byte representation.
// Bits 3-0 are always zero so that packing is deterministic.
func (f Flags) Byte() uint8 {
	var b uint8
	if f.Zero {
		b = bit.Set(zeroFlagPosition, b)
	}
	if f.Subtract {
		b = bit.Set(subtractFlagPosition, b)
	}
	if f.HalfCarry {
		b = bit.Set(halfCarryFlagPosition, b)
	}
	if f.Carry {
		b = bit.Set(carryFlagPosition, b)
	}
	return b
}

// FlagsFromByte unpacks a byte into a Flags value. The low nibble of the
// input is ignored, it is not representable and never stored.
func FlagsFromByte(b uint8) Flags {
	return Flags{
		Zero:      bit.IsSet(zeroFlagPosition, b),
		Subtract:  bit.IsSet(subtractFlagPosition, b),
		HalfCarry: bit.IsSet(halfCarryFlagPosition, b),
		Carry:     bit.IsSet(carryFlagPosition, b),
	}
}

// carryBit returns 1 if the carry flag is set, 0 otherwise.
func (f Flags) carryBit() uint8 {
	if f.Carry {
		return 1
	}

	return 0
}

// String returns the conventional ZNHC notation, e.g. "Z--C".
func (f Flags) String() string {
	s := [4]byte{'-', '-', '-', '-'}
	if f.Zero {
		s[0] = 'Z'
	}
	if f.Subtract {
		s[1] = 'N'
	}
	if f.HalfCarry {
		s[2] = 'H'
	}
	if f.Carry {
		s[3] = 'C'
	}
	return string(s[:])
}
