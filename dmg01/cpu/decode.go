package cpu

import "github.com/fpetroni/dmg01/dmg01/bit"

// cbPrefix marks a two-byte opcode, the second byte selects an entry of the
// extended rotate/shift/bit table.
const cbPrefix uint8 = 0xCB

// regTargets is the operand encoding shared by every regular opcode block:
// the low three bits of the opcode select one of these, in this exact order.
var regTargets = [8]Target{
	TargetB, TargetC, TargetD, TargetE, TargetH, TargetL, TargetHLPtr, TargetA,
}

// pairTargets is the 16-bit pair encoding used by INC/DEC/ADD HL (bits 5-4).
var pairTargets = [4]Target{TargetBC, TargetDE, TargetHL, TargetSP}

// stackTargets is the pair encoding used by PUSH/POP, where slot 3 is AF.
var stackTargets = [4]Target{TargetBC, TargetDE, TargetHL, TargetAF}

// cbOps is the operation encoding of the CB table's top quarter (bits 5-3).
var cbOps = [8]Op{OpRlc, OpRrc, OpRl, OpRr, OpSla, OpSra, OpSwap, OpSrl}

// unprefixed is the decode table for single-byte opcodes, laid out to match
// the documented DMG-01 opcode table. Entries left at the zero value are
// encodings this core does not define and decode as failures.
var unprefixed [256]Instruction

func init() {
	// NOP, HALT and the flag/accumulator column of the 0x00-0x3F region.
	unprefixed[0x00] = Instruction{Op: OpNop}
	unprefixed[0x76] = Instruction{Op: OpHalt}
	unprefixed[0x07] = Instruction{Op: OpRlca}
	unprefixed[0x0F] = Instruction{Op: OpRrca}
	unprefixed[0x17] = Instruction{Op: OpRla}
	unprefixed[0x1F] = Instruction{Op: OpRra}
	unprefixed[0x2F] = Instruction{Op: OpCpl}
	unprefixed[0x37] = Instruction{Op: OpScf}
	unprefixed[0x3F] = Instruction{Op: OpCcf}

	// 16-bit INC/DEC/ADD HL and 8-bit INC/DEC, interleaved per pair row.
	for i, pair := range pairTargets {
		base := uint8(i) << 4
		unprefixed[base|0x03] = Instruction{Op: OpInc16, Dst: pair}
		unprefixed[base|0x0B] = Instruction{Op: OpDec16, Dst: pair}
		unprefixed[base|0x09] = Instruction{Op: OpAddHL, Src: pair}

		unprefixed[base|0x04] = Instruction{Op: OpInc, Dst: regTargets[i*2]}
		unprefixed[base|0x05] = Instruction{Op: OpDec, Dst: regTargets[i*2]}
		unprefixed[base|0x0C] = Instruction{Op: OpInc, Dst: regTargets[i*2+1]}
		unprefixed[base|0x0D] = Instruction{Op: OpDec, Dst: regTargets[i*2+1]}
	}

	// 0x40-0x7F: LD dst,src block. 0x76 (LD (HL),(HL)) is HALT, set above.
	for code := 0x40; code <= 0x7F; code++ {
		if code == 0x76 {
			continue
		}
		dst := regTargets[(code-0x40)>>3]
		src := regTargets[code&0x07]
		unprefixed[code] = Instruction{Op: OpLd, Dst: dst, Src: src}
	}

	// 0x80-0xBF: accumulator ALU block, eight ops of eight sources each.
	aluOps := [8]Op{OpAdd, OpAdc, OpSub, OpSbc, OpAnd, OpXor, OpOr, OpCp}
	for code := 0x80; code <= 0xBF; code++ {
		op := aluOps[(code-0x80)>>3]
		unprefixed[code] = Instruction{Op: op, Src: regTargets[code&0x07]}
	}

	// PUSH/POP columns of the 0xC0-0xFF region.
	for i, pair := range stackTargets {
		base := 0xC0 | uint8(i)<<4
		unprefixed[base|0x01] = Instruction{Op: OpPop, Dst: pair}
		unprefixed[base|0x05] = Instruction{Op: OpPush, Src: pair}
	}
}

// Decode maps an opcode byte to its Instruction. The second argument selects
// the CB-prefixed table. The boolean result is false for encodings this core
// does not define; decoding never panics.
func Decode(opcode uint8, prefixed bool) (Instruction, bool) {
	if prefixed {
		return decodeCB(opcode), true
	}

	instruction := unprefixed[opcode]
	return instruction, instruction.Valid()
}

// decodeCB decodes a CB-prefixed opcode. The extended table is fully regular,
// so the instruction is reconstructed from the opcode bit fields instead of a
// lookup: bits 7-6 pick the group, 5-3 the operation or bit index, 2-0 the
// target. Every one of the 256 values is defined.
func decodeCB(opcode uint8) Instruction {
	group := bit.ExtractBits(opcode, 7, 6)
	y := bit.ExtractBits(opcode, 5, 3)
	target := regTargets[bit.ExtractBits(opcode, 2, 0)]

	switch group {
	case 0:
		return Instruction{Op: cbOps[y], Dst: target}
	case 1:
		return Instruction{Op: OpBit, Dst: target, Bit: y}
	case 2:
		return Instruction{Op: OpRes, Dst: target, Bit: y}
	default:
		return Instruction{Op: OpSet, Dst: target, Bit: y}
	}
}
