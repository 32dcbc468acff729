package cpu

import "fmt"

// Op identifies one instruction mnemonic.
type Op uint8

const (
	// OpInvalid is the zero value, it marks undefined encodings.
	OpInvalid Op = iota

	OpNop
	OpHalt
	OpLd

	// 8-bit ALU, accumulator as implicit destination.
	OpAdd
	OpAdc
	OpSub
	OpSbc
	OpAnd
	OpXor
	OpOr
	OpCp

	// single-operand 8-bit arithmetic
	OpInc
	OpDec

	// 16-bit arithmetic
	OpAddHL
	OpInc16
	OpDec16

	// stack
	OpPush
	OpPop

	// accumulator rotates and flag ops
	OpRlca
	OpRrca
	OpRla
	OpRra
	OpCpl
	OpScf
	OpCcf

	// CB-prefixed rotate/shift/bit family
	OpRlc
	OpRrc
	OpRl
	OpRr
	OpSla
	OpSra
	OpSwap
	OpSrl
	OpBit
	OpRes
	OpSet
)

var opNames = map[Op]string{
	OpNop:   "NOP",
	OpHalt:  "HALT",
	OpLd:    "LD",
	OpAdd:   "ADD",
	OpAdc:   "ADC",
	OpSub:   "SUB",
	OpSbc:   "SBC",
	OpAnd:   "AND",
	OpXor:   "XOR",
	OpOr:    "OR",
	OpCp:    "CP",
	OpInc:   "INC",
	OpDec:   "DEC",
	OpAddHL: "ADD",
	OpInc16: "INC",
	OpDec16: "DEC",
	OpPush:  "PUSH",
	OpPop:   "POP",
	OpRlca:  "RLCA",
	OpRrca:  "RRCA",
	OpRla:   "RLA",
	OpRra:   "RRA",
	OpCpl:   "CPL",
	OpScf:   "SCF",
	OpCcf:   "CCF",
	OpRlc:   "RLC",
	OpRrc:   "RRC",
	OpRl:    "RL",
	OpRr:    "RR",
	OpSla:   "SLA",
	OpSra:   "SRA",
	OpSwap:  "SWAP",
	OpSrl:   "SRL",
	OpBit:   "BIT",
	OpRes:   "RES",
	OpSet:   "SET",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "??"
}

// Target selects the operand of an instruction: an 8-bit register, the
// memory cell addressed by HL, or a 16-bit register pair.
type Target uint8

const (
	TargetNone Target = iota

	TargetA
	TargetB
	TargetC
	TargetD
	TargetE
	TargetH
	TargetL
	TargetHLPtr // the byte at address HL

	TargetBC
	TargetDE
	TargetHL
	TargetSP
	TargetAF
)

var targetNames = [...]string{
	TargetNone:  "",
	TargetA:     "A",
	TargetB:     "B",
	TargetC:     "C",
	TargetD:     "D",
	TargetE:     "E",
	TargetH:     "H",
	TargetL:     "L",
	TargetHLPtr: "(HL)",
	TargetBC:    "BC",
	TargetDE:    "DE",
	TargetHL:    "HL",
	TargetSP:    "SP",
	TargetAF:    "AF",
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "??"
}

// Instruction is a decoded opcode: a mnemonic plus the operand(s) it acts on.
// Single-operand read-modify-write forms use Dst, accumulator ALU forms and
// PUSH use Src, BIT/RES/SET additionally carry the bit index.
// Instructions are immutable values produced by Decode.
type Instruction struct {
	Op  Op
	Dst Target
	Src Target
	Bit uint8
}

// Valid reports whether the instruction is a defined encoding.
func (i Instruction) Valid() bool {
	return i.Op != OpInvalid
}

func (i Instruction) String() string {
	switch i.Op {
	case OpInvalid:
		return "??"
	case OpNop, OpHalt, OpRlca, OpRrca, OpRla, OpRra, OpCpl, OpScf, OpCcf:
		return i.Op.String()
	case OpLd:
		return fmt.Sprintf("%s %s,%s", i.Op, i.Dst, i.Src)
	case OpAdd, OpAdc, OpSbc:
		return fmt.Sprintf("%s A,%s", i.Op, i.Src)
	case OpAddHL:
		return fmt.Sprintf("%s HL,%s", i.Op, i.Src)
	case OpSub, OpAnd, OpXor, OpOr, OpCp, OpPush:
		return fmt.Sprintf("%s %s", i.Op, i.Src)
	case OpBit, OpRes, OpSet:
		return fmt.Sprintf("%s %d,%s", i.Op, i.Bit, i.Dst)
	default:
		return fmt.Sprintf("%s %s", i.Op, i.Dst)
	}
}
