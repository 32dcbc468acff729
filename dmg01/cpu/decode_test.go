package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode_canonicalPositions(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		want   Instruction
	}{
		{"NOP", 0x00, Instruction{Op: OpNop}},
		{"INC BC", 0x03, Instruction{Op: OpInc16, Dst: TargetBC}},
		{"INC B", 0x04, Instruction{Op: OpInc, Dst: TargetB}},
		{"DEC B", 0x05, Instruction{Op: OpDec, Dst: TargetB}},
		{"RLCA", 0x07, Instruction{Op: OpRlca}},
		{"ADD HL,BC", 0x09, Instruction{Op: OpAddHL, Src: TargetBC}},
		{"DEC BC", 0x0B, Instruction{Op: OpDec16, Dst: TargetBC}},
		{"RRCA", 0x0F, Instruction{Op: OpRrca}},
		{"RLA", 0x17, Instruction{Op: OpRla}},
		{"RRA", 0x1F, Instruction{Op: OpRra}},
		{"CPL", 0x2F, Instruction{Op: OpCpl}},
		{"INC (HL)", 0x34, Instruction{Op: OpInc, Dst: TargetHLPtr}},
		{"DEC (HL)", 0x35, Instruction{Op: OpDec, Dst: TargetHLPtr}},
		{"SCF", 0x37, Instruction{Op: OpScf}},
		{"ADD HL,SP", 0x39, Instruction{Op: OpAddHL, Src: TargetSP}},
		{"INC A", 0x3C, Instruction{Op: OpInc, Dst: TargetA}},
		{"CCF", 0x3F, Instruction{Op: OpCcf}},
		{"LD B,C", 0x41, Instruction{Op: OpLd, Dst: TargetB, Src: TargetC}},
		{"LD D,(HL)", 0x56, Instruction{Op: OpLd, Dst: TargetD, Src: TargetHLPtr}},
		{"HALT", 0x76, Instruction{Op: OpHalt}},
		{"LD (HL),A", 0x77, Instruction{Op: OpLd, Dst: TargetHLPtr, Src: TargetA}},
		{"LD A,B", 0x78, Instruction{Op: OpLd, Dst: TargetA, Src: TargetB}},
		{"ADD A,B", 0x80, Instruction{Op: OpAdd, Src: TargetB}},
		{"ADD A,(HL)", 0x86, Instruction{Op: OpAdd, Src: TargetHLPtr}},
		{"ADC A,A", 0x8F, Instruction{Op: OpAdc, Src: TargetA}},
		{"SUB B", 0x90, Instruction{Op: OpSub, Src: TargetB}},
		{"SBC A,L", 0x9D, Instruction{Op: OpSbc, Src: TargetL}},
		{"AND B", 0xA0, Instruction{Op: OpAnd, Src: TargetB}},
		{"XOR A", 0xAF, Instruction{Op: OpXor, Src: TargetA}},
		{"OR C", 0xB1, Instruction{Op: OpOr, Src: TargetC}},
		{"CP (HL)", 0xBE, Instruction{Op: OpCp, Src: TargetHLPtr}},
		{"POP BC", 0xC1, Instruction{Op: OpPop, Dst: TargetBC}},
		{"PUSH BC", 0xC5, Instruction{Op: OpPush, Src: TargetBC}},
		{"POP AF", 0xF1, Instruction{Op: OpPop, Dst: TargetAF}},
		{"PUSH AF", 0xF5, Instruction{Op: OpPush, Src: TargetAF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruction, ok := Decode(tt.opcode, false)
			assert.True(t, ok)
			assert.Equal(t, tt.want, instruction)
			assert.Equal(t, tt.name, instruction.String())
		})
	}
}

func TestDecode_undefinedOpcodes(t *testing.T) {
	// a sample of encodings outside this core: immediates, jumps, the
	// canonical illegal bytes and the CB prefix itself
	undefined := []uint8{0x01, 0x10, 0x18, 0x20, 0x27, 0x36, 0x3E, 0xC3, 0xCB, 0xCD, 0xD3, 0xDB, 0xE8, 0xF3, 0xFB, 0xFF}

	for _, opcode := range undefined {
		instruction, ok := Decode(opcode, false)
		assert.False(t, ok, "opcode 0x%02X should not decode", opcode)
		assert.False(t, instruction.Valid())
	}
}

func TestDecode_totality(t *testing.T) {
	// every unprefixed byte either decodes to exactly one valid instruction
	// or reports failure, never both
	defined := 0
	for code := 0; code <= 0xFF; code++ {
		instruction, ok := Decode(uint8(code), false)
		assert.Equal(t, ok, instruction.Valid(), "opcode 0x%02X", code)
		if ok {
			defined++
		}
	}

	// 1 NOP + 1 HALT + 7 rotate/flag ops + 12 16-bit arith + 16 INC/DEC +
	// 63 LD + 64 ALU + 8 PUSH/POP
	assert.Equal(t, 172, defined)

	// the CB table is total
	for code := 0; code <= 0xFF; code++ {
		instruction, ok := Decode(uint8(code), true)
		assert.True(t, ok, "cb opcode 0x%02X", code)
		assert.True(t, instruction.Valid(), "cb opcode 0x%02X", code)
	}
}

func TestDecode_cbTable(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		want   Instruction
	}{
		{"RLC B", 0x00, Instruction{Op: OpRlc, Dst: TargetB}},
		{"RRC E", 0x0B, Instruction{Op: OpRrc, Dst: TargetE}},
		{"RL C", 0x11, Instruction{Op: OpRl, Dst: TargetC}},
		{"RR A", 0x1F, Instruction{Op: OpRr, Dst: TargetA}},
		{"SLA H", 0x24, Instruction{Op: OpSla, Dst: TargetH}},
		{"SRA (HL)", 0x2E, Instruction{Op: OpSra, Dst: TargetHLPtr}},
		{"SWAP A", 0x37, Instruction{Op: OpSwap, Dst: TargetA}},
		{"SRL B", 0x38, Instruction{Op: OpSrl, Dst: TargetB}},
		{"BIT 0,B", 0x40, Instruction{Op: OpBit, Dst: TargetB, Bit: 0}},
		{"BIT 7,H", 0x7C, Instruction{Op: OpBit, Dst: TargetH, Bit: 7}},
		{"RES 0,A", 0x87, Instruction{Op: OpRes, Dst: TargetA, Bit: 0}},
		{"RES 6,(HL)", 0xB6, Instruction{Op: OpRes, Dst: TargetHLPtr, Bit: 6}},
		{"SET 3,D", 0xDA, Instruction{Op: OpSet, Dst: TargetD, Bit: 3}},
		{"SET 7,A", 0xFF, Instruction{Op: OpSet, Dst: TargetA, Bit: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instruction, ok := Decode(tt.opcode, true)
			assert.True(t, ok)
			assert.Equal(t, tt.want, instruction)
			assert.Equal(t, tt.name, instruction.String())
		})
	}
}

func TestDecode_everyOpHasAnEncoding(t *testing.T) {
	seen := map[Op]bool{}
	for code := 0; code <= 0xFF; code++ {
		if instruction, ok := Decode(uint8(code), false); ok {
			seen[instruction.Op] = true
		}
		instruction, _ := Decode(uint8(code), true)
		seen[instruction.Op] = true
	}

	for op := OpNop; op <= OpSet; op++ {
		assert.True(t, seen[op], "no encoding decodes to %s (op %d)", op, op)
	}
}
