package disasm

import (
	"fmt"

	"github.com/fpetroni/dmg01/dmg01/cpu"
	"github.com/fpetroni/dmg01/dmg01/memory"
)

// Line represents a single disassembled instruction.
type Line struct {
	Address     uint16
	Instruction string
	Length      int
}

// DisassembleAt disassembles the instruction at the given program counter.
// Undefined encodings render as a raw data byte so a listing never stops at
// a hole in the table.
func DisassembleAt(pc uint16, mmu *memory.MMU) Line {
	opcode := mmu.Read(pc)

	if opcode == 0xCB {
		instruction, _ := cpu.Decode(mmu.Read(pc+1), true)
		return Line{
			Address:     pc,
			Instruction: instruction.String(),
			Length:      2,
		}
	}

	instruction, ok := cpu.Decode(opcode, false)
	if !ok {
		return Line{
			Address:     pc,
			Instruction: fmt.Sprintf("DB 0x%02X", opcode),
			Length:      1,
		}
	}

	return Line{
		Address:     pc,
		Instruction: instruction.String(),
		Length:      1,
	}
}

// DisassembleRange disassembles up to count instructions starting from the
// given PC, stopping at the end of the address space.
func DisassembleRange(startPC uint16, count int, mmu *memory.MMU) []Line {
	lines := make([]Line, 0, count)
	pc := uint32(startPC)

	for i := 0; i < count && pc <= 0xFFFF; i++ {
		line := DisassembleAt(uint16(pc), mmu)
		lines = append(lines, line)
		pc += uint32(line.Length)
	}

	return lines
}

// FormatLine formats a disassembly line for display, marking the current PC.
func FormatLine(line Line, isCurrentPC bool) string {
	prefix := " "
	if isCurrentPC {
		prefix = ">"
	}

	return fmt.Sprintf("%s 0x%04X: %s", prefix, line.Address, line.Instruction)
}
