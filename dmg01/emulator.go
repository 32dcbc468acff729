// Package dmg01 wires the CPU interpreter core to its flat address space and
// exposes the surface a driver needs: image loading, single-instruction
// stepping and register state for debugging tools.
package dmg01

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fpetroni/dmg01/dmg01/cpu"
	"github.com/fpetroni/dmg01/dmg01/memory"
)

// Emulator owns one CPU and its memory. Access is single-threaded: a wrapper
// that wants to observe state from another goroutine must synchronize at
// instruction boundaries itself.
type Emulator struct {
	CPU *cpu.CPU
	MMU *memory.MMU
}

// New creates an emulator with empty memory.
func New() *Emulator {
	mmu := memory.New()

	return &Emulator{
		CPU: cpu.New(mmu),
		MMU: mmu,
	}
}

// NewWithFile creates an emulator with the binary image at path loaded at
// address 0x0000. Execution starts at the usual entry point, 0x0100.
func NewWithFile(path string) (*Emulator, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading image: %w", err)
	}

	e := New()
	e.LoadImage(0, image)
	return e, nil
}

// LoadImage places a program image into memory at the given offset.
func (e *Emulator) LoadImage(offset uint16, image []byte) {
	e.MMU.Load(offset, image)
	slog.Debug("loaded image", "offset", fmt.Sprintf("0x%04X", offset), "size", len(image))
}

// Step executes a single instruction and returns its cycle cost.
func (e *Emulator) Step() (int, error) {
	return e.CPU.Step()
}

// RunInstructions executes up to n instructions, stopping early when the CPU
// halts or an undefined opcode is hit. It returns the number of instructions
// executed along with the error, if any.
func (e *Emulator) RunInstructions(n int) (int, error) {
	for i := 0; i < n; i++ {
		if e.CPU.Halted() {
			return i, nil
		}
		if _, err := e.Step(); err != nil {
			return i, err
		}
	}

	return n, nil
}
