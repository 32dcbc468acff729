// Package monitor is a terminal front-end for inspecting the CPU while
// stepping through a program: registers, flags, a stack preview and a
// disassembly window around the program counter.
package monitor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/fpetroni/dmg01/dmg01"
	"github.com/fpetroni/dmg01/dmg01/disasm"
)

const (
	disasmLines = 16
	stackBytes  = 8

	// instructions executed per 'r' keypress
	runBatch = 1000
)

// Monitor drives a tcell screen over an emulator instance.
type Monitor struct {
	emu    *dmg01.Emulator
	screen tcell.Screen

	running bool
	status  string
}

// New creates a monitor for the given emulator.
func New(emu *dmg01.Emulator) *Monitor {
	return &Monitor{
		emu:    emu,
		status: "ready",
	}
}

// Run initializes the terminal and blocks inside the event loop until the
// user quits. Keys: s steps one instruction, r runs a batch, q quits.
func (m *Monitor) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}

	m.screen = screen
	m.running = true

	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	for m.running {
		m.draw()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			m.handleKey(ev)
		}
	}

	return nil
}

func (m *Monitor) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		m.running = false
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'q':
		m.running = false
	case 's':
		m.step(1)
	case 'r':
		m.step(runBatch)
	}
}

func (m *Monitor) step(n int) {
	executed, err := m.emu.RunInstructions(n)

	switch {
	case err != nil:
		// decode failure leaves the CPU untouched, keep it on screen
		m.status = fmt.Sprintf("stopped after %d: %v", executed, err)
	case m.emu.CPU.Halted():
		m.status = fmt.Sprintf("halted after %d instructions", executed)
	default:
		m.status = fmt.Sprintf("executed %d instructions", executed)
	}
}

func (m *Monitor) draw() {
	m.screen.Clear()

	c := m.emu.CPU

	lines := []string{
		"dmg01 monitor  [s]tep  [r]un  [q]uit",
		"",
		fmt.Sprintf("A: 0x%02X  F: 0x%02X [%s]", c.A, c.F.Byte(), c.F),
		fmt.Sprintf("B: 0x%02X  C: 0x%02X", c.B, c.C),
		fmt.Sprintf("D: 0x%02X  E: 0x%02X", c.D, c.E),
		fmt.Sprintf("H: 0x%02X  L: 0x%02X", c.H, c.L),
		fmt.Sprintf("SP: 0x%04X  PC: 0x%04X", c.SP, c.PC()),
		fmt.Sprintf("Cycles: %d", c.Cycles()),
		m.stackLine(),
		"",
		m.status,
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for i, line := range lines {
		m.drawText(0, i, line, style)
	}

	m.drawDisassembly(40, 2)

	m.screen.Show()
}

func (m *Monitor) stackLine() string {
	sp := m.emu.CPU.SP
	line := "Stack:"
	for i := uint16(0); i < stackBytes; i++ {
		line += fmt.Sprintf(" %02X", m.emu.MMU.Read(sp+i))
	}
	return line
}

func (m *Monitor) drawDisassembly(startX, startY int) {
	pc := m.emu.CPU.PC()
	lines := disasm.DisassembleRange(pc, disasmLines, m.emu.MMU)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	currentStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	for i, line := range lines {
		useStyle := style
		if line.Address == pc {
			useStyle = currentStyle
		}
		m.drawText(startX, startY+i, disasm.FormatLine(line, line.Address == pc), useStyle)
	}
}

func (m *Monitor) drawText(x, y int, text string, style tcell.Style) {
	width, height := m.screen.Size()
	if y >= height {
		return
	}

	for _, ch := range text {
		if x >= width {
			break
		}
		m.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
