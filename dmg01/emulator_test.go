package dmg01

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fpetroni/dmg01/dmg01/cpu"
)

func TestEmulator_RunInstructions(t *testing.T) {
	emu := New()

	emu.LoadImage(0x0100, []byte{
		0xAF, // XOR A
		0x3C, // INC A
		0x76, // HALT
		0x00, // NOP, never reached
	})

	executed, err := emu.RunInstructions(100)

	assert.NoError(t, err)
	assert.Equal(t, 3, executed)
	assert.True(t, emu.CPU.Halted())
	assert.Equal(t, uint8(0x01), emu.CPU.A)
}

func TestEmulator_RunInstructionsStopsOnDecodeFailure(t *testing.T) {
	emu := New()

	emu.LoadImage(0x0100, []byte{
		0x3C, // INC A
		0xD3, // illegal
	})

	executed, err := emu.RunInstructions(100)

	assert.ErrorIs(t, err, cpu.ErrUnknownOpcode)
	assert.Equal(t, 1, executed)
	assert.Equal(t, uint16(0x0101), emu.CPU.PC(), "PC parked on the failing byte")
}

func TestEmulator_New(t *testing.T) {
	emu := New()

	assert.Equal(t, uint16(0x0100), emu.CPU.PC())
	assert.Equal(t, uint8(0x00), emu.MMU.Read(0x0000))
}
