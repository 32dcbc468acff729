package memory

import (
	"github.com/fpetroni/dmg01/dmg01/bit"
)

// addressSpaceSize covers the full 16-bit bus, every address is backed.
const addressSpaceSize = 0x10000

// MMU is a flat, byte-addressable 64KB memory. It has no notion of mapped
// device regions: collaborators that need memory-mapped I/O wrap the
// Read/Write pair and intercept their own ranges.
type MMU struct {
	memory []byte
}

// New creates an MMU with all bytes zeroed, the state of the machine before
// a loader has placed anything in memory.
func New() *MMU {
	return &MMU{
		memory: make([]byte, addressSpaceSize),
	}
}

// Read returns the byte at the given address. Every address is in range, a
// read cannot fail.
func (m *MMU) Read(address uint16) byte {
	return m.memory[address]
}

// Write stores a byte at the given address.
func (m *MMU) Write(address uint16, value byte) {
	m.memory[address] = value
}

// ReadWord reads two bytes starting at the given address, little-endian.
// Reading at 0xFFFF wraps around to 0x0000 for the high byte.
func (m *MMU) ReadWord(address uint16) uint16 {
	low := m.Read(address)
	high := m.Read(address + 1)
	return bit.Combine(high, low)
}

// WriteWord stores two bytes starting at the given address, little-endian.
func (m *MMU) WriteWord(address uint16, value uint16) {
	m.Write(address, bit.Low(value))
	m.Write(address+1, bit.High(value))
}

// Load copies a program image into memory starting at the given offset.
// The copy is truncated at the end of the address space.
func (m *MMU) Load(offset uint16, image []byte) {
	copy(m.memory[offset:], image)
}
