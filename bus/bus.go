// Package bus defines the memory access contract shared by the CPU, the
// PPU, the timer and the MMU. Components borrow a Bus for the duration
// of a step call and never retain it.
package bus

// Bus is the byte and word level view of the 16 bit address space.
// Word accesses are little endian composites of two byte accesses, and
// address arithmetic wraps modulo 2^16.
type Bus interface {
	Read8(address uint16) uint8
	Read16(address uint16) uint16
	Write8(address uint16, value uint8)
	Write16(address uint16, value uint16)
}
