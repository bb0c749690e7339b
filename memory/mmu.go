package memory

import (
	"fmt"
	"log/slog"

	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/bit"
	"github.com/mpavlov/goboy/bus"
)

// MMU routes the 64KB address space. ROM and external RAM go to the
// cartridge, the echo range mirrors work RAM, a handful of I/O
// registers have side effects, and everything else is backed by a flat
// internal array.
type MMU struct {
	cart   *Cartridge
	memory []uint8
	serial *serialPort
	audio  *audioRegs

	// joypadRequested is raised by a write to P1 that clears one of the
	// select bits; the orchestrator answers it with ReceiveJoypadState.
	joypadRequested bool
}

var _ bus.Bus = (*MMU)(nil)

// NewMMU creates a memory unit with no cartridge attached, which is
// enough for tests that only touch internal memory.
func NewMMU() *MMU {
	return &MMU{
		memory: make([]uint8, 0x10000),
		serial: newSerialPort(),
		audio:  newAudioRegs(),
	}
}

// NewMMUWithCartridge creates a memory unit with the cartridge mapped
// into the ROM and external RAM ranges.
func NewMMUWithCartridge(cart *Cartridge) *MMU {
	mmu := NewMMU()
	mmu.cart = cart
	return mmu
}

// SimulateBootloader writes the I/O register values the boot ROM leaves
// behind, so cartridges start from the state they expect.
func (m *MMU) SimulateBootloader() {
	m.Write8(addr.TIMA, 0x00)
	m.Write8(addr.TMA, 0x00)
	m.Write8(addr.TAC, 0x00)
	m.Write8(0xFF10, 0x80)
	m.Write8(0xFF11, 0xBF)
	m.Write8(0xFF12, 0xF3)
	m.Write8(0xFF14, 0xBF)
	m.Write8(0xFF16, 0x3F)
	m.Write8(0xFF17, 0x00)
	m.Write8(0xFF19, 0xBF)
	m.Write8(0xFF1A, 0x7F)
	m.Write8(0xFF1B, 0xFF)
	m.Write8(0xFF1C, 0x9F)
	m.Write8(0xFF1E, 0xBF)
	m.Write8(0xFF20, 0xFF)
	m.Write8(0xFF21, 0x00)
	m.Write8(0xFF22, 0x00)
	m.Write8(0xFF23, 0xBF)
	m.Write8(0xFF24, 0x77)
	m.Write8(0xFF25, 0xF3)
	m.Write8(0xFF26, 0xF1)
	m.Write8(addr.LCDC, 0x91)
	m.Write8(addr.SCY, 0x00)
	m.Write8(addr.SCX, 0x00)
	m.Write8(addr.LYC, 0x00)
	m.Write8(addr.BGP, 0xFC)
	m.Write8(addr.OBP0, 0xFF)
	m.Write8(addr.OBP1, 0xFF)
	m.Write8(addr.WY, 0x00)
	m.Write8(addr.WX, 0x00)
	m.Write8(addr.BootROMDisable, 0x01)
	m.Write8(addr.IE, 0x00)
}

func (m *MMU) Read8(address uint16) uint8 {
	switch {
	case address <= 0x7FFF, address >= 0xA000 && address <= 0xBFFF:
		if m.cart == nil {
			slog.Warn("reading cartridge range with no cartridge", "addr", fmt.Sprintf("0x%04X", address))
			return 0xFF
		}
		return m.cart.Read(address)
	case address >= 0xE000 && address <= 0xFDFF:
		return m.memory[address-0x2000]
	case address == addr.SB || address == addr.SC:
		return m.serial.Read(address)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		return m.audio.Read(address)
	default:
		return m.memory[address]
	}
}

func (m *MMU) Read16(address uint16) uint16 {
	return bit.Combine(m.Read8(address+1), m.Read8(address))
}

func (m *MMU) Write8(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF, address >= 0xA000 && address <= 0xBFFF:
		if m.cart == nil {
			slog.Warn("writing cartridge range with no cartridge", "addr", fmt.Sprintf("0x%04X", address))
			return
		}
		m.cart.Write(address, value)
	case address >= 0xE000 && address <= 0xFDFF:
		m.memory[address-0x2000] = value
	case address == addr.P1:
		// A cleared select bit means the guest is about to poll buttons;
		// flag it so the orchestrator refreshes the register.
		if !bit.IsSet(4, value) || !bit.IsSet(5, value) {
			m.joypadRequested = true
		}
		m.memory[address] = value
	case address == addr.DIV:
		m.memory[address] = 0
	case address == addr.DMA:
		m.transferOAM(value)
		m.memory[address] = value
	case address == addr.SB || address == addr.SC:
		m.serial.Write(address, value)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		m.audio.Write(address, value)
	default:
		m.memory[address] = value
	}
}

func (m *MMU) Write16(address uint16, value uint16) {
	m.Write8(address, bit.Low(value))
	m.Write8(address+1, bit.High(value))
}

// transferOAM copies 0xA0 bytes from source<<8 into the sprite table.
// Real hardware staggers this over 160 machine cycles; a single
// synchronous copy is close enough at scanline granularity.
func (m *MMU) transferOAM(source uint8) {
	base := uint16(source) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.memory[addr.OAMStart+i] = m.Read8(base + i)
	}
}

// setDIV stores the divider register without the reset-on-write rule
// guest writes are subject to; it is how the timer advances DIV.
func (m *MMU) setDIV(value uint8) {
	m.memory[addr.DIV] = value
}

// IsJoypadStateRequested reports whether a guest write to P1 selected a
// button group since the last ReceiveJoypadState.
func (m *MMU) IsJoypadStateRequested() bool {
	return m.joypadRequested
}

// ReceiveJoypadState exposes the selected button nibble through P1.
// Buttons read as 0 when pressed, the select bits are preserved and the
// two reserved top bits always read as 1.
func (m *MMU) ReceiveJoypadState(p14, p15 uint8) {
	p1 := m.memory[addr.P1]
	result := 0xC0 | p1&0x30

	switch {
	case !bit.IsSet(4, p1):
		result |= ^p14 & 0x0F
	case !bit.IsSet(5, p1):
		result |= ^p15 & 0x0F
	default:
		result |= 0x0F
	}

	m.memory[addr.P1] = result
	m.joypadRequested = false
}
