package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpavlov/goboy/addr"
)

func TestEchoMirror(t *testing.T) {
	m := NewMMU()

	for _, a := range []uint16{0xC000, 0xC123, 0xDDFF} {
		m.Write8(a, 0x5A)
		assert.Equal(t, uint8(0x5A), m.Read8(a+0x2000), "echo read of 0x%04X", a)

		m.Write8(a+0x2000, 0xA5)
		assert.Equal(t, uint8(0xA5), m.Read8(a), "echo write of 0x%04X", a)
	}
}

func TestWordAccesses(t *testing.T) {
	m := NewMMU()

	m.Write16(0xC000, 0xBEEF)
	assert.Equal(t, uint8(0xEF), m.Read8(0xC000), "little endian low byte first")
	assert.Equal(t, uint8(0xBE), m.Read8(0xC001))
	assert.Equal(t, uint16(0xBEEF), m.Read16(0xC000))
}

func TestDIVWriteResets(t *testing.T) {
	m := NewMMU()

	m.Write8(addr.DIV, 0x55)
	assert.Equal(t, uint8(0x00), m.Read8(addr.DIV))
}

func TestDMATransfer(t *testing.T) {
	m := NewMMU()

	for i := uint16(0); i < 0xA0; i++ {
		m.Write8(0xC000+i, uint8(i))
	}

	m.Write8(addr.DMA, 0xC0)

	for i := uint16(0); i < 0xA0; i++ {
		assert.Equal(t, uint8(i), m.Read8(addr.OAMStart+i))
	}
}

func TestCartridgeRouting(t *testing.T) {
	rom := makeROM(0x00, 0x8000)
	rom[0x0150] = 0x7B
	cart, err := NewCartridge(rom)
	require.NoError(t, err)

	m := NewMMUWithCartridge(cart)

	assert.Equal(t, uint8(0x7B), m.Read8(0x0150))

	// external RAM goes through the controller as well
	m.Write8(0xA000, 0x33)
	assert.Equal(t, uint8(0x33), m.Read8(0xA000))
}

func TestNoCartridgeReadsFF(t *testing.T) {
	m := NewMMU()

	assert.Equal(t, uint8(0xFF), m.Read8(0x0100))
	m.Write8(0x2000, 0x01) // dropped, no controller to decode it
}

func TestJoypadHandshake(t *testing.T) {
	m := NewMMU()
	assert.False(t, m.IsJoypadStateRequested())

	t.Run("selecting directions raises the request", func(t *testing.T) {
		m.Write8(addr.P1, 0x20) // bit 4 clear: directions selected
		assert.True(t, m.IsJoypadStateRequested())

		// Right pressed
		m.ReceiveJoypadState(0b0001, 0b0000)

		assert.False(t, m.IsJoypadStateRequested())
		assert.Equal(t, uint8(0xEE), m.Read8(addr.P1), "pressed buttons read as 0")
	})

	t.Run("selecting actions exposes the other nibble", func(t *testing.T) {
		m.Write8(addr.P1, 0x10) // bit 5 clear: actions selected
		m.ReceiveJoypadState(0b0001, 0b0010)

		assert.Equal(t, uint8(0xDD), m.Read8(addr.P1), "B pressed reads as 0 in bit 1")
	})

	t.Run("no selection exposes nothing", func(t *testing.T) {
		m.Write8(addr.P1, 0x30)
		assert.False(t, m.IsJoypadStateRequested(), "both select bits set requests nothing")
	})
}

func TestSerialStub(t *testing.T) {
	m := NewMMU()

	m.Write8(addr.SB, 0x69)
	assert.Equal(t, uint8(0x69), m.Read8(addr.SB))

	// starting a transfer with no peer completes immediately
	m.Write8(addr.SC, 0x81)
	assert.Equal(t, uint8(0x01), m.Read8(addr.SC), "start bit clears")
	assert.Equal(t, uint8(0xFF), m.Read8(addr.SB), "disconnected peers shift in 0xFF")
}

func TestAudioRegistersStore(t *testing.T) {
	m := NewMMU()

	m.Write8(0xFF11, 0xBF)
	m.Write8(0xFF30, 0x12) // wave RAM
	assert.Equal(t, uint8(0xBF), m.Read8(0xFF11))
	assert.Equal(t, uint8(0x12), m.Read8(0xFF30))
}

func TestSimulateBootloader(t *testing.T) {
	m := NewMMU()
	m.SimulateBootloader()

	assert.Equal(t, uint8(0x91), m.Read8(addr.LCDC))
	assert.Equal(t, uint8(0xFC), m.Read8(addr.BGP))
	assert.Equal(t, uint8(0xFF), m.Read8(addr.OBP0))
	assert.Equal(t, uint8(0xF1), m.Read8(0xFF26))
	assert.Equal(t, uint8(0x00), m.Read8(addr.IE))
	assert.Equal(t, uint8(0x01), m.Read8(addr.BootROMDisable))
}
