package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpavlov/goboy/addr"
)

func TestRequestSetsPendingBit(t *testing.T) {
	m := NewMMU()

	RequestInterrupt(m, addr.TimerInterrupt)
	assert.Equal(t, uint8(0x04), m.Read8(addr.IF))

	RequestInterrupt(m, addr.JoypadInterrupt)
	assert.Equal(t, uint8(0x14), m.Read8(addr.IF))
}

func TestRequestNonePanics(t *testing.T) {
	m := NewMMU()
	assert.Panics(t, func() { RequestInterrupt(m, addr.NoInterrupt) })
}

func TestReceiveNeedsEnableAndPending(t *testing.T) {
	m := NewMMU()

	assert.Equal(t, addr.NoInterrupt, ReceiveInterrupt(m))

	RequestInterrupt(m, addr.TimerInterrupt)
	assert.Equal(t, addr.NoInterrupt, ReceiveInterrupt(m), "not enabled yet")

	m.Write8(addr.IE, 0xFF)
	assert.Equal(t, addr.TimerInterrupt, ReceiveInterrupt(m))

	// the pending bit was discarded along the way
	assert.Equal(t, addr.NoInterrupt, ReceiveInterrupt(m))
	assert.Equal(t, uint8(0x00), m.Read8(addr.IF))
}

func TestReceivePriorityOrder(t *testing.T) {
	m := NewMMU()
	m.Write8(addr.IE, 0xFF)
	m.Write8(addr.IF, 0xFF)

	order := []addr.Interrupt{
		addr.VBlankInterrupt,
		addr.LCDStatInterrupt,
		addr.TimerInterrupt,
		addr.SerialInterrupt,
		addr.JoypadInterrupt,
	}
	for _, want := range order {
		assert.Equal(t, want, ReceiveInterrupt(m))
	}
	assert.Equal(t, addr.NoInterrupt, ReceiveInterrupt(m))
}

func TestVectors(t *testing.T) {
	assert.Equal(t, uint16(0x40), addr.VBlankInterrupt.Vector())
	assert.Equal(t, uint16(0x48), addr.LCDStatInterrupt.Vector())
	assert.Equal(t, uint16(0x50), addr.TimerInterrupt.Vector())
	assert.Equal(t, uint16(0x58), addr.SerialInterrupt.Vector())
	assert.Equal(t, uint16(0x60), addr.JoypadInterrupt.Vector())
}
