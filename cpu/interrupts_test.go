package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/memory"
)

func TestInterruptDispatch(t *testing.T) {
	c, m := newTestCPU()
	c.ime = true
	c.regs.SP = 0xFFFE
	c.regs.PC = 0x0100
	m.Write8(addr.IE, 0x01)
	m.Write8(addr.IF, 0x01)

	cycles := c.Step(m)

	assert.Equal(t, uint16(0x0040), c.regs.PC)
	assert.False(t, c.ime)
	assert.Equal(t, uint8(0x00), m.Read8(addr.IF))
	assert.Equal(t, uint16(0xFFFC), c.regs.SP)
	assert.Equal(t, uint16(0x0100), m.Read16(0xFFFC), "the old PC is on the stack")
	assert.Equal(t, 20, cycles)
}

func TestInterruptPriorityOrder(t *testing.T) {
	c, m := newTestCPU()
	c.ime = true
	c.regs.SP = 0xFFFE
	m.Write8(addr.IE, 0x1F)
	m.Write8(addr.IF, 0x1F)

	vectors := []uint16{0x40, 0x48, 0x50, 0x58, 0x60}
	for _, vector := range vectors {
		c.ime = true
		c.Step(m)
		assert.Equal(t, vector, c.regs.PC)
	}
	assert.Equal(t, uint8(0x00), m.Read8(addr.IF))
}

func TestInterruptIgnoredWithoutIME(t *testing.T) {
	c, m := newTestCPU()
	c.regs.PC = 0xC000
	m.Write8(0xC000, 0x00) // NOP
	m.Write8(addr.IE, 0x01)
	m.Write8(addr.IF, 0x01)

	c.Step(m)

	assert.Equal(t, uint16(0xC001), c.regs.PC, "instruction executes normally")
	assert.Equal(t, uint8(0x01), m.Read8(addr.IF), "pending bit stays set")
}

func TestDisabledSourceNotServiced(t *testing.T) {
	c, m := newTestCPU()
	c.ime = true
	c.regs.PC = 0xC000
	m.Write8(addr.IE, 0x01) // only VBlank enabled
	m.Write8(addr.IF, 0x04) // Timer pending

	c.Step(m)

	assert.Equal(t, uint16(0xC001), c.regs.PC)
	assert.True(t, c.ime, "servicing nothing leaves IME alone")
}

func TestEIAndDI(t *testing.T) {
	c, m := newTestCPU()
	loadProgram(c, m, 0xFB, 0xF3) // EI; DI

	c.Step(m)
	assert.True(t, c.ime)

	c.Step(m)
	assert.False(t, c.ime)
}

func TestRETIRestoresIMEAndReturns(t *testing.T) {
	c, m := newTestCPU()
	c.regs.SP = 0xFFFC
	m.Write16(0xFFFC, 0xC150)
	loadProgram(c, m, 0xD9) // RETI

	cycles := c.Step(m)

	assert.True(t, c.ime)
	assert.Equal(t, uint16(0xC150), c.regs.PC)
	assert.Equal(t, 16, cycles)
}

func TestHALT(t *testing.T) {
	t.Run("halt consumes idle cycles", func(t *testing.T) {
		c, m := newTestCPU()
		loadProgram(c, m, 0x76) // HALT

		c.Step(m)
		assert.True(t, c.halted)

		cycles := c.Step(m)
		assert.Equal(t, 4, cycles)
		assert.Equal(t, uint16(0xC001), c.regs.PC, "PC does not move while halted")
	})

	t.Run("IF change wakes the CPU", func(t *testing.T) {
		c, m := newTestCPU()
		loadProgram(c, m, 0x76, 0x04) // HALT; INC B

		c.Step(m)
		assert.True(t, c.halted)

		memory.RequestInterrupt(m, addr.TimerInterrupt)
		c.Step(m)

		assert.False(t, c.halted)
		assert.Equal(t, uint8(1), c.regs.B, "execution resumed at the next instruction")
	})

	t.Run("wake with IME services the interrupt", func(t *testing.T) {
		c, m := newTestCPU()
		c.ime = true
		c.regs.SP = 0xFFFE
		m.Write8(addr.IE, 0x04)
		loadProgram(c, m, 0x76) // HALT

		c.Step(m)
		assert.True(t, c.halted)

		memory.RequestInterrupt(m, addr.TimerInterrupt)
		cycles := c.Step(m)

		assert.False(t, c.halted)
		assert.Equal(t, uint16(0x0050), c.regs.PC)
		assert.Equal(t, 20, cycles)
	})
}
