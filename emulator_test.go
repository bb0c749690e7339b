package goboy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/memory"
)

// testROM builds a no-MBC image filled with NOPs.
func testROM() []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0134:], "NOPLOOP")
	rom[0x0147] = 0x00
	return rom
}

func TestLoadErrors(t *testing.T) {
	emu := New()

	err := emu.Load([]byte{0x00, 0x01})
	assert.ErrorIs(t, err, memory.ErrTruncatedCartridge)

	rom := testROM()
	rom[0x0147] = 0x0F // MBC3+RTC, unsupported
	err = emu.Load(rom)
	assert.ErrorIs(t, err, memory.ErrUnsupportedCartridge)
}

func TestLoadSimulatesBootState(t *testing.T) {
	emu := New()
	require.NoError(t, emu.Load(testROM()))

	assert.Equal(t, uint8(0x91), emu.mmu.Read8(addr.LCDC))
	assert.Equal(t, uint8(0xFC), emu.mmu.Read8(addr.BGP))
}

func TestStepProducesFrames(t *testing.T) {
	emu := New()
	require.NoError(t, emu.Load(testROM()))

	frame := emu.Step()

	require.Len(t, frame, 160*144*4)
	// a blank cartridge renders color 0 everywhere: the lightest shade
	assert.Equal(t, []byte{0x9B, 0xBC, 0x0F, 0xFF}, frame[0:4])

	// the loop keeps producing frames
	frame = emu.Step()
	require.Len(t, frame, 160*144*4)
}

func TestPauseReturnsLastFrame(t *testing.T) {
	emu := New()
	require.NoError(t, emu.Load(testROM()))

	first := emu.Step()

	emu.Pause()
	emu.Pause() // idempotent
	paused := emu.Step()
	assert.Equal(t, &first[0], &paused[0], "paused Step returns the same frame")

	emu.Unpause()
	emu.Unpause()
	resumed := emu.Step()
	require.Len(t, resumed, 160*144*4)
}

func TestPressRequestsJoypadInterrupt(t *testing.T) {
	emu := New()
	require.NoError(t, emu.Load(testROM()))

	emu.Press(ButtonStart)
	assert.NotZero(t, emu.mmu.Read8(addr.IF)&addr.JoypadInterrupt.Mask())

	emu.Release(ButtonStart)
	p14, p15 := emu.joypad.TransferState()
	assert.Zero(t, p14)
	assert.Zero(t, p15)
}
