package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpavlov/goboy/memory"
)

// TestDecodeLengthAndCycles checks that representative opcodes report
// the published byte length and cycle count, including the taken /
// not-taken split for conditional branches.
func TestDecodeLengthAndCycles(t *testing.T) {
	tests := []struct {
		name       string
		program    []uint8
		flags      uint8
		wantPC     uint16
		wantCycles int
	}{
		{"NOP", []uint8{0x00}, 0, 0xC001, 4},
		{"LD BC, nn", []uint8{0x01, 0x34, 0x12}, 0, 0xC003, 12},
		{"LD (nn), SP", []uint8{0x08, 0x00, 0xC2}, 0, 0xC003, 20},
		{"LD B, n", []uint8{0x06, 0x55}, 0, 0xC002, 8},
		{"INC (HL)", []uint8{0x34}, 0, 0xC001, 12},
		{"ADD A, n", []uint8{0xC6, 0x01}, 0, 0xC002, 8},

		{"JR taken", []uint8{0x18, 0x05}, 0, 0xC007, 12},
		{"JR NZ taken", []uint8{0x20, 0x05}, 0, 0xC007, 12},
		{"JR NZ not taken", []uint8{0x20, 0x05}, uint8(FlagZ), 0xC002, 8},
		{"JR Z backwards", []uint8{0x28, 0xFE}, uint8(FlagZ), 0xC000, 12},

		{"JP taken", []uint8{0xC3, 0x00, 0xD0}, 0, 0xD000, 16},
		{"JP C not taken", []uint8{0xDA, 0x00, 0xD0}, 0, 0xC003, 12},
		{"JP C taken", []uint8{0xDA, 0x00, 0xD0}, uint8(FlagC), 0xD000, 16},

		{"CALL taken", []uint8{0xCD, 0x00, 0xD0}, 0, 0xD000, 24},
		{"CALL NC not taken", []uint8{0xD4, 0x00, 0xD0}, uint8(FlagC), 0xC003, 12},

		{"RET NZ not taken", []uint8{0xC0}, uint8(FlagZ), 0xC001, 8},

		{"CB SWAP A", []uint8{0xCB, 0x37}, 0, 0xC002, 8},
		{"CB BIT 0, (HL)", []uint8{0xCB, 0x46}, 0, 0xC002, 12},
		{"CB SET 7, (HL)", []uint8{0xCB, 0xFE}, 0, 0xC002, 16},
		{"CB RL (HL)", []uint8{0xCB, 0x16}, 0, 0xC002, 16},

		{"undefined opcode", []uint8{0xD3}, 0, 0xC001, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m := New(), memory.NewMMU()
			c.regs.F = tt.flags
			c.regs.SP = 0xFFFE
			c.regs.SetHL(0xC300)
			loadProgram(c, m, tt.program...)

			cycles := c.Step(m)

			assert.Equal(t, tt.wantPC, c.regs.PC)
			assert.Equal(t, tt.wantCycles, cycles)
		})
	}
}

// TestDecodeConditionalReturn exercises the taken RET path, which needs
// a prepared stack.
func TestDecodeConditionalReturn(t *testing.T) {
	c, m := New(), memory.NewMMU()
	c.regs.SP = 0xFFFC
	m.Write16(0xFFFC, 0xC400)
	loadProgram(c, m, 0xC0) // RET NZ with Z clear

	cycles := c.Step(m)

	assert.Equal(t, uint16(0xC400), c.regs.PC)
	assert.Equal(t, uint16(0xFFFE), c.regs.SP)
	assert.Equal(t, 20, cycles)
}

// Every byte must decode to something executable: the tables have no
// nil entries.
func TestDispatchTablesAreComplete(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.NotNil(t, opcodes[i], "main table entry 0x%02X", i)
		assert.NotNil(t, opcodesCB[i], "CB table entry 0x%02X", i)
	}
}
