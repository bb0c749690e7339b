package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpavlov/goboy/addr"
)

func TestJoypadPressAndRelease(t *testing.T) {
	j := NewJoypad()
	m := NewMMU()

	p14, p15 := j.TransferState()
	assert.Equal(t, uint8(0), p14)
	assert.Equal(t, uint8(0), p15)

	j.Press(m, ButtonA)
	j.Press(m, ButtonB)
	j.Press(m, ButtonDown)

	p14, p15 = j.TransferState()
	assert.Equal(t, uint8(0b1000), p14)
	assert.Equal(t, uint8(0b0011), p15)

	j.Release(ButtonA)
	p14, p15 = j.TransferState()
	assert.Equal(t, uint8(0b1000), p14)
	assert.Equal(t, uint8(0b0010), p15)
}

// Releasing must clear the bit, never toggle it: releasing an already
// released button stays released.
func TestJoypadReleaseIsIdempotent(t *testing.T) {
	j := NewJoypad()

	j.Release(ButtonStart)
	j.Release(ButtonStart)

	p14, p15 := j.TransferState()
	assert.Equal(t, uint8(0), p14)
	assert.Equal(t, uint8(0), p15)
}

func TestJoypadPressRequestsInterrupt(t *testing.T) {
	j := NewJoypad()
	m := NewMMU()

	j.Press(m, ButtonStart)

	assert.NotZero(t, m.Read8(addr.IF)&addr.JoypadInterrupt.Mask())
}

func TestJoypadNibbleAssignments(t *testing.T) {
	tests := []struct {
		button  Button
		p14     uint8
		p15     uint8
	}{
		{ButtonRight, 0b0001, 0},
		{ButtonLeft, 0b0010, 0},
		{ButtonUp, 0b0100, 0},
		{ButtonDown, 0b1000, 0},
		{ButtonA, 0, 0b0001},
		{ButtonB, 0, 0b0010},
		{ButtonSelect, 0, 0b0100},
		{ButtonStart, 0, 0b1000},
	}

	for _, tt := range tests {
		t.Run(tt.button.String(), func(t *testing.T) {
			j := NewJoypad()
			m := NewMMU()

			j.Press(m, tt.button)
			p14, p15 := j.TransferState()
			assert.Equal(t, tt.p14, p14)
			assert.Equal(t, tt.p15, p15)
		})
	}
}
