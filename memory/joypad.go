package memory

import (
	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/bus"
)

// Button is one of the eight joypad inputs.
type Button uint8

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

func (b Button) String() string {
	switch b {
	case ButtonRight:
		return "Right"
	case ButtonLeft:
		return "Left"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonA:
		return "A"
	case ButtonB:
		return "B"
	case ButtonSelect:
		return "Select"
	case ButtonStart:
		return "Start"
	}
	return "Unknown"
}

// mask returns the bit this button occupies in its nibble.
func (b Button) mask() uint8 {
	switch b {
	case ButtonRight, ButtonA:
		return 0b0001
	case ButtonLeft, ButtonB:
		return 0b0010
	case ButtonUp, ButtonSelect:
		return 0b0100
	default:
		return 0b1000
	}
}

func (b Button) isDirection() bool {
	return b <= ButtonDown
}

// Joypad tracks the pressed state of the eight buttons as two nibbles:
// p14 holds the directions, p15 the action buttons. A set bit means
// pressed; the MMU inverts the nibble when exposing it through P1.
type Joypad struct {
	p14 uint8
	p15 uint8
}

func NewJoypad() *Joypad {
	return &Joypad{}
}

// Press marks a button as held and raises the Joypad interrupt.
func (j *Joypad) Press(b bus.Bus, button Button) {
	if button.isDirection() {
		j.p14 |= button.mask()
	} else {
		j.p15 |= button.mask()
	}

	RequestInterrupt(b, addr.JoypadInterrupt)
}

// Release clears a button's pressed bit.
func (j *Joypad) Release(button Button) {
	if button.isDirection() {
		j.p14 &^= button.mask()
	} else {
		j.p15 &^= button.mask()
	}
}

// TransferState returns the (directions, actions) nibble pair for the
// MMU's P1 register handshake.
func (j *Joypad) TransferState() (uint8, uint8) {
	return j.p14, j.p15
}
