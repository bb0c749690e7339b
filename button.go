package goboy

import "github.com/mpavlov/goboy/memory"

// Button re-exports the joypad inputs so hosts only import this
// package.
type Button = memory.Button

const (
	ButtonRight  = memory.ButtonRight
	ButtonLeft   = memory.ButtonLeft
	ButtonUp     = memory.ButtonUp
	ButtonDown   = memory.ButtonDown
	ButtonA      = memory.ButtonA
	ButtonB      = memory.ButtonB
	ButtonSelect = memory.ButtonSelect
	ButtonStart  = memory.ButtonStart
)
