// Package goboy is the emulator entry point. It wires the CPU, PPU,
// timer, joypad and MMU together and drives them one frame at a time.
package goboy

import (
	"log/slog"

	"github.com/mpavlov/goboy/cpu"
	"github.com/mpavlov/goboy/memory"
	"github.com/mpavlov/goboy/video"
)

const frameSize = video.FrameWidth * video.FrameHeight * 4

// Emulator is the host facing API: load a cartridge, step one frame at
// a time and feed button state in between.
type Emulator struct {
	cpu    *cpu.CPU
	ppu    *video.PPU
	mmu    *memory.MMU
	timer  *memory.Timer
	joypad *memory.Joypad

	paused bool
	frame  []byte
}

func New() *Emulator {
	return &Emulator{
		cpu:    cpu.New(),
		ppu:    video.NewPPU(),
		mmu:    memory.NewMMU(),
		timer:  memory.NewTimer(),
		joypad: memory.NewJoypad(),
		frame:  make([]byte, frameSize),
	}
}

// Load binds a cartridge image and simulates the post boot ROM state.
// It returns an error when the image is truncated or names an
// unsupported bank controller; emulation does not start in that case.
func (e *Emulator) Load(data []byte) error {
	cart, err := memory.NewCartridge(data)
	if err != nil {
		return err
	}

	e.cpu = cpu.New()
	e.ppu = video.NewPPU()
	e.timer = memory.NewTimer()
	e.joypad = memory.NewJoypad()
	e.mmu = memory.NewMMUWithCartridge(cart)

	e.mmu.SimulateBootloader()
	e.cpu.SimulateBootloader()

	slog.Info("cartridge loaded", "title", cart.Title())
	return nil
}

// Step emulates until the PPU completes a frame and returns its RGBA
// bytes, row major from the top left. While paused it returns the most
// recent frame unchanged.
//
// The CPU runs first and its cycle count drives the PPU and timer, so
// each component observes the bus as the previous iteration left it.
// Interrupts raised during an iteration are serviced at the start of
// the next.
func (e *Emulator) Step() []byte {
	if e.paused {
		return e.frame
	}

	for {
		cycles := e.cpu.Step(e.mmu)
		e.ppu.Step(e.mmu, cycles)
		e.timer.Step(e.mmu, cycles)

		if e.mmu.IsJoypadStateRequested() {
			e.mmu.ReceiveJoypadState(e.joypad.TransferState())
		}

		if e.ppu.ScreenPrepared() {
			break
		}
	}

	e.frame = e.ppu.TransferScreen().Bytes()
	return e.frame
}

// Pause freezes emulation; Step keeps returning the last frame.
// Both calls are idempotent.
func (e *Emulator) Pause() {
	e.paused = true
}

func (e *Emulator) Unpause() {
	e.paused = false
}

// Press marks a button as held and raises the Joypad interrupt.
func (e *Emulator) Press(button Button) {
	e.joypad.Press(e.mmu, button)
}

// Release clears a button.
func (e *Emulator) Release(button Button) {
	e.joypad.Release(button)
}
