package memory

import "github.com/mpavlov/goboy/addr"

// audioRegs backs the NRxx registers and wave RAM with plain storage.
// Guest code probes and initializes these during boot even when no
// sound is produced; there is no synthesis behind them.
type audioRegs struct {
	regs [addr.AudioEnd - addr.AudioStart + 1]uint8
}

func newAudioRegs() *audioRegs {
	return &audioRegs{}
}

func (a *audioRegs) Read(address uint16) uint8 {
	return a.regs[address-addr.AudioStart]
}

func (a *audioRegs) Write(address uint16, value uint8) {
	a.regs[address-addr.AudioStart] = value
}
