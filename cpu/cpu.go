// Package cpu implements the Sharp LR35902 core: the register file, the
// operand model, the two opcode dispatch tables and the fetch/decode/
// execute loop with interrupt dispatch.
package cpu

import (
	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/bus"
	"github.com/mpavlov/goboy/memory"
)

// Cycles consumed outside normal instruction execution.
const (
	interruptDispatchCycles = 20
	haltIdleCycles          = 4
)

// CPU holds the processor state. It borrows the bus per Step call and
// never retains it.
type CPU struct {
	regs Registers

	// ime is the master enable, orthogonal to the IE register.
	ime    bool
	halted bool

	// interruptsBeforeHalt is the IF snapshot taken by HALT; a change
	// relative to it wakes the CPU even when ime is off.
	interruptsBeforeHalt uint8
}

// New returns a CPU with everything zeroed, as the hardware before the
// boot ROM runs.
func New() *CPU {
	return &CPU{}
}

// SimulateBootloader sets the register values the boot ROM leaves
// behind before handing control to the cartridge at 0x0100.
func (c *CPU) SimulateBootloader() {
	c.regs.SetAF(0x01B0)
	c.regs.SetBC(0x0013)
	c.regs.SetDE(0x00D8)
	c.regs.SetHL(0x014D)
	c.regs.SP = 0xFFFE
	c.regs.PC = 0x0100
}

// Step runs at most one instruction and returns the T-cycles consumed.
//
// The order matters: a halted CPU first checks whether IF changed since
// the HALT snapshot and wakes up; then, with ime set, a pending
// interrupt is serviced instead of executing an instruction; a still
// halted CPU just burns idle cycles; otherwise one opcode is fetched,
// dispatched and PC advanced by its length.
func (c *CPU) Step(b bus.Bus) int {
	if c.halted && c.interruptsBeforeHalt != b.Read8(addr.IF) {
		c.halted = false
	}

	if c.ime {
		if interrupt := memory.ReceiveInterrupt(b); interrupt != addr.NoInterrupt {
			c.serviceInterrupt(b, interrupt)
			return interruptDispatchCycles
		}
	}

	if c.halted {
		return haltIdleCycles
	}

	opcode := b.Read8(c.regs.PC)

	var op instruction
	if opcode == 0xCB {
		op = decodeCB(b.Read8(c.regs.PC + 1))
	} else {
		op = decode(opcode)
	}

	length, cycles := op(c, b)
	c.regs.PC += uint16(length)
	return cycles
}

// serviceInterrupt pushes the return address, jumps to the source's
// vector and disables further interrupts until EI or RETI.
func (c *CPU) serviceInterrupt(b bus.Bus, interrupt addr.Interrupt) {
	c.pushWord(b, c.regs.PC)
	c.regs.PC = interrupt.Vector()
	c.ime = false
}
