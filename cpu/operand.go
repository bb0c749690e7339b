package cpu

import "github.com/mpavlov/goboy/bus"

// The operand model lets one helper per instruction family serve every
// addressing mode. An operand knows how to read or write itself given
// the CPU state and the bus; the opcode tables pick the concrete
// operand per entry.
//
// Immediate and direct-address operands read relative to PC, which
// still points at the opcode byte during execution.

type reader8 interface {
	read8(c *CPU, b bus.Bus) uint8
}

type writer8 interface {
	write8(c *CPU, b bus.Bus, v uint8)
}

type readWriter8 interface {
	reader8
	writer8
}

type reader16 interface {
	read16(c *CPU, b bus.Bus) uint16
}

type writer16 interface {
	write16(c *CPU, b bus.Bus, v uint16)
}

type readWriter16 interface {
	reader16
	writer16
}

// reg8 addresses one of the byte registers.
type reg8 int

const (
	regA reg8 = iota
	regF
	regB
	regC
	regD
	regE
	regH
	regL
)

func (r reg8) read8(c *CPU, _ bus.Bus) uint8 {
	switch r {
	case regA:
		return c.regs.A
	case regF:
		return c.regs.F
	case regB:
		return c.regs.B
	case regC:
		return c.regs.C
	case regD:
		return c.regs.D
	case regE:
		return c.regs.E
	case regH:
		return c.regs.H
	default:
		return c.regs.L
	}
}

func (r reg8) write8(c *CPU, _ bus.Bus, v uint8) {
	switch r {
	case regA:
		c.regs.A = v
	case regF:
		c.regs.F = v & 0xF0
	case regB:
		c.regs.B = v
	case regC:
		c.regs.C = v
	case regD:
		c.regs.D = v
	case regE:
		c.regs.E = v
	case regH:
		c.regs.H = v
	default:
		c.regs.L = v
	}
}

// reg16 addresses a register pair, SP or PC.
type reg16 int

const (
	regAF reg16 = iota
	regBC
	regDE
	regHL
	regSP
	regPC
)

func (r reg16) read16(c *CPU, _ bus.Bus) uint16 {
	switch r {
	case regAF:
		return c.regs.AF()
	case regBC:
		return c.regs.BC()
	case regDE:
		return c.regs.DE()
	case regHL:
		return c.regs.HL()
	case regSP:
		return c.regs.SP
	default:
		return c.regs.PC
	}
}

func (r reg16) write16(c *CPU, _ bus.Bus, v uint16) {
	switch r {
	case regAF:
		c.regs.SetAF(v)
	case regBC:
		c.regs.SetBC(v)
	case regDE:
		c.regs.SetDE(v)
	case regHL:
		c.regs.SetHL(v)
	case regSP:
		c.regs.SP = v
	default:
		c.regs.PC = v
	}
}

// address dereferences memory through one of the addressing modes.
// addrHLInc and addrHLDec step HL after computing the target, so they
// must be evaluated exactly once per instruction.
type address int

const (
	addrBC address = iota
	addrDE
	addrHL
	addrHLInc
	addrHLDec
	addrDirect // 16 bit immediate pointer
	addrHigh   // 0xFF00 + 8 bit immediate
	addrHighC  // 0xFF00 + C
)

func (a address) target(c *CPU, b bus.Bus) uint16 {
	switch a {
	case addrBC:
		return c.regs.BC()
	case addrDE:
		return c.regs.DE()
	case addrHL:
		return c.regs.HL()
	case addrHLInc:
		hl := c.regs.HL()
		c.regs.SetHL(hl + 1)
		return hl
	case addrHLDec:
		hl := c.regs.HL()
		c.regs.SetHL(hl - 1)
		return hl
	case addrDirect:
		return b.Read16(c.regs.PC + 1)
	case addrHigh:
		return 0xFF00 + uint16(b.Read8(c.regs.PC+1))
	default:
		return 0xFF00 + uint16(c.regs.C)
	}
}

func (a address) read8(c *CPU, b bus.Bus) uint8 {
	return b.Read8(a.target(c, b))
}

func (a address) write8(c *CPU, b bus.Bus, v uint8) {
	b.Write8(a.target(c, b), v)
}

func (a address) read16(c *CPU, b bus.Bus) uint16 {
	return b.Read16(a.target(c, b))
}

func (a address) write16(c *CPU, b bus.Bus, v uint16) {
	b.Write16(a.target(c, b), v)
}

// imm8 and imm16 are the literal bytes following the opcode.
type imm8 struct{}

func (imm8) read8(c *CPU, b bus.Bus) uint8 {
	return b.Read8(c.regs.PC + 1)
}

type imm16 struct{}

func (imm16) read16(c *CPU, b bus.Bus) uint16 {
	return b.Read16(c.regs.PC + 1)
}

// cond is the branch condition of jumps, calls and returns.
type cond int

const (
	condNZ cond = iota
	condZ
	condNC
	condC
	condAlways
	condNever
)

func (cc cond) test(c *CPU) bool {
	switch cc {
	case condNZ:
		return !c.regs.GetFlag(FlagZ)
	case condZ:
		return c.regs.GetFlag(FlagZ)
	case condNC:
		return !c.regs.GetFlag(FlagC)
	case condC:
		return c.regs.GetFlag(FlagC)
	case condAlways:
		return true
	default:
		return false
	}
}
