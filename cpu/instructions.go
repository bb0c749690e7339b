package cpu

import (
	"github.com/mpavlov/goboy/addr"
	"github.com/mpavlov/goboy/bus"
)

// One helper per instruction family. Helpers mutate registers, memory
// and flags; instruction length and cycle counts live in the opcode
// tables. Control flow helpers return (length, cycles) themselves
// because both depend on whether the branch was taken.

func (c *CPU) pushWord(b bus.Bus, v uint16) {
	c.regs.SP -= 2
	b.Write16(c.regs.SP, v)
}

func (c *CPU) popWord(b bus.Bus) uint16 {
	v := b.Read16(c.regs.SP)
	c.regs.SP += 2
	return v
}

func (c *CPU) ld8(b bus.Bus, dst writer8, src reader8) {
	dst.write8(c, b, src.read8(c, b))
}

func (c *CPU) ld16(b bus.Bus, dst writer16, src reader16) {
	dst.write16(c, b, src.read16(c, b))
}

// ldHLSPOffset implements LD HL,SP+e. The flags come from the unsigned
// addition of e to the low byte of SP, not from the signed 16 bit sum.
func (c *CPU) ldHLSPOffset(b bus.Bus) {
	c.regs.SetHL(c.offsetSP(b))
}

// addSP implements ADD SP,e with the same low byte flag rule.
func (c *CPU) addSP(b bus.Bus) {
	c.regs.SP = c.offsetSP(b)
}

func (c *CPU) offsetSP(b bus.Bus) uint16 {
	e := imm8{}.read8(c, b)
	sp := c.regs.SP

	c.regs.DisableFlag(FlagZ)
	c.regs.DisableFlag(FlagN)
	c.regs.SetFlag(FlagH, sp&0x0F+uint16(e&0x0F) > 0x0F)
	c.regs.SetFlag(FlagC, sp&0xFF+uint16(e) > 0xFF)

	return sp + uint16(int8(e))
}

func (c *CPU) add8(b bus.Bus, src reader8) {
	a := uint16(c.regs.A)
	v := uint16(src.read8(c, b))
	sum := a + v

	c.regs.SetFlag(FlagZ, sum&0xFF == 0)
	c.regs.DisableFlag(FlagN)
	c.regs.SetFlag(FlagH, a&0x0F+v&0x0F > 0x0F)
	c.regs.SetFlag(FlagC, sum > 0xFF)

	c.regs.A = uint8(sum)
}

func (c *CPU) adc8(b bus.Bus, src reader8) {
	a := uint16(c.regs.A)
	v := uint16(src.read8(c, b))
	carry := uint16(c.regs.flagBit(FlagC))
	sum := a + v + carry

	c.regs.SetFlag(FlagZ, sum&0xFF == 0)
	c.regs.DisableFlag(FlagN)
	c.regs.SetFlag(FlagH, a&0x0F+v&0x0F+carry > 0x0F)
	c.regs.SetFlag(FlagC, sum > 0xFF)

	c.regs.A = uint8(sum)
}

func (c *CPU) sub8(b bus.Bus, src reader8) {
	c.regs.A = c.subtract(src.read8(c, b), 0)
}

func (c *CPU) sbc8(b bus.Bus, src reader8) {
	c.regs.A = c.subtract(src.read8(c, b), c.regs.flagBit(FlagC))
}

// cp8 is SUB with the result discarded.
func (c *CPU) cp8(b bus.Bus, src reader8) {
	c.subtract(src.read8(c, b), 0)
}

func (c *CPU) subtract(v, carry uint8) uint8 {
	a := int16(c.regs.A)
	diff := a - int16(v) - int16(carry)

	c.regs.SetFlag(FlagZ, diff&0xFF == 0)
	c.regs.EnableFlag(FlagN)
	c.regs.SetFlag(FlagH, a&0x0F-int16(v&0x0F)-int16(carry) < 0)
	c.regs.SetFlag(FlagC, diff < 0)

	return uint8(diff)
}

func (c *CPU) and8(b bus.Bus, src reader8) {
	c.regs.A &= src.read8(c, b)

	c.regs.SetFlag(FlagZ, c.regs.A == 0)
	c.regs.DisableFlag(FlagN)
	c.regs.EnableFlag(FlagH)
	c.regs.DisableFlag(FlagC)
}

func (c *CPU) or8(b bus.Bus, src reader8) {
	c.regs.A |= src.read8(c, b)
	c.logicFlags()
}

func (c *CPU) xor8(b bus.Bus, src reader8) {
	c.regs.A ^= src.read8(c, b)
	c.logicFlags()
}

func (c *CPU) logicFlags() {
	c.regs.SetFlag(FlagZ, c.regs.A == 0)
	c.regs.DisableFlag(FlagN)
	c.regs.DisableFlag(FlagH)
	c.regs.DisableFlag(FlagC)
}

func (c *CPU) inc8(b bus.Bus, rw readWriter8) {
	v := rw.read8(c, b) + 1

	c.regs.SetFlag(FlagZ, v == 0)
	c.regs.DisableFlag(FlagN)
	c.regs.SetFlag(FlagH, v&0x0F == 0)

	rw.write8(c, b, v)
}

func (c *CPU) dec8(b bus.Bus, rw readWriter8) {
	v := rw.read8(c, b) - 1

	c.regs.SetFlag(FlagZ, v == 0)
	c.regs.EnableFlag(FlagN)
	c.regs.SetFlag(FlagH, v&0x0F == 0x0F)

	rw.write8(c, b, v)
}

func (c *CPU) addHL(b bus.Bus, src reader16) {
	hl := uint32(c.regs.HL())
	v := uint32(src.read16(c, b))
	sum := hl + v

	c.regs.DisableFlag(FlagN)
	c.regs.SetFlag(FlagH, hl&0x0FFF+v&0x0FFF > 0x0FFF)
	c.regs.SetFlag(FlagC, sum > 0xFFFF)

	c.regs.SetHL(uint16(sum))
}

func (c *CPU) inc16(b bus.Bus, rw readWriter16) {
	rw.write16(c, b, rw.read16(c, b)+1)
}

func (c *CPU) dec16(b bus.Bus, rw readWriter16) {
	rw.write16(c, b, rw.read16(c, b)-1)
}

// Rotates of A through the dedicated one byte opcodes; unlike their CB
// counterparts these always clear Z.
func (c *CPU) rlca() {
	c.regs.A = c.rotateLeft(c.regs.A)
	c.regs.DisableFlag(FlagZ)
}

func (c *CPU) rla() {
	c.regs.A = c.rotateLeftThroughCarry(c.regs.A)
	c.regs.DisableFlag(FlagZ)
}

func (c *CPU) rrca() {
	c.regs.A = c.rotateRight(c.regs.A)
	c.regs.DisableFlag(FlagZ)
}

func (c *CPU) rra() {
	c.regs.A = c.rotateRightThroughCarry(c.regs.A)
	c.regs.DisableFlag(FlagZ)
}

func (c *CPU) rotateLeft(v uint8) uint8 {
	c.regs.SetFlag(FlagC, v&0x80 != 0)
	v = v<<1 | v>>7
	c.rotateFlags(v)
	return v
}

func (c *CPU) rotateLeftThroughCarry(v uint8) uint8 {
	carry := c.regs.flagBit(FlagC)
	c.regs.SetFlag(FlagC, v&0x80 != 0)
	v = v<<1 | carry
	c.rotateFlags(v)
	return v
}

func (c *CPU) rotateRight(v uint8) uint8 {
	c.regs.SetFlag(FlagC, v&0x01 != 0)
	v = v>>1 | v<<7
	c.rotateFlags(v)
	return v
}

func (c *CPU) rotateRightThroughCarry(v uint8) uint8 {
	carry := c.regs.flagBit(FlagC)
	c.regs.SetFlag(FlagC, v&0x01 != 0)
	v = v>>1 | carry<<7
	c.rotateFlags(v)
	return v
}

func (c *CPU) rotateFlags(result uint8) {
	c.regs.SetFlag(FlagZ, result == 0)
	c.regs.DisableFlag(FlagN)
	c.regs.DisableFlag(FlagH)
}

// CB-prefixed rotate/shift family, applied through the operand model so
// (HL) works like any register.
func (c *CPU) rlc(b bus.Bus, rw readWriter8) {
	rw.write8(c, b, c.rotateLeft(rw.read8(c, b)))
}

func (c *CPU) rl(b bus.Bus, rw readWriter8) {
	rw.write8(c, b, c.rotateLeftThroughCarry(rw.read8(c, b)))
}

func (c *CPU) rrc(b bus.Bus, rw readWriter8) {
	rw.write8(c, b, c.rotateRight(rw.read8(c, b)))
}

func (c *CPU) rr(b bus.Bus, rw readWriter8) {
	rw.write8(c, b, c.rotateRightThroughCarry(rw.read8(c, b)))
}

func (c *CPU) sla(b bus.Bus, rw readWriter8) {
	v := rw.read8(c, b)
	c.regs.SetFlag(FlagC, v&0x80 != 0)
	v <<= 1
	c.rotateFlags(v)
	rw.write8(c, b, v)
}

// sra shifts right keeping bit 7, srl shifts in a zero.
func (c *CPU) sra(b bus.Bus, rw readWriter8) {
	v := rw.read8(c, b)
	c.regs.SetFlag(FlagC, v&0x01 != 0)
	v = v>>1 | v&0x80
	c.rotateFlags(v)
	rw.write8(c, b, v)
}

func (c *CPU) srl(b bus.Bus, rw readWriter8) {
	v := rw.read8(c, b)
	c.regs.SetFlag(FlagC, v&0x01 != 0)
	v >>= 1
	c.rotateFlags(v)
	rw.write8(c, b, v)
}

func (c *CPU) swap(b bus.Bus, rw readWriter8) {
	v := rw.read8(c, b)
	v = v<<4 | v>>4

	c.regs.SetFlag(FlagZ, v == 0)
	c.regs.DisableFlag(FlagN)
	c.regs.DisableFlag(FlagH)
	c.regs.DisableFlag(FlagC)

	rw.write8(c, b, v)
}

func (c *CPU) bitTest(b bus.Bus, n uint8, src reader8) {
	v := src.read8(c, b)

	c.regs.SetFlag(FlagZ, v&(1<<n) == 0)
	c.regs.DisableFlag(FlagN)
	c.regs.EnableFlag(FlagH)
}

func (c *CPU) setBit(b bus.Bus, n uint8, rw readWriter8) {
	rw.write8(c, b, rw.read8(c, b)|1<<n)
}

func (c *CPU) resetBit(b bus.Bus, n uint8, rw readWriter8) {
	rw.write8(c, b, rw.read8(c, b)&^(1<<n))
}

// daa adjusts A back to packed BCD after an arithmetic operation, using
// N, H and C to decide which nibbles need correcting.
func (c *CPU) daa() {
	a := c.regs.A

	if !c.regs.GetFlag(FlagN) {
		if c.regs.GetFlag(FlagH) || a&0x0F > 0x09 {
			a += 0x06
		}
		if c.regs.GetFlag(FlagC) || c.regs.A > 0x99 {
			a += 0x60
			c.regs.EnableFlag(FlagC)
		}
	} else {
		if c.regs.GetFlag(FlagH) {
			a -= 0x06
		}
		if c.regs.GetFlag(FlagC) {
			a -= 0x60
		}
	}

	c.regs.SetFlag(FlagZ, a == 0)
	c.regs.DisableFlag(FlagH)
	c.regs.A = a
}

func (c *CPU) cpl() {
	c.regs.A = ^c.regs.A
	c.regs.EnableFlag(FlagN)
	c.regs.EnableFlag(FlagH)
}

func (c *CPU) scf() {
	c.regs.DisableFlag(FlagN)
	c.regs.DisableFlag(FlagH)
	c.regs.EnableFlag(FlagC)
}

func (c *CPU) ccf() {
	c.regs.DisableFlag(FlagN)
	c.regs.DisableFlag(FlagH)
	c.regs.SetFlag(FlagC, !c.regs.GetFlag(FlagC))
}

func (c *CPU) push(b bus.Bus, src reader16) {
	c.pushWord(b, src.read16(c, b))
}

func (c *CPU) pop(b bus.Bus, dst writer16) {
	dst.write16(c, b, c.popWord(b))
}

// Control flow. Taken branches set PC directly and return length 0 so
// Step does not advance past the target; not taken branches fall
// through with the instruction's byte length and base cycle count.

func (c *CPU) jp(b bus.Bus, cc cond) (int, int) {
	target := imm16{}.read16(c, b)
	if !cc.test(c) {
		return 3, 12
	}
	c.regs.PC = target
	return 0, 16
}

func (c *CPU) jpHL() (int, int) {
	c.regs.PC = c.regs.HL()
	return 0, 4
}

func (c *CPU) jr(b bus.Bus, cc cond) (int, int) {
	offset := int8(imm8{}.read8(c, b))
	if !cc.test(c) {
		return 2, 8
	}
	c.regs.PC = uint16(int32(c.regs.PC) + 2 + int32(offset))
	return 0, 12
}

func (c *CPU) call(b bus.Bus, cc cond) (int, int) {
	target := imm16{}.read16(c, b)
	if !cc.test(c) {
		return 3, 12
	}
	c.pushWord(b, c.regs.PC+3)
	c.regs.PC = target
	return 0, 24
}

func (c *CPU) ret(b bus.Bus, cc cond) (int, int) {
	if !cc.test(c) {
		return 1, 8
	}
	c.regs.PC = c.popWord(b)
	return 0, 20
}

func (c *CPU) retAlways(b bus.Bus) (int, int) {
	c.regs.PC = c.popWord(b)
	return 0, 16
}

func (c *CPU) reti(b bus.Bus) (int, int) {
	c.ime = true
	return c.retAlways(b)
}

func (c *CPU) rst(b bus.Bus, vector uint16) (int, int) {
	c.pushWord(b, c.regs.PC+1)
	c.regs.PC = vector
	return 0, 16
}

// halt stops execution until the IF register changes; the snapshot is
// what Step compares against to detect the wake-up.
func (c *CPU) halt(b bus.Bus) {
	c.halted = true
	c.interruptsBeforeHalt = b.Read8(addr.IF)
}
