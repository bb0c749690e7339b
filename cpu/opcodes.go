package cpu

import (
	"fmt"
	"log/slog"

	"github.com/mpavlov/goboy/bus"
)

// instruction executes one opcode and returns its byte length and
// T-cycle cost. Taken branches return length 0 because they set PC
// themselves; conditional instructions return the surcharge cycle count
// when taken.
type instruction func(c *CPU, b bus.Bus) (length, cycles int)

// unknownOpcode covers the handful of undefined encodings. Real
// cartridges hit these in broken error paths, so they log and behave
// like NOP instead of stopping emulation.
func unknownOpcode(opcode uint8) instruction {
	return func(c *CPU, b bus.Bus) (int, int) {
		slog.Warn("unknown opcode treated as NOP", "opcode", fmt.Sprintf("0x%02X", opcode), "pc", fmt.Sprintf("0x%04X", c.regs.PC))
		return 1, 4
	}
}

var opcodes = [256]instruction{
	// NOP
	0x00: func(c *CPU, b bus.Bus) (int, int) { return 1, 4 },
	// LD BC, nn
	0x01: func(c *CPU, b bus.Bus) (int, int) { c.ld16(b, regBC, imm16{}); return 3, 12 },
	// LD (BC), A
	0x02: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrBC, regA); return 1, 8 },
	// INC BC
	0x03: func(c *CPU, b bus.Bus) (int, int) { c.inc16(b, regBC); return 1, 8 },
	// INC B
	0x04: func(c *CPU, b bus.Bus) (int, int) { c.inc8(b, regB); return 1, 4 },
	// DEC B
	0x05: func(c *CPU, b bus.Bus) (int, int) { c.dec8(b, regB); return 1, 4 },
	// LD B, n
	0x06: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regB, imm8{}); return 2, 8 },
	// RLCA
	0x07: func(c *CPU, b bus.Bus) (int, int) { c.rlca(); return 1, 4 },
	// LD (nn), SP
	0x08: func(c *CPU, b bus.Bus) (int, int) { addrDirect.write16(c, b, c.regs.SP); return 3, 20 },
	// ADD HL, BC
	0x09: func(c *CPU, b bus.Bus) (int, int) { c.addHL(b, regBC); return 1, 8 },
	// LD A, (BC)
	0x0A: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, addrBC); return 1, 8 },
	// DEC BC
	0x0B: func(c *CPU, b bus.Bus) (int, int) { c.dec16(b, regBC); return 1, 8 },
	// INC C
	0x0C: func(c *CPU, b bus.Bus) (int, int) { c.inc8(b, regC); return 1, 4 },
	// DEC C
	0x0D: func(c *CPU, b bus.Bus) (int, int) { c.dec8(b, regC); return 1, 4 },
	// LD C, n
	0x0E: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regC, imm8{}); return 2, 8 },
	// RRCA
	0x0F: func(c *CPU, b bus.Bus) (int, int) { c.rrca(); return 1, 4 },
	// STOP (two byte encoding, handled as a NOP)
	0x10: func(c *CPU, b bus.Bus) (int, int) { return 2, 4 },
	// LD DE, nn
	0x11: func(c *CPU, b bus.Bus) (int, int) { c.ld16(b, regDE, imm16{}); return 3, 12 },
	// LD (DE), A
	0x12: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrDE, regA); return 1, 8 },
	// INC DE
	0x13: func(c *CPU, b bus.Bus) (int, int) { c.inc16(b, regDE); return 1, 8 },
	// INC D
	0x14: func(c *CPU, b bus.Bus) (int, int) { c.inc8(b, regD); return 1, 4 },
	// DEC D
	0x15: func(c *CPU, b bus.Bus) (int, int) { c.dec8(b, regD); return 1, 4 },
	// LD D, n
	0x16: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regD, imm8{}); return 2, 8 },
	// RLA
	0x17: func(c *CPU, b bus.Bus) (int, int) { c.rla(); return 1, 4 },
	// JR e
	0x18: func(c *CPU, b bus.Bus) (int, int) { return c.jr(b, condAlways) },
	// ADD HL, DE
	0x19: func(c *CPU, b bus.Bus) (int, int) { c.addHL(b, regDE); return 1, 8 },
	// LD A, (DE)
	0x1A: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, addrDE); return 1, 8 },
	// DEC DE
	0x1B: func(c *CPU, b bus.Bus) (int, int) { c.dec16(b, regDE); return 1, 8 },
	// INC E
	0x1C: func(c *CPU, b bus.Bus) (int, int) { c.inc8(b, regE); return 1, 4 },
	// DEC E
	0x1D: func(c *CPU, b bus.Bus) (int, int) { c.dec8(b, regE); return 1, 4 },
	// LD E, n
	0x1E: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regE, imm8{}); return 2, 8 },
	// RRA
	0x1F: func(c *CPU, b bus.Bus) (int, int) { c.rra(); return 1, 4 },
	// JR NZ, e
	0x20: func(c *CPU, b bus.Bus) (int, int) { return c.jr(b, condNZ) },
	// LD HL, nn
	0x21: func(c *CPU, b bus.Bus) (int, int) { c.ld16(b, regHL, imm16{}); return 3, 12 },
	// LD (HL+), A
	0x22: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHLInc, regA); return 1, 8 },
	// INC HL
	0x23: func(c *CPU, b bus.Bus) (int, int) { c.inc16(b, regHL); return 1, 8 },
	// INC H
	0x24: func(c *CPU, b bus.Bus) (int, int) { c.inc8(b, regH); return 1, 4 },
	// DEC H
	0x25: func(c *CPU, b bus.Bus) (int, int) { c.dec8(b, regH); return 1, 4 },
	// LD H, n
	0x26: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regH, imm8{}); return 2, 8 },
	// DAA
	0x27: func(c *CPU, b bus.Bus) (int, int) { c.daa(); return 1, 4 },
	// JR Z, e
	0x28: func(c *CPU, b bus.Bus) (int, int) { return c.jr(b, condZ) },
	// ADD HL, HL
	0x29: func(c *CPU, b bus.Bus) (int, int) { c.addHL(b, regHL); return 1, 8 },
	// LD A, (HL+)
	0x2A: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, addrHLInc); return 1, 8 },
	// DEC HL
	0x2B: func(c *CPU, b bus.Bus) (int, int) { c.dec16(b, regHL); return 1, 8 },
	// INC L
	0x2C: func(c *CPU, b bus.Bus) (int, int) { c.inc8(b, regL); return 1, 4 },
	// DEC L
	0x2D: func(c *CPU, b bus.Bus) (int, int) { c.dec8(b, regL); return 1, 4 },
	// LD L, n
	0x2E: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regL, imm8{}); return 2, 8 },
	// CPL
	0x2F: func(c *CPU, b bus.Bus) (int, int) { c.cpl(); return 1, 4 },
	// JR NC, e
	0x30: func(c *CPU, b bus.Bus) (int, int) { return c.jr(b, condNC) },
	// LD SP, nn
	0x31: func(c *CPU, b bus.Bus) (int, int) { c.ld16(b, regSP, imm16{}); return 3, 12 },
	// LD (HL-), A
	0x32: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHLDec, regA); return 1, 8 },
	// INC SP
	0x33: func(c *CPU, b bus.Bus) (int, int) { c.inc16(b, regSP); return 1, 8 },
	// INC (HL)
	0x34: func(c *CPU, b bus.Bus) (int, int) { c.inc8(b, addrHL); return 1, 12 },
	// DEC (HL)
	0x35: func(c *CPU, b bus.Bus) (int, int) { c.dec8(b, addrHL); return 1, 12 },
	// LD (HL), n
	0x36: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHL, imm8{}); return 2, 12 },
	// SCF
	0x37: func(c *CPU, b bus.Bus) (int, int) { c.scf(); return 1, 4 },
	// JR C, e
	0x38: func(c *CPU, b bus.Bus) (int, int) { return c.jr(b, condC) },
	// ADD HL, SP
	0x39: func(c *CPU, b bus.Bus) (int, int) { c.addHL(b, regSP); return 1, 8 },
	// LD A, (HL-)
	0x3A: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, addrHLDec); return 1, 8 },
	// DEC SP
	0x3B: func(c *CPU, b bus.Bus) (int, int) { c.dec16(b, regSP); return 1, 8 },
	// INC A
	0x3C: func(c *CPU, b bus.Bus) (int, int) { c.inc8(b, regA); return 1, 4 },
	// DEC A
	0x3D: func(c *CPU, b bus.Bus) (int, int) { c.dec8(b, regA); return 1, 4 },
	// LD A, n
	0x3E: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, imm8{}); return 2, 8 },
	// CCF
	0x3F: func(c *CPU, b bus.Bus) (int, int) { c.ccf(); return 1, 4 },
	// LD B, B
	0x40: func(c *CPU, b bus.Bus) (int, int) { return 1, 4 },
	// LD B, C
	0x41: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regB, regC); return 1, 4 },
	// LD B, D
	0x42: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regB, regD); return 1, 4 },
	// LD B, E
	0x43: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regB, regE); return 1, 4 },
	// LD B, H
	0x44: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regB, regH); return 1, 4 },
	// LD B, L
	0x45: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regB, regL); return 1, 4 },
	// LD B, (HL)
	0x46: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regB, addrHL); return 1, 8 },
	// LD B, A
	0x47: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regB, regA); return 1, 4 },
	// LD C, B
	0x48: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regC, regB); return 1, 4 },
	// LD C, C
	0x49: func(c *CPU, b bus.Bus) (int, int) { return 1, 4 },
	// LD C, D
	0x4A: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regC, regD); return 1, 4 },
	// LD C, E
	0x4B: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regC, regE); return 1, 4 },
	// LD C, H
	0x4C: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regC, regH); return 1, 4 },
	// LD C, L
	0x4D: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regC, regL); return 1, 4 },
	// LD C, (HL)
	0x4E: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regC, addrHL); return 1, 8 },
	// LD C, A
	0x4F: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regC, regA); return 1, 4 },
	// LD D, B
	0x50: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regD, regB); return 1, 4 },
	// LD D, C
	0x51: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regD, regC); return 1, 4 },
	// LD D, D
	0x52: func(c *CPU, b bus.Bus) (int, int) { return 1, 4 },
	// LD D, E
	0x53: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regD, regE); return 1, 4 },
	// LD D, H
	0x54: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regD, regH); return 1, 4 },
	// LD D, L
	0x55: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regD, regL); return 1, 4 },
	// LD D, (HL)
	0x56: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regD, addrHL); return 1, 8 },
	// LD D, A
	0x57: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regD, regA); return 1, 4 },
	// LD E, B
	0x58: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regE, regB); return 1, 4 },
	// LD E, C
	0x59: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regE, regC); return 1, 4 },
	// LD E, D
	0x5A: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regE, regD); return 1, 4 },
	// LD E, E
	0x5B: func(c *CPU, b bus.Bus) (int, int) { return 1, 4 },
	// LD E, H
	0x5C: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regE, regH); return 1, 4 },
	// LD E, L
	0x5D: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regE, regL); return 1, 4 },
	// LD E, (HL)
	0x5E: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regE, addrHL); return 1, 8 },
	// LD E, A
	0x5F: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regE, regA); return 1, 4 },
	// LD H, B
	0x60: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regH, regB); return 1, 4 },
	// LD H, C
	0x61: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regH, regC); return 1, 4 },
	// LD H, D
	0x62: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regH, regD); return 1, 4 },
	// LD H, E
	0x63: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regH, regE); return 1, 4 },
	// LD H, H
	0x64: func(c *CPU, b bus.Bus) (int, int) { return 1, 4 },
	// LD H, L
	0x65: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regH, regL); return 1, 4 },
	// LD H, (HL)
	0x66: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regH, addrHL); return 1, 8 },
	// LD H, A
	0x67: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regH, regA); return 1, 4 },
	// LD L, B
	0x68: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regL, regB); return 1, 4 },
	// LD L, C
	0x69: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regL, regC); return 1, 4 },
	// LD L, D
	0x6A: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regL, regD); return 1, 4 },
	// LD L, E
	0x6B: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regL, regE); return 1, 4 },
	// LD L, H
	0x6C: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regL, regH); return 1, 4 },
	// LD L, L
	0x6D: func(c *CPU, b bus.Bus) (int, int) { return 1, 4 },
	// LD L, (HL)
	0x6E: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regL, addrHL); return 1, 8 },
	// LD L, A
	0x6F: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regL, regA); return 1, 4 },
	// LD (HL), B
	0x70: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHL, regB); return 1, 8 },
	// LD (HL), C
	0x71: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHL, regC); return 1, 8 },
	// LD (HL), D
	0x72: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHL, regD); return 1, 8 },
	// LD (HL), E
	0x73: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHL, regE); return 1, 8 },
	// LD (HL), H
	0x74: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHL, regH); return 1, 8 },
	// LD (HL), L
	0x75: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHL, regL); return 1, 8 },
	// HALT
	0x76: func(c *CPU, b bus.Bus) (int, int) { c.halt(b); return 1, 4 },
	// LD (HL), A
	0x77: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHL, regA); return 1, 8 },
	// LD A, B
	0x78: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, regB); return 1, 4 },
	// LD A, C
	0x79: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, regC); return 1, 4 },
	// LD A, D
	0x7A: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, regD); return 1, 4 },
	// LD A, E
	0x7B: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, regE); return 1, 4 },
	// LD A, H
	0x7C: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, regH); return 1, 4 },
	// LD A, L
	0x7D: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, regL); return 1, 4 },
	// LD A, (HL)
	0x7E: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, addrHL); return 1, 8 },
	// LD A, A
	0x7F: func(c *CPU, b bus.Bus) (int, int) { return 1, 4 },
	// ADD A, B
	0x80: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, regB); return 1, 4 },
	// ADD A, C
	0x81: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, regC); return 1, 4 },
	// ADD A, D
	0x82: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, regD); return 1, 4 },
	// ADD A, E
	0x83: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, regE); return 1, 4 },
	// ADD A, H
	0x84: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, regH); return 1, 4 },
	// ADD A, L
	0x85: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, regL); return 1, 4 },
	// ADD A, (HL)
	0x86: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, addrHL); return 1, 8 },
	// ADD A, A
	0x87: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, regA); return 1, 4 },
	// ADC A, B
	0x88: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, regB); return 1, 4 },
	// ADC A, C
	0x89: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, regC); return 1, 4 },
	// ADC A, D
	0x8A: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, regD); return 1, 4 },
	// ADC A, E
	0x8B: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, regE); return 1, 4 },
	// ADC A, H
	0x8C: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, regH); return 1, 4 },
	// ADC A, L
	0x8D: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, regL); return 1, 4 },
	// ADC A, (HL)
	0x8E: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, addrHL); return 1, 8 },
	// ADC A, A
	0x8F: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, regA); return 1, 4 },
	// SUB A, B
	0x90: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, regB); return 1, 4 },
	// SUB A, C
	0x91: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, regC); return 1, 4 },
	// SUB A, D
	0x92: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, regD); return 1, 4 },
	// SUB A, E
	0x93: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, regE); return 1, 4 },
	// SUB A, H
	0x94: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, regH); return 1, 4 },
	// SUB A, L
	0x95: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, regL); return 1, 4 },
	// SUB A, (HL)
	0x96: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, addrHL); return 1, 8 },
	// SUB A, A
	0x97: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, regA); return 1, 4 },
	// SBC A, B
	0x98: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, regB); return 1, 4 },
	// SBC A, C
	0x99: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, regC); return 1, 4 },
	// SBC A, D
	0x9A: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, regD); return 1, 4 },
	// SBC A, E
	0x9B: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, regE); return 1, 4 },
	// SBC A, H
	0x9C: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, regH); return 1, 4 },
	// SBC A, L
	0x9D: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, regL); return 1, 4 },
	// SBC A, (HL)
	0x9E: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, addrHL); return 1, 8 },
	// SBC A, A
	0x9F: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, regA); return 1, 4 },
	// AND A, B
	0xA0: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, regB); return 1, 4 },
	// AND A, C
	0xA1: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, regC); return 1, 4 },
	// AND A, D
	0xA2: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, regD); return 1, 4 },
	// AND A, E
	0xA3: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, regE); return 1, 4 },
	// AND A, H
	0xA4: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, regH); return 1, 4 },
	// AND A, L
	0xA5: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, regL); return 1, 4 },
	// AND A, (HL)
	0xA6: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, addrHL); return 1, 8 },
	// AND A, A
	0xA7: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, regA); return 1, 4 },
	// XOR A, B
	0xA8: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, regB); return 1, 4 },
	// XOR A, C
	0xA9: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, regC); return 1, 4 },
	// XOR A, D
	0xAA: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, regD); return 1, 4 },
	// XOR A, E
	0xAB: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, regE); return 1, 4 },
	// XOR A, H
	0xAC: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, regH); return 1, 4 },
	// XOR A, L
	0xAD: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, regL); return 1, 4 },
	// XOR A, (HL)
	0xAE: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, addrHL); return 1, 8 },
	// XOR A, A
	0xAF: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, regA); return 1, 4 },
	// OR A, B
	0xB0: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, regB); return 1, 4 },
	// OR A, C
	0xB1: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, regC); return 1, 4 },
	// OR A, D
	0xB2: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, regD); return 1, 4 },
	// OR A, E
	0xB3: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, regE); return 1, 4 },
	// OR A, H
	0xB4: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, regH); return 1, 4 },
	// OR A, L
	0xB5: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, regL); return 1, 4 },
	// OR A, (HL)
	0xB6: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, addrHL); return 1, 8 },
	// OR A, A
	0xB7: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, regA); return 1, 4 },
	// CP A, B
	0xB8: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, regB); return 1, 4 },
	// CP A, C
	0xB9: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, regC); return 1, 4 },
	// CP A, D
	0xBA: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, regD); return 1, 4 },
	// CP A, E
	0xBB: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, regE); return 1, 4 },
	// CP A, H
	0xBC: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, regH); return 1, 4 },
	// CP A, L
	0xBD: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, regL); return 1, 4 },
	// CP A, (HL)
	0xBE: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, addrHL); return 1, 8 },
	// CP A, A
	0xBF: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, regA); return 1, 4 },
	// RET NZ
	0xC0: func(c *CPU, b bus.Bus) (int, int) { return c.ret(b, condNZ) },
	// POP BC
	0xC1: func(c *CPU, b bus.Bus) (int, int) { c.pop(b, regBC); return 1, 12 },
	// JP NZ, nn
	0xC2: func(c *CPU, b bus.Bus) (int, int) { return c.jp(b, condNZ) },
	// JP nn
	0xC3: func(c *CPU, b bus.Bus) (int, int) { return c.jp(b, condAlways) },
	// CALL NZ, nn
	0xC4: func(c *CPU, b bus.Bus) (int, int) { return c.call(b, condNZ) },
	// PUSH BC
	0xC5: func(c *CPU, b bus.Bus) (int, int) { c.push(b, regBC); return 1, 16 },
	// ADD A, n
	0xC6: func(c *CPU, b bus.Bus) (int, int) { c.add8(b, imm8{}); return 2, 8 },
	// RST 00
	0xC7: func(c *CPU, b bus.Bus) (int, int) { return c.rst(b, 0x0000) },
	// RET Z
	0xC8: func(c *CPU, b bus.Bus) (int, int) { return c.ret(b, condZ) },
	// RET
	0xC9: func(c *CPU, b bus.Bus) (int, int) { return c.retAlways(b) },
	// JP Z, nn
	0xCA: func(c *CPU, b bus.Bus) (int, int) { return c.jp(b, condZ) },
	// PREFIX CB, dispatched through the CB table by Step
	0xCB: func(c *CPU, b bus.Bus) (int, int) { panic("CB prefix reached the main opcode table") },
	// CALL Z, nn
	0xCC: func(c *CPU, b bus.Bus) (int, int) { return c.call(b, condZ) },
	// CALL nn
	0xCD: func(c *CPU, b bus.Bus) (int, int) { return c.call(b, condAlways) },
	// ADC A, n
	0xCE: func(c *CPU, b bus.Bus) (int, int) { c.adc8(b, imm8{}); return 2, 8 },
	// RST 08
	0xCF: func(c *CPU, b bus.Bus) (int, int) { return c.rst(b, 0x0008) },
	// RET NC
	0xD0: func(c *CPU, b bus.Bus) (int, int) { return c.ret(b, condNC) },
	// POP DE
	0xD1: func(c *CPU, b bus.Bus) (int, int) { c.pop(b, regDE); return 1, 12 },
	// JP NC, nn
	0xD2: func(c *CPU, b bus.Bus) (int, int) { return c.jp(b, condNC) },
	0xD3: unknownOpcode(0xD3),
	// CALL NC, nn
	0xD4: func(c *CPU, b bus.Bus) (int, int) { return c.call(b, condNC) },
	// PUSH DE
	0xD5: func(c *CPU, b bus.Bus) (int, int) { c.push(b, regDE); return 1, 16 },
	// SUB A, n
	0xD6: func(c *CPU, b bus.Bus) (int, int) { c.sub8(b, imm8{}); return 2, 8 },
	// RST 10
	0xD7: func(c *CPU, b bus.Bus) (int, int) { return c.rst(b, 0x0010) },
	// RET C
	0xD8: func(c *CPU, b bus.Bus) (int, int) { return c.ret(b, condC) },
	// RETI
	0xD9: func(c *CPU, b bus.Bus) (int, int) { return c.reti(b) },
	// JP C, nn
	0xDA: func(c *CPU, b bus.Bus) (int, int) { return c.jp(b, condC) },
	0xDB: unknownOpcode(0xDB),
	// CALL C, nn
	0xDC: func(c *CPU, b bus.Bus) (int, int) { return c.call(b, condC) },
	0xDD: unknownOpcode(0xDD),
	// SBC A, n
	0xDE: func(c *CPU, b bus.Bus) (int, int) { c.sbc8(b, imm8{}); return 2, 8 },
	// RST 18
	0xDF: func(c *CPU, b bus.Bus) (int, int) { return c.rst(b, 0x0018) },
	// LDH (n), A
	0xE0: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHigh, regA); return 2, 12 },
	// POP HL
	0xE1: func(c *CPU, b bus.Bus) (int, int) { c.pop(b, regHL); return 1, 12 },
	// LD (C), A
	0xE2: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrHighC, regA); return 1, 8 },
	0xE3: unknownOpcode(0xE3),
	0xE4: unknownOpcode(0xE4),
	// PUSH HL
	0xE5: func(c *CPU, b bus.Bus) (int, int) { c.push(b, regHL); return 1, 16 },
	// AND A, n
	0xE6: func(c *CPU, b bus.Bus) (int, int) { c.and8(b, imm8{}); return 2, 8 },
	// RST 20
	0xE7: func(c *CPU, b bus.Bus) (int, int) { return c.rst(b, 0x0020) },
	// ADD SP, e
	0xE8: func(c *CPU, b bus.Bus) (int, int) { c.addSP(b); return 2, 16 },
	// JP (HL)
	0xE9: func(c *CPU, b bus.Bus) (int, int) { return c.jpHL() },
	// LD (nn), A
	0xEA: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, addrDirect, regA); return 3, 16 },
	0xEB: unknownOpcode(0xEB),
	0xEC: unknownOpcode(0xEC),
	0xED: unknownOpcode(0xED),
	// XOR A, n
	0xEE: func(c *CPU, b bus.Bus) (int, int) { c.xor8(b, imm8{}); return 2, 8 },
	// RST 28
	0xEF: func(c *CPU, b bus.Bus) (int, int) { return c.rst(b, 0x0028) },
	// LDH A, (n)
	0xF0: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, addrHigh); return 2, 12 },
	// POP AF
	0xF1: func(c *CPU, b bus.Bus) (int, int) { c.pop(b, regAF); return 1, 12 },
	// LD A, (C)
	0xF2: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, addrHighC); return 1, 8 },
	// DI
	0xF3: func(c *CPU, b bus.Bus) (int, int) { c.ime = false; return 1, 4 },
	0xF4: unknownOpcode(0xF4),
	// PUSH AF
	0xF5: func(c *CPU, b bus.Bus) (int, int) { c.push(b, regAF); return 1, 16 },
	// OR A, n
	0xF6: func(c *CPU, b bus.Bus) (int, int) { c.or8(b, imm8{}); return 2, 8 },
	// RST 30
	0xF7: func(c *CPU, b bus.Bus) (int, int) { return c.rst(b, 0x0030) },
	// LD HL, SP+e
	0xF8: func(c *CPU, b bus.Bus) (int, int) { c.ldHLSPOffset(b); return 2, 12 },
	// LD SP, HL
	0xF9: func(c *CPU, b bus.Bus) (int, int) { c.ld16(b, regSP, regHL); return 1, 8 },
	// LD A, (nn)
	0xFA: func(c *CPU, b bus.Bus) (int, int) { c.ld8(b, regA, addrDirect); return 3, 16 },
	// EI
	0xFB: func(c *CPU, b bus.Bus) (int, int) { c.ime = true; return 1, 4 },
	0xFC: unknownOpcode(0xFC),
	0xFD: unknownOpcode(0xFD),
	// CP A, n
	0xFE: func(c *CPU, b bus.Bus) (int, int) { c.cp8(b, imm8{}); return 2, 8 },
	// RST 38
	0xFF: func(c *CPU, b bus.Bus) (int, int) { return c.rst(b, 0x0038) },
}
