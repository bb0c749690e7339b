package cpu

import "github.com/mpavlov/goboy/bus"

// The CB-prefixed table is perfectly regular: eight operand columns
// (B, C, D, E, H, L, (HL), A) repeated for every operation row, so it
// is built once at startup instead of being written out by hand.

// cbOperands is the operand column order shared by every CB row.
var cbOperands = [8]readWriter8{regB, regC, regD, regE, regH, regL, addrHL, regA}

// cbShiftRows lists the rotate/shift/swap rows at 0x00-0x3F in opcode
// order.
var cbShiftRows = [8]struct {
	name  string
	apply func(c *CPU, b bus.Bus, rw readWriter8)
}{
	{"RLC", (*CPU).rlc},
	{"RRC", (*CPU).rrc},
	{"RL", (*CPU).rl},
	{"RR", (*CPU).rr},
	{"SLA", (*CPU).sla},
	{"SRA", (*CPU).sra},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).srl},
}

var opcodesCB = buildCBTable()

func buildCBTable() [256]instruction {
	var table [256]instruction

	// 0x00-0x3F: rotates, shifts and SWAP
	for row, shift := range cbShiftRows {
		for col, operand := range cbOperands {
			apply, operand := shift.apply, operand
			cycles := cbCycles(operand, 16)
			table[row*8+col] = func(c *CPU, b bus.Bus) (int, int) {
				apply(c, b, operand)
				return 2, cycles
			}
		}
	}

	// 0x40-0x7F: BIT n, r
	for n := uint8(0); n < 8; n++ {
		for col, operand := range cbOperands {
			n, operand := n, operand
			cycles := cbCycles(operand, 12)
			table[0x40+int(n)*8+col] = func(c *CPU, b bus.Bus) (int, int) {
				c.bitTest(b, n, operand)
				return 2, cycles
			}
		}
	}

	// 0x80-0xBF: RES n, r
	for n := uint8(0); n < 8; n++ {
		for col, operand := range cbOperands {
			n, operand := n, operand
			cycles := cbCycles(operand, 16)
			table[0x80+int(n)*8+col] = func(c *CPU, b bus.Bus) (int, int) {
				c.resetBit(b, n, operand)
				return 2, cycles
			}
		}
	}

	// 0xC0-0xFF: SET n, r
	for n := uint8(0); n < 8; n++ {
		for col, operand := range cbOperands {
			n, operand := n, operand
			cycles := cbCycles(operand, 16)
			table[0xC0+int(n)*8+col] = func(c *CPU, b bus.Bus) (int, int) {
				c.setBit(b, n, operand)
				return 2, cycles
			}
		}
	}

	return table
}

// cbCycles returns the cost of a CB instruction: register forms take 8
// cycles, the (HL) form pays the memory access surcharge.
func cbCycles(operand readWriter8, hlCycles int) int {
	if operand == readWriter8(addrHL) {
		return hlCycles
	}
	return 8
}
