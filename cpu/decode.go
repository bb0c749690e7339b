package cpu

// decode maps an opcode byte to its executable form through the main
// table. CB-prefixed opcodes go through decodeCB after the prefix byte
// has been consumed; the two tables stay separate dispatches.
func decode(opcode uint8) instruction {
	return opcodes[opcode]
}

func decodeCB(opcode uint8) instruction {
	return opcodesCB[opcode]
}
