package snes

// Handler executes one instruction's semantics. On entry PC points
// at the opcode byte; the handler is responsible for consuming
// its own operand bytes via fetch/store/fetchByte/fetchWord, per
// spec.md §4.5's handler contract.
type Handler func(c *CPU)

// Instruction is the opcode metadata the dispatcher and disassembler
// use. Modelled on the teacher's instructions.go Instruction struct,
// trimmed of the NES-specific Cycles/PageCycles/Illegal fields that
// have no counterpart in this core's non-cycle-exact scope.
type Instruction struct {
	Name    string
	Mode    AddressingMode
	Handler Handler
}

// buildInstructionTable returns the opcode -> Instruction dispatch
// table. Slots left with a nil Handler fall through Step's
// unrecognised-opcode path, matching spec.md §4.5's "single-level
// table mapping opcode byte -> handler" design note. Opcodes absent
// from this table include BRK, COP, STP, WAI, MVN, MVP and WDM, and
// also XBA, TSB, TRB, BRL, PEA, PEI, PER, RTI, JML (addr), JSR (addr,X)
// and several addressing-mode variants of the mnemonics listed below.
func buildInstructionTable() [256]Instruction {
	var t [256]Instruction

	set := func(op byte, name string, mode AddressingMode, h Handler) {
		t[op] = Instruction{Name: name, Mode: mode, Handler: h}
	}

	// Loads.
	set(0xA9, "LDA", ModeImmediate, opLDA)
	set(0xA5, "LDA", ModeDirect, opLDA)
	set(0xB5, "LDA", ModeDirectIndexedX, opLDA)
	set(0xAD, "LDA", ModeAbsolute, opLDA)
	set(0xBD, "LDA", ModeAbsoluteIndexedX, opLDA)
	set(0xB9, "LDA", ModeAbsoluteIndexedY, opLDA)
	set(0xAF, "LDA", ModeAbsoluteLong, opLDA)
	set(0xBF, "LDA", ModeAbsoluteLongIndexedX, opLDA)
	set(0xB2, "LDA", ModeDirectIndirect, opLDA)
	set(0xA7, "LDA", ModeDirectIndirectLong, opLDA)
	set(0xA1, "LDA", ModeDirectIndexedIndirectX, opLDA)
	set(0xB1, "LDA", ModeDirectIndirectIndexedY, opLDA)
	set(0xB7, "LDA", ModeDirectIndirectIndexedLongY, opLDA)
	set(0xA3, "LDA", ModeStackRelative, opLDA)
	set(0xB3, "LDA", ModeStackRelativeIndirectIndexedY, opLDA)

	set(0xA2, "LDX", ModeImmediate, opLDX)
	set(0xA6, "LDX", ModeDirect, opLDX)
	set(0xB6, "LDX", ModeDirectIndexedY, opLDX)
	set(0xAE, "LDX", ModeAbsolute, opLDX)
	set(0xBE, "LDX", ModeAbsoluteIndexedY, opLDX)

	set(0xA0, "LDY", ModeImmediate, opLDY)
	set(0xA4, "LDY", ModeDirect, opLDY)
	set(0xB4, "LDY", ModeDirectIndexedX, opLDY)
	set(0xAC, "LDY", ModeAbsolute, opLDY)
	set(0xBC, "LDY", ModeAbsoluteIndexedX, opLDY)

	// Stores.
	set(0x85, "STA", ModeDirect, opSTA)
	set(0x95, "STA", ModeDirectIndexedX, opSTA)
	set(0x8D, "STA", ModeAbsolute, opSTA)
	set(0x9D, "STA", ModeAbsoluteIndexedX, opSTA)
	set(0x99, "STA", ModeAbsoluteIndexedY, opSTA)
	set(0x8F, "STA", ModeAbsoluteLong, opSTA)
	set(0x9F, "STA", ModeAbsoluteLongIndexedX, opSTA)
	set(0x92, "STA", ModeDirectIndirect, opSTA)
	set(0x87, "STA", ModeDirectIndirectLong, opSTA)
	set(0x81, "STA", ModeDirectIndexedIndirectX, opSTA)
	set(0x91, "STA", ModeDirectIndirectIndexedY, opSTA)
	set(0x97, "STA", ModeDirectIndirectIndexedLongY, opSTA)
	set(0x83, "STA", ModeStackRelative, opSTA)
	set(0x93, "STA", ModeStackRelativeIndirectIndexedY, opSTA)

	set(0x86, "STX", ModeDirect, opSTX)
	set(0x96, "STX", ModeDirectIndexedY, opSTX)
	set(0x8E, "STX", ModeAbsolute, opSTX)

	set(0x84, "STY", ModeDirect, opSTY)
	set(0x94, "STY", ModeDirectIndexedX, opSTY)
	set(0x8C, "STY", ModeAbsolute, opSTY)

	set(0x64, "STZ", ModeDirect, opSTZ)
	set(0x74, "STZ", ModeDirectIndexedX, opSTZ)
	set(0x9C, "STZ", ModeAbsolute, opSTZ)
	set(0x9E, "STZ", ModeAbsoluteIndexedX, opSTZ)

	// Compares.
	set(0xC9, "CMP", ModeImmediate, opCMP)
	set(0xC5, "CMP", ModeDirect, opCMP)
	set(0xD5, "CMP", ModeDirectIndexedX, opCMP)
	set(0xCD, "CMP", ModeAbsolute, opCMP)
	set(0xDD, "CMP", ModeAbsoluteIndexedX, opCMP)
	set(0xD9, "CMP", ModeAbsoluteIndexedY, opCMP)
	set(0xCF, "CMP", ModeAbsoluteLong, opCMP)
	set(0xDF, "CMP", ModeAbsoluteLongIndexedX, opCMP)
	set(0xD2, "CMP", ModeDirectIndirect, opCMP)
	set(0xC7, "CMP", ModeDirectIndirectLong, opCMP)
	set(0xC1, "CMP", ModeDirectIndexedIndirectX, opCMP)
	set(0xD1, "CMP", ModeDirectIndirectIndexedY, opCMP)
	set(0xD7, "CMP", ModeDirectIndirectIndexedLongY, opCMP)
	set(0xC3, "CMP", ModeStackRelative, opCMP)
	set(0xD3, "CMP", ModeStackRelativeIndirectIndexedY, opCMP)

	set(0xE0, "CPX", ModeImmediate, opCPX)
	set(0xE4, "CPX", ModeDirect, opCPX)
	set(0xEC, "CPX", ModeAbsolute, opCPX)

	set(0xC0, "CPY", ModeImmediate, opCPY)
	set(0xC4, "CPY", ModeDirect, opCPY)
	set(0xCC, "CPY", ModeAbsolute, opCPY)

	// Arithmetic.
	set(0x69, "ADC", ModeImmediate, opADC)
	set(0x65, "ADC", ModeDirect, opADC)
	set(0x75, "ADC", ModeDirectIndexedX, opADC)
	set(0x6D, "ADC", ModeAbsolute, opADC)
	set(0x7D, "ADC", ModeAbsoluteIndexedX, opADC)
	set(0x79, "ADC", ModeAbsoluteIndexedY, opADC)
	set(0x6F, "ADC", ModeAbsoluteLong, opADC)
	set(0x7F, "ADC", ModeAbsoluteLongIndexedX, opADC)
	set(0x72, "ADC", ModeDirectIndirect, opADC)
	set(0x67, "ADC", ModeDirectIndirectLong, opADC)
	set(0x61, "ADC", ModeDirectIndexedIndirectX, opADC)
	set(0x71, "ADC", ModeDirectIndirectIndexedY, opADC)
	set(0x77, "ADC", ModeDirectIndirectIndexedLongY, opADC)
	set(0x63, "ADC", ModeStackRelative, opADC)
	set(0x73, "ADC", ModeStackRelativeIndirectIndexedY, opADC)

	set(0xE9, "SBC", ModeImmediate, opSBC)
	set(0xE5, "SBC", ModeDirect, opSBC)
	set(0xF5, "SBC", ModeDirectIndexedX, opSBC)
	set(0xED, "SBC", ModeAbsolute, opSBC)
	set(0xFD, "SBC", ModeAbsoluteIndexedX, opSBC)
	set(0xF9, "SBC", ModeAbsoluteIndexedY, opSBC)
	set(0xEF, "SBC", ModeAbsoluteLong, opSBC)
	set(0xFF, "SBC", ModeAbsoluteLongIndexedX, opSBC)
	set(0xF2, "SBC", ModeDirectIndirect, opSBC)
	set(0xE7, "SBC", ModeDirectIndirectLong, opSBC)
	set(0xE1, "SBC", ModeDirectIndexedIndirectX, opSBC)
	set(0xF1, "SBC", ModeDirectIndirectIndexedY, opSBC)
	set(0xF7, "SBC", ModeDirectIndirectIndexedLongY, opSBC)
	set(0xE3, "SBC", ModeStackRelative, opSBC)
	set(0xF3, "SBC", ModeStackRelativeIndirectIndexedY, opSBC)

	set(0xE6, "INC", ModeDirect, opINC)
	set(0xF6, "INC", ModeDirectIndexedX, opINC)
	set(0xEE, "INC", ModeAbsolute, opINC)
	set(0xFE, "INC", ModeAbsoluteIndexedX, opINC)
	set(0x1A, "INC", ModeAccumulator, opINCAcc)
	set(0xE8, "INX", ModeImplied, opINX)
	set(0xC8, "INY", ModeImplied, opINY)

	set(0xC6, "DEC", ModeDirect, opDEC)
	set(0xD6, "DEC", ModeDirectIndexedX, opDEC)
	set(0xCE, "DEC", ModeAbsolute, opDEC)
	set(0xDE, "DEC", ModeAbsoluteIndexedX, opDEC)
	set(0x3A, "DEC", ModeAccumulator, opDECAcc)
	set(0xCA, "DEX", ModeImplied, opDEX)
	set(0x88, "DEY", ModeImplied, opDEY)

	// Bitwise / bit test.
	set(0x29, "AND", ModeImmediate, opAND)
	set(0x25, "AND", ModeDirect, opAND)
	set(0x35, "AND", ModeDirectIndexedX, opAND)
	set(0x2D, "AND", ModeAbsolute, opAND)
	set(0x3D, "AND", ModeAbsoluteIndexedX, opAND)
	set(0x39, "AND", ModeAbsoluteIndexedY, opAND)
	set(0x2F, "AND", ModeAbsoluteLong, opAND)
	set(0x3F, "AND", ModeAbsoluteLongIndexedX, opAND)
	set(0x32, "AND", ModeDirectIndirect, opAND)
	set(0x27, "AND", ModeDirectIndirectLong, opAND)
	set(0x21, "AND", ModeDirectIndexedIndirectX, opAND)
	set(0x31, "AND", ModeDirectIndirectIndexedY, opAND)
	set(0x37, "AND", ModeDirectIndirectIndexedLongY, opAND)
	set(0x23, "AND", ModeStackRelative, opAND)
	set(0x33, "AND", ModeStackRelativeIndirectIndexedY, opAND)

	set(0x09, "ORA", ModeImmediate, opORA)
	set(0x05, "ORA", ModeDirect, opORA)
	set(0x15, "ORA", ModeDirectIndexedX, opORA)
	set(0x0D, "ORA", ModeAbsolute, opORA)
	set(0x1D, "ORA", ModeAbsoluteIndexedX, opORA)
	set(0x19, "ORA", ModeAbsoluteIndexedY, opORA)
	set(0x0F, "ORA", ModeAbsoluteLong, opORA)
	set(0x1F, "ORA", ModeAbsoluteLongIndexedX, opORA)
	set(0x12, "ORA", ModeDirectIndirect, opORA)
	set(0x07, "ORA", ModeDirectIndirectLong, opORA)
	set(0x01, "ORA", ModeDirectIndexedIndirectX, opORA)
	set(0x11, "ORA", ModeDirectIndirectIndexedY, opORA)
	set(0x17, "ORA", ModeDirectIndirectIndexedLongY, opORA)
	set(0x03, "ORA", ModeStackRelative, opORA)
	set(0x13, "ORA", ModeStackRelativeIndirectIndexedY, opORA)

	set(0x49, "EOR", ModeImmediate, opEOR)
	set(0x45, "EOR", ModeDirect, opEOR)
	set(0x55, "EOR", ModeDirectIndexedX, opEOR)
	set(0x4D, "EOR", ModeAbsolute, opEOR)
	set(0x5D, "EOR", ModeAbsoluteIndexedX, opEOR)
	set(0x59, "EOR", ModeAbsoluteIndexedY, opEOR)
	set(0x4F, "EOR", ModeAbsoluteLong, opEOR)
	set(0x5F, "EOR", ModeAbsoluteLongIndexedX, opEOR)
	set(0x52, "EOR", ModeDirectIndirect, opEOR)
	set(0x47, "EOR", ModeDirectIndirectLong, opEOR)
	set(0x41, "EOR", ModeDirectIndexedIndirectX, opEOR)
	set(0x51, "EOR", ModeDirectIndirectIndexedY, opEOR)
	set(0x57, "EOR", ModeDirectIndirectIndexedLongY, opEOR)
	set(0x43, "EOR", ModeStackRelative, opEOR)
	set(0x53, "EOR", ModeStackRelativeIndirectIndexedY, opEOR)

	set(0x89, "BIT", ModeImmediate, opBIT)
	set(0x24, "BIT", ModeDirect, opBIT)
	set(0x34, "BIT", ModeDirectIndexedX, opBIT)
	set(0x2C, "BIT", ModeAbsolute, opBIT)
	set(0x3C, "BIT", ModeAbsoluteIndexedX, opBIT)

	// Shifts/rotates.
	set(0x0A, "ASL", ModeAccumulator, opASLAcc)
	set(0x06, "ASL", ModeDirect, opASL)
	set(0x16, "ASL", ModeDirectIndexedX, opASL)
	set(0x0E, "ASL", ModeAbsolute, opASL)
	set(0x1E, "ASL", ModeAbsoluteIndexedX, opASL)

	set(0x4A, "LSR", ModeAccumulator, opLSRAcc)
	set(0x46, "LSR", ModeDirect, opLSR)
	set(0x56, "LSR", ModeDirectIndexedX, opLSR)
	set(0x4E, "LSR", ModeAbsolute, opLSR)
	set(0x5E, "LSR", ModeAbsoluteIndexedX, opLSR)

	set(0x2A, "ROL", ModeAccumulator, opROLAcc)
	set(0x26, "ROL", ModeDirect, opROL)
	set(0x36, "ROL", ModeDirectIndexedX, opROL)
	set(0x2E, "ROL", ModeAbsolute, opROL)
	set(0x3E, "ROL", ModeAbsoluteIndexedX, opROL)

	set(0x6A, "ROR", ModeAccumulator, opRORAcc)
	set(0x66, "ROR", ModeDirect, opROR)
	set(0x76, "ROR", ModeDirectIndexedX, opROR)
	set(0x6E, "ROR", ModeAbsolute, opROR)
	set(0x7E, "ROR", ModeAbsoluteIndexedX, opROR)

	// Branches.
	set(0xF0, "BEQ", ModeRelative, opBranch(FlagZero, true))
	set(0xD0, "BNE", ModeRelative, opBranch(FlagZero, false))
	set(0x30, "BMI", ModeRelative, opBranch(FlagNegative, true))
	set(0x10, "BPL", ModeRelative, opBranch(FlagNegative, false))
	set(0xB0, "BCS", ModeRelative, opBranch(FlagCarry, true))
	set(0x90, "BCC", ModeRelative, opBranch(FlagCarry, false))
	set(0x50, "BVC", ModeRelative, opBranch(FlagOverflow, false))
	set(0x70, "BVS", ModeRelative, opBranch(FlagOverflow, true))
	set(0x80, "BRA", ModeRelative, opBRA)

	// Jumps/calls/returns.
	set(0x4C, "JMP", ModeAbsolute, opJMPAbsolute)
	set(0x6C, "JMP", ModeAbsolute, opJMPIndirect)
	set(0x7C, "JMP", ModeAbsoluteIndexedX, opJMPIndexedIndirect)
	set(0x5C, "JMP", ModeAbsoluteLong, opJMPLong)
	set(0x20, "JSR", ModeAbsolute, opJSR)
	set(0x22, "JSL", ModeAbsoluteLong, opJSL)
	set(0x60, "RTS", ModeImplied, opRTS)
	set(0x6B, "RTL", ModeImplied, opRTL)

	// Stack push/pull.
	set(0x48, "PHA", ModeImplied, opPHA)
	set(0xDA, "PHX", ModeImplied, opPHX)
	set(0x5A, "PHY", ModeImplied, opPHY)
	set(0x0B, "PHD", ModeImplied, opPHD)
	set(0x8B, "PHB", ModeImplied, opPHB)
	set(0x4B, "PHK", ModeImplied, opPHK)
	set(0x08, "PHP", ModeImplied, opPHP)
	set(0x68, "PLA", ModeImplied, opPLA)
	set(0xFA, "PLX", ModeImplied, opPLX)
	set(0x7A, "PLY", ModeImplied, opPLY)
	set(0x2B, "PLD", ModeImplied, opPLD)
	set(0xAB, "PLB", ModeImplied, opPLB)
	set(0x28, "PLP", ModeImplied, opPLP)

	// Mode/flag control.
	set(0xC2, "REP", ModeImmediate, opREP)
	set(0xE2, "SEP", ModeImmediate, opSEP)
	set(0x18, "CLC", ModeImplied, opCLC)
	set(0x38, "SEC", ModeImplied, opSEC)
	set(0xD8, "CLD", ModeImplied, opCLD)
	set(0xF8, "SED", ModeImplied, opSED)
	set(0x58, "CLI", ModeImplied, opCLI)
	set(0x78, "SEI", ModeImplied, opSEI)
	set(0xB8, "CLV", ModeImplied, opCLV)
	set(0xFB, "XCE", ModeImplied, opXCE)

	// Transfers.
	set(0xAA, "TAX", ModeImplied, opTAX)
	set(0xA8, "TAY", ModeImplied, opTAY)
	set(0x8A, "TXA", ModeImplied, opTXA)
	set(0x98, "TYA", ModeImplied, opTYA)
	set(0xBA, "TSX", ModeImplied, opTSX)
	set(0x9A, "TXS", ModeImplied, opTXS)
	set(0x9B, "TXY", ModeImplied, opTXY)
	set(0xBB, "TYX", ModeImplied, opTYX)
	set(0x5B, "TCD", ModeImplied, opTCD)
	set(0x7B, "TDC", ModeImplied, opTDC)
	set(0x1B, "TCS", ModeImplied, opTCS)
	set(0x3B, "TSC", ModeImplied, opTSC)

	set(0xEA, "NOP", ModeImplied, opNOP)

	return t
}
