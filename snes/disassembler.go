package snes

import "fmt"

// operandLen reports how many bytes follow the opcode for mode, used by
// the disassembler to peek the right number of bytes without disturbing
// PC (handlers haven't run yet when Step calls this).
func operandLen(mode AddressingMode, memWide, idxWide bool, name string) int {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return 0
	case ModeImmediate:
		switch name {
		case "LDX", "LDY", "CPX", "CPY":
			if idxWide {
				return 2
			}
			return 1
		default:
			if memWide {
				return 2
			}
			return 1
		}
	case ModeAbsolute, ModeAbsoluteIndexedX, ModeAbsoluteIndexedY:
		return 2
	case ModeAbsoluteLong, ModeAbsoluteLongIndexedX:
		return 3
	default:
		return 1
	}
}

// addressingFormats mirrors the teacher's disasembler.go lookup table,
// extended for the 65C816's larger mode set.
var addressingFormats = map[AddressingMode]string{
	ModeImmediate:                     "#$%X",
	ModeDirect:                        "$%02X",
	ModeDirectIndexedX:                "$%02X,X",
	ModeDirectIndexedY:                "$%02X,Y",
	ModeAbsolute:                      "$%04X",
	ModeAbsoluteIndexedX:              "$%04X,X",
	ModeAbsoluteIndexedY:              "$%04X,Y",
	ModeAbsoluteLong:                  "$%06X",
	ModeAbsoluteLongIndexedX:          "$%06X,X",
	ModeDirectIndirect:                "($%02X)",
	ModeDirectIndirectLong:            "[$%02X]",
	ModeDirectIndexedIndirectX:        "($%02X,X)",
	ModeDirectIndirectIndexedY:        "($%02X),Y",
	ModeDirectIndirectIndexedLongY:    "[$%02X],Y",
	ModeStackRelative:                 "$%02X,S",
	ModeStackRelativeIndirectIndexedY: "($%02X,S),Y",
}

// DisassembleCurrent renders the instruction about to execute at the
// CPU's current PC, without side effects. Exported for outer tooling
// (the trace viewer) that wants a disassembled line ahead of stepping
// rather than via the SetTrace side-effect hook Step itself uses.
func (c *CPU) DisassembleCurrent() string {
	opcode := c.bus.Read8(c.PB, c.PC)
	return c.disassembleCurrent(opcode, c.instructions[opcode])
}

// disassembleCurrent renders the instruction about to execute as a
// single trace line, in the teacher's column-oriented style (address,
// raw bytes, mnemonic, operand, then the register snapshot) rather than
// a structured log record — SetTrace exists precisely so a human can
// read a scrolling instruction trace.
func (c *CPU) disassembleCurrent(opcode byte, inst Instruction) string {
	n := operandLen(inst.Mode, c.memoryWide(), c.indexWide(), inst.Name)

	raw := fmt.Sprintf("%02X", opcode)
	for i := 0; i < n; i++ {
		raw += fmt.Sprintf(" %02X", c.bus.Read8(c.PB, c.PC+1+uint16(i)))
	}

	operand := ""
	switch inst.Mode {
	case ModeAccumulator:
		operand = "A"
	case ModeImplied:
		operand = ""
	case ModeRelative:
		offset := int8(c.bus.Read8(c.PB, c.PC+1))
		target := c.PC + 1 + uint16(int16(offset))
		operand = fmt.Sprintf("$%04X", target)
	default:
		if format, ok := addressingFormats[inst.Mode]; ok {
			var arg uint32
			switch n {
			case 1:
				arg = uint32(c.bus.Read8(c.PB, c.PC+1))
			case 2:
				arg = uint32(c.bus.Read16(c.PB, c.PC+1))
			case 3:
				arg = uint32(c.bus.Read16(c.PB, c.PC+1)) | uint32(c.bus.Read8(c.PB, c.PC+3))<<16
			}
			operand = fmt.Sprintf(format, arg)
		}
	}

	return fmt.Sprintf("%02X:%04X  %-9s %-4s %-10s A:%04X X:%04X Y:%04X D:%04X DB:%02X P:%02X SP:%04X",
		c.PB, c.PC, raw, inst.Name, operand,
		c.A.Uint16(), c.X, c.Y, c.D, c.DB, c.P, c.SP)
}
