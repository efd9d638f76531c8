package snes

// AddressingMode enumerates the closed set of ~15 addressing modes
// spec.md §4.4 requires, plus Implied/Accumulator/Relative which carry
// no bus-resolved operand of their own. Modelled as a variant
// enumeration rather than a type hierarchy, per spec.md §9's design
// note.
type AddressingMode int

const (
	ModeImplied AddressingMode = iota
	ModeAccumulator
	ModeImmediate
	ModeRelative
	ModeDirect
	ModeDirectIndexedX
	ModeDirectIndexedY
	ModeAbsolute
	ModeAbsoluteIndexedX
	ModeAbsoluteIndexedY
	ModeAbsoluteLong
	ModeAbsoluteLongIndexedX
	ModeDirectIndirect
	ModeDirectIndirectLong
	ModeDirectIndexedIndirectX
	ModeDirectIndirectIndexedY
	ModeDirectIndirectIndexedLongY
	ModeStackRelative
	ModeStackRelativeIndirectIndexedY
)

// fetchByte advances PC past the byte it is about to read, then reads
// it — PC is incremented BEFORE the read, not after, so that on entry
// to a handler (PC still pointing at the just-dispatched opcode) the
// first fetchByte call lands on the first operand byte rather than
// re-reading the opcode. PC wraps 0xFFFF to 0x0000 without touching PB,
// per spec.md §4.6's rollover rule.
func (c *CPU) fetchByte() byte {
	c.incPC()
	return c.bus.Read8(c.PB, c.PC)
}

// fetchWord reads a little-endian two-byte operand, low byte first.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(lo) | uint16(hi)<<8
}

// incPC advances PC by one with the same rollover the run loop applies
// after an instruction: wraps within the bank, never touches PB.
func (c *CPU) incPC() {
	c.PC++
}

// effectiveAddress resolves mode to a (bank, address) pair, consuming
// whatever operand bytes that mode's opcode encoding carries. Table
// taken verbatim from spec.md §4.4.
func (c *CPU) effectiveAddress(mode AddressingMode) (bank byte, addr uint16) {
	switch mode {
	case ModeDirect:
		off := c.fetchByte()
		return 0, c.D + uint16(off)

	case ModeDirectIndexedX:
		off := c.fetchByte()
		return 0, c.D + c.X + uint16(off)

	case ModeDirectIndexedY:
		off := c.fetchByte()
		return 0, c.D + c.Y + uint16(off)

	case ModeAbsolute:
		return c.DB, c.fetchWord()

	case ModeAbsoluteIndexedX:
		return c.DB, c.fetchWord() + c.X

	case ModeAbsoluteIndexedY:
		return c.DB, c.fetchWord() + c.Y

	case ModeAbsoluteLong:
		lo := c.fetchWord()
		hi := c.fetchByte()
		return hi, lo

	case ModeAbsoluteLongIndexedX:
		lo := c.fetchWord()
		hi := c.fetchByte()
		return hi, lo + c.X

	case ModeDirectIndirect:
		off := c.fetchByte()
		ptr := c.D + uint16(off)
		return c.DB, c.bus.Read16(0, ptr)

	case ModeDirectIndirectLong:
		off := c.fetchByte()
		ptr := c.D + uint16(off)
		bank := c.bus.Read8(0, ptr+2)
		return bank, c.bus.Read16(0, ptr)

	case ModeDirectIndexedIndirectX:
		off := c.fetchByte()
		ptr := c.D + c.X + uint16(off)
		return c.DB, c.bus.Read16(0, ptr)

	case ModeDirectIndirectIndexedY:
		off := c.fetchByte()
		ptr := c.D + uint16(off)
		base := c.bus.Read16(0, ptr)
		return c.DB, base + c.Y

	case ModeDirectIndirectIndexedLongY:
		off := c.fetchByte()
		ptr := c.D + uint16(off)
		bank := c.bus.Read8(0, ptr+2)
		base := c.bus.Read16(0, ptr)
		return bank, base + c.Y

	case ModeStackRelative:
		off := c.fetchByte()
		return 0, c.SP + uint16(off)

	case ModeStackRelativeIndirectIndexedY:
		off := c.fetchByte()
		ptr := c.SP + uint16(off)
		base := c.bus.Read16(0, ptr)
		return c.DB, base + c.Y

	default:
		c.fatalf("effectiveAddress: mode %d has no bus-resolved operand", mode)
		return 0, 0
	}
}

// fetch produces the operand value for mode, at the given width, per
// spec.md §4.4. Immediate reads its bytes directly out of the
// instruction stream rather than through effectiveAddress, since an
// immediate operand is not a memory reference.
func (c *CPU) fetch(mode AddressingMode, wide bool) uint32 {
	if mode == ModeImmediate {
		if wide {
			return uint32(c.fetchWord())
		}
		return uint32(c.fetchByte())
	}

	bank, addr := c.effectiveAddress(mode)
	if wide {
		return uint32(c.bus.Read16(bank, addr))
	}
	return uint32(c.bus.Read8(bank, addr))
}

// store mirrors fetch: it resolves mode's effective address and writes
// value there, at the given width. Immediate is not a valid store
// target.
func (c *CPU) store(mode AddressingMode, value uint32, wide bool) {
	bank, addr := c.effectiveAddress(mode)
	if wide {
		c.bus.Write16(bank, addr, uint16(value))
		return
	}
	c.bus.Write8(bank, addr, byte(value))
}
