package snes

// Flag identifies a single bit of the processor-status register P.
type Flag byte

// Bit layout of P, per spec.md §3.
const (
	FlagCarry      Flag = 1 << 0
	FlagZero       Flag = 1 << 1
	FlagIRQDisable Flag = 1 << 2
	FlagDecimal    Flag = 1 << 3
	// FlagIndexWidth is the X bit in native mode (1 = 8-bit index
	// registers) and aliases the 6502 break flag in emulation mode.
	FlagIndexWidth Flag = 1 << 4
	// FlagMemoryWidth is the M bit (1 = 8-bit accumulator/memory).
	FlagMemoryWidth Flag = 1 << 5
	FlagOverflow    Flag = 1 << 6
	FlagNegative    Flag = 1 << 7

	// widthMask is ANDed into the REP/SEP operand while the CPU is in
	// emulation mode (spec.md §3: "mask anded with 0xCF" — clears bits
	// 4 and 5 out of the supplied mask, so X and M are left untouched).
	widthMask byte = 0xCF
)

// GetFlag reports whether f is set in P.
func (c *CPU) GetFlag(f Flag) bool { return c.P&byte(f) != 0 }

// SetFlag sets or clears f in P.
func (c *CPU) SetFlag(f Flag, v bool) {
	if v {
		c.P |= byte(f)
	} else {
		c.P &^= byte(f)
	}
}

// memoryWide reports whether the accumulator/memory operand width is
// currently 16-bit (M flag clear). Emulation mode forces M set, hence
// always narrow, matching spec.md's state-machine description.
func (c *CPU) memoryWide() bool {
	return !c.Emulation && !c.GetFlag(FlagMemoryWidth)
}

// indexWide reports whether the index-register operand width is
// currently 16-bit (X flag clear).
func (c *CPU) indexWide() bool {
	return !c.Emulation && !c.GetFlag(FlagIndexWidth)
}

// flagNZ updates N and Z from value, masked to the width implied by
// wide (16-bit when true, 8-bit otherwise), per spec.md §4.1.
func (c *CPU) flagNZ(value uint32, wide bool) {
	if wide {
		c.SetFlag(FlagZero, value&0xFFFF == 0)
		c.SetFlag(FlagNegative, value&0x8000 != 0)
		return
	}
	c.SetFlag(FlagZero, value&0xFF == 0)
	c.SetFlag(FlagNegative, value&0x80 != 0)
}

// checkOverflow derives C and V from a signed addition/subtraction
// temporary, using the final-carry/penultimate-carry method: the final
// carry is the overflow past the top bit of the operand width, the
// penultimate carry is the overflow past the bit just below it, and V
// is their XOR. A negative temporary clears C (a borrow occurred).
// Grounded in the original source's check_overflow, generalised here
// over the 8/16-bit width rather than a single fixed width.
func (c *CPU) checkOverflow(sum int64, wide bool) {
	mask := int64(0xFF)
	half := int64(0x7F)
	if wide {
		mask = 0xFFFF
		half = 0x7FFF
	}

	finalCarry := sum > mask
	penultimateCarry := sum > half

	if sum < 0 {
		c.SetFlag(FlagCarry, false)
		finalCarry = false
	} else {
		c.SetFlag(FlagCarry, finalCarry)
	}

	c.SetFlag(FlagOverflow, finalCarry != penultimateCarry)
}
