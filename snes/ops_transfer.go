package snes

// opLDA loads the fetched operand into A at the current memory width,
// updating N and Z, per spec.md §4.5.
func opLDA(c *CPU) {
	wide := c.memoryWide()
	inst := c.currentInstruction()
	v := c.fetch(inst.Mode, wide)
	if wide {
		c.A.Set(uint16(v))
	} else {
		c.A.SetLo(byte(v))
	}
	c.flagNZ(v, wide)
}

// opLDX loads X at the current index width.
func opLDX(c *CPU) {
	wide := c.indexWide()
	inst := c.currentInstruction()
	v := c.fetch(inst.Mode, wide)
	if wide {
		c.X = uint16(v)
	} else {
		c.X = uint16(v & 0xFF)
	}
	c.flagNZ(v, wide)
}

// opLDY loads Y at the current index width.
func opLDY(c *CPU) {
	wide := c.indexWide()
	inst := c.currentInstruction()
	v := c.fetch(inst.Mode, wide)
	if wide {
		c.Y = uint16(v)
	} else {
		c.Y = uint16(v & 0xFF)
	}
	c.flagNZ(v, wide)
}

// opSTA stores A to the resolved address; no flag change, per
// spec.md §4.5.
func opSTA(c *CPU) {
	wide := c.memoryWide()
	c.store(c.currentInstruction().Mode, uint32(c.A.Uint16()), wide)
}

// opSTX stores X.
func opSTX(c *CPU) {
	wide := c.indexWide()
	c.store(c.currentInstruction().Mode, uint32(c.X), wide)
}

// opSTY stores Y.
func opSTY(c *CPU) {
	wide := c.indexWide()
	c.store(c.currentInstruction().Mode, uint32(c.Y), wide)
}

// opSTZ stores a literal zero, at the current memory width.
func opSTZ(c *CPU) {
	wide := c.memoryWide()
	c.store(c.currentInstruction().Mode, 0, wide)
}

// currentInstruction returns the metadata for the opcode being
// executed. Handlers that need their own addressing mode call this
// rather than taking it as a parameter, keeping the Handler signature
// uniform across every mnemonic including those (branches, transfers)
// with no operand.
func (c *CPU) currentInstruction() Instruction {
	// Step has already read the opcode byte and looked up its
	// Instruction before Handler runs; it keeps that Instruction around
	// so this lookup needs no second bus read; see cpu.go's Step.
	return c.lastInstruction
}

// Copy/transfer instructions: "copy register, update N/Z" at the
// current width, per spec.md §4.5.

func opTAX(c *CPU) {
	wide := c.indexWide()
	v := uint32(c.A.Uint16())
	if wide {
		c.X = uint16(v)
	} else {
		c.X = uint16(v & 0xFF)
	}
	c.flagNZ(v, wide)
}

func opTAY(c *CPU) {
	wide := c.indexWide()
	v := uint32(c.A.Uint16())
	if wide {
		c.Y = uint16(v)
	} else {
		c.Y = uint16(v & 0xFF)
	}
	c.flagNZ(v, wide)
}

func opTXA(c *CPU) {
	wide := c.memoryWide()
	v := uint32(c.X)
	if wide {
		c.A.Set(uint16(v))
	} else {
		c.A.SetLo(byte(v))
	}
	c.flagNZ(v, wide)
}

func opTYA(c *CPU) {
	wide := c.memoryWide()
	v := uint32(c.Y)
	if wide {
		c.A.Set(uint16(v))
	} else {
		c.A.SetLo(byte(v))
	}
	c.flagNZ(v, wide)
}

func opTSX(c *CPU) {
	wide := c.indexWide()
	v := uint32(c.SP)
	if wide {
		c.X = uint16(v)
	} else {
		c.X = uint16(v & 0xFF)
	}
	c.flagNZ(v, wide)
}

// opTXS sets SP <- X with no flag change; in emulation mode the page-1
// hardwire applies on the next push/pull, not here, per spec.md §4.5.
func opTXS(c *CPU) {
	c.SP = c.X
}

func opTXY(c *CPU) {
	wide := c.indexWide()
	v := uint32(c.X)
	if wide {
		c.Y = uint16(v)
	} else {
		c.Y = uint16(v & 0xFF)
	}
	c.flagNZ(v, wide)
}

func opTYX(c *CPU) {
	wide := c.indexWide()
	v := uint32(c.Y)
	if wide {
		c.X = uint16(v)
	} else {
		c.X = uint16(v & 0xFF)
	}
	c.flagNZ(v, wide)
}

// opTCD copies the full 16-bit accumulator into D, updating N/Z from
// the 16-bit result regardless of the M flag (D has no 8-bit mode).
func opTCD(c *CPU) {
	c.D = c.A.Uint16()
	c.flagNZ(uint32(c.D), true)
}

func opTDC(c *CPU) {
	c.A.Set(c.D)
	c.flagNZ(uint32(c.D), true)
}

// opTCS copies A into SP with no flag change.
func opTCS(c *CPU) {
	c.SP = c.A.Uint16()
}

func opTSC(c *CPU) {
	c.A.Set(c.SP)
	c.flagNZ(uint32(c.SP), true)
}

// Stack push/pull. 16-bit registers push high byte then low byte (and
// pull the mirror order); 8-bit registers push/pull a single byte.

func opPHA(c *CPU) {
	if c.memoryWide() {
		c.pushWord(c.A.Uint16())
	} else {
		c.pushByte(c.A.Lo())
	}
}

func opPLA(c *CPU) {
	wide := c.memoryWide()
	if wide {
		c.A.Set(c.pullWord())
	} else {
		c.A.SetLo(c.pullByte())
	}
	c.flagNZ(uint32(c.A.Uint16()), wide)
}

func opPHX(c *CPU) {
	if c.indexWide() {
		c.pushWord(c.X)
	} else {
		c.pushByte(byte(c.X))
	}
}

func opPLX(c *CPU) {
	wide := c.indexWide()
	if wide {
		c.X = c.pullWord()
	} else {
		c.X = uint16(c.pullByte())
	}
	c.flagNZ(uint32(c.X), wide)
}

func opPHY(c *CPU) {
	if c.indexWide() {
		c.pushWord(c.Y)
	} else {
		c.pushByte(byte(c.Y))
	}
}

func opPLY(c *CPU) {
	wide := c.indexWide()
	if wide {
		c.Y = c.pullWord()
	} else {
		c.Y = uint16(c.pullByte())
	}
	c.flagNZ(uint32(c.Y), wide)
}

func opPHD(c *CPU) { c.pushWord(c.D) }
func opPLD(c *CPU) {
	c.D = c.pullWord()
	c.flagNZ(uint32(c.D), true)
}

func opPHB(c *CPU) { c.pushByte(c.DB) }
func opPLB(c *CPU) {
	c.DB = c.pullByte()
	c.flagNZ(uint32(c.DB), false)
}

func opPHK(c *CPU) { c.pushByte(c.PB) }

func opPHP(c *CPU) { c.pushByte(c.P) }
func opPLP(c *CPU) { c.P = c.pullByte() }

// opREP clears the P bits set in the fetched mask. In emulation mode
// the mask is pre-anded with 0xCF so M and X cannot be touched,
// per spec.md §4.5/§3.
func opREP(c *CPU) {
	mask := byte(c.fetch(ModeImmediate, false))
	if c.Emulation {
		mask &= widthMask
	}
	c.P &^= mask
}

// opSEP sets the P bits in the fetched mask, same emulation-mode
// masking as REP.
func opSEP(c *CPU) {
	mask := byte(c.fetch(ModeImmediate, false))
	if c.Emulation {
		mask &= widthMask
	}
	c.P |= mask
}

func opCLC(c *CPU) { c.SetFlag(FlagCarry, false) }
func opSEC(c *CPU) { c.SetFlag(FlagCarry, true) }
func opCLD(c *CPU) { c.SetFlag(FlagDecimal, false) }
func opSED(c *CPU) { c.SetFlag(FlagDecimal, true) }
func opCLI(c *CPU) { c.SetFlag(FlagIRQDisable, false) }
func opSEI(c *CPU) { c.SetFlag(FlagIRQDisable, true) }
func opCLV(c *CPU) { c.SetFlag(FlagOverflow, false) }

// opXCE swaps C and the emulation flag. Entering native mode sets M
// and X (8-bit widths, since the flags default to those values when
// switching away from the fixed-width emulation mode is first safe to
// observe); entering emulation mode forces both widths to 8-bit too,
// per spec.md §4.5 — the net effect the original source implements is
// that both transitions force M and X set, differing only in which
// direction emulation itself moved.
func opXCE(c *CPU) {
	carry := c.GetFlag(FlagCarry)
	wasEmulation := c.Emulation
	c.SetFlag(FlagCarry, wasEmulation)
	c.Emulation = carry

	c.SetFlag(FlagMemoryWidth, true)
	c.SetFlag(FlagIndexWidth, true)
}

func opNOP(c *CPU) {}
