package snes

// takeBranch applies offset (a signed two's-complement byte already
// consumed by the caller via fetchByte, so PC currently holds that
// byte's own address) as PC += offset, then backs PC off by one so
// that Step's trailing PC++ lands exactly on the branch target,
// per spec.md §4.5/§8 scenario 6.
func (c *CPU) takeBranch(offset byte) {
	delta := int16(int8(offset))
	c.PC = c.PC + uint16(delta) - 1
}

// opBranch returns a Handler for the flag-conditioned branches (BNE,
// BEQ, BMI, BPL, BCS, BCC, BVC, BVS): taken when the named flag equals
// wantSet.
func opBranch(flag Flag, wantSet bool) Handler {
	return func(c *CPU) {
		offset := c.fetchByte()
		if c.GetFlag(flag) != wantSet {
			return
		}
		c.takeBranch(offset)
	}
}

// opBRA branches unconditionally.
func opBRA(c *CPU) {
	offset := c.fetchByte()
	c.takeBranch(offset)
}

// jumpTo sets PC one short of target so Step's trailing PC++ lands
// exactly on it, the same compensation branches use.
func (c *CPU) jumpTo(target uint16) {
	c.PC = target - 1
}

// opJMPAbsolute sets PC to a 16-bit absolute target within PB.
func opJMPAbsolute(c *CPU) {
	c.jumpTo(c.fetchWord())
}

// opJMPIndirect resolves "(addr)": the pointer is read from the
// instruction stream, the target from bank 0 at that pointer.
func opJMPIndirect(c *CPU) {
	ptr := c.fetchWord()
	c.jumpTo(c.bus.Read16(0, ptr))
}

// opJMPIndexedIndirect resolves "(addr,X)": the pointer (before
// indexing) is read from the instruction stream, X is added, and the
// target is read from the current program bank at that address.
func opJMPIndexedIndirect(c *CPU) {
	ptr := c.fetchWord() + c.X
	c.jumpTo(c.bus.Read16(c.PB, ptr))
}

// opJMPLong sets PB and PC to a 24-bit long target encoded as the
// instruction's own 3-byte operand.
func opJMPLong(c *CPU) {
	addr := c.fetchWord()
	bank := c.fetchByte()
	c.PB = bank
	c.jumpTo(addr)
}

// opJSR pushes the address of the last byte of the JSR instruction
// (the high operand byte, since fetchWord leaves PC there), then jumps
// to the resolved target, per spec.md §4.5.
func opJSR(c *CPU) {
	target := c.fetchWord()
	c.pushWord(c.PC)
	c.jumpTo(target)
}

// opJSL additionally pushes the current program bank before the
// return address, and sets PB to the target's bank. Both JSR and JSL
// compensate the jump target the same way (spec.md §9's Open
// Question: "compensate at push or compensate at target — pick one");
// this core always compensates at the target, so the two mnemonics
// share jumpTo/pushWord plumbing instead of diverging as they did in
// the original source.
func opJSL(c *CPU) {
	addr := c.fetchWord()
	bank := c.fetchByte()

	c.pushByte(c.PB)
	c.pushWord(c.PC)

	c.PB = bank
	c.jumpTo(addr)
}

// opRTS pops the return address pushed by JSR; the run loop's trailing
// PC++ advances past it to the instruction after the call.
func opRTS(c *CPU) {
	c.PC = c.pullWord()
}

// opRTL additionally pops the program bank JSL pushed.
func opRTL(c *CPU) {
	c.PC = c.pullWord()
	c.PB = c.pullByte()
}
