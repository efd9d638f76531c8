package snes

import "testing"

func newTestCPU() *CPU {
	bus := NewBus(nil)
	return NewCPU(bus, nil)
}

// TestFetchAbsoluteCrossesBank pins the §8 absolute-fetch scenario: a
// wide fetch whose high byte falls past 0xFFFF carries into the next
// bank rather than wrapping within the current one.
func TestFetchAbsoluteCrossesBank(t *testing.T) {
	c := newTestCPU()
	c.bus.Write8(0x00, 0x0100, 0xFF)
	c.bus.Write8(0x00, 0x0101, 0xFF)
	c.bus.Write8(0x12, 0xFFFF, 0x01)
	c.bus.Write8(0x13, 0x0000, 0x02)

	c.DB = 0x12
	c.SetPC(0x00, 0x00FF) // fetchWord reads the operand bytes at 0x100/0x101

	got := c.fetch(ModeAbsolute, true)
	if got != 0x0201 {
		t.Errorf("fetch(Absolute, wide) = 0x%04X, want 0x0201", got)
	}
}

// TestADCBinary pins §8 scenario 2 (native, 16-bit accumulator).
func TestADCBinary(t *testing.T) {
	c := newTestCPU()
	c.Emulation = false
	c.SetFlag(FlagMemoryWidth, false)
	c.SetFlag(FlagCarry, true)
	c.A.Set(0x0058)

	c.bus.Write8(0x00, 0x0001, 0x46)
	c.bus.Write8(0x00, 0x0002, 0x00)
	c.SetPC(0x00, 0x0000)
	c.lastInstruction = Instruction{Name: "ADC", Mode: ModeImmediate}

	opADC(c)

	if c.A.Uint16() != 0x009F {
		t.Fatalf("A = 0x%04X, want 0x009F", c.A.Uint16())
	}
	if c.GetFlag(FlagCarry) || c.GetFlag(FlagOverflow) || c.GetFlag(FlagNegative) || c.GetFlag(FlagZero) {
		t.Errorf("expected C,V,N,Z all clear, P=0x%02X", c.P)
	}
}

// TestADCDecimalEmulation pins §8 scenario 3.
func TestADCDecimalEmulation(t *testing.T) {
	c := newTestCPU()
	c.Emulation = true
	c.SetFlag(FlagDecimal, true)
	c.SetFlag(FlagCarry, true)
	c.A.Set(0x0058)

	c.bus.Write8(0x00, 0x0001, 0x46)
	c.SetPC(0x00, 0x0000)
	c.lastInstruction = Instruction{Name: "ADC", Mode: ModeImmediate}

	opADC(c)

	if c.A.Lo() != 0x05 {
		t.Fatalf("A low byte = 0x%02X, want 0x05", c.A.Lo())
	}
	if !c.GetFlag(FlagCarry) {
		t.Errorf("expected C set")
	}
}

// TestSBCDecimalEmulation pins §8 scenario 4.
func TestSBCDecimalEmulation(t *testing.T) {
	c := newTestCPU()
	c.Emulation = true
	c.SetFlag(FlagDecimal, true)
	c.SetFlag(FlagCarry, true)
	c.A.Set(0x0046)

	c.bus.Write8(0x00, 0x0001, 0x12)
	c.SetPC(0x00, 0x0000)
	c.lastInstruction = Instruction{Name: "SBC", Mode: ModeImmediate}

	opSBC(c)

	if c.A.Lo() != 0x34 {
		t.Fatalf("A low byte = 0x%02X, want 0x34", c.A.Lo())
	}
	if !c.GetFlag(FlagCarry) {
		t.Errorf("expected C to stay set")
	}
}

// TestSBCDecimalNativeWide pins §8 scenario 5.
func TestSBCDecimalNativeWide(t *testing.T) {
	c := newTestCPU()
	c.Emulation = false
	c.SetFlag(FlagMemoryWidth, false)
	c.SetFlag(FlagDecimal, true)
	c.SetFlag(FlagCarry, true)
	c.A.Set(0x0001)

	c.bus.Write16(0x00, 0x0001, 0x2003)
	c.SetPC(0x00, 0x0000)
	c.lastInstruction = Instruction{Name: "SBC", Mode: ModeImmediate}

	opSBC(c)

	if c.A.Uint16() != 0x7998 {
		t.Fatalf("A = 0x%04X, want 0x7998", c.A.Uint16())
	}
	if !c.GetFlag(FlagDecimal) {
		t.Errorf("expected D to stay set")
	}
	if !c.GetFlag(FlagOverflow) {
		t.Errorf("expected V set")
	}
}

// TestBranchTakenBackward pins §8 scenario 6.
func TestBranchTakenBackward(t *testing.T) {
	c := newTestCPU()
	c.SetFlag(FlagZero, true)
	c.bus.Write8(0x00, 0x8010, 0xF0) // BEQ
	c.bus.Write8(0x00, 0x8011, 0xFA)
	c.SetPC(0x00, 0x8010)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}

	if c.PC != 0x800B {
		t.Errorf("PC = 0x%04X, want 0x800B", c.PC)
	}
}

// TestPCRolloverWithinBank exercises the invariant that PC wraps
// 0xFFFF to 0x0000 without incrementing PB.
func TestPCRolloverWithinBank(t *testing.T) {
	c := newTestCPU()
	c.bus.Write8(0x00, 0xFFFF, 0xEA) // NOP
	c.SetPC(0x00, 0xFFFF)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x0000 {
		t.Errorf("PC = 0x%04X, want 0x0000", c.PC)
	}
	if c.PB != 0x00 {
		t.Errorf("PB = 0x%02X, want unchanged 0x00", c.PB)
	}
}

// TestXCEInvolution exercises XCE applied twice restoring (E, C).
func TestXCEInvolution(t *testing.T) {
	c := newTestCPU()
	c.Emulation = true
	c.SetFlag(FlagCarry, false)

	wantE, wantC := c.Emulation, c.GetFlag(FlagCarry)

	opXCE(c)
	opXCE(c)

	if c.Emulation != wantE || c.GetFlag(FlagCarry) != wantC {
		t.Errorf("XCE twice: E=%v C=%v, want E=%v C=%v", c.Emulation, c.GetFlag(FlagCarry), wantE, wantC)
	}
}

// TestPushPullRoundTrip exercises PHA/PLA, PHX/PLX, PHY/PLY restoring
// both the registers and SP, in native 16-bit mode so the full
// register width round-trips.
func TestPushPullRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.Emulation = false
	c.SetFlag(FlagMemoryWidth, false)
	c.SetFlag(FlagIndexWidth, false)

	c.A.Set(0x1234)
	c.X = 0x5678
	c.Y = 0x9ABC
	startSP := c.SP

	opPHA(c)
	opPHX(c)
	opPHY(c)

	c.A.Set(0)
	c.X = 0
	c.Y = 0

	opPLY(c)
	opPLX(c)
	opPLA(c)

	if c.SP != startSP {
		t.Errorf("SP = 0x%04X, want 0x%04X", c.SP, startSP)
	}
	if c.A.Uint16() != 0x1234 {
		t.Errorf("A = 0x%04X, want 0x1234", c.A.Uint16())
	}
	if c.X != 0x5678 {
		t.Errorf("X = 0x%04X, want 0x5678", c.X)
	}
	if c.Y != 0x9ABC {
		t.Errorf("Y = 0x%04X, want 0x9ABC", c.Y)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.bus.Write8(0x00, 0x8000, 0x20) // JSR
	c.bus.Write16(0x00, 0x8001, 0x9000)
	c.bus.Write8(0x00, 0x9000, 0x60) // RTS
	c.SetPC(0x00, 0x8000)

	if err := c.Step(); err != nil {
		t.Fatalf("JSR step: %v", err)
	}
	if c.PC != 0x9000 {
		t.Fatalf("after JSR, PC = 0x%04X, want 0x9000", c.PC)
	}

	if err := c.Step(); err != nil {
		t.Fatalf("RTS step: %v", err)
	}
	if c.PC != 0x8003 {
		t.Errorf("after RTS, PC = 0x%04X, want 0x8003", c.PC)
	}
}

func TestUnrecognisedOpcode(t *testing.T) {
	c := newTestCPU()
	c.bus.Write8(0x00, 0x8000, 0x02) // COP, unimplemented
	c.SetPC(0x00, 0x8000)

	err := c.Step()
	if err == nil {
		t.Fatal("expected an error for an unrecognised opcode")
	}
	if _, ok := err.(*UnrecognisedOpcodeError); !ok {
		t.Errorf("err = %T, want *UnrecognisedOpcodeError", err)
	}
}
