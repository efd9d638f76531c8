package snes

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// resetPC is the program counter's initial value, the reset-vector
// convention spec.md §3 fixes for this core (a real 65816 reads its
// reset vector from the bus; this core starts execution directly at
// the address a cartridge's own reset code would normally be mapped
// to).
const resetPC = 0x8000

// resetSP is the stack pointer's initial value, per spec.md §3.
const resetSP = 0x01FF

// stackPageMask hardwires the stack to bank-0 page 1 while the CPU is
// in emulation mode, resolving spec.md §9's stack-addressing Open
// Question in favour of its own recommendation: "in emulation mode the
// stack page is hardwired to 0x01; in native mode SP is a plain 16-bit
// value." The original source used raw SP with no base-page add at
// all; this deviates from it deliberately.
const stackPageMask = 0x0100

// UnrecognisedOpcodeError is logged at Error level and returned by Step
// (which ends Run) when dispatch encounters a byte with no handler, per
// spec.md §4.5's "unrecognised opcode is a fatal, unrecoverable core
// condition."
type UnrecognisedOpcodeError struct {
	Opcode byte
	Bank   byte
	PC     uint16
}

func (e *UnrecognisedOpcodeError) Error() string {
	return fmt.Sprintf("snes: unrecognised opcode 0x%02X at %02X:%04X", e.Opcode, e.Bank, e.PC)
}

// CPU is the 65C816 register file and dispatch loop described in
// spec.md §3/§4.5/§4.6. Registers are exported so a debugger or the
// bubbletea trace viewer can snapshot them directly, the same shape
// the teacher's cpu_test.go (pre-refactor) exercised through an
// exported API.
type CPU struct {
	A Word
	X uint16
	Y uint16
	D uint16
	P byte

	PB byte
	DB byte
	SP uint16
	PC uint16

	Emulation bool

	bus *Bus
	log *zap.Logger

	// trace, when non-nil, receives one disassembled line per executed
	// instruction — the same per-access side-effect hook shape as the
	// teacher's `debug io.Writer` threaded through cpu.execute.
	trace io.Writer

	instructions [256]Instruction

	// lastInstruction is the metadata for the opcode currently being
	// executed, stashed by Step so handlers needing their own
	// addressing mode (almost all of them) can read it back via
	// currentInstruction without a redundant bus read.
	lastInstruction Instruction
}

// NewCPU returns a CPU wired to bus, with all registers at their
// spec.md §3 reset values.
func NewCPU(bus *Bus, log *zap.Logger) *CPU {
	if log == nil {
		log = zap.NewNop()
	}
	c := &CPU{
		bus:       bus,
		log:       log,
		SP:        resetSP,
		PC:        resetPC,
		Emulation: true,
	}
	c.instructions = buildInstructionTable()
	return c
}

// SetTrace installs (or, passed nil, removes) the per-instruction
// disassembly sink.
func (c *CPU) SetTrace(w io.Writer) { c.trace = w }

// SetPC overrides the program counter and bank, useful for tests that
// want to drive a handler directly without going through ROM mapping.
func (c *CPU) SetPC(bank byte, pc uint16) {
	c.PB = bank
	c.PC = pc
}

// fatalf logs a structured error and panics with the formatted
// message string. Step recovers this into
// an error return, matching spec.md §7's "execution faults are fatal
// and terminate the process with a diagnostic" while still letting a
// host program (or a test) observe the failure instead of crashing the
// whole binary outright.
func (c *CPU) fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.log.Error("cpu fault", zap.String("detail", msg), zap.Uint8("pb", c.PB), zap.Uint16("pc", c.PC))
	panic(msg)
}

// stackAddr returns the intra-bank address the next push/pull touches,
// applying the emulation-mode page-1 hardwire described above SP's
// const block.
func (c *CPU) stackAddr() uint16 {
	if c.Emulation {
		return stackPageMask | (c.SP & 0xFF)
	}
	return c.SP
}

// pushByte writes v to the stack and decrements SP, masking back into
// page 1 in emulation mode so SP never walks out of it.
func (c *CPU) pushByte(v byte) {
	c.bus.Write8(0, c.stackAddr(), v)
	c.SP--
	if c.Emulation {
		c.SP = stackPageMask | (c.SP & 0xFF)
	}
}

// pullByte increments SP (masking into page 1 in emulation mode) and
// reads the byte now under it.
func (c *CPU) pullByte() byte {
	c.SP++
	if c.Emulation {
		c.SP = stackPageMask | (c.SP & 0xFF)
	}
	return c.bus.Read8(0, c.stackAddr())
}

// pushWord pushes high byte then low byte, per spec.md §4.5's push
// ordering for 16-bit registers.
func (c *CPU) pushWord(v uint16) {
	c.pushByte(byte(v >> 8))
	c.pushByte(byte(v))
}

// pullWord pulls low byte then high byte, the mirror of pushWord.
func (c *CPU) pullWord() uint16 {
	lo := c.pullByte()
	hi := c.pullByte()
	return uint16(lo) | uint16(hi)<<8
}

// Step fetches, decodes and executes exactly one instruction, then
// advances PC by one more (the run loop's final increment from
// spec.md §4.6). An opcode with no handler is returned as an
// *UnrecognisedOpcodeError; a panic raised by fatalf is recovered into
// an error return, so callers can stop cleanly instead of crashing.
func (c *CPU) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	opcode := c.bus.Read8(c.PB, c.PC)
	inst := c.instructions[opcode]
	if inst.Handler == nil {
		c.log.Error("unrecognised opcode", zap.Uint8("opcode", opcode), zap.Uint8("pb", c.PB), zap.Uint16("pc", c.PC))
		return &UnrecognisedOpcodeError{Opcode: opcode, Bank: c.PB, PC: c.PC}
	}
	c.lastInstruction = inst

	if c.trace != nil {
		fmt.Fprintln(c.trace, c.disassembleCurrent(opcode, inst))
	}
	if ce := c.log.Check(zap.DebugLevel, "step"); ce != nil {
		ce.Write(
			zap.String("mnemonic", inst.Name),
			zap.Uint8("pb", c.PB),
			zap.Uint16("pc", c.PC),
			zap.Uint16("a", c.A.Uint16()),
			zap.Uint16("x", c.X),
			zap.Uint16("y", c.Y),
			zap.Uint8("p", c.P),
		)
	}

	inst.Handler(c)

	c.PC++
	return nil
}

// Run drives Step in an infinite loop until it returns an error — the
// only termination spec.md §4.6 allows besides process exit.
func (c *CPU) Run() error {
	for {
		if err := c.Step(); err != nil {
			return err
		}
	}
}
