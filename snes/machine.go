package snes

import "go.uber.org/zap"

// Machine wires a Bus, a CPU, and the ROM mapped onto that bus into the
// single cooperative, single-threaded run described by spec.md §5 — the
// bus is owned by the CPU one-to-one, and ROM mapping is a one-shot
// batch step that completes before the CPU ever runs. This plays the
// role the teacher's console.go plays for the NES (wiring cartridge,
// bus, and cpu together behind one constructor), trimmed to this
// core's single owned bus instead of a PPU/APU/controller-laden one.
type Machine struct {
	Bus *Bus
	CPU *CPU
	ROM *ROM

	log *zap.Logger
}

// NewMachine loads romPath, maps it onto a fresh bus, and returns a
// Machine with a CPU ready to run at its reset vector. Mapping happens
// here, before the CPU is ever stepped, matching the one-shot-then-
// handoff ordering spec.md §5 requires.
func NewMachine(romPath string, log *zap.Logger) (*Machine, error) {
	if log == nil {
		log = zap.NewNop()
	}

	rom, err := LoadROMFile(romPath, log)
	if err != nil {
		return nil, err
	}

	bus := NewBus(log)
	if err := rom.MapTo(bus, log); err != nil {
		return nil, err
	}

	cpu := NewCPU(bus, log)

	return &Machine{Bus: bus, CPU: cpu, ROM: rom, log: log}, nil
}

// Step advances the CPU by exactly one instruction.
func (m *Machine) Step() error {
	return m.CPU.Step()
}

// Run drives the CPU until it faults; the only termination spec.md §5
// allows this loop besides process exit.
func (m *Machine) Run() error {
	return m.CPU.Run()
}
