package snes

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestROM(t *testing.T, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.sfc")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing test rom: %v", err)
	}
	return path
}

func TestNewMachineRunsUntilFault(t *testing.T) {
	data := buildHeader()
	// 0xEA NOP at the reset vector, 0x02 (unimplemented COP) right after —
	// the mapper copies data[0] to bus (bank 0x00, 0x8000), the CPU's
	// reset vector.
	data[0] = 0xEA
	data[1] = 0x02

	path := writeTestROM(t, data)

	m, err := NewMachine(path, nil)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}

	if err := m.Step(); err != nil {
		t.Fatalf("first Step (NOP) should not fault: %v", err)
	}

	if err := m.Run(); err == nil {
		t.Fatal("expected Run to stop on the unrecognised opcode")
	}
}

func TestNewMachineRejectsBadROM(t *testing.T) {
	path := writeTestROM(t, []byte{0x00, 0x01, 0x02})
	if _, err := NewMachine(path, nil); err == nil {
		t.Fatal("expected an error loading a too-short rom")
	}
}
