package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dudssource/snescpu/snes"
)

// buildTestROM returns a minimal one-bank LoROM image with a valid
// header and a reset-vector program: LDA #$46 / STA $00 / an
// unrecognised opcode, so running it exercises load, map, and a
// fatal fault end-to-end, matching the integration-test style
// SPEC_FULL.md's AMBIENT STACK section calls for (a full
// ROM-load-and-run path, asserted with testify).
func buildTestROM(t *testing.T) string {
	t.Helper()

	data := make([]byte, 0x8000)
	copy(data[0x7FC0:], []byte("INTEGRATION TEST    "))
	data[0x7FD5] = 0x20 // LoROM, 2.68MHz
	data[0x7FD6] = 0x00 // ROM only
	data[0x7FD7] = 8    // 256 KiB exponent, unused by this tiny image
	data[0x7FD8] = 0
	data[0x7FD9] = 0x01 // USA

	// Program at 0x8000 (bank 0's reset PC, per spec.md §3):
	//   A9 46       LDA #$46
	//   85 00       STA $00
	//   02          COP (unrecognised by this core's dispatch table)
	prog := []byte{0xA9, 0x46, 0x85, 0x00, 0x02}
	copy(data, prog)

	path := filepath.Join(t.TempDir(), "integration.smc")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestRunCommand_FaultsOnUnrecognisedOpcode(t *testing.T) {
	romPath := buildTestROM(t)

	logLevel := "error"
	cmd := newRunCmd(&logLevel)
	cmd.SetArgs([]string{romPath})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "execution fault")
}

func TestRunCommand_DescribePrintsROMHeader(t *testing.T) {
	romPath := buildTestROM(t)

	logLevel := "error"
	cmd := newRunCmd(&logLevel)
	cmd.SetArgs([]string{"--describe", romPath})

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	require.Error(t, err) // the program still faults after printing
	require.Contains(t, out.String(), "INTEGRATION TEST")
}

func TestMachine_LoadAndRunDirectly(t *testing.T) {
	romPath := buildTestROM(t)

	m, err := snes.NewMachine(romPath, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, "INTEGRATION TEST", m.ROM.GameTitle)

	require.NoError(t, m.Step()) // LDA #$46
	require.Equal(t, byte(0x46), m.CPU.A.Lo())

	require.NoError(t, m.Step()) // STA $00
	require.Equal(t, byte(0x46), m.Bus.Read8(0, 0x0000))

	err = m.Step() // COP: unrecognised
	require.Error(t, err)
	var uo *snes.UnrecognisedOpcodeError
	require.ErrorAs(t, err, &uo)
	require.Equal(t, byte(0x02), uo.Opcode)
}
