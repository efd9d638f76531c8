package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dudssource/snescpu/snes"
)

// traceModel is a bubbletea single-step viewer over a running Machine,
// modelled on hejops-gone's cpu.model: space/j steps one instruction,
// q quits. Unlike the teacher's page-table view (this core has no
// fixed 64 KiB RAM image to tile), the body is a scrolling log of
// disassembled lines plus a status panel of the live register file.
type traceModel struct {
	machine *snes.Machine
	history []string
	err     error
}

const historyLimit = 200

func (m traceModel) Init() tea.Cmd { return nil }

func (m traceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			line := m.machine.CPU.DisassembleCurrent()
			if err := m.machine.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.history = append(m.history, line)
			if len(m.history) > historyLimit {
				m.history = m.history[len(m.history)-historyLimit:]
			}
		}
	}
	return m, nil
}

func (m traceModel) status() string {
	c := m.machine.CPU
	return fmt.Sprintf(
		"PB:%02X PC:%04X\nA:%04X X:%04X Y:%04X\nD:%04X DB:%02X SP:%04X\nP:%08b  E:%t",
		c.PB, c.PC, c.A.Uint16(), c.X, c.Y, c.D, c.DB, c.SP, c.P, c.Emulation,
	)
}

func (m traceModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left, m.history...)
	footer := "space/j: step one instruction   q: quit"
	if m.err != nil {
		footer = "fault: " + m.err.Error()
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.status()),
		"",
		footer,
	)
}

// newTraceCmd builds the interactive `trace` subcommand: load a ROM
// and single-step it under a bubbletea viewer rather than running it
// to completion headless.
func newTraceCmd(logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace <rom-path>",
		Short: "Load a ROM and single-step it in an interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(*logLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			m, err := snes.NewMachine(args[0], log)
			if err != nil {
				return fmt.Errorf("loading rom: %w", err)
			}

			if _, err := tea.NewProgram(traceModel{machine: m}).Run(); err != nil {
				return fmt.Errorf("running trace viewer: %w", err)
			}
			return nil
		},
	}
	return cmd
}
