package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dudssource/snescpu/snes"
)

// newRunCmd builds the headless `run` subcommand: take the ROM path as
// the single positional argument, load and map it, and drive the CPU
// loop until a fault. The command returns an error (so the process
// exits nonzero) on a parse or I/O failure and also on the execution
// fault that ends every run.
func newRunCmd(logLevel *string) *cobra.Command {
	var describe bool
	var dumpStateOnFault bool

	cmd := &cobra.Command{
		Use:   "run <rom-path>",
		Short: "Load a ROM and run the CPU until it faults",
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

			if describe {
				fmt.Fprintln(cmd.OutOrStdout(), m.ROM.String())
			}

			if err := m.Run(); err != nil {
				if dumpStateOnFault {
					fmt.Fprintln(cmd.ErrOrStderr(), spew.Sdump(m.CPU))
				}
				return fmt.Errorf("execution fault: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&describe, "describe", false, "print the parsed ROM header before running")
	cmd.Flags().BoolVar(&dumpStateOnFault, "dump-state-on-fault", false, "spew the CPU register file to stderr on a fatal fault")

	return cmd
}
