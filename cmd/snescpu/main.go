package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "snescpu",
		Short: "A headless 65C816 interpreter core",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "one of debug, info, warn, error")

	rootCmd.AddCommand(newRunCmd(&logLevel), newTraceCmd(&logLevel))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildLogger parses logLevel into a zap config, matching spec.md §6's
// "a logging-level variable controls the verbosity of per-instruction
// diagnostic traces" — the original source's env_logger equivalent.
func buildLogger(logLevel string) (*zap.Logger, error) {
	var level zap.AtomicLevel
	switch logLevel {
	case "debug":
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info", "":
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("unrecognised --log-level %q", logLevel)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	return cfg.Build()
}
