package main

import (
	"errors"
	"fmt"
	"os"

	"semrun/internal/cli"
	"semrun/internal/cli/commands"
	"semrun/internal/config"
	"semrun/internal/examples"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "semrun",
		Short:         "Sequential example-case runner",
		Long:          `Runs named groups of example cases in declaration order, reports which passed, failed or errored, and exits non-zero unless every case passed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Defaults, then .semrun.yaml, .env and SEMRUN_* variables
	cfg, err := config.Load(config.DefaultProjectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, examples.Register)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, commands.ErrCasesFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
