package main

import (
	"fmt"
	"os"

	"cute/internal/cli"
	"cute/internal/cli/commands"
	"cute/internal/config"

	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.New()
	var flags cli.Flags

	rootCmd := newRootCommand()
	commands.NewCommands(cfg).Register(rootCmd, &flags, cfg)

	return rootCmd.Execute()
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "cute",
		Short:         "Selective unit test engine",
		Long:          `Run a chosen subset of a test suite's test blocks, selected by block name or by containing module, and report pass/fail/skip status per module and in aggregate.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
