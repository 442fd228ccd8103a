package main

import (
	"fmt"
	"os"

	"tfa/internal/cli"
	"tfa/internal/cli/commands"
	"tfa/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "tfa <results.json>",
		Short:   "Classify and document test harness failures",
		Long:    `A triage tool for network-client test harness results. Classifies every failed test into a diagnostic category and generates one markdown report per failure plus a grouped index, so a maintainer can work through a large batch of failures without reading every raw log.`,
		Version: version,
	}

	// Create initial config with defaults and environment overrides
	cfg := config.Load()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
