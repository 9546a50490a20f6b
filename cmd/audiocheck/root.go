package main

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "audiocheck",
		Short: "Conformance runner for the audio storage API",
		Long: `audiocheck uploads audio fixtures for random user and phrase ids,
downloads them back in every supported format and probes the error paths
(invalid format, unknown pair, missing file). Each response is recorded as
a named check; a run fails when any check fails.

Configuration comes from the environment (and a .env file); flags on the
run command override it.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
