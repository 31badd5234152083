package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for this demonstration CLI.
const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// rootCmd is the base command for the gosmo demonstration binary. It exists
// to exercise the library end-to-end against a toy model; it is not the
// test-writer-facing entry point (callers import the gosmo packages
// directly, the way one imports pyosmo).
var rootCmd = &cobra.Command{
	Use:          "gosmo",
	Short:        "Run a model-based test generator against a toy calculator model",
	SilenceUsage: true,
}

// Execute runs the root command, translating a returned error into a
// non-zero process exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
	os.Exit(ExitCodeSuccess)
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}
