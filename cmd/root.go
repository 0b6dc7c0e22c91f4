package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"recon-setup/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `recon-setup`.
var rootCmd = &cobra.Command{
	Use:   "recon-setup",
	Short: "Recon machine bootstrap tool",

	// A failing step's own diagnostic is the failure signal; the usage
	// text would only bury it.
	SilenceUsage: true,

	// PersistentPreRun runs before any subcommand; it initializes the
	// logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute initializes flags, registers subcommands, and starts command
// execution. A failing provisioning step surfaces here as a non-zero
// exit; user cancellation and verification misses exit zero.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
