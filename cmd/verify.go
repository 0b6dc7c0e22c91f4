package cmd

import (
	"github.com/spf13/cobra"

	"recon-setup/internal/config"
	"recon-setup/internal/installer"
	"recon-setup/internal/runner"
	"recon-setup/internal/shellenv"
	"recon-setup/internal/verify"
)

// verifyCmd probes for every expected tool and prints the report without
// installing anything. Missing tools do not change the exit code; the
// report itself is the signal.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Report which expected recon tools are present on PATH",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		// Pick up the workspace PATH entries even when this shell has
		// not re-sourced its profile yet.
		shellenv.SetProcessEnv(cfg.Exports)

		entry := installer.EntryScript(cfg.EyeWitness.Dir)
		verify.Print(verify.Run(&runner.SystemRunner{}, cfg.ExpectedTools(), entry))
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config overriding the built-in tables")
	rootCmd.AddCommand(verifyCmd)
}
