package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"recon-setup/internal/config"
	"recon-setup/internal/goruntime"
	"recon-setup/internal/installer"
	"recon-setup/internal/linker"
	"recon-setup/internal/logger"
	"recon-setup/internal/platform"
	"recon-setup/internal/runner"
	"recon-setup/internal/shellenv"
	"recon-setup/internal/state"
	"recon-setup/internal/verify"
)

// configPath optionally points at a YAML file overriding the built-in
// provisioning tables. Passed via `--config` or `-c`.
var configPath string

// statePath is the path to the persistent state file tracking which
// tools were installed at which version.
var statePath string

// assumeYes skips the interactive confirmation prompt.
var assumeYes bool

// setupCmd runs the full provisioning sequence: confirm, system
// packages, Go toolchain, shell exports, recon tools, EyeWitness,
// symlink, verification. Every step before verification is fail-fast
// with no rollback; verification only reports.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Provision this machine for recon work (packages, toolchain, tools)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		deps, err := realDeps()
		if err != nil {
			return err
		}
		return runSetup(cfg, deps)
	},
}

// setupDeps carries everything the setup sequence touches outside the
// config, so the sequence can be tested against a mock host.
type setupDeps struct {
	runner    runner.Runner
	toolchain *goruntime.Installer
	home      string
	goos      string
	goarch    string
	exists    platform.StatFunc
	confirm   func() bool
	statePath string
}

// realDeps wires the sequence to the actual host.
func realDeps() (setupDeps, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return setupDeps{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	r := &runner.SystemRunner{}
	return setupDeps{
		runner:    r,
		toolchain: goruntime.New(r),
		home:      home,
		goos:      runtime.GOOS,
		goarch:    runtime.GOARCH,
		exists:    platform.FileExists,
		confirm:   func() bool { return assumeYes || confirm(os.Stdin) },
		statePath: statePath,
	}, nil
}

// runSetup executes the provisioning steps in their fixed order:
// confirm, platform detection, system packages, Go toolchain, shell
// exports, recon tools, EyeWitness, symlink, verification. The first
// failing step aborts the sequence; only verification is best-effort.
func runSetup(cfg config.Config, d setupDeps) error {
	if !d.confirm() {
		logger.Warn("[WARN] Cancelled. No changes were made.\n")
		return nil
	}

	kind, err := platform.Detect(d.goos, d.exists)
	if err != nil {
		return err
	}
	logger.Info("[INFO] Detected platform: %s\n", kind)

	if err := installer.InstallPackages(d.runner, kind, cfg.Packages); err != nil {
		return err
	}

	if err := d.toolchain.Ensure(d.goos, d.goarch, cfg.Runtime); err != nil {
		return err
	}

	if err := applyExports(cfg, d.home); err != nil {
		return err
	}

	st := state.Load(d.statePath)
	// Persist whatever progress was made even when a later step fails.
	defer state.Save(d.statePath, st)

	gobin := filepath.Join(d.home, "go", "bin")
	if err := installer.InstallTools(d.runner, cfg.Tools, st, gobin); err != nil {
		return err
	}

	if err := installer.InstallEyeWitness(d.runner, kind, cfg.EyeWitness); err != nil {
		return err
	}

	entry := installer.EntryScript(cfg.EyeWitness.Dir)
	if _, err := linker.Create(linker.Link{
		AliasDir: filepath.Join(d.home, ".local", "bin"),
		Name:     "eyewitness",
		Target:   entry,
	}); err != nil {
		return err
	}

	// Verification is advisory: misses are reported, never fatal.
	verify.Print(verify.Run(d.runner, cfg.ExpectedTools(), entry))
	return nil
}

// setupEnvCmd applies only the shell exports.
var setupEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "Persist shell exports only",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return applyExports(cfg, home)
	},
}

// setupPackagesCmd installs only the OS-native packages.
var setupPackagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Install system packages only",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		kind, err := platform.Detect(runtime.GOOS, platform.FileExists)
		if err != nil {
			return err
		}
		return installer.InstallPackages(&runner.SystemRunner{}, kind, cfg.Packages)
	},
}

// setupToolsCmd fetches only the recon tools.
var setupToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Install recon tools only",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		shellenv.SetProcessEnv(cfg.Exports)

		st := state.Load(statePath)
		defer state.Save(statePath, st)
		return installer.InstallTools(&runner.SystemRunner{}, cfg.Tools, st, filepath.Join(home, "go", "bin"))
	},
}

// applyExports persists the export lines into the existing profile files
// and mirrors them into the current process environment so later steps
// of this run resolve the new PATH entries immediately.
func applyExports(cfg config.Config, home string) error {
	profiles := shellenv.Profiles(home)
	if len(profiles) == 0 {
		logger.Warn("[WARN] No shell profile files found. Exports apply to this run only.\n")
	}
	applied, err := shellenv.Apply(shellenv.Directives(cfg.Exports, profiles))
	if err != nil {
		return err
	}
	logger.Info("[INFO] Shell exports: %d added, rest already present.\n", len(applied))
	shellenv.SetProcessEnv(cfg.Exports)
	return nil
}

// confirm reads one line from in and returns true only for an explicit
// yes ("y", "Y" or "yes"). Anything else, including EOF or a read
// error, cancels. Defaulting to no keeps an accidental Enter from
// provisioning the machine.
func confirm(in io.Reader) bool {
	logger.Warn("[WARN] This will install system packages and recon tools on this machine.\n")
	fmt.Print("Continue? [y/N]: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// init sets up CLI flags and registers the setup command tree.
func init() {
	setupCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config overriding the built-in tables")
	setupCmd.PersistentFlags().StringVar(&statePath, "state", defaultStatePath(), "Path to the state file")
	setupCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	setupCmd.AddCommand(setupEnvCmd)
	setupCmd.AddCommand(setupPackagesCmd)
	setupCmd.AddCommand(setupToolsCmd)
	rootCmd.AddCommand(setupCmd)
}

// defaultStatePath places the state file under the user's home; when the
// home directory cannot be resolved the file lands in the working
// directory.
func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "state.json"
	}
	return filepath.Join(home, ".recon-setup", "state.json")
}
