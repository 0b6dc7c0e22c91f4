package installer

import (
	"fmt"

	"recon-setup/internal/config"
	"recon-setup/internal/logger"
	"recon-setup/internal/platform"
	"recon-setup/internal/runner"
)

// brewInstallScript is the official Homebrew bootstrap, run when brew is
// missing on macOS.
const brewInstallScript = `/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`

// InstallPackages installs the OS-native packages for the detected
// platform family. The underlying package managers no-op on packages that
// are already satisfied, so re-running is safe. A generic Linux host has
// no recognized package manager; the step warns and skips rather than
// failing, since the recon tools may still build against preinstalled
// headers.
func InstallPackages(r runner.Runner, kind platform.Kind, pkgs config.Packages) error {
	switch kind {
	case platform.Debian:
		logger.Info("[INFO] Installing system packages with apt-get...\n")
		if err := r.RunAttached("sudo", "apt-get", "update"); err != nil {
			return fmt.Errorf("apt-get update failed: %w", err)
		}
		args := append([]string{"apt-get", "install", "-y"}, pkgs.Debian...)
		if err := r.RunAttached("sudo", args...); err != nil {
			return fmt.Errorf("apt-get install failed: %w", err)
		}

	case platform.RedHat:
		logger.Info("[INFO] Installing system packages with yum...\n")
		args := append([]string{"yum", "install", "-y"}, pkgs.RedHat...)
		if err := r.RunAttached("sudo", args...); err != nil {
			return fmt.Errorf("yum install failed: %w", err)
		}

	case platform.MacOS:
		if err := ensureBrew(r); err != nil {
			return err
		}
		logger.Info("[INFO] Installing system packages with brew...\n")
		args := append([]string{"install"}, pkgs.MacOS...)
		if err := r.RunAttached("brew", args...); err != nil {
			return fmt.Errorf("brew install failed: %w", err)
		}

	case platform.GenericLinux:
		logger.Warn("[WARN] No recognized package manager on this Linux. Install build tools, python3, git and nmap manually.\n")
		return nil

	default:
		return fmt.Errorf("%w: %s", platform.ErrUnsupportedPlatform, kind)
	}

	logger.Info("[INFO] System packages installed.\n")
	return nil
}

// ensureBrew checks for Homebrew and bootstraps it via the official
// install script when absent.
func ensureBrew(r runner.Runner) error {
	if _, err := r.LookPath("brew"); err == nil {
		logger.Debug("[DEBUG] brew already installed\n")
		return nil
	}
	logger.Info("[INFO] Homebrew not found. Installing...\n")
	if err := r.RunAttached("/bin/bash", "-c", brewInstallScript); err != nil {
		return fmt.Errorf("homebrew bootstrap failed: %w", err)
	}
	return nil
}
