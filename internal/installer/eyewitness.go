package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"recon-setup/internal/config"
	"recon-setup/internal/logger"
	"recon-setup/internal/platform"
	"recon-setup/internal/runner"
)

// EntryScript returns the path of the EyeWitness launcher inside a
// checkout directory.
func EntryScript(dir string) string {
	return filepath.Join(dir, "Python", "EyeWitness.py")
}

// InstallEyeWitness installs the one tool that is not fetched with
// `go install`: the repository is cloned into the home directory (or
// pulled when the checkout already exists), then its bundled setup script
// is run with elevated privileges on Linux, or via pip on macOS where
// the script assumes apt/yum.
func InstallEyeWitness(r runner.Runner, kind platform.Kind, ew config.EyeWitness) error {
	if _, err := os.Stat(filepath.Join(ew.Dir, ".git")); err == nil {
		logger.Info("[INFO] EyeWitness checkout found. Pulling latest...\n")
		if err := r.RunAttached("git", "-C", ew.Dir, "pull"); err != nil {
			return fmt.Errorf("failed to update EyeWitness clone: %w", err)
		}
	} else {
		logger.Info("[INFO] Cloning EyeWitness into %s...\n", ew.Dir)
		if err := r.RunAttached("git", "clone", ew.Repo, ew.Dir); err != nil {
			return fmt.Errorf("failed to clone EyeWitness: %w", err)
		}
	}

	if kind == platform.MacOS {
		requirements := filepath.Join(ew.Dir, "Python", "requirements.txt")
		logger.Info("[INFO] Installing EyeWitness python dependencies with pip3...\n")
		if err := r.RunAttached("pip3", "install", "-r", requirements); err != nil {
			return fmt.Errorf("eyewitness pip install failed: %w", err)
		}
		return nil
	}

	setup := filepath.Join(ew.Dir, "Python", "setup", "setup.sh")
	logger.Info("[INFO] Running EyeWitness setup script...\n")
	if err := r.RunAttached("sudo", "bash", setup); err != nil {
		return fmt.Errorf("eyewitness setup script failed: %w", err)
	}
	return nil
}
