package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"recon-setup/internal/logger"
)

// Link describes one stable alias: a symlink named Name inside AliasDir
// pointing at Target.
type Link struct {
	AliasDir string
	Name     string
	Target   string
}

// Create ensures the alias directory exists and force-creates the
// symlink, marking the target executable. A missing target is a no-op,
// not a failure: the tool simply was not installed and the verifier will
// report it.
func Create(l Link) (bool, error) {
	if err := os.MkdirAll(l.AliasDir, 0755); err != nil {
		return false, fmt.Errorf("failed to create alias directory %s: %w", l.AliasDir, err)
	}

	if _, err := os.Stat(l.Target); err != nil {
		logger.Warn("[WARN] %s not found. Skipping %s symlink.\n", l.Target, l.Name)
		return false, nil
	}

	link := filepath.Join(l.AliasDir, l.Name)

	// Force: replace whatever is already at the link path.
	if err := os.Remove(link); err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to replace existing link %s: %w", link, err)
	}
	if err := os.Symlink(l.Target, link); err != nil {
		return false, fmt.Errorf("failed to create symlink %s: %w", link, err)
	}
	if err := os.Chmod(l.Target, 0755); err != nil {
		return false, fmt.Errorf("failed to mark %s executable: %w", l.Target, err)
	}

	logger.Info("[INFO] Linked %s -> %s\n", link, l.Target)
	return true, nil
}
