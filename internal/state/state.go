package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"recon-setup/internal/logger"
)

// ToolState records one installed tool: the version that was requested,
// the path the binary landed at, and whether this setup tool performed
// the installation (as opposed to finding a pre-existing binary).
type ToolState struct {
	Version          string `json:"version"`
	InstallPath      string `json:"install_path"`
	InstalledBySetup bool   `json:"installed_by_setup"`
}

// State is the whole persisted state: a map from tool name to its
// ToolState. It exists so re-runs can skip installs that are already
// satisfied. The Go toolchain needs no entry here: its installer probes
// the actual `go version` output instead of trusting a record.
type State struct {
	Tools map[string]ToolState `json:"tools"`
}

// Load reads the saved state from the JSON file at path. A missing or
// unreadable file yields a fresh empty state rather than an error: state
// is an optimization, never a prerequisite.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		return &State{Tools: make(map[string]ToolState)}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	// Defensive: the map may be null in hand-edited files.
	if st.Tools == nil {
		st.Tools = make(map[string]ToolState)
	}
	return &st
}

// Save writes the state as indented JSON, creating the parent directory
// if needed. Failures are logged but not propagated: losing state costs
// only a redundant reinstall on the next run.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("[ERROR] Failed to create state directory for %s: %v\n", path, err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))
	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
