package installer

import (
	"fmt"
	"path/filepath"

	"recon-setup/internal/config"
	"recon-setup/internal/logger"
	"recon-setup/internal/runner"
	"recon-setup/internal/state"
)

// InstallTools fetches each tool in order with `go install`, building it
// from source and placing the binary in gobin. Tools whose recorded state
// already matches their pinned version are skipped; unpinned ("latest")
// tools are always refetched. The first failing fetch aborts the
// remaining sequence.
func InstallTools(r runner.Runner, tools []config.Tool, st *state.State, gobin string) error {
	logger.Debug("[DEBUG] Starting tool install: %d tools, state has %d entries\n", len(tools), len(st.Tools))

	for _, tool := range tools {
		version := tool.Version
		if version == "" {
			version = "latest"
		}

		if cur, ok := st.Tools[tool.Name]; ok && version != "latest" && cur.Version == version {
			logger.Info("[INFO] %s %s is current. Skipping.\n", tool.Name, version)
			continue
		}

		spec := tool.Source + "@" + version
		logger.Info("[INFO] Installing %s (%s)...\n", tool.Name, spec)
		if err := r.RunAttached("go", "install", spec); err != nil {
			return fmt.Errorf("failed to fetch %s: %w", tool.Name, err)
		}

		st.Tools[tool.Name] = state.ToolState{
			Version:          version,
			InstallPath:      filepath.Join(gobin, tool.Name),
			InstalledBySetup: true,
		}
		logger.Info("[INFO] Installed %s@%s\n", tool.Name, version)
	}

	logger.Debug("[DEBUG] Finished tool install\n")
	return nil
}
