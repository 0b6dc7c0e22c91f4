package main

import (
	"recon-setup/cmd" // CLI commands and execution logic
)

// main is the program entry point. It delegates to cmd.Execute() which
// handles command line argument parsing and execution.
//
// recon-setup bootstraps a machine for security-reconnaissance work:
//   - Detects the host platform (Debian-family, RedHat-family, generic
//     Linux, or macOS) and picks the matching package manager
//   - Ensures a minimum-version Go toolchain is installed, downloading a
//     pinned release archive for the host architecture when it is missing
//     or outdated
//   - Installs the system packages the recon tools build against
//     (compiler toolchain, TLS/FFI headers, python3, git, nmap, ...)
//   - Persists the Go workspace exports into the user's shell profile
//     files, idempotently, and exports them into the current process
//   - Fetches a pinned list of recon tools with `go install`, and clones
//     EyeWitness and runs its bundled setup script
//   - Symlinks EyeWitness onto a stable alias path
//   - Verifies every expected tool resolves on PATH and prints a summary
//
// Error handling strategy:
//   - Provisioning steps are strictly fail-fast: the first failing step
//     aborts the run with a non-zero exit and no rollback
//   - The final verification step is best-effort: it aggregates every
//     missing tool into one report instead of aborting on the first miss
//
// A JSON state file tracks which tools were installed at which pinned
// version, so re-runs skip work that is already done.
func main() {
	cmd.Execute()
}
