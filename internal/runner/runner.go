package runner

import (
	"os"
	"os/exec"
)

// Runner executes system commands. Mockable for tests.
type Runner interface {
	// Run executes a command, returning combined output and error.
	Run(name string, args ...string) ([]byte, error)
	// RunAttached executes a command with stdin/stdout/stderr attached to
	// the terminal. Used for long package-manager and build invocations
	// whose progress output the user should see live.
	RunAttached(name string, args ...string) error
	// LookPath checks if a binary is in PATH.
	LookPath(name string) (string, error)
}

// SystemRunner executes real system commands.
type SystemRunner struct{}

func (r *SystemRunner) Run(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

func (r *SystemRunner) RunAttached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *SystemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
