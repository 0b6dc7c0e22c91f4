package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recon-setup/internal/config"
	"recon-setup/internal/platform"
)

func TestInstallEyeWitnessClonesFreshCheckout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "EyeWitness")
	r := &mockRunner{}
	ew := config.EyeWitness{Repo: "https://github.com/RedSiege/EyeWitness.git", Dir: dir}

	if err := InstallEyeWitness(r, platform.Debian, ew); err != nil {
		t.Fatal(err)
	}
	if len(r.commands) != 2 {
		t.Fatalf("expected clone + setup, ran: %v", r.commands)
	}
	if r.commands[0] != "git clone https://github.com/RedSiege/EyeWitness.git "+dir {
		t.Errorf("clone command = %q", r.commands[0])
	}
	if !strings.HasPrefix(r.commands[1], "sudo bash ") || !strings.HasSuffix(r.commands[1], filepath.Join("Python", "setup", "setup.sh")) {
		t.Errorf("setup command = %q", r.commands[1])
	}
}

func TestInstallEyeWitnessPullsExistingCheckout(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "EyeWitness")
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	r := &mockRunner{}

	if err := InstallEyeWitness(r, platform.Debian, config.EyeWitness{Dir: dir}); err != nil {
		t.Fatal(err)
	}
	if r.commands[0] != "git -C "+dir+" pull" {
		t.Errorf("expected pull for existing checkout, got %q", r.commands[0])
	}
}

func TestInstallEyeWitnessMacOSUsesPip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "EyeWitness")
	r := &mockRunner{}

	if err := InstallEyeWitness(r, platform.MacOS, config.EyeWitness{Repo: "x", Dir: dir}); err != nil {
		t.Fatal(err)
	}
	if len(r.commands) != 2 {
		t.Fatalf("expected clone + pip install, ran: %v", r.commands)
	}
	if !strings.HasPrefix(r.commands[1], "pip3 install -r ") {
		t.Errorf("macOS setup should use pip3, got %q", r.commands[1])
	}
}

func TestInstallEyeWitnessCloneFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "EyeWitness")
	r := &mockRunner{failOn: "git clone"}

	err := InstallEyeWitness(r, platform.Debian, config.EyeWitness{Repo: "x", Dir: dir})
	if err == nil || !strings.Contains(err.Error(), "clone") {
		t.Errorf("expected clone failure, got %v", err)
	}
}
