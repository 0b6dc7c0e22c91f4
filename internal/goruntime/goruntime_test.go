package goruntime

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recon-setup/internal/config"
	"recon-setup/internal/logger"
)

func init() {
	logger.Init(false)
}

// mockRunner answers `go version` probes and records every other command.
type mockRunner struct {
	versionOut string
	versionErr error
	commands   []string
	failOn     string
}

func (m *mockRunner) Run(name string, args ...string) ([]byte, error) {
	if name == "go" && len(args) == 1 && args[0] == "version" {
		return []byte(m.versionOut), m.versionErr
	}
	cmd := strings.Join(append([]string{name}, args...), " ")
	m.commands = append(m.commands, cmd)
	if m.failOn != "" && strings.Contains(cmd, m.failOn) {
		return []byte("permission denied"), errors.New("exit status 1")
	}
	return nil, nil
}

func (m *mockRunner) RunAttached(name string, args ...string) error { return nil }

func (m *mockRunner) LookPath(name string) (string, error) { return "", errors.New("not found") }

// effects records the injected download/extract side effects.
type effects struct {
	downloads []string
	extracted []string
}

func testInstaller(r *mockRunner, fx *effects) *Installer {
	return &Installer{
		Runner: r,
		Download: func(url, dest string) error {
			fx.downloads = append(fx.downloads, url)
			return nil
		},
		Extract: func(src, dest string) error {
			fx.extracted = append(fx.extracted, dest)
			return nil
		},
		InstallDir:   "/usr/local/go",
		DownloadBase: "https://go.dev/dl",
	}
}

var rt = config.Runtime{MinMajor: 1, MinMinor: 21, Pin: "1.22.3"}

func TestEnsureSufficientVersionNoDownload(t *testing.T) {
	fx := &effects{}
	r := &mockRunner{versionOut: "go version go1.22.3 linux/amd64"}
	in := testInstaller(r, fx)

	if err := in.Ensure("linux", "amd64", rt); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if len(fx.downloads) != 0 || len(fx.extracted) != 0 || len(r.commands) != 0 {
		t.Errorf("expected no side effects, got downloads=%v extracted=%v commands=%v",
			fx.downloads, fx.extracted, r.commands)
	}
}

func TestEnsureNewerMajorNoDownload(t *testing.T) {
	fx := &effects{}
	in := testInstaller(&mockRunner{versionOut: "go version go2.0 linux/amd64"}, fx)

	if err := in.Ensure("linux", "amd64", rt); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if len(fx.downloads) != 0 {
		t.Errorf("expected no download for newer major, got %v", fx.downloads)
	}
}

func TestEnsureAbsentInstallsOnce(t *testing.T) {
	fx := &effects{}
	r := &mockRunner{versionErr: errors.New("exec: \"go\": executable file not found")}
	in := testInstaller(r, fx)

	if err := in.Ensure("linux", "amd64", rt); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if len(fx.downloads) != 1 {
		t.Fatalf("expected exactly one download, got %d", len(fx.downloads))
	}
	want := "https://go.dev/dl/go1.22.3.linux-amd64.tar.gz"
	if fx.downloads[0] != want {
		t.Errorf("download URL = %s, want %s", fx.downloads[0], want)
	}
	if len(fx.extracted) != 1 {
		t.Fatalf("expected exactly one extraction, got %d", len(fx.extracted))
	}
	// Replacement of /usr/local/go runs elevated through the runner.
	if len(r.commands) != 2 {
		t.Fatalf("expected rm + mv, ran: %v", r.commands)
	}
	if r.commands[0] != "sudo rm -rf /usr/local/go" {
		t.Errorf("removal command = %q", r.commands[0])
	}
	if !strings.HasPrefix(r.commands[1], "sudo mv ") || !strings.HasSuffix(r.commands[1], " /usr/local/go") {
		t.Errorf("move command = %q", r.commands[1])
	}
}

func TestEnsureOutdatedReinstalls(t *testing.T) {
	fx := &effects{}
	in := testInstaller(&mockRunner{versionOut: "go version go1.19.5 darwin/arm64"}, fx)

	if err := in.Ensure("darwin", "arm64", rt); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	want := "https://go.dev/dl/go1.22.3.darwin-arm64.tar.gz"
	if len(fx.downloads) != 1 || fx.downloads[0] != want {
		t.Errorf("downloads = %v, want [%s]", fx.downloads, want)
	}
}

func TestEnsureUnsupportedArch(t *testing.T) {
	fx := &effects{}
	in := testInstaller(&mockRunner{versionErr: errors.New("not found")}, fx)

	err := in.Ensure("linux", "riscv64", rt)
	if !errors.Is(err, ErrUnsupportedArch) {
		t.Fatalf("expected ErrUnsupportedArch, got %v", err)
	}
	if len(fx.downloads) != 0 {
		t.Errorf("no download should happen for unsupported arch")
	}
}

func TestEnsureDownloadFailureAborts(t *testing.T) {
	fx := &effects{}
	r := &mockRunner{versionErr: errors.New("not found")}
	in := testInstaller(r, fx)
	in.Download = func(url, dest string) error { return errors.New("connection reset") }

	if err := in.Ensure("linux", "amd64", rt); err == nil {
		t.Fatal("expected download failure to propagate")
	}
	if len(fx.extracted) != 0 || len(r.commands) != 0 {
		t.Errorf("failed download must not touch the existing installation: extracted=%v commands=%v",
			fx.extracted, r.commands)
	}
}

func TestEnsureRemovalFailurePropagates(t *testing.T) {
	fx := &effects{}
	r := &mockRunner{versionErr: errors.New("not found"), failOn: "rm -rf"}
	in := testInstaller(r, fx)

	err := in.Ensure("linux", "amd64", rt)
	if err == nil || !strings.Contains(err.Error(), "remove previous toolchain") {
		t.Fatalf("expected removal failure, got %v", err)
	}
	// The move must not be attempted after the removal failed.
	if len(r.commands) != 1 {
		t.Errorf("expected abort after failed removal, ran: %v", r.commands)
	}
}

func TestEnsureCleansUpDownloadedArchive(t *testing.T) {
	fx := &effects{}
	r := &mockRunner{versionErr: errors.New("not found")}
	in := testInstaller(r, fx)

	var tmp string
	in.Download = func(url, dest string) error {
		tmp = dest
		fx.downloads = append(fx.downloads, url)
		return os.WriteFile(dest, []byte("archive"), 0644)
	}

	if err := in.Ensure("linux", "amd64", rt); err != nil {
		t.Fatalf("Ensure failed: %v", err)
	}
	if tmp == "" {
		t.Fatal("download was never invoked")
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Errorf("downloaded archive %s not cleaned up", tmp)
	}
	if filepath.Dir(tmp) != os.TempDir() {
		t.Errorf("archive staged outside the temp directory: %s", tmp)
	}
}

func TestInstalledVersionParsing(t *testing.T) {
	tests := []struct {
		out          string
		major, minor int
		ok           bool
	}{
		{"go version go1.22.3 linux/amd64", 1, 22, true},
		{"go version go1.21 darwin/arm64", 1, 21, true},
		{"gibberish", 0, 0, false},
	}
	for _, tt := range tests {
		in := &Installer{Runner: &mockRunner{versionOut: tt.out}}
		major, minor, ok := in.installedVersion()
		if major != tt.major || minor != tt.minor || ok != tt.ok {
			t.Errorf("installedVersion(%q) = (%d, %d, %v), want (%d, %d, %v)",
				tt.out, major, minor, ok, tt.major, tt.minor, tt.ok)
		}
	}
}
