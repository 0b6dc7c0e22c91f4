package state

import (
	"os"
	"path/filepath"
	"testing"

	"recon-setup/internal/logger"
)

func init() {
	logger.Init(false)
}

func TestLoadMissingFileReturnsEmptyState(t *testing.T) {
	st := Load(filepath.Join(t.TempDir(), "nope", "state.json"))
	if st == nil || st.Tools == nil {
		t.Fatal("expected initialized empty state")
	}
	if len(st.Tools) != 0 {
		t.Errorf("expected no tools, got %d", len(st.Tools))
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.json")

	st := &State{
		Tools: map[string]ToolState{
			"subfinder": {Version: "v2.6.6", InstallPath: "/home/op/go/bin/subfinder", InstalledBySetup: true},
		},
	}
	Save(path, st)

	got := Load(path)
	ts, ok := got.Tools["subfinder"]
	if !ok {
		t.Fatal("subfinder entry lost")
	}
	if ts.Version != "v2.6.6" || !ts.InstalledBySetup {
		t.Errorf("unexpected tool state: %+v", ts)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	st := Load(path)
	if st.Tools == nil {
		t.Fatal("corrupt file must still yield a usable state")
	}
}
