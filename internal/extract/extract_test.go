package extract

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"recon-setup/internal/logger"
)

func init() {
	logger.Init(false)
}

// writeTarGz builds a small tar.gz shaped like a toolchain release
// archive: a top-level directory with nested files.
func writeTarGz(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	for name, content := range entries {
		hdr := &tar.Header{
			Name: name,
			Mode: 0755,
			Size: int64(len(content)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestArchiveTarGzRestoresTree(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "go1.22.3.linux-amd64.tar.gz")
	writeTarGz(t, src, map[string]string{
		"go/bin/go":    "fake binary",
		"go/VERSION":   "go1.22.3",
		"go/pkg/a.txt": "x",
	})

	dest := filepath.Join(dir, "out")
	if err := os.MkdirAll(dest, 0755); err != nil {
		t.Fatal(err)
	}
	if err := Archive(src, dest); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dest, "go", "VERSION"))
	if err != nil {
		t.Fatalf("extracted file missing: %v", err)
	}
	if string(got) != "go1.22.3" {
		t.Errorf("unexpected content: %q", got)
	}

	info, err := os.Stat(filepath.Join(dest, "go", "bin", "go"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Error("executable bit lost on extraction")
	}
}

func TestArchiveRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "evil.tar.gz")
	writeTarGz(t, src, map[string]string{
		"../escape.txt": "nope",
	})

	if err := Archive(src, filepath.Join(dir, "out")); err == nil {
		t.Error("expected error for path traversal entry")
	}
}

func TestArchiveZip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "tool.zip")

	f, err := os.Create(src)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("tool/readme.txt")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	dest := filepath.Join(dir, "out")
	if err := Archive(src, dest); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "tool", "readme.txt")); err != nil {
		t.Errorf("zip entry not extracted: %v", err)
	}
}

func TestArchiveUnsupportedFormat(t *testing.T) {
	if err := Archive("/tmp/whatever.rar", t.TempDir()); err == nil {
		t.Error("expected error for unsupported archive format")
	}
}
