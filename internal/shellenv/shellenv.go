package shellenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"recon-setup/internal/config"
	"recon-setup/internal/logger"
)

// Directive is one (profile file, marker, line) append instruction. The
// line is appended to the file only when the marker substring is not
// already present, so applying the same directive N times leaves the
// file identical to applying it once.
type Directive struct {
	File   string
	Marker string
	Line   string
}

// Profiles returns the shell profile files that exist among the fixed
// candidate set. Exports are only appended to files the user already has;
// none are created.
func Profiles(home string) []string {
	candidates := []string{
		filepath.Join(home, ".bashrc"),
		filepath.Join(home, ".zshrc"),
	}
	var existing []string
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	return existing
}

// Directives expands the export table across every existing profile file.
func Directives(exports []config.Export, profiles []string) []Directive {
	var dirs []Directive
	for _, p := range profiles {
		for _, e := range exports {
			marker := e.Marker
			if marker == "" {
				marker = e.Line
			}
			dirs = append(dirs, Directive{File: p, Marker: marker, Line: e.Line})
		}
	}
	return dirs
}

// Apply appends each directive's line to its profile file when the marker
// is absent, and returns the directives that were actually written so the
// caller can report what changed.
func Apply(dirs []Directive) ([]Directive, error) {
	var applied []Directive
	for _, d := range dirs {
		raw, err := os.ReadFile(d.File)
		if err != nil {
			return applied, fmt.Errorf("failed to read profile %s: %w", d.File, err)
		}
		if strings.Contains(string(raw), d.Marker) {
			logger.Debug("[DEBUG] Export already present in %s: %s\n", d.File, d.Line)
			continue
		}

		f, err := os.OpenFile(d.File, os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return applied, fmt.Errorf("unable to open %s for appending: %w", d.File, err)
		}

		line := d.Line
		if len(raw) > 0 && raw[len(raw)-1] != '\n' {
			line = "\n" + line
		}
		if _, err := f.WriteString(line + "\n"); err != nil {
			f.Close()
			return applied, fmt.Errorf("failed to write export to %s: %w", d.File, err)
		}
		f.Close()

		logger.Info("[INFO] Added to %s: %s\n", d.File, d.Line)
		applied = append(applied, d)
	}
	return applied, nil
}

// SetProcessEnv exports the variables into the current process so the
// remaining steps of this run observe them without re-sourcing a profile.
// PATH entries are appended to the live PATH instead of replacing it.
func SetProcessEnv(exports []config.Export) {
	for _, e := range exports {
		if e.PathEntry {
			cur := os.Getenv("PATH")
			if pathContains(cur, e.Value) {
				logger.Debug("[DEBUG] PATH already contains %s\n", e.Value)
				continue
			}
			_ = os.Setenv("PATH", cur+string(os.PathListSeparator)+e.Value)
			logger.Debug("[DEBUG] Appended %s to PATH\n", e.Value)
			continue
		}
		_ = os.Setenv(e.Key, e.Value)
		logger.Debug("[DEBUG] Set %s=%s\n", e.Key, e.Value)
	}
}

// pathContains reports whether dir is already one of the PATH entries.
func pathContains(path, dir string) bool {
	for _, p := range filepath.SplitList(path) {
		if p == dir {
			return true
		}
	}
	return false
}
