package goruntime

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"recon-setup/internal/config"
	"recon-setup/internal/extract"
	"recon-setup/internal/logger"
	"recon-setup/internal/runner"
)

// ErrUnsupportedArch is returned when the host CPU architecture has no
// pinned toolchain archive. Only amd64 and arm64 are supported.
var ErrUnsupportedArch = errors.New("unsupported architecture")

// DefaultInstallDir is where the toolchain tree is extracted. The archive
// carries a top-level "go/" directory, so extraction targets its parent.
const DefaultInstallDir = "/usr/local/go"

// defaultDownloadBase is the official release download endpoint.
const defaultDownloadBase = "https://go.dev/dl"

// Installer ensures a minimum-version Go toolchain is present, installing
// a pinned release when it is missing or outdated. The download and
// extraction effects are injected so tests can exercise the decision
// logic without touching the network; the privileged replacement of the
// install directory goes through the Runner.
type Installer struct {
	Runner       runner.Runner
	Download     func(url, dest string) error
	Extract      func(src, dest string) error
	InstallDir   string
	DownloadBase string
}

// New returns an Installer wired to the real network, filesystem and
// archive extractor.
func New(r runner.Runner) *Installer {
	return &Installer{
		Runner:       r,
		Download:     downloadFile,
		Extract:      extract.Archive,
		InstallDir:   DefaultInstallDir,
		DownloadBase: defaultDownloadBase,
	}
}

// Ensure checks the installed toolchain against the configured minimum
// and performs exactly one download+extract cycle when it is absent or
// older. An already-sufficient installation is left untouched. The
// archive is extracted into a user-writable staging directory first;
// only then is any prior tree at InstallDir removed and the staged tree
// moved into place, both with elevation since InstallDir lives under
// /usr/local. There is no rollback.
func (in *Installer) Ensure(goos, arch string, rt config.Runtime) error {
	if major, minor, ok := in.installedVersion(); ok {
		if major > rt.MinMajor || (major == rt.MinMajor && minor >= rt.MinMinor) {
			logger.Info("[INFO] Go %d.%d found (minimum %d.%d). Skipping toolchain install.\n",
				major, minor, rt.MinMajor, rt.MinMinor)
			return nil
		}
		logger.Warn("[WARN] Go %d.%d found but minimum is %d.%d. Reinstalling...\n",
			major, minor, rt.MinMajor, rt.MinMinor)
	} else {
		logger.Info("[INFO] Go toolchain not found. Installing %s...\n", rt.Pin)
	}

	name, err := archiveName(goos, arch, rt.Pin)
	if err != nil {
		return err
	}

	url := in.DownloadBase + "/" + name
	tmp := filepath.Join(os.TempDir(), name)
	logger.Info("[INFO] Downloading %s\n", url)
	if err := in.Download(url, tmp); err != nil {
		return fmt.Errorf("toolchain download failed: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
			logger.Debug("[DEBUG] Failed to remove downloaded archive %s: %v\n", tmp, err)
		}
	}()

	staging, err := os.MkdirTemp("", "recon-setup-go")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			logger.Debug("[DEBUG] Failed to remove staging directory %s: %v\n", staging, err)
		}
	}()

	logger.Info("[INFO] Extracting %s\n", tmp)
	if err := in.Extract(tmp, staging); err != nil {
		return fmt.Errorf("toolchain extraction failed: %w", err)
	}

	// The archive carries a top-level directory matching the install
	// directory's base name ("go/").
	staged := filepath.Join(staging, filepath.Base(in.InstallDir))

	// InstallDir lives under /usr/local, so replacing it needs the same
	// elevation the package-manager steps use.
	logger.Debug("[DEBUG] Removing previous installation at %s\n", in.InstallDir)
	if out, err := in.Runner.Run("sudo", "rm", "-rf", in.InstallDir); err != nil {
		return fmt.Errorf("failed to remove previous toolchain at %s: %v\nOutput: %s", in.InstallDir, err, out)
	}
	if out, err := in.Runner.Run("sudo", "mv", staged, in.InstallDir); err != nil {
		return fmt.Errorf("failed to move toolchain into %s: %v\nOutput: %s", in.InstallDir, err, out)
	}

	logger.Info("[INFO] Installed Go %s to %s\n", rt.Pin, in.InstallDir)
	return nil
}

// goVersionRe matches the self-reported version line of `go version`,
// e.g. "go version go1.22.3 linux/amd64".
var goVersionRe = regexp.MustCompile(`go(\d+)\.(\d+)`)

// installedVersion invokes `go version` and parses the (major, minor)
// pair out of its output. ok is false when the binary is absent or the
// output is unparseable.
func (in *Installer) installedVersion() (major, minor int, ok bool) {
	out, err := in.Runner.Run("go", "version")
	if err != nil {
		logger.Debug("[DEBUG] go version probe failed: %v\n", err)
		return 0, 0, false
	}
	m := goVersionRe.FindSubmatch(out)
	if m == nil {
		logger.Debug("[DEBUG] unparseable go version output: %s\n", out)
		return 0, 0, false
	}
	major, _ = strconv.Atoi(string(m[1]))
	minor, _ = strconv.Atoi(string(m[2]))
	return major, minor, true
}

// archiveName maps (goos, arch) to the pinned release archive filename.
// Architectures other than amd64 and arm64 fail with ErrUnsupportedArch.
func archiveName(goos, arch, pin string) (string, error) {
	switch arch {
	case "amd64", "arm64":
		return fmt.Sprintf("go%s.%s-%s.tar.gz", pin, goos, arch), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedArch, arch)
	}
}

// downloadFile downloads the content at url and saves it to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}

	logger.Debug("[DEBUG] Downloaded %s to %s\n", url, destPath)
	return nil
}
