package platform

import (
	"errors"
	"fmt"
	"os"
)

// Kind classifies the host OS/distribution family. It is determined once
// at startup and drives which package-manager commands run.
type Kind int

const (
	Unknown Kind = iota
	Debian       // Debian-family Linux (apt)
	RedHat       // RedHat-family Linux (yum)
	GenericLinux // Linux with no recognized package manager marker
	MacOS        // macOS (Homebrew)
)

// String returns a human-readable name for the platform kind.
func (k Kind) String() string {
	switch k {
	case Debian:
		return "debian"
	case RedHat:
		return "redhat"
	case GenericLinux:
		return "linux"
	case MacOS:
		return "macos"
	default:
		return "unknown"
	}
}

// ErrUnsupportedPlatform is returned when the host OS identifier matches
// none of the recognized families.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// StatFunc reports whether a path exists on the filesystem. Injected so
// tests can simulate the distribution marker files.
type StatFunc func(path string) bool

// Marker files distinguishing the two recognized Linux families.
const (
	debianMarker = "/etc/debian_version"
	redhatMarker = "/etc/redhat-release"
)

// Detect classifies the host from the OS identifier (runtime.GOOS) plus
// the presence of the distribution marker files. It has no side effects:
// the result is a pure function of the identifier and the marker probes.
func Detect(goos string, exists StatFunc) (Kind, error) {
	switch goos {
	case "darwin":
		return MacOS, nil
	case "linux":
		if exists(debianMarker) {
			return Debian, nil
		}
		if exists(redhatMarker) {
			return RedHat, nil
		}
		return GenericLinux, nil
	default:
		return Unknown, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// FileExists is the production StatFunc.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
