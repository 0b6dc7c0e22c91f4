package config

// Tool represents one recon tool fetched with `go install`.
// - Name: binary name expected on PATH after installation.
// - Source: Go module path of the tool's main package.
// - Version: pinned version ("vX.Y.Z"); empty means "latest".
type Tool struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Version string `yaml:"version"`
}

// Runtime describes the Go toolchain requirement: the minimum version an
// existing installation must satisfy, and the pinned release downloaded
// when the requirement is not met.
type Runtime struct {
	MinMajor int    `yaml:"min_major"`
	MinMinor int    `yaml:"min_minor"`
	Pin      string `yaml:"pin"` // e.g. "1.22.3"
}

// Packages lists the OS-native packages installed per platform family.
type Packages struct {
	Debian []string `yaml:"debian"`
	RedHat []string `yaml:"redhat"`
	MacOS  []string `yaml:"macos"`
}

// Export is one shell environment directive: the line appended to profile
// files (guarded by the marker substring) and the key/value exported into
// the current process so later steps in the same run observe it.
type Export struct {
	Key    string `yaml:"key"`
	Value  string `yaml:"value"`
	Line   string `yaml:"line"`
	Marker string `yaml:"marker"`
	// PathEntry marks PATH-style exports: Value is appended to the
	// current PATH rather than replacing the variable.
	PathEntry bool `yaml:"path_entry"`
}

// EyeWitness describes the one tool installed by cloning its repository
// and running its bundled setup script instead of `go install`.
type EyeWitness struct {
	Repo string `yaml:"repo"` // clone URL
	Dir  string `yaml:"dir"`  // checkout directory under $HOME
}

// Config is the full provisioning table consumed by the setup steps.
type Config struct {
	Runtime    Runtime    `yaml:"runtime"`
	Packages   Packages   `yaml:"packages"`
	Exports    []Export   `yaml:"exports"`
	Tools      []Tool     `yaml:"tools"`
	EyeWitness EyeWitness `yaml:"eyewitness"`
}

// ExpectedTools returns the binary names the verifier probes for on PATH.
// EyeWitness is verified separately via its entry script.
func (c Config) ExpectedTools() []string {
	names := make([]string, 0, len(c.Tools))
	for _, t := range c.Tools {
		names = append(names, t.Name)
	}
	return names
}
