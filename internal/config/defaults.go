package config

import "path/filepath"

// Default returns the built-in provisioning tables. They are the complete
// working configuration; a --config YAML file only overrides them.
// home is the current user's home directory, used to anchor the Go
// workspace, the alias bin directory, and the EyeWitness checkout.
func Default(home string) Config {
	gopath := filepath.Join(home, "go")
	gobin := filepath.Join(gopath, "bin")
	localBin := filepath.Join(home, ".local", "bin")

	return Config{
		Runtime: Runtime{
			MinMajor: 1,
			MinMinor: 21,
			Pin:      "1.22.3",
		},
		Packages: Packages{
			Debian: []string{
				"build-essential", "libssl-dev", "libffi-dev",
				"python3", "python3-pip",
				"git", "curl", "wget", "nmap",
			},
			RedHat: []string{
				"gcc", "make", "openssl-devel", "libffi-devel",
				"python3", "python3-pip",
				"git", "curl", "wget", "nmap",
			},
			MacOS: []string{
				"python3", "git", "wget", "nmap",
			},
		},
		Exports: []Export{
			{
				Key:    "GOPATH",
				Value:  gopath,
				Line:   "export GOPATH=$HOME/go",
				Marker: "GOPATH=$HOME/go",
			},
			{
				Key:       "PATH",
				Value:     "/usr/local/go/bin",
				Line:      "export PATH=$PATH:/usr/local/go/bin",
				Marker:    "/usr/local/go/bin",
				PathEntry: true,
			},
			{
				Key:       "PATH",
				Value:     gobin,
				Line:      "export PATH=$PATH:$GOPATH/bin",
				Marker:    "$GOPATH/bin",
				PathEntry: true,
			},
			{
				Key:       "PATH",
				Value:     localBin,
				Line:      "export PATH=$PATH:$HOME/.local/bin",
				Marker:    "$HOME/.local/bin",
				PathEntry: true,
			},
		},
		Tools: []Tool{
			{Name: "subfinder", Source: "github.com/projectdiscovery/subfinder/v2/cmd/subfinder", Version: "v2.6.6"},
			{Name: "httpx", Source: "github.com/projectdiscovery/httpx/cmd/httpx", Version: "v1.6.5"},
			{Name: "nuclei", Source: "github.com/projectdiscovery/nuclei/v3/cmd/nuclei", Version: "v3.2.9"},
			{Name: "ffuf", Source: "github.com/ffuf/ffuf/v2", Version: "v2.1.0"},
			{Name: "assetfinder", Source: "github.com/tomnomnom/assetfinder"},
			{Name: "waybackurls", Source: "github.com/tomnomnom/waybackurls"},
		},
		EyeWitness: EyeWitness{
			Repo: "https://github.com/RedSiege/EyeWitness.git",
			Dir:  filepath.Join(home, "EyeWitness"),
		},
	}
}
