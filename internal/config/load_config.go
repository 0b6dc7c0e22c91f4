package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load returns the provisioning configuration. With an empty path it
// returns the built-in defaults; otherwise the YAML file at path is
// unmarshalled on top of the defaults, so a partial file overrides only
// the sections it names.
func Load(path string) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	cfg := Default(home)

	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config %s: %w", path, err)
	}
	return cfg, nil
}
