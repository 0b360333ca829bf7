package registry

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/germanamz/provreg/pkg/profile"
)

// Config is the on-disk provider configuration.
type Config struct {
	Providers map[string]profile.Profile `yaml:"providers"`
}

// LoadConfig reads a YAML file and returns a Config. Unspecified profile
// fields take their defaults (wire_api falls back to chat, optional maps
// stay absent).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("registry: load config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("registry: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that every configured profile is usable.
func (c Config) Validate() error {
	for id, p := range c.Providers {
		if p.Name == "" {
			return fmt.Errorf("registry: config: provider %q has no name", id)
		}
		if p.BaseURL == "" {
			return fmt.Errorf("registry: config: provider %q has no base_url", id)
		}
	}

	return nil
}

// Load reads the config at path, validates it, and returns the merged
// registry. A missing file is not an error: the built-ins stand alone.
func Load(path string) (Registry, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return BuiltIns(), nil
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return New(cfg.Providers), nil
}
