// Package config loads tool configuration from a YAML or JSON file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = ".ebuildkit.yaml"

// Config holds the tool-wide settings.
type Config struct {
	// Targets are the implementation tokens new declarations should cover.
	Targets []string `yaml:"targets" json:"targets"`
	// Checks enabled for scan; empty means all.
	Checks []string `yaml:"checks" json:"checks"`
	// StableDays before a ~arch-only version is flagged for stabilization.
	StableDays int `yaml:"stable_days" json:"stable_days"`
	// EclassIndex is the mirror used to refresh the deprecation database.
	EclassIndex string `yaml:"eclass_index" json:"eclass_index"`
	// Workers is the scan worker pool size.
	Workers int `yaml:"workers" json:"workers"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Targets:    []string{"python3_11", "python3_12", "python3_13"},
		StableDays: 30,
		Workers:    4,
	}
}

// Load reads a config file, decoding JSON for .json paths and YAML
// otherwise, and fills unset fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	def := Default()
	if len(cfg.Targets) == 0 {
		cfg.Targets = def.Targets
	}
	if cfg.StableDays <= 0 {
		cfg.StableDays = def.StableDays
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	return cfg, nil
}

// LoadOrDefault loads path when it exists, otherwise returns Default.
// An empty path means the default file in the working directory.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
		if _, err := os.Stat(path); err != nil {
			return Default(), nil
		}
	}
	return Load(path)
}

// CheckEnabled reports whether a check name is selected.
func (c *Config) CheckEnabled(name string) bool {
	if len(c.Checks) == 0 {
		return true
	}
	for _, n := range c.Checks {
		if n == name {
			return true
		}
	}
	return false
}
