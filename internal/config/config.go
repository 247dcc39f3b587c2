package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for bytesift. Fields
// are pointers so CLI flags can tell "unset" from zero.
type FileConfig struct {
	Include         *string  `yaml:"include"`
	Exclude         *string  `yaml:"exclude"`
	MaxBytes        *int64   `yaml:"max_bytes"`
	SampleBytes     *int     `yaml:"sample_bytes"`
	MinConfidence   *float64 `yaml:"min_confidence"`
	Enable          *string  `yaml:"enable"`
	Disable         *string  `yaml:"disable"`
	Threads         *int     `yaml:"threads"`
	NoColor         *bool    `yaml:"no_color"`
	DefaultExcludes *bool    `yaml:"default_excludes"`
	FailFast        *bool    `yaml:"fail_fast"`
	Incremental     *bool    `yaml:"incremental"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .bytesift.yml/.yaml and bytesift.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".bytesift.yml", ".bytesift.yaml", "bytesift.yml", "bytesift.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "bytesift", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
