package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load discovers a config file, merges it with defaults, applies environment
// variable overrides, validates the result, and returns the final config.
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom loads config using the given directory for file discovery. This
// is the testable entry point — Load() calls it with os.Getwd().
func LoadFrom(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := discoverConfigPath(dir)
	if path != "" {
		override, err := loadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		merge(&cfg, override)
	}

	applyEnvOverrides(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigPath searches the discovery chain and returns the first
// config file that exists. Empty string means defaults-only mode.
func discoverConfigPath(dir string) string {
	local := filepath.Join(dir, "treeline.toml")
	if _, err := os.Stat(local); err == nil {
		return local
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	user := filepath.Join(home, ".config", "treeline", "config.toml")
	if _, err := os.Stat(user); err == nil {
		return user
	}

	return ""
}

// loadFromFile reads and unmarshals a TOML config file.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	return &cfg, nil
}

// merge applies override onto base. Scalar fields override when non-zero;
// pointer-to-bool fields override when non-nil.
func merge(base *Config, override *Config) {
	if override.List.ShowFull != nil {
		base.List.ShowFull = override.List.ShowFull
	}
	if override.List.CI != nil {
		base.List.CI = override.List.CI
	}
	if override.UI.Theme != "" {
		base.UI.Theme = override.UI.Theme
	}
}

// applyEnvOverrides applies TREELINE_* environment variables on top of the
// config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TREELINE_SHOW_FULL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.List.ShowFull = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: TREELINE_SHOW_FULL=%q is not a valid boolean, ignoring\n", v)
		}
	}
	if v := os.Getenv("TREELINE_CI"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.List.CI = boolPtr(b)
		} else {
			fmt.Fprintf(os.Stderr, "warning: TREELINE_CI=%q is not a valid boolean, ignoring\n", v)
		}
	}
	if v := os.Getenv("TREELINE_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}
