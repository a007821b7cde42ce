package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration at path, applies defaults and validates it.
// An empty path means DefaultFileName in the working directory, and only that
// file may be missing, in which case the defaults are returned.
func Load(path string) (*Config, error) {
	optional := path == ""
	if optional {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if optional && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes YAML configuration. name is used in error messages.
func Parse(data []byte, name string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", name, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnvOverrides loads path and then applies GAVEL_COLOR, GAVEL_FORMAT
// and GAVEL_WARNINGS_AS_ERRORS from the environment.
func LoadWithEnvOverrides(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("GAVEL_COLOR"); val != "" {
		cfg.Color = val
	}
	if val := os.Getenv("GAVEL_FORMAT"); val != "" {
		cfg.Format = val
	}
	if val := os.Getenv("GAVEL_WARNINGS_AS_ERRORS"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return ValidationError{Errors: []FieldError{{
				Field:   "GAVEL_WARNINGS_AS_ERRORS",
				Message: fmt.Sprintf("invalid boolean %q", val),
			}}}
		}
		cfg.WarningsAsErrors = b
	}
	return nil
}
