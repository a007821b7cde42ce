package config

import "time"

const (
	DefaultColor    = ColorAuto
	DefaultFormat   = FormatText
	DefaultDebounce = 200 * time.Millisecond
)

// DefaultExtensions are the file extensions watched by default.
var DefaultExtensions = []string{".rules"}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields. Values already set are kept.
func ApplyDefaults(cfg *Config) {
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = append([]string{}, DefaultExtensions...)
	}
}
