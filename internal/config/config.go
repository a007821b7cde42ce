// Package config loads .gavel.yaml, the per-project settings shared by the
// gavel CLI and language server.
package config

import "time"

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = ".gavel.yaml"

// Config is the root configuration structure.
type Config struct {
	// Color controls colored output: "auto", "always" or "never".
	Color string `yaml:"color"`

	// Format is the default output format of `gavel parse`: "text", "yaml"
	// or "json".
	Format string `yaml:"format"`

	// WarningsAsErrors reports checker warnings at error level.
	WarningsAsErrors bool `yaml:"warnings_as_errors"`

	// Units are duration units accepted in addition to the built-in ones.
	Units []string `yaml:"units"`

	// Watch configures `gavel watch`.
	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	// Debounce is how long the watcher waits for writes to settle before
	// re-checking a file.
	Debounce time.Duration `yaml:"debounce"`

	// Extensions lists the file extensions that trigger a re-check.
	Extensions []string `yaml:"extensions"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// UseColor resolves the color mode. tty reports whether output goes to a
// terminal and only matters for "auto".
func (c *Config) UseColor(tty bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return tty
	}
}
