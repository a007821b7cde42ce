package config

import (
	"fmt"
	"strings"

	"gavel/internal/parser"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "watch.debounce").
	Field string

	// Message is a human-readable error message.
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every FieldError found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate returns a ValidationError if any field is invalid, nil otherwise.
func Validate(cfg *Config) error {
	var errs []FieldError

	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	if !validColors[cfg.Color] {
		errs = append(errs, FieldError{
			Field:   "color",
			Message: fmt.Sprintf("invalid color mode %q: must be 'auto', 'always' or 'never'", cfg.Color),
		})
	}

	validFormats := map[string]bool{FormatText: true, FormatYAML: true, FormatJSON: true}
	if !validFormats[cfg.Format] {
		errs = append(errs, FieldError{
			Field:   "format",
			Message: fmt.Sprintf("invalid format %q: must be 'text', 'yaml' or 'json'", cfg.Format),
		})
	}

	for i, unit := range cfg.Units {
		if !isUnitName(unit) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("units[%d]", i),
				Message: fmt.Sprintf("invalid unit %q: must be an identifier", unit),
			})
		}
	}

	errs = append(errs, validateWatch(&cfg.Watch)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateWatch(cfg *WatchConfig) []FieldError {
	var errs []FieldError

	if cfg.Debounce < 0 {
		errs = append(errs, FieldError{
			Field:   "watch.debounce",
			Message: "debounce must not be negative",
		})
	}

	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("watch.extensions[%d]", i),
				Message: fmt.Sprintf("invalid extension %q: must start with '.'", ext),
			})
		}
	}

	return errs
}

// isUnitName reports whether unit lexes as a single identifier, so that it
// can actually appear after a number in rule source.
func isUnitName(unit string) bool {
	tokens, err := parser.Lex(unit)
	return err == nil && len(tokens) == 1 && tokens[0].Type == parser.IDENTIFIER
}
