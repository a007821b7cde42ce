package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
color: never
format: yaml
warnings_as_errors: true
units: [fortnight, fortnights]
watch:
  debounce: 50ms
  extensions: [".rules", ".policy"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.True(t, cfg.WarningsAsErrors)
	assert.Equal(t, []string{"fortnight", "fortnights"}, cfg.Units)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, []string{".rules", ".policy"}, cfg.Watch.Extensions)
}

func TestLoad_MissingDefaultFileReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestLoad_EmptyPathReadsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("format: json\n"), 0o644))
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoad_PartialFileGetsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "format: json\n"))
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	assert.Equal(t, []string{".rules"}, cfg.Watch.Extensions)
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "color: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse configuration file")
}

func TestLoad_InvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, `
color: sometimes
format: xml
units: ["30d", "then", ok_unit]
watch:
  debounce: -1s
  extensions: [rules]
`))
	require.Error(t, err)

	var validationErr ValidationError
	require.True(t, errors.As(err, &validationErr))

	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Equal(t, []string{"color", "format", "units[0]", "units[1]", "watch.debounce", "watch.extensions[0]"}, fields)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, FormatText, cfg.Format)
	assert.False(t, cfg.WarningsAsErrors)
	assert.Empty(t, cfg.Units)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
	assert.NoError(t, Validate(cfg))
}

func TestApplyDefaults_Idempotent(t *testing.T) {
	cfg := &Config{Format: FormatJSON}
	ApplyDefaults(cfg)
	first := *cfg
	ApplyDefaults(cfg)
	assert.Equal(t, first, *cfg)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestUseColor(t *testing.T) {
	assert.True(t, (&Config{Color: ColorAuto}).UseColor(true))
	assert.False(t, (&Config{Color: ColorAuto}).UseColor(false))
	assert.True(t, (&Config{Color: ColorAlways}).UseColor(false))
	assert.False(t, (&Config{Color: ColorNever}).UseColor(true))
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "color: always\n")
	t.Setenv("GAVEL_COLOR", "never")
	t.Setenv("GAVEL_WARNINGS_AS_ERRORS", "true")

	cfg, err := LoadWithEnvOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.True(t, cfg.WarningsAsErrors)

	t.Setenv("GAVEL_FORMAT", "toml")
	_, err = LoadWithEnvOverrides(path)
	assert.Error(t, err)
}

func TestLoadWithEnvOverrides_InvalidBoolean(t *testing.T) {
	path := writeConfig(t, "color: always\n")
	t.Setenv("GAVEL_WARNINGS_AS_ERRORS", "sometimes")

	_, err := LoadWithEnvOverrides(path)
	require.Error(t, err)

	var validationErr ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "GAVEL_WARNINGS_AS_ERRORS", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), `invalid boolean "sometimes"`)
}

func TestValidationError_Error(t *testing.T) {
	single := ValidationError{Errors: []FieldError{{Field: "color", Message: "bad"}}}
	assert.Equal(t, "color: bad", single.Error())

	multi := ValidationError{Errors: []FieldError{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}}
	assert.Equal(t, "2 errors:\n  - a: x\n  - b: y\n", multi.Error())
}
