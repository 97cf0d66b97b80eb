package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gotri.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, 1e-9, cfg.Solver.Tolerance)
	assert.False(t, cfg.Solver.Lenient)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.Precision)
	assert.Equal(t, "en", cfg.Output.Locale)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
	assert.NoError(t, Validate(cfg))
}

func TestInterpolateEnv(t *testing.T) {
	getenv := func(key string) string {
		if key == "GOTRI_LOCALE" {
			return "de-CH"
		}
		return ""
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple substitution", "locale: ${GOTRI_LOCALE}", "locale: de-CH"},
		{"with default (env set)", "locale: ${GOTRI_LOCALE:-en}", "locale: de-CH"},
		{"with default (env not set)", "format: ${GOTRI_FORMAT:-json}", "format: json"},
		{"unset without default", "path: ${UNSET}", "path: "},
		{"no pattern", "precision: 6", "precision: 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(interpolateEnv([]byte(tt.input), getenv)))
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
solver:
  tolerance: 1e-6
  lenient: true
output:
  format: ${FORMAT:-yaml}
  precision: 2
  locale: de
history:
  enabled: true
  path: data/history.db
watch:
  debounce: 50ms
`)

	cfg, resolved, err := LoadWithPath(path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	assert.Equal(t, 1e-6, cfg.Solver.Tolerance)
	assert.True(t, cfg.Solver.Lenient)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 2, cfg.Output.Precision)
	assert.Equal(t, "de", cfg.Output.Locale)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "data", "history.db"), cfg.History.Path)
	assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output:\n  precision: 8\n"), noEnv)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Output.Precision)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 1e-9, cfg.Solver.Tolerance)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero tolerance", "solver:\n  tolerance: 0\n"},
		{"bad format", "output:\n  format: xml\n"},
		{"negative precision", "output:\n  precision: -1\n"},
		{"bad locale", "output:\n  locale: \"not a locale!\"\n"},
		{"history without path", "history:\n  enabled: true\n  path: \"\"\n"},
		{"negative debounce", "watch:\n  debounce: -1s\n"},
		{"malformed yaml", "solver: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), noEnv)
			assert.Error(t, err)
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := resolveConfigPath("/nonexistent/gotri.yaml", noEnv)
	assert.Error(t, err)

	_, err = resolveConfigPath("", func(key string) string {
		if key == "GOTRI_CONFIG" {
			return "/nonexistent/env.yaml"
		}
		return ""
	})
	assert.Error(t, err)

	path := writeConfig(t, "")
	resolved, err := resolveConfigPath("", func(key string) string {
		if key == "GOTRI_CONFIG" {
			return path
		}
		return ""
	})
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	resolved, err = resolveConfigPath("", noEnv)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := LoadWithPath("", noEnv)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Defaults().Output, cfg.Output)
}
