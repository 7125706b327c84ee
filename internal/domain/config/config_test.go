// Package config provides unit tests for configuration loading.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault tests that the built-in configuration is valid.
func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "bubble", cfg.DefaultAlgorithm)
	assert.Equal(t, 80, cfg.DefaultSize)
}

// TestLoad_MissingFile tests that a missing file yields the defaults.
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoad_EmptyPath tests that no path yields the defaults.
func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

// TestLoad_Overrides tests layering a partial file over the defaults.
func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	data := "default_algorithm: quick\ndefault_size: 120\ndefault_delay_ms: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "quick", cfg.DefaultAlgorithm)
	assert.Equal(t, 120, cfg.DefaultSize)
	assert.Equal(t, 5, cfg.DefaultDelayMs)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().WindowWidth, cfg.WindowWidth)
	assert.Equal(t, Default().LogDir, cfg.LogDir)
}

// TestLoad_Invalid tests rejection of bad files.
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown algorithm", "default_algorithm: bogo\n"},
		{"size too small", "default_size: 5\n"},
		{"size too large", "default_size: 301\n"},
		{"delay too small", "default_delay_ms: 0\n"},
		{"delay too large", "default_delay_ms: 202\n"},
		{"zero window", "window_width: 0\n"},
		{"empty log dir", "log_dir: \"\"\n"},
		{"not yaml", "{{{\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sortviz.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

// TestValidate tests the validator directly on a mutated default.
func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DefaultAlgorithm = "merge"
	assert.NoError(t, cfg.Validate())

	cfg.WindowHeight = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfiguration)
}
