// Package config provides the application configuration model.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/amitbaghel07/SortingVisualizer/internal/domain/algorithm"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/execution"
	"github.com/amitbaghel07/SortingVisualizer/internal/domain/sequence"
)

// ErrInvalidConfiguration is returned when configuration is invalid.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds the startup defaults for the visualizer. All values can still
// be changed at runtime through the UI controls.
type Config struct {
	// WindowWidth and WindowHeight size the main window.
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	// DefaultAlgorithm is the algorithm preselected at startup.
	DefaultAlgorithm string `yaml:"default_algorithm"`

	// DefaultSize is the initial sequence length.
	DefaultSize int `yaml:"default_size"`

	// DefaultDelayMs is the initial step delay in milliseconds.
	DefaultDelayMs int `yaml:"default_delay_ms"`

	// LogDir is where dated log files are written.
	LogDir string `yaml:"log_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		WindowWidth:      900,
		WindowHeight:     600,
		DefaultAlgorithm: "bubble",
		DefaultSize:      80,
		DefaultDelayMs:   40,
		LogDir:           "./data/logs",
	}
}

// Load reads a YAML config file, layered over the defaults. A missing file
// is not an error; it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfiguration, c.WindowWidth, c.WindowHeight)
	}
	if _, err := algorithm.Get(c.DefaultAlgorithm); err != nil {
		return fmt.Errorf("%w: default algorithm %q", ErrInvalidConfiguration, c.DefaultAlgorithm)
	}
	if c.DefaultSize < sequence.MinLength || c.DefaultSize > sequence.MaxLength {
		return fmt.Errorf("%w: default size %d not in [%d, %d]",
			ErrInvalidConfiguration, c.DefaultSize, sequence.MinLength, sequence.MaxLength)
	}
	if c.DefaultDelayMs < execution.MinDelayMs || c.DefaultDelayMs > execution.MaxDelayMs {
		return fmt.Errorf("%w: default delay %dms not in [%d, %d]",
			ErrInvalidConfiguration, c.DefaultDelayMs, execution.MinDelayMs, execution.MaxDelayMs)
	}
	if c.LogDir == "" {
		return fmt.Errorf("%w: log dir is required", ErrInvalidConfiguration)
	}
	return nil
}
