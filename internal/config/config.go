package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/markview/internal/editor/split"
)

// Config holds all markview settings.
type Config struct {
	Split   SplitConfig   `toml:"split"`
	Preview PreviewConfig `toml:"preview"`
	Rename  RenameConfig  `toml:"rename"`
	Logging LoggingConfig `toml:"logging"`
}

// SplitConfig controls the dual-pane editor.
type SplitConfig struct {
	// Layout is the initial pane arrangement.
	Layout string `toml:"layout"`

	// Ratio is the first pane's share of the screen.
	Ratio float64 `toml:"ratio"`
}

// PreviewConfig controls the rendered preview.
type PreviewConfig struct {
	// Extensions are the markup file extensions the preview accepts.
	Extensions []string `toml:"extensions"`

	// DebounceMS is the file-change debounce in milliseconds.
	DebounceMS int `toml:"debounce_ms"`
}

// RenameConfig controls rename validation.
type RenameConfig struct {
	// ScriptDir holds Lua validator scripts, loaded in name order.
	ScriptDir string `toml:"script_dir"`
}

// LoggingConfig controls the log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log file path; empty logs to stderr.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Split: SplitConfig{
			Layout: string(split.LayoutVertical),
			Ratio:  0.5,
		},
		Preview: PreviewConfig{
			Extensions: []string{".adoc", ".asciidoc", ".ad"},
			DebounceMS: 100,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path, layered over the defaults.
// A missing file returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if !split.Layout(c.Split.Layout).Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLayout, c.Split.Layout)
	}
	if c.Split.Ratio <= 0 || c.Split.Ratio >= 1 {
		return fmt.Errorf("%w: %g", ErrInvalidRatio, c.Split.Ratio)
	}
	if c.Preview.DebounceMS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDebounce, c.Preview.DebounceMS)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return nil
}

// Layout returns the configured initial split layout.
func (c *Config) Layout() split.Layout {
	return split.Layout(c.Split.Layout)
}

// Debounce returns the preview debounce as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Preview.DebounceMS) * time.Millisecond
}

// DefaultPath returns the user configuration file path.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "markview", "config.toml")
}
