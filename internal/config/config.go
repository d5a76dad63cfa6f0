// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hy4ri/timeline-tui/internal/timeline"
)

const appDirName = "timeline-tui"

// Config represents the application configuration.
type Config struct {
	UI UIConfig `yaml:"ui"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	DefaultSort  string `yaml:"default_sort"`  // "start", "end" or "status"
	DefaultColor string `yaml:"default_color"` // palette tag or name, e.g. "blue"

	// CellWidthPx is the assumed width of one terminal column in pixels, used
	// to map the terminal width onto the hour-label breakpoints.
	CellWidthPx int `yaml:"cell_width_px"`

	// Notifications enables desktop reminders when a task's start time arrives.
	Notifications bool `yaml:"notifications"`

	LogFile  string `yaml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn, error
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			DefaultSort:   string(timeline.SortByStart),
			DefaultColor:  string(timeline.ColorBlue),
			CellWidthPx:   8,
			Notifications: true,
			LogLevel:      "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appDirName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Template is the commented config file written by --init. Every value in it
// matches DefaultConfig.
const Template = `# Timeline TUI Configuration
# Location: ~/.config/timeline-tui/config.yaml

ui:
  # Initial sort order: start, end or status (default: start)
  default_sort: start

  # Color for new tasks: blue, green, purple, yellow, pink, red or cyan,
  # or the full tag such as bg-blue-500 (default: blue)
  default_color: bg-blue-500

  # Pixels per terminal column, used to pick how many hour labels fit.
  # Raise it for wide fonts, lower it for narrow ones (default: 8)
  cell_width_px: 8

  # Desktop reminder when a task's start time arrives (default: true)
  notifications: true

  # Log file and level: debug, info, warn or error
  # log_file: ~/.config/timeline-tui/timeline.log
  log_level: info
`

// WriteTemplate writes the commented template to path, readable only by the
// owner.
func WriteTemplate(path string) error {
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the values that have a fixed set of choices.
func (c *Config) Validate() error {
	if _, err := timeline.ParseSortKey(c.UI.DefaultSort); err != nil {
		return fmt.Errorf("ui.default_sort: %w", err)
	}
	if _, err := timeline.ParseColor(c.UI.DefaultColor); err != nil {
		return fmt.Errorf("ui.default_color: %w", err)
	}
	if c.UI.CellWidthPx <= 0 {
		return fmt.Errorf("ui.cell_width_px must be positive, got %d", c.UI.CellWidthPx)
	}
	return nil
}

// SortKey returns the configured initial sort key.
func (c *Config) SortKey() timeline.SortKey {
	key, err := timeline.ParseSortKey(c.UI.DefaultSort)
	if err != nil {
		return timeline.SortByStart
	}
	return key
}

// Color returns the configured default color for new tasks.
func (c *Config) Color() timeline.Color {
	color, err := timeline.ParseColor(c.UI.DefaultColor)
	if err != nil {
		return timeline.ColorBlue
	}
	return color
}

// LogPath returns the log file location, defaulting to timeline.log in the
// config directory. A leading ~ stands for the home directory.
func (c *Config) LogPath() (string, error) {
	if p := c.UI.LogFile; p != "" {
		if p != "~" && !strings.HasPrefix(p, "~/") {
			return p, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", p, err)
		}
		return filepath.Join(home, strings.TrimPrefix(p[1:], "/")), nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "timeline.log"), nil
}
