package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"rangepick/internal/presets"
)

// CurrentVersion is the config schema version written by Save
const CurrentVersion = 1

// ErrUnsupportedVersion is returned for config files from a newer schema
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	UISettings UISettings     `toml:"ui"`
	Log        LogSettings    `toml:"log"`
	Presets    []presets.Spec `toml:"presets"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	WeekStart        string `toml:"week_start"`         // "sunday" or "monday"
	CarryYearOnWrap  bool   `toml:"carry_year_on_wrap"` // December -> January moves to the next year
	ShowWeekendCount bool   `toml:"show_weekend_count"`
}

// LogSettings controls the log file
type LogSettings struct {
	File string `toml:"file"` // empty disables logging
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "rangepick", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service backed by a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted tables keep sensible values
	cfg := DefaultConfig()
	cfg.Presets = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values that cannot be expressed in the TOML types
func (c *Config) Validate() error {
	switch {
	case c.Version == 0:
		// Hand-written files often omit it
		c.Version = CurrentVersion
	case c.Version > CurrentVersion:
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	if _, err := c.UISettings.WeekStartDay(); err != nil {
		return err
	}
	return nil
}

// PresetSpecs returns the configured presets, or the built-in ones when none are configured
func (c *Config) PresetSpecs() []presets.Spec {
	if len(c.Presets) == 0 {
		return presets.DefaultSpecs()
	}
	return c.Presets
}

// WeekStartDay returns the first column of the month grid
func (u UISettings) WeekStartDay() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(u.WeekStart)) {
	case "", "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	}
	return time.Sunday, fmt.Errorf("week_start must be sunday or monday, got %q", u.WeekStart)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		UISettings: UISettings{
			WeekStart:        "sunday",
			ShowWeekendCount: true,
		},
		Log: LogSettings{
			File: "rangepick.log",
		},
		Presets: presets.DefaultSpecs(),
	}
}
