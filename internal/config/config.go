// Package config loads stint's configuration from a TOML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all runtime settings.
type Config struct {
	// DBPath locates the SQLite state file.
	DBPath string `toml:"db_path"`

	// WeekStart names the first day of the calendar week ("sunday" or
	// "monday"); weekly bucket indices stay Sunday=0 regardless.
	WeekStart string `toml:"week_start"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	Geocoding GeocodingConfig `toml:"geocoding"`
}

// GeocodingConfig controls the optional reverse-geocoding of session
// locations.
type GeocodingConfig struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DBPath:    defaultDBPath(),
		WeekStart: "sunday",
		LogLevel:  "info",
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "stint.db"
	}
	return filepath.Join(home, ".stint", "stint.db")
}

// DefaultPath returns the config file location: $STINT_CONFIG, or
// $XDG_CONFIG_HOME/stint/config.toml, or ~/.config/stint/config.toml.
func DefaultPath() string {
	if p := os.Getenv("STINT_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stint", "config.toml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist, then applies env overrides and validates.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err == nil {
			if err := toml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if db := os.Getenv("STINT_DB"); db != "" {
		cfg.DBPath = db
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if _, err := c.WeekStartDay(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	return nil
}

// WeekStartDay maps the configured week start onto a weekday.
func (c *Config) WeekStartDay() (time.Weekday, error) {
	switch strings.ToLower(c.WeekStart) {
	case "", "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("invalid week_start %q (want sunday or monday)", c.WeekStart)
	}
}
