// Package config handles ember's TOML configuration and XDG paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level ember configuration.
type Config struct {
	User     UserConfig  `toml:"user"`
	Calendar CalConfig   `toml:"calendar"`
	Defaults RulesConfig `toml:"defaults"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// CalConfig pins the reference timezone: the single zone in which calendar
// days are interpreted, so a late-night log doesn't land on the wrong day
// when travelling.
type CalConfig struct {
	Timezone string `toml:"timezone"` // IANA name, or "Local"
}

// RulesConfig is the rule set applied to newly created activity types.
type RulesConfig struct {
	GraceDays    int  `toml:"grace_days"`
	WeekendGrace bool `toml:"weekend_grace"`
}

// Location resolves the configured reference timezone.
func (c CalConfig) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Paths holds the resolved XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	StateDir   string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	emberConfig := filepath.Join(configDir, "ember")
	emberData := filepath.Join(dataDir, "ember")

	return Paths{
		ConfigDir:  emberConfig,
		DataDir:    emberData,
		StateDir:   filepath.Join(stateDir, "ember"),
		ConfigFile: filepath.Join(emberConfig, "config.toml"),
		DBFile:     filepath.Join(emberData, "ember.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir, p.StateDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := &Config{}

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if ember has been set up.
func Initialized() bool {
	_, err := os.Stat(GetPaths().ConfigFile)
	return err == nil
}

func defaultConfig() *Config {
	return &Config{
		Calendar: CalConfig{Timezone: "Local"},
		Defaults: RulesConfig{GraceDays: 0, WeekendGrace: false},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
