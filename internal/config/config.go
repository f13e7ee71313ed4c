// Package config loads and saves budgy's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all budgy configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GeneralConfig holds entry defaults.
type GeneralConfig struct {
	DefaultKind string `toml:"default_kind"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LoggingConfig controls where and how verbosely budgy logs.
// The TUI owns stdout, so logs only go to File; an empty File disables logging.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultKind: "inc",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
// BUDGY_CONFIG_DIR takes precedence when set.
func Dir() string {
	if dir := os.Getenv("BUDGY_CONFIG_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgy")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budgy")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LoadEnv reads a .env file from the working directory into the process
// environment, if one exists. Variables already set are not overwritten.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top of whatever was read.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// LoadOrDefault loads config, returning defaults on error so callers can
// always start even if the file is corrupted.
func LoadOrDefault() Config {
	cfg, err := Load()
	if err != nil {
		cfg = DefaultConfig()
		applyEnv(&cfg)
	}
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BUDGY_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("BUDGY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("BUDGY_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	return f.Close()
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
