// Package config provides configuration types and defaults for habitual.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for habitual.
type Config struct {
	DBPath       string        `yaml:"db_path" mapstructure:"db_path"`
	TickInterval time.Duration `yaml:"tick_interval" mapstructure:"tick_interval"`
	LogLevel     string        `yaml:"log_level" mapstructure:"log_level"`
	LogRotation  LogRotation   `yaml:"log_rotation" mapstructure:"log_rotation"`
	Timer        TimerConfig   `yaml:"timer" mapstructure:"timer"`
}

// TimerConfig holds defaults applied when a habit leaves a value unset.
type TimerConfig struct {
	DefaultTargetMin int `yaml:"default_target_min" mapstructure:"default_target_min"`
	DefaultPointsHr  int `yaml:"default_points_hr" mapstructure:"default_points_hr"`
}

// LogRotation holds settings for the TUI debug log file
// (lumberjack-based automatic rotation).
type LogRotation struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DBPath:       "", // resolved lazily against the home directory
		TickInterval: 250 * time.Millisecond,
		LogLevel:     "info",
		LogRotation: LogRotation{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Timer: TimerConfig{
			DefaultTargetMin: 0,
			DefaultPointsHr:  0,
		},
	}
}

// Load reads configuration with the following precedence (later overrides
// earlier):
//  1. Default() values
//  2. ~/.config/habitual/config.yaml
//  3. Environment variables (HABITUAL_*)
//
// A missing config file is silently ignored.
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("tick_interval", cfg.TickInterval)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_rotation.max_size_mb", cfg.LogRotation.MaxSizeMB)
	v.SetDefault("log_rotation.max_backups", cfg.LogRotation.MaxBackups)
	v.SetDefault("log_rotation.max_age_days", cfg.LogRotation.MaxAgeDays)
	v.SetDefault("log_rotation.compress", cfg.LogRotation.Compress)
	v.SetDefault("timer.default_target_min", cfg.Timer.DefaultTargetMin)
	v.SetDefault("timer.default_points_hr", cfg.Timer.DefaultPointsHr)

	if path := globalConfigPath(); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("HABITUAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// HABITUAL_DB predates the viper config and still wins.
	if env := os.Getenv("HABITUAL_DB"); env != "" {
		cfg.DBPath = env
	}

	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 250 * time.Millisecond
	}

	return cfg, nil
}

// ResolveDBPath returns the configured database path, defaulting to
// ~/.habitual/habitual.db when unset.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".habitual", "habitual.db"), nil
}

// LogDir returns the directory where the debug log is written.
func (c *Config) LogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".habitual")
}

// globalConfigPath returns the config file path if it exists.
func globalConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	path := filepath.Join(configDir, "habitual", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
