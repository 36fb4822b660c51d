package config

import (
	"os"
	"path/filepath"

	"github.com/Iron-Ham/factors/internal/logging"
	"github.com/spf13/viper"
)

// Zero policies control what happens when 0 appears as a candidate divisor.
const (
	ZeroPolicyError = "error"
	ZeroPolicySkip  = "skip"
)

// Config represents the complete factors configuration
type Config struct {
	Factor  FactorConfig  `mapstructure:"factor" yaml:"factor"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// FactorConfig controls the factor computation
type FactorConfig struct {
	// ZeroPolicy is "error" (fail on a zero candidate divisor) or "skip"
	// (ignore zero candidates). Default: "error".
	ZeroPolicy string `mapstructure:"zero_policy" yaml:"zero_policy"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled turns on JSON debug logging (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is one of debug, info, warn, error (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is where factors.log is written. Empty means LogDir().
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the log size that triggers rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated files kept (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated log files (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Factor: FactorConfig{
			ZeroPolicy: ZeroPolicyError,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "", // Empty means use LogDir()
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
	}
}

// Rotation converts the logging settings into a logging.RotationConfig.
func (c *LoggingConfig) Rotation() logging.RotationConfig {
	return logging.RotationConfig{
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}

// ResolveDir returns the directory log files are written to.
func (c *LoggingConfig) ResolveDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return LogDir()
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("factor.zero_policy", defaults.Factor.ZeroPolicy)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "factors")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".factors"
	}
	return filepath.Join(home, ".config", "factors")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// LogDir returns the default directory for log files
func LogDir() string {
	return filepath.Join(ConfigDir(), "logs")
}
