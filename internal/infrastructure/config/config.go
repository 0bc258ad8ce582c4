package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the ngfd daemon.
// All configuration is loaded from YAML and can be overridden by
// environment variables.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Settings SettingsConfig `yaml:"settings"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// SettingsConfig locates the event settings key file.
type SettingsConfig struct {
	// Paths is the ordered candidate list for the event settings file.
	// The first path that loads wins.
	Paths []string `yaml:"paths"`
}

// Load reads configuration from a YAML file and applies environment
// variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: NGFD_SECTION_KEY
// For example: NGFD_LOGGING_LEVEL, NGFD_SETTINGS_PATH
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If the file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults. The daemon can run
// entirely on defaults when no config file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Settings: SettingsConfig{
			Paths: []string{"/etc/ngf/ngf.ini", "./ngf.ini"},
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Environment variables follow the pattern: NGFD_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NGFD_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("NGFD_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	// A single path override replaces the whole candidate list.
	if v := os.Getenv("NGFD_SETTINGS_PATH"); v != "" {
		cfg.Settings.Paths = []string{v}
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error", "":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not a known level", c.Logging.Level))
	}

	if len(c.Settings.Paths) == 0 {
		errs = append(errs, "settings.paths must list at least one candidate file")
	}
	for _, p := range c.Settings.Paths {
		if p == "" {
			errs = append(errs, "settings.paths must not contain empty entries")
			break
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
