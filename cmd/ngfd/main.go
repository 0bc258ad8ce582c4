// ngfd - non-graphic feedback daemon
//
// This is the main entry point for ngfd. The daemon resolves the event
// settings key file into a registry of typed feedback events (audio,
// vibration, LED, backlight) that downstream playback plugins consume
// when a notification fires.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sailfishos-on-tucana/ngfd/internal/infrastructure/config"
	"github.com/sailfishos-on-tucana/ngfd/internal/infrastructure/logging"
	"github.com/sailfishos-on-tucana/ngfd/internal/settings"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default daemon configuration file path
const defaultConfigPath = "configs/ngfd.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
func run(_ context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting ngfd",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Resolve the event settings into the registry. This is the one
	// fatal step: the daemon cannot operate without a settings file.
	loader := settings.NewLoader(cfg.Settings.Paths...)
	loader.SetLogger(log.With("component", "settings"))

	registry, err := loader.Load()
	if err != nil {
		return fmt.Errorf("resolving event settings: %w", err)
	}

	for _, diag := range loader.Diagnostics().All() {
		log.Debug("settings diagnostic",
			"kind", string(diag.Kind),
			"group", diag.Group,
			"field", diag.Field,
			"detail", diag.Detail,
		)
	}

	log.Info("feedback registry ready",
		"events", registry.EventCount(),
		"definitions", registry.DefinitionCount(),
		"plugins", registry.RequiredPlugins(),
	)

	return nil
}

// loadConfig loads the daemon configuration.
//
// The config file is optional: if neither NGFD_CONFIG nor the default
// path points at a readable file, the daemon runs on built-in defaults
// (env overrides still apply through config.Load when a file exists).
func loadConfig() (*config.Config, error) {
	path := getConfigPath()
	if _, err := os.Stat(path); err != nil {
		if os.Getenv("NGFD_CONFIG") != "" {
			// An explicitly requested config file must exist.
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return config.Default(), nil
	}
	return config.Load(path)
}

// getConfigPath returns the configuration file path.
// Uses NGFD_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("NGFD_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
