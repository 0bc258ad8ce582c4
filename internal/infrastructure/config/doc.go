// Package config handles loading and validating the ngfd daemon configuration.
//
// This is the daemon's own configuration (logging, where to look for the
// event settings file), not the event settings themselves; those live in
// an ini-style key file resolved by internal/settings.
//
// This package manages:
//   - Loading configuration from a YAML file
//   - Overriding with environment variables (NGFD_*)
//   - Validation of required fields
//   - Default value handling
//
// Performance Characteristics:
//   - Configuration is loaded once at startup
//   - No runtime overhead after initial load
//
// Usage:
//
//	cfg, err := config.Load("configs/ngfd.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Settings.Paths)
package config
