package settings

import "errors"

// Domain errors for the settings package.
var (
	// ErrNoConfigFile is returned by Loader.Load when none of the candidate
	// configuration paths could be loaded. This is the only fatal outcome
	// of a resolution pass.
	ErrNoConfigFile = errors.New("settings: no configuration file found")
)
