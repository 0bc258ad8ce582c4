package keyfile

import "errors"

// Domain errors for the keyfile package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, keyfile.ErrInvalidValue) {
//	    // field present but mistyped; fall back to a default
//	}
var (
	// ErrNoFile is returned when none of the candidate paths could be loaded.
	ErrNoFile = errors.New("keyfile: no loadable configuration file")

	// ErrGroupNotFound is returned when a named group does not exist.
	ErrGroupNotFound = errors.New("keyfile: group not found")

	// ErrKeyNotFound is returned when a key is absent from its group.
	ErrKeyNotFound = errors.New("keyfile: key not found")

	// ErrInvalidValue is returned when a key is present but its raw value
	// does not parse as the requested type.
	ErrInvalidValue = errors.New("keyfile: invalid value")
)
