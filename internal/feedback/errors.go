package feedback

import "errors"

// Domain errors for the feedback package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, feedback.ErrEventNotFound) {
//	    // fall back to a default event
//	}
var (
	// ErrEventNotFound is returned when an event name is not registered.
	ErrEventNotFound = errors.New("feedback: event not found")

	// ErrDefinitionNotFound is returned when a definition name is not registered.
	ErrDefinitionNotFound = errors.New("feedback: definition not found")
)
