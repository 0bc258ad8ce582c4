// Package keyfile loads the ngfd event-settings configuration source.
//
// The source is an ini-style key file: an ordered collection of named
// groups, each mapping field names to raw string/integer/boolean values.
// Group names are free-form and may contain spaces and '@' (for example
// "event ringtone@fallback"), which is how the settings engine encodes
// event inheritance.
//
// The lookup contract distinguishes three outcomes per field read:
//
//   - the value, when present and well-typed
//   - an error matching ErrInvalidValue, when present but mistyped
//   - an error matching ErrKeyNotFound (or ErrGroupNotFound), when absent
//
// Callers use errors.Is to tell recoverable type mismatches apart from
// plain absence; the settings resolver bases its defaulting policy on
// exactly this distinction.
package keyfile
