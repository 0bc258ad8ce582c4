// Package settings resolves the ngfd event configuration into a
// feedback.Registry.
//
// The configuration source is a key file whose group names encode both a
// type and an inheritance link: "event sms@ringtone" declares the event
// "sms" inheriting every property it does not set itself from "ringtone".
// Sound, volume, and vibration fields carry a small prefixed mini-language
// ("profile:ringtone@general", "filename:ring.wav", "fixed:80", ...)
// parsed into typed resource references.
//
// Architecture:
//
//	Loader (settings.go)
//	  ├── keyfile.Load        pick first loadable candidate path
//	  ├── parseGeneral        plugins, search paths, timing, system volume
//	  ├── parseDefinitions    "definition" groups → feedback.Definition
//	  └── parseEvents         "event" groups:
//	        1. index group names → identifiers (identifier.go)
//	        2. resolve each property set depth-first with memoization
//	           and cycle detection (resolver.go)
//	        3. materialize property sets into feedback.Event records,
//	           parsing resource references (resource.go, materialize.go)
//
// # Defaulting policy
//
// A base event (no parent) receives the schema default for every field it
// does not set or sets with the wrong type. A derived event omits such
// fields instead, so the parent's resolved value shows through after the
// overlay merge. This asymmetry is what makes inheritance meaningful.
//
// # Error policy
//
// Only a missing configuration source is fatal. Every other failure
// (mistyped fields, malformed identifiers or references, unresolved parents,
// inheritance cycles) is absorbed locally and recorded as a structured
// Diagnostic, so the daemon stays operable with partially valid
// configuration and tests can assert on the absorption paths.
package settings
