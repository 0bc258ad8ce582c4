// Package feedback defines the resolved feedback-event model for ngfd.
//
// An Event is a named, fully-resolved bundle of audio, vibration, LED, and
// backlight properties the daemon consults when a notification fires
// (incoming call, SMS, alarm, ...). Events are produced once, by the
// settings resolution pass, and read for the rest of the process lifetime.
//
// # Key Types
//
//   - Event: resolved feedback properties for one named event
//   - Definition: maps a notification category to long/short/meeting events
//   - SoundPath, Volume, VibrationPattern: typed resource references parsed
//     from the settings mini-language
//   - Registry: process-lifetime owner of events, definitions, interned
//     resource references, and global daemon settings
//
// # Thread Safety
//
// The Registry is written by exactly one resolution pass and is read-only
// afterwards; its methods are nevertheless guarded for concurrent readers.
package feedback
