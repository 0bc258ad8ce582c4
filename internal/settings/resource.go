package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sailfishos-on-tucana/ngfd/internal/feedback"
)

// Resource-reference mini-language prefixes.
const (
	prefixProfile  = "profile:"
	prefixFilename = "filename:"
	prefixFixed    = "fixed:"
	prefixLinear   = "linear:"
	prefixInternal = "internal:"
)

// parseProfileKey splits a "<key>@<profile>" payload.
//
// An empty key fails the entry. A missing or empty profile part is
// accepted and left empty, meaning the currently active profile.
func parseProfileKey(payload string) (key, profile string, ok bool) {
	key, profile, _ = strings.Cut(payload, "@")
	if key == "" {
		return "", "", false
	}
	return key, profile, true
}

// checkPath resolves a filename payload.
//
// The literal path wins if it exists; otherwise the name is joined with
// the search directory and used only if that exists.
func checkPath(name, searchPath string) (string, bool) {
	if _, err := os.Stat(name); err == nil {
		return name, true
	}

	joined := filepath.Join(searchPath, name)
	if _, err := os.Stat(joined); err == nil {
		return joined, true
	}

	return "", false
}

// parseSoundPath parses one sound entry. Returns nil when the entry fails
// its grammar; the failure is recorded as a diagnostic.
func (r *resolver) parseSoundPath(owner, entry string) *feedback.SoundPath {
	switch {
	case strings.HasPrefix(entry, prefixProfile):
		key, profile, ok := parseProfileKey(strings.TrimPrefix(entry, prefixProfile))
		if !ok {
			r.badReference(owner, "sound", entry, "empty profile key")
			return nil
		}
		return r.reg.AddSoundPath(&feedback.SoundPath{
			Type:    feedback.SoundPathProfile,
			Key:     key,
			Profile: profile,
		})

	case strings.HasPrefix(entry, prefixFilename):
		path, ok := checkPath(strings.TrimPrefix(entry, prefixFilename), r.reg.SoundSearchPath())
		if !ok {
			r.badReference(owner, "sound", entry, "file not found")
			return nil
		}
		return r.reg.AddSoundPath(&feedback.SoundPath{
			Type:     feedback.SoundPathFilename,
			Filename: path,
		})

	default:
		r.badReference(owner, "sound", entry, "unknown prefix")
		return nil
	}
}

// parseSoundPaths parses a multi-valued sound field into an ordered list.
// Entries that fail are dropped; the rest of the field is unaffected.
func (r *resolver) parseSoundPaths(owner, raw string) []*feedback.SoundPath {
	if raw == "" {
		return nil
	}

	var result []*feedback.SoundPath
	for _, entry := range strings.Split(raw, ";") {
		if sp := r.parseSoundPath(owner, entry); sp != nil {
			result = append(result, sp)
		}
	}
	return result
}

// parseVolume parses a volume field.
//
// Volume is single-valued: the ';'-split candidates are walked in order
// and the first one that parses wins. A "linear:" candidate consumes the
// two following segments as the rest of its ramp, since the linear
// payload uses ';' itself. Returns nil when no candidate parses.
func (r *resolver) parseVolume(owner, raw string) *feedback.Volume {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ";")
	for i := 0; i < len(parts); i++ {
		entry := parts[i]

		switch {
		case strings.HasPrefix(entry, prefixProfile):
			key, profile, ok := parseProfileKey(strings.TrimPrefix(entry, prefixProfile))
			if !ok {
				r.badReference(owner, "volume", entry, "empty profile key")
				continue
			}
			return r.reg.AddVolume(&feedback.Volume{
				Type:    feedback.VolumeProfile,
				Key:     key,
				Profile: profile,
			})

		case strings.HasPrefix(entry, prefixFixed):
			level, err := strconv.Atoi(strings.TrimPrefix(entry, prefixFixed))
			if err != nil {
				r.badReference(owner, "volume", entry, "fixed level is not an integer")
				continue
			}
			return r.reg.AddVolume(&feedback.Volume{
				Type:  feedback.VolumeFixed,
				Level: level,
			})

		case strings.HasPrefix(entry, prefixLinear):
			segments := []string{strings.TrimPrefix(entry, prefixLinear)}
			for i+1 < len(parts) && len(segments) < 3 {
				i++
				segments = append(segments, parts[i])
			}
			ramp, ok := parseLinearRamp(segments)
			if !ok {
				r.badReference(owner, "volume", entry, "linear ramp needs three integers")
				continue
			}
			return r.reg.AddVolume(&feedback.Volume{
				Type:   feedback.VolumeLinear,
				Level:  ramp[0],
				Linear: ramp,
			})

		default:
			r.badReference(owner, "volume", entry, "unknown prefix")
		}
	}

	return nil
}

// parseLinearRamp parses three integer segments into a ramp.
func parseLinearRamp(segments []string) ([3]int, bool) {
	if len(segments) < 3 {
		return [3]int{}, false
	}

	var ramp [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(segments[i])
		if err != nil {
			return [3]int{}, false
		}
		ramp[i] = v
	}
	return ramp, true
}

// parsePattern parses one vibration entry. Returns nil when the entry
// fails its grammar.
func (r *resolver) parsePattern(owner, entry string) *feedback.VibrationPattern {
	switch {
	case strings.HasPrefix(entry, prefixProfile):
		key, profile, ok := parseProfileKey(strings.TrimPrefix(entry, prefixProfile))
		if !ok {
			r.badReference(owner, "vibration", entry, "empty profile key")
			return nil
		}
		return r.reg.AddPattern(&feedback.VibrationPattern{
			Type:    feedback.VibrationPatternProfile,
			Key:     key,
			Profile: profile,
		})

	case strings.HasPrefix(entry, prefixFilename):
		path, ok := checkPath(strings.TrimPrefix(entry, prefixFilename), r.reg.PatternSearchPath())
		if !ok {
			r.badReference(owner, "vibration", entry, "file not found")
			return nil
		}
		return r.reg.AddPattern(&feedback.VibrationPattern{
			Type:     feedback.VibrationPatternFilename,
			Filename: path,
		})

	case strings.HasPrefix(entry, prefixInternal):
		id, err := strconv.Atoi(strings.TrimPrefix(entry, prefixInternal))
		if err != nil {
			r.badReference(owner, "vibration", entry, "internal id is not an integer")
			return nil
		}
		return r.reg.AddPattern(&feedback.VibrationPattern{
			Type:    feedback.VibrationPatternInternal,
			Pattern: id,
		})

	default:
		r.badReference(owner, "vibration", entry, "unknown prefix")
		return nil
	}
}

// parsePatterns parses a multi-valued vibration field into an ordered list.
// Entries that fail are dropped; the rest of the field is unaffected.
func (r *resolver) parsePatterns(owner, raw string) []*feedback.VibrationPattern {
	if raw == "" {
		return nil
	}

	var result []*feedback.VibrationPattern
	for _, entry := range strings.Split(raw, ";") {
		if p := r.parsePattern(owner, entry); p != nil {
			result = append(result, p)
		}
	}
	return result
}

// badReference records a dropped resource-reference entry.
func (r *resolver) badReference(owner, field, entry, reason string) {
	r.diags.add(Diagnostic{
		Kind:   DiagMalformedReference,
		Group:  owner,
		Field:  field,
		Detail: fmt.Sprintf("dropped %q: %s", entry, reason),
	})
	r.log.Debug("dropped malformed resource reference",
		"event", owner,
		"field", field,
		"entry", entry,
		"reason", reason,
	)
}
