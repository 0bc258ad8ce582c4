package settings

import (
	"strconv"
	"strings"
)

// generalGroup is the bare group carrying daemon-wide settings. Unlike
// event and definition groups it has no name suffix.
const generalGroup = "general"

// parseGeneral reads the [general] group into the registry: the required
// plugin list, the two resource search paths, audio timing, and the
// system volume vector. Every field is optional.
func (r *resolver) parseGeneral() {
	if !r.file.HasGroup(generalGroup) {
		return
	}

	if plugins, err := r.file.String(generalGroup, "plugins"); err == nil && plugins != "" {
		r.reg.SetRequiredPlugins(strings.Fields(plugins))
	}

	sound, _ := r.file.String(generalGroup, "sound_search_path")
	pattern, _ := r.file.String(generalGroup, "vibration_search_path")
	r.reg.SetSearchPaths(sound, pattern)

	bufferTime, _ := r.file.Int(generalGroup, "buffer_time")
	latencyTime, _ := r.file.Int(generalGroup, "latency_time")
	r.reg.SetAudioTiming(bufferTime, latencyTime)

	if raw, err := r.file.String(generalGroup, "system_volume"); err == nil && raw != "" {
		if volume, ok := parseSystemVolume(raw); ok {
			r.reg.SetSystemVolume(volume)
		} else {
			r.diags.add(Diagnostic{
				Kind:   DiagTypeMismatch,
				Group:  generalGroup,
				Field:  "system_volume",
				Detail: "expected three ';'-separated integers, got " + strconv.Quote(raw),
			})
			r.log.Warn("invalid system_volume, ignoring", "value", raw)
		}
	}
}

// parseSystemVolume parses "<int>;<int>;<int>". Extra elements are
// ignored; fewer than three, or a non-integer, fails the whole value.
func parseSystemVolume(raw string) ([3]int, bool) {
	parts := strings.Split(raw, ";")
	if len(parts) < 3 {
		return [3]int{}, false
	}

	var volume [3]int
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(parts[i])
		if err != nil {
			return [3]int{}, false
		}
		volume[i] = v
	}
	return volume, true
}
