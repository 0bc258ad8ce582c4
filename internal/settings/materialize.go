package settings

import "github.com/sailfishos-on-tucana/ngfd/internal/feedback"

// materialize projects a merged property set into a typed event record
// and registers it. The sound, volume, and vibration fields go through
// the resource-reference parsers; everything else is a direct projection.
func (r *resolver) materialize(name string, props *propList) {
	event := &feedback.Event{
		MaxTimeout:  props.intAt("max_timeout"),
		AllowCustom: props.boolAt("allow_custom"),

		AudioEnabled:  props.boolAt("audio_enabled"),
		Repeat:        props.boolAt("audio_repeat"),
		NumRepeats:    props.intAt("audio_max_repeats"),
		SilentEnabled: props.boolAt("silent_enabled"),
		EventID:       props.stringAt("event_id"),

		ToneGeneratorEnabled: props.boolAt("audio_tonegen_enabled"),
		ToneGeneratorPattern: props.intAt("audio_tonegen_pattern"),

		VibrationEnabled: props.boolAt("vibration_enabled"),
		LookupPattern:    props.boolAt("lookup_pattern"),

		LedsEnabled: props.boolAt("led_enabled"),
		LedPattern:  props.stringAt("led_pattern"),

		BacklightEnabled: props.boolAt("backlight_enabled"),
	}

	event.Sounds = r.parseSoundPaths(name, props.stringAt("sound"))
	event.Volume = r.parseVolume(name, props.stringAt("volume"))
	event.Patterns = r.parsePatterns(name, props.stringAt("vibration"))

	r.reg.PutEvent(name, event)
	r.log.Debug("new event",
		"name", name,
		"sounds", len(event.Sounds),
		"patterns", len(event.Patterns),
	)
}
