package settings

// fieldKind is the expected type of a schema field.
type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
	kindBool
)

// fieldSpec describes one recognized event field: its key, expected type,
// and the default applied to base events when the field is missing or
// mistyped.
type fieldSpec struct {
	kind    fieldKind
	key     string
	defInt  int
	defBool bool
	defStr  string
}

// eventFields is the closed schema of event group fields. Resolution scans
// it in order, so resolved property sets keep this ordering.
var eventFields = []fieldSpec{
	// general
	{kind: kindInt, key: "max_timeout"},
	{kind: kindBool, key: "allow_custom"},
	{kind: kindInt, key: "dummy"},

	// sound
	{kind: kindBool, key: "audio_enabled"},
	{kind: kindBool, key: "audio_repeat"},
	{kind: kindInt, key: "audio_max_repeats"},
	{kind: kindString, key: "sound"},
	{kind: kindBool, key: "silent_enabled"},
	{kind: kindString, key: "volume"},
	{kind: kindString, key: "event_id"},

	// tone generator
	{kind: kindBool, key: "audio_tonegen_enabled"},
	{kind: kindInt, key: "audio_tonegen_pattern", defInt: -1},

	// vibration
	{kind: kindBool, key: "vibration_enabled"},
	{kind: kindBool, key: "lookup_pattern"},
	{kind: kindString, key: "vibration"},

	// led
	{kind: kindBool, key: "led_enabled"},
	{kind: kindString, key: "led_pattern"},

	// backlight
	{kind: kindBool, key: "backlight_enabled"},
}
