package feedback

// SoundPathType identifies how a sound resource is addressed.
type SoundPathType string

// Sound path addressing modes.
const (
	SoundPathProfile  SoundPathType = "profile"
	SoundPathFilename SoundPathType = "filename"
)

// SoundPath is a typed reference to a playable sound resource.
//
// Profile references name a key inside a device profile; filename
// references carry an already-resolved filesystem path.
type SoundPath struct {
	Type     SoundPathType
	Filename string // SoundPathFilename
	Key      string // SoundPathProfile
	Profile  string // SoundPathProfile; empty means the current profile
}

// Equal reports structural equality, used for reference interning.
func (s *SoundPath) Equal(other *SoundPath) bool {
	if s == nil || other == nil {
		return s == other
	}
	return *s == *other
}

// VolumeType identifies how an event volume is determined.
type VolumeType string

// Volume policies.
const (
	VolumeProfile VolumeType = "profile"
	VolumeFixed   VolumeType = "fixed"
	VolumeLinear  VolumeType = "linear"
)

// Volume is a typed volume policy for an event.
//
// Fixed volumes carry a level; linear volumes additionally carry a
// three-element ramp whose first element mirrors Level; profile volumes
// defer to a profile key.
type Volume struct {
	Type    VolumeType
	Level   int
	Linear  [3]int // VolumeLinear
	Key     string // VolumeProfile
	Profile string // VolumeProfile; empty means the current profile
}

// Equal reports structural equality, used for reference interning.
func (v *Volume) Equal(other *Volume) bool {
	if v == nil || other == nil {
		return v == other
	}
	return *v == *other
}

// VibrationPatternType identifies how a vibration pattern is addressed.
type VibrationPatternType string

// Vibration pattern addressing modes.
const (
	VibrationPatternProfile  VibrationPatternType = "profile"
	VibrationPatternFilename VibrationPatternType = "filename"
	VibrationPatternInternal VibrationPatternType = "internal"
)

// VibrationPattern is a typed reference to a vibration effect.
type VibrationPattern struct {
	Type     VibrationPatternType
	Filename string // VibrationPatternFilename
	Pattern  int    // VibrationPatternInternal
	Key      string // VibrationPatternProfile
	Profile  string // VibrationPatternProfile; empty means the current profile
}

// Equal reports structural equality, used for reference interning.
func (p *VibrationPattern) Equal(other *VibrationPattern) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p == *other
}

// Event is one named, inheritance-resolved feedback descriptor.
//
// All fields are final values: inheritance and schema defaulting have
// already been applied by the settings resolution pass.
type Event struct {
	// General
	MaxTimeout  int
	AllowCustom bool

	// Audio
	AudioEnabled  bool
	Repeat        bool
	NumRepeats    int
	SilentEnabled bool
	EventID       string
	Sounds        []*SoundPath
	Volume        *Volume

	// Tone generator
	ToneGeneratorEnabled bool
	ToneGeneratorPattern int

	// Vibration
	VibrationEnabled bool
	LookupPattern    bool
	Patterns         []*VibrationPattern

	// LED
	LedsEnabled bool
	LedPattern  string

	// Backlight
	BacklightEnabled bool
}

// Definition maps a logical notification category to concrete event names.
// Empty fields mean the category has no event of that length.
type Definition struct {
	Long    string
	Short   string
	Meeting string
}
