package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sailfishos-on-tucana/ngfd/internal/feedback"
)

func TestLoader_NoConfigFile(t *testing.T) {
	loader := NewLoader("/nonexistent/a.ini", "/nonexistent/b.ini")
	_, err := loader.Load()
	if !errors.Is(err, ErrNoConfigFile) {
		t.Errorf("Load() error = %v, want ErrNoConfigFile", err)
	}
}

func TestLoader_CandidateOrder(t *testing.T) {
	path := writeSettings(t, "[event beep]\n")

	loader := NewLoader("/nonexistent/ngf.ini", path)
	reg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.EventCount() != 1 {
		t.Errorf("EventCount() = %d, want 1", reg.EventCount())
	}
}

func TestLoader_FullResolutionPass(t *testing.T) {
	soundDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(soundDir, "ring.wav"), []byte("riff"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	content := fmt.Sprintf(`
[general]
plugins = dbus pulseaudio vibrator
sound_search_path = %s
vibration_search_path = /usr/share/ngfd/vibra
buffer_time = 500
latency_time = 100
system_volume = 100;80;60

[definition ringtone]
long = ringtone
short = ringtone_short

[event ringtone]
max_timeout = 120000
audio_enabled = true
audio_repeat = true
sound = filename:ring.wav;profile:ringtone@general
volume = profile:ringtone@general
vibration_enabled = true
vibration = internal:0
led_enabled = true
led_pattern = PatternIncomingCall

[event ringtone_short@ringtone]
max_timeout = 30000
audio_repeat = false

[event sms]
audio_enabled = true
sound = profile:ringtone@general
volume = fixed:80
`, soundDir)

	loader := NewLoader(writeSettings(t, content))
	reg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Global settings.
	if got := reg.RequiredPlugins(); !reflect.DeepEqual(got, []string{"dbus", "pulseaudio", "vibrator"}) {
		t.Errorf("RequiredPlugins() = %v", got)
	}
	if reg.SoundSearchPath() != soundDir {
		t.Errorf("SoundSearchPath() = %q, want %q", reg.SoundSearchPath(), soundDir)
	}
	if reg.PatternSearchPath() != "/usr/share/ngfd/vibra" {
		t.Errorf("PatternSearchPath() = %q", reg.PatternSearchPath())
	}
	if buf, lat := reg.AudioTiming(); buf != 500 || lat != 100 {
		t.Errorf("AudioTiming() = (%d, %d), want (500, 100)", buf, lat)
	}
	if vol := reg.SystemVolume(); vol != [3]int{100, 80, 60} {
		t.Errorf("SystemVolume() = %v", vol)
	}

	// Definitions.
	if reg.DefinitionCount() != 1 {
		t.Fatalf("DefinitionCount() = %d, want 1", reg.DefinitionCount())
	}
	def, err := reg.Definition("ringtone")
	if err != nil {
		t.Fatalf("Definition() error = %v", err)
	}
	if def.Long != "ringtone" || def.Short != "ringtone_short" || def.Meeting != "" {
		t.Errorf("Definition = %+v", def)
	}

	// Base event.
	ringtone, err := reg.Event("ringtone")
	if err != nil {
		t.Fatalf("Event(ringtone) error = %v", err)
	}
	if !ringtone.AudioEnabled || !ringtone.Repeat || ringtone.MaxTimeout != 120000 {
		t.Errorf("ringtone = %+v, want audio on, repeat on, timeout 120000", ringtone)
	}
	if len(ringtone.Sounds) != 2 {
		t.Fatalf("ringtone has %d sounds, want 2", len(ringtone.Sounds))
	}
	if want := filepath.Join(soundDir, "ring.wav"); ringtone.Sounds[0].Filename != want {
		t.Errorf("ringtone.Sounds[0].Filename = %q, want %q", ringtone.Sounds[0].Filename, want)
	}
	if ringtone.Volume == nil || ringtone.Volume.Type != feedback.VolumeProfile {
		t.Errorf("ringtone.Volume = %+v, want profile volume", ringtone.Volume)
	}
	if len(ringtone.Patterns) != 1 || ringtone.Patterns[0].Type != feedback.VibrationPatternInternal {
		t.Errorf("ringtone.Patterns = %+v, want one internal pattern", ringtone.Patterns)
	}
	if !ringtone.LedsEnabled || ringtone.LedPattern != "PatternIncomingCall" {
		t.Errorf("ringtone LED = (%v, %q)", ringtone.LedsEnabled, ringtone.LedPattern)
	}
	if ringtone.ToneGeneratorPattern != -1 {
		t.Errorf("ringtone.ToneGeneratorPattern = %d, want default -1", ringtone.ToneGeneratorPattern)
	}

	// Derived event: overrides apply, everything else inherits.
	short, err := reg.Event("ringtone_short")
	if err != nil {
		t.Fatalf("Event(ringtone_short) error = %v", err)
	}
	if short.MaxTimeout != 30000 {
		t.Errorf("short.MaxTimeout = %d, want 30000", short.MaxTimeout)
	}
	if short.Repeat {
		t.Error("short.Repeat = true, want its own false")
	}
	if !short.AudioEnabled || !short.VibrationEnabled {
		t.Error("short did not inherit audio/vibration enablement")
	}
	if len(short.Sounds) != 2 {
		t.Errorf("short has %d sounds, want 2 inherited", len(short.Sounds))
	}

	// Interning: the shared "profile:ringtone@general" sound string maps
	// to one canonical instance across events.
	sms, err := reg.Event("sms")
	if err != nil {
		t.Fatalf("Event(sms) error = %v", err)
	}
	if len(sms.Sounds) != 1 {
		t.Fatalf("sms has %d sounds, want 1", len(sms.Sounds))
	}
	if sms.Sounds[0] != ringtone.Sounds[1] {
		t.Error("shared profile sound reference was not interned across events")
	}
	if sms.Volume == nil || sms.Volume.Type != feedback.VolumeFixed || sms.Volume.Level != 80 {
		t.Errorf("sms.Volume = %+v, want fixed 80", sms.Volume)
	}

	if reg.EventCount() != 3 {
		t.Errorf("EventCount() = %d, want 3", reg.EventCount())
	}
	if loader.Diagnostics().Len() != 0 {
		t.Errorf("clean fixture produced diagnostics: %+v", loader.Diagnostics().All())
	}
}

func TestLoader_DiagnosticsAreExposed(t *testing.T) {
	content := `
[event base]
max_timeout = abc

[event child@ghost]

[event a@b]
[event b@a]
`
	loader := NewLoader(writeSettings(t, content))
	reg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Nothing is fatal: every event still materializes.
	if reg.EventCount() != 4 {
		t.Errorf("EventCount() = %d, want 4", reg.EventCount())
	}

	diags := loader.Diagnostics()
	if got := len(diags.ByKind(DiagTypeMismatch)); got != 1 {
		t.Errorf("type-mismatch diagnostics = %d, want 1", got)
	}
	if got := len(diags.ByKind(DiagUnresolvedParent)); got != 1 {
		t.Errorf("unresolved-parent diagnostics = %d, want 1", got)
	}
	if got := len(diags.ByKind(DiagCyclicInheritance)); got != 1 {
		t.Errorf("cyclic-inheritance diagnostics = %d, want 1", got)
	}
}

func TestLoader_VibratorGroupsAreIgnored(t *testing.T) {
	content := `
[vibra strong]
magnitude = 100

[event beep]
`
	loader := NewLoader(writeSettings(t, content))
	reg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.EventCount() != 1 {
		t.Errorf("EventCount() = %d, want 1 (vibra group is not an event)", reg.EventCount())
	}
	if _, err := reg.Event("strong"); !errors.Is(err, feedback.ErrEventNotFound) {
		t.Errorf("vibra group leaked into the event table: %v", err)
	}
}

func TestLoader_NameCollisionLastGroupWins(t *testing.T) {
	// Two groups declaring the same event name: the later group replaces
	// the earlier one in the index before resolution starts.
	content := `
[event beep]
max_timeout = 1000

[event beep@]
max_timeout = 2000
`
	loader := NewLoader(writeSettings(t, content))
	reg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	beep, err := reg.Event("beep")
	if err != nil {
		t.Fatalf("Event(beep) error = %v", err)
	}
	if beep.MaxTimeout != 2000 {
		t.Errorf("beep.MaxTimeout = %d, want 2000 from the later group", beep.MaxTimeout)
	}
}
