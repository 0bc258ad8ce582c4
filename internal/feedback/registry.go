package feedback

import "sync"

// Registry owns everything the resolution pass produces: the event and
// definition tables, the interned resource-reference pools, and the global
// settings read from the [general] group.
//
// The settings loader is the only writer; once it returns, the Registry is
// effectively immutable. Methods are still guarded so downstream consumers
// may read from multiple goroutines.
type Registry struct {
	mu sync.RWMutex

	events      map[string]*Event
	definitions map[string]*Definition

	soundPaths []*SoundPath
	volumes    []*Volume
	patterns   []*VibrationPattern

	// Global settings from the [general] group.
	requiredPlugins   []string
	soundSearchPath   string
	patternSearchPath string
	audioBufferTime   int
	audioLatencyTime  int
	systemVolume      [3]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		events:      make(map[string]*Event),
		definitions: make(map[string]*Definition),
	}
}

// PutEvent registers a resolved event under its name.
// A previously registered event with the same name is replaced.
func (r *Registry) PutEvent(name string, event *Event) {
	if name == "" || event == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[name] = event
}

// Event retrieves a resolved event by name.
func (r *Registry) Event(name string) (*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	event, ok := r.events[name]
	if !ok {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// EventNames returns the names of all registered events in no particular order.
func (r *Registry) EventNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.events))
	for name := range r.events {
		names = append(names, name)
	}
	return names
}

// EventCount returns the number of registered events.
func (r *Registry) EventCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// PutDefinition registers a definition under its name.
// A previously registered definition with the same name is replaced.
func (r *Registry) PutDefinition(name string, def *Definition) {
	if name == "" || def == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[name] = def
}

// Definition retrieves a definition by name.
func (r *Registry) Definition(name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.definitions[name]
	if !ok {
		return nil, ErrDefinitionNotFound
	}
	return def, nil
}

// DefinitionCount returns the number of registered definitions.
func (r *Registry) DefinitionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.definitions)
}

// AddSoundPath interns a sound path reference.
//
// If a structurally equal reference is already registered, the canonical
// instance is returned and the argument discarded; events specifying
// identical resource strings end up sharing one instance. Interning is an
// optimization only; a non-shared copy behaves identically.
func (r *Registry) AddSoundPath(sp *SoundPath) *SoundPath {
	if sp == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.soundPaths {
		if existing.Equal(sp) {
			return existing
		}
	}
	r.soundPaths = append(r.soundPaths, sp)
	return sp
}

// AddVolume interns a volume reference. See AddSoundPath.
func (r *Registry) AddVolume(v *Volume) *Volume {
	if v == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.volumes {
		if existing.Equal(v) {
			return existing
		}
	}
	r.volumes = append(r.volumes, v)
	return v
}

// AddPattern interns a vibration pattern reference. See AddSoundPath.
func (r *Registry) AddPattern(p *VibrationPattern) *VibrationPattern {
	if p == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.patterns {
		if existing.Equal(p) {
			return existing
		}
	}
	r.patterns = append(r.patterns, p)
	return p
}

// SoundPathCount returns the number of interned sound path references.
func (r *Registry) SoundPathCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.soundPaths)
}

// VolumeCount returns the number of interned volume references.
func (r *Registry) VolumeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.volumes)
}

// PatternCount returns the number of interned vibration pattern references.
func (r *Registry) PatternCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patterns)
}

// SetRequiredPlugins records the plugins the daemon must load.
func (r *Registry) SetRequiredPlugins(plugins []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requiredPlugins = plugins
}

// RequiredPlugins returns the plugins the daemon must load.
func (r *Registry) RequiredPlugins() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.requiredPlugins
}

// SetSearchPaths records the sound and vibration pattern search directories.
func (r *Registry) SetSearchPaths(sound, pattern string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.soundSearchPath = sound
	r.patternSearchPath = pattern
}

// SoundSearchPath returns the directory searched for relative sound files.
func (r *Registry) SoundSearchPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.soundSearchPath
}

// PatternSearchPath returns the directory searched for relative vibration
// pattern files.
func (r *Registry) PatternSearchPath() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.patternSearchPath
}

// SetAudioTiming records the audio buffer and latency times.
func (r *Registry) SetAudioTiming(bufferTime, latencyTime int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audioBufferTime = bufferTime
	r.audioLatencyTime = latencyTime
}

// AudioTiming returns the audio buffer and latency times.
func (r *Registry) AudioTiming() (bufferTime, latencyTime int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.audioBufferTime, r.audioLatencyTime
}

// SetSystemVolume records the three-element system volume vector.
func (r *Registry) SetSystemVolume(volume [3]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.systemVolume = volume
}

// SystemVolume returns the three-element system volume vector.
func (r *Registry) SystemVolume() [3]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.systemVolume
}
