package settings

import (
	"fmt"

	"github.com/sailfishos-on-tucana/ngfd/internal/feedback"
	"github.com/sailfishos-on-tucana/ngfd/internal/keyfile"
)

// DefaultPaths is the ordered candidate list for the event settings file.
// The first path that loads wins.
var DefaultPaths = []string{"/etc/ngf/ngf.ini", "./ngf.ini"}

// Loader runs the settings resolution pass.
//
// It owns the Registry exclusively while the pass runs and hands it to
// the caller on completion; there is no global state. A Loader may be
// reused; every Load starts a fresh Registry and diagnostics record.
type Loader struct {
	paths []string
	log   Logger
	diags *Diagnostics
}

// NewLoader creates a loader for the given candidate paths.
// With no paths, DefaultPaths is used.
func NewLoader(paths ...string) *Loader {
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	return &Loader{
		paths: paths,
		log:   noopLogger{},
		diags: &Diagnostics{},
	}
}

// SetLogger sets the logger for the loader.
func (l *Loader) SetLogger(log Logger) {
	if log != nil {
		l.log = log
	}
}

// Diagnostics returns the structured diagnostics of the most recent pass.
func (l *Loader) Diagnostics() *Diagnostics {
	return l.diags
}

// Load resolves the first loadable candidate file into a Registry.
//
// Failure to load any candidate is the only fatal outcome and matches
// ErrNoConfigFile. Per-group and per-field failures are absorbed locally
// and recorded as diagnostics.
func (l *Loader) Load() (*feedback.Registry, error) {
	file, err := keyfile.Load(l.paths...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoConfigFile, err)
	}
	l.log.Info("event settings loaded", "path", file.Path())

	l.diags = &Diagnostics{}

	r := &resolver{
		file:   file,
		reg:    feedback.NewRegistry(),
		diags:  l.diags,
		log:    l.log,
		groups: make(map[string]eventGroup),
		props:  make(map[string]*propList),
		state:  make(map[string]resolveState),
	}

	// General settings first: the resource parsers need the search paths
	// during event materialization.
	r.parseGeneral()
	r.parseDefinitions()
	r.parseEvents()

	l.log.Info("settings resolution complete",
		"events", r.reg.EventCount(),
		"definitions", r.reg.DefinitionCount(),
		"diagnostics", l.diags.Len(),
	)

	// The resolver and its transient index, property sets, and state
	// table are discarded here; only the registry survives the pass.
	return r.reg, nil
}

// parseEvents resolves and materializes every event group.
//
// Resolution order over the index does not matter: resolve memoizes
// completed events, so a shared parent is resolved exactly once no matter
// how many children reach it first.
func (r *resolver) parseEvents() {
	r.indexEventGroups()

	for name := range r.groups {
		r.resolve(name)
	}

	for name, props := range r.props {
		r.materialize(name, props)
	}
}
