package settings

import (
	"errors"
	"fmt"

	"github.com/sailfishos-on-tucana/ngfd/internal/feedback"
	"github.com/sailfishos-on-tucana/ngfd/internal/keyfile"
)

// resolveState tracks per-event resolution progress for memoization and
// cycle detection.
type resolveState int

const (
	stateUnvisited resolveState = iota
	stateInProgress
	stateDone
)

// eventGroup ties an event name to its raw group (for key file lookups)
// and parsed identifier.
type eventGroup struct {
	raw string
	id  GroupID
}

// resolver holds the transient state of one resolution pass. It is built
// by the Loader, used for a single pass, and discarded.
type resolver struct {
	file  *keyfile.File
	reg   *feedback.Registry
	diags *Diagnostics
	log   Logger

	groups map[string]eventGroup // event name → group
	props  map[string]*propList  // resolved property sets
	state  map[string]resolveState
}

// indexEventGroups builds the transient name→group index from every group
// tagged as an event. Groups whose identifier fails to parse are skipped
// with a diagnostic.
func (r *resolver) indexEventGroups() {
	for _, raw := range r.file.Groups() {
		if classifyGroup(raw) != KindEvent {
			continue
		}

		id, ok := ParseGroupID(raw)
		if !ok {
			r.diags.add(Diagnostic{
				Kind:   DiagMalformedIdentifier,
				Group:  raw,
				Detail: "no event name after type tag",
			})
			r.log.Debug("skipping malformed event group", "group", raw)
			continue
		}

		r.groups[id.Name] = eventGroup{raw: raw, id: id}
	}
}

// resolve returns the merged property set for an event name, resolving
// the parent chain depth-first with memoization.
//
// Returns nil for names with no matching group (the caller decides
// whether that is worth a diagnostic) and for cycle re-entries, which are
// always recorded here.
func (r *resolver) resolve(name string) *propList {
	switch r.state[name] {
	case stateDone:
		return r.props[name]
	case stateInProgress:
		r.diags.add(Diagnostic{
			Kind:   DiagCyclicInheritance,
			Group:  name,
			Detail: "inheritance chain loops back onto " + name,
		})
		r.log.Warn("cyclic event inheritance, severing cycle", "event", name)
		return nil
	}

	group, ok := r.groups[name]
	if !ok {
		return nil
	}

	r.state[name] = stateInProgress

	// Resolve the parent first. An unresolvable parent (missing group or
	// cycle) degrades this event to base-event defaulting; no synthetic
	// values are injected for the dead link.
	var parentProps *propList
	if parent := group.id.Parent; parent != "" {
		if _, exists := r.groups[parent]; !exists {
			r.diags.add(Diagnostic{
				Kind:   DiagUnresolvedParent,
				Group:  name,
				Detail: fmt.Sprintf("parent %q has no event group", parent),
			})
			r.log.Debug("event parent not found", "event", name, "parent", parent)
		} else {
			parentProps = r.resolve(parent)
		}
	}

	props := r.readFields(group.raw, parentProps == nil)

	if parentProps != nil {
		merged := parentProps.clone()
		merged.merge(props)
		props = merged
	}

	r.props[name] = props
	r.state[name] = stateDone
	return props
}

// readFields scans the event schema and reads each field from the group.
//
// Base events substitute the schema default for missing or mistyped
// fields; derived events omit them so the parent's value survives the
// merge. A mistyped field is always recorded, whichever policy applies.
func (r *resolver) readFields(group string, isBase bool) *propList {
	props := newPropList()

	for _, field := range eventFields {
		var (
			value propValue
			err   error
		)

		switch field.kind {
		case kindString:
			var v string
			v, err = r.file.String(group, field.key)
			if err != nil {
				v = field.defStr
			}
			value = stringValue(v)
		case kindInt:
			var v int
			v, err = r.file.Int(group, field.key)
			if err != nil {
				v = field.defInt
			}
			value = intValue(v)
		case kindBool:
			var v bool
			v, err = r.file.Bool(group, field.key)
			if err != nil {
				v = field.defBool
			}
			value = boolValue(v)
		}

		if err != nil {
			if errors.Is(err, keyfile.ErrInvalidValue) {
				r.diags.add(Diagnostic{
					Kind:   DiagTypeMismatch,
					Group:  group,
					Field:  field.key,
					Detail: err.Error(),
				})
				r.log.Warn("invalid value for event property, using default",
					"group", group,
					"property", field.key,
				)
			}
			if !isBase {
				continue
			}
		}

		props.set(field.key, value)
	}

	return props
}
