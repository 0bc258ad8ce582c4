package settings

import "strings"

// GroupKind classifies a configuration group by its leading type tag.
type GroupKind string

// Recognized group kinds.
const (
	KindGeneral    GroupKind = "general"
	KindVibrator   GroupKind = "vibra"
	KindDefinition GroupKind = "definition"
	KindEvent      GroupKind = "event"
	KindUnknown    GroupKind = ""
)

// GroupID is a parsed group identifier.
//
// The textual form is "<type-tag> <name>[@<parent>]", for example
// "event sms@ringtone". Name is never empty; Parent is empty when the
// group declares no parent.
type GroupID struct {
	Kind   GroupKind
	Name   string
	Parent string
}

// classifyGroup returns the kind of a raw group name by its tag token.
// The tag is everything before the first space; the bare group "general"
// has no space and is matched whole.
func classifyGroup(raw string) GroupKind {
	tag := raw
	if i := strings.IndexByte(raw, ' '); i >= 0 {
		tag = raw[:i]
	}

	switch tag {
	case "general":
		return KindGeneral
	case "vibra":
		return KindVibrator
	case "definition":
		return KindDefinition
	case "event":
		return KindEvent
	default:
		return KindUnknown
	}
}

// ParseGroupID splits a raw group name into its identifier parts.
//
// Everything up to and including the first space is the type tag; the
// remainder splits once on '@' into name and optional parent. Names may
// not contain '@'; there is no escaping. Returns false when no name
// remains after stripping the tag.
//
// A trailing '@' with nothing after it is treated as no parent at all: a
// parent, if present, is never empty.
func ParseGroupID(raw string) (GroupID, bool) {
	i := strings.IndexByte(raw, ' ')
	if i < 0 {
		return GroupID{}, false
	}

	rest := raw[i+1:]
	if rest == "" {
		return GroupID{}, false
	}

	id := GroupID{Kind: classifyGroup(raw)}

	name, parent, found := strings.Cut(rest, "@")
	if name == "" {
		return GroupID{}, false
	}

	id.Name = name
	if found && parent != "" {
		id.Parent = parent
	}
	return id, true
}
