package settings

// DiagnosticKind identifies an absorbed configuration failure.
type DiagnosticKind string

// Diagnostic kinds, one per absorption path in the resolution pass.
const (
	// DiagTypeMismatch: a field's raw value does not match its schema type;
	// the schema default (base events) or omission (derived events) was
	// substituted.
	DiagTypeMismatch DiagnosticKind = "type_mismatch"

	// DiagMalformedIdentifier: a group name failed identifier parsing and
	// the group was skipped.
	DiagMalformedIdentifier DiagnosticKind = "malformed_identifier"

	// DiagMalformedReference: a resource-reference entry failed its grammar
	// and was dropped from its field.
	DiagMalformedReference DiagnosticKind = "malformed_reference"

	// DiagUnresolvedParent: a declared parent has no matching event group;
	// the event was resolved with base-event defaulting instead.
	DiagUnresolvedParent DiagnosticKind = "unresolved_parent"

	// DiagCyclicInheritance: an event's parent chain loops back onto an
	// event still being resolved; the cycle edge was severed.
	DiagCyclicInheritance DiagnosticKind = "cyclic_inheritance"
)

// Diagnostic is one structured record of an absorbed failure. Diagnostics
// never affect control flow; they exist so callers and tests can observe
// every best-effort recovery the pass made.
type Diagnostic struct {
	Kind   DiagnosticKind
	Group  string // raw group name or event name the failure belongs to
	Field  string // field key, when the failure is field-scoped
	Detail string // human-readable description
}

// Diagnostics collects the ordered diagnostics of one resolution pass.
type Diagnostics struct {
	entries []Diagnostic
}

// add appends a diagnostic.
func (d *Diagnostics) add(diag Diagnostic) {
	d.entries = append(d.entries, diag)
}

// All returns every recorded diagnostic in emission order.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, len(d.entries))
	copy(out, d.entries)
	return out
}

// ByKind returns the recorded diagnostics of one kind, in emission order.
func (d *Diagnostics) ByKind(kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, e := range d.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of recorded diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}
