package settings

import "github.com/sailfishos-on-tucana/ngfd/internal/feedback"

// parseDefinitions scans every group tagged as a definition and registers
// a Definition per group. Definitions are flat: no inheritance, no
// defaults, and a parent suffix on the identifier is ignored.
func (r *resolver) parseDefinitions() {
	for _, raw := range r.file.Groups() {
		if classifyGroup(raw) != KindDefinition {
			continue
		}

		id, ok := ParseGroupID(raw)
		if !ok {
			r.diags.add(Diagnostic{
				Kind:   DiagMalformedIdentifier,
				Group:  raw,
				Detail: "no definition name after type tag",
			})
			r.log.Debug("skipping malformed definition group", "group", raw)
			continue
		}

		def := &feedback.Definition{}
		def.Long, _ = r.file.String(raw, "long")
		def.Short, _ = r.file.String(raw, "short")
		def.Meeting, _ = r.file.String(raw, "meeting")

		r.reg.PutDefinition(id.Name, def)
		r.log.Debug("new definition",
			"name", id.Name,
			"long", def.Long,
			"short", def.Short,
			"meeting", def.Meeting,
		)
	}
}
