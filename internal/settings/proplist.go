package settings

// propValue is a schema-tagged field value: exactly one of string, int, or
// bool, per the field's schema kind.
type propValue struct {
	kind fieldKind
	s    string
	i    int
	b    bool
}

func stringValue(v string) propValue { return propValue{kind: kindString, s: v} }
func intValue(v int) propValue       { return propValue{kind: kindInt, i: v} }
func boolValue(v bool) propValue     { return propValue{kind: kindBool, b: v} }

// propList is an ordered mapping from field key to value.
//
// It is built per event during resolution and discarded after
// materialization. Insertion order is preserved; overwriting a key keeps
// its original position.
type propList struct {
	keys   []string
	values map[string]propValue
}

func newPropList() *propList {
	return &propList{values: make(map[string]propValue)}
}

// set inserts or replaces a value.
func (p *propList) set(key string, v propValue) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// has reports whether a key is present.
func (p *propList) has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// length returns the number of keys present.
func (p *propList) length() int {
	return len(p.keys)
}

// clone returns an independent copy.
func (p *propList) clone() *propList {
	cpy := newPropList()
	cpy.keys = make([]string, len(p.keys))
	copy(cpy.keys, p.keys)
	for k, v := range p.values {
		cpy.values[k] = v
	}
	return cpy
}

// merge overlays other onto p: values present in other replace values in
// p, keys only in p are kept.
func (p *propList) merge(other *propList) {
	for _, key := range other.keys {
		p.set(key, other.values[key])
	}
}

// stringAt returns the string value for key, or "" when absent or not a
// string.
func (p *propList) stringAt(key string) string {
	v, ok := p.values[key]
	if !ok || v.kind != kindString {
		return ""
	}
	return v.s
}

// intAt returns the integer value for key, or 0 when absent or not an
// integer.
func (p *propList) intAt(key string) int {
	v, ok := p.values[key]
	if !ok || v.kind != kindInt {
		return 0
	}
	return v.i
}

// boolAt returns the boolean value for key, or false when absent or not a
// boolean.
func (p *propList) boolAt(key string) bool {
	v, ok := p.values[key]
	if !ok || v.kind != kindBool {
		return false
	}
	return v.b
}
