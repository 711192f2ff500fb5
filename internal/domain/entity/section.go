package entity

// Section is one named [Name] block of the configuration text: an ordered
// key/value mapping plus the line its header appeared on.
type Section struct {
	Name       string
	Fields     Fields
	SourceLine int
}

// Fields is an insertion-ordered string map. Re-assigning an existing key
// overwrites the value but keeps the key's original position. Each key also
// remembers the source line of its last assignment, so a classifier can
// report where an offending value came from.
type Fields struct {
	keys   []string
	values map[string]string
	lines  map[string]int
}

// NewFields cria um mapa de campos vazio.
func NewFields() Fields {
	return Fields{values: make(map[string]string), lines: make(map[string]int)}
}

// Set assigns a value to a key, preserving first-seen key order.
func (f *Fields) Set(key, value string) {
	f.SetAt(key, value, 0)
}

// SetAt assigns a value to a key and records the source line it came from.
func (f *Fields) SetAt(key, value string, line int) {
	if f.values == nil {
		f.values = make(map[string]string)
		f.lines = make(map[string]int)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
	f.lines[key] = line
}

// Line returns the source line of the key's last assignment, or zero.
func (f *Fields) Line(key string) int {
	return f.lines[key]
}

// Get returns the value for a key, or the empty string.
func (f *Fields) Get(key string) string {
	return f.values[key]
}

// Has reports whether the key was assigned.
func (f *Fields) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (f *Fields) Keys() []string {
	return f.keys
}

// Len returns the number of keys.
func (f *Fields) Len() int {
	return len(f.keys)
}
