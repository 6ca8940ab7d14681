package mpd

// Metadata is an ordered multi-valued tag map. Tags may repeat, so every key
// maps to the values in the order the backend reported them. A key that is
// absent is distinct from a key with an empty value list.
//
// The zero value is ready to use.
type Metadata struct {
	keys   []string
	values map[string][]string
}

// NewMetadata builds metadata from alternating key/value pairs.
// A repeated key appends another value.
func NewMetadata(pairs ...string) Metadata {
	var m Metadata
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Add(pairs[i], pairs[i+1])
	}
	return m
}

// Add appends value to key, preserving insertion order.
func (m *Metadata) Add(key, value string) {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append(m.values[key], value)
}

// Set replaces every value of key. Passing no values records the key with an
// empty list.
func (m *Metadata) Set(key string, values ...string) {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = append([]string{}, values...)
}

// Get returns the values of key and whether the key is present.
func (m Metadata) Get(key string) ([]string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Last returns the final value of key.
func (m Metadata) Last(key string) (string, bool) {
	v, ok := m.values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Keys returns the tag names in insertion order.
func (m Metadata) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of distinct tags.
func (m Metadata) Len() int {
	return len(m.keys)
}
