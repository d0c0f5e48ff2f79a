package value

// Map is an insertion-ordered, text-keyed collection of Values. Unlike a
// plain Go map, iteration order matches insertion order so serialization is
// deterministic.
//
// The zero Map is not ready for use; construct via NewMap.
type Map struct {
	keys    []string
	entries map[string]Value
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Value)}
}

// NewMapFromPairs returns a Map built from key/value pairs in the given
// order. Later duplicate keys overwrite earlier values but do not move the
// key's position.
func NewMapFromPairs(pairs ...Pair) *Map {
	m := NewMap()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Pair is a single key/value entry, used to construct a Map in order.
type Pair struct {
	Key   string
	Value Value
}

// Set inserts or updates the value for key, preserving key's original
// position on update.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Get returns the value for key and whether key is present.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a
// defensive copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	cp := make([]string, len(m.keys))
	copy(cp, m.keys)
	return cp
}

// Pairs returns the entries in insertion order as a defensive copy.
func (m *Map) Pairs() []Pair {
	if m == nil {
		return nil
	}
	pairs := make([]Pair, 0, len(m.keys))
	for _, k := range m.keys {
		pairs = append(pairs, Pair{Key: k, Value: m.entries[k]})
	}
	return pairs
}

// Clone returns a copy of m with its own key list and entry table. Nested
// Map and Record values are not copied: they share their *Map with m.
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap()
	}
	cp := &Map{
		keys:    make([]string, len(m.keys)),
		entries: make(map[string]Value, len(m.entries)),
	}
	copy(cp.keys, m.keys)
	for k, v := range m.entries {
		cp.entries[k] = v
	}
	return cp
}

// Equal reports whether m and other have the same keys mapped to equal
// Values. Key order is not significant for equality.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m.Len() == 0 && other.Len() == 0
	}
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.entries {
		ov, ok := other.entries[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
