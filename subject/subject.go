package subject

import (
	"github.com/relateby/pattern-go/value"
)

// Subject is the triple (identity, labels, properties) carried inside a
// Pattern<Subject>. All three fields are independently optional: the zero
// Subject is anonymous, unlabeled, and propertyless, which is legal.
//
// A Subject's identity and labels do not change after construction (Labels
// returns a copy). The property map is held by reference: New keeps the
// map it is given and Properties returns that same map, not a copy. Use
// [Subject.Combine] to derive a merged Subject.
type Subject struct {
	identity   string
	labels     []string
	properties *value.Map
}

// New constructs a Subject. labels are deduplicated preserving first
// occurrence; properties may be nil (treated as empty).
func New(identity string, labels []string, properties *value.Map) Subject {
	return Subject{
		identity:   identity,
		labels:     dedupLabels(labels),
		properties: properties,
	}
}

// Anonymous returns a Subject with no identity, labels, or properties.
func Anonymous() Subject {
	return Subject{}
}

func dedupLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

// Identity returns the subject's identity symbol, or "" if anonymous.
func (s Subject) Identity() string {
	return s.identity
}

// HasIdentity reports whether the subject carries a non-empty identity.
func (s Subject) HasIdentity() bool {
	return s.identity != ""
}

// Labels returns a defensive copy of the label set in insertion order.
func (s Subject) Labels() []string {
	if len(s.labels) == 0 {
		return nil
	}
	cp := make([]string, len(s.labels))
	copy(cp, s.labels)
	return cp
}

// HasLabel reports whether label is present (exact match, case-sensitive).
func (s Subject) HasLabel(label string) bool {
	for _, l := range s.labels {
		if l == label {
			return true
		}
	}
	return false
}

// Properties returns the subject's property map. Returns an empty, non-nil
// Map if the subject has no properties.
func (s Subject) Properties() *value.Map {
	if s.properties == nil {
		return value.NewMap()
	}
	return s.properties
}

// Property returns the value for key and whether key is present.
func (s Subject) Property(key string) (value.Value, bool) {
	return s.Properties().Get(key)
}

// IsAnonymous reports whether the subject has no identity, no labels, and
// no properties.
func (s Subject) IsAnonymous() bool {
	return s.identity == "" && len(s.labels) == 0 && s.Properties().Len() == 0
}

// IsAnonymousWithProperties reports whether the subject has no identity, no
// labels, but does carry properties. This is the shape the gram grammar
// desugars @key(value) annotations into.
func (s Subject) IsAnonymousWithProperties() bool {
	return s.identity == "" && len(s.labels) == 0 && s.Properties().Len() > 0
}

// Equal reports whether s and other have the same identity, the same
// labels in the same order, and equal properties.
func (s Subject) Equal(other Subject) bool {
	if s.identity != other.identity {
		return false
	}
	if len(s.labels) != len(other.labels) {
		return false
	}
	for i := range s.labels {
		if s.labels[i] != other.labels[i] {
			return false
		}
	}
	return s.Properties().Equal(other.Properties())
}
