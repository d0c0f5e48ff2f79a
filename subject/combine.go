package subject

import (
	"github.com/relateby/pattern-go/internal/ident"
	"github.com/relateby/pattern-go/value"
)

// Combine merges s with other: identity prefers s's identity, falling back
// to other's when s is anonymous; labels are unioned after normalizing
// casing (via internal/ident.ToLowerSnake) so "UserAccount" and
// "user_account" merge into a single label, keeping the first-seen
// spelling; properties are merged last-write-wins, with other's values
// overwriting s's on key conflict while preserving s's key order and
// appending other's new keys afterward.
//
// Combine implements the pattern package's Combinable constraint, letting
// Pattern[Subject] use pattern.Combine.
func (s Subject) Combine(other Subject) Subject {
	identity := s.identity
	if identity == "" {
		identity = other.identity
	}

	labels := unionLabels(s.labels, other.labels)
	properties := mergeProperties(s.Properties(), other.Properties())

	return Subject{identity: identity, labels: labels, properties: properties}
}

func unionLabels(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	add := func(labels []string) {
		for _, l := range labels {
			key := ident.ToLowerSnake(l)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, l)
		}
	}
	add(a)
	add(b)
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeProperties(a, b *value.Map) *value.Map {
	merged := a.Clone()
	for _, pair := range b.Pairs() {
		merged.Set(pair.Key, pair.Value)
	}
	return merged
}
