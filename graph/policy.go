package graph

import (
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

// ReconciliationPolicy decides what happens when two patterns added to a
// PatternGraph carry the same non-empty identity.
type ReconciliationPolicy uint8

const (
	// LastWriteWins replaces the indexed pattern with the new one, pushing
	// the previous occupant into the identity's conflict list.
	LastWriteWins ReconciliationPolicy = iota
	// FirstWriteWins keeps whichever pattern is already indexed, pushing
	// the new one into the identity's conflict list.
	FirstWriteWins
	// Strict keeps the current occupant and records the new one as a
	// conflict for later inspection; it never aborts construction.
	Strict
	// Merge combines both patterns field by field instead of picking one.
	Merge
)

// mergeSubjects combines two subjects sharing an identity: labels union,
// properties merge last-write-wins per key.
func mergeSubjects(current, incoming subject.Subject) subject.Subject {
	labelSet := make(map[string]struct{}, len(current.Labels())+len(incoming.Labels()))
	labels := make([]string, 0, len(current.Labels())+len(incoming.Labels()))
	for _, l := range current.Labels() {
		if _, seen := labelSet[l]; !seen {
			labelSet[l] = struct{}{}
			labels = append(labels, l)
		}
	}
	for _, l := range incoming.Labels() {
		if _, seen := labelSet[l]; !seen {
			labelSet[l] = struct{}{}
			labels = append(labels, l)
		}
	}

	props := value.NewMap()
	if current.Properties() != nil {
		for _, p := range current.Properties().Pairs() {
			props.Set(p.Key, p.Value)
		}
	}
	if incoming.Properties() != nil {
		for _, p := range incoming.Properties().Pairs() {
			props.Set(p.Key, p.Value)
		}
	}

	return subject.New(current.Identity(), labels, props)
}

// mergeElements concatenates two element lists and drops duplicates that
// are structurally equal to an element already kept, preserving the first
// occurrence's position.
func mergeElements(current, incoming []pat) []pat {
	combined := make([]pat, 0, len(current)+len(incoming))
	combined = append(combined, current...)
	for _, e := range incoming {
		dup := false
		for _, kept := range combined {
			if kept.Matches(e, subject.Subject.Equal) {
				dup = true
				break
			}
		}
		if !dup {
			combined = append(combined, e)
		}
	}
	return combined
}
