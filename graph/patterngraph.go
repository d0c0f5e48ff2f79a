package graph

import (
	"fmt"
	"sort"

	"github.com/relateby/pattern-go/diag"
)

// Classifier computes a GraphClass for a pattern. It is the pluggable half
// of FromPatterns; pass [Classify] for the default rule set, or a function
// built on [ClassifyWith] to attach a custom Other payload.
type Classifier[Extra any] func(pat) GraphClass[Extra]

// Conflict records a pattern rejected or shadowed during reconciliation.
// Kept is the pattern that ended up indexed under the identity; Rejected
// is the one the policy did not keep.
type Conflict[Extra any] struct {
	ID         string
	Kept       pat
	Rejected   pat
	Diagnostic diag.Issue
}

type classifiedElement[Extra any] struct {
	pattern pat
	class   GraphClass[Extra]
}

// PatternGraph indexes a batch of patterns by class and, for patterns that
// carry an identity, by that identity. Construct with [FromPatterns].
type PatternGraph[Extra any] struct {
	elements  []classifiedElement[Extra]
	byID      map[string]int
	conflicts map[string][]Conflict[Extra]
	policy    ReconciliationPolicy
	size      int
}

// FromPatterns classifies each pattern with classifier and inserts it into
// the graph, applying policy whenever two patterns share a non-empty
// identity.
func FromPatterns[Extra any](classifier Classifier[Extra], policy ReconciliationPolicy, patterns []pat) *PatternGraph[Extra] {
	g := &PatternGraph[Extra]{
		byID:      make(map[string]int),
		conflicts: make(map[string][]Conflict[Extra]),
		policy:    policy,
	}
	for _, p := range patterns {
		g.insert(classifier(p), p)
	}
	return g
}

func (g *PatternGraph[Extra]) insert(class GraphClass[Extra], p pat) {
	id := p.Value().Identity()
	if id == "" {
		g.elements = append(g.elements, classifiedElement[Extra]{pattern: p, class: class})
		g.size++
		return
	}

	idx, exists := g.byID[id]
	if !exists {
		g.byID[id] = len(g.elements)
		g.elements = append(g.elements, classifiedElement[Extra]{pattern: p, class: class})
		g.size++
		return
	}

	current := g.elements[idx].pattern
	switch g.policy {
	case LastWriteWins:
		g.recordConflict(id, p, current)
		g.elements[idx] = classifiedElement[Extra]{pattern: p, class: class}
	case FirstWriteWins:
		g.recordConflict(id, current, p)
	case Strict:
		g.recordConflict(id, current, p)
	case Merge:
		merged := mergeSubjects(current.Value(), p.Value())
		mergedElements := mergeElements(current.Elements(), p.Elements())
		g.elements[idx] = classifiedElement[Extra]{
			pattern: newPattern(merged, mergedElements),
			class:   class,
		}
	}
}

func (g *PatternGraph[Extra]) recordConflict(id string, kept, rejected pat) {
	issue := diag.NewIssue(diag.Error, diag.E_DUPLICATE_IDENTITY,
		fmt.Sprintf("identity %q already indexed in this graph", id)).
		WithDetail("identity", id).
		Build()
	g.conflicts[id] = append(g.conflicts[id], Conflict[Extra]{
		ID:         id,
		Kept:       kept,
		Rejected:   rejected,
		Diagnostic: issue,
	})
}

// Size returns the number of patterns held in the graph. A pattern that
// replaces, is merged into, or is rejected in favour of one already indexed
// under the same identity does not add to it.
func (g *PatternGraph[Extra]) Size() int {
	return g.size
}

// Conflicts returns the conflict records for identity, or nil if none were
// recorded.
func (g *PatternGraph[Extra]) Conflicts(id string) []Conflict[Extra] {
	return g.conflicts[id]
}

// AllConflicts returns every recorded conflict across all identities, in no
// particular order.
func (g *PatternGraph[Extra]) AllConflicts() []Conflict[Extra] {
	var all []Conflict[Extra]
	for _, cs := range g.conflicts {
		all = append(all, cs...)
	}
	return all
}

func (g *PatternGraph[Extra]) byKind(kind ClassKind) []pat {
	var out []pat
	for _, e := range g.elements {
		if e.class.Kind == kind {
			out = append(out, e.pattern)
		}
	}
	return out
}

// Nodes returns every pattern classified as ClassNode, in insertion order.
func (g *PatternGraph[Extra]) Nodes() []pat { return g.byKind(ClassNode) }

// Relationships returns every pattern classified as ClassRelationship, in
// insertion order.
func (g *PatternGraph[Extra]) Relationships() []pat { return g.byKind(ClassRelationship) }

// Walks returns every pattern classified as ClassWalk, in insertion order.
func (g *PatternGraph[Extra]) Walks() []pat { return g.byKind(ClassWalk) }

// Annotations returns every pattern classified as ClassAnnotation, in
// insertion order.
func (g *PatternGraph[Extra]) Annotations() []pat { return g.byKind(ClassAnnotation) }

// Others returns every pattern classified as ClassOther, in insertion
// order.
func (g *PatternGraph[Extra]) Others() []pat { return g.byKind(ClassOther) }

// ClassifiedPattern pairs a pattern with the GraphClass it was classified
// as, including any Other payload.
type ClassifiedPattern[Extra any] struct {
	Class   GraphClass[Extra]
	Pattern pat
}

func (g *PatternGraph[Extra]) byKindClassified(kind ClassKind) []ClassifiedPattern[Extra] {
	var out []ClassifiedPattern[Extra]
	for _, e := range g.elements {
		if e.class.Kind == kind {
			out = append(out, ClassifiedPattern[Extra]{Class: e.class, Pattern: e.pattern})
		}
	}
	return out
}

// OthersClassified returns every ClassOther pattern together with its
// classifier-computed Other payload, in insertion order. Others loses that
// payload; this is the accessor a caller needs it from.
func (g *PatternGraph[Extra]) OthersClassified() []ClassifiedPattern[Extra] {
	return g.byKindClassified(ClassOther)
}

// ByID returns the pattern indexed under identity and whether it exists.
func (g *PatternGraph[Extra]) ByID(id string) (pat, bool) {
	idx, ok := g.byID[id]
	if !ok {
		return pat{}, false
	}
	return g.elements[idx].pattern, true
}

// Check scans every relationship's endpoints and reports an
// E_UNRESOLVED_REFERENCE issue for each endpoint that carries an identity
// with no matching node indexed in the graph.
func (g *PatternGraph[Extra]) Check() []diag.Issue {
	var issues []diag.Issue
	for _, e := range g.elements {
		if e.class.Kind != ClassRelationship && e.class.Kind != ClassWalk {
			continue
		}
		endpoints := e.pattern.Elements()
		for len(endpoints) > 0 {
			endpoint := endpoints[0]
			endpoints = endpoints[1:]
			if !endpoint.IsAtomic() {
				endpoints = append(append([]pat(nil), endpoint.Elements()...), endpoints...)
			}
			id := endpoint.Value().Identity()
			if id == "" {
				continue
			}
			if _, ok := g.byID[id]; !ok {
				issues = append(issues, diag.NewIssue(diag.Error, diag.E_UNRESOLVED_REFERENCE,
					fmt.Sprintf("relationship refers to identity %q which is not indexed as a node", id)).
					WithDetail("identity", id).
					Build())
			}
		}
	}
	return issues
}

// Merge combines g and other under g's policy, returning a new
// PatternGraph. Neither input is modified.
func (g *PatternGraph[Extra]) Merge(other *PatternGraph[Extra], classifier Classifier[Extra]) *PatternGraph[Extra] {
	all := make([]pat, 0, len(g.elements)+len(other.elements))
	for _, e := range g.elements {
		all = append(all, e.pattern)
	}
	for _, e := range other.elements {
		all = append(all, e.pattern)
	}
	return FromPatterns(classifier, g.policy, all)
}

// TopoSort returns nodes ordered so every relationship's source precedes
// its target, treating relationships as directed source → target edges.
// It always succeeds: on a cycle, the nodes that Kahn's algorithm cannot
// place are appended in their original insertion order, a stable
// tie-break rather than an arbitrary one.
func (g *PatternGraph[Extra]) TopoSort() []pat {
	nodes := g.Nodes()
	indegree := make(map[string]int, len(nodes))
	order := make(map[string]int, len(nodes))
	for i, n := range nodes {
		id := n.Value().Identity()
		indegree[id] = 0
		order[id] = i
	}

	adjacency := make(map[string][]string)
	for _, r := range g.Relationships() {
		elements := r.Elements()
		if len(elements) != 2 {
			continue
		}
		src, tgt := elements[0].Value().Identity(), elements[1].Value().Identity()
		if src == "" || tgt == "" {
			continue
		}
		if _, ok := indegree[tgt]; !ok {
			continue
		}
		adjacency[src] = append(adjacency[src], tgt)
		indegree[tgt]++
	}

	var ready []string
	for id := range indegree {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}
	sortByOrder(ready, order)

	var sortedIDs []string
	placed := make(map[string]bool, len(nodes))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		sortedIDs = append(sortedIDs, id)
		placed[id] = true
		var freed []string
		for _, next := range adjacency[id] {
			indegree[next]--
			if indegree[next] == 0 {
				freed = append(freed, next)
			}
		}
		sortByOrder(freed, order)
		ready = append(ready, freed...)
		sortByOrder(ready, order)
	}

	var remaining []string
	for id := range indegree {
		if !placed[id] {
			remaining = append(remaining, id)
		}
	}
	sortByOrder(remaining, order)
	sortedIDs = append(sortedIDs, remaining...)

	byID := make(map[string]pat, len(nodes))
	for _, n := range nodes {
		byID[n.Value().Identity()] = n
	}
	result := make([]pat, 0, len(sortedIDs))
	for _, id := range sortedIDs {
		result = append(result, byID[id])
	}
	return result
}

func sortByOrder(ids []string, order map[string]int) {
	sort.Slice(ids, func(i, j int) bool { return order[ids[i]] < order[ids[j]] })
}
