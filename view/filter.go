package view

import "github.com/relateby/pattern-go/graph"

// SubstitutionKind selects how filter_graph patches a hole left by a
// removed element that was contained in a walk or annotation.
type SubstitutionKind uint8

const (
	// NoSubstitution leaves a gap: the container keeps its other children,
	// with the removed one's slot simply absent.
	NoSubstitution SubstitutionKind = iota
	// ReplaceWith swaps the removed child for Substitution.Surrogate in
	// place.
	ReplaceWith
	// RemoveContainer drops the entire containing walk or annotation from
	// the view.
	RemoveContainer
)

// Substitution is the policy filter_graph applies when a predicate removes
// a pattern nested inside a walk or annotation. Surrogate is only read
// when Kind is ReplaceWith.
type Substitution struct {
	Kind      SubstitutionKind
	Surrogate pat
}

// FilterGraph removes elements that fail pred. Top-level node,
// relationship, and other elements are dropped outright when pred fails.
// Walk and annotation elements are containers: pred is additionally
// applied to each of their immediate children (the patterns literally
// contained in them), and a failing child is patched according to subst
// rather than silently dropped from its parent's shape. It consumes view.
func FilterGraph[Extra any](view *GraphView[Extra], pred func(graph.GraphClass[Extra], pat) bool, subst Substitution) *GraphView[Extra] {
	var out []viewElement[Extra]
	for _, e := range view.elements {
		switch e.class.Kind {
		case graph.ClassWalk, graph.ClassAnnotation:
			filtered, dropContainer := filterChildren(e.pattern, e.class, pred, subst)
			if dropContainer {
				continue
			}
			out = append(out, viewElement[Extra]{class: e.class, pattern: filtered})
		default:
			if pred(e.class, e.pattern) {
				out = append(out, e)
			}
		}
	}
	return &GraphView[Extra]{source: view.source, query: view.query, elements: out}
}

func filterChildren[Extra any](container pat, class graph.GraphClass[Extra], pred func(graph.GraphClass[Extra], pat) bool, subst Substitution) (pat, bool) {
	children := container.Elements()
	var kept []pat
	for _, child := range children {
		if pred(class, child) {
			kept = append(kept, child)
			continue
		}
		switch subst.Kind {
		case NoSubstitution:
			// leave a gap: simply omit this child
		case ReplaceWith:
			kept = append(kept, subst.Surrogate)
		case RemoveContainer:
			return pat{}, true
		}
	}
	return newPattern(container.Value(), kept), false
}
