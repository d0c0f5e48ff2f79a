package view

import (
	"github.com/relateby/pattern-go/graph"
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
)

// pat is shorthand for the pattern type every view operates over.
type pat = pattern.Pattern[subject.Subject]

func newPattern(v subject.Subject, elements []pat) pat {
	return pattern.New(v, elements)
}

type viewElement[Extra any] struct {
	class   graph.GraphClass[Extra]
	pattern pat
}

// GraphView is an eager, classified snapshot of a PatternGraph's elements,
// ordered nodes, then relationships, then walks, then annotations, then
// others, preserving insertion order within each class. It also holds a
// query snapshot and the graph it was built from, so operators that need
// structural context (map_with_context, para_graph) don't have to rebuild
// one.
type GraphView[Extra any] struct {
	source   *graph.PatternGraph[Extra]
	query    *graph.Query
	elements []viewElement[Extra]
}

// Query returns the query snapshot the view was built with.
func (v *GraphView[Extra]) Query() *graph.Query { return v.query }

// Len returns the number of elements in the view.
func (v *GraphView[Extra]) Len() int { return len(v.elements) }

// Elements returns every (class, pattern) pair in view order.
func (v *GraphView[Extra]) Elements() []graph.ClassifiedPattern[Extra] {
	out := make([]graph.ClassifiedPattern[Extra], len(v.elements))
	for i, e := range v.elements {
		out[i] = graph.ClassifiedPattern[Extra]{Class: e.class, Pattern: e.pattern}
	}
	return out
}
