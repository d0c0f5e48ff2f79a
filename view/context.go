package view

import "github.com/relateby/pattern-go/graph"

// MapWithContext transforms every element of view with f, which receives
// the same query snapshot for every call — the one taken when view was
// built, before any element in this call was transformed. Because no
// element's transform can observe another's output, the order elements
// are visited in never affects the result. It consumes view.
func MapWithContext[Extra any](view *GraphView[Extra], f func(q *graph.Query, p pat) pat) *GraphView[Extra] {
	snapshot := view.query
	out := make([]viewElement[Extra], len(view.elements))
	for i, e := range view.elements {
		out[i] = viewElement[Extra]{class: e.class, pattern: f(snapshot, e.pattern)}
	}
	return &GraphView[Extra]{source: view.source, query: view.query, elements: out}
}
