package view

import "github.com/relateby/pattern-go/graph"

// FoldGraph reduces over view's elements in view order, single pass,
// read-only. f need not be associative or have an identity; it is called
// exactly once per element with no guarantee of parallel evaluation.
func FoldGraph[Extra any, T any](view *GraphView[Extra], init T, f func(T, graph.GraphClass[Extra], pat) T) T {
	acc := init
	for _, e := range view.elements {
		acc = f(acc, e.class, e.pattern)
	}
	return acc
}
