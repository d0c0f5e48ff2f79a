package view

import "github.com/relateby/pattern-go/graph"

// CategoryMappers holds one optional transform per graph class. A nil field
// leaves patterns of that class unchanged.
type CategoryMappers struct {
	Node         func(pat) pat
	Relationship func(pat) pat
	Annotation   func(pat) pat
	Walk         func(pat) pat
	Other        func(pat) pat
}

func (m CategoryMappers) mapperFor(kind graph.ClassKind) func(pat) pat {
	switch kind {
	case graph.ClassNode:
		return m.Node
	case graph.ClassRelationship:
		return m.Relationship
	case graph.ClassAnnotation:
		return m.Annotation
	case graph.ClassWalk:
		return m.Walk
	default:
		return m.Other
	}
}

// MapGraph transforms every element of view by its class's mapper,
// identity for classes with no mapper set. It consumes view.
func MapGraph[Extra any](view *GraphView[Extra], mappers CategoryMappers) *GraphView[Extra] {
	out := make([]viewElement[Extra], len(view.elements))
	for i, e := range view.elements {
		f := mappers.mapperFor(e.class.Kind)
		if f == nil {
			out[i] = e
			continue
		}
		out[i] = viewElement[Extra]{class: e.class, pattern: f(e.pattern)}
	}
	return &GraphView[Extra]{source: view.source, query: view.query, elements: out}
}

// MapAllGraph transforms every element of view by f, regardless of class.
// It consumes view.
func MapAllGraph[Extra any](view *GraphView[Extra], f func(pat) pat) *GraphView[Extra] {
	out := make([]viewElement[Extra], len(view.elements))
	for i, e := range view.elements {
		out[i] = viewElement[Extra]{class: e.class, pattern: f(e.pattern)}
	}
	return &GraphView[Extra]{source: view.source, query: view.query, elements: out}
}
