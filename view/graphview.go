package view

import "github.com/relateby/pattern-go/graph"

// ToGraphView snapshots g into a GraphView. Elements are ordered nodes,
// then relationships, then walks, then annotations, then others,
// preserving each class's own insertion order within the graph.
func ToGraphView[Extra any](g *graph.PatternGraph[Extra]) *GraphView[Extra] {
	var elements []viewElement[Extra]
	nodeClass := graph.GraphClass[Extra]{Kind: graph.ClassNode}
	for _, n := range g.Nodes() {
		elements = append(elements, viewElement[Extra]{class: nodeClass, pattern: n})
	}
	relClass := graph.GraphClass[Extra]{Kind: graph.ClassRelationship}
	for _, r := range g.Relationships() {
		elements = append(elements, viewElement[Extra]{class: relClass, pattern: r})
	}
	walkClass := graph.GraphClass[Extra]{Kind: graph.ClassWalk}
	for _, w := range g.Walks() {
		elements = append(elements, viewElement[Extra]{class: walkClass, pattern: w})
	}
	annotationClass := graph.GraphClass[Extra]{Kind: graph.ClassAnnotation}
	for _, a := range g.Annotations() {
		elements = append(elements, viewElement[Extra]{class: annotationClass, pattern: a})
	}
	for _, o := range g.OthersClassified() {
		elements = append(elements, viewElement[Extra]{class: o.Class, pattern: o.Pattern})
	}

	return &GraphView[Extra]{
		source:   g,
		query:    graph.NewQuery(g),
		elements: elements,
	}
}

// Materialize rebuilds a PatternGraph from the view's current elements,
// reclassifying each one and reconciling identity collisions under policy.
// It consumes view: callers needing the pre-transform snapshot should have
// taken a reference to it before calling an operator that replaced it.
func Materialize[Extra any](view *GraphView[Extra], classifier graph.Classifier[Extra], policy graph.ReconciliationPolicy) *graph.PatternGraph[Extra] {
	patterns := make([]pat, len(view.elements))
	for i, e := range view.elements {
		patterns[i] = e.pattern
	}
	return graph.FromPatterns(classifier, policy, patterns)
}
