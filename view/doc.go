// Package view implements GraphView, the pipeline surface over a
// PatternGraph: an eager, classified snapshot of its elements in a
// deterministic order, plus the map/filter/fold/para/unfold operators that
// transform or reduce over it.
//
// A view is built from a PatternGraph with ToGraphView and consumed back
// into one with Materialize. Every transform returns a new GraphView
// rather than mutating its receiver; callers wanting to reuse a view
// before transforming it should take a reference before calling an
// operator that documents itself as consuming.
package view
