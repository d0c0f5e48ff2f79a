// Package graph classifies Pattern[subject.Subject] trees into graph
// shapes, indexes a batch of them into a PatternGraph with identity-based
// reconciliation, and provides read-only query and algorithm support over
// the result.
//
// # Classification
//
// [Classify] applies a fixed, context-free rule set:
//
//   - 0 elements → Node
//   - 2 atomic elements, identity-less parent subject → Relationship
//   - 1 element, anonymous subject carrying properties → Annotation
//   - a Relationship whose second element is itself a Relationship or
//     Walk → Walk
//   - otherwise → Other
//
// [ClassifyWith] takes a caller-supplied function to compute a richer
// Other payload instead of overriding the shape rules above.
//
// # PatternGraph
//
// [FromPatterns] classifies and indexes a slice of patterns. A pattern
// with a non-empty identity that collides with one already indexed is
// reconciled according to a [ReconciliationPolicy]: LastWriteWins,
// FirstWriteWins, Strict (keep current, record the loser), or Merge
// (union labels, last-write-wins properties, concatenate-and-dedup
// elements). Losing patterns are retained per-identity in
// [PatternGraph.Conflicts], never discarded silently. [PatternGraph.Check]
// reports every relationship endpoint whose identity was never indexed as
// a node.
//
// # Query and algorithms
//
// [NewQuery] precomputes identity-keyed adjacency over a PatternGraph's
// nodes and relationships (walks are unrolled into their constituent
// links). [BFS], [DFS], [ShortestPath], [AllPaths],
// [ConnectedComponents], [HasCycle], [TopologicalSort],
// [DegreeCentrality], [BetweennessCentrality], and
// [MinimumSpanningTree] all take a *Query and an optional [Weight]. Every
// one of them operates on identified nodes only: an anonymous
// relationship endpoint cannot be keyed, so it is a traversal dead end
// rather than a distinct vertex — the same rule PatternGraph itself
// applies when deciding what gets indexed by identity.
package graph
