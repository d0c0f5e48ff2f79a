// Package patterngo provides a recursive pattern tree for graph-shaped data:
// Value and Subject models, a generic Pattern[V] algebra, a hand-written
// textual codec ("gram") and canonical JSON AST, an indexed pattern graph
// with identity reconciliation, and a transformation algebra over graph
// views.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source positions, spans, and canonical paths
//	  - diag: Structured diagnostics with stable error codes
//	  - immutable: Read-only wrappers for safe data sharing
//
//	Value tier:
//	  - value: The Value tagged union, deep equality and ordering
//	  - subject: Subject identity, labels, and properties
//	  - pattern: The generic Pattern[V] algebra
//
//	Codec tier:
//	  - gram: Hand-written lexer, parser, and serializer for the gram
//	    textual notation
//	  - ast: Canonical JSON AST encode/decode
//
//	Graph tier:
//	  - graph: Indexed PatternGraph construction, identity reconciliation,
//	    read-only queries, and graph algorithms
//	  - view: GraphView transformation algebra (map/filter/fold/para/unfold)
//
//	Host tier:
//	  - host: Cross-language value bridge with Either-shaped results
//
// # Entry Points
//
// Parsing gram source into patterns:
//
//	import "github.com/relateby/pattern-go/gram"
//
//	patterns, result, err := gram.Parse(ctx, sourceID, content)
//	if err != nil {
//	    // I/O or internal error
//	}
//	if result.HasErrors() {
//	    // Syntax diagnostics
//	}
//
// Indexing patterns into a graph:
//
//	import "github.com/relateby/pattern-go/graph"
//
//	g := graph.New()
//	for _, p := range patterns {
//	    result, err := g.Add(ctx, p)
//	    if err != nil {
//	        // Internal error or context cancelled
//	    }
//	    if !result.OK() {
//	        // Diagnostic issues (duplicate identity, unresolved reference)
//	    }
//	}
//
// Transforming a graph view:
//
//	import "github.com/relateby/pattern-go/view"
//
//	v := view.FromGraph(g.Query())
//	mapped := view.Map(v, transformFn)
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/relateby/pattern-go/diag]: Structured diagnostics
//   - [github.com/relateby/pattern-go/location]: Source location tracking
//   - [github.com/relateby/pattern-go/immutable]: Read-only data wrappers
//   - [github.com/relateby/pattern-go/value]: Value tagged union
//   - [github.com/relateby/pattern-go/subject]: Subject identity and properties
//   - [github.com/relateby/pattern-go/pattern]: The generic Pattern[V] algebra
//   - [github.com/relateby/pattern-go/gram]: gram textual codec
//   - [github.com/relateby/pattern-go/ast]: Canonical JSON AST
//   - [github.com/relateby/pattern-go/graph]: PatternGraph, GraphQuery, algorithms
//   - [github.com/relateby/pattern-go/view]: GraphView transformation algebra
//   - [github.com/relateby/pattern-go/host]: Host-language value bridge
package patterngo
