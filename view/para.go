package view

import "github.com/relateby/pattern-go/graph"

// ParaGraph computes one result per identified node, bottom-up: it calls
// the source graph's TopoSort once, then for each node in that order
// invokes f with the node's structural predecessors' already-computed
// results. On a cyclic graph the order TopoSort produces is still total
// and deterministic, but which nodes count as "already computed" for a
// cycle member depends on where TopoSort broke the cycle; callers wanting
// a cycle-independent fixpoint should use ParaGraphFixed instead.
func ParaGraph[Extra any, R any](view *GraphView[Extra], f func(q *graph.Query, p pat, children []R) R) map[string]R {
	order := view.source.TopoSort()
	results := make(map[string]R, len(order))
	for _, p := range order {
		id := p.Value().Identity()
		if id == "" {
			continue
		}
		preds := view.query.Predecessors(p)
		children := make([]R, 0, len(preds))
		for _, pred := range preds {
			if r, ok := results[pred.Value().Identity()]; ok {
				children = append(children, r)
			}
		}
		results[id] = f(view.query, p, children)
	}
	return results
}

// ParaGraphFixed computes one result per identified node by repeatedly
// recomputing every node's result from its predecessors' current results,
// starting all of them at init, until converged holds between every
// node's previous and next result in the same pass. f must be such that
// this process terminates (typically because f is idempotent once its
// inputs stabilize).
func ParaGraphFixed[Extra any, R any](view *GraphView[Extra], init R, f func(q *graph.Query, p pat, children []R) R, converged func(prev, next R) bool) map[string]R {
	var nodes []pat
	for _, e := range view.elements {
		if e.class.Kind == graph.ClassNode {
			nodes = append(nodes, e.pattern)
		}
	}

	results := make(map[string]R, len(nodes))
	for _, n := range nodes {
		results[n.Value().Identity()] = init
	}

	for {
		next := make(map[string]R, len(nodes))
		allConverged := true
		for _, n := range nodes {
			id := n.Value().Identity()
			preds := view.query.Predecessors(n)
			children := make([]R, 0, len(preds))
			for _, pred := range preds {
				children = append(children, results[pred.Value().Identity()])
			}
			next[id] = f(view.query, n, children)
			if !converged(results[id], next[id]) {
				allConverged = false
			}
		}
		results = next
		if allConverged {
			return results
		}
	}
}
