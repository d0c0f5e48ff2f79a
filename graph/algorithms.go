package graph

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/relateby/pattern-go/diag"
)

// Traversal algorithms and the structural/metric algorithms built over
// GraphQuery all operate on identified nodes: a relationship endpoint with
// no identity cannot be indexed, so it is treated as a traversal dead end
// rather than a distinct vertex. This mirrors PatternGraph's own rule that
// anonymous patterns are never indexed by identity.

type edgeStep struct {
	to     string
	rel    pat
	weight float64
}

func (q *Query) outEdges(id string, w Weight) []edgeStep {
	var steps []edgeStep
	for _, r := range q.incident[id] {
		src, ok1 := q.Source(r)
		tgt, ok2 := q.Target(r)
		if !ok1 || !ok2 {
			continue
		}
		srcID, tgtID := src.Value().Identity(), tgt.Value().Identity()
		cost := w.cost(r)
		switch {
		case w.Kind == Directed:
			if id == srcID && tgtID != "" {
				steps = append(steps, edgeStep{to: tgtID, rel: r, weight: cost})
			}
		case w.Kind == DirectedReverse:
			if id == tgtID && srcID != "" {
				steps = append(steps, edgeStep{to: srcID, rel: r, weight: cost})
			}
		default: // Undirected
			if id == srcID && tgtID != "" {
				steps = append(steps, edgeStep{to: tgtID, rel: r, weight: cost})
			}
			if id == tgtID && srcID != "" && srcID != tgtID {
				steps = append(steps, edgeStep{to: srcID, rel: r, weight: cost})
			}
		}
	}
	return steps
}

func (q *Query) identifiedNodeIDs() []string {
	ids := make([]string, 0, len(q.nodes))
	for _, n := range q.nodes {
		if id := n.Value().Identity(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// BFS visits nodes reachable from start in breadth-first order. start must
// carry an identity; if it does not, BFS returns just start.
func BFS(q *Query, start pat, w Weight) []pat {
	startID := start.Value().Identity()
	if startID == "" {
		return []pat{start}
	}
	visited := map[string]bool{startID: true}
	queue := []string{startID}
	var order []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, e := range q.outEdges(id, w) {
			if !visited[e.to] {
				visited[e.to] = true
				queue = append(queue, e.to)
			}
		}
	}
	return q.resolveIDs(order)
}

// DFS visits nodes reachable from start in depth-first order.
func DFS(q *Query, start pat, w Weight) []pat {
	startID := start.Value().Identity()
	if startID == "" {
		return []pat{start}
	}
	visited := map[string]bool{}
	var order []string
	var walk func(id string)
	walk = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		order = append(order, id)
		for _, e := range q.outEdges(id, w) {
			walk(e.to)
		}
	}
	walk(startID)
	return q.resolveIDs(order)
}

func (q *Query) resolveIDs(ids []string) []pat {
	out := make([]pat, 0, len(ids))
	for _, id := range ids {
		if n, ok := q.NodeByID(id); ok {
			out = append(out, n)
		}
	}
	return out
}

// ShortestPath returns the node sequence from a to b with the fewest
// weighted cost, using Dijkstra's algorithm, and false if b is
// unreachable.
func ShortestPath(q *Query, a, b pat, w Weight) ([]pat, bool) {
	aID, bID := a.Value().Identity(), b.Value().Identity()
	if aID == "" || bID == "" {
		return nil, false
	}
	order := make(map[string]int, len(q.nodes))
	for i, n := range q.nodes {
		order[n.Value().Identity()] = i
	}

	dist := map[string]float64{aID: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	for {
		// pick unvisited node with smallest known distance; ties broken by
		// node insertion order for determinism
		cur := ""
		best := 0.0
		var candidates []string
		for id := range dist {
			if !visited[id] {
				candidates = append(candidates, id)
			}
		}
		sort.Slice(candidates, func(i, j int) bool { return order[candidates[i]] < order[candidates[j]] })
		for _, id := range candidates {
			d := dist[id]
			if cur == "" || d < best {
				cur = id
				best = d
			}
		}
		if cur == "" {
			break
		}
		if cur == bID {
			break
		}
		visited[cur] = true
		for _, e := range q.outEdges(cur, w) {
			nd := dist[cur] + e.weight
			if existing, ok := dist[e.to]; !ok || nd < existing {
				dist[e.to] = nd
				prev[e.to] = cur
			}
		}
	}

	if _, ok := dist[bID]; !ok {
		return nil, false
	}

	var ids []string
	for id := bID; ; {
		ids = append([]string{id}, ids...)
		if id == aID {
			break
		}
		p, ok := prev[id]
		if !ok {
			return nil, false
		}
		id = p
	}
	return q.resolveIDs(ids), true
}

// AllPathsOptions bounds AllPaths. MaxPaths of 0 means unbounded.
type AllPathsOptions struct {
	MaxPaths int
}

// CycleLimitIssue builds the diagnostic a caller should record when
// AllPaths reports truncated: the search stopped at its cap rather than
// exhausting the graph.
func CycleLimitIssue(opts AllPathsOptions) diag.Issue {
	return diag.NewIssue(diag.Warning, diag.E_CYCLE_LIMIT,
		fmt.Sprintf("all_paths stopped after reaching its cap of %d paths", opts.MaxPaths)).
		WithDetail("max_paths", strconv.Itoa(opts.MaxPaths)).
		Build()
}

// AllPaths enumerates every simple path (no repeated node) from a to b.
// Because paths are simple, enumeration always terminates even on a
// cyclic graph. truncated is true when opts.MaxPaths cut the search off
// before exhausting it.
func AllPaths(q *Query, a, b pat, w Weight, opts AllPathsOptions) (paths [][]pat, truncated bool) {
	aID, bID := a.Value().Identity(), b.Value().Identity()
	if aID == "" || bID == "" {
		return nil, false
	}

	var current []string
	visited := map[string]bool{}

	var walk func(id string)
	walk = func(id string) {
		if opts.MaxPaths > 0 && len(paths) >= opts.MaxPaths {
			truncated = true
			return
		}
		visited[id] = true
		current = append(current, id)
		if id == bID {
			found := make([]string, len(current))
			copy(found, current)
			paths = append(paths, q.resolveIDs(found))
		} else {
			for _, e := range q.outEdges(id, w) {
				if !visited[e.to] {
					walk(e.to)
				}
			}
		}
		current = current[:len(current)-1]
		visited[id] = false
	}
	walk(aID)
	return paths, truncated
}

// ConnectedComponents groups nodes into maximal sets reachable from one
// another, treating every relationship as undirected.
func ConnectedComponents(q *Query) [][]pat {
	undirected := Weight{Kind: Undirected}
	seen := map[string]bool{}
	var components [][]pat
	for _, id := range q.identifiedNodeIDs() {
		if seen[id] {
			continue
		}
		var comp []string
		queue := []string{id}
		seen[id] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, e := range q.outEdges(cur, undirected) {
				if !seen[e.to] {
					seen[e.to] = true
					queue = append(queue, e.to)
				}
			}
		}
		components = append(components, q.resolveIDs(comp))
	}
	return components
}

// IsConnected reports whether every identified node is reachable from
// every other, ignoring direction.
func IsConnected(q *Query) bool {
	ids := q.identifiedNodeIDs()
	if len(ids) <= 1 {
		return true
	}
	return len(ConnectedComponents(q)) == 1
}

// HasCycle reports whether the graph contains a cycle. When w is
// directed, this is directed-cycle detection via DFS coloring; otherwise
// it is undirected-cycle detection (any edge back to a visited,
// non-parent ancestor).
func HasCycle(q *Query, w Weight) bool {
	if w.directed() {
		return hasDirectedCycle(q, w)
	}
	return hasUndirectedCycle(q, w)
}

func hasDirectedCycle(q *Query, w Weight) bool {
	const (
		white = iota
		gray
		black
	)
	color := map[string]int{}
	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		for _, e := range q.outEdges(id, w) {
			switch color[e.to] {
			case gray:
				return true
			case white:
				if visit(e.to) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}
	for _, id := range q.identifiedNodeIDs() {
		if color[id] == white {
			if visit(id) {
				return true
			}
		}
	}
	return false
}

func hasUndirectedCycle(q *Query, w Weight) bool {
	visited := map[string]bool{}
	var visit func(id, parent string) bool
	visit = func(id, parent string) bool {
		visited[id] = true
		for _, e := range q.outEdges(id, w) {
			if e.to == parent {
				continue
			}
			if visited[e.to] {
				return true
			}
			if visit(e.to, id) {
				return true
			}
		}
		return false
	}
	for _, id := range q.identifiedNodeIDs() {
		if !visited[id] {
			if visit(id, "") {
				return true
			}
		}
	}
	return false
}

// TopologicalSort returns nodes ordered so every directed edge points
// forward, or (nil, false) if the graph contains a cycle.
func TopologicalSort(q *Query) ([]pat, bool) {
	w := Weight{Kind: Directed}
	ids := q.identifiedNodeIDs()
	indegree := make(map[string]int, len(ids))
	order := make(map[string]int, len(ids))
	for i, id := range ids {
		indegree[id] = 0
		order[id] = i
	}
	for _, id := range ids {
		for _, e := range q.outEdges(id, w) {
			indegree[e.to]++
		}
	}

	var ready []string
	for _, id := range ids {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return order[ready[i]] < order[ready[j]] })

	var sorted []string
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		sorted = append(sorted, id)
		var freed []string
		for _, e := range q.outEdges(id, w) {
			indegree[e.to]--
			if indegree[e.to] == 0 {
				freed = append(freed, e.to)
			}
		}
		sort.Slice(freed, func(i, j int) bool { return order[freed[i]] < order[freed[j]] })
		ready = append(ready, freed...)
		sort.Slice(ready, func(i, j int) bool { return order[ready[i]] < order[ready[j]] })
	}

	if len(sorted) != len(ids) {
		return nil, false
	}
	return q.resolveIDs(sorted), true
}

// DegreeCentrality returns each identified node's degree normalized by
// n-1, keyed by identity. A single-node graph reports 0 for that node.
func DegreeCentrality(q *Query) map[string]float64 {
	ids := q.identifiedNodeIDs()
	result := make(map[string]float64, len(ids))
	n := len(ids)
	for _, id := range ids {
		if node, ok := q.NodeByID(id); ok && n > 1 {
			result[id] = float64(q.Degree(node)) / float64(n-1)
		} else {
			result[id] = 0
		}
	}
	return result
}

// BetweennessCentrality computes unweighted betweenness centrality via
// Brandes' algorithm: for every source, a BFS accumulates shortest-path
// counts and dependency contributions in reverse BFS order.
func BetweennessCentrality(q *Query, w Weight) map[string]float64 {
	ids := q.identifiedNodeIDs()
	centrality := make(map[string]float64, len(ids))
	for _, id := range ids {
		centrality[id] = 0
	}

	for _, s := range ids {
		stack := []string{}
		pred := map[string][]string{}
		sigma := map[string]float64{s: 1}
		dist := map[string]int{s: 0}
		queue := []string{s}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)
			for _, e := range q.outEdges(v, w) {
				if _, seen := dist[e.to]; !seen {
					dist[e.to] = dist[v] + 1
					queue = append(queue, e.to)
				}
				if dist[e.to] == dist[v]+1 {
					sigma[e.to] += sigma[v]
					pred[e.to] = append(pred[e.to], v)
				}
			}
		}

		delta := map[string]float64{}
		for i := len(stack) - 1; i >= 0; i-- {
			node := stack[i]
			for _, v := range pred[node] {
				delta[v] += (sigma[v] / sigma[node]) * (1 + delta[node])
			}
			if node != s {
				centrality[node] += delta[node]
			}
		}
	}

	if !w.directed() {
		for id := range centrality {
			centrality[id] /= 2
		}
	}
	return centrality
}

// MinimumSpanningTree returns the relationships forming a minimum
// spanning forest via Kruskal's algorithm with union-find, treating edges
// as undirected regardless of w.Kind.
func MinimumSpanningTree(q *Query, w Weight) []pat {
	type weightedEdge struct {
		rel  pat
		a, b string
		cost float64
	}
	seen := map[string]bool{}
	var edges []weightedEdge
	for _, r := range q.rels {
		src, ok1 := q.Source(r)
		tgt, ok2 := q.Target(r)
		if !ok1 || !ok2 {
			continue
		}
		a, b := src.Value().Identity(), tgt.Value().Identity()
		if a == "" || b == "" {
			continue
		}
		key := a + "\x00" + b
		altKey := b + "\x00" + a
		if seen[key] || seen[altKey] {
			continue
		}
		seen[key] = true
		edges = append(edges, weightedEdge{rel: r, a: a, b: b, cost: w.cost(r)})
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].cost < edges[j].cost })

	parent := map[string]string{}
	var find func(string) string
	find = func(x string) string {
		if parent[x] == "" {
			parent[x] = x
		}
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	var mst []pat
	for _, e := range edges {
		ra, rb := find(e.a), find(e.b)
		if ra != rb {
			parent[ra] = rb
			mst = append(mst, e.rel)
		}
	}
	return mst
}
