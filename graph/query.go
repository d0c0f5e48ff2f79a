package graph

import "github.com/relateby/pattern-go/subject"

// Query is a read-only view over a PatternGraph's nodes and relationships.
// Construct with NewQuery; adjacency is precomputed eagerly so lookups are
// O(1) for identified nodes and O(relationships) for anonymous ones.
type Query struct {
	nodes []pat
	rels  []pat

	nodeByID map[string]pat
	relByID  map[string]pat
	incident map[string][]pat
}

// NewQuery builds a Query over every node and relationship currently
// indexed in g, including relationships reached through walks (a walk is
// unrolled into its constituent two-element relationship links).
func NewQuery[Extra any](g *PatternGraph[Extra]) *Query {
	q := &Query{
		nodeByID: make(map[string]pat),
		relByID:  make(map[string]pat),
		incident: make(map[string][]pat),
	}

	q.nodes = append(q.nodes, g.Nodes()...)
	for _, n := range q.nodes {
		if id := n.Value().Identity(); id != "" {
			q.nodeByID[id] = n
		}
	}

	for _, r := range g.Relationships() {
		q.addRelationship(r)
	}
	for _, w := range g.Walks() {
		q.addWalkLinks(w)
	}
	return q
}

func (q *Query) addRelationship(r pat) {
	q.rels = append(q.rels, r)
	if id := r.Value().Identity(); id != "" {
		q.relByID[id] = r
	}
	for _, endpoint := range r.Elements() {
		if id := endpoint.Value().Identity(); id != "" {
			q.incident[id] = append(q.incident[id], r)
		}
	}
}

// addWalkLinks unrolls a right-associative walk chain into the individual
// relationship links it is built from. A walk's second element is itself
// the next relationship in the chain, so the midpoint node never appears
// directly as the walk's own element; this reconstructs the first link
// (left, midpoint) explicitly before recursing into the rest.
func (q *Query) addWalkLinks(w pat) {
	elements := w.Elements()
	if len(elements) != 2 {
		return
	}
	left, tail := elements[0], elements[1]
	tailElements := tail.Elements()
	if len(tailElements) != 2 {
		q.addRelationship(w)
		return
	}
	q.addRelationship(newPattern(w.Value(), []pat{left, tailElements[0]}))
	q.addWalkLinks(tail)
}

// Nodes returns every node in the graph, in insertion order.
func (q *Query) Nodes() []pat { return q.nodes }

// Relationships returns every relationship in the graph, including links
// unrolled from walks, in insertion order.
func (q *Query) Relationships() []pat { return q.rels }

// Source returns a relationship's first element.
func (q *Query) Source(rel pat) (pat, bool) {
	elements := rel.Elements()
	if len(elements) != 2 {
		return pat{}, false
	}
	return elements[0], true
}

// Target returns a relationship's second element.
func (q *Query) Target(rel pat) (pat, bool) {
	elements := rel.Elements()
	if len(elements) != 2 {
		return pat{}, false
	}
	return elements[1], true
}

// IncidentRels returns every relationship touching node. Identified nodes
// are looked up by identity in O(1); anonymous nodes fall back to a
// structural-equality scan over all relationships.
func (q *Query) IncidentRels(node pat) []pat {
	if id := node.Value().Identity(); id != "" {
		return q.incident[id]
	}
	var out []pat
	for _, r := range q.rels {
		for _, endpoint := range r.Elements() {
			if endpoint.Matches(node, subject.Subject.Equal) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Degree returns the number of relationships incident to node.
func (q *Query) Degree(node pat) int {
	return len(q.IncidentRels(node))
}

// Predecessors returns the nodes with a directed relationship into node, in
// the order those relationships were registered.
func (q *Query) Predecessors(node pat) []pat {
	id := node.Value().Identity()
	if id == "" {
		return nil
	}
	var out []pat
	for _, r := range q.incident[id] {
		src, ok1 := q.Source(r)
		tgt, ok2 := q.Target(r)
		if !ok1 || !ok2 {
			continue
		}
		if tgt.Value().Identity() == id {
			out = append(out, src)
		}
	}
	return out
}

// NodeByID returns the node indexed under id and whether it exists.
func (q *Query) NodeByID(id string) (pat, bool) {
	n, ok := q.nodeByID[id]
	return n, ok
}

// RelationshipByID returns the relationship indexed under id and whether
// it exists.
func (q *Query) RelationshipByID(id string) (pat, bool) {
	r, ok := q.relByID[id]
	return r, ok
}
