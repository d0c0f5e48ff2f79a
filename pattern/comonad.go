package pattern

import "iter"

// Extract returns p's own value, the comonadic counit.
func (p Pattern[V]) Extract() V {
	return p.value
}

// Extend maps every subtree position to a new value by calling f with the
// subtree rooted at that position, producing a tree of the same shape.
func Extend[V, W any](p Pattern[V], f func(Pattern[V]) W) Pattern[W] {
	var elements []Pattern[W]
	if p.elements != nil {
		elements = make([]Pattern[W], len(p.elements))
	}
	for i, e := range p.elements {
		elements[i] = Extend(e, f)
	}
	return Pattern[W]{value: f(p), elements: elements}
}

// DepthAt annotates every subtree position with that subtree's Depth.
func (p Pattern[V]) DepthAt() Pattern[int] {
	return Extend(p, Pattern[V].Depth)
}

// SizeAt annotates every subtree position with that subtree's Size.
func (p Pattern[V]) SizeAt() Pattern[int] {
	return Extend(p, Pattern[V].Size)
}

// IndicesAt annotates every subtree position with its path from the root,
// expressed as a sequence of child indices. The root's path is empty.
func (p Pattern[V]) IndicesAt() Pattern[[]int] {
	return indicesAt(p, nil)
}

func indicesAt[V any](p Pattern[V], path []int) Pattern[[]int] {
	own := make([]int, len(path))
	copy(own, path)
	elements := make([]Pattern[[]int], len(p.elements))
	for i, e := range p.elements {
		childPath := append(append([]int{}, path...), i)
		elements[i] = indicesAt(e, childPath)
	}
	return Pattern[[]int]{value: own, elements: elements}
}

// Indices returns an iterator over the path (from root, as child indices)
// of every subtree position in pre-order.
func (p Pattern[V]) Indices() iter.Seq[[]int] {
	return p.IndicesAt().Values()
}

// At returns the subpattern reached by following path from the root, one
// child index per step. It reports false if any index is out of range.
func (p Pattern[V]) At(path []int) (Pattern[V], bool) {
	cur := p
	for _, idx := range path {
		if idx < 0 || idx >= len(cur.elements) {
			var zero Pattern[V]
			return zero, false
		}
		cur = cur.elements[idx]
	}
	return cur, true
}
