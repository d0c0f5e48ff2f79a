package pattern

// AnyValue reports whether pred holds for at least one value in the tree.
func (p Pattern[V]) AnyValue(pred func(V) bool) bool {
	for v := range p.Values() {
		if pred(v) {
			return true
		}
	}
	return false
}

// AllValues reports whether pred holds for every value in the tree.
func (p Pattern[V]) AllValues(pred func(V) bool) bool {
	for v := range p.Values() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Filter returns every subpattern (p itself and any descendant) for which
// pred holds, in pre-order.
func (p Pattern[V]) Filter(pred func(Pattern[V]) bool) []Pattern[V] {
	var out []Pattern[V]
	p.walkSubpatterns(func(sub Pattern[V]) bool {
		if pred(sub) {
			out = append(out, sub)
		}
		return true
	})
	return out
}

// FindFirst returns the first subpattern in pre-order for which pred
// holds.
func (p Pattern[V]) FindFirst(pred func(Pattern[V]) bool) (Pattern[V], bool) {
	var found Pattern[V]
	ok := false
	p.walkSubpatterns(func(sub Pattern[V]) bool {
		if pred(sub) {
			found = sub
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

func (p Pattern[V]) walkSubpatterns(yield func(Pattern[V]) bool) bool {
	if !yield(p) {
		return false
	}
	for _, e := range p.elements {
		if !e.walkSubpatterns(yield) {
			return false
		}
	}
	return true
}

// Matches reports whether p and other are structurally equal: same value
// (per equal) and the same shape, recursively.
func (p Pattern[V]) Matches(other Pattern[V], equal func(a, b V) bool) bool {
	if !equal(p.value, other.value) {
		return false
	}
	if len(p.elements) != len(other.elements) {
		return false
	}
	for i, e := range p.elements {
		if !e.Matches(other.elements[i], equal) {
			return false
		}
	}
	return true
}

// Contains reports whether other matches (per Matches) some subpattern of
// p, including p itself.
func (p Pattern[V]) Contains(other Pattern[V], equal func(a, b V) bool) bool {
	found := false
	p.walkSubpatterns(func(sub Pattern[V]) bool {
		if sub.Matches(other, equal) {
			found = true
			return false
		}
		return true
	})
	return found
}
