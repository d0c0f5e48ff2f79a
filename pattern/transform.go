package pattern

// Map applies f to every value in the tree, preserving shape.
func Map[V, W any](p Pattern[V], f func(V) W) Pattern[W] {
	var elements []Pattern[W]
	if p.elements != nil {
		elements = make([]Pattern[W], len(p.elements))
	}
	for i, e := range p.elements {
		elements[i] = Map(e, f)
	}
	return Pattern[W]{value: f(p.value), elements: elements}
}

// Fold reduces the tree pre-order: p's own value is combined into the
// accumulator before any element's values.
func Fold[V, T any](p Pattern[V], init T, f func(T, V) T) T {
	acc := f(init, p.value)
	for _, e := range p.elements {
		acc = Fold(e, acc, f)
	}
	return acc
}

// Para is a paramorphism: f receives p's own value together with the
// already-computed results for each direct element, evaluated bottom-up.
func Para[V, R any](p Pattern[V], f func(V, []R) R) R {
	results := make([]R, len(p.elements))
	for i, e := range p.elements {
		results[i] = Para(e, f)
	}
	return f(p.value, results)
}
