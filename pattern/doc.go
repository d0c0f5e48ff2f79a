// Package pattern provides Pattern[V], the recursive (value, elements) tree
// at the core of this module, generic in the value type V.
//
// # Shape Conventions
//
// Element count and child shape carry semantic meaning used by the gram
// codec and graph classifier:
//   - 0 elements: atomic/leaf
//   - 2 atomic elements with an empty parent identity: relationship
//   - 1 element with an anonymous, property-only value: annotation
//   - otherwise: an N-ary container
//
// Patterns are immutable after construction; every transform in this
// package returns a new tree rather than mutating the receiver.
//
// # Algebra
//
// [Pattern] implements a Functor ([Map]), a Foldable ([Fold], [Para]),
// and a Comonad ([Pattern.Extract], [Extend]). [Combine] additionally combines two Pattern[V] trees
// when V implements [Combinable].
//
// # Dependencies
//
// This package imports only the standard library; it does not depend on
// value or subject, since Pattern is generic over any V.
package pattern
