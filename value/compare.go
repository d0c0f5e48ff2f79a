package value

import (
	"math"
	"sort"
	"strings"
)

// kindOrder assigns each Kind a position in the total order used when two
// Values of different kinds are compared. This mirrors the nil < bool <
// numeric < string < collection strata used elsewhere in this module's
// value-ordering helpers, specialized to the closed Value sum.
func kindOrder(k Kind) int {
	switch k {
	case Null:
		return 0
	case Boolean:
		return 1
	case Integer, Decimal:
		return 2
	case String, Symbol, TaggedString:
		return 3
	case Range:
		return 4
	case Measurement:
		return 5
	case Array:
		return 6
	case Map, Record:
		return 7
	default:
		return 8
	}
}

// Compare returns a total, deterministic order between v and other: -1 if
// v sorts before other, 0 if equal-for-ordering, 1 if v sorts after other.
//
// Integer and Decimal compare numerically across kinds, via [compareIntFloat],
// so Integer(1) and Decimal(1.0) order equal even though [Value.Equal]
// treats them as distinct kinds. All other kind pairs fall back to
// [kindOrder]. Floats are ordered -Inf < finite < +Inf < NaN, matching
// [Value.Equal]'s bit-pattern equality for NaN.
func (v Value) Compare(other Value) int {
	if v.kind == Integer && other.kind == Integer {
		return compareInt64(v.i, other.i)
	}
	if v.kind == Decimal && other.kind == Decimal {
		return compareFloat64(v.f, other.f)
	}
	if v.kind == Integer && other.kind == Decimal {
		return compareIntFloat(v.i, other.f)
	}
	if v.kind == Decimal && other.kind == Integer {
		return -compareIntFloat(other.i, v.f)
	}

	if vo, oo := kindOrder(v.kind), kindOrder(other.kind); vo != oo {
		if vo < oo {
			return -1
		}
		return 1
	}

	switch v.kind {
	case Null:
		return 0
	case Boolean:
		return compareBool(v.b, other.b)
	case String, Symbol, TaggedString:
		if c := strings.Compare(v.s, other.s); c != 0 {
			return c
		}
		return strings.Compare(v.s2, other.s2)
	case Range:
		if c := compareFloat64(v.lower, other.lower); c != 0 {
			return c
		}
		if c := compareFloat64(v.upper, other.upper); c != 0 {
			return c
		}
		return compareBool(v.incRng, other.incRng)
	case Measurement:
		if c := compareFloat64(v.f, other.f); c != 0 {
			return c
		}
		return strings.Compare(v.s, other.s)
	case Array:
		return compareArrays(v.arr, other.arr)
	case Map, Record:
		return compareMaps(v.m, other.m)
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareInt64(a, b int64) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

type floatClass int

const (
	floatNegInf floatClass = iota
	floatFinite
	floatPosInf
	floatNaN
)

func classifyFloat(f float64) floatClass {
	switch {
	case math.IsNaN(f):
		return floatNaN
	case math.IsInf(f, -1):
		return floatNegInf
	case math.IsInf(f, 1):
		return floatPosInf
	default:
		return floatFinite
	}
}

func compareFloat64(a, b float64) int {
	ac, bc := classifyFloat(a), classifyFloat(b)
	if ac != floatFinite || bc != floatFinite {
		switch {
		case ac == bc:
			return 0
		case ac < bc:
			return -1
		default:
			return 1
		}
	}
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// compareIntFloat compares an int64 with a float64 exactly, avoiding the
// precision loss of converting i to float64 for values beyond 2^53.
func compareIntFloat(i int64, f float64) int {
	switch classifyFloat(f) {
	case floatNegInf:
		return 1
	case floatPosInf:
		return -1
	case floatNaN:
		return -1
	}

	trunc, frac := math.Modf(f)
	const maxInt64AsFloat = float64(1 << 63)
	const minInt64AsFloat = -float64(1 << 63)

	if frac != 0 {
		if trunc >= maxInt64AsFloat {
			return -1
		}
		if trunc < minInt64AsFloat {
			return 1
		}
		fi := int64(trunc)
		switch {
		case i < fi:
			return -1
		case i > fi:
			return 1
		case frac > 0:
			return -1
		default:
			return 1
		}
	}

	if trunc >= maxInt64AsFloat {
		return -1
	}
	if trunc < minInt64AsFloat {
		return 1
	}
	return compareInt64(i, int64(trunc))
}

func compareArrays(a, b []Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return compareInt64(int64(len(a)), int64(len(b)))
}

// compareMaps orders maps first by size, then lexicographically by sorted
// key set, then by each shared key's value in sorted-key order. This gives
// Map/Record values a deterministic order, not a semantically meaningful
// order on content.
func compareMaps(a, b *Map) int {
	if c := compareInt64(int64(a.Len()), int64(b.Len())); c != 0 {
		return c
	}
	ak := a.Keys()
	bk := b.Keys()
	sort.Strings(ak)
	sort.Strings(bk)
	for i := range ak {
		if c := strings.Compare(ak[i], bk[i]); c != 0 {
			return c
		}
	}
	for _, k := range ak {
		av, _ := a.Get(k)
		bv, _ := b.Get(k)
		if c := av.Compare(bv); c != 0 {
			return c
		}
	}
	return 0
}
