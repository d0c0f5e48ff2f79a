package value

import "math"

// Equal reports whether v and other are deeply structurally equal. Floats
// compare by bit pattern (via math.Float64bits), so NaN equals NaN and
// +0 does not equal -0, keeping Equal consistent with Compare.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case Boolean:
		return v.b == other.b
	case Integer:
		return v.i == other.i
	case Decimal:
		return math.Float64bits(v.f) == math.Float64bits(other.f)
	case String, Symbol:
		return v.s == other.s
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case Map, Record:
		return v.m.Equal(other.m)
	case Range:
		return math.Float64bits(v.lower) == math.Float64bits(other.lower) &&
			math.Float64bits(v.upper) == math.Float64bits(other.upper) &&
			v.incRng == other.incRng
	case Measurement:
		return math.Float64bits(v.f) == math.Float64bits(other.f) && v.s == other.s
	case TaggedString:
		return v.s == other.s && v.s2 == other.s2
	default:
		return false
	}
}
