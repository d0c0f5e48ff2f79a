package host

import (
	"reflect"
	"sort"

	"github.com/relateby/pattern-go/immutable"
	ivalue "github.com/relateby/pattern-go/internal/value"
	"github.com/relateby/pattern-go/value"
)

// ToValue converts a host value into a Value. Primitives and numeric
// vectors are classified with internal/value.Classify; a vector becomes
// an Array of Decimal (Value has no dedicated vector variant). A
// map[string]any decodes the same wrapper shapes the canonical JSON AST
// uses ("type": "symbol"/"tagged"/"range"/"measurement"); an untagged map
// becomes a Record, and []any becomes an Array.
func ToValue(host any) (value.Value, error) {
	host = cloneHostInput(host)
	if host == nil {
		return value.NullValue(), nil
	}

	kind, coerced := ivalue.Classify(host)
	switch kind {
	case ivalue.StringKind:
		return value.StringValue(coerced.(string)), nil
	case ivalue.IntKind:
		return value.IntegerValue(reflectToInt64(coerced)), nil
	case ivalue.FloatKind:
		return value.DecimalValue(reflectToFloat64(coerced)), nil
	case ivalue.BoolKind:
		return value.BooleanValue(coerced.(bool)), nil
	case ivalue.VectorKind:
		return vectorToValue(coerced)
	}

	switch v := host.(type) {
	case map[string]any:
		return mapToValue(v)
	case []any:
		return arrayToValue(v)
	}
	return value.Value{}, typeMismatch("", "primitive, []any, or map[string]any", host)
}

// cloneHostInput defensively deep-clones a host-supplied map or slice
// before conversion, so a host retaining and later mutating the object
// it handed across the boundary can never affect an already-converted
// Value. Primitives pass through unchanged; immutable.WrapClone already
// leaves them untouched.
func cloneHostInput(host any) any {
	wrapped := immutable.WrapClone(host)
	if wrapped.IsNil() {
		return nil
	}
	switch inner := wrapped.Unwrap().(type) {
	case immutable.Map[string]:
		return inner.Clone()
	case immutable.Slice:
		return inner.Clone()
	default:
		return inner
	}
}

func vectorToValue(coerced any) (value.Value, error) {
	switch v := coerced.(type) {
	case []float64:
		elems := make([]value.Value, len(v))
		for i, f := range v {
			elems[i] = value.DecimalValue(f)
		}
		return value.ArrayValue(elems), nil
	case []float32:
		elems := make([]value.Value, len(v))
		for i, f := range v {
			elems[i] = value.DecimalValue(float64(f))
		}
		return value.ArrayValue(elems), nil
	}
	return value.Value{}, typeMismatch("", "[]float64 or []float32", coerced)
}

func arrayToValue(items []any) (value.Value, error) {
	elems := make([]value.Value, len(items))
	for i, item := range items {
		v, err := ToValue(item)
		if err != nil {
			return value.Value{}, err
		}
		elems[i] = v
	}
	return value.ArrayValue(elems), nil
}

func mapToValue(m map[string]any) (value.Value, error) {
	typ, hasType := m["type"].(string)
	if !hasType {
		return recordValue(m)
	}
	switch typ {
	case "symbol":
		s, ok := m["value"].(string)
		if !ok {
			return value.Value{}, typeMismatch("value", "string", m["value"])
		}
		return value.SymbolValue(s), nil
	case "tagged":
		tag, ok := m["tag"].(string)
		if !ok {
			return value.Value{}, typeMismatch("tag", "string", m["tag"])
		}
		content, ok := m["content"].(string)
		if !ok {
			return value.Value{}, typeMismatch("content", "string", m["content"])
		}
		return value.TaggedStringValue(tag, content), nil
	case "range":
		lower, ok := asFloat(m["lower"])
		if !ok {
			return value.Value{}, typeMismatch("lower", "number", m["lower"])
		}
		upper, ok := asFloat(m["upper"])
		if !ok {
			return value.Value{}, typeMismatch("upper", "number", m["upper"])
		}
		inclusive, _ := m["inclusive"].(bool)
		return value.RangeValue(lower, upper, inclusive), nil
	case "measurement":
		unit, ok := m["unit"].(string)
		if !ok {
			return value.Value{}, typeMismatch("unit", "string", m["unit"])
		}
		val, ok := asFloat(m["value"])
		if !ok {
			return value.Value{}, typeMismatch("value", "number", m["value"])
		}
		return value.MeasurementValue(val, unit), nil
	default:
		return value.Value{}, typeMismatch("type", `"symbol", "tagged", "range", or "measurement"`, typ)
	}
}

func recordValue(m map[string]any) (value.Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]value.Pair, 0, len(keys))
	for _, k := range keys {
		v, err := ToValue(m[k])
		if err != nil {
			return value.Value{}, err
		}
		pairs = append(pairs, value.Pair{Key: k, Value: v})
	}
	return value.RecordValue(value.NewMapFromPairs(pairs...)), nil
}

func asFloat(v any) (float64, bool) {
	kind, coerced := ivalue.Classify(v)
	switch kind {
	case ivalue.IntKind:
		return float64(reflectToInt64(coerced)), true
	case ivalue.FloatKind:
		return reflectToFloat64(coerced), true
	default:
		return 0, false
	}
}

// reflectToInt64 converts any of Classify's IntKind payload types (signed or
// unsigned, any width) to int64. Classify does not normalize width or
// signedness, only recognizes the family.
func reflectToInt64(v any) int64 {
	rv := reflect.ValueOf(v)
	if rv.Kind() >= reflect.Uint && rv.Kind() <= reflect.Uintptr {
		return int64(rv.Uint())
	}
	return rv.Int()
}

// reflectToFloat64 converts any of Classify's FloatKind payload types
// (float32 or float64) to float64.
func reflectToFloat64(v any) float64 {
	return reflect.ValueOf(v).Float()
}

// FromValue converts v back into a host-friendly representation built
// from nil/bool/int64/float64/string/[]any/map[string]any. Map and
// Record both round-trip as a plain map[string]any, the same ambiguity
// the canonical JSON AST already has (see package ast): an untagged
// object decodes to Record, so a Map value re-entering the core through
// ToValue becomes a Record.
func FromValue(v value.Value) any {
	switch v.Kind() {
	case value.Null:
		return nil
	case value.Boolean:
		b, _ := v.AsBoolean()
		return b
	case value.Integer:
		i, _ := v.AsInteger()
		return i
	case value.Decimal:
		f, _ := v.AsDecimal()
		return f
	case value.String:
		s, _ := v.AsString()
		return s
	case value.Symbol:
		s, _ := v.AsSymbol()
		return map[string]any{"type": "symbol", "value": s}
	case value.TaggedString:
		tag, content, _ := v.TaggedString()
		return map[string]any{"type": "tagged", "tag": tag, "content": content}
	case value.Range:
		lower, upper, inclusive, _ := v.RangeBounds()
		return map[string]any{"type": "range", "lower": lower, "upper": upper, "inclusive": inclusive}
	case value.Measurement:
		val, unit, _ := v.Measurement()
		return map[string]any{"type": "measurement", "unit": unit, "value": val}
	case value.Array:
		elems, _ := v.AsArray()
		out := make([]any, len(elems))
		for i, e := range elems {
			out[i] = FromValue(e)
		}
		return out
	case value.Map:
		m, _ := v.AsMap()
		return mapFromValue(m)
	case value.Record:
		m, _ := v.AsRecord()
		return mapFromValue(m)
	default:
		return nil
	}
}

func mapFromValue(m *value.Map) map[string]any {
	out := make(map[string]any, m.Len())
	for _, pair := range m.Pairs() {
		out[pair.Key] = FromValue(pair.Value)
	}
	return out
}
