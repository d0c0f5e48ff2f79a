package value

// Value is the closed tagged union carried inside Subjects, records, and
// arrays. The zero Value is Null.
//
// An Array Value holds its own copy of its elements. Map and Record Values
// hold their *Map by reference: copies of such a Value, and the map that
// AsMap or AsRecord returns, share it with the map passed to MapValue or
// RecordValue, so a Set on that map is visible through every one of them.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string // String, Symbol, Measurement.unit, TaggedString.tag
	s2     string // TaggedString.content
	arr    []Value
	m      *Map
	lower  float64
	upper  float64
	incRng bool
}

// NullValue returns the Null value.
func NullValue() Value {
	return Value{kind: Null}
}

// BooleanValue returns a Boolean value.
func BooleanValue(b bool) Value {
	return Value{kind: Boolean, b: b}
}

// IntegerValue returns an Integer value.
func IntegerValue(i int64) Value {
	return Value{kind: Integer, i: i}
}

// DecimalValue returns a Decimal value.
func DecimalValue(f float64) Value {
	return Value{kind: Decimal, f: f}
}

// StringValue returns a String value.
func StringValue(s string) Value {
	return Value{kind: String, s: s}
}

// SymbolValue returns a Symbol value.
func SymbolValue(s string) Value {
	return Value{kind: Symbol, s: s}
}

// ArrayValue returns an Array value. The slice is copied defensively.
func ArrayValue(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{kind: Array, arr: cp}
}

// MapValue returns a Map value wrapping m. m is taken by reference; pass
// [Map.Clone] if the caller must retain a mutable copy.
func MapValue(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: Map, m: m}
}

// RecordValue returns a Record value wrapping m. See MapValue for ownership.
func RecordValue(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: Record, m: m}
}

// RangeValue returns a Range value with the given bounds.
func RangeValue(lower, upper float64, inclusive bool) Value {
	return Value{kind: Range, lower: lower, upper: upper, incRng: inclusive}
}

// MeasurementValue returns a Measurement value.
func MeasurementValue(val float64, unit string) Value {
	return Value{kind: Measurement, f: val, s: unit}
}

// TaggedStringValue returns a TaggedString value.
func TaggedStringValue(tag, content string) Value {
	return Value{kind: TaggedString, s: tag, s2: content}
}

// Kind returns the value's variant tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the Null value.
func (v Value) IsNull() bool {
	return v.kind == Null
}

// AsBoolean returns the boolean payload and whether v.Kind() == Boolean.
func (v Value) AsBoolean() (bool, bool) {
	return v.b, v.kind == Boolean
}

// AsInteger returns the int64 payload and whether v.Kind() == Integer.
func (v Value) AsInteger() (int64, bool) {
	return v.i, v.kind == Integer
}

// AsDecimal returns the float64 payload and whether v.Kind() == Decimal.
func (v Value) AsDecimal() (float64, bool) {
	return v.f, v.kind == Decimal
}

// AsString returns the string payload and whether v.Kind() == String.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == String
}

// AsSymbol returns the symbol payload and whether v.Kind() == Symbol.
func (v Value) AsSymbol() (string, bool) {
	return v.s, v.kind == Symbol
}

// AsArray returns a defensive copy of the array payload and whether
// v.Kind() == Array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != Array {
		return nil, false
	}
	cp := make([]Value, len(v.arr))
	copy(cp, v.arr)
	return cp, true
}

// AsMap returns the map payload and whether v.Kind() == Map.
func (v Value) AsMap() (*Map, bool) {
	return v.m, v.kind == Map
}

// AsRecord returns the map payload and whether v.Kind() == Record.
func (v Value) AsRecord() (*Map, bool) {
	return v.m, v.kind == Record
}

// RangeBounds returns the lower, upper, and inclusive fields and whether
// v.Kind() == Range.
func (v Value) RangeBounds() (lower, upper float64, inclusive, ok bool) {
	return v.lower, v.upper, v.incRng, v.kind == Range
}

// Measurement returns the numeric value and unit and whether
// v.Kind() == Measurement.
func (v Value) Measurement() (val float64, unit string, ok bool) {
	return v.f, v.s, v.kind == Measurement
}

// TaggedString returns the tag and content and whether
// v.Kind() == TaggedString.
func (v Value) TaggedString() (tag, content string, ok bool) {
	return v.s, v.s2, v.kind == TaggedString
}
