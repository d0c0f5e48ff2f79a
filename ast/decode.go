package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/relateby/pattern-go/diag"
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

type rawPattern struct {
	Subject  rawSubject   `json:"subject"`
	Elements []rawPattern `json:"elements"`
}

type rawSubject struct {
	Identity   string                     `json:"identity"`
	Labels     []string                   `json:"labels"`
	Properties map[string]json.RawMessage `json:"properties"`
}

// Decode parses canonical JSON AST bytes into a Pattern[Subject]. Input is
// preprocessed with jsonc, so "//" and "/* */" comments are tolerated.
// Errors are collected into collector as E_INVALID_STRUCTURE issues; Decode
// returns false if any were collected, in which case the returned Pattern
// is the zero value and must not be used.
func Decode(data []byte, collector *diag.Collector) (pattern.Pattern[subject.Subject], bool) {
	d := &decoder{collector: collector}
	processed := jsonc.ToJSON(data)

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()
	var raw rawPattern
	if err := dec.Decode(&raw); err != nil {
		d.errorf("", "invalid canonical JSON AST: %s", err.Error())
		return pattern.Pattern[subject.Subject]{}, false
	}
	if tok, err := dec.Token(); err == nil {
		d.errorf("", "unexpected content after root pattern: found %v", tok)
		return pattern.Pattern[subject.Subject]{}, false
	}

	return d.toPattern("", raw)
}

type decoder struct {
	collector *diag.Collector
}

func (d *decoder) errorf(path, format string, args ...any) {
	b := diag.NewIssue(diag.Error, diag.E_INVALID_STRUCTURE, fmt.Sprintf(format, args...))
	if path != "" {
		b = b.WithDetail("path", path)
	}
	d.collector.Collect(b.Build())
}

func (d *decoder) toPattern(path string, raw rawPattern) (pattern.Pattern[subject.Subject], bool) {
	subj, ok := d.toSubject(path+".subject", raw.Subject)
	if !ok {
		return pattern.Pattern[subject.Subject]{}, false
	}
	elements := make([]pattern.Pattern[subject.Subject], 0, len(raw.Elements))
	for i, e := range raw.Elements {
		elemPath := fmt.Sprintf("%s.elements[%d]", path, i)
		ep, ok := d.toPattern(elemPath, e)
		if !ok {
			return pattern.Pattern[subject.Subject]{}, false
		}
		elements = append(elements, ep)
	}
	return pattern.New(subj, elements), true
}

func (d *decoder) toSubject(path string, raw rawSubject) (subject.Subject, bool) {
	keys := sortedKeys(raw.Properties)
	pairs := make([]value.Pair, 0, len(keys))
	for _, k := range keys {
		v, ok := d.decodeValue(path+".properties."+k, raw.Properties[k])
		if !ok {
			return subject.Subject{}, false
		}
		pairs = append(pairs, value.Pair{Key: k, Value: v})
	}
	var props *value.Map
	if len(pairs) > 0 {
		props = value.NewMapFromPairs(pairs...)
	}
	return subject.New(raw.Identity, raw.Labels, props), true
}

func (d *decoder) decodeValue(path string, raw json.RawMessage) (value.Value, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		d.errorf(path, "missing value")
		return value.Value{}, false
	}
	switch raw[0] {
	case '{':
		return d.decodeObject(path, raw)
	case '[':
		return d.decodeArray(path, raw)
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			d.errorf(path, "invalid string: %s", err.Error())
			return value.Value{}, false
		}
		return value.StringValue(s), true
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			d.errorf(path, "invalid boolean: %s", err.Error())
			return value.Value{}, false
		}
		return value.BooleanValue(b), true
	case 'n':
		return value.NullValue(), true
	default:
		return d.decodeNumber(path, raw)
	}
}

func (d *decoder) decodeNumber(path string, raw json.RawMessage) (value.Value, bool) {
	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil {
		d.errorf(path, "invalid number: %s", err.Error())
		return value.Value{}, false
	}
	if !strings.ContainsAny(num.String(), ".eE") {
		if i, err := num.Int64(); err == nil {
			return value.IntegerValue(i), true
		}
	}
	f, err := num.Float64()
	if err != nil {
		d.errorf(path, "invalid number: %s", err.Error())
		return value.Value{}, false
	}
	return value.DecimalValue(f), true
}

func (d *decoder) decodeArray(path string, raw json.RawMessage) (value.Value, bool) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		d.errorf(path, "invalid array: %s", err.Error())
		return value.Value{}, false
	}
	out := make([]value.Value, 0, len(elems))
	for i, e := range elems {
		v, ok := d.decodeValue(fmt.Sprintf("%s[%d]", path, i), e)
		if !ok {
			return value.Value{}, false
		}
		out = append(out, v)
	}
	return value.ArrayValue(out), true
}

// decodeObject handles both tagged wrapper shapes (symbol, tagged, range,
// measurement) and plain objects, which decode to value.Record.
func (d *decoder) decodeObject(path string, raw json.RawMessage) (value.Value, bool) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		d.errorf(path, "invalid object: %s", err.Error())
		return value.Value{}, false
	}

	typeRaw, hasType := m["type"]
	if !hasType {
		return d.decodeRecord(path, m)
	}

	var typ string
	if err := json.Unmarshal(typeRaw, &typ); err != nil {
		d.errorf(path, "invalid type discriminator: %s", err.Error())
		return value.Value{}, false
	}

	switch typ {
	case "symbol":
		s, ok := d.stringField(path, m, "value")
		if !ok {
			return value.Value{}, false
		}
		return value.SymbolValue(s), true
	case "tagged":
		tag, ok := d.stringField(path, m, "tag")
		if !ok {
			return value.Value{}, false
		}
		content, ok := d.stringField(path, m, "content")
		if !ok {
			return value.Value{}, false
		}
		return value.TaggedStringValue(tag, content), true
	case "range":
		lower, ok := d.numberField(path, m, "lower")
		if !ok {
			return value.Value{}, false
		}
		upper, ok := d.numberField(path, m, "upper")
		if !ok {
			return value.Value{}, false
		}
		inclusive := false
		if incRaw, present := m["inclusive"]; present {
			if err := json.Unmarshal(incRaw, &inclusive); err != nil {
				d.errorf(path, "field %q must be a boolean: %s", "inclusive", err.Error())
				return value.Value{}, false
			}
		}
		return value.RangeValue(lower, upper, inclusive), true
	case "measurement":
		unit, ok := d.stringField(path, m, "unit")
		if !ok {
			return value.Value{}, false
		}
		val, ok := d.numberField(path, m, "value")
		if !ok {
			return value.Value{}, false
		}
		return value.MeasurementValue(val, unit), true
	default:
		d.errorf(path, "unknown value type discriminator %q", typ)
		return value.Value{}, false
	}
}

func (d *decoder) decodeRecord(path string, m map[string]json.RawMessage) (value.Value, bool) {
	keys := sortedKeys(m)
	pairs := make([]value.Pair, 0, len(keys))
	for _, k := range keys {
		v, ok := d.decodeValue(path+"."+k, m[k])
		if !ok {
			return value.Value{}, false
		}
		pairs = append(pairs, value.Pair{Key: k, Value: v})
	}
	return value.RecordValue(value.NewMapFromPairs(pairs...)), true
}

func (d *decoder) stringField(path string, m map[string]json.RawMessage, key string) (string, bool) {
	raw, present := m[key]
	if !present {
		d.errorf(path, "missing required field %q", key)
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.errorf(path, "field %q must be a string: %s", key, err.Error())
		return "", false
	}
	return s, true
}

func (d *decoder) numberField(path string, m map[string]json.RawMessage, key string) (float64, bool) {
	raw, present := m[key]
	if !present {
		d.errorf(path, "missing required field %q", key)
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		d.errorf(path, "field %q must be a number: %s", key, err.Error())
		return 0, false
	}
	return f, true
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
