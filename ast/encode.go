package ast

import (
	"bytes"
	"encoding/json"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

// Encode is a total function from Pattern[Subject] to canonical JSON AST
// bytes. Property keys are emitted in insertion order.
func Encode(p pattern.Pattern[subject.Subject]) []byte {
	var buf bytes.Buffer
	encodePattern(&buf, p)
	return buf.Bytes()
}

func encodePattern(buf *bytes.Buffer, p pattern.Pattern[subject.Subject]) {
	buf.WriteString(`{"subject":`)
	encodeSubject(buf, p.Value())
	buf.WriteString(`,"elements":[`)
	for i, e := range p.Elements() {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodePattern(buf, e)
	}
	buf.WriteString(`]}`)
}

func encodeSubject(buf *bytes.Buffer, subj subject.Subject) {
	buf.WriteString(`{"identity":`)
	encodeString(buf, subj.Identity())
	buf.WriteString(`,"labels":[`)
	for i, label := range subj.Labels() {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeString(buf, label)
	}
	buf.WriteString(`],"properties":`)
	encodeMap(buf, subj.Properties())
	buf.WriteByte('}')
}

func encodeMap(buf *bytes.Buffer, m *value.Map) {
	buf.WriteByte('{')
	for i, pair := range m.Pairs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeString(buf, pair.Key)
		buf.WriteByte(':')
		encodeValue(buf, pair.Value)
	}
	buf.WriteByte('}')
}

func encodeString(buf *bytes.Buffer, s string) {
	// json.Marshal on a string never errors; UTF-8 escaping is the only work.
	b, _ := json.Marshal(s)
	buf.Write(b)
}

func encodeNumber(buf *bytes.Buffer, f float64) {
	b, _ := json.Marshal(f)
	buf.Write(b)
}

func encodeValue(buf *bytes.Buffer, v value.Value) {
	switch v.Kind() {
	case value.Null:
		buf.WriteString("null")
	case value.Boolean:
		b, _ := v.AsBoolean()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.Integer:
		i, _ := v.AsInteger()
		b, _ := json.Marshal(i)
		buf.Write(b)
	case value.Decimal:
		f, _ := v.AsDecimal()
		encodeNumber(buf, f)
	case value.String:
		s, _ := v.AsString()
		encodeString(buf, s)
	case value.Symbol:
		s, _ := v.AsSymbol()
		buf.WriteString(`{"type":"symbol","value":`)
		encodeString(buf, s)
		buf.WriteByte('}')
	case value.TaggedString:
		tag, content, _ := v.TaggedString()
		buf.WriteString(`{"type":"tagged","tag":`)
		encodeString(buf, tag)
		buf.WriteString(`,"content":`)
		encodeString(buf, content)
		buf.WriteByte('}')
	case value.Range:
		lower, upper, inclusive, _ := v.RangeBounds()
		buf.WriteString(`{"type":"range","lower":`)
		encodeNumber(buf, lower)
		buf.WriteString(`,"upper":`)
		encodeNumber(buf, upper)
		if inclusive {
			buf.WriteString(`,"inclusive":true`)
		}
		buf.WriteByte('}')
	case value.Measurement:
		val, unit, _ := v.Measurement()
		buf.WriteString(`{"type":"measurement","unit":`)
		encodeString(buf, unit)
		buf.WriteString(`,"value":`)
		encodeNumber(buf, val)
		buf.WriteByte('}')
	case value.Array:
		elems, _ := v.AsArray()
		buf.WriteByte('[')
		for i, e := range elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodeValue(buf, e)
		}
		buf.WriteByte(']')
	case value.Map:
		m, _ := v.AsMap()
		encodeMap(buf, m)
	case value.Record:
		m, _ := v.AsRecord()
		encodeMap(buf, m)
	}
}
