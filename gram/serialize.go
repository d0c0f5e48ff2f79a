package gram

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

// Serialize is a total function from Pattern[Subject] to gram text. It
// chooses a canonical visual form by inspecting element count, element
// shapes, and subject fields: no elements is written as a node
// "(subject)"; one element under an anonymous subject with properties as
// annotations "@key(value) element"; two atomic elements under a subject
// with no identity as a relationship "(a)-->(b)" or "(a)-[:L {...}]->(b)";
// anything else as "[subject | e1, e2, ...]". Formatting choices
// (whitespace, optional parens) are not preserved across a parse/serialize
// round trip, but structure and value are, with three exceptions: a Null
// value is written as the bare word null, which parses back as a Symbol; a
// Map value is written in record syntax and parses back as a Record; and a
// negative number is written with a leading '-', which the parser does not
// accept as a value.
func Serialize(p pattern.Pattern[subject.Subject]) string {
	var b strings.Builder
	writePattern(&b, p)
	return b.String()
}

func writePattern(b *strings.Builder, p pattern.Pattern[subject.Subject]) {
	elements := p.Elements()
	subj := p.Value()

	switch {
	case len(elements) == 0:
		writeNode(b, subj)

	case len(elements) == 1 && subj.IsAnonymousWithProperties():
		writeAnnotations(b, subj)
		writePattern(b, elements[0])

	case len(elements) == 2 && elements[0].IsAtomic() && elements[1].IsAtomic() && subj.Identity() == "":
		writeRelationship(b, subj, elements[0], elements[1])

	default:
		writeSubjectPattern(b, subj, elements)
	}
}

func writeNode(b *strings.Builder, subj subject.Subject) {
	b.WriteByte('(')
	writeSubject(b, subj)
	b.WriteByte(')')
}

func writeAnnotations(b *strings.Builder, subj subject.Subject) {
	for _, pair := range subj.Properties().Pairs() {
		b.WriteByte('@')
		b.WriteString(pair.Key)
		b.WriteByte('(')
		writeValue(b, pair.Value)
		b.WriteString(") ")
	}
}

func writeRelationship(b *strings.Builder, subj subject.Subject, left, right pattern.Pattern[subject.Subject]) {
	writePattern(b, left)
	if subj.IsAnonymous() {
		b.WriteString("-->")
	} else {
		b.WriteString("-[")
		writeSubject(b, subj)
		b.WriteString("]->")
	}
	writePattern(b, right)
}

func writeSubjectPattern(b *strings.Builder, subj subject.Subject, elements []pattern.Pattern[subject.Subject]) {
	b.WriteByte('[')
	writeSubject(b, subj)
	b.WriteString(" | ")
	for i, e := range elements {
		if i > 0 {
			b.WriteString(", ")
		}
		writePattern(b, e)
	}
	b.WriteByte(']')
}

func writeSubject(b *strings.Builder, subj subject.Subject) {
	if subj.HasIdentity() {
		b.WriteString(quoteIdentifierOrKeep(subj.Identity()))
	}
	for _, label := range subj.Labels() {
		b.WriteByte(':')
		b.WriteString(label)
	}
	props := subj.Properties()
	if props.Len() > 0 {
		writeRecord(b, props)
	}
}

func writeRecord(b *strings.Builder, m *value.Map) {
	b.WriteByte('{')
	for i, pair := range m.Pairs() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteIdentifierOrKeep(pair.Key))
		b.WriteString(": ")
		writeValue(b, pair.Value)
	}
	b.WriteByte('}')
}

func writeValue(b *strings.Builder, v value.Value) {
	switch v.Kind() {
	case value.Null:
		b.WriteString("null")
	case value.Boolean:
		bv, _ := v.AsBoolean()
		if bv {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.Integer:
		i, _ := v.AsInteger()
		b.WriteString(strconv.FormatInt(i, 10))
	case value.Decimal:
		f, _ := v.AsDecimal()
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		b.WriteString(s)
	case value.String:
		s, _ := v.AsString()
		b.WriteString(quoteString(s))
	case value.Symbol:
		s, _ := v.AsSymbol()
		b.WriteString(s)
	case value.TaggedString:
		tag, content, _ := v.TaggedString()
		b.WriteString(tag)
		b.WriteString(quoteString(content))
	case value.Range:
		lower, upper, inclusive, _ := v.RangeBounds()
		b.WriteString(formatNumber(lower))
		if inclusive {
			b.WriteString("..=")
		} else {
			b.WriteString("..")
		}
		b.WriteString(formatNumber(upper))
	case value.Measurement:
		val, unit, _ := v.Measurement()
		b.WriteString(formatNumber(val))
		b.WriteString(unit)
	case value.Array:
		elems, _ := v.AsArray()
		b.WriteByte('[')
		for i, e := range elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, e)
		}
		b.WriteByte(']')
	case value.Map:
		m, _ := v.AsMap()
		writeRecord(b, m)
	case value.Record:
		m, _ := v.AsRecord()
		writeRecord(b, m)
	default:
		fmt.Fprintf(b, "<unsupported:%s>", v.Kind())
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// quoteIdentifierOrKeep quotes s when it does not read back as a single
// bare identifier token: when it contains whitespace, starts with a
// digit, or contains characters outside the identifier alphabet.
func quoteIdentifierOrKeep(s string) string {
	if s == "" {
		return quoteString(s)
	}
	runes := []rune(s)
	if unicode.IsDigit(runes[0]) || !isIdentStart(runes[0]) {
		return quoteString(s)
	}
	for _, r := range runes[1:] {
		if !isIdentPart(r) {
			return quoteString(s)
		}
	}
	return s
}

func quoteString(s string) string {
	return strconv.Quote(s)
}
