package ast

import (
	"testing"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
	"github.com/stretchr/testify/assert"
)

func TestEncode_AnonymousLeaf(t *testing.T) {
	got := Encode(pattern.Point(subject.Anonymous()))
	assert.JSONEq(t, `{"subject":{"identity":"","labels":[],"properties":{}},"elements":[]}`, string(got))
}

func TestEncode_IdentityLabelsProperties(t *testing.T) {
	subj := subject.New("alice", []string{"Person", "Admin"}, value.NewMapFromPairs(
		value.Pair{Key: "age", Value: value.IntegerValue(30)},
	))
	got := Encode(pattern.Point(subj))
	assert.JSONEq(t, `{"subject":{"identity":"alice","labels":["Person","Admin"],"properties":{"age":30}},"elements":[]}`, string(got))
}

func TestEncode_NestedElements(t *testing.T) {
	a := pattern.Point(subject.New("a", nil, nil))
	b := pattern.Point(subject.New("b", nil, nil))
	p := pattern.New(subject.Anonymous(), []pattern.Pattern[subject.Subject]{a, b})

	got := Encode(p)
	assert.JSONEq(t, `{
		"subject": {"identity":"","labels":[],"properties":{}},
		"elements": [
			{"subject":{"identity":"a","labels":[],"properties":{}},"elements":[]},
			{"subject":{"identity":"b","labels":[],"properties":{}},"elements":[]}
		]
	}`, string(got))
}

func TestEncode_ValueKinds(t *testing.T) {
	subj := subject.New("x", nil, value.NewMapFromPairs(
		value.Pair{Key: "sym", Value: value.SymbolValue("active")},
		value.Pair{Key: "tagged", Value: value.TaggedStringValue("date", "2024-01-01")},
		value.Pair{Key: "excl", Value: value.RangeValue(1, 10, false)},
		value.Pair{Key: "incl", Value: value.RangeValue(1, 10, true)},
		value.Pair{Key: "weight", Value: value.MeasurementValue(5, "kg")},
		value.Pair{Key: "nested", Value: value.RecordValue(value.NewMapFromPairs(
			value.Pair{Key: "a", Value: value.IntegerValue(1)},
		))},
	))
	got := Encode(pattern.Point(subj))
	assert.JSONEq(t, `{
		"subject": {
			"identity": "x",
			"labels": [],
			"properties": {
				"sym": {"type":"symbol","value":"active"},
				"tagged": {"type":"tagged","tag":"date","content":"2024-01-01"},
				"excl": {"type":"range","lower":1,"upper":10},
				"incl": {"type":"range","lower":1,"upper":10,"inclusive":true},
				"weight": {"type":"measurement","unit":"kg","value":5},
				"nested": {"a": 1}
			}
		},
		"elements": []
	}`, string(got))
}

func TestEncode_PropertyOrderPreserved(t *testing.T) {
	subj := subject.New("x", nil, value.NewMapFromPairs(
		value.Pair{Key: "z", Value: value.IntegerValue(1)},
		value.Pair{Key: "a", Value: value.IntegerValue(2)},
	))
	got := string(Encode(pattern.Point(subj)))
	zIdx := indexOf(got, `"z"`)
	aIdx := indexOf(got, `"a"`)
	assert.True(t, zIdx < aIdx, "expected insertion order z before a, got %s", got)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
