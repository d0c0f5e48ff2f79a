package host

import (
	"testing"

	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPattern_LeafWithSubject(t *testing.T) {
	host := map[string]any{
		"value": map[string]any{"_type": "Subject", "identity": "a", "labels": []any{"Node"}},
	}
	p, err := ToPattern(host)
	require.NoError(t, err)
	assert.Equal(t, "a", p.Value().Identity())
	assert.Empty(t, p.Elements())
}

func TestToPattern_PlainRecordValueBecomesAnonymousSubjectWithProperty(t *testing.T) {
	host := map[string]any{"value": map[string]any{"x": 1}}
	p, err := ToPattern(host)
	require.NoError(t, err)
	assert.True(t, p.Value().IsAnonymousWithProperties())
}

func TestToPattern_Nested(t *testing.T) {
	host := map[string]any{
		"value": map[string]any{"_type": "Subject", "identity": "root"},
		"elements": []any{
			map[string]any{"value": map[string]any{"_type": "Subject", "identity": "a"}},
			map[string]any{"value": map[string]any{"_type": "Subject", "identity": "b"}},
		},
	}
	p, err := ToPattern(host)
	require.NoError(t, err)
	assert.Len(t, p.Elements(), 2)
	assert.Equal(t, "a", p.Elements()[0].Value().Identity())
	assert.Equal(t, "b", p.Elements()[1].Value().Identity())
}

func TestFromPattern_RoundTrip(t *testing.T) {
	inner := pattern.Point(subject.New("b", nil, nil))
	root := pattern.New(subject.New("a", []string{"Root"}, nil), []pat{inner})
	host := FromPattern(root)
	back, err := ToPattern(host)
	require.NoError(t, err)
	assert.Equal(t, "a", back.Value().Identity())
	assert.Len(t, back.Elements(), 1)
	assert.Equal(t, "b", back.Elements()[0].Value().Identity())
}
