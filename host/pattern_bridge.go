package host

import (
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
)

type pat = pattern.Pattern[subject.Subject]

// ToPattern converts a host object shaped {"value": <subject-or-value>,
// "elements": [...]} into a Pattern<Subject>, recursively. "value" is
// bridged with ToSubject if it carries the "_type": "Subject" marker,
// otherwise it is decoded the way ToValue decodes a map, and the fields
// of the resulting Record become the properties of an anonymous Subject
// (a tagged wrapper such as "type": "symbol" yields no properties).
// "elements" defaults to empty when absent.
func ToPattern(host map[string]any) (pat, error) {
	rawValue, _ := host["value"].(map[string]any)
	subj, err := patternSubject(rawValue)
	if err != nil {
		return pat{}, err
	}

	rawElements, present := host["elements"]
	if !present || rawElements == nil {
		return pattern.Point(subj), nil
	}
	items, ok := rawElements.([]any)
	if !ok {
		return pat{}, typeMismatch("elements", "[]any", rawElements)
	}
	children := make([]pat, len(items))
	for i, item := range items {
		childHost, ok := item.(map[string]any)
		if !ok {
			return pat{}, typeMismatch("elements[]", "map[string]any", item)
		}
		child, err := ToPattern(childHost)
		if err != nil {
			return pat{}, err
		}
		children[i] = child
	}
	return pattern.New(subj, children), nil
}

func patternSubject(rawValue map[string]any) (subject.Subject, error) {
	if rawValue == nil {
		return subject.Anonymous(), nil
	}
	if typ, _ := rawValue[subjectTypeMarker].(string); typ == subjectTypeSubject {
		return ToSubject(rawValue)
	}
	v, err := mapToValue(rawValue)
	if err != nil {
		return subject.Subject{}, err
	}
	rec, _ := v.AsRecord()
	return subject.New("", nil, rec), nil
}

// FromPattern converts p into the host object shape ToPattern accepts
// back. The subject is always projected through FromSubject, so the
// round trip is lossy only in that an anonymous-with-properties Subject
// built from a plain record loses the distinction between "was a Subject
// marker" and "was a plain record", collapsing to the Subject shape.
func FromPattern(p pat) map[string]any {
	elements := p.Elements()
	out := map[string]any{"value": FromSubject(p.Value())}
	if len(elements) == 0 {
		return out
	}
	items := make([]any, len(elements))
	for i, e := range elements {
		items[i] = FromPattern(e)
	}
	out["elements"] = items
	return out
}
