package host

import (
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

// subjectTypeMarker is the literal discriminator a host map carries to be
// recognized as a Subject projection rather than a plain Record. It is
// distinct from the Value-level "type" key used in ToValue/FromValue.
const subjectTypeMarker = "_type"

// subjectTypeSubject is the only recognized subjectTypeMarker value.
const subjectTypeSubject = "Subject"

// ToSubject converts a host map into a Subject. The map must carry
// "_type": "Subject"; "identity" (string, optional), "labels"
// ([]any of string, optional), and "properties" (map[string]any, optional)
// are read from it. Any other shape is a type mismatch: use ToValue
// directly for a plain Record.
func ToSubject(host map[string]any) (subject.Subject, error) {
	typ, _ := host[subjectTypeMarker].(string)
	if typ != subjectTypeSubject {
		return subject.Subject{}, typeMismatch(subjectTypeMarker, `"Subject"`, typ)
	}

	identity, err := subjectIdentity(host)
	if err != nil {
		return subject.Subject{}, err
	}
	labels, err := subjectLabels(host)
	if err != nil {
		return subject.Subject{}, err
	}
	props, err := subjectProperties(host)
	if err != nil {
		return subject.Subject{}, err
	}
	return subject.New(identity, labels, props), nil
}

func subjectIdentity(host map[string]any) (string, error) {
	raw, present := host["identity"]
	if !present || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", typeMismatch("identity", "string", raw)
	}
	return s, nil
}

func subjectLabels(host map[string]any) ([]string, error) {
	raw, present := host["labels"]
	if !present || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, typeMismatch("labels", "[]any of string", raw)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, typeMismatch("labels[]", "string", item)
		}
		labels[i] = s
	}
	return labels, nil
}

func subjectProperties(host map[string]any) (*value.Map, error) {
	raw, present := host["properties"]
	if !present || raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, typeMismatch("properties", "map[string]any", raw)
	}
	v, err := recordValue(m)
	if err != nil {
		return nil, err
	}
	props, _ := v.AsRecord()
	return props, nil
}

// FromSubject converts s into the host map shape ToSubject accepts back,
// carrying the "_type": "Subject" marker.
func FromSubject(s subject.Subject) map[string]any {
	out := map[string]any{subjectTypeMarker: subjectTypeSubject}
	if s.HasIdentity() {
		out["identity"] = s.Identity()
	}
	if labels := s.Labels(); len(labels) > 0 {
		items := make([]any, len(labels))
		for i, l := range labels {
			items[i] = l
		}
		out["labels"] = items
	}
	if props := s.Properties(); props.Len() > 0 {
		out["properties"] = mapFromValue(props)
	}
	return out
}
