package graph

import (
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
)

// ClassKind identifies which of the five default shapes a pattern falls
// into. Classification depends only on a pattern's shape and subject
// fields, never on surrounding context.
type ClassKind uint8

const (
	// ClassNode is a pattern with no elements.
	ClassNode ClassKind = iota
	// ClassRelationship is a pattern with exactly two atomic elements and
	// an identity-less subject.
	ClassRelationship
	// ClassAnnotation is a single-element pattern whose subject is
	// anonymous but carries properties.
	ClassAnnotation
	// ClassWalk is a chain of two or more relationships, right-associated
	// the way the gram parser builds multi-hop paths written with
	// right-pointing or undirected arrows. A path written with
	// left-pointing arrows nests its chain in the first element instead and
	// classifies as ClassOther.
	ClassWalk
	// ClassOther is anything that matches none of the above; callers may
	// attach a sub-classification via ClassifyWith.
	ClassOther
)

func (k ClassKind) String() string {
	switch k {
	case ClassNode:
		return "node"
	case ClassRelationship:
		return "relationship"
	case ClassAnnotation:
		return "annotation"
	case ClassWalk:
		return "walk"
	case ClassOther:
		return "other"
	default:
		return "unknown"
	}
}

// GraphClass is the result of classifying a pattern. Other is populated
// only when Kind is ClassOther, and only when a sub-classifier was
// supplied to ClassifyWith.
type GraphClass[Extra any] struct {
	Kind  ClassKind
	Other Extra
}

// OtherClassifier computes the Extra payload for a pattern that matched
// none of the default shapes. A nil OtherClassifier leaves Other at its
// zero value.
type OtherClassifier[Extra any] func(pattern.Pattern[subject.Subject]) Extra

// Classify applies the default classification rules with no Other
// sub-classifier; GraphClass[Extra].Other is always its zero value.
func Classify[Extra any](p pattern.Pattern[subject.Subject]) GraphClass[Extra] {
	return ClassifyWith[Extra](p, nil)
}

// ClassifyWith applies the default classification rules, calling other
// to compute the Extra payload when a pattern matches none of them. This
// is the escape hatch for callers who want a richer "other" category
// without overriding node/relationship/annotation/walk detection.
func ClassifyWith[Extra any](p pattern.Pattern[subject.Subject], other OtherClassifier[Extra]) GraphClass[Extra] {
	switch {
	case p.Length() == 0:
		return GraphClass[Extra]{Kind: ClassNode}
	case isRelationshipShape(p):
		return GraphClass[Extra]{Kind: ClassRelationship}
	case isAnnotationShape(p):
		return GraphClass[Extra]{Kind: ClassAnnotation}
	case isWalkShape(p):
		return GraphClass[Extra]{Kind: ClassWalk}
	default:
		var extra Extra
		if other != nil {
			extra = other(p)
		}
		return GraphClass[Extra]{Kind: ClassOther, Other: extra}
	}
}

func isRelationshipShape(p pattern.Pattern[subject.Subject]) bool {
	elements := p.Elements()
	return len(elements) == 2 &&
		elements[0].IsAtomic() &&
		elements[1].IsAtomic() &&
		!p.Value().HasIdentity()
}

func isAnnotationShape(p pattern.Pattern[subject.Subject]) bool {
	return p.Length() == 1 && p.Value().IsAnonymousWithProperties()
}

// isWalkShape recognizes the right-associative chain the gram parser's
// path builder produces: a relationship whose second element is itself a
// relationship or a further walk.
func isWalkShape(p pattern.Pattern[subject.Subject]) bool {
	elements := p.Elements()
	if len(elements) != 2 || p.Value().HasIdentity() {
		return false
	}
	tail := elements[1]
	return isRelationshipShape(tail) || isWalkShape(tail)
}
