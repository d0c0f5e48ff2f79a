package graph

import (
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
)

// pat is shorthand for the pattern type every graph operates over: a
// pattern tree whose node value is a Subject.
type pat = pattern.Pattern[subject.Subject]

func newPattern(v subject.Subject, elements []pat) pat {
	return pattern.New(v, elements)
}
