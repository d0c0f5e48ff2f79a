package view

import (
	"github.com/relateby/pattern-go/graph"
	"github.com/relateby/pattern-go/subject"
)

// Expand produces a seed's subject and the seeds for its children. Unfold
// calls it once per node it builds.
type Expand[S any] func(seed S) (subject.Subject, []S)

type unfoldFrame[S any] struct {
	value    subject.Subject
	seeds    []S
	children []pat
	next     int
}

// Unfold builds a single Pattern tree from seed by repeatedly applying
// expand. The implementation is iterative, driven by an explicit work
// stack rather than recursion, so it does not overflow on realistically
// deep trees.
func Unfold[S any](expand Expand[S], seed S) pat {
	v, seeds := expand(seed)
	root := &unfoldFrame[S]{value: v, seeds: seeds, children: make([]pat, len(seeds))}
	stack := []*unfoldFrame[S]{root}

	for {
		top := stack[len(stack)-1]
		if top.next >= len(top.seeds) {
			built := newPattern(top.value, top.children)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return built
			}
			parent := stack[len(stack)-1]
			parent.children[parent.next] = built
			parent.next++
			continue
		}
		childValue, childSeeds := expand(top.seeds[top.next])
		stack = append(stack, &unfoldFrame[S]{
			value:    childValue,
			seeds:    childSeeds,
			children: make([]pat, len(childSeeds)),
		})
	}
}

// UnfoldGraph applies expand to each seed to build one Pattern tree per
// seed, then hands the concatenated trees to build — typically
// graph.FromPatterns with a classifier and reconciliation policy already
// bound.
func UnfoldGraph[S any, Extra any](expand Expand[S], build func([]pat) *graph.PatternGraph[Extra], seeds []S) *graph.PatternGraph[Extra] {
	patterns := make([]pat, len(seeds))
	for i, s := range seeds {
		patterns[i] = Unfold(expand, s)
	}
	return build(patterns)
}
