package gram

import (
	"github.com/relateby/pattern-go/diag"
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
)

func (p *Parser) startsArrow() bool {
	switch p.cur.kind {
	case tokLT, tokDash, tokEq, tokTilde:
		return true
	default:
		return false
	}
}

// parsePath parses the (arrow node)+ continuation of `path := node (arrow
// node)+`, which also covers the single-edge `relationship := node arrow
// node` case when there is exactly one continuation. Edges are collected
// flat, left to right, then assembled right-associatively: the leftmost
// edge's pattern wraps the relationship formed by everything to its
// right, so "(a)-r1->(b)-r2->(c)" becomes relationship(r1, a,
// relationship(r2, b, c)).
func (p *Parser) parsePath(first pattern.Pattern[subject.Subject]) (pattern.Pattern[subject.Subject], bool) {
	nodes := []pattern.Pattern[subject.Subject]{first}
	var kinds []arrowKind
	var edgeSubjects []subject.Subject

	for p.startsArrow() {
		kind, edgeSubj, ok := p.parseArrow()
		if !ok {
			return pattern.Pattern[subject.Subject]{}, false
		}
		node, ok := p.parseNode()
		if !ok {
			return pattern.Pattern[subject.Subject]{}, false
		}
		nodes = append(nodes, node)
		kinds = append(kinds, kind)
		edgeSubjects = append(edgeSubjects, edgeSubj)
	}

	return buildPath(nodes, kinds, edgeSubjects, 0), true
}

func buildPath(nodes []pattern.Pattern[subject.Subject], kinds []arrowKind, subjs []subject.Subject, i int) pattern.Pattern[subject.Subject] {
	left := nodes[i]
	var right pattern.Pattern[subject.Subject]
	if i == len(kinds)-1 {
		right = nodes[i+1]
	} else {
		right = buildPath(nodes, kinds, subjs, i+1)
	}
	return relationshipPattern(left, right, kinds[i], subjs[i])
}

func relationshipPattern(left, right pattern.Pattern[subject.Subject], kind arrowKind, subj subject.Subject) pattern.Pattern[subject.Subject] {
	var elements []pattern.Pattern[subject.Subject]
	if kind == arrowLeft {
		elements = []pattern.Pattern[subject.Subject]{right, left}
	} else {
		elements = []pattern.Pattern[subject.Subject]{left, right}
	}
	return pattern.New(subj, elements)
}

// parseArrow parses one arrow token sequence: an optional '<' arrowhead, a
// stroke (possibly wrapping a bracketed relationship subject), and an
// optional '>' arrowhead. See [classifyArrow] for how the heads map to an
// arrowKind.
func (p *Parser) parseArrow() (arrowKind, subject.Subject, bool) {
	hasLeftHead := false
	if p.cur.kind == tokLT {
		hasLeftHead = true
		p.advance()
	}

	stroke := strokeByte(p.cur.kind)
	if stroke == 0 {
		p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "arrow stroke ('-', '=', or '~')", p.cur.kind.String(),
			"expected an arrow between two nodes")
		return 0, subject.Subject{}, false
	}
	p.advance()

	relSubj := subject.Anonymous()
	if p.cur.kind == tokLBracket {
		p.advance()
		p.pushContext("inside relationship subject")
		s, ok := p.parseSubject()
		p.popContext()
		if !ok {
			return 0, subject.Subject{}, false
		}
		relSubj = s
		if !p.expect(tokRBracket) {
			return 0, subject.Subject{}, false
		}
		p.advance()
	}

	if strokeByte(p.cur.kind) != stroke {
		p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "matching arrow stroke", p.cur.kind.String(),
			"arrow strokes on both sides of a relationship must match")
		return 0, subject.Subject{}, false
	}
	p.advance()

	hasRightHead := false
	if p.cur.kind == tokGT {
		hasRightHead = true
		p.advance()
	}

	kind, ok := classifyArrow(hasLeftHead, hasRightHead, stroke)
	if !ok {
		p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "'>' or '<'", p.cur.kind.String(),
			"a '-' stroke has no undirected form; use '-->', '<--', '-[...]->', or switch to '==' or '~~'")
		return 0, subject.Subject{}, false
	}
	return kind, relSubj, true
}
