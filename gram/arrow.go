package gram

// arrowKind is the semantic relationship direction an arrow token sequence
// reduces to. It is never stored on the resulting Pattern; once parsed, the
// relationship pattern's element order alone carries the direction (the
// right node last for "right", the right node first for "left", and so on
// for the other kinds).
type arrowKind uint8

const (
	arrowRight arrowKind = iota
	arrowLeft
	arrowBidirectional
	arrowUndirected
)

// strokeRune is one of the three visual "line" characters an arrow is
// drawn from: '-', '=', '~'. Rather than hard-coding the ten documented
// arrow spellings as literal strings, the lexer/parser recognize the
// general shape "optional '<' + one repeated stroke rune + optional '>'"
// (or, with an embedded relationship subject, a single stroke rune on
// each side of the bracketed subject) and classify the result by which
// ends carry an arrowhead. This generalizes cleanly to all three stroke
// styles without a lookup table, and rejects anything else (e.g. a bare
// "--" with no arrowhead, which the grammar does not accept) as a syntax
// error.
func classifyArrow(hasLeftHead, hasRightHead bool, stroke byte) (arrowKind, bool) {
	switch {
	case hasLeftHead && hasRightHead:
		return arrowBidirectional, true
	case hasLeftHead && !hasRightHead:
		return arrowLeft, true
	case !hasLeftHead && hasRightHead:
		return arrowRight, true
	default:
		// Undirected is only legal for '=' and '~' strokes; a bare "--"
		// has no textual role in the grammar.
		if stroke == '=' || stroke == '~' {
			return arrowUndirected, true
		}
		return 0, false
	}
}

// strokeByte maps a token kind to its stroke character, or 0 if the token
// is not a stroke token.
func strokeByte(k tokenKind) byte {
	switch k {
	case tokDash:
		return '-'
	case tokEq:
		return '='
	case tokTilde:
		return '~'
	default:
		return 0
	}
}
