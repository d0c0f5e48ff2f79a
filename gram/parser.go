package gram

import (
	"strconv"
	"strings"

	"github.com/relateby/pattern-go/diag"
	"github.com/relateby/pattern-go/internal/textlit"
	"github.com/relateby/pattern-go/location"
	"github.com/relateby/pattern-go/pattern"
	"github.com/relateby/pattern-go/subject"
	"github.com/relateby/pattern-go/value"
)

// Parser parses gram source text into a sequence of top-level
// Pattern[subject.Subject] trees, collecting diagnostics in the
// caller-supplied collector rather than returning an error.
type Parser struct {
	sourceID location.SourceID
	registry location.PositionRegistry
	collector *diag.Collector

	lex *lexer
	cur token

	context []string
}

// NewParser creates a Parser for the given source identity. registry
// converts the byte offsets the lexer tracks into line/column positions;
// pass the same [location.PositionRegistry] the source content was
// registered with (e.g. an internal source registry) so error spans carry
// accurate positions.
func NewParser(sourceID location.SourceID, collector *diag.Collector, registry location.PositionRegistry) *Parser {
	return &Parser{sourceID: sourceID, collector: collector, registry: registry}
}

// Parse parses source and returns the document's top-level patterns.
// Empty, whitespace-only, or comment-only input returns a non-nil empty
// slice and collects no issues. Parse errors are collected rather than
// returned; at least one issue is collected for every malformed
// construct, and the parser resynchronizes at the next plausible
// delimiter to keep collecting further errors instead of aborting.
func (p *Parser) Parse(source []byte) []pattern.Pattern[subject.Subject] {
	p.lex = newLexer(source)
	p.advance()

	patterns := make([]pattern.Pattern[subject.Subject], 0)
	for p.cur.kind != tokEOF {
		pat, ok := p.parsePattern()
		if !ok {
			p.resync()
			continue
		}
		patterns = append(patterns, pat)
	}
	return patterns
}

// Document wraps a list of top-level patterns as produced by [Parser.Parse]
// into the single-pattern framing the canonical JSON AST uses: an
// anonymous-subject root whose elements are the document's top-level
// patterns. Both framings coexist; [Undocument] reverses this.
func Document(patterns []pattern.Pattern[subject.Subject]) pattern.Pattern[subject.Subject] {
	return pattern.New(subject.Anonymous(), patterns)
}

// Undocument extracts the top-level pattern list from a root produced by
// [Document].
func Undocument(root pattern.Pattern[subject.Subject]) []pattern.Pattern[subject.Subject] {
	return root.Elements()
}

func (p *Parser) advance() {
	p.cur = p.lex.next()
}

func (p *Parser) span(start, end token) location.Span {
	if p.registry == nil {
		return location.Span{}
	}
	startPos := p.registry.PositionAt(p.sourceID, start.start)
	endPos := p.registry.PositionAt(p.sourceID, end.end)
	if startPos.IsZero() || endPos.IsZero() {
		return location.Span{}
	}
	return location.Span{Source: p.sourceID, Start: startPos, End: endPos}
}

func (p *Parser) pushContext(ctx string) { p.context = append(p.context, ctx) }
func (p *Parser) popContext()            { p.context = p.context[:len(p.context)-1] }

func (p *Parser) contextLabel() string {
	if len(p.context) == 0 {
		return ""
	}
	return strings.Join(p.context, " > ")
}

func (p *Parser) errorf(code diag.Code, tok token, expected, found, message string) {
	b := diag.NewIssue(diag.Error, code, message).WithSpan(p.span(tok, tok))
	if expected != "" || found != "" {
		b = b.WithExpectedGot(expected, found)
	}
	if ctx := p.contextLabel(); ctx != "" {
		b = b.WithDetail("context", ctx)
	}
	p.collector.Collect(b.Build())
}

func (p *Parser) expect(kind tokenKind) bool {
	if p.cur.kind == kind {
		return true
	}
	p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, kind.String(), p.cur.kind.String(),
		"unexpected token while parsing gram text")
	return false
}

// resync advances past tokens until it finds one that could plausibly
// start a new top-level pattern, or reaches end of input. This lets a
// single malformed construct produce one error while the rest of the
// document still parses.
func (p *Parser) resync() {
	for p.cur.kind != tokEOF {
		switch p.cur.kind {
		case tokLParen, tokLBracket, tokAt:
			return
		}
		p.advance()
	}
}

// parsePattern parses one of node, relationship, path, subject_pattern, or
// annotated form, per the pattern alternation.
func (p *Parser) parsePattern() (pattern.Pattern[subject.Subject], bool) {
	switch p.cur.kind {
	case tokAt:
		return p.parseAnnotated()
	case tokLBracket:
		return p.parseSubjectPatternForm()
	case tokLParen:
		node, ok := p.parseNode()
		if !ok {
			return pattern.Pattern[subject.Subject]{}, false
		}
		if p.startsArrow() {
			return p.parsePath(node)
		}
		return node, true
	default:
		p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "'(', '[', or '@'", p.cur.kind.String(),
			"expected the start of a pattern")
		return pattern.Pattern[subject.Subject]{}, false
	}
}

// parseNode parses '(' subject ')'.
func (p *Parser) parseNode() (pattern.Pattern[subject.Subject], bool) {
	if !p.expect(tokLParen) {
		return pattern.Pattern[subject.Subject]{}, false
	}
	p.advance()
	p.pushContext("inside node")
	subj, ok := p.parseSubject()
	p.popContext()
	if !ok {
		return pattern.Pattern[subject.Subject]{}, false
	}
	if !p.expect(tokRParen) {
		return pattern.Pattern[subject.Subject]{}, false
	}
	p.advance()
	return pattern.Point(subj), true
}

// parseSubjectPatternForm parses '[' subject '|' pattern_list? ']'.
func (p *Parser) parseSubjectPatternForm() (pattern.Pattern[subject.Subject], bool) {
	p.advance() // consume '['
	p.pushContext("inside subject pattern")
	subj, ok := p.parseSubject()
	if !ok {
		p.popContext()
		return pattern.Pattern[subject.Subject]{}, false
	}
	if !p.expect(tokPipe) {
		p.popContext()
		return pattern.Pattern[subject.Subject]{}, false
	}
	p.advance()

	var elements []pattern.Pattern[subject.Subject]
	for p.cur.kind != tokRBracket && p.cur.kind != tokEOF {
		elem, ok := p.parsePattern()
		if !ok {
			p.popContext()
			return pattern.Pattern[subject.Subject]{}, false
		}
		elements = append(elements, elem)
		if p.cur.kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	p.popContext()
	if !p.expect(tokRBracket) {
		return pattern.Pattern[subject.Subject]{}, false
	}
	p.advance()
	return pattern.New(subj, elements), true
}

// parseAnnotated parses ('@' key ('(' value ')')?)+ pattern, collapsing
// every annotation into one anonymous properties record wrapping the
// final pattern.
//
// The abstract grammar allows a nested pattern as an annotation argument
// ("value_or_pattern"), but value.Value has no variant that can hold a
// Pattern, and the serializer's canonical form table (which only shows
// "@k1(v1) @k2(v2) element") gives no wire shape for that case. This
// parser accepts only value literals as annotation arguments.
func (p *Parser) parseAnnotated() (pattern.Pattern[subject.Subject], bool) {
	var pairs []value.Pair
	for p.cur.kind == tokAt {
		atTok := p.cur
		p.advance()
		if p.cur.kind != tokIdent {
			p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "annotation key", p.cur.kind.String(),
				"expected an identifier after '@'")
			return pattern.Pattern[subject.Subject]{}, false
		}
		key := p.cur.text
		p.advance()

		v := value.NullValue()
		if p.cur.kind == tokLParen {
			p.advance()
			p.pushContext("inside annotation value for '" + key + "'")
			parsed, ok := p.parseValue()
			p.popContext()
			if !ok {
				return pattern.Pattern[subject.Subject]{}, false
			}
			v = parsed
			if !p.expect(tokRParen) {
				return pattern.Pattern[subject.Subject]{}, false
			}
			p.advance()
		}
		_ = atTok
		pairs = append(pairs, value.Pair{Key: key, Value: v})
	}

	inner, ok := p.parsePattern()
	if !ok {
		return pattern.Pattern[subject.Subject]{}, false
	}
	props := value.NewMapFromPairs(pairs...)
	return pattern.New(subject.New("", nil, props), []pattern.Pattern[subject.Subject]{inner}), true
}

// parseSubject parses identifier? (':' label)* record?.
func (p *Parser) parseSubject() (subject.Subject, bool) {
	identity := ""
	switch p.cur.kind {
	case tokIdent, tokString, tokInteger:
		id, ok := p.identityText(p.cur)
		if !ok {
			return subject.Subject{}, false
		}
		identity = id
		p.advance()
	}

	var labels []string
	for p.cur.kind == tokColon {
		p.advance()
		if p.cur.kind != tokIdent {
			p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "label", p.cur.kind.String(),
				"expected a label after ':'")
			return subject.Subject{}, false
		}
		labels = append(labels, p.cur.text)
		p.advance()
	}

	var props *value.Map
	if p.cur.kind == tokLBrace {
		rec, ok := p.parseRecord()
		if !ok {
			return subject.Subject{}, false
		}
		props = rec
	}

	return subject.New(identity, labels, props), true
}

// identityText converts an identity token (bare identifier, string, or
// integer) into its textual identity form.
func (p *Parser) identityText(tok token) (string, bool) {
	switch tok.kind {
	case tokIdent, tokInteger:
		return tok.text, true
	case tokString:
		s, err := textlit.ConvertString(tok.text)
		if err != nil {
			p.errorf(diag.E_INVALID_VALUE, tok, "", "", "invalid string escape in identity: "+err.Error())
			return "", false
		}
		return s, true
	default:
		return "", false
	}
}

// parseRecord parses '{' (key ':' value (',' key ':' value)*)? '}'.
func (p *Parser) parseRecord() (*value.Map, bool) {
	p.advance() // consume '{'
	p.pushContext("inside record")
	defer p.popContext()

	pairs := make([]value.Pair, 0)
	for p.cur.kind != tokRBrace && p.cur.kind != tokEOF {
		if p.cur.kind != tokIdent && p.cur.kind != tokString {
			p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "property key", p.cur.kind.String(),
				"expected a property key")
			return nil, false
		}
		key, ok := p.identityText(p.cur)
		if !ok {
			return nil, false
		}
		p.advance()
		if !p.expect(tokColon) {
			return nil, false
		}
		p.advance()
		v, ok := p.parseValueInContext(key)
		if !ok {
			return nil, false
		}
		pairs = append(pairs, value.Pair{Key: key, Value: v})
		if p.cur.kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(tokRBrace) {
		return nil, false
	}
	p.advance()
	return value.NewMapFromPairs(pairs...), true
}

func (p *Parser) parseValueInContext(key string) (value.Value, bool) {
	p.pushContext("parsing value of key '" + key + "'")
	defer p.popContext()
	return p.parseValue()
}

// parseValue parses one value literal: string, integer, decimal, boolean,
// symbol, array, range, measurement, or tagged string.
func (p *Parser) parseValue() (value.Value, bool) {
	switch p.cur.kind {
	case tokString:
		return p.parseStringOrTagged(nil)
	case tokInteger, tokDecimal:
		return p.parseNumericLiteral()
	case tokIdent:
		return p.parseIdentLiteral()
	case tokLBracket:
		return p.parseArray()
	case tokLBrace:
		rec, ok := p.parseRecord()
		if !ok {
			return value.Value{}, false
		}
		return value.RecordValue(rec), true
	case tokBadString:
		p.errorf(diag.E_UNMATCHED_DELIMITER, p.cur, "closing quote", "end of input",
			"unterminated string literal")
		return value.Value{}, false
	default:
		p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "a value", p.cur.kind.String(), "expected a value")
		return value.Value{}, false
	}
}

func (p *Parser) parseStringOrTagged(tagTok *token) (value.Value, bool) {
	tok := p.cur
	s, err := textlit.ConvertString(tok.text)
	if err != nil {
		p.errorf(diag.E_INVALID_VALUE, tok, "", "", "invalid string escape: "+err.Error())
		return value.Value{}, false
	}
	p.advance()
	if tagTok != nil {
		return value.TaggedStringValue(tagTok.text, s), true
	}
	return value.StringValue(s), true
}

// parseIdentLiteral parses a bare identifier value: true/false booleans, a
// tagged string when immediately adjacent to a quoted string, or a Symbol
// otherwise.
func (p *Parser) parseIdentLiteral() (value.Value, bool) {
	tok := p.cur
	switch tok.text {
	case "true":
		p.advance()
		return value.BooleanValue(true), true
	case "false":
		p.advance()
		return value.BooleanValue(false), true
	}
	p.advance()
	if p.cur.kind == tokString && p.cur.adjacent {
		return p.parseStringOrTagged(&tok)
	}
	return value.SymbolValue(tok.text), true
}

// parseNumericLiteral parses an integer or decimal, then checks for an
// immediately adjacent range (".."), or unit identifier (measurement).
func (p *Parser) parseNumericLiteral() (value.Value, bool) {
	tok := p.cur
	isDecimal := tok.kind == tokDecimal
	p.advance()

	if p.cur.kind == tokDotDot {
		return p.parseRangeFrom(tok, isDecimal)
	}
	if p.cur.kind == tokIdent && p.cur.adjacent {
		unit := p.cur.text
		p.advance()
		val, ok := numericTokenToFloat(tok, isDecimal)
		if !ok {
			return value.Value{}, false
		}
		return value.MeasurementValue(val, unit), true
	}

	if isDecimal {
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			p.errorf(diag.E_INVALID_VALUE, tok, "", "", "invalid decimal literal: "+err.Error())
			return value.Value{}, false
		}
		return value.DecimalValue(f), true
	}
	i, err := strconv.ParseInt(tok.text, 10, 64)
	if err != nil {
		p.errorf(diag.E_INVALID_VALUE, tok, "", "", "invalid integer literal: "+err.Error())
		return value.Value{}, false
	}
	return value.IntegerValue(i), true
}

func numericTokenToFloat(tok token, isDecimal bool) (float64, bool) {
	if isDecimal {
		f, err := strconv.ParseFloat(tok.text, 64)
		return f, err == nil
	}
	i, err := strconv.ParseInt(tok.text, 10, 64)
	return float64(i), err == nil
}

func (p *Parser) parseRangeFrom(lowerTok token, lowerIsDecimal bool) (value.Value, bool) {
	p.advance() // consume '..'
	inclusive := false
	if p.cur.kind == tokEq {
		inclusive = true
		p.advance()
	}
	if p.cur.kind != tokInteger && p.cur.kind != tokDecimal {
		p.errorf(diag.E_UNEXPECTED_INPUT, p.cur, "range upper bound", p.cur.kind.String(),
			"expected a number after '..'")
		return value.Value{}, false
	}
	upperTok := p.cur
	upperIsDecimal := upperTok.kind == tokDecimal
	p.advance()

	lower, ok := numericTokenToFloat(lowerTok, lowerIsDecimal)
	if !ok {
		p.errorf(diag.E_INVALID_VALUE, lowerTok, "", "", "invalid range lower bound")
		return value.Value{}, false
	}
	upper, ok := numericTokenToFloat(upperTok, upperIsDecimal)
	if !ok {
		p.errorf(diag.E_INVALID_VALUE, upperTok, "", "", "invalid range upper bound")
		return value.Value{}, false
	}
	return value.RangeValue(lower, upper, inclusive), true
}

func (p *Parser) parseArray() (value.Value, bool) {
	p.advance() // consume '['
	p.pushContext("inside array")
	defer p.popContext()

	var elems []value.Value
	for p.cur.kind != tokRBracket && p.cur.kind != tokEOF {
		v, ok := p.parseValue()
		if !ok {
			return value.Value{}, false
		}
		elems = append(elems, v)
		if p.cur.kind == tokComma {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(tokRBracket) {
		return value.Value{}, false
	}
	p.advance()
	return value.ArrayValue(elems), true
}
