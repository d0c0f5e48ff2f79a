// Package gram implements the gram textual format: a hand-written
// lexer and recursive-descent parser that reads UTF-8 gram source into
// Pattern[subject.Subject] trees, and a total serializer that writes them
// back out in a canonical form.
//
// # Grammar
//
//	gram_document := root_record? (pattern | comment | whitespace)*
//	pattern       := node | relationship | path | subject_pattern | annotated
//	node          := '(' subject ')'
//	relationship  := node arrow node
//	path          := node (arrow node)+
//	subject_pattern := '[' subject '|' pattern_list? ']'
//	annotated     := ('@' key ('(' value ')')?)+ pattern
//	subject       := identifier? (':' label)* record?
//	identifier    := symbol | quoted_string | integer
//	record        := '{' (key ':' value (',' key ':' value)*)? '}'
//	value         := string | integer | decimal | boolean | symbol | array
//	               | range | measurement | tagged_string | record
//
// Comments run from "//" to end of line and are discarded; they never
// attach to a pattern. Empty, whitespace-only, or comment-only input
// parses successfully to an empty pattern list.
//
// The parser does not accept the leading root_record: a '{' at the top
// level of a document is reported as unexpected input.
//
// # Arrows
//
// Ten visual arrow spellings reduce to four semantic kinds (right, left,
// bidirectional, undirected); see [classifyArrow]. The arrow kind itself
// is never stored — only the resulting element order (reversed for
// "left", as given otherwise) carries direction, so the serializer always
// re-emits relationships using a single canonical spelling.
//
// # Error model
//
// Parse errors are collected into the caller-supplied [diag.Collector]
// rather than returned; each carries a span and an E_UNEXPECTED_INPUT,
// E_UNMATCHED_DELIMITER or E_INVALID_VALUE code. Unexpected-input and
// unmatched-delimiter issues also carry an expected/found detail pair;
// invalid-value issues (a bad escape or numeric literal) carry only their
// message. After an
// error the parser resynchronizes to the next token that could start a
// new top-level pattern, so one malformed construct does not prevent the
// rest of the document from parsing.
//
// # Dependencies
//
// String escape processing (including "\u{HHHH}" braced Unicode escapes)
// is delegated to internal/textlit. Positions are resolved through
// [location.PositionRegistry]; unlike a generated lexer, this hand-written
// one already tracks byte offsets, so no rune-to-byte conversion step is
// needed.
package gram
