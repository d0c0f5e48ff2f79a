package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// API layer that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategorySyntax is for gram lexer/parser errors.
	CategorySyntax

	// CategoryValue is for Value/Subject construction and comparison errors.
	CategoryValue

	// CategorySerialize is for gram/AST serialization errors.
	CategorySerialize

	// CategoryGraph is for PatternGraph construction and query errors.
	CategoryGraph

	// CategoryHost is for host-value bridge errors.
	CategoryHost
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySyntax:
		return "syntax"
	case CategoryValue:
		return "value"
	case CategorySerialize:
		return "serialize"
	case CategoryGraph:
		return "graph"
	case CategoryHost:
		return "host"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_SYNTAX").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Syntax codes (gram lexer/parser).
var (
	// E_SYNTAX indicates a malformed gram token sequence that the grammar
	// does not accept (e.g. an unterminated string, a stray delimiter).
	E_SYNTAX = code("E_SYNTAX", CategorySyntax)

	// E_UNEXPECTED_INPUT indicates the parser found a token it was not
	// expecting at the current grammar position (e.g. a value where a
	// subject identity was required).
	E_UNEXPECTED_INPUT = code("E_UNEXPECTED_INPUT", CategorySyntax)

	// E_UNMATCHED_DELIMITER indicates an opening bracket, brace, or
	// quote has no matching close before end of input.
	E_UNMATCHED_DELIMITER = code("E_UNMATCHED_DELIMITER", CategorySyntax)
)

// Value codes (Value/Subject construction).
var (
	// E_INVALID_VALUE indicates a literal could not be converted into a
	// well-formed Value (e.g. a Decimal literal with no digits, a Range
	// whose bounds are not comparable, an out-of-range numeric literal).
	E_INVALID_VALUE = code("E_INVALID_VALUE", CategoryValue)

	// E_VALIDATION indicates a Subject or Value failed a caller-supplied
	// validation rule (the host bridge's validate(rules) surface, or Subject identity
	// rules such as IsUUIDIdentity).
	E_VALIDATION = code("E_VALIDATION", CategoryValue)
)

// Serialize codes (gram/AST output).
var (
	// E_UNSUPPORTED_VALUE indicates a Value variant or shape cannot be
	// represented in the target serialization (e.g. a host value that
	// escaped boxing, a cyclic Pattern passed to a non-cycle-aware writer).
	E_UNSUPPORTED_VALUE = code("E_UNSUPPORTED_VALUE", CategorySerialize)

	// E_INVALID_STRUCTURE indicates the canonical JSON AST input is
	// shaped incorrectly for decoding (wrong field types, missing
	// discriminant, or an object that is neither a Value nor a Pattern
	// node per the documented wire shape).
	E_INVALID_STRUCTURE = code("E_INVALID_STRUCTURE", CategorySerialize)
)

// Graph codes (PatternGraph/GraphQuery).
var (
	// E_DUPLICATE_IDENTITY indicates two Subjects in the same graph share
	// an identity that the active reconciliation policy does not permit
	// to merge.
	E_DUPLICATE_IDENTITY = code("E_DUPLICATE_IDENTITY", CategoryGraph)

	// E_UNRESOLVED_REFERENCE indicates a relationship pattern refers to a
	// Subject identity that was never indexed into the graph.
	E_UNRESOLVED_REFERENCE = code("E_UNRESOLVED_REFERENCE", CategoryGraph)

	// E_CYCLE_LIMIT indicates a bounded traversal (e.g. AllPaths) hit its
	// caller-supplied cap before exhausting the search space.
	E_CYCLE_LIMIT = code("E_CYCLE_LIMIT", CategoryGraph)
)

// Host codes (host-value bridge).
var (
	// E_HOST_TYPE_MISMATCH indicates a boxed host value's runtime shape
	// does not match what the caller asked the bridge to unbox it as.
	E_HOST_TYPE_MISMATCH = code("E_HOST_TYPE_MISMATCH", CategoryHost)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Syntax
	E_SYNTAX,
	E_UNEXPECTED_INPUT,
	E_UNMATCHED_DELIMITER,
	// Value
	E_INVALID_VALUE,
	E_VALIDATION,
	// Serialize
	E_UNSUPPORTED_VALUE,
	E_INVALID_STRUCTURE,
	// Graph
	E_DUPLICATE_IDENTITY,
	E_UNRESOLVED_REFERENCE,
	E_CYCLE_LIMIT,
	// Host
	E_HOST_TYPE_MISMATCH,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
