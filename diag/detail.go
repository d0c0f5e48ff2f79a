package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or type.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or type received.
	DetailKeyGot = "got"

	// DetailKeyKind is the Value/Pattern kind discriminant involved in the
	// diagnostic (e.g. "decimal", "range", "subject").
	DetailKeyKind = "kind"

	// DetailKeyToken is the offending lexer token's literal text.
	DetailKeyToken = "token"

	// DetailKeyProductionRule names the grammar production the parser was
	// attempting when it failed (e.g. "subject", "relationship", "value").
	DetailKeyProductionRule = "rule"

	// DetailKeyDelimiter is the unmatched delimiter character.
	DetailKeyDelimiter = "delimiter"

	// DetailKeyReason is the failure reason discriminant (e.g. reconciliation
	// policy name, validation rule name).
	DetailKeyReason = "reason"

	// DetailKeyField is the AST/JSON field name involved (missing, unknown,
	// or mistyped).
	DetailKeyField = "field"

	// DetailKeyDetail is the specific error description (grammar violation,
	// constraint reason, parse error).
	DetailKeyDetail = "detail"

	// DetailKeyIdentity is a Subject identity value (as its gram literal
	// text) involved in the diagnostic.
	DetailKeyIdentity = "identity"

	// DetailKeyFirstIdentity is the first-seen Subject identity in a
	// duplicate-identity diagnostic.
	DetailKeyFirstIdentity = "first_identity"

	// DetailKeyLabel is a Subject label involved in the diagnostic.
	DetailKeyLabel = "label"

	// DetailKeyPath is a traversal or query path, rendered as a sequence of
	// identities or labels joined by "->".
	DetailKeyPath = "path"

	// DetailKeyLimit is the caller-supplied bound that a bounded operation
	// (e.g. AllPaths' MaxPaths) reached.
	DetailKeyLimit = "limit"

	// DetailKeyName is an invalid identifier name (e.g. an unrecognized
	// label or relationship type name).
	DetailKeyName = "name"

	// DetailKeyContext is contextual information about the component that
	// raised the diagnostic (e.g. "Parser", "PatternGraph", "GraphView").
	DetailKeyContext = "context"

	// DetailKeyHostType is the Go runtime type name a boxed host value
	// actually held, for E_HOST_TYPE_MISMATCH diagnostics.
	DetailKeyHostType = "host_type"

	// DetailKeyRule is the caller-supplied validation rule name that
	// rejected a Value or Subject.
	DetailKeyRule = "rule"
)

// ExpectedGot creates a pair of details for type/shape mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// TokenAt creates detail entries for a syntax diagnostic naming the
// offending token and the grammar production being parsed.
//
// Use for diagnostics like E_UNEXPECTED_INPUT.
func TokenAt(token, rule string) []Detail {
	return []Detail{
		{Key: DetailKeyToken, Value: token},
		{Key: DetailKeyProductionRule, Value: rule},
	}
}

// DuplicateIdentity creates detail entries for a reconciliation conflict
// between two Subjects claiming the same identity.
//
// Use for E_DUPLICATE_IDENTITY.
func DuplicateIdentity(identity, firstIdentity, reason string) []Detail {
	return []Detail{
		{Key: DetailKeyIdentity, Value: identity},
		{Key: DetailKeyFirstIdentity, Value: firstIdentity},
		{Key: DetailKeyReason, Value: reason},
	}
}

// HostTypeMismatch creates detail entries for a host-bridge unboxing
// failure.
//
// Use for E_HOST_TYPE_MISMATCH.
func HostTypeMismatch(expected, hostType string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyHostType, Value: hostType},
	}
}

// FieldInContext creates detail entries for a structural AST diagnostic
// naming the offending field and its enclosing context.
//
// Use for E_INVALID_STRUCTURE.
func FieldInContext(field, context string) []Detail {
	return []Detail{
		{Key: DetailKeyField, Value: field},
		{Key: DetailKeyContext, Value: context},
	}
}
