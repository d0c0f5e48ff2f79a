package host

import (
	"fmt"

	"github.com/relateby/pattern-go/diag"
)

// Error wraps a diag.Issue so bridge failures carry the same structured
// detail (code, message, details) as the rest of the core, rather than a
// bare string.
type Error struct {
	Issue diag.Issue
}

func (e Error) Error() string {
	return e.Issue.Message()
}

func typeMismatch(path string, expected string, got any) error {
	return Error{Issue: diag.NewIssue(diag.Error, diag.E_HOST_TYPE_MISMATCH,
		"host value does not match the expected shape").
		WithDetail("path", path).
		WithExpectedGot(expected, goTypeName(got)).
		Build()}
}

func goTypeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
