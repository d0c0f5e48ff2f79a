// Package subject provides Subject, the canonical value type carried by
// Pattern<Subject>: an identity, a label set, and a property map.
//
// # Identity
//
// Identity is a symbol, not an arbitrary string: it is the key PatternGraph
// uses to reconcile patterns across sources. An empty identity means
// anonymous (not indexed by identity). [Subject.IsUUIDIdentity] offers a
// built-in identity-shape validation rule usable by the host bridge's
// validate(rules) surface alongside caller-supplied rules.
//
// # Labels
//
// Labels are an ordered set: insertion order is preserved for
// serialization, duplicates are folded. [Subject.Combine] normalizes label
// casing via internal/ident's ToLowerSnake before treating two labels as
// the same label, so "UserAccount" and "user_account" merge into one label
// while "User" and "Users" do not.
//
// # Properties
//
// Properties are an insertion-ordered map (value.Map) so serialization is
// deterministic.
package subject
