package host

import "fmt"

// ValidationError reports which rule failed, the identity of the pattern
// element it failed on (empty for an anonymous element), and a
// human-readable message.
type ValidationError struct {
	Rule     string
	Identity string
	Message  string
}

func (e ValidationError) Error() string {
	if e.Identity == "" {
		return fmt.Sprintf("%s: %s", e.Rule, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.Rule, e.Identity, e.Message)
}

// Rule is a named structural check against a single pattern element. Check
// returns ok=true when the element passes; its message is only used when
// ok is false.
type Rule struct {
	Name  string
	Check func(p pat) (ok bool, message string)
}

// Validate runs rules against p and every element in its subtree,
// depth-first, stopping at the first failure. It returns Right(struct{})
// when every rule passes on every element, or Left(ValidationError)
// naming the failing rule, the offending element's identity, and a
// message.
func Validate(p pat, rules []Rule) Either[ValidationError, struct{}] {
	if err := validateNode(p, rules); err != nil {
		return Left[ValidationError, struct{}](*err)
	}
	return Right[ValidationError, struct{}](struct{}{})
}

func validateNode(p pat, rules []Rule) *ValidationError {
	for _, rule := range rules {
		ok, message := rule.Check(p)
		if !ok {
			return &ValidationError{Rule: rule.Name, Identity: p.Value().Identity(), Message: message}
		}
	}
	for _, child := range p.Elements() {
		if err := validateNode(child, rules); err != nil {
			return err
		}
	}
	return nil
}

// UUIDIdentityRule requires that every identified element's identity
// parses as a UUID. Anonymous elements are exempt.
var UUIDIdentityRule = Rule{
	Name: "uuid_identity",
	Check: func(p pat) (bool, string) {
		s := p.Value()
		if !s.HasIdentity() {
			return true, ""
		}
		if !s.IsUUIDIdentity() {
			return false, "identity is not a valid UUID"
		}
		return true, ""
	},
}
