package subject

import "github.com/google/uuid"

// IsUUIDIdentity reports whether the subject's identity parses as a UUID
// (any RFC 4122 variant/version). This is a built-in validation rule usable
// by the host bridge's validate(rules) surface alongside caller-supplied
// rules; it does not enforce UUID identities by default.
func (s Subject) IsUUIDIdentity() bool {
	if s.identity == "" {
		return false
	}
	_, err := uuid.Parse(s.identity)
	return err == nil
}
