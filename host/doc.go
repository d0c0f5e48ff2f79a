// Package host implements the boundary between the core's closed types
// (Value, Subject, Pattern[Subject]) and an arbitrary host-supplied value
// (a decoded JSON document, a scripting-language object, anything
// representable as nil/bool/numeric/string/[]any/map[string]any).
//
// Bridging is total and never panics on well-formed input: every fallible
// operation returns an error (ToValue, ToSubject, ToPattern) or an
// Either-shaped result (Validate), matching the core's own "no unhandled
// exceptions cross the boundary" contract. A host object converts to a
// Subject only when it carries the "_type": "Subject" marker; any other
// map becomes a Record, mirroring how the canonical JSON AST already
// treats an untagged object (see package ast).
package host
