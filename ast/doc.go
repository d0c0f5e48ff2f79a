// Package ast implements the canonical JSON AST: a language-agnostic JSON
// projection of Pattern[subject.Subject], used as an interchange boundary
// with non-Go consumers.
//
// # Schema
//
//	Pattern  := { "subject": Subject, "elements": [Pattern*] }
//	Subject  := { "identity": string, "labels": [string*], "properties": { key: ValueJSON } }
//	ValueJSON:
//	  null/bool/string/number/array/object → native JSON
//	  Symbol       → { "type": "symbol", "value": string }
//	  TaggedString → { "type": "tagged", "tag": string, "content": string }
//	  Range        → { "type": "range", "lower": n, "upper": n, "inclusive": bool }
//	  Measurement  → { "type": "measurement", "unit": string, "value": n }
//
// Integer and Decimal are emitted as native JSON numbers; type
// discriminators are lowercase. A Range's "inclusive" field is omitted
// when false, so exclusive ranges still match the documented two-field
// shape exactly; it is required to carry the gram grammar's "..=" form
// through a round trip.
//
// A nested JSON object with no "type" field decodes to value.Record: the
// gram grammar's only map-shaped value literal is a record, so there is
// no wire representation to distinguish it from value.Map, and decoding
// always resolves the ambiguity the same way the gram serializer does
// (both kinds print as the same "{...}" record literal).
//
// A document with more than one top-level pattern is not represented
// directly; wrap it with [gram.Document] before encoding, and unwrap the
// decoded result with [gram.Undocument].
//
// # Dependencies
//
// Decode preprocesses input with github.com/tidwall/jsonc, so JSON-with-
// comments fixtures are accepted the same way adapter/json accepts them
// in the source this package is adapted from. Decode errors are collected
// into a caller-supplied diag.Collector as E_INVALID_STRUCTURE issues
// rather than returned, matching the gram parser's error model.
package ast
