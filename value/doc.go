// Package value provides the closed tagged-union Value type carried inside
// Subjects, records, and arrays throughout this module.
//
// # Kinds
//
// A Value is exactly one of: Null, Boolean, Integer, Decimal, String,
// Symbol, Array, Map, Range, Measurement, TaggedString, or Record. Scalars
// (Null, Boolean, Integer, Decimal, String, Symbol) carry no identity.
// An Array holds its own copy of its elements; Map and Record hold their
// *Map by reference (see [MapValue]).
//
// # Equality and Ordering
//
// [Value.Equal] implements deep structural equality; floats compare by bit
// pattern so NaN-carrying values compare consistently with themselves.
// [Value.Compare] implements a total, deterministic order across all kinds.
//
// # Dependencies
//
// This package depends only on the standard library. It sits at the base
// of the value/subject/pattern tier and is imported by subject, graph,
// gram, ast and host.
package value
