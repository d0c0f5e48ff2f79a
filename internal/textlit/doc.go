// Package textlit provides text literal conversion utilities for the gram
// grammar's string tokens.
//
// This package handles the conversion of gram string literals to Go strings,
// including escape sequence processing via strconv.Unquote. It supports both
// double-quoted ("string") and single-quoted ('string') literals with standard
// Go escape sequences (\n, \t, \uXXXX, etc.), plus the braced Unicode escape
// form \u{H...H} (1-6 hex digits, Rust-style) that strconv.Unquote does not
// natively accept.
//
// # Internal Package
//
// This package is internal to the module. Its API may change without
// notice between versions. External consumers should not import this package.
//
// # Main Functions
//
//   - ConvertString: Converts gram string literals (double or single quoted) to
//     Go strings, processing escape sequences including \u{H...H}. Returns the
//     original string alongside an error for invalid escapes to enable proper
//     diagnostics.
//
// # Usage Notes
//
// This package is positioned in internal/ rather than as part of the gram
// parsing layer to allow both gram and other internal utilities to depend on
// it without creating upward dependencies.
package textlit
