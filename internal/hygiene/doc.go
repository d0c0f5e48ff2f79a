// Package hygiene provides programmatic verification of architectural invariants.
//
// This package contains tests that enforce layering constraints across the
// module. These tests serve as the authoritative gate for dependency hygiene;
// shell snippets in documentation are for convenience only.
//
// # Tier Import Rules
//
// The module has a tiered architecture where lower-tier packages must not
// import upper-tier packages:
//
//   - immutable: stdlib only (no other packages)
//   - location: stdlib + golang.org/x/text/unicode/norm (no other packages)
//   - diag: stdlib + location (no upper-tier packages)
//   - value, subject, pattern: stdlib + diag + location, and each may import
//     the ones before it in this list (subject: value; pattern: value, subject); these packages
//     define the closed data model and must not know about codecs, graphs,
//     or the host bridge
//   - gram, ast: may additionally import value, subject, pattern
//   - graph, view: may additionally import gram-independent packages (they
//     consume parsed patterns, not gram source text)
//   - host: may import everything; it is the outermost tier
//
// # Test Coverage
//
// [TestTierImports] verifies these constraints using `go list -deps -test`,
// which includes both production and test dependencies. This catches cases where
// test files violate layering even if production code is clean.
//
// Packages that don't exist yet are skipped. Once a tiered package is
// created, it will automatically be tested.
package hygiene
