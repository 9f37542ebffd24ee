// Package domain defines the core types and interfaces shared across
// chartleap.
//
// It holds equation categories and classifications, the two trace
// variants (line and zero-level field) with their plotly-shaped JSON
// encoding, batch results and layout, sampling settings, and the error
// taxonomy (FormatError, ParseError, EvalError). It has no dependencies on
// the evaluator, renderer or transport.
package domain
