// Package sample builds the independent-variable domains.
//
// Domains depend only on the category and the configured ranges, never on
// the expression:
//
//   - Parametric: 0..2π in 1° steps when sin, cos or tan is called,
//     otherwise -10..10 in steps of 0.1
//   - Polar: 0..2π in 1° steps
//   - Explicit-Y / Explicit-X: -25..25 in steps of 0.1
//   - Implicit: a -15..15 grid in steps of 0.2 on both axes
package sample
