// Package trace evaluates classified equations over their domains.
//
// Line modes yield a *domain.LineTrace; polar radii are converted to
// Cartesian coordinates first. Implicit equations yield a
// *domain.FieldTrace configured to draw only the zero-level contour. A
// sample whose evaluation fails, or is infinite, is stored as NaN so the
// renderer can leave a gap.
package trace
