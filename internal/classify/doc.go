// Package classify decides how a free-form equation should be plotted.
//
// Checks run in order and the first match wins:
//
//   - Parametric   "x(t) = f(t); y(t) = g(t)", split on ';'
//   - Polar        a leading r, or any mention of theta / \theta
//   - Explicit-Y   "y = f(x)" or a bare "f(x)"; "y(t) = f(t)" binds t
//   - Explicit-X   "x = f(y)"; "x(t) = f(t)" binds t
//   - Implicit     anything else with one '=', rewritten as (lhs) - (rhs)
//
// The explicit/implicit split is a symbol heuristic (is the axis variable
// free on the right-hand side?) kept behind small named predicates.
// Malformed input (a parametric equation without exactly two parts, more
// than one '=', an empty side) is a *domain.FormatError.
package classify
