// Package expression compiles and evaluates math text with govaluate.
//
// Input is rewritten before compiling so ordinary math notation means what
// it says: ^ (or **) is a right-associative power that binds tighter than a
// leading minus, so -x^2 is -(x^2) and 2^3^2 is 512; exponents may carry a
// sign (x^-1); a number or closing parenthesis followed by a name or an
// opening parenthesis multiplies (13cos(t), 2x); 1e3 is a number; and
// LaTeX-style names such as \theta lose their backslash. The constants pi
// and e are always bound, and a small table of math functions (sin, cos,
// sqrt, log, pow, ...) is available. Compiled expressions report their
// free variables and called function names for the classifier.
package expression
