package classify

import (
	"fmt"
	"regexp"
	"strings"

	"chartleap/internal/domain"
)

const parametricUsage = `Invalid parametric format. Use "x=...; y=..."`

var (
	xPrefix     = regexp.MustCompile(`(?i)^x\s*(\(t\))?\s*=`)
	yPrefix     = regexp.MustCompile(`(?i)^y\s*(\(t\))?\s*=`)
	rPrefix     = regexp.MustCompile(`(?i)^r\s*(\(([a-zA-Z]+)\))?\s*=`)
	thetaToken  = regexp.MustCompile(`(?i)theta`)
	trailingArg = regexp.MustCompile(`\([^()]*\)$`)
)

// Classifier decides the plotting mode of raw equations.
type Classifier struct {
	parser domain.Parser
}

// New returns a Classifier compiling sub-expressions with p.
func New(p domain.Parser) *Classifier { return &Classifier{parser: p} }

// Classify inspects a trimmed, non-empty equation. The checks run in a
// fixed order and the first match wins: parametric, polar, cartesian.
func (c *Classifier) Classify(eq string) (domain.Classification, error) {
	switch {
	case isParametric(eq):
		return c.parametric(eq)
	case isPolar(eq):
		return c.polar(eq)
	default:
		return c.cartesian(eq)
	}
}

// isParametric: "x(t) = ...; y(t) = ..." style input.
func isParametric(eq string) bool { return strings.Contains(eq, ";") }

// isPolar: a leading r, or any mention of theta.
func isPolar(eq string) bool {
	return strings.HasPrefix(strings.ToLower(eq), "r") || thetaToken.MatchString(eq)
}

func (c *Classifier) parametric(eq string) (domain.Classification, error) {
	parts := strings.Split(eq, ";")
	if len(parts) != 2 {
		return domain.Classification{}, &domain.FormatError{Equation: eq, Reason: parametricUsage}
	}
	xSrc := strings.TrimSpace(xPrefix.ReplaceAllString(strings.TrimSpace(parts[0]), ""))
	ySrc := strings.TrimSpace(yPrefix.ReplaceAllString(strings.TrimSpace(parts[1]), ""))
	if xSrc == "" || ySrc == "" {
		return domain.Classification{}, &domain.FormatError{Equation: eq, Reason: parametricUsage}
	}
	exprs, err := c.compile(xSrc, ySrc)
	if err != nil {
		return domain.Classification{}, err
	}
	return domain.Classification{
		Category:    domain.Parametric,
		Equation:    eq,
		Sources:     []string{xSrc, ySrc},
		Expressions: exprs,
		Var:         "t",
		Trig:        callsTrig(exprs...),
	}, nil
}

func (c *Classifier) polar(eq string) (domain.Classification, error) {
	angle := "theta"
	if m := rPrefix.FindStringSubmatch(eq); m != nil && m[2] != "" && !strings.EqualFold(m[2], "theta") {
		angle = m[2]
	}
	src := strings.TrimSpace(rPrefix.ReplaceAllString(eq, ""))
	if src == "" {
		return domain.Classification{}, &domain.FormatError{Equation: eq, Reason: "missing polar expression after r ="}
	}
	exprs, err := c.compile(src)
	if err != nil {
		return domain.Classification{}, err
	}
	return domain.Classification{
		Category:    domain.Polar,
		Equation:    eq,
		Sources:     []string{src},
		Expressions: exprs,
		Var:         angle,
	}, nil
}

func (c *Classifier) cartesian(eq string) (domain.Classification, error) {
	sides := strings.Split(eq, "=")
	switch len(sides) {
	case 1:
		return c.explicit(eq, domain.ExplicitY, eq)
	case 2:
	default:
		return domain.Classification{}, &domain.FormatError{
			Equation: eq,
			Reason:   fmt.Sprintf("expected at most one '=', found %d", len(sides)-1),
		}
	}

	leftRaw, right := strings.TrimSpace(sides[0]), strings.TrimSpace(sides[1])
	if leftRaw == "" || right == "" {
		return domain.Classification{}, &domain.FormatError{Equation: eq, Reason: "both sides of '=' must be non-empty"}
	}
	rhs, err := c.parser.Parse(right)
	if err != nil {
		return domain.Classification{}, err
	}
	if cat, ok := explicitAxis(normalizeLeft(leftRaw), rhs); ok {
		return c.explicitCompiled(eq, cat, rhs), nil
	}

	zero := fmt.Sprintf("(%s) - (%s)", leftRaw, right)
	exprs, err := c.compile(zero)
	if err != nil {
		return domain.Classification{}, err
	}
	return domain.Classification{
		Category:    domain.Implicit,
		Equation:    eq,
		Sources:     []string{zero},
		Expressions: exprs,
	}, nil
}

// normalizeLeft maps "y(t)" or "X(val)" to "y" or "x".
func normalizeLeft(left string) string {
	return trailingArg.ReplaceAllString(strings.ToLower(left), "")
}

// explicitAxis reports whether "left = rhs" solves for an axis variable.
// It is a symbol heuristic: y = f(...) is explicit unless y also appears
// free on the right, and likewise for x.
func explicitAxis(left string, rhs domain.Expression) (domain.Category, bool) {
	switch {
	case left == "y" && !hasSymbol(rhs, "y"):
		return domain.ExplicitY, true
	case left == "x" && !hasSymbol(rhs, "x"):
		return domain.ExplicitX, true
	}
	return 0, false
}

func (c *Classifier) explicit(eq string, cat domain.Category, src string) (domain.Classification, error) {
	e, err := c.parser.Parse(src)
	if err != nil {
		return domain.Classification{}, err
	}
	return c.explicitCompiled(eq, cat, e), nil
}

func (c *Classifier) explicitCompiled(eq string, cat domain.Category, e domain.Expression) domain.Classification {
	axis := "x"
	if cat == domain.ExplicitX {
		axis = "y"
	}
	if usesParameter(e, axis) {
		axis = "t"
	}
	return domain.Classification{
		Category:    cat,
		Equation:    eq,
		Sources:     []string{e.Source()},
		Expressions: []domain.Expression{e},
		Var:         axis,
	}
}

// usesParameter reports whether e is written in t rather than its axis
// variable, as in y(t) = cos(t).
func usesParameter(e domain.Expression, axis string) bool {
	return hasSymbol(e, "t") && !hasSymbol(e, axis)
}

func hasSymbol(e domain.Expression, name string) bool {
	for _, s := range e.Symbols() {
		if s == name {
			return true
		}
	}
	return false
}

// callsTrig reports whether any expression calls a sin, cos or tan
// flavored function.
func callsTrig(exprs ...domain.Expression) bool {
	for _, e := range exprs {
		for _, fn := range e.Calls() {
			lower := strings.ToLower(fn)
			if strings.Contains(lower, "sin") || strings.Contains(lower, "cos") || strings.Contains(lower, "tan") {
				return true
			}
		}
	}
	return false
}

func (c *Classifier) compile(srcs ...string) ([]domain.Expression, error) {
	out := make([]domain.Expression, 0, len(srcs))
	for _, src := range srcs {
		e, err := c.parser.Parse(src)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

var _ domain.Classifier = (*Classifier)(nil)
