package trace

import (
	"errors"
	"fmt"
	"math"

	"chartleap/internal/domain"
)

var errShape = errors.New("trace: classification does not match domain")

// Evaluate maps the compiled expressions of c over d and wraps the result
// with meta. Per-point failures become NaN; only a classification that
// does not fit its domain is an error.
func Evaluate(c domain.Classification, d domain.Domain, meta domain.TraceMeta) (domain.Trace, error) {
	meta.Category = c.Category
	switch c.Category {
	case domain.Parametric:
		if len(c.Expressions) != 2 || d.Values == nil {
			return nil, errShape
		}
		return &domain.LineTrace{
			TraceMeta: meta,
			X:         Line(c.Expressions[0], c.Var, d.Values),
			Y:         Line(c.Expressions[1], c.Var, d.Values),
		}, nil

	case domain.Polar:
		if len(c.Expressions) != 1 || d.Values == nil {
			return nil, errShape
		}
		x, y := polarToCartesian(Line(c.Expressions[0], c.Var, d.Values), d.Values)
		return &domain.LineTrace{TraceMeta: meta, X: x, Y: y}, nil

	case domain.ExplicitY:
		if len(c.Expressions) != 1 || d.Values == nil {
			return nil, errShape
		}
		return &domain.LineTrace{
			TraceMeta: meta,
			X:         domain.Samples(d.Values),
			Y:         Line(c.Expressions[0], c.Var, d.Values),
		}, nil

	case domain.ExplicitX:
		if len(c.Expressions) != 1 || d.Values == nil {
			return nil, errShape
		}
		return &domain.LineTrace{
			TraceMeta: meta,
			X:         Line(c.Expressions[0], c.Var, d.Values),
			Y:         domain.Samples(d.Values),
		}, nil

	case domain.Implicit:
		if len(c.Expressions) != 1 || d.Grid == nil {
			return nil, errShape
		}
		return &domain.FieldTrace{
			TraceMeta: meta,
			XGrid:     domain.Samples(d.Grid.X),
			YGrid:     domain.Samples(d.Grid.Y),
			Z:         Field(c.Expressions[0], d.Grid),
			Contours:  domain.ZeroLevel(),
		}, nil
	}
	return nil, fmt.Errorf("trace: unsupported category %v", c.Category)
}

// Line evaluates e once per value with the value bound to name.
func Line(e domain.Expression, name string, values []float64) domain.Samples {
	out := make(domain.Samples, len(values))
	scope := map[string]float64{}
	for i, v := range values {
		scope[name] = v
		out[i] = point(e, scope)
	}
	return out
}

// Field evaluates e at every grid point, binding x and y. Row j holds the
// values for g.Y[j].
func Field(e domain.Expression, g *domain.Grid) []domain.Samples {
	z := make([]domain.Samples, len(g.Y))
	scope := map[string]float64{}
	for j, y := range g.Y {
		row := make(domain.Samples, len(g.X))
		scope["y"] = y
		for i, x := range g.X {
			scope["x"] = x
			row[i] = point(e, scope)
		}
		z[j] = row
	}
	return z
}

// point evaluates one sample; failures and non-finite values are missing.
func point(e domain.Expression, scope map[string]float64) float64 {
	v, err := e.Evaluate(scope)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func polarToCartesian(r domain.Samples, theta []float64) (x, y domain.Samples) {
	x = make(domain.Samples, len(r))
	y = make(domain.Samples, len(r))
	for i, radius := range r {
		s, c := math.Sincos(theta[i])
		x[i] = radius * c
		y[i] = radius * s
	}
	return x, y
}
