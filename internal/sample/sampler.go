package sample

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"chartleap/internal/domain"
)

// Sampler hands out the fixed sample sequences of one batch. The implicit
// grid is built on first use and then shared by every implicit equation
// of the batch. A Sampler is not safe for concurrent use.
type Sampler struct {
	settings domain.Settings
	grid     *domain.Grid
}

// New returns a Sampler for one batch.
func New(s domain.Settings) *Sampler { return &Sampler{settings: s} }

// Span returns r.Count() evenly spaced points from r.Min to r.Max, both
// endpoints exact.
func Span(r domain.Range) []float64 {
	n := r.Count()
	if n < 2 {
		return []float64{r.Min}
	}
	pts := floats.Span(make([]float64, n), r.Min, r.Max)
	pts[n-1] = r.Max
	return pts
}

// RangeFor returns the sampling range used for a line-mode classification.
func (s *Sampler) RangeFor(c domain.Classification) (domain.Range, error) {
	switch c.Category {
	case domain.Parametric:
		if c.Trig {
			return s.settings.ParametricTrig, nil
		}
		return s.settings.Parametric, nil
	case domain.Polar:
		return s.settings.Polar, nil
	case domain.ExplicitY, domain.ExplicitX:
		return s.settings.Explicit, nil
	case domain.Implicit:
		return s.settings.Grid, nil
	}
	return domain.Range{}, fmt.Errorf("no sampling range for %v", c.Category)
}

// Domain returns the samples for c: a 1-D sequence for line modes, the
// shared grid for Implicit.
func (s *Sampler) Domain(c domain.Classification) (domain.Domain, error) {
	if c.Category == domain.Implicit {
		return domain.Domain{Grid: s.Grid()}, nil
	}
	r, err := s.RangeFor(c)
	if err != nil {
		return domain.Domain{}, err
	}
	return domain.Domain{Values: Span(r)}, nil
}

// Grid returns the batch grid, building it on first call.
func (s *Sampler) Grid() *domain.Grid {
	if s.grid == nil {
		axis := Span(s.settings.Grid)
		s.grid = &domain.Grid{X: axis, Y: axis}
	}
	return s.grid
}
