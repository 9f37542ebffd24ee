package plot

import (
	"fmt"

	"chartleap/internal/domain"
	"chartleap/internal/logging"
	"chartleap/internal/palette"
	"chartleap/internal/sample"
	"chartleap/internal/trace"
)

// Service plots batches of equations in-process.
//
// Each equation runs classify -> sample -> evaluate on its own. A failure
// is recorded against that equation and the batch moves on, so one bad
// input never hides the others. Colors follow input position, including
// the positions of failed equations.
type Service struct {
	classifier domain.Classifier
	settings   domain.Settings
	palette    *palette.Palette
}

// New validates s and returns a Service classifying with c.
func New(c domain.Classifier, s domain.Settings) (*Service, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	p, err := palette.New(s.Palette)
	if err != nil {
		return nil, err
	}
	return &Service{classifier: c, settings: s, palette: p}, nil
}

// Plot runs one batch. The returned error is always nil; failures are in
// PlotResult.Errors.
func (s *Service) Plot(equations []string) (domain.PlotResult, error) {
	log := logging.Logger()
	res := domain.PlotResult{Layout: domain.DefaultLayout()}
	sampler := sample.New(s.settings)

	for i, eq := range equations {
		t, err := s.plotOne(sampler, i, eq)
		if err != nil {
			log.Warn("equation failed", "index", i, "equation", eq, "err", err)
			res.Errors = append(res.Errors, domain.ErrorRecord{Equation: eq, Message: err.Error()})
			continue
		}
		res.Traces = append(res.Traces, t)
	}

	switch {
	case len(equations) == 0:
		res.Message = domain.MsgNoEquations
	case res.Empty():
		res.Message = domain.MsgNothingPlotted
	}
	log.Debug("batch done", "equations", len(equations), "traces", len(res.Traces), "errors", len(res.Errors))
	return res, nil
}

func (s *Service) plotOne(sampler *sample.Sampler, i int, eq string) (domain.Trace, error) {
	c, err := s.classifier.Classify(eq)
	if err != nil {
		return nil, err
	}
	d, err := sampler.Domain(c)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("classified",
		"index", i,
		"equation", eq,
		"category", c.Category,
		"sources", c.Sources,
		"var", c.Var,
	)
	t, err := trace.Evaluate(c, d, domain.TraceMeta{
		Name:  eq,
		Color: s.palette.At(i),
		Width: s.settings.LineWidth,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate %q: %w", eq, err)
	}
	return t, nil
}

var _ domain.PlotService = (*Service)(nil)
