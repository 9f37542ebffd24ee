package domain

import (
	"errors"
	"fmt"
	"math"
)

// Range is an inclusive sampling interval with a fixed step.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Count is the number of samples in r, both endpoints included.
func (r Range) Count() int {
	return int(math.Round((r.Max-r.Min)/r.Step)) + 1
}

// Validate rejects empty, reversed or non-finite ranges.
func (r Range) Validate() error {
	for _, v := range []float64{r.Min, r.Max, r.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("range bounds must be finite")
		}
	}
	if r.Step <= 0 {
		return fmt.Errorf("range step must be positive, got %v", r.Step)
	}
	if r.Max <= r.Min {
		return fmt.Errorf("range max %v must exceed min %v", r.Max, r.Min)
	}
	return nil
}

// Settings controls colors, line width and sample density.
type Settings struct {
	Palette        []string `json:"palette"`
	LineWidth      float64  `json:"line_width"`
	Explicit       Range    `json:"explicit"`
	Parametric     Range    `json:"parametric"`
	ParametricTrig Range    `json:"parametric_trig"`
	Polar          Range    `json:"polar"`
	Grid           Range    `json:"grid"`
}

// DefaultPalette is cycled by equation index.
var DefaultPalette = []string{"#FF5722", "#2196F3", "#4CAF50", "#FFC107", "#9C27B0"}

var fullTurn = Range{Min: 0, Max: 2 * math.Pi, Step: math.Pi / 180}

// DefaultSettings returns the stock sampling resolution.
func DefaultSettings() Settings {
	return Settings{
		Palette:        append([]string(nil), DefaultPalette...),
		LineWidth:      2,
		Explicit:       Range{Min: -25, Max: 25, Step: 0.1},
		Parametric:     Range{Min: -10, Max: 10, Step: 0.1},
		ParametricTrig: fullTurn,
		Polar:          fullTurn,
		Grid:           Range{Min: -15, Max: 15, Step: 0.2},
	}
}

// Validate checks every range and the line width. Palette colors are
// checked by the palette package.
func (s Settings) Validate() error {
	if len(s.Palette) == 0 {
		return errors.New("settings: palette is empty")
	}
	if s.LineWidth <= 0 {
		return fmt.Errorf("settings: line width must be positive, got %v", s.LineWidth)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"explicit", s.Explicit},
		{"parametric", s.Parametric},
		{"parametric_trig", s.ParametricTrig},
		{"polar", s.Polar},
		{"grid", s.Grid},
	}
	for _, nr := range ranges {
		if err := nr.r.Validate(); err != nil {
			return fmt.Errorf("settings: %s: %w", nr.name, err)
		}
	}
	return nil
}
