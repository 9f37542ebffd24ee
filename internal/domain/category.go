package domain

import (
	"encoding/json"
	"fmt"
)

// Category is the plotting mode chosen for an equation.
type Category int

const (
	Parametric Category = iota + 1
	Polar
	ExplicitY
	ExplicitX
	Implicit
)

var categoryNames = map[Category]string{
	Parametric: "parametric",
	Polar:      "polar",
	ExplicitY:  "explicit-y",
	ExplicitX:  "explicit-x",
	Implicit:   "implicit",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// IsLine reports whether the category renders as a line trace.
func (c Category) IsLine() bool { return c != Implicit }

// ParseCategory maps a category name back to its value.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c Category) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Classification is the classifier's verdict on one equation.
//
// Sources and Expressions are index aligned: a parametric equation holds
// x(t) then y(t); every other category holds a single expression (the
// zero-form for Implicit).
type Classification struct {
	Category    Category
	Equation    string
	Sources     []string
	Expressions []Expression

	// Var is the variable bound to the sampled values. Implicit
	// classifications bind both x and y and leave Var empty.
	Var string

	// Trig is set for parametric equations that call sin, cos or tan.
	Trig bool
}

// Domain holds the independent-variable samples for one trace: Values for
// line modes, Grid for Implicit.
type Domain struct {
	Values []float64
	Grid   *Grid
}

// Grid is a rectangular sample lattice. It is shared between traces and
// must not be mutated after construction.
type Grid struct {
	X []float64
	Y []float64
}

// ClassificationSummary is the serialisable view of a Classification.
type ClassificationSummary struct {
	Equation    string   `json:"equation"`
	Category    Category `json:"category"`
	Expressions []string `json:"expressions"`
	Var         string   `json:"variable,omitempty"`
	Trig        bool     `json:"trig,omitempty"`
}

// Summary drops the compiled expressions from c.
func (c Classification) Summary() ClassificationSummary {
	return ClassificationSummary{
		Equation:    c.Equation,
		Category:    c.Category,
		Expressions: append([]string(nil), c.Sources...),
		Var:         c.Var,
		Trig:        c.Trig,
	}
}
