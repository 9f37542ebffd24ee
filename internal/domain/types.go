package domain

import (
	"encoding/json"
	"strings"
)

const (
	// MsgNoEquations is reported for an empty batch.
	MsgNoEquations = "Please enter at least one equation."
	// MsgNothingPlotted is reported when every equation failed.
	MsgNothingPlotted = "No valid equations to plot."
)

// PlotResult is the outcome of one batch.
type PlotResult struct {
	Traces []Trace
	Errors []ErrorRecord
	Layout Layout

	// Message is set when there is nothing to plot.
	Message string
}

// Empty reports whether the batch produced no traces.
func (r PlotResult) Empty() bool { return len(r.Traces) == 0 }

type plotResultWire struct {
	Traces  []json.RawMessage `json:"traces"`
	Errors  []ErrorRecord     `json:"errors"`
	Layout  Layout            `json:"layout"`
	Message string            `json:"message,omitempty"`
}

func (r PlotResult) MarshalJSON() ([]byte, error) {
	w := plotResultWire{
		Traces:  make([]json.RawMessage, 0, len(r.Traces)),
		Errors:  r.Errors,
		Layout:  r.Layout,
		Message: r.Message,
	}
	if w.Errors == nil {
		w.Errors = []ErrorRecord{}
	}
	for _, t := range r.Traces {
		b, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		w.Traces = append(w.Traces, b)
	}
	return json.Marshal(w)
}

func (r *PlotResult) UnmarshalJSON(data []byte) error {
	var w plotResultWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	out := PlotResult{Errors: w.Errors, Layout: w.Layout, Message: w.Message}
	for _, raw := range w.Traces {
		t, err := DecodeTrace(raw)
		if err != nil {
			return err
		}
		out.Traces = append(out.Traces, t)
	}
	*r = out
	return nil
}

// Axis describes one plot axis.
type Axis struct {
	Title       string  `json:"title"`
	AutoRange   bool    `json:"autorange"`
	ZeroLine    bool    `json:"zeroline"`
	ScaleAnchor string  `json:"scaleanchor,omitempty"`
	ScaleRatio  float64 `json:"scaleratio,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	Top    int `json:"t"`
	Bottom int `json:"b"`
	Left   int `json:"l"`
	Right  int `json:"r"`
}

// Layout is the fixed page layout handed to the renderer.
type Layout struct {
	Title      string `json:"title"`
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	ShowLegend bool   `json:"showlegend"`
	HoverMode  string `json:"hovermode"`
	Margin     Margin `json:"margin"`
}

// DefaultLayout has equal x/y scale and the legend on.
func DefaultLayout() Layout {
	return Layout{
		Title:      "Universal Graph Plotter",
		XAxis:      Axis{Title: "x", AutoRange: true, ZeroLine: true},
		YAxis:      Axis{Title: "y", AutoRange: true, ZeroLine: true, ScaleAnchor: "x", ScaleRatio: 1},
		ShowLegend: true,
		HoverMode:  "closest",
		Margin:     Margin{Top: 50, Bottom: 50, Left: 50, Right: 50},
	}
}

// NormalizeEquations trims raw input lines and drops the empty ones.
func NormalizeEquations(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
