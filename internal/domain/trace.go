package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// TraceKind discriminates the two trace variants on the wire.
type TraceKind string

const (
	KindLine  TraceKind = "scatter"
	KindField TraceKind = "contour"
)

// Trace is a rendering-ready result for one equation. It is implemented by
// *LineTrace and *FieldTrace only.
type Trace interface {
	Kind() TraceKind
	Meta() TraceMeta
	isTrace()
}

// TraceMeta is the display metadata shared by both variants.
type TraceMeta struct {
	Name     string
	Color    string
	Width    float64
	Category Category
}

// LineTrace holds paired coordinates. Missing points are NaN.
type LineTrace struct {
	TraceMeta
	X Samples
	Y Samples
}

func (*LineTrace) Kind() TraceKind   { return KindLine }
func (t *LineTrace) Meta() TraceMeta { return t.TraceMeta }
func (*LineTrace) isTrace()          {}

// Contours configures which levels of a field are drawn.
type Contours struct {
	Coloring   string  `json:"coloring"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Size       float64 `json:"size"`
	ShowLabels bool    `json:"showlabels"`
}

// ZeroLevel draws the f(x, y) = 0 curve only, unfilled.
func ZeroLevel() Contours { return Contours{Coloring: "none"} }

// FieldTrace holds a scalar field over a grid; Z[j][i] is the value at
// (XGrid[i], YGrid[j]).
type FieldTrace struct {
	TraceMeta
	XGrid    Samples
	YGrid    Samples
	Z        []Samples
	Contours Contours
}

func (*FieldTrace) Kind() TraceKind   { return KindField }
func (t *FieldTrace) Meta() TraceMeta { return t.TraceMeta }
func (*FieldTrace) isTrace()          {}

type lineStyle struct {
	Width float64 `json:"width"`
	Color string  `json:"color"`
}

type lineWire struct {
	Type     TraceKind `json:"type"`
	Mode     string    `json:"mode"`
	Name     string    `json:"name"`
	X        Samples   `json:"x"`
	Y        Samples   `json:"y"`
	Line     lineStyle `json:"line"`
	Category Category  `json:"category"`
}

type fieldWire struct {
	Type      TraceKind `json:"type"`
	Name      string    `json:"name"`
	X         Samples   `json:"x"`
	Y         Samples   `json:"y"`
	Z         []Samples `json:"z"`
	Contours  Contours  `json:"contours"`
	Line      lineStyle `json:"line"`
	ShowScale bool      `json:"showscale"`
	Category  Category  `json:"category"`
}

// MarshalJSON emits the plotly line-trace shape.
func (t *LineTrace) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineWire{
		Type:     KindLine,
		Mode:     "lines",
		Name:     t.Name,
		X:        t.X,
		Y:        t.Y,
		Line:     lineStyle{Width: t.Width, Color: t.Color},
		Category: t.Category,
	})
}

func (t *LineTrace) UnmarshalJSON(data []byte) error {
	var w lineWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = LineTrace{
		TraceMeta: TraceMeta{Name: w.Name, Color: w.Line.Color, Width: w.Line.Width, Category: w.Category},
		X:         w.X,
		Y:         w.Y,
	}
	return nil
}

// MarshalJSON emits the plotly contour-trace shape.
func (t *FieldTrace) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldWire{
		Type:     KindField,
		Name:     t.Name,
		X:        t.XGrid,
		Y:        t.YGrid,
		Z:        t.Z,
		Contours: t.Contours,
		Line:     lineStyle{Width: t.Width, Color: t.Color},
		Category: t.Category,
	})
}

func (t *FieldTrace) UnmarshalJSON(data []byte) error {
	var w fieldWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = FieldTrace{
		TraceMeta: TraceMeta{Name: w.Name, Color: w.Line.Color, Width: w.Line.Width, Category: w.Category},
		XGrid:     w.X,
		YGrid:     w.Y,
		Z:         w.Z,
		Contours:  w.Contours,
	}
	return nil
}

// DecodeTrace decodes either variant by its "type" field.
func DecodeTrace(data []byte) (Trace, error) {
	var head struct {
		Type TraceKind `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Type {
	case KindLine:
		t := new(LineTrace)
		return t, json.Unmarshal(data, t)
	case KindField:
		t := new(FieldTrace)
		return t, json.Unmarshal(data, t)
	default:
		return nil, fmt.Errorf("unknown trace type %q", head.Type)
	}
}

// Samples is a float sequence whose non-finite entries travel as JSON null.
type Samples []float64

func (s Samples) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	b := make([]byte, 0, len(s)*8+2)
	b = append(b, '[')
	for i, v := range s {
		if i > 0 {
			b = append(b, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			b = append(b, "null"...)
			continue
		}
		b = strconv.AppendFloat(b, v, 'g', -1, 64)
	}
	return append(b, ']'), nil
}

func (s *Samples) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Samples, len(raw))
	for i, p := range raw {
		if p == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *p
	}
	*s = out
	return nil
}
