package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	plotpalette "gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"chartleap/internal/domain"
	"chartleap/internal/palette"
)

// Formats lists the image formats Render accepts.
var Formats = []string{"png", "svg", "pdf", "eps"}

// ErrNothingToRender is returned for a result without traces.
var ErrNothingToRender = errors.New("render: no traces")

// undefined stands in for NaN field cells so the contour tracer treats
// them as lying on the positive side of the curve.
const undefined = 1e300

// Renderer draws plot results with gonum/plot.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

// New returns a Renderer producing images of the given size in inches.
func New(widthIn, heightIn float64) *Renderer {
	return &Renderer{Width: vg.Length(widthIn) * vg.Inch, Height: vg.Length(heightIn) * vg.Inch}
}

// SupportsFormat reports whether format is one of Formats.
func SupportsFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Render draws res in format to w.
func (r *Renderer) Render(w io.Writer, res domain.PlotResult, format string) error {
	if !SupportsFormat(format) {
		return fmt.Errorf("render: unsupported format %q", format)
	}
	p, err := Build(res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(r.Width, r.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Build lays out every trace of res on a new plot.
func Build(res domain.PlotResult) (*plot.Plot, error) {
	if res.Empty() {
		return nil, ErrNothingToRender
	}
	layout := res.Layout
	p := plot.New()
	p.Title.Text = layout.Title
	p.X.Label.Text = layout.XAxis.Title
	p.Y.Label.Text = layout.YAxis.Title
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, t := range res.Traces {
		m := t.Meta()
		col, err := palette.Parse(m.Color)
		if err != nil {
			return nil, err
		}
		style := draw.LineStyle{Color: col, Width: vg.Points(m.Width)}

		switch v := t.(type) {
		case *domain.LineTrace:
			if err := addLine(p, v, style); err != nil {
				return nil, fmt.Errorf("render %q: %w", m.Name, err)
			}
		case *domain.FieldTrace:
			addField(p, v, col, style)
		default:
			return nil, fmt.Errorf("render: unknown trace %T", t)
		}
		if layout.ShowLegend {
			p.Legend.Add(m.Name, &plotter.Line{LineStyle: style})
		}
	}
	if layout.YAxis.ScaleAnchor == "x" {
		equalize(p)
	}
	return p, nil
}

func addLine(p *plot.Plot, t *domain.LineTrace, style draw.LineStyle) error {
	for _, seg := range Segments(t.X, t.Y) {
		l, err := plotter.NewLine(seg)
		if err != nil {
			return err
		}
		l.LineStyle = style
		p.Add(l)
	}
	return nil
}

// Segments splits paired samples into runs without missing points.
func Segments(x, y domain.Samples) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		if !finite(x[i]) || !finite(y[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func addField(p *plot.Plot, t *domain.FieldTrace, col color.Color, style draw.LineStyle) {
	c := plotter.NewContour(fieldGrid{t}, []float64{t.Contours.Start}, solid{col})
	c.LineStyles = []draw.LineStyle{style}
	p.Add(c)
}

// fieldGrid adapts a FieldTrace to plotter.GridXYZ.
type fieldGrid struct{ t *domain.FieldTrace }

func (g fieldGrid) Dims() (c, r int) { return len(g.t.XGrid), len(g.t.YGrid) }
func (g fieldGrid) X(c int) float64  { return g.t.XGrid[c] }
func (g fieldGrid) Y(r int) float64  { return g.t.YGrid[r] }

func (g fieldGrid) Z(c, r int) float64 {
	if v := g.t.Z[r][c]; finite(v) {
		return v
	}
	return undefined
}

// solid is a one-color palette.
type solid struct{ c color.Color }

func (s solid) Colors() []color.Color { return []color.Color{s.c} }

// equalize widens the narrower axis so both show the same data span.
func equalize(p *plot.Plot) {
	xs, ys := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	switch {
	case xs > ys:
		c := (p.Y.Min + p.Y.Max) / 2
		p.Y.Min, p.Y.Max = c-xs/2, c+xs/2
	case ys > xs:
		c := (p.X.Min + p.X.Max) / 2
		p.X.Min, p.X.Max = c-ys/2, c+ys/2
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

var _ plotpalette.Palette = solid{}
