package domain_test

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"chartleap/internal/domain"
)

func TestSamples_NonFiniteAsNull(t *testing.T) {
	s := domain.Samples{1.5, math.NaN(), math.Inf(-1), -2}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "[1.5,null,null,-2]" {
		t.Fatalf("got %s", b)
	}

	var back domain.Samples
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[0] != 1.5 || !math.IsNaN(back[1]) || !math.IsNaN(back[2]) || back[3] != -2 {
		t.Fatalf("got %v", back)
	}
}

func TestLineTrace_JSONShape(t *testing.T) {
	tr := &domain.LineTrace{
		TraceMeta: domain.TraceMeta{Name: "y = x", Color: "#FF5722", Width: 2, Category: domain.ExplicitY},
		X:         domain.Samples{0, 1},
		Y:         domain.Samples{0, 1},
	}
	b, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["type"] != "scatter" || m["mode"] != "lines" || m["category"] != "explicit-y" {
		t.Fatalf("unexpected shape: %s", b)
	}
	line, _ := m["line"].(map[string]any)
	if line["color"] != "#FF5722" || line["width"] != 2.0 {
		t.Fatalf("line style = %v", m["line"])
	}
}

func TestPlotResult_RoundTrip(t *testing.T) {
	in := domain.PlotResult{
		Traces: []domain.Trace{
			&domain.LineTrace{
				TraceMeta: domain.TraceMeta{Name: "r = 1", Color: "#2196F3", Width: 2, Category: domain.Polar},
				X:         domain.Samples{1, 0},
				Y:         domain.Samples{0, 1},
			},
			&domain.FieldTrace{
				TraceMeta: domain.TraceMeta{Name: "x^2 + y^2 = 1", Color: "#4CAF50", Width: 2, Category: domain.Implicit},
				XGrid:     domain.Samples{-1, 1},
				YGrid:     domain.Samples{-1, 1},
				Z:         []domain.Samples{{1, 1}, {1, 1}},
				Contours:  domain.ZeroLevel(),
			},
		},
		Errors: []domain.ErrorRecord{{Equation: "y =", Message: "Invalid equation format"}},
		Layout: domain.DefaultLayout(),
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"traces":[{"type":"scatter"`) {
		t.Fatalf("unexpected encoding: %s", b)
	}

	var out domain.PlotResult
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestDecodeTrace_UnknownType(t *testing.T) {
	if _, err := domain.DecodeTrace([]byte(`{"type":"heatmap"}`)); err == nil {
		t.Fatal("expected error for unknown trace type")
	}
}

func TestCategory_JSON(t *testing.T) {
	for _, c := range []domain.Category{domain.Parametric, domain.Polar, domain.ExplicitY, domain.ExplicitX, domain.Implicit} {
		b, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("marshal %v: %v", c, err)
		}
		var back domain.Category
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if back != c {
			t.Fatalf("got %v, want %v", back, c)
		}
		if c.IsLine() != (c != domain.Implicit) {
			t.Fatalf("%v.IsLine() = %t", c, c.IsLine())
		}
	}
	var c domain.Category
	if err := json.Unmarshal([]byte(`"spiral"`), &c); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestErrors_Matching(t *testing.T) {
	var err error = &domain.FormatError{Equation: "y = x = 1", Reason: "Invalid equation format"}
	if !errors.Is(err, domain.ErrFormat) || errors.Is(err, domain.ErrParse) {
		t.Fatal("FormatError must match ErrFormat only")
	}

	cause := errors.New("unbalanced parenthesis")
	err = &domain.ParseError{Expression: "(x", Err: cause}
	if !errors.Is(err, domain.ErrParse) || !errors.Is(err, cause) {
		t.Fatal("ParseError must match ErrParse and unwrap its cause")
	}

	rec := domain.ErrorRecord{Equation: "y = (x", Message: "boom"}
	if rec.String() != `Could not plot "y = (x": boom` {
		t.Fatalf("got %s", rec.String())
	}
}

func TestNormalizeEquations(t *testing.T) {
	got := domain.NormalizeEquations([]string{"  y = x ", "", "\t", "r = 1", "y = x"})
	want := []string{"y = x", "r = 1", "y = x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRange_Count(t *testing.T) {
	tests := []struct {
		r    domain.Range
		want int
	}{
		{domain.Range{Min: -25, Max: 25, Step: 0.1}, 501},
		{domain.Range{Min: -10, Max: 10, Step: 0.1}, 201},
		{domain.Range{Min: 0, Max: 2 * math.Pi, Step: math.Pi / 180}, 361},
		{domain.Range{Min: -15, Max: 15, Step: 0.2}, 151},
	}
	for _, tt := range tests {
		if got := tt.r.Count(); got != tt.want {
			t.Errorf("%+v.Count() = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestSettings_Validate(t *testing.T) {
	if err := domain.DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	mutations := map[string]func(*domain.Settings){
		"empty palette":  func(s *domain.Settings) { s.Palette = nil },
		"zero width":     func(s *domain.Settings) { s.LineWidth = 0 },
		"negative step":  func(s *domain.Settings) { s.Explicit.Step = -1 },
		"reversed grid":  func(s *domain.Settings) { s.Grid.Min, s.Grid.Max = 1, -1 },
		"infinite polar": func(s *domain.Settings) { s.Polar.Max = math.Inf(1) },
	}
	for name, mutate := range mutations {
		s := domain.DefaultSettings()
		mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
