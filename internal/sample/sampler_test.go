package sample_test

import (
	"math"
	"testing"

	"chartleap/internal/domain"
	"chartleap/internal/sample"
)

const eps = 1e-9

func TestDomain_Counts(t *testing.T) {
	tests := []struct {
		c        domain.Classification
		n        int
		min, max float64
	}{
		{domain.Classification{Category: domain.ExplicitY}, 501, -25, 25},
		{domain.Classification{Category: domain.ExplicitX}, 501, -25, 25},
		{domain.Classification{Category: domain.Polar}, 361, 0, 2 * math.Pi},
		{domain.Classification{Category: domain.Parametric, Trig: true}, 361, 0, 2 * math.Pi},
		{domain.Classification{Category: domain.Parametric}, 201, -10, 10},
	}
	s := sample.New(domain.DefaultSettings())
	for _, tt := range tests {
		d, err := s.Domain(tt.c)
		if err != nil {
			t.Fatalf("Domain(%v): %v", tt.c.Category, err)
		}
		if d.Grid != nil {
			t.Fatalf("Domain(%v) returned a grid", tt.c.Category)
		}
		if len(d.Values) != tt.n {
			t.Fatalf("Domain(%v) has %d points, want %d", tt.c.Category, len(d.Values), tt.n)
		}
		if d.Values[0] != tt.min || math.Abs(d.Values[tt.n-1]-tt.max) > eps {
			t.Errorf("Domain(%v) spans %v..%v, want %v..%v", tt.c.Category, d.Values[0], d.Values[tt.n-1], tt.min, tt.max)
		}
	}
}

func TestDomain_ExplicitStep(t *testing.T) {
	d, err := sample.New(domain.DefaultSettings()).Domain(domain.Classification{Category: domain.ExplicitY})
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	for i, v := range d.Values {
		want := float64(i-250) / 10
		if math.Abs(v-want) > eps {
			t.Fatalf("Values[%d] = %v, want %v", i, v, want)
		}
	}
	if math.Abs(d.Values[250]) > eps {
		t.Fatalf("midpoint = %v, want 0", d.Values[250])
	}
}

func TestDomain_GridBuiltOncePerBatch(t *testing.T) {
	s := sample.New(domain.DefaultSettings())
	a, err := s.Domain(domain.Classification{Category: domain.Implicit})
	if err != nil {
		t.Fatalf("Domain: %v", err)
	}
	b, _ := s.Domain(domain.Classification{Category: domain.Implicit})
	if a.Grid == nil || a.Grid != b.Grid {
		t.Fatal("implicit domains of one batch must share a grid")
	}
	if len(a.Grid.X) != 151 || len(a.Grid.Y) != 151 {
		t.Fatalf("grid is %dx%d, want 151x151", len(a.Grid.X), len(a.Grid.Y))
	}
	if a.Grid.X[0] != -15 || a.Grid.X[150] != 15 {
		t.Fatalf("grid spans %v..%v, want -15..15", a.Grid.X[0], a.Grid.X[150])
	}

	other := sample.New(domain.DefaultSettings()).Grid()
	if other == a.Grid {
		t.Fatal("separate batches must not share a grid")
	}
}

func TestSpan_CustomRange(t *testing.T) {
	got := sample.Span(domain.Range{Min: 0, Max: 1, Step: 0.25})
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
