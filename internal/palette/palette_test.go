package palette_test

import (
	"image/color"
	"testing"

	"chartleap/internal/domain"
	"chartleap/internal/palette"
)

func TestPalette_CyclesByIndex(t *testing.T) {
	p, err := palette.New(domain.DefaultPalette)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", p.Len())
	}
	for i := 0; i < 12; i++ {
		if got, want := p.At(i), domain.DefaultPalette[i%5]; got != want {
			t.Errorf("At(%d) = %s, want %s", i, got, want)
		}
	}
	if got := p.RGBA(5); got != (color.RGBA{R: 0xFF, G: 0x57, B: 0x22, A: 0xFF}) {
		t.Errorf("RGBA(5) = %v, want #FF5722", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#2196F3", color.RGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF}},
		{"#fff", color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{"Tomato", color.RGBA{R: 0xFF, G: 0x63, B: 0x47, A: 0xFF}},
	}
	for _, tt := range tests {
		got, err := palette.Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"#12", "#GGGGGG", "notacolor"} {
		if _, err := palette.Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", bad)
		}
	}
	if _, err := palette.New(nil); err == nil {
		t.Error("New(nil) succeeded, want error")
	}
}
