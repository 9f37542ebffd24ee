package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Palette is an ordered list of trace colors, cycled by equation index.
type Palette struct {
	names  []string
	colors []color.RGBA
}

// New parses every entry, failing on the first unknown color.
func New(names []string) (*Palette, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("palette: no colors")
	}
	p := &Palette{names: append([]string(nil), names...), colors: make([]color.RGBA, len(names))}
	for i, n := range names {
		c, err := Parse(n)
		if err != nil {
			return nil, err
		}
		p.colors[i] = c
	}
	return p, nil
}

// Len is the number of colors.
func (p *Palette) Len() int { return len(p.names) }

// At returns the color name for equation index i.
func (p *Palette) At(i int) string { return p.names[i%len(p.names)] }

// RGBA returns the parsed color for equation index i.
func (p *Palette) RGBA(i int) color.RGBA { return p.colors[i%len(p.colors)] }

// Parse accepts #RGB, #RRGGBB or an SVG color name such as "tomato".
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("palette: unknown color %q", s)
}

func parseHex(s string) (color.RGBA, error) {
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("palette: bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
