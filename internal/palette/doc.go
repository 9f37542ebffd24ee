// Package palette assigns trace colors by equation index.
//
// Colors are given as hex (#FF5722) or SVG names (tomato) and parsed once
// when the palette is built, so bad settings fail before a batch runs.
package palette
