/*
Package glyphs measures characters for text layout.

Arc text placement needs the rendered width of every visible character at
the text's font size. A Provider measures the ink extent of single runes;
At binds a provider to a font size, yielding the metrics function the
layout engine expects:

	provider, err := glyphs.LoadSFNT(fontBytes)
	placements, err := arctext.Layout(spec, glyphs.At(provider, spec.FontSize))

Two font-backed providers are available: SFNT, which reads TrueType and
OpenType fonts with golang.org/x/image, and GoText, which shapes single
runes with the HarfBuzz port of go-text/typesetting. Both fall back to the
Go Regular font if no font data is given. Fixed measures every character
alike, for tests and dry runs.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package glyphs

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/nameplate/arctext"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'nameplate.glyphs'
func tracer() tracing.Trace {
	return tracing.Select("nameplate.glyphs")
}

var (
	// ErrNoGlyph indicates that a font has no glyph for a character.
	ErrNoGlyph = errors.New("font has no glyph")
	// ErrSize indicates a non-positive font size.
	ErrSize = errors.New("font size must be positive")
)

// Provider measures the ink width of a character, in the units of size.
type Provider interface {
	Width(r rune, size float64) (float64, error)
}

// At binds a provider to a font size.
func At(p Provider, size float64) arctext.Metrics {
	return func(r rune) (float64, error) {
		return p.Width(r, size)
	}
}

// Fixed is a provider measuring every character as the same fraction of
// the font size.
type Fixed float64

// Width returns f × size.
func (f Fixed) Width(r rune, size float64) (float64, error) {
	if !(size > 0) {
		return 0, ErrSize
	}
	return float64(f) * size, nil
}

// Kind selects a font-backed provider implementation.
type Kind string

// Provider kinds.
const (
	KindSFNT   Kind = "sfnt"
	KindGoText Kind = "gotext"
	KindFixed  Kind = "fixed"
)

// Open creates a provider of kind k for a font file. An empty path selects
// the Go Regular font. Fixed providers ignore the path and measure 0.6 em.
func Open(k Kind, path string) (Provider, error) {
	var data []byte
	if path != "" && k != KindFixed {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("cannot read font: %w", err)
		}
	}
	switch k {
	case KindSFNT, "":
		return LoadSFNT(data)
	case KindGoText:
		return LoadGoText(data)
	case KindFixed:
		return Fixed(0.6), nil
	}
	return nil, fmt.Errorf("unknown metrics provider %q", k)
}
