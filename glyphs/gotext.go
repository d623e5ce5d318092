package glyphs

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// GoText measures glyphs by shaping single runes with HarfBuzz. It is safe
// for concurrent use.
type GoText struct {
	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper
}

// LoadGoText parses font data. Empty data selects the Go Regular font.
func LoadGoText(data []byte) (*GoText, error) {
	if len(data) == 0 {
		data = goregular.TTF
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot parse font: %w", err)
	}
	return &GoText{face: face}, nil
}

// Width returns the ink extent of the glyph HarfBuzz selects for r.
func (g *GoText) Width(r rune, size float64) (float64, error) {
	if !(size > 0) {
		return 0, ErrSize
	}
	out, err := g.shape(r, size)
	if err != nil {
		return 0, err
	}
	return math.Abs(fixedToFloat(out.Glyphs[0].Width)), nil
}

// Advance returns the shaped advance of r.
func (g *GoText) Advance(r rune, size float64) (float64, error) {
	out, err := g.shape(r, size)
	if err != nil {
		return 0, err
	}
	return fixedToFloat(out.Advance), nil
}

func (g *GoText) shape(r rune, size float64) (shaping.Output, error) {
	text := []rune{r}
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      g.face,
		Size:      fixed.Int26_6(size * 64),
		Script:    language.LookupScript(r),
		Language:  language.NewLanguage("en"),
	}
	g.mu.Lock()
	out := g.shaper.Shape(input)
	g.mu.Unlock()
	if len(out.Glyphs) == 0 || out.Glyphs[0].GlyphID == 0 {
		tracer().Debugf("no glyph for %q", r)
		return out, fmt.Errorf("%w for %q", ErrNoGlyph, r)
	}
	return out, nil
}
