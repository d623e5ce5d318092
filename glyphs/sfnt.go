package glyphs

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNT measures glyphs of a TrueType or OpenType font. It is safe for
// concurrent use.
type SFNT struct {
	mu   sync.Mutex
	font *opentype.Font
	buf  sfnt.Buffer
}

// LoadSFNT parses font data. Empty data selects the Go Regular font.
func LoadSFNT(data []byte) (*SFNT, error) {
	if len(data) == 0 {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font: %w", err)
	}
	return &SFNT{font: f}, nil
}

// Name returns the font's full name, if present.
func (s *SFNT) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, err := s.font.Name(&s.buf, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

// Width returns the width of the glyph's ink bounding box at size units
// per em.
func (s *SFNT) Width(r rune, size float64) (float64, error) {
	if !(size > 0) {
		return 0, ErrSize
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	gi, err := s.index(r)
	if err != nil {
		return 0, err
	}
	ppem := fixed.Int26_6(size * 64)
	bounds, _, err := s.font.GlyphBounds(&s.buf, gi, ppem, font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph bounds of %q: %w", r, err)
	}
	return fixedToFloat(bounds.Max.X - bounds.Min.X), nil
}

// Advance returns the horizontal advance of the glyph at size units per em.
func (s *SFNT) Advance(r rune, size float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	gi, err := s.index(r)
	if err != nil {
		return 0, err
	}
	adv, err := s.font.GlyphAdvance(&s.buf, gi, fixed.Int26_6(size*64), font.HintingNone)
	if err != nil {
		return 0, fmt.Errorf("glyph advance of %q: %w", r, err)
	}
	return fixedToFloat(adv), nil
}

// Check reports ErrNoGlyph for characters the font cannot render. It may
// serve as a glyph check for arc text layout.
func (s *SFNT) Check(r rune) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.index(r)
	return err
}

func (s *SFNT) index(r rune) (sfnt.GlyphIndex, error) {
	gi, err := s.font.GlyphIndex(&s.buf, r)
	if err != nil {
		return 0, fmt.Errorf("glyph index of %q: %w", r, err)
	}
	if gi == 0 {
		tracer().Debugf("no glyph for %q", r)
		return 0, fmt.Errorf("%w for %q", ErrNoGlyph, r)
	}
	return gi, nil
}

func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
