package job

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jbeda/geom"
	"github.com/npillmayer/nameplate"
	"github.com/npillmayer/nameplate/arctext"
	"github.com/npillmayer/nameplate/braille"
	"github.com/npillmayer/nameplate/divider"
	"github.com/npillmayer/nameplate/glyphs"
)

// Scene collects the laid out features of a plate job.
type Scene struct {
	Name     string            `json:"name,omitempty"`
	Plate    Plate             `json:"plate"`
	Arcs     []ArcText         `json:"arcs,omitempty"`
	Braille  []BrailleBlock    `json:"braille,omitempty"`
	Dividers []divider.Segment `json:"dividers,omitempty"`
	Failures []string          `json:"failures,omitempty"`

	// DividerFootprint is the merged top view of all divider segments, one
	// point list per contour.
	DividerFootprint [][]Point `json:"dividerFootprint,omitempty"`
}

// ArcText is a laid out arc text.
type ArcText struct {
	Text       string              `json:"text"`
	Font       string              `json:"font"`
	FontSize   float64             `json:"fontSize"`
	Depth      float64             `json:"depth"`
	Placements []arctext.Placement `json:"placements"`
}

// BrailleBlock is a laid out block of Braille lines, with a Unicode
// preview per line.
type BrailleBlock struct {
	Lines   []string      `json:"lines"`
	Preview []string      `json:"preview"`
	Dots    []braille.Dot `json:"dots"`
}

// checker is implemented by providers which know if a glyph is renderable.
type checker interface {
	Check(r rune) error
}

// Run validates job and lays out its features. Glyph metrics for arc texts
// are taken from p. Per-character failures do not stop the run; they are
// listed in the scene.
func Run(job *Job, p glyphs.Provider) (*Scene, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: no glyph metrics provider", ErrJob)
	}
	scene := &Scene{Name: job.Name, Plate: job.Plate}
	rec := &nameplate.Recorder{}
	for _, a := range job.Arcs {
		spec := a.Spec()
		opts := []arctext.Option{arctext.WithDiagnostics(rec)}
		if c, ok := p.(checker); ok {
			opts = append(opts, arctext.WithGlyphCheck(c.Check))
		}
		pls, err := arctext.Layout(spec, glyphs.At(p, spec.FontSize), opts...)
		if err != nil {
			tracer().Infof("arc text %q: nothing to place: %v", a.Text, err)
			continue
		}
		scene.Arcs = append(scene.Arcs, ArcText{
			Text:       spec.Text,
			Font:       spec.Font,
			FontSize:   spec.FontSize,
			Depth:      spec.Depth,
			Placements: pls,
		})
	}
	for _, b := range job.Braille {
		block := BrailleBlock{Lines: b.Lines}
		for _, line := range braille.LayoutLines(b.Lines, b.Config(), job.Plate.Thickness) {
			block.Dots = append(block.Dots, line...)
		}
		for _, line := range b.Lines {
			block.Preview = append(block.Preview, braille.Preview(line))
		}
		scene.Braille = append(scene.Braille, block)
	}
	if d := job.Divider; d != nil {
		scene.Dividers = divider.LayoutBetween(d.Spec(), job.Plate.Width, d.Lines,
			job.Plate.Thickness)
		scene.DividerFootprint = footprint(scene.Dividers)
	}
	for _, f := range rec.Failures {
		scene.Failures = append(scene.Failures, f.String())
	}
	tracer().Infof("job %q: %d arc texts, %d Braille blocks, %d divider segments, %d failures",
		job.Name, len(scene.Arcs), len(scene.Braille), len(scene.Dividers), len(scene.Failures))
	return scene, nil
}

func footprint(segs []divider.Segment) [][]Point {
	if len(segs) == 0 {
		return nil
	}
	fp := divider.Footprint(segs)
	contours := make([][]Point, fp.Contours())
	for i := range contours {
		for _, p := range fp.Contour(i) {
			contours[i] = append(contours[i], Point{p.X(), p.Y()})
		}
	}
	return contours
}

// Bounds returns the plate's outline, centered at the origin.
func (s *Scene) Bounds() geom.Rect {
	w, h := s.Plate.Width/2, s.Plate.Height/2
	return geom.Rect{Min: geom.Coord{X: -w, Y: -h}, Max: geom.Coord{X: w, Y: h}}
}

// Overflows lists features reaching beyond the plate's outline. Collision
// checks between features are out of scope.
func (s *Scene) Overflows() []string {
	plate := s.Bounds()
	var out []string
	inside := func(r geom.Rect) bool {
		return r.Min.X >= plate.Min.X && r.Min.Y >= plate.Min.Y &&
			r.Max.X <= plate.Max.X && r.Max.Y <= plate.Max.Y
	}
	for i, b := range s.Braille {
		if bb, ok := braille.Bounds(b.Dots); ok && !inside(bb) {
			out = append(out, fmt.Sprintf("Braille block #%d", i))
		}
	}
	if bb, ok := divider.Bounds(s.Dividers); ok && !inside(bb) {
		out = append(out, "dividers")
	}
	return out
}

// WriteJSON writes the scene as indented JSON.
func (s *Scene) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
