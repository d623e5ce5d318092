package arctext

import (
	"math"

	"github.com/jbeda/geom"
	"github.com/npillmayer/nameplate"
)

// Width heuristics, as fractions of the font size.
const (
	SpaceWidth    = 0.3 // width of a space character
	LetterGap     = 0.1 // gap added to every measured glyph
	FallbackWidth = 0.6 // width of a glyph which could not be measured
)

// Layout places the visible characters of spec.Text along the arc.
//
// It returns one placement per non-space character, in input order. If the
// spec is invalid (empty text, no font reference, radius ≤ 0), Layout
// returns no placements and an error wrapping one of ErrEmptyText,
// ErrNoFont or ErrRadius; callers treat this as "nothing to place".
//
// Failures of single characters do not abort the layout: a glyph which
// cannot be measured gets a fallback width, a glyph rejected by a
// GlyphCheck is skipped. Both are reported to the diagnostics sink.
func Layout(spec Spec, metrics Metrics, opts ...Option) ([]Placement, error) {
	if err := spec.Validate(); err != nil {
		tracer().Debugf("arc text not laid out: %v", err)
		return nil, err
	}
	if metrics == nil {
		return nil, ErrNoMetrics
	}
	o := collect(opts)
	runes := []rune(spec.Text)
	widths := measure(spec.FontSize, runes, metrics, o.diag)
	total := sum(widths)
	tracer().Debugf("arc text %q: total width %g, arc scale %g", spec.Text, total,
		ArcScale(spec, widths))
	current, dir := spec.anchor()
	placements := make([]Placement, 0, len(runes))
	accumulated := 0.0
	for i, r := range runes {
		w := widths[i]
		if r == ' ' {
			accumulated += w
			continue
		}
		offset := 0.0
		if total != 0 {
			offset = (accumulated + w/2) / total * spec.Span
		}
		angle := current + float64(dir)*offset
		if o.check != nil {
			if err := o.check(r); err != nil {
				// rejected glyphs do not consume arc width
				nameplate.Report(o.diag, nameplate.Failure{Unit: "glyph", Index: i, Char: r, Err: err})
				continue
			}
		}
		// kernels choke on coordinates like -3e-15
		pos := nameplate.P(spec.Radius, 0).Rotated(angle).Shifted(spec.Center).Zap()
		placements = append(placements, Placement{
			Char:     r,
			Index:    i,
			X:        pos.X(),
			Y:        pos.Y(),
			Rotation: spec.tangent(angle),
		})
		accumulated += w
	}
	return placements, nil
}

// MustLayout is a compatibility helper which panics on invalid specs.
func MustLayout(spec Spec, metrics Metrics, opts ...Option) []Placement {
	pl, err := Layout(spec, metrics, opts...)
	if err != nil {
		panic(err)
	}
	return pl
}

// Widths returns the layout width of every character of spec.Text,
// including spaces, as used by Layout.
func Widths(spec Spec, metrics Metrics, opts ...Option) []float64 {
	if metrics == nil {
		return nil
	}
	o := collect(opts)
	return measure(spec.FontSize, []rune(spec.Text), metrics, o.diag)
}

// ArcScale is the ratio of arc length to text width. It is informational
// only and does not enter the placement of characters.
func ArcScale(spec Spec, widths []float64) float64 {
	total := sum(widths)
	if total <= 0 {
		return 1
	}
	return spec.Radius * nameplate.Rad(spec.Span) / total
}

// BoundingBox returns a conservative bounding rectangle for the arc text:
// the square around the arc's circle, enlarged by the font size.
func BoundingBox(spec Spec) geom.Rect {
	outer := spec.Radius + spec.FontSize
	cx, cy := spec.Center.X(), spec.Center.Y()
	return geom.Rect{
		Min: geom.Coord{X: cx - outer, Y: cy - outer},
		Max: geom.Coord{X: cx + outer, Y: cy + outer},
	}
}

func measure(fontSize float64, runes []rune, metrics Metrics, diag nameplate.Diagnostics) []float64 {
	widths := make([]float64, len(runes))
	for i, r := range runes {
		if r == ' ' {
			widths[i] = fontSize * SpaceWidth
			continue
		}
		w, err := metrics(r)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			if err == nil {
				err = errBadWidth
			}
			nameplate.Report(diag, nameplate.Failure{Unit: "metrics", Index: i, Char: r, Err: err})
			widths[i] = fontSize * FallbackWidth
			continue
		}
		widths[i] = w + fontSize*LetterGap
	}
	return widths
}

// anchor returns the angle the walk starts from and the sign of the walk.
func (spec Spec) anchor() (float64, int) {
	if spec.Direction == Clockwise {
		return spec.Start - spec.Span/2, +1
	}
	return spec.Start + spec.Span/2, -1
}

// tangent returns the glyph rotation at angle, which aligns the glyph's
// up direction with the tangent of the arc.
func (spec Spec) tangent(angle float64) float64 {
	if spec.Direction == Clockwise {
		return angle + 90
	}
	return angle - 90
}

func sum(widths []float64) float64 {
	total := 0.0
	for _, w := range widths {
		total += w
	}
	return total
}
