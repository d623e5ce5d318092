package braille

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/npillmayer/nameplate"
)

// ErrConfig indicates a Braille configuration with unusable dimensions.
var ErrConfig = errors.New("invalid Braille configuration")

// Config holds the physical dimensions of Braille on a plate, in
// millimeters. Origin is the center of the first cell.
type Config struct {
	DotDiameter float64
	DotHeight   float64 // raised above the plate's top face
	DotSpacing  float64 // center to center within a cell
	CellSpacing float64 // center of a cell to center of the next
	LineSpacing float64 // baseline to baseline
	Origin      nameplate.Pair
}

// DefaultConfig returns the dimensions commonly required for signage
// (ADA): 1.5 mm dots, 0.5 mm high, 2.5 mm dot pitch, 6 mm cell pitch,
// 10 mm line pitch.
func DefaultConfig() Config {
	return Config{
		DotDiameter: 1.5,
		DotHeight:   0.5,
		DotSpacing:  2.5,
		CellSpacing: 6.0,
		LineSpacing: 10.0,
		Origin:      nameplate.Origin,
	}
}

// Validate checks that all dimensions are positive.
func (cfg Config) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"dot diameter", cfg.DotDiameter},
		{"dot height", cfg.DotHeight},
		{"dot spacing", cfg.DotSpacing},
		{"cell spacing", cfg.CellSpacing},
	}
	for _, d := range dims {
		if !(d.v > 0) {
			return fmt.Errorf("%w: %s must be positive, is %g", ErrConfig, d.name, d.v)
		}
	}
	if cfg.LineSpacing < 0 {
		return fmt.Errorf("%w: line spacing is negative", ErrConfig)
	}
	return nil
}

// Dot is a single raised dot, ready to be extruded: a cylinder of Diameter
// and Height whose base sits at (X,Y,Z).
type Dot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Diameter float64 `json:"diameter"`
	Height   float64 `json:"height"`
	Cell     int     `json:"cell"` // index of the cell in the input
	Number   int     `json:"dot"`  // dot number 1…6
}

// Offset returns the position of dot n relative to its cell's center.
// Dots 1-3 form the left column, 4-6 the right column, top to bottom.
func Offset(n int, spacing float64) (dx, dy float64) {
	col, row := (n-1)/3, (n-1)%3
	dx = -spacing / 2
	if col == 1 {
		dx = spacing / 2
	}
	return dx, spacing * float64(1-row)
}

// Layout computes the dots for a sequence of cells, left to right from
// cfg.Origin. Blank cells advance the cursor without producing dots.
// The dots sit on the plate's top face at z = plateThickness.
func Layout(cells []Cell, cfg Config, plateThickness float64) []Dot {
	x := cfg.Origin.X()
	y := cfg.Origin.Y()
	var dots []Dot
	for i, c := range cells {
		if c.IsBlank() {
			x += cfg.CellSpacing
			continue
		}
		for _, n := range c.Dots() {
			dx, dy := Offset(n, cfg.DotSpacing)
			dots = append(dots, Dot{
				X:        x + dx,
				Y:        y + dy,
				Z:        plateThickness,
				Diameter: cfg.DotDiameter,
				Height:   cfg.DotHeight,
				Cell:     i,
				Number:   n,
			})
		}
		x += cfg.CellSpacing
	}
	return dots
}

// LayoutText transcribes text and lays out its cells.
func LayoutText(text string, cfg Config, plateThickness float64) []Dot {
	return Layout(Transcribe(text), cfg, plateThickness)
}

// LayoutLines lays out several lines of text, the first one at cfg.Origin,
// each following line cfg.LineSpacing further down. Cell indices of the
// resulting dots count per line.
func LayoutLines(lines []string, cfg Config, plateThickness float64) [][]Dot {
	result := make([][]Dot, len(lines))
	for i, line := range lines {
		lc := cfg
		lc.Origin = cfg.Origin - nameplate.P(0, float64(i)*cfg.LineSpacing)
		result[i] = LayoutText(line, lc, plateThickness)
		tracer().Debugf("Braille line %d %q: %d dots", i, line, len(result[i]))
	}
	return result
}

// TextWidth returns the horizontal space taken by text: its cell count
// times the cell spacing.
func TextWidth(text string, cfg Config) float64 {
	return float64(len(Transcribe(text))) * cfg.CellSpacing
}

// LineHeight returns the height of a single line of Braille.
func LineHeight(cfg Config) float64 {
	return 2*cfg.DotSpacing + cfg.DotDiameter
}

// Bounds returns the rectangle covered by dots, including their diameter.
// It returns false for an empty slice.
func Bounds(dots []Dot) (geom.Rect, bool) {
	if len(dots) == 0 {
		return geom.Rect{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, d := range dots {
		r := d.Diameter / 2
		minX, maxX = math.Min(minX, d.X-r), math.Max(maxX, d.X+r)
		minY, maxY = math.Min(minY, d.Y-r), math.Max(maxY, d.Y+r)
	}
	return geom.Rect{
		Min: geom.Coord{X: minX, Y: minY},
		Max: geom.Coord{X: maxX, Y: maxY},
	}, true
}
