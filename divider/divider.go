package divider

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrStyle indicates an unknown divider style name.
	ErrStyle = errors.New("unknown divider style")
	// ErrSpec indicates a divider spec with unusable dimensions.
	ErrSpec = errors.New("invalid divider spec")
)

// Style selects the look of a divider.
type Style int8

// Divider styles.
const (
	None Style = iota
	Solid
	Double
	Dashed
	Dotted
	Ornamental
)

var styleNames = [...]string{"none", "solid", "double", "dashed", "dotted", "ornamental"}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int8(s))
	}
	return styleNames[s]
}

// MarshalText encodes s by name.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a style name.
func (s *Style) UnmarshalText(text []byte) error {
	st, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ParseStyle returns the style for a name, matched case-insensitively.
func ParseStyle(name string) (Style, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range styleNames {
		if n == sn {
			return Style(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrStyle, name)
}

// Spec describes a divider. Lengths are in millimeters.
type Spec struct {
	Enabled      bool
	Style        Style
	WidthPercent float64 // percentage of the plate width
	Thickness    float64 // extent of a line in y
	Height       float64 // raised height or engraving depth
	Raised       bool
	DashLength   float64
	DashGap      float64
	DotDiameter  float64
	DotSpacing   float64 // center to center
	DoubleGap    float64 // between the two lines of a double divider
}

// DefaultSpec returns a disabled solid divider with common dimensions.
func DefaultSpec() Spec {
	return Spec{
		Style:        Solid,
		WidthPercent: 80,
		Thickness:    1.0,
		Height:       0.5,
		Raised:       true,
		DashLength:   4.0,
		DashGap:      2.0,
		DotDiameter:  1.5,
		DotSpacing:   3.0,
		DoubleGap:    2.0,
	}
}

// Validate checks the dimensions relevant for the spec's style. A disabled
// spec is always valid.
func (spec Spec) Validate() error {
	if !spec.Enabled || spec.Style == None {
		return nil
	}
	if spec.Style < None || spec.Style > Ornamental {
		return fmt.Errorf("%w: %v", ErrStyle, spec.Style)
	}
	if spec.WidthPercent < 0 {
		return fmt.Errorf("%w: width percentage is negative", ErrSpec)
	}
	if !(spec.Height > 0) {
		return fmt.Errorf("%w: height must be positive", ErrSpec)
	}
	switch spec.Style {
	case Dotted:
		if !(spec.DotDiameter > 0) {
			return fmt.Errorf("%w: dot diameter must be positive", ErrSpec)
		}
	default:
		if !(spec.Thickness > 0) {
			return fmt.Errorf("%w: thickness must be positive", ErrSpec)
		}
	}
	return nil
}

// Width returns the length of the divider on a plate of width plateWidth.
func (spec Spec) Width(plateWidth float64) float64 {
	return plateWidth * spec.WidthPercent / 100
}

// Kind is the shape of a segment.
type Kind int8

// Segment kinds.
const (
	Bar     Kind = iota // rectangle Length × Width
	Round               // cylinder of diameter Width
	Diamond             // square Length × Width, rotated
)

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Round:
		return "round"
	case Diamond:
		return "diamond"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// MarshalText encodes k by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Segment is a single primitive of a divider, to be extruded by Height
// upwards from Z. X and Y denote its center.
type Segment struct {
	Kind     Kind    `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Length   float64 `json:"length"` // extent in x
	Width    float64 `json:"width"`  // extent in y, diameter for Round
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation,omitempty"` // degrees, around the center
}

func (s Segment) String() string {
	return fmt.Sprintf("%v@(%.4g,%.4g,%.4g)[%.4g×%.4g×%.4g]", s.Kind, s.X, s.Y, s.Z,
		s.Length, s.Width, s.Height)
}

// === Layout ================================================================

// Layout computes the segments of a divider centered at height y on a plate
// of width plateWidth, centered at x = 0. It returns nil if the divider is
// disabled or of style None.
func Layout(spec Spec, plateWidth, y, plateThickness float64) []Segment {
	if !spec.Enabled || spec.Style == None {
		return nil
	}
	w := spec.Width(plateWidth)
	z := plateThickness
	if !spec.Raised {
		z = plateThickness - spec.Height
	}
	bar := func(x, y, length float64) Segment {
		return Segment{Kind: Bar, X: x, Y: y, Z: z, Length: length, Width: spec.Thickness, Height: spec.Height}
	}
	var segs []Segment
	switch spec.Style {
	case Solid:
		segs = append(segs, bar(0, y, w))
	case Double:
		off := (spec.Thickness + spec.DoubleGap) / 2
		segs = append(segs, bar(0, y+off, w), bar(0, y-off, w))
	case Dashed:
		for _, x := range run(w, spec.DashLength+spec.DashGap, spec.DashLength/2) {
			segs = append(segs, bar(x, y, spec.DashLength))
		}
	case Dotted:
		for _, x := range run(w, spec.DotSpacing, spec.DotSpacing/2) {
			segs = append(segs, Segment{Kind: Round, X: x, Y: y, Z: z,
				Length: spec.DotDiameter, Width: spec.DotDiameter, Height: spec.Height})
		}
	case Ornamental:
		size := 3 * spec.Thickness
		gap := size + 2
		half := (w - gap) / 2
		if half > 0 {
			segs = append(segs, bar(-half/2-gap/2, y, half), bar(half/2+gap/2, y, half))
		} else {
			tracer().Infof("divider of width %.4g too short for ornament lines", w)
		}
		segs = append(segs, Segment{Kind: Diamond, X: 0, Y: y, Z: z,
			Length: size, Width: size, Height: spec.Height, Rotation: 45})
	default:
		tracer().Errorf("divider style %v not supported", spec.Style)
		return nil
	}
	tracer().Debugf("%v divider at y=%.4g: %d segments", spec.Style, y, len(segs))
	return segs
}

// run returns the centers of a greedy run of elements with a given pitch
// along a line of width w. Elements are counted starting at the left end,
// as long as an element's half-extent stays inside the line. The run is
// then centered on the line.
func run(w, pitch, half float64) []float64 {
	if !(pitch > 0) {
		tracer().Errorf("divider pattern pitch %.4g is not positive", pitch)
		return nil
	}
	first := -w/2 + half
	last := w/2 - half
	if first > last+1e-9 {
		return nil
	}
	n := int(math.Floor((last-first)/pitch+1e-9)) + 1
	shift := -(first + float64(n-1)*pitch/2)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = first + float64(i)*pitch + shift
	}
	return xs
}

// LayoutBetween places one divider at the midpoint of each pair of adjacent
// line positions ys. It returns nil for less than two positions.
func LayoutBetween(spec Spec, plateWidth float64, ys []float64, plateThickness float64) []Segment {
	if !spec.Enabled || len(ys) < 2 {
		return nil
	}
	var segs []Segment
	for i := 0; i+1 < len(ys); i++ {
		segs = append(segs, Layout(spec, plateWidth, (ys[i]+ys[i+1])/2, plateThickness)...)
	}
	return segs
}
