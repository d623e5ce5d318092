package arctext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/nameplate"
)

var (
	// ErrEmptyText indicates there is nothing to place.
	ErrEmptyText = errors.New("arc text is empty")
	// ErrNoFont indicates a missing font reference.
	ErrNoFont = errors.New("arc text has no font reference")
	// ErrRadius indicates a non-positive arc radius.
	ErrRadius = errors.New("arc radius must be positive")
	// ErrNoMetrics indicates a missing glyph metrics function.
	ErrNoMetrics = errors.New("no glyph metrics given")
	// ErrDirection indicates an unknown arc direction name.
	ErrDirection = errors.New("unknown arc direction")

	errBadWidth = errors.New("glyph width is not a number")
)

// Direction is the walking direction of text on an arc.
type Direction int8

const (
	// CounterClockwise: tops of letters face outward, text reads left to
	// right over the top of the arc.
	CounterClockwise Direction = iota
	// Clockwise: tops of letters face inward.
	Clockwise
)

func (d Direction) String() string {
	switch d {
	case CounterClockwise:
		return "counterclockwise"
	case Clockwise:
		return "clockwise"
	}
	return fmt.Sprintf("Direction(%d)", int8(d))
}

// MarshalText encodes d by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction name, see ParseDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	dir, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = dir
	return nil
}

// ParseDirection returns the direction for a name, as used in plate jobs.
// Names are matched case-insensitively; "ccw" and "cw" are accepted.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "counterclockwise", "ccw", "":
		return CounterClockwise, nil
	case "clockwise", "cw":
		return Clockwise, nil
	}
	return CounterClockwise, fmt.Errorf("%w: %q", ErrDirection, s)
}

// Spec describes a text on an arc. Angles are in degrees, 0° pointing to
// +X, lengths in millimeters.
type Spec struct {
	Text      string
	Font      string  // font reference, resolved by the metrics provider
	FontSize  float64
	Depth     float64 // extrusion depth, passed through to the kernel
	Radius    float64
	Span      float64 // total angle span of the text
	Start     float64 // angle of the text's center on the arc
	Direction Direction
	Center    nameplate.Pair
}

// Validate checks if a spec describes something to place.
func (spec Spec) Validate() error {
	if spec.Text == "" {
		return ErrEmptyText
	}
	if spec.Font == "" {
		return ErrNoFont
	}
	if spec.Radius <= 0 {
		return fmt.Errorf("%w, is %g", ErrRadius, spec.Radius)
	}
	return nil
}

// Placement is a character positioned on the plate.
type Placement struct {
	Char     rune    `json:"char"`
	Index    int     `json:"index"` // rune index in the input text
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"` // degrees, counter-clockwise
}

// Pos returns the placement's position as a pair.
func (pl Placement) Pos() nameplate.Pair {
	return nameplate.P(pl.X, pl.Y)
}

// Transform returns the transform for a glyph created centered at the
// origin: rotate by Rotation, then move to (X,Y).
func (pl Placement) Transform() nameplate.AT {
	return nameplate.Placement(pl.Pos(), pl.Rotation)
}

func (pl Placement) String() string {
	return fmt.Sprintf("%q@(%.4f,%.4f)∠%.4f", pl.Char, pl.X, pl.Y, pl.Rotation)
}

// Metrics returns the rendered bounding-box width of a character, for a
// font and size fixed by the caller.
type Metrics func(r rune) (float64, error)

// GlyphCheck tells whether the geometry kernel is able to render a
// character. A non-nil error skips the character.
type GlyphCheck func(r rune) error

// Option configures a single layout call.
type Option func(*options)

type options struct {
	diag  nameplate.Diagnostics
	check GlyphCheck
}

// WithDiagnostics sets a sink for per-character failures.
func WithDiagnostics(d nameplate.Diagnostics) Option {
	return func(o *options) {
		o.diag = d
	}
}

// WithGlyphCheck sets a render check, consulted for every visible character.
func WithGlyphCheck(check GlyphCheck) Option {
	return func(o *options) {
		o.check = check
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
