/*
Package job reads plate jobs and runs the layout engines on them.

A plate job is a YAML document describing a plate and the features to lay
out on it: texts on arcs, blocks of Braille and divider lines.

	name: door sign
	plate: {width: 120, height: 60, thickness: 3}
	font: {metrics: sfnt}
	arcs:
	  - text: CONFERENCE
	    size: 8
	    radius: 45
	    span: 110
	    start: 90
	braille:
	  - lines: [Room 101]
	    origin: [-21, -12]
	divider:
	  style: dashed
	  lines: [10, -10]

Run lays out all features and collects the results in a Scene, which is
ready to be serialized to JSON and handed to a geometry kernel.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package job

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/nameplate"
	"github.com/npillmayer/nameplate/arctext"
	"github.com/npillmayer/nameplate/braille"
	"github.com/npillmayer/nameplate/divider"
	"github.com/npillmayer/nameplate/glyphs"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'nameplate.job'
func tracer() tracing.Trace {
	return tracing.Select("nameplate.job")
}

// ErrJob indicates an unusable plate job.
var ErrJob = errors.New("invalid plate job")

// Job is a plate job.
type Job struct {
	Name    string    `yaml:"name"`
	Plate   Plate     `yaml:"plate"`
	Font    Font      `yaml:"font"`
	Arcs    []Arc     `yaml:"arcs"`
	Braille []Braille `yaml:"braille"`
	Divider *Divider  `yaml:"divider"`
}

// Plate holds the plate's dimensions in millimeters. The plate is centered
// at the origin, its top face at z = Thickness.
type Plate struct {
	Width     float64 `yaml:"width" json:"width"`
	Height    float64 `yaml:"height" json:"height"`
	Thickness float64 `yaml:"thickness" json:"thickness"`
}

// Font selects the glyph metrics for arc texts.
type Font struct {
	Path    string      `yaml:"path"`    // TrueType/OpenType file, empty for Go Regular
	Metrics glyphs.Kind `yaml:"metrics"` // sfnt, gotext or fixed
}

// Point is a position given as a two-element sequence [x, y].
type Point [2]float64

// Pair converts p.
func (p Point) Pair() nameplate.Pair {
	return nameplate.P(p[0], p[1])
}

// Arc is a text on a circular arc.
type Arc struct {
	Text      string            `yaml:"text"`
	Font      string            `yaml:"font"`
	Size      float64           `yaml:"size"`
	Depth     float64           `yaml:"depth"`
	Radius    float64           `yaml:"radius"`
	Span      float64           `yaml:"span"`
	Start     float64           `yaml:"start"`
	Direction arctext.Direction `yaml:"direction"` // cw or ccw
	Center    Point             `yaml:"center"`
}

// UnmarshalYAML decodes an arc on top of defaults.
func (a *Arc) UnmarshalYAML(node *yaml.Node) error {
	type plain Arc
	p := plain{Font: "default", Size: 10, Depth: 1, Span: 180, Start: 90}
	if err := decodeStrict(node, &p); err != nil {
		return err
	}
	*a = Arc(p)
	return nil
}

// Spec converts a to an arc text spec.
func (a Arc) Spec() arctext.Spec {
	return arctext.Spec{
		Text:      a.Text,
		Font:      a.Font,
		FontSize:  a.Size,
		Depth:     a.Depth,
		Radius:    a.Radius,
		Span:      a.Span,
		Start:     a.Start,
		Direction: a.Direction,
		Center:    a.Center.Pair(),
	}
}

// Braille is a block of Braille lines. Dimensions left out take the
// values of braille.DefaultConfig.
type Braille struct {
	Lines       []string `yaml:"lines"`
	Origin      Point    `yaml:"origin"` // center of the first cell
	DotDiameter float64  `yaml:"dotDiameter"`
	DotHeight   float64  `yaml:"dotHeight"`
	DotSpacing  float64  `yaml:"dotSpacing"`
	CellSpacing float64  `yaml:"cellSpacing"`
	LineSpacing float64  `yaml:"lineSpacing"`
}

// UnmarshalYAML decodes a Braille block on top of defaults.
func (b *Braille) UnmarshalYAML(node *yaml.Node) error {
	type plain Braille
	d := braille.DefaultConfig()
	p := plain{
		DotDiameter: d.DotDiameter,
		DotHeight:   d.DotHeight,
		DotSpacing:  d.DotSpacing,
		CellSpacing: d.CellSpacing,
		LineSpacing: d.LineSpacing,
	}
	if err := decodeStrict(node, &p); err != nil {
		return err
	}
	*b = Braille(p)
	return nil
}

// Config converts b to a Braille configuration.
func (b Braille) Config() braille.Config {
	return braille.Config{
		DotDiameter: b.DotDiameter,
		DotHeight:   b.DotHeight,
		DotSpacing:  b.DotSpacing,
		CellSpacing: b.CellSpacing,
		LineSpacing: b.LineSpacing,
		Origin:      b.Origin.Pair(),
	}
}

// Divider describes the dividers between text lines. A divider section is
// enabled unless it says otherwise.
type Divider struct {
	Enabled      bool          `yaml:"enabled"`
	Style        divider.Style `yaml:"style"`
	WidthPercent float64       `yaml:"widthPercent"`
	Thickness    float64       `yaml:"thickness"`
	Height       float64       `yaml:"height"`
	Raised       bool          `yaml:"raised"`
	DashLength   float64       `yaml:"dashLength"`
	DashGap      float64       `yaml:"dashGap"`
	DotDiameter  float64       `yaml:"dotDiameter"`
	DotSpacing   float64       `yaml:"dotSpacing"`
	DoubleGap    float64       `yaml:"doubleGap"`
	Lines        []float64     `yaml:"lines"` // y positions of text lines
}

// UnmarshalYAML decodes a divider section on top of divider.DefaultSpec.
func (d *Divider) UnmarshalYAML(node *yaml.Node) error {
	type plain Divider
	s := divider.DefaultSpec()
	p := plain{
		Enabled:      true,
		Style:        s.Style,
		WidthPercent: s.WidthPercent,
		Thickness:    s.Thickness,
		Height:       s.Height,
		Raised:       s.Raised,
		DashLength:   s.DashLength,
		DashGap:      s.DashGap,
		DotDiameter:  s.DotDiameter,
		DotSpacing:   s.DotSpacing,
		DoubleGap:    s.DoubleGap,
	}
	if err := decodeStrict(node, &p); err != nil {
		return err
	}
	*d = Divider(p)
	return nil
}

// Spec converts d to a divider spec.
func (d Divider) Spec() divider.Spec {
	return divider.Spec{
		Enabled:      d.Enabled,
		Style:        d.Style,
		WidthPercent: d.WidthPercent,
		Thickness:    d.Thickness,
		Height:       d.Height,
		Raised:       d.Raised,
		DashLength:   d.DashLength,
		DashGap:      d.DashGap,
		DotDiameter:  d.DotDiameter,
		DotSpacing:   d.DotSpacing,
		DoubleGap:    d.DoubleGap,
	}
}

// === Reading and validating ================================================

// Decode reads a plate job from YAML. Unknown keys are errors.
func Decode(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	job := &Job{}
	if err := dec.Decode(job); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrJob)
		}
		return nil, fmt.Errorf("%w: %v", ErrJob, err)
	}
	tracer().Debugf("decoded job %q: %d arcs, %d Braille blocks", job.Name,
		len(job.Arcs), len(job.Braille))
	return job, nil
}

// decodeStrict decodes a nested section, rejecting unknown keys. Decoding
// a node directly does not inherit the strictness of the outer decoder.
func decodeStrict(node *yaml.Node, v any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// Load reads a plate job from a YAML file.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks the plate dimensions and every feature of the job.
func (job *Job) Validate() error {
	if !(job.Plate.Width > 0) || !(job.Plate.Height > 0) || !(job.Plate.Thickness > 0) {
		return fmt.Errorf("%w: plate dimensions must be positive", ErrJob)
	}
	for i, a := range job.Arcs {
		err := a.Spec().Validate()
		if err == nil && !(a.Size > 0) {
			err = glyphs.ErrSize
		}
		if err != nil {
			return fmt.Errorf("%w: arc #%d: %w", ErrJob, i, err)
		}
	}
	for i, b := range job.Braille {
		if err := b.Config().Validate(); err != nil {
			return fmt.Errorf("%w: Braille block #%d: %w", ErrJob, i, err)
		}
	}
	if job.Divider != nil {
		if err := job.Divider.Spec().Validate(); err != nil {
			return fmt.Errorf("%w: divider: %w", ErrJob, err)
		}
	}
	return nil
}
