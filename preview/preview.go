/*
Package preview draws a top view of a laid out plate.

The drawing shows the plate's outline, the characters of arc texts at
their placements, Braille dots and divider segments. It is meant for
checking a plate job before geometry is built, not as a production
drawing. Drawings are produced with github.com/tdewolff/canvas and written
as PDF or SVG. All lengths are in millimeters.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package preview

import (
	"fmt"
	"io"

	"github.com/npillmayer/nameplate/divider"
	"github.com/npillmayer/nameplate/job"
	"github.com/npillmayer/schuko/tracing"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer writes to trace with key 'nameplate.preview'
func tracer() tracing.Trace {
	return tracing.Select("nameplate.preview")
}

// mmPerPt converts font sizes, which canvas expects in points.
const mmPerPt = 0.352778

// Options configures a drawing.
type Options struct {
	Font   []byte  // TrueType font for arc texts, nil for Go Regular
	Margin float64 // around the plate
}

// DefaultOptions draws with Go Regular and a 5 mm margin.
func DefaultOptions() Options {
	return Options{Margin: 5}
}

var (
	plateColor   = canvas.Hex("#f2efe6")
	outlineColor = canvas.Hex("#555555")
	textColor    = canvas.Hex("#1d3557")
	dotColor     = canvas.Hex("#e63946")
	dividerColor = canvas.Hex("#457b9d")
)

// Draw draws scene onto a new canvas.
func Draw(scene *job.Scene, opts Options) (*canvas.Canvas, error) {
	if scene == nil {
		return nil, fmt.Errorf("no scene to draw")
	}
	family := canvas.NewFontFamily("plate")
	data := opts.Font
	if len(data) == 0 {
		data = goregular.TTF
	}
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("cannot load preview font: %w", err)
	}
	pw, ph := scene.Plate.Width, scene.Plate.Height
	c := canvas.New(pw+2*opts.Margin, ph+2*opts.Margin)
	ctx := canvas.NewContext(c)
	// plate center at the origin
	ctx.ComposeView(canvas.Identity.Translate(pw/2+opts.Margin, ph/2+opts.Margin))

	ctx.SetFillColor(plateColor)
	ctx.SetStrokeColor(outlineColor)
	ctx.SetStrokeWidth(0.3)
	ctx.DrawPath(-pw/2, -ph/2, canvas.Rectangle(pw, ph))

	ctx.SetStrokeColor(canvas.Transparent)
	drawDividers(ctx, scene.Dividers)
	drawBraille(ctx, scene)
	drawArcs(ctx, scene, family)
	tracer().Debugf("drew scene %q on %.4g×%.4g mm", scene.Name, c.W, c.H)
	return c, nil
}

func drawDividers(ctx *canvas.Context, segs []divider.Segment) {
	ctx.SetFillColor(dividerColor)
	for _, s := range segs {
		switch s.Kind {
		case divider.Round:
			ctx.DrawPath(s.X, s.Y, canvas.Circle(s.Width/2))
		default:
			ctx.Push()
			ctx.ComposeView(canvas.Identity.Translate(s.X, s.Y).Rotate(s.Rotation))
			ctx.DrawPath(-s.Length/2, -s.Width/2, canvas.Rectangle(s.Length, s.Width))
			ctx.Pop()
		}
	}
}

func drawBraille(ctx *canvas.Context, scene *job.Scene) {
	ctx.SetFillColor(dotColor)
	for _, b := range scene.Braille {
		for _, d := range b.Dots {
			ctx.DrawPath(d.X, d.Y, canvas.Circle(d.Diameter/2))
		}
	}
}

func drawArcs(ctx *canvas.Context, scene *job.Scene, family *canvas.FontFamily) {
	for _, a := range scene.Arcs {
		face := family.Face(a.FontSize/mmPerPt, textColor, canvas.FontRegular, canvas.FontNormal)
		// glyphs are placed by their centers
		lift := -face.Metrics().XHeight / 2
		for _, pl := range a.Placements {
			ctx.Push()
			ctx.ComposeView(canvas.Identity.Translate(pl.X, pl.Y).Rotate(pl.Rotation))
			ctx.DrawText(0, lift, canvas.NewTextLine(face, string(pl.Char), canvas.Center))
			ctx.Pop()
		}
	}
}

// RenderPDF draws scene and writes it to w as a PDF document.
func RenderPDF(w io.Writer, scene *job.Scene, opts Options) error {
	c, err := Draw(scene, opts)
	if err != nil {
		return err
	}
	writer := pdf.New(w, c.W, c.H, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("cannot write PDF: %w", err)
	}
	return nil
}

// RenderSVG draws scene and writes it to w as an SVG document.
func RenderSVG(w io.Writer, scene *job.Scene, opts Options) error {
	c, err := Draw(scene, opts)
	if err != nil {
		return err
	}
	writer := svg.New(w, c.W, c.H, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("cannot write SVG: %w", err)
	}
	return nil
}
