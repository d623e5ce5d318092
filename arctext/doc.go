/*
Package arctext places the characters of a text along a circular arc.

Each visible character receives a position on the arc and a rotation which
aligns the glyph's "up" direction with the arc's local tangent. Angular
positions are proportional to width: a character's angle is determined by
the fraction of the accumulated text width at its center, scaled to the
arc's angle span. Absolute arc length plays no role in placement.

Glyph widths are obtained from a Metrics function, typically backed by
one of the providers in package glyphs. Spaces are never measured.

	placements, err := arctext.Layout(spec, provider.At(spec.FontSize))

Package arctext also lays out text along a sine wave (Wave) and along a
polyline (Along), with selectable rotation modes.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package arctext

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'nameplate.arctext'
func tracer() tracing.Trace {
	return tracing.Select("nameplate.arctext")
}
