/*
Package divider lays out horizontal divider lines between the text lines
of a plate.

A divider is described by a Spec and laid out as a list of segments. Each
segment is a primitive an external geometry kernel extrudes: a bar, a
round dot or a diamond. Five styles are supported:

	solid       one bar across the divider width
	double      two parallel bars
	dashed      a centered run of equally spaced dashes
	dotted      a centered run of equally spaced dots
	ornamental  two bars flanking a diamond

Raised dividers sit on the plate's top face, engraved ones are sunk into
it by their height.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package divider

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'nameplate.divider'
func tracer() tracing.Trace {
	return tracing.Select("nameplate.divider")
}
