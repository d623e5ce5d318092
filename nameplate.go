/*
Package nameplate implements plane geometry helpers and the diagnostics
sink shared by the nameplate layout engines.

The engines themselves live in sub-packages:

	arctext   characters placed along circular arcs, waves and polylines
	braille   Grade-1 Braille transcription, dot layout and Unicode preview
	divider   divider lines between text lines of a plate

None of the engines constructs solids. They return descriptors (positions,
rotations, extents) which an external geometry kernel turns into
extruded primitives.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package nameplate

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'nameplate'
func tracer() tracing.Trace {
	return tracing.Select("nameplate")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// === Pair Data Type ========================================================

// Pair is a 2D-point on the plate's top face, in millimeters.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Polar returns the point at distance r from the origin, in direction
// deg (degrees, counter-clockwise from the +X axis).
func Polar(r, deg float64) Pair {
	a := Rad(deg)
	return P(r*math.Cos(a), r*math.Sin(a))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Dist returns the euclidian distance between p and p2.
func (p Pair) Dist(p2 Pair) float64 {
	return cmplx.Abs((p2 - p).C())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p)
}

// Rotated returns a new pair rotated around origin by deg degrees
// (counter-clockwise).
func (p Pair) Rotated(deg float64) Pair {
	return Rotation(deg).Transform(p)
}

// === Affine Transformations ================================================

// AT is an affine transform of the plate plane, a 3x3 matrix flattened
// by rows. Kernel adapters apply it to a glyph or primitive created at the
// origin.
type AT [9]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m[2] = p.X()
	m[5] = p.Y()
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in degrees, which is what geometry kernels expect.
func Rotation(deg float64) AT {
	sin, cos := math.Sincos(Rad(deg))
	return AT{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformations to a new one: the result first applies
// m, then n. Neither argument is changed.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o[row*3+col] = n[row*3]*m[col] + n[row*3+1]*m[3+col] + n[row*3+2]*m[6+col]
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}

// Placement returns the transform which rotates a primitive by deg degrees
// around its own origin and then moves it to at.
func Placement(at Pair, deg float64) AT {
	return Rotation(deg).Combine(Translation(at))
}
