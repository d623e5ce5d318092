/*
Package polygon builds closed polygons in the plane and unites them.

Polygons are built knot by knot and closed with Cycle:

	pg := polygon.NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

A polygon may consist of several closed contours; boolean union is
delegated to polyclip-go. Polygons are used for the top-view footprints of
raised or engraved features, e.g. divider lines, where overlapping
elements have to be merged before they are handed to a geometry kernel.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"
	"strings"

	"github.com/akavel/polyclip-go"
	"github.com/jbeda/geom"
	"github.com/npillmayer/nameplate"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'nameplate.polygon'
func tracer() tracing.Trace {
	return tracing.Select("nameplate.polygon")
}

// Polygon is a set of closed contours, plus an optional open contour which
// is under construction.
type Polygon struct {
	closed polyclip.Polygon
	open   polyclip.Contour
}

// NullPolygon creates an empty polygon.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot to the open contour.
func (pg *Polygon) Knot(p nameplate.Pair) *Polygon {
	pg.open.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Cycle closes the open contour. Contours with less than 3 knots do not
// enclose an area and are discarded.
func (pg *Polygon) Cycle() *Polygon {
	if len(pg.open) < 3 {
		if len(pg.open) > 0 {
			tracer().Infof("discarding degenerate contour with %d knots", len(pg.open))
		}
		pg.open = nil
		return pg
	}
	pg.closed.Add(pg.open)
	pg.open = nil
	return pg
}

// N returns the number of knots in closed contours.
func (pg *Polygon) N() int {
	if pg == nil {
		return 0
	}
	return pg.closed.NumVertices()
}

// Contours returns the number of closed contours.
func (pg *Polygon) Contours() int {
	if pg == nil {
		return 0
	}
	return len(pg.closed)
}

// Contour returns the knots of contour i.
func (pg *Polygon) Contour(i int) []nameplate.Pair {
	if i < 0 || i >= pg.Contours() {
		return nil
	}
	knots := make([]nameplate.Pair, len(pg.closed[i]))
	for j, pt := range pg.closed[i] {
		knots[j] = nameplate.P(pt.X, pt.Y)
	}
	return knots
}

// IsEmpty is a predicate: does pg have no closed contours?
func (pg *Polygon) IsEmpty() bool {
	return pg.Contours() == 0
}

// Union returns the union of pg and other as a new polygon. Neither
// operand is modified.
func (pg *Polygon) Union(other *Polygon) *Polygon {
	switch {
	case other.IsEmpty():
		return &Polygon{closed: pg.closed.Clone()}
	case pg.IsEmpty():
		return &Polygon{closed: other.closed.Clone()}
	}
	u := pg.closed.Construct(polyclip.UNION, other.closed)
	return &Polygon{closed: u}
}

// Union unites a number of polygons.
func Union(pgs ...*Polygon) *Polygon {
	result := NullPolygon()
	for _, pg := range pgs {
		if pg == nil {
			continue
		}
		result = result.Union(pg)
	}
	tracer().Debugf("union of %d polygons has %d contours", len(pgs), result.Contours())
	return result
}

// Transform applies an affine transformation to every knot and returns
// the result as a new polygon.
func (pg *Polygon) Transform(at nameplate.AT) *Polygon {
	t := NullPolygon()
	for _, c := range pg.closed {
		for _, pt := range c {
			t.Knot(at.Transform(nameplate.P(pt.X, pt.Y)))
		}
		t.Cycle()
	}
	return t
}

// BoundingBox returns the smallest axis-parallel rectangle containing all
// closed contours. It returns false for an empty polygon.
func (pg *Polygon) BoundingBox() (geom.Rect, bool) {
	if pg.IsEmpty() {
		return geom.Rect{}, false
	}
	bb := pg.closed.BoundingBox()
	return geom.Rect{
		Min: geom.Coord{X: bb.Min.X, Y: bb.Min.Y},
		Max: geom.Coord{X: bb.Max.X, Y: bb.Max.Y},
	}, true
}

// Area returns the area enclosed by pg. Contours which lie inside another
// contour count as holes.
func (pg *Polygon) Area() float64 {
	var area float64
	for i, c := range pg.closed {
		a := math.Abs(shoelace(c))
		if pg.isHole(i) {
			a = -a
		}
		area += a
	}
	return area
}

func (pg *Polygon) isHole(i int) bool {
	depth := 0
	first := pg.closed[i][0]
	for j, c := range pg.closed {
		if j != i && c.Contains(first) {
			depth++
		}
	}
	return depth%2 == 1
}

func shoelace(c polyclip.Contour) float64 {
	var a float64
	for i := range c {
		p, q := c[i], c[(i+1)%len(c)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// === Shapes ================================================================

// Box creates a rectangle from two opposite corners. The knots run
// counter-clockwise, starting at the lower left corner.
func Box(p1, p2 nameplate.Pair) *Polygon {
	ll := nameplate.P(math.Min(p1.X(), p2.X()), math.Min(p1.Y(), p2.Y()))
	ur := nameplate.P(math.Max(p1.X(), p2.X()), math.Max(p1.Y(), p2.Y()))
	return NullPolygon().Knot(ll).Knot(nameplate.P(ur.X(), ll.Y())).
		Knot(ur).Knot(nameplate.P(ll.X(), ur.Y())).Cycle()
}

// Rect creates a w×h rectangle centered at c and rotated by rot degrees
// around c.
func Rect(c nameplate.Pair, w, h, rot float64) *Polygon {
	return Box(nameplate.P(-w/2, -h/2), nameplate.P(w/2, h/2)).
		Transform(nameplate.Placement(c, rot))
}

// Regular creates a regular n-gon with circumradius r around c. The first
// knot sits at angle rot (degrees).
func Regular(c nameplate.Pair, r float64, n int, rot float64) *Polygon {
	pg := NullPolygon()
	if n < 3 || !(r > 0) {
		return pg
	}
	for i := 0; i < n; i++ {
		pg.Knot(c + nameplate.Polar(r, rot+float64(i)*360/float64(n)))
	}
	return pg.Cycle()
}

// Circle approximates a circle of diameter d around c by a 16-gon.
func Circle(c nameplate.Pair, d float64) *Polygon {
	return Regular(c, d/2, 16, 0)
}

// Diamond creates a square of side length size, centered at c and rotated
// by 45 degrees.
func Diamond(c nameplate.Pair, size float64) *Polygon {
	return Rect(c, size, size, 45)
}

// AsString returns a textual representation of a polygon, one contour per
// line.
func AsString(pg *Polygon) string {
	if pg.IsEmpty() {
		return "<empty polygon>"
	}
	var b strings.Builder
	for i, c := range pg.closed {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, pt := range c {
			fmt.Fprintf(&b, "(%.4g,%.4g) -- ", pt.X, pt.Y)
		}
		b.WriteString("cycle")
	}
	return b.String()
}
