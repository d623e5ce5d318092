package divider

import (
	"github.com/jbeda/geom"
	"github.com/npillmayer/nameplate"
	"github.com/npillmayer/nameplate/polygon"
)

// Outline returns the top view of a segment as a closed polygon. Round
// segments are approximated by 16-gons.
func (s Segment) Outline() *polygon.Polygon {
	c := nameplate.P(s.X, s.Y)
	switch s.Kind {
	case Round:
		return polygon.Circle(c, s.Width)
	default:
		return polygon.Rect(c, s.Length, s.Width, s.Rotation)
	}
}

// Footprint unites the outlines of segments. Overlapping segments merge
// into a single contour.
func Footprint(segs []Segment) *polygon.Polygon {
	outlines := make([]*polygon.Polygon, len(segs))
	for i, s := range segs {
		outlines[i] = s.Outline()
	}
	return polygon.Union(outlines...)
}

// Bounds returns the rectangle covered by the outlines of segs. It returns
// false if there are no segments.
func Bounds(segs []Segment) (geom.Rect, bool) {
	if len(segs) == 0 {
		return geom.Rect{}, false
	}
	var r geom.Rect
	first := true
	for _, s := range segs {
		bb, ok := s.Outline().BoundingBox()
		if !ok {
			continue
		}
		if first {
			r, first = bb, false
			continue
		}
		r.ExpandToContainRect(bb)
	}
	return r, !first
}
