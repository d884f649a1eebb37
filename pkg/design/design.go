// Package design defines the geometric data model for plotcut: line
// segments, designs, paths and the helpers the sorters and filters are
// built from. Designs are value data; nothing in this package mutates a
// design in place.
//
// All coordinates are in millimetres. Y grows downwards, so a bounding
// box's Min corner is its top-left and its Max corner its bottom-right.
package design

import (
	"errors"

	"github.com/jbeda/geom"
)

// Point is a 2D coordinate in mm. It is comparable, so it can key maps
// directly; equality is exact.
type Point = geom.Coord

// Segment is a directed line segment: Start is the tool position before
// cutting, End the position after.
type Segment struct {
	Start Point
	End   Point
}

// Design is an ordered sequence of segments. The order carries no
// traversal guarantee; it only breaks ties during path reconstruction.
type Design []Segment

// Path is an ordered sequence of segments forming a continuous polyline.
type Path []Segment

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Seg is shorthand for constructing a Segment from raw coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: Pt(x1, y1), End: Pt(x2, y2)}
}

// Degenerate reports whether the segment has zero length.
func (s Segment) Degenerate() bool {
	return s.Start == s.End
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.DistanceFrom(s.End)
}

// Reversed returns the segment with its direction flipped.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// Closed reports whether the path starts and ends at the same point.
func (p Path) Closed() bool {
	return len(p) > 0 && p[0].Start == p[len(p)-1].End
}

// Length returns the total length of all segments in the path.
func (p Path) Length() float64 {
	total := 0.0
	for _, s := range p {
		total += s.Length()
	}
	return total
}

// ErrEmptyDesign is returned where geometry is required of a design that
// has no segments.
var ErrEmptyDesign = errors.New("design: empty design")

// BoundingBox returns the axis-aligned bounding box over all segment
// endpoints. It fails on empty input, which has no box.
func BoundingBox(segs []Segment) (geom.Rect, error) {
	if len(segs) == 0 {
		return geom.Rect{}, ErrEmptyDesign
	}
	box := geom.Rect{Min: segs[0].Start, Max: segs[0].Start}
	for _, s := range segs {
		box.ExpandToContainCoord(s.Start)
		box.ExpandToContainCoord(s.End)
	}
	return box, nil
}

// Contains reports whether outer strictly contains inner. Identical boxes
// are peers, not nested.
func Contains(outer, inner geom.Rect) bool {
	return outer.ContainsRect(inner) && outer != inner
}

// LexLess orders points by X, then Y. The sorters use it as the
// deterministic tie-break rule.
func LexLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Subpath returns the prefix of p whose length is req, truncating the
// final segment proportionally if it would overshoot.
func Subpath(p Path, req float64) Path {
	var out Path
	total := 0.0
	for _, s := range p {
		if total >= req {
			break
		}
		out = append(out, s)
		total += s.Length()
	}

	if total > req {
		last := out[len(out)-1]
		out = out[:len(out)-1]
		total -= last.Length()

		factor := (req - total) / last.Length()
		delta := last.End.Minus(last.Start).Times(factor)
		out = append(out, Segment{Start: last.Start, End: last.Start.Plus(delta)})
	}

	return out
}
