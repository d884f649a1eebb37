package design

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned by Lines.Remove for a segment that is not in
// the index. The index exists to track what remains to be visited, so a
// double removal indicates a bug in the caller.
var ErrNotFound = errors.New("design: no such line segment")

// Lines is a bidirectional adjacency index over segment endpoints. Every
// segment is indexed from both of its endpoints, so a traversal can
// depart from either end regardless of the segment's drawn direction.
//
// Zero-length segments are never stored; Add and Remove treat them as
// no-ops.
type Lines struct {
	from map[Point]map[Point]struct{}
}

// NewLines returns an empty index.
func NewLines() *Lines {
	return &Lines{from: make(map[Point]map[Point]struct{})}
}

// Add indexes a segment from both endpoints.
func (l *Lines) Add(s Segment) {
	if s.Degenerate() {
		return
	}
	l.link(s.Start, s.End)
	l.link(s.End, s.Start)
}

func (l *Lines) link(a, b Point) {
	set, ok := l.from[a]
	if !ok {
		set = make(map[Point]struct{})
		l.from[a] = set
	}
	set[b] = struct{}{}
}

// Remove deletes the segment between start and end. Removing a segment
// that is not indexed is an error; the index is left untouched.
func (l *Lines) Remove(start, end Point) error {
	if start == end {
		return nil
	}
	if _, ok := l.from[start][end]; !ok {
		return fmt.Errorf("(%g,%g)-(%g,%g): %w", start.X, start.Y, end.X, end.Y, ErrNotFound)
	}
	l.unlink(start, end)
	l.unlink(end, start)
	return nil
}

func (l *Lines) unlink(a, b Point) {
	set := l.from[a]
	delete(set, b)
	if len(set) == 0 {
		delete(l.from, a)
	}
}

// From returns the endpoints reachable from p, sorted lexicographically.
func (l *Lines) From(p Point) []Point {
	set := l.from[p]
	if len(set) == 0 {
		return nil
	}
	out := make([]Point, 0, len(set))
	for q := range set {
		out = append(out, q)
	}
	sortPoints(out)
	return out
}

// Points returns every point with at least one incident segment, sorted
// lexicographically.
func (l *Lines) Points() []Point {
	out := make([]Point, 0, len(l.from))
	for p := range l.from {
		out = append(out, p)
	}
	sortPoints(out)
	return out
}

// Len returns the number of points with at least one incident segment.
func (l *Lines) Len() int {
	return len(l.from)
}

func sortPoints(pts []Point) {
	sort.Slice(pts, func(i, j int) bool { return LexLess(pts[i], pts[j]) })
}
