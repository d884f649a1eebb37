// Package order sorts a design's segments into a cutting order. The
// sorters are pure: they take a design and a start position and return a
// new plan without touching the input.
package order

import (
	"github.com/plotterkit/plotcut/pkg/design"
)

// Plan is an ordered sequence of (from, to) cuts. Consecutive cuts may
// leave a positional gap; the gap is a non-cutting travel move and is not
// represented explicitly. Compare one cut's End with the next cut's Start
// to detect it.
type Plan = design.Design

// LevelSorter orders the segments of one dependency level from a given
// start position.
type LevelSorter func(design.Design, design.Point) Plan

// Naive greedily follows the nearest segment. From the current position
// it cuts any incident unvisited segment, preferring the
// lexicographically smallest endpoint; with nothing incident it jumps to
// the nearest remaining endpoint (squared Euclidean distance,
// lexicographic on ties) and retries. Both tie-breaks are pinned so plans
// are reproducible.
func Naive(d design.Design, start design.Point) Plan {
	if len(d) == 0 {
		return nil
	}

	remaining := design.NewLines()
	for _, s := range d {
		remaining.Add(s)
	}

	var out Plan
	cur := start
	for remaining.Len() > 0 {
		reachable := remaining.From(cur)
		if len(reachable) == 0 {
			cur = nearest(remaining.Points(), cur)
			continue
		}

		target := reachable[0]
		out = append(out, design.Segment{Start: cur, End: target})
		if err := remaining.Remove(cur, target); err != nil {
			panic(err) // target came from the index
		}
		cur = target
	}

	return out
}

// nearest returns the point with minimum squared distance from cur.
// pts is sorted, so the first minimum wins ties lexicographically.
func nearest(pts []design.Point, cur design.Point) design.Point {
	best := pts[0]
	bestDist := sqDist(best, cur)
	for _, p := range pts[1:] {
		if d := sqDist(p, cur); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func sqDist(a, b design.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Hierarchical cuts inner shapes before the shapes that contain them,
// sorting each dependency level with Naive. This stops the cutter from
// freeing a piece of material that still has uncut interior detail.
func Hierarchical(d design.Design, start design.Point) Plan {
	return HierarchicalWith(d, start, Naive)
}

// HierarchicalWith is Hierarchical with a caller-chosen per-level sorter.
func HierarchicalWith(d design.Design, start design.Point, levelSort LevelSorter) Plan {
	if len(d) == 0 {
		return nil
	}

	var out Plan
	cur := start
	for _, level := range design.PathsByDependency(d) {
		var flat design.Design
		for _, p := range level {
			flat = append(flat, p...)
		}

		sorted := levelSort(flat, cur)
		out = append(out, sorted...)
		if len(sorted) > 0 {
			cur = sorted[len(sorted)-1].End
		}
	}

	return out
}
