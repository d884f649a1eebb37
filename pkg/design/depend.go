package design

import "github.com/jbeda/geom"

// Level is one rank of the containment partial order: a set of paths,
// none of which contains any other.
type Level []Path

// depTree is the containment tree built while ordering paths by
// dependency. Nodes live in a flat arena and reference each other by
// index, so demoting an existing entry under a newly inserted one is a
// plain slice rewrite.
//
// Insertion is roughly quadratic per path. Designs run to tens or low
// hundreds of paths, so correctness wins over asymptotics here.
type depTree struct {
	nodes []depNode
	roots []int
}

type depNode struct {
	path Path
	box  geom.Rect
	kids []int
}

func (t *depTree) insert(p Path, box geom.Rect) {
	id := len(t.nodes)
	t.nodes = append(t.nodes, depNode{path: p, box: box})
	t.roots = t.place(t.roots, id)
}

// place adds node id among siblings: it recurses into a sibling that
// contains it, demotes siblings it contains, and otherwise joins them as
// a peer. Mutually non-containing boxes (including identical ones) stay
// siblings.
func (t *depTree) place(siblings []int, id int) []int {
	box := t.nodes[id].box

	for _, sib := range siblings {
		if Contains(t.nodes[sib].box, box) {
			t.nodes[sib].kids = t.place(t.nodes[sib].kids, id)
			return siblings
		}
	}

	keep := siblings[:0]
	for _, sib := range siblings {
		if Contains(box, t.nodes[sib].box) {
			t.nodes[id].kids = append(t.nodes[id].kids, sib)
		} else {
			keep = append(keep, sib)
		}
	}

	return append(keep, id)
}

// PathsByDependency partitions a design's paths into dependency levels,
// innermost first: every path in level i is strictly contained (by
// bounding box) in some path of a later level. Cutting level 0 first
// means no shape is freed from the material before its interior detail
// has been cut.
func PathsByDependency(d Design) []Level {
	var t depTree
	for _, p := range ToPaths(d) {
		box, err := BoundingBox(p)
		if err != nil {
			continue // ToPaths never yields an empty path
		}
		t.insert(p, box)
	}

	// Peel leaves: each pass collects every path with no remaining
	// children as one level. Arena order is insertion order, which keeps
	// levels deterministic.
	var levels []Level
	removed := make([]bool, len(t.nodes))
	alive := len(t.nodes)

	for alive > 0 {
		var level Level
		var leaves []int
		for id := range t.nodes {
			if removed[id] || t.liveKids(id, removed) > 0 {
				continue
			}
			level = append(level, t.nodes[id].path)
			leaves = append(leaves, id)
		}
		for _, id := range leaves {
			removed[id] = true
		}
		levels = append(levels, level)
		alive -= len(leaves)
	}

	return levels
}

func (t *depTree) liveKids(id int, removed []bool) int {
	n := 0
	for _, kid := range t.nodes[id].kids {
		if !removed[kid] {
			n++
		}
	}
	return n
}
