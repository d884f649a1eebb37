package design

// ToPaths groups a design into maximal contiguous polylines. Paths appear
// in the order their first segment was listed in the design, and segments
// within each path keep their input order, so the result is stable for
// designs that are already contiguous runs per path.
//
// A point shared by three or more segments has no well-defined grouping;
// every segment is still assigned to exactly one path.
func ToPaths(d Design) []Path {
	var paths []Path

	// For each endpoint, the path it currently belongs to.
	owner := make(map[Point]int)

	for _, s := range d {
		idx, ok := owner[s.Start]
		if !ok {
			idx, ok = owner[s.End]
		}
		if !ok {
			idx = len(paths)
			paths = append(paths, nil)
		}

		paths[idx] = append(paths[idx], s)
		owner[s.Start] = idx
		owner[s.End] = idx
	}

	return paths
}
