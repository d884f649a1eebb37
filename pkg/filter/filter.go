// Package filter provides design-to-design transforms: translation,
// overcut extension for closed paths, and registration mark extraction.
// Every filter returns a new design and leaves its input untouched.
package filter

import (
	"github.com/plotterkit/plotcut/pkg/design"
)

// Offset translates every endpoint by subtracting origin, so that origin
// in the input design lands on (0,0) in the output.
func Offset(d design.Design, origin design.Point) design.Design {
	out := make(design.Design, 0, len(d))
	for _, s := range d {
		out = append(out, design.Segment{
			Start: s.Start.Minus(origin),
			End:   s.End.Minus(origin),
		})
	}
	return out
}

// OvercutClosedPaths extends every closed path by replaying its own start
// up to amount mm, truncating the final replayed segment proportionally.
// Open paths pass through untouched. The extra travel carries the blade
// past the closure point so the piece separates cleanly despite blade and
// material tolerance.
func OvercutClosedPaths(d design.Design, amount float64) design.Design {
	var out design.Design
	for _, p := range design.ToPaths(d) {
		out = append(out, p...)
		if p.Closed() {
			out = append(out, design.Subpath(p, amount)...)
		}
	}
	return out
}
