package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/jbeda/geom"

	"github.com/plotterkit/plotcut/pkg/design"
)

// ErrNoRegMarks reports that a design carries no usable registration
// marks: a required mark is missing, or a mark role is ambiguous. Callers
// match it with errors.Is and typically fall back to cutting without
// registration.
var ErrNoRegMarks = errors.New("filter: no registration marks in design")

// Region is the printed area the registration marks delimit, in mm.
type Region struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Printed fiducial geometry for Silhouette-style registration marks: a
// filled square at the region's top-left and two L-shaped lines at the
// bottom-left and top-right.
const (
	regMarkFuzz     = 0.5
	regMarkBoxSize  = 5.0
	regMarkLineSize = 20.0
)

func fuzzyEq(a, b float64) bool {
	return math.Abs(a-b) <= regMarkFuzz
}

// ExtractRegMarks classifies every path of the design against the three
// registration mark roles by bounding box and removes the matches. It
// returns the remaining design and the region the marks delimit.
//
// It fails with ErrNoRegMarks when the design is empty, when any role
// matches more than one path, or when a role never matches.
func ExtractRegMarks(d design.Design) (design.Design, Region, error) {
	if len(d) == 0 {
		return nil, Region{}, fmt.Errorf("empty design: %w", ErrNoRegMarks)
	}

	overall, err := design.BoundingBox(d)
	if err != nil {
		return nil, Region{}, err
	}

	var topLeftBox, btmLeftLine, topRightLine *geom.Rect
	var out design.Design

	for _, p := range design.ToPaths(d) {
		box, err := design.BoundingBox(p)
		if err != nil {
			return nil, Region{}, err
		}

		switch {
		case isTopLeftBox(box, overall):
			if topLeftBox != nil {
				return nil, Region{}, fmt.Errorf("ambiguous top-left box: %w", ErrNoRegMarks)
			}
			topLeftBox = ref(box)
		case isBtmLeftLine(box, overall):
			if btmLeftLine != nil {
				return nil, Region{}, fmt.Errorf("ambiguous bottom-left line: %w", ErrNoRegMarks)
			}
			btmLeftLine = ref(box)
		case isTopRightLine(box, overall):
			if topRightLine != nil {
				return nil, Region{}, fmt.Errorf("ambiguous top-right line: %w", ErrNoRegMarks)
			}
			topRightLine = ref(box)
		default:
			out = append(out, p...)
		}
	}

	switch {
	case topLeftBox == nil:
		return nil, Region{}, fmt.Errorf("top-left box not found: %w", ErrNoRegMarks)
	case btmLeftLine == nil:
		return nil, Region{}, fmt.Errorf("bottom-left line not found: %w", ErrNoRegMarks)
	case topRightLine == nil:
		return nil, Region{}, fmt.Errorf("top-right line not found: %w", ErrNoRegMarks)
	}

	region := Region{
		Left:   topLeftBox.Min.X,
		Top:    topLeftBox.Min.Y,
		Width:  topRightLine.Max.X - topLeftBox.Min.X,
		Height: btmLeftLine.Max.Y - topLeftBox.Min.Y,
	}
	return out, region, nil
}

// isTopLeftBox matches the ~5x5 square anchored at the design's top-left
// corner.
func isTopLeftBox(box, overall geom.Rect) bool {
	return fuzzyEq(box.Min.X, overall.Min.X) &&
		fuzzyEq(box.Min.Y, overall.Min.Y) &&
		fuzzyEq(box.Width(), regMarkBoxSize) &&
		fuzzyEq(box.Height(), regMarkBoxSize)
}

// isBtmLeftLine matches the ~20 unit L anchored at the design's
// bottom-left corner.
func isBtmLeftLine(box, overall geom.Rect) bool {
	return fuzzyEq(box.Min.X, overall.Min.X) &&
		fuzzyEq(box.Max.Y, overall.Max.Y) &&
		fuzzyEq(box.Width(), regMarkLineSize) &&
		fuzzyEq(box.Height(), regMarkLineSize)
}

// isTopRightLine matches the ~20 unit L anchored at the design's
// top-right corner.
func isTopRightLine(box, overall geom.Rect) bool {
	return fuzzyEq(box.Max.X, overall.Max.X) &&
		fuzzyEq(box.Min.Y, overall.Min.Y) &&
		fuzzyEq(box.Width(), regMarkLineSize) &&
		fuzzyEq(box.Height(), regMarkLineSize)
}

func ref(box geom.Rect) *geom.Rect {
	return &box
}
