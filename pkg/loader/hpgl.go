package loader

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/plotterkit/plotcut/pkg/design"
)

// MMPerPLU converts HPGL plotter units to mm.
const MMPerPLU = 0.025

// LoadHPGL parses HPGL data into a design. Only the PU (pen up) and PD
// (pen down) commands are interpreted, which covers the output of common
// vector editors; everything else is ignored. The page size is taken from
// the design's extent.
func LoadHPGL(data string) (Size, design.Design, error) {
	var d design.Design
	var cur design.Point

	for _, command := range strings.Split(data, ";") {
		command = strings.TrimSpace(command)
		if len(command) <= 2 {
			continue
		}

		switch command[:2] {
		case "PU":
			p, err := parsePLUPair(command[2:])
			if err != nil {
				return Size{}, nil, fmt.Errorf("hpgl %q: %w", command, err)
			}
			cur = p
		case "PD":
			p, err := parsePLUPair(command[2:])
			if err != nil {
				return Size{}, nil, fmt.Errorf("hpgl %q: %w", command, err)
			}
			d = append(d, design.Segment{Start: cur, End: p})
			cur = p
		}
	}

	size := Size{}
	if box, err := design.BoundingBox(d); err == nil {
		size = Size{Width: box.Max.X, Height: box.Max.Y}
	}
	return size, d, nil
}

func parsePLUPair(s string) (design.Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return design.Point{}, fmt.Errorf("want x,y coordinates, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return design.Point{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return design.Point{}, err
	}
	return design.Pt(float64(x)*MMPerPLU, float64(y)*MMPerPLU), nil
}

// WriteHPGL emits a plan as HPGL PU/PD commands. Gaps between consecutive
// cuts become pen-up moves.
func WriteHPGL(w io.Writer, plan design.Design) error {
	if _, err := io.WriteString(w, "IN;"); err != nil {
		return err
	}

	var cur design.Point
	first := true
	for _, seg := range plan {
		if first || seg.Start != cur {
			if err := writeMove(w, "PU", seg.Start); err != nil {
				return err
			}
		}
		if err := writeMove(w, "PD", seg.End); err != nil {
			return err
		}
		cur = seg.End
		first = false
	}

	_, err := io.WriteString(w, "PU0,0;\n")
	return err
}

func writeMove(w io.Writer, pen string, p design.Point) error {
	x := int(math.Round(p.X / MMPerPLU))
	y := int(math.Round(p.Y / MMPerPLU))
	_, err := fmt.Fprintf(w, "%s%d,%d;", pen, x, y)
	return err
}
