package device

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/plotterkit/plotcut/pkg/design"
)

// mmPerPLU matches the HPGL plotter unit used by the loader package.
const mmPerPLU = 0.025

// HPGL is a device that writes HPGL commands to a stream instead of
// driving hardware. It suits plotters fed through a serial spooler and
// exporting a plan for inspection.
type HPGL struct {
	w      *bufio.Writer
	params Params
	opened bool
}

// NewHPGL returns an HPGL stream device writing to w.
func NewHPGL(w io.Writer) *HPGL {
	return &HPGL{
		w: bufio.NewWriter(w),
		params: Params{
			Name:       "hpgl",
			AreaWidth:  210.0,
			AreaHeight: 297.0,
			ForceRange: Range{},
			SpeedRange: Range{},
			Tools:      []string{"Pen"},
		},
	}
}

func (h *HPGL) Params() Params { return h.params }

func (h *HPGL) Open() error {
	h.opened = true
	_, err := h.w.WriteString("IN;")
	return err
}

func (h *HPGL) Close() error {
	h.opened = false
	return h.w.Flush()
}

func (h *HPGL) MoveTo(p design.Point, toolDown bool) error {
	if !h.opened {
		return fmt.Errorf("hpgl: device not open")
	}
	pen := "PU"
	if toolDown {
		pen = "PD"
	}
	x := int(math.Round(p.X / mmPerPLU))
	y := int(math.Round(p.Y / mmPerPLU))
	_, err := fmt.Fprintf(h.w, "%s%d,%d;", pen, x, y)
	return err
}

func (h *HPGL) MoveHome() error {
	return h.MoveTo(design.Pt(0, 0), false)
}

func (h *HPGL) Flush() error {
	return h.w.Flush()
}
