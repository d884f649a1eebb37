package device

import (
	"fmt"

	"github.com/plotterkit/plotcut/pkg/design"
)

// OpKind identifies one recorded simulator operation.
type OpKind int

const (
	OpMove OpKind = iota // tool up
	OpCut                // tool down
	OpHome
	OpZero
)

// Op is one recorded simulator operation.
type Op struct {
	Kind   OpKind
	Target design.Point
	Width  float64 // OpZero only
	Height float64 // OpZero only
}

// Sim is an in-memory device that records every operation. It doubles as
// the dry-run backend and the test double for anything that drives a
// Device.
type Sim struct {
	params Params
	open   bool
	Ops    []Op
}

// NewSim returns a simulator with a cutter-sized envelope. The force and
// speed ranges mirror a Silhouette Portrait.
func NewSim() *Sim {
	return &Sim{
		params: Params{
			Name:       "sim",
			AreaWidth:  203.2,
			AreaHeight: 304.8,
			ForceRange: Range{Min: 7.0, Max: 231.0},
			SpeedRange: Range{Min: 100.0, Max: 1000.0},
			Tools:      []string{"Pen", "Knife"},
		},
	}
}

func (s *Sim) Params() Params { return s.params }

func (s *Sim) Open() error {
	s.open = true
	return nil
}

func (s *Sim) Close() error {
	s.open = false
	return nil
}

func (s *Sim) MoveTo(p design.Point, toolDown bool) error {
	if !s.open {
		return fmt.Errorf("sim: device not open")
	}
	kind := OpMove
	if toolDown {
		kind = OpCut
	}
	s.Ops = append(s.Ops, Op{Kind: kind, Target: p})
	return nil
}

func (s *Sim) MoveHome() error {
	if !s.open {
		return fmt.Errorf("sim: device not open")
	}
	s.Ops = append(s.Ops, Op{Kind: OpHome})
	return nil
}

func (s *Sim) Flush() error { return nil }

// ZeroOnRegMark records the alignment request; the simulator always
// finds the mark.
func (s *Sim) ZeroOnRegMark(width, height float64, search bool) error {
	if !s.open {
		return fmt.Errorf("sim: device not open")
	}
	s.Ops = append(s.Ops, Op{Kind: OpZero, Width: width, Height: height})
	return nil
}

// Cuts returns the recorded tool-down operations.
func (s *Sim) Cuts() []Op {
	var cuts []Op
	for _, op := range s.Ops {
		if op.Kind == OpCut {
			cuts = append(cuts, op)
		}
	}
	return cuts
}
