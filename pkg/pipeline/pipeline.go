// Package pipeline implements a lazy, dependency-aware chain of design
// processing stages. Each stage memoizes its result; changing a stage's
// transform or an externally supplied value invalidates only what derives
// from it, so a caller can re-read the output on every redraw without
// re-running expensive geometry work.
//
// A stage is either Fixed (its value is supplied from outside and never
// derived) or Derived (its value is computed from the previous stage).
// Stage 0 is always the Fixed input stage.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/plotterkit/plotcut/pkg/design"
)

// Transform computes one stage's design from the previous stage's.
type Transform func(design.Design) (design.Design, error)

// InputStage is the name of the implicit first stage.
const InputStage = "__input__"

// Caller contract violations. These fail the offending call and leave
// every stage's cached state intact.
var (
	ErrUnknownStage = errors.New("pipeline: unknown stage")
	ErrDerivedStage = errors.New("pipeline: stage value is derived, not settable")
	ErrFixedStage   = errors.New("pipeline: stage value is externally supplied")
	ErrNoValue      = errors.New("pipeline: no value supplied for fixed stage")
)

type stageKind int

const (
	fixed stageKind = iota
	derived
)

type stage struct {
	name  string
	kind  stageKind
	fn    Transform // nil unless kind == derived
	value design.Design
	valid bool
}

// Pipeline is an ordered sequence of named stages. It is not safe for
// concurrent use.
type Pipeline struct {
	stages []stage
}

// New creates a pipeline with the given stage names appended after the
// implicit input stage. Every named stage starts as a Derived identity
// transform.
func New(names ...string) *Pipeline {
	p := &Pipeline{stages: make([]stage, 0, len(names)+1)}
	p.stages = append(p.stages, stage{name: InputStage, kind: fixed})
	for _, name := range names {
		p.stages = append(p.stages, stage{name: name, kind: derived, fn: identity})
	}
	return p
}

func identity(d design.Design) (design.Design, error) {
	return d, nil
}

// Names returns the stage names in pipeline order, input stage included.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, st := range p.stages {
		names[i] = st.name
	}
	return names
}

func (p *Pipeline) index(name string) (int, error) {
	for i, st := range p.stages {
		if st.name == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownStage)
}

// SetInput supplies the raw design to the input stage, invalidating
// everything derived from it.
func (p *Pipeline) SetInput(d design.Design) {
	// The input stage always exists and is always Fixed.
	_ = p.SetValue(InputStage, d)
}

// SetValue supplies a value for a Fixed stage and invalidates the stages
// after it. Setting a value on a Derived stage is a caller error.
func (p *Pipeline) SetValue(name string, d design.Design) error {
	i, err := p.index(name)
	if err != nil {
		return err
	}
	if p.stages[i].kind != fixed {
		return fmt.Errorf("%q: %w", name, ErrDerivedStage)
	}

	p.stages[i].value = d
	p.stages[i].valid = true
	p.invalidateAfter(i)
	return nil
}

// SetFunc makes a stage Derived with the given transform and invalidates
// it along with the stages after it. The input stage never derives its
// value, so it cannot be given a transform.
func (p *Pipeline) SetFunc(name string, fn Transform) error {
	i, err := p.index(name)
	if err != nil {
		return err
	}
	if i == 0 {
		return fmt.Errorf("%q: %w", name, ErrFixedStage)
	}

	p.stages[i].kind = derived
	p.stages[i].fn = fn
	p.stages[i].value = nil
	p.stages[i].valid = false
	p.invalidateAfter(i)
	return nil
}

// Pin makes a stage Fixed, keeping whatever value it currently holds.
// Upstream changes no longer touch it; only SetValue does. The stages
// after it keep their cached values too, since the pinned value has not
// changed.
func (p *Pipeline) Pin(name string) error {
	i, err := p.index(name)
	if err != nil {
		return err
	}

	p.stages[i].kind = fixed
	p.stages[i].fn = nil
	return nil
}

// invalidateAfter drops the cached values after stage i. A Fixed stage
// stops the sweep: its value did not change, so nothing derived from it
// is stale.
func (p *Pipeline) invalidateAfter(i int) {
	for j := i + 1; j < len(p.stages); j++ {
		if p.stages[j].kind == fixed {
			return
		}
		p.stages[j].value = nil
		p.stages[j].valid = false
	}
}

// Valid reports whether the stage currently holds a cached value. An
// invalid stage implies Value will do work (or fail, for a Fixed stage
// with no supplied value).
func (p *Pipeline) Valid(name string) (bool, error) {
	i, err := p.index(name)
	if err != nil {
		return false, err
	}
	return p.stages[i].valid, nil
}

// Value resolves and returns the named stage's value, computing and
// caching any stale stages before it. Asking for the value of a Fixed
// stage that was never supplied one is a caller error.
func (p *Pipeline) Value(name string) (design.Design, error) {
	i, err := p.index(name)
	if err != nil {
		return nil, err
	}
	return p.resolve(i)
}

// Output resolves the final stage: the cuttable order.
func (p *Pipeline) Output() (design.Design, error) {
	return p.resolve(len(p.stages) - 1)
}

func (p *Pipeline) resolve(i int) (design.Design, error) {
	st := &p.stages[i]
	if st.valid {
		return st.value, nil
	}
	if st.kind == fixed {
		return nil, fmt.Errorf("%q: %w", st.name, ErrNoValue)
	}

	prev, err := p.resolve(i - 1)
	if err != nil {
		return nil, err
	}

	value, err := st.fn(prev)
	if err != nil {
		return nil, fmt.Errorf("stage %q: %w", st.name, err)
	}

	st.value = value
	st.valid = true
	return value, nil
}
