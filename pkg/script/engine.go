// Package script evaluates small Lisp programs that construct designs
// programmatically: calibration sheets, test patterns, parameterised
// shapes. It wraps zygomys in a sandboxed environment; scripts cannot
// touch the filesystem or the network.
package script

import (
	"fmt"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/plotterkit/plotcut/pkg/design"
)

// EvalTimeout is the hard limit for a single evaluation.
const EvalTimeout = 5 * time.Second

// Engine evaluates design scripts. Each call to Evaluate creates a fresh
// sandboxed environment, so evaluations are deterministic and independent.
type Engine struct{}

// NewEngine creates a new Engine.
func NewEngine() *Engine {
	return &Engine{}
}

type evalResult struct {
	design design.Design
	err    error
}

// Evaluate runs source and returns the design it built. Empty source is
// a valid program that builds an empty design. A runaway script is cut
// off after EvalTimeout.
func (e *Engine) Evaluate(source string) (design.Design, error) {
	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		d, err := evaluate(source)
		ch <- evalResult{design: d, err: err}
	}()

	timer := time.NewTimer(EvalTimeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.design, res.err
	case <-timer.C:
		return nil, fmt.Errorf("evaluation timed out after %s", EvalTimeout)
	}
}

func evaluate(source string) (design.Design, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or
	// syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	b := &builder{}
	registerBuiltins(env, b)

	if err := env.LoadString(source); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if _, err := env.Run(); err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}

	return b.design, nil
}
