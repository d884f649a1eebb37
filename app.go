package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/plotterkit/plotcut/pkg/design"
	"github.com/plotterkit/plotcut/pkg/device"
	"github.com/plotterkit/plotcut/pkg/filter"
	"github.com/plotterkit/plotcut/pkg/loader"
	"github.com/plotterkit/plotcut/pkg/order"
	"github.com/plotterkit/plotcut/pkg/pipeline"
)

// Design pipeline stage names, in order.
const (
	stageRegMarks = "regmark_extraction"
	stageSort     = "sort"
	stageOvercut  = "overcut"
)

// App wires the loader registry, device registry and the design pipeline
// together. All processing flows through the pipeline, so repeated reads
// of the plan are free until a setting or the design changes.
type App struct {
	loaders *loader.Registry
	devices *device.Registry

	pipe *pipeline.Pipeline
	size loader.Size

	strategy order.Strategy
	overcut  float64
	extract  bool

	region     filter.Region
	haveRegion bool
}

// NewApp creates an App with an empty design loaded.
func NewApp(loaders *loader.Registry, devices *device.Registry) *App {
	a := &App{
		loaders:  loaders,
		devices:  devices,
		pipe:     pipeline.New(stageRegMarks, stageSort, stageOvercut),
		strategy: order.Optimized,
		overcut:  1.0,
	}
	a.pipe.SetInput(nil)
	a.applyRegMarks()
	a.applySort()
	a.applyOvercut()
	return a
}

// LoadDesign loads a design file through the loader registry and feeds it
// into the pipeline.
func (a *App) LoadDesign(path string) error {
	size, d, err := a.loaders.LoadFile(path)
	if err != nil {
		return err
	}
	a.SetDesign(size, d)
	return nil
}

// SetDesign replaces the raw design, invalidating all derived stages.
func (a *App) SetDesign(size loader.Size, d design.Design) {
	a.size = size
	a.haveRegion = false
	a.pipe.SetInput(d)
}

// Size returns the loaded design's page size.
func (a *App) Size() loader.Size {
	return a.size
}

// SetStrategy selects the cutting order.
func (a *App) SetStrategy(s order.Strategy) {
	a.strategy = s
	a.applySort()
}

// SetCustomOrder pins a manually arranged plan into the sort stage and
// switches to the Custom strategy.
func (a *App) SetCustomOrder(plan order.Plan) error {
	a.strategy = order.Custom
	if err := a.pipe.Pin(stageSort); err != nil {
		return err
	}
	return a.pipe.SetValue(stageSort, plan)
}

// SetOvercut sets the closed-path overcut distance in mm.
func (a *App) SetOvercut(mm float64) {
	a.overcut = mm
	a.applyOvercut()
}

// SetRegMarkExtraction toggles registration mark detection.
func (a *App) SetRegMarkExtraction(on bool) {
	a.extract = on
	a.applyRegMarks()
}

// Region returns the registration mark region found by the last pipeline
// run, if any.
func (a *App) Region() (filter.Region, bool) {
	return a.region, a.haveRegion
}

// Plan resolves the pipeline and returns the cuttable order.
func (a *App) Plan() (order.Plan, error) {
	return a.pipe.Output()
}

// Cut resolves the plan and drives it to the named device, aligning on
// registration marks when the device can and a region was found.
func (a *App) Cut(deviceName string, start design.Point) error {
	plan, err := a.Plan()
	if err != nil {
		return err
	}

	dev, err := a.devices.Find(deviceName)
	if err != nil {
		return err
	}
	if err := dev.Open(); err != nil {
		return err
	}
	defer dev.Close()

	if reg, ok := dev.(device.Registration); ok {
		if region, found := a.Region(); found {
			if err := reg.ZeroOnRegMark(region.Width, region.Height, true); err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
		}
	}

	if err := device.Plot(dev, plan, start); err != nil {
		return err
	}
	return dev.MoveHome()
}

func (a *App) applySort() {
	var fn pipeline.Transform
	switch a.strategy {
	case order.Original:
		fn = func(d design.Design) (design.Design, error) { return d, nil }
	case order.Optimized:
		fn = func(d design.Design) (design.Design, error) {
			return order.Naive(d, design.Pt(0, 0)), nil
		}
	case order.InnerFirst:
		fn = func(d design.Design) (design.Design, error) {
			return order.Hierarchical(d, design.Pt(0, 0)), nil
		}
	case order.Custom:
		// The stage is pinned via SetCustomOrder; nothing to derive.
		return
	}
	a.mustSetFunc(stageSort, fn)
}

func (a *App) applyOvercut() {
	amount := a.overcut
	a.mustSetFunc(stageOvercut, func(d design.Design) (design.Design, error) {
		return filter.OvercutClosedPaths(d, amount), nil
	})
}

// applyRegMarks installs the extraction stage. A design without usable
// marks is not an error at this level: extraction turns itself off and
// the design passes through, mirroring how the marks checkbox behaves in
// a UI.
func (a *App) applyRegMarks() {
	if !a.extract {
		a.haveRegion = false
		a.mustSetFunc(stageRegMarks, func(d design.Design) (design.Design, error) { return d, nil })
		return
	}

	a.mustSetFunc(stageRegMarks, func(d design.Design) (design.Design, error) {
		out, region, err := filter.ExtractRegMarks(d)
		if err != nil {
			if errors.Is(err, filter.ErrNoRegMarks) {
				log.Printf("regmark extraction disabled: %v", err)
				a.extract = false
				a.haveRegion = false
				return d, nil
			}
			return nil, err
		}
		a.region = region
		a.haveRegion = true
		return out, nil
	})
}

func (a *App) mustSetFunc(name string, fn pipeline.Transform) {
	if err := a.pipe.SetFunc(name, fn); err != nil {
		panic(err) // stage names are compile-time constants
	}
}
