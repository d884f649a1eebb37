// Package device defines the boundary to physical plotters and cutters.
// Devices implement a small capability interface; optional capabilities
// (registration mark alignment, tool pressure) are separate interfaces a
// caller type-asserts for, rather than an inheritance hierarchy.
//
// The devices in this package are a recording simulator and an HPGL
// stream writer. Real hardware drivers live outside this module and plug
// into the same interface.
package device

import (
	"errors"
	"fmt"

	"github.com/plotterkit/plotcut/pkg/design"
)

// ErrNotFound is returned when a registry lookup fails.
var ErrNotFound = errors.New("device: no such device")

// Params describes a device's envelope. Values are mm, mm/sec and grams.
type Params struct {
	Name       string
	AreaWidth  float64
	AreaHeight float64
	ForceRange Range
	SpeedRange Range
	Tools      []string
}

// Range is an inclusive numeric range.
type Range struct {
	Min float64
	Max float64
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	}
	return v
}

// Device is the minimal surface every plotter driver provides.
type Device interface {
	// Params returns the device's envelope and identity.
	Params() Params
	// Open connects to and initialises the device.
	Open() error
	// Close disconnects and cleans up.
	Close() error
	// MoveTo moves the carriage to an absolute position in mm, with the
	// tool engaged or not during the move.
	MoveTo(p design.Point, toolDown bool) error
	// MoveHome moves the carriage home with the tool disengaged.
	MoveHome() error
	// Flush blocks until all outstanding commands have been sent.
	Flush() error
}

// Registration is the optional capability of zeroing the device on
// registration marks printed on the sheet.
type Registration interface {
	// ZeroOnRegMark aligns the device origin with the registration mark
	// region of the given size. With search enabled the device hunts for
	// the mark freely.
	ZeroOnRegMark(width, height float64, search bool) error
}

// Registry is an explicit list of available devices, owned by the
// application's composition root.
type Registry struct {
	devices []Device
}

// NewRegistry returns an empty device registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a device.
func (r *Registry) Register(d Device) {
	r.devices = append(r.devices, d)
}

// Devices returns the registered devices in registration order.
func (r *Registry) Devices() []Device {
	return append([]Device(nil), r.devices...)
}

// Find returns the registered device with the given name.
func (r *Registry) Find(name string) (Device, error) {
	for _, d := range r.devices {
		if d.Params().Name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Plot drives a device through a plan from the given start position.
// A gap between consecutive cuts becomes a tool-up travel move; every cut
// is a tool-down move to its endpoint.
func Plot(dev Device, plan design.Design, start design.Point) error {
	cur := start
	for _, seg := range plan {
		if seg.Start != cur {
			if err := dev.MoveTo(seg.Start, false); err != nil {
				return err
			}
		}
		if err := dev.MoveTo(seg.End, true); err != nil {
			return err
		}
		cur = seg.End
	}
	return dev.Flush()
}
