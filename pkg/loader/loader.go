// Package loader turns design files into designs. Loaders are registered
// on an explicit Registry owned by the application's composition root;
// there is no process-wide loader list.
package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/plotterkit/plotcut/pkg/design"
)

// ErrUnsupported is returned by LoadFile when no registered loader claims
// the file's extension.
var ErrUnsupported = errors.New("loader: unsupported file type")

// Size is a design's page size in mm.
type Size struct {
	Width  float64
	Height float64
}

// Loader parses file data into a page size and a design.
type Loader func(data string) (Size, design.Design, error)

// Entry describes one registered loader.
type Entry struct {
	Ext  string // filename suffix, e.g. ".hpgl"
	Name string // human readable format name
	Load Loader
}

// Registry maps filename extensions to loaders.
type Registry struct {
	entries []Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns a registry with all built-in loaders registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(".hpgl", "HP Graphics Language", LoadHPGL)
	r.Register(".plt", "HP Graphics Language", LoadHPGL)
	return r
}

// Register adds a loader for a filename extension. Later registrations
// do not shadow earlier ones; the first matching extension wins.
func (r *Registry) Register(ext, name string, fn Loader) {
	r.entries = append(r.entries, Entry{Ext: ext, Name: name, Load: fn})
}

// Entries returns the registered loaders in registration order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// LoadFile reads the file and parses it with the loader registered for
// its extension.
func (r *Registry) LoadFile(path string) (Size, design.Design, error) {
	for _, e := range r.entries {
		if !strings.HasSuffix(path, e.Ext) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return Size{}, nil, fmt.Errorf("load %s: %w", path, err)
		}
		return e.Load(string(data))
	}
	return Size{}, nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
}
