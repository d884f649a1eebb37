// Package preset stores named cutting presets (tool, force, speed,
// overcut) as a YAML file.
package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is one saved combination of cutting settings.
type Preset struct {
	Tool    string  `yaml:"tool"`
	Force   float64 `yaml:"force"`   // grams
	Speed   float64 `yaml:"speed"`   // mm/sec
	Overcut float64 `yaml:"overcut"` // mm
}

// Store holds the presets loaded from one file.
type Store struct {
	path    string
	Presets map[string]Preset `yaml:"presets"`
}

// Defaults returns the presets used when no preset file exists.
func Defaults() map[string]Preset {
	return map[string]Preset{
		"Paper": {
			Tool:    "Pen",
			Force:   28.0,
			Speed:   1000.0,
			Overcut: 1.0,
		},
		"Vinyl": {
			Tool:    "Knife",
			Force:   100.0,
			Speed:   600.0,
			Overcut: 1.0,
		},
	}
}

// DefaultPath returns the standard preset file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "plotcut", "presets.yaml")
}

// Open reads the preset store at path. A missing file yields the default
// presets; a malformed file is an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path, Presets: Defaults()}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read presets: %w", err)
	}

	s.Presets = make(map[string]Preset)
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}
	if len(s.Presets) == 0 {
		s.Presets = Defaults()
	}
	return s, nil
}

// Save writes the store back to its file, creating parent directories as
// needed.
func (s *Store) Save() error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("save presets: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("save presets: %w", err)
	}
	return nil
}

// Get returns the named preset.
func (s *Store) Get(name string) (Preset, bool) {
	p, ok := s.Presets[name]
	return p, ok
}

// Put adds or replaces a preset.
func (s *Store) Put(name string, p Preset) {
	s.Presets[name] = p
}

// Delete removes a preset; removing a missing name is a no-op.
func (s *Store) Delete(name string) {
	delete(s.Presets, name)
}

// Names returns the preset names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.Presets))
	for name := range s.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
