package preset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFileUsesDefaults(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "presets.yaml"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	p, ok := s.Get("Paper")
	if !ok {
		t.Fatal("default presets missing 'Paper'")
	}
	if p.Tool != "Pen" || p.Force != 28.0 {
		t.Errorf("Paper preset = %+v", p)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Put("Cardstock", Preset{Tool: "Knife", Force: 140, Speed: 400, Overcut: 2})
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	p, ok := s2.Get("Cardstock")
	if !ok {
		t.Fatal("saved preset missing after reload")
	}
	if p != (Preset{Tool: "Knife", Force: 140, Speed: 400, Overcut: 2}) {
		t.Errorf("reloaded preset = %+v", p)
	}
	// The defaults written alongside survive too.
	if _, ok := s2.Get("Paper"); !ok {
		t.Error("'Paper' preset lost on save/reload")
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "presets.yaml")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("preset file not created: %v", err)
	}
}

func TestDelete(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "presets.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	s.Delete("Paper")
	if _, ok := s.Get("Paper"); ok {
		t.Error("deleted preset still present")
	}
	// Deleting a missing name is a no-op.
	s.Delete("Paper")
}

func TestNamesSorted(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "presets.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	s.Put("Acetate", Preset{Tool: "Knife"})

	names := s.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
	if names[0] != "Acetate" {
		t.Errorf("Names()[0] = %q, want Acetate", names[0])
	}
}

func TestMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte("{not yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Open accepted malformed YAML")
	}
}
