package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"portfolio/internal/world"
)

func TestDefaultMatchesWorldDefaults(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatalf("Default invalid: %v", err)
	}
	if got, want := p.WorldConfig(), world.DefaultConfig(); got != want {
		t.Fatalf("WorldConfig = %+v; want %+v", got, want)
	}
	if p.StarCount != 1200 || p.CatalogPath != "" {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Window != Default().Window {
		t.Fatalf("Window = %+v", p.Window)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	data := `{"show_fps": true, "world": {"bounds": 40, "start": [1, 0, 2]}, "keys": {"confirm": ["enter"]}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.ShowFPS || p.World.Bounds != 40 {
		t.Fatalf("overrides lost: %+v", p)
	}
	if p.World.InteractDistance != 3 || p.World.Speed != 6 {
		t.Fatalf("defaults lost: %+v", p.World)
	}
	if wc := p.WorldConfig(); wc.Start != (mgl32.Vec3{1, 0, 2}) {
		t.Fatalf("Start = %v", wc.Start)
	}
	if got := p.Keys["confirm"]; len(got) != 1 || got[0] != "enter" {
		t.Fatalf("confirm keys = %v", got)
	}
	if got := p.Keys["cancel"]; len(got) != 1 || got[0] != "escape" {
		t.Fatalf("cancel keys = %v", got)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tcs := map[string]string{
		"syntax": `{"show_fps": `,
		"bounds": `{"world": {"bounds": 0}}`,
		"radius": `{"world": {"interact_distance": -1}}`,
		"window": `{"window": {"width": 0}}`,
	}
	for name, data := range tcs {
		path := filepath.Join(t.TempDir(), name+".json")
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: Load succeeded", name)
		}
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "portfolio.json")
	p := Default()
	p.ShowDebug = true
	p.CatalogPath = "assets/projects.yaml"
	p.World.Hint = "Press E"
	if err := Save(path, p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.ShowDebug || got.CatalogPath != p.CatalogPath || got.World != p.World {
		t.Fatalf("Load = %+v", got)
	}
}
