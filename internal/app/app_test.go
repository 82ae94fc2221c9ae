package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"portfolio/internal/world"
)

func memoryLog() *string {
	s := ""
	return &s
}

func TestOpenDefaults(t *testing.T) {
	s, err := Open(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.json"), LogPath: memoryLog()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Catalog.Len() != 3 {
		t.Fatalf("catalog len = %d; want embedded 3", s.Catalog.Len())
	}
	if a, ok := s.Bindings.Action("e"); !ok || a != world.ActionConfirm {
		t.Fatalf("e -> %v, %v", a, ok)
	}
	if !strings.Contains(s.Log.Last(), "3 projects") {
		t.Fatalf("last log = %q", s.Log.Last())
	}
}

func TestOpenOverrides(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "portfolio.json")
	if err := os.WriteFile(cfg, []byte(`{"keys": {"confirm": ["e", "hyperspace"]}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cat := filepath.Join(dir, "projects.yaml")
	if err := os.WriteFile(cat, []byte("projects:\n  - id: solo\n    title: Solo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	on := true

	s, err := Open(Options{ConfigPath: cfg, CatalogPath: cat, Fullscreen: &on, LogPath: memoryLog()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !s.Prefs.Window.Fullscreen || s.Prefs.CatalogPath != cat {
		t.Fatalf("overrides not applied: %+v", s.Prefs)
	}
	if s.Catalog.Len() != 1 {
		t.Fatalf("catalog len = %d", s.Catalog.Len())
	}
	warned := false
	for _, l := range s.Log.Lines() {
		if strings.Contains(l, "WARN") && strings.Contains(l, "hyperspace") {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("no warning for unknown key in %q", s.Log.Lines())
	}

	loop := s.Loop(nil, nil)
	if len(loop.World.Portals) != 1 || loop.World.Portals[0].ProjectID != "solo" {
		t.Fatalf("portals = %+v", loop.World.Portals)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(Options{ConfigPath: bad, LogPath: memoryLog()}); err == nil {
		t.Error("Open with bad config succeeded")
	}
	missing := filepath.Join(dir, "nope.yaml")
	_, err := Open(Options{ConfigPath: filepath.Join(dir, "none.json"), CatalogPath: missing, LogPath: memoryLog()})
	if err == nil || !strings.Contains(err.Error(), "load catalog") {
		t.Errorf("err = %v; want load catalog error", err)
	}
}
