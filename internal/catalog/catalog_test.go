package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewRejectsBadIDs(t *testing.T) {
	tcs := []struct {
		name     string
		projects []Project
		want     error
	}{
		{name: "empty", projects: []Project{{ID: "a"}, {ID: ""}}, want: ErrEmptyID},
		{name: "duplicate", projects: []Project{{ID: "a"}, {ID: "b"}, {ID: "a"}}, want: ErrDuplicateID},
	}
	for _, tc := range tcs {
		_, err := New(tc.projects)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: New err=%v; want %v", tc.name, err, tc.want)
		}
	}
}

func TestAllKeepsOrderAndIsACopy(t *testing.T) {
	c, err := New([]Project{
		{ID: "c", Tags: []string{"x"}},
		{ID: "a"},
		{ID: "b"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	all := c.All()
	if len(all) != 3 || all[0].ID != "c" || all[1].ID != "a" || all[2].ID != "b" {
		t.Fatalf("All order = %v", all)
	}
	all[0].Tags[0] = "mutated"
	all[0].Title = "mutated"
	again, _ := c.FindByID("c")
	if again.Tags[0] != "x" || again.Title != "" {
		t.Fatalf("catalog mutated through All: %+v", again)
	}
}

func TestFindByID(t *testing.T) {
	c, err := New([]Project{{ID: "one", Title: "One"}, {ID: "two", Title: "Two"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p, ok := c.FindByID("two")
	if !ok || p.Title != "Two" {
		t.Fatalf("FindByID(two) = %+v, %v", p, ok)
	}
	if _, ok := c.FindByID("three"); ok {
		t.Fatal("FindByID(three) found a project")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 3 {
		t.Fatalf("Len = %d; want 3", c.Len())
	}
	p, ok := c.FindByID("projeto-2")
	if !ok {
		t.Fatal("projeto-2 missing")
	}
	if p.Title != "Galactic API" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.Position != (mgl32.Vec3{-8, 0, 18}) {
		t.Errorf("Position = %v", p.Position)
	}
	if p.Color != (RGB{R: 0xff, G: 0x6f, B: 0xd8}) {
		t.Errorf("Color = %v", p.Color)
	}
	if len(p.Tags) != 3 || p.Tags[0] != "Node.js" || p.Tags[2] != "Docker" {
		t.Errorf("Tags = %v", p.Tags)
	}
}

func TestParseErrors(t *testing.T) {
	tcs := []struct {
		name string
		yaml string
	}{
		{name: "syntax", yaml: "projects: [\n"},
		{name: "color", yaml: "projects:\n  - id: a\n    color: nope\n"},
		{name: "duplicate", yaml: "projects:\n  - id: a\n  - id: a\n"},
	}
	for _, tc := range tcs {
		if _, err := Parse([]byte(tc.yaml)); err == nil {
			t.Fatalf("%s: Parse succeeded", tc.name)
		}
	}
}

func TestParseDefaultsColorToWhite(t *testing.T) {
	c, err := Parse([]byte("projects:\n  - id: a\n    title: A\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, _ := c.FindByID("a")
	if p.Color != (RGB{255, 255, 255}) {
		t.Fatalf("Color = %v", p.Color)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	data := "projects:\n  - id: solo\n    position: {x: 1, y: 2, z: 3}\n    color: \"0x102030\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, _ := c.FindByID("solo")
	if p.Position != (mgl32.Vec3{1, 2, 3}) || p.Color != (RGB{0x10, 0x20, 0x30}) {
		t.Fatalf("project = %+v", p)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load(missing) succeeded")
	}
}

func TestParseColor(t *testing.T) {
	tcs := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{in: "#7ef6ff", want: RGB{0x7e, 0xf6, 0xff}, ok: true},
		{in: "0x9B8CFF", want: RGB{0x9b, 0x8c, 0xff}, ok: true},
		{in: "#fff", want: RGB{255, 255, 255}, ok: true},
		{in: "blue", ok: false},
	}
	for _, tc := range tcs {
		got, err := ParseColor(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseColor(%q) err=%v; want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseColor(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
	if h := (RGB{0x7e, 0xf6, 0xff}).Hex(); h != "#7ef6ff" {
		t.Fatalf("Hex = %q", h)
	}
}
