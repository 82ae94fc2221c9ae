package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("font"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "readme.txt", "Mono.otf")
	got, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	want := []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}
	if len(got) != len(want) {
		t.Fatalf("ScanDir = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ScanDir = %v; want %v", got, want)
		}
	}

	none, err := ScanDir(filepath.Join(dir, "missing"))
	if err != nil || len(none) != 0 {
		t.Fatalf("missing dir = %v, %v", none, err)
	}
}

func TestFind(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	writeFiles(t, a, "Google_Sans/GoogleSans-Bold.ttf")
	writeFiles(t, b, "Google_Sans/GoogleSans-Regular.ttf", "Inter/Inter-Bold.ttf")
	dirs := []string{a, b}

	tests := []struct {
		name string
		want string
	}{
		{"Google Sans", filepath.Join(b, "Google_Sans", "GoogleSans-Regular.ttf")},
		{"inter", filepath.Join(b, "Inter", "Inter-Bold.ttf")},
		{"Inter-Bold.ttf", filepath.Join(b, "Inter", "Inter-Bold.ttf")},
	}
	for _, tt := range tests {
		got, err := Find(dirs, tt.name)
		if err != nil || got != tt.want {
			t.Errorf("Find(%q) = %q, %v; want %q", tt.name, got, err, tt.want)
		}
	}

	direct := filepath.Join(a, "Google_Sans", "GoogleSans-Bold.ttf")
	if got, err := Find(nil, direct); err != nil || got != direct {
		t.Errorf("Find(path) = %q, %v", got, err)
	}
	if _, err := Find(dirs, "Comic"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Find(Comic) err = %v; want ErrNotExist", err)
	}
	if _, err := Find(dirs, " "); err == nil {
		t.Error("Find(blank) succeeded")
	}
}
