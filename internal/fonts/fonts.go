// Package fonts finds TTF/OTF files for the overlay UI by path or by family name.
package fonts

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exts are the font file extensions considered.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns the directories searched by name, relative to the working directory.
// The second entry covers running from cmd/portfolio.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// ScanDir returns the slash-separated paths of all font files under dir, relative to dir
// and sorted. A missing dir yields no paths.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(out)
	return out, err
}

// normalize lowercases and drops spaces, dashes and underscores so "Google Sans" matches
// "Google_Sans/GoogleSans-Regular.ttf".
func normalize(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// Find resolves name to a font file. An existing file path is returned as is; otherwise
// every dir is scanned for a file whose relative path contains name, preferring a
// "Regular" face.
func Find(dirs []string, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("fonts: empty name")
	}
	if info, err := os.Stat(name); err == nil && !info.IsDir() && isFont(name) {
		return name, nil
	}

	want := normalize(strings.TrimSuffix(name, filepath.Ext(name)))
	var matches []string
	for _, dir := range dirs {
		list, err := ScanDir(dir)
		if err != nil {
			return "", fmt.Errorf("fonts: %w", err)
		}
		for _, rel := range list {
			if strings.Contains(normalize(rel), want) {
				matches = append(matches, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("fonts: %q: %w", name, os.ErrNotExist)
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}
