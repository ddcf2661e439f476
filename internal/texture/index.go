package texture

import (
	"os"
	"path/filepath"
	"strings"
)

// Index maps lowercase file stems to texture paths, so a model
// "crate.obj" finds "Crate.png".
type Index struct {
	entries map[string]string
}

// BuildIndex walks dir recursively for decodable textures. When several
// files share a stem the one earliest in Extensions wins.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		r := rank(filepath.Ext(path))
		if r < 0 {
			return nil
		}
		stem := Stem(path)
		existing, exists := idx.entries[stem]
		if !exists || r < rank(filepath.Ext(existing)) {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// Stem returns the lowercase base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(strings.ReplaceAll(path, "\\", "/"))
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// ResolvePath returns the texture path for a model or texture name.
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[Stem(name)]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
