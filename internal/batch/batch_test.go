package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/thedudeguy/MeshIt/internal/obj"
	"github.com/thedudeguy/MeshIt/internal/raster"
	"github.com/thedudeguy/MeshIt/internal/texture"
)

const quad = `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func writeModels(t *testing.T, dir string, models map[string]string) {
	t.Helper()
	for name, src := range models {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeModels(t, dir, map[string]string{"b.obj": "", "a.OBJ": "", "c.mtl": ""})
	if err := os.Mkdir(filepath.Join(dir, "d.obj"), 0755); err != nil {
		t.Fatal(err)
	}
	paths, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(paths) != 2 || filepath.Base(paths[0]) != "a.OBJ" || filepath.Base(paths[1]) != "b.obj" {
		t.Errorf("paths = %q", paths)
	}
	if _, err := Discover(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}
}

func TestRun(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeModels(t, in, map[string]string{
		"good.obj":  quad + "f 1/1 2/2 3/3\n",
		"messy.obj": quad + "f 1/1 2/2\nf 9/9 1/1 2/2\n",
		"empty.obj": "# nothing\n",
	})
	paths, err := Discover(in)
	if err != nil {
		t.Fatal(err)
	}

	cfg := Config{
		OutputDir:   out,
		TexResolver: texture.NewCache(texture.BuildIndex(in)),
		View:        raster.DefaultView,
		RenderSize:  32,
		Supersample: 2,
		Workers:     2,
		WriteDesign: true,
	}
	results := Run(cfg, paths)
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	byName := map[string]Result{}
	for _, r := range results {
		byName[r.Name] = r
	}
	good := byName["good"]
	if !good.Success || good.Faces != 2 || good.Triangles != 1 {
		t.Errorf("good = %+v", good)
	}
	for _, f := range []string{good.Image, good.Design} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("missing output %s: %v", f, err)
		}
	}
	if messy := byName["messy"]; !messy.Success || messy.Skipped != 2 || messy.Faces != 1 {
		t.Errorf("messy = %+v", messy)
	}
	if empty := byName["empty"]; empty.Success || empty.Error == "" {
		t.Errorf("empty = %+v", empty)
	}
}

func TestRunStrict(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeModels(t, in, map[string]string{"messy.obj": quad + "f 1/1 2/2\n"})
	results := Run(Config{OutputDir: out, Mode: obj.Strict, RenderSize: 16, Supersample: 1}, []string{filepath.Join(in, "messy.obj")})
	r := results[0]
	if r.Success || !strings.Contains(r.Error, "line 10") {
		t.Errorf("result = %+v, want failure at line 10", r)
	}
}

func TestRunLogf(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	writeModels(t, in, map[string]string{"noted.obj": "mtllib noted.mtl\n" + quad})

	var mu sync.Mutex
	var logged []string
	cfg := Config{
		OutputDir:   out,
		RenderSize:  16,
		Supersample: 1,
		Logf: func(format string, args ...any) {
			mu.Lock()
			defer mu.Unlock()
			logged = append(logged, fmt.Sprintf(format, args...))
		},
	}
	r := Run(cfg, []string{filepath.Join(in, "noted.obj")})[0]
	if !r.Success {
		t.Fatalf("result = %+v", r)
	}
	if len(logged) != 1 || !strings.HasPrefix(logged[0], "noted: ") || !strings.Contains(logged[0], "mtllib") {
		t.Errorf("logged = %q, want one mtllib note for noted", logged)
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	m := NewManifest([]Result{{Name: "a", Success: true}, {Name: "b", Error: "x"}}, true)
	if m.Rendered != 1 || m.Failed != 1 {
		t.Errorf("counts = %d/%d", m.Rendered, m.Failed)
	}
	if err := WriteManifest(path, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Manifest
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(back.RunID); err != nil {
		t.Errorf("run id %q: %v", back.RunID, err)
	}
	if len(back.Models) != 2 || !back.Strict {
		t.Errorf("manifest = %+v", back)
	}
}
