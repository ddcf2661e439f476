package design

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thedudeguy/MeshIt/internal/obj"
)

const quadOBJ = `v -1 0 2
v 3 0 2
v 3 5 2
v -1 5 -4
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
f 1/1 2/2 3/3
`

func parse(t *testing.T, src string) *obj.Mesh {
	t.Helper()
	m, _, err := obj.Parse(strings.NewReader(src), obj.Options{Mode: obj.Strict})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func TestBuildDefaults(t *testing.T) {
	d := Build(parse(t, quadOBJ), Options{})
	if d.MinBrightness != 0 || d.MaxBrightness != 1 {
		t.Errorf("brightness = %v..%v, want 0..1", d.MinBrightness, d.MaxBrightness)
	}
	if d.Bounds != UnitBox {
		t.Errorf("bounds = %+v, want unit box", d.Bounds)
	}
	if d.QuadCount() != 2 {
		t.Fatalf("QuadCount() = %d, want 2", d.QuadCount())
	}

	want := DesignVertex{X: -1, Y: 5, Z: -4, U: 0, V: 1}
	if d.Quads[0][3] != want {
		t.Errorf("quad 0 corner 3 = %+v, want %+v", d.Quads[0][3], want)
	}
	if d.Quads[1][2] != d.Quads[1][3] {
		t.Errorf("triangle quad corners 2 and 3 differ: %+v", d.Quads[1])
	}
}

func TestBuildFitBounds(t *testing.T) {
	d := Build(parse(t, quadOBJ), Options{FitBounds: true, MinBrightness: 0.2, MaxBrightness: 0.8})
	want := Box{Min: [3]float32{-1, 0, -4}, Max: [3]float32{3, 5, 2}}
	if d.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", d.Bounds, want)
	}
	if d.MinBrightness != 0.2 || d.MaxBrightness != 0.8 {
		t.Errorf("brightness = %v..%v", d.MinBrightness, d.MaxBrightness)
	}
}

func TestBoundsEmpty(t *testing.T) {
	if _, ok := Bounds(parse(t, "v 1 1 1\n")); ok {
		t.Error("Bounds reported ok for a mesh without faces")
	}
	d := Build(parse(t, "v 1 1 1\n"), Options{FitBounds: true})
	if d.Bounds != UnitBox || d.QuadCount() != 0 {
		t.Errorf("design = %+v", d)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.json")
	d := Build(parse(t, quadOBJ), Options{})
	if err := d.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Design
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.QuadCount() != 2 || back.Quads[0][1].X != 3 {
		t.Errorf("decoded design = %+v", back)
	}
}
