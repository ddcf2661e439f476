package design

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chewxy/math32"

	"github.com/thedudeguy/MeshIt/internal/obj"
)

// DesignVertex is one quad corner: position plus texture coordinate.
type DesignVertex struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	U float32 `json:"u"`
	V float32 `json:"v"`
}

// Quad holds four corners in face order 0..3.
type Quad [4]DesignVertex

// Box is an axis-aligned bounding box.
type Box struct {
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`
}

// UnitBox is the default design bounds.
var UnitBox = Box{Min: [3]float32{0, 0, 0}, Max: [3]float32{1, 1, 1}}

// Design is a renderer-agnostic quad list built from a parsed mesh.
type Design struct {
	MinBrightness float32 `json:"min_brightness"`
	MaxBrightness float32 `json:"max_brightness"`
	Bounds        Box     `json:"bounds"`
	Quads         []Quad  `json:"quads"`
}

// Options controls Build. The zero value gives full brightness range and
// unit bounds.
type Options struct {
	// FitBounds replaces the unit box with the mesh's own extent.
	FitBounds bool
	// MinBrightness/MaxBrightness default to 0 and 1 when both are zero.
	MinBrightness float32
	MaxBrightness float32
}

// Build emits one quad per mesh face.
func Build(m *obj.Mesh, opts Options) Design {
	d := Design{
		MinBrightness: opts.MinBrightness,
		MaxBrightness: opts.MaxBrightness,
		Bounds:        UnitBox,
		Quads:         make([]Quad, 0, len(m.Faces)),
	}
	if d.MinBrightness == 0 && d.MaxBrightness == 0 {
		d.MaxBrightness = 1
	}
	if opts.FitBounds {
		if b, ok := Bounds(m); ok {
			d.Bounds = b
		}
	}

	for _, f := range m.Faces {
		var q Quad
		for k, c := range m.Corners(f) {
			q[k] = DesignVertex{
				X: c.Position.X,
				Y: c.Position.Y,
				Z: c.Position.Z,
				U: c.UV.U,
				V: c.UV.V,
			}
		}
		d.Quads = append(d.Quads, q)
	}
	return d
}

// Bounds returns the extent of all vertices referenced by faces.
// ok is false for a mesh without faces.
func Bounds(m *obj.Mesh) (Box, bool) {
	if len(m.Faces) == 0 {
		return Box{}, false
	}
	b := Box{
		Min: [3]float32{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		Max: [3]float32{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
	for _, f := range m.Faces {
		for _, c := range m.Corners(f) {
			p := [3]float32{c.Position.X, c.Position.Y, c.Position.Z}
			for k := 0; k < 3; k++ {
				b.Min[k] = math32.Min(b.Min[k], p[k])
				b.Max[k] = math32.Max(b.Max[k], p[k])
			}
		}
	}
	return b, true
}

// QuadCount returns the number of quads in the design.
func (d Design) QuadCount() int {
	return len(d.Quads)
}

// WriteJSON writes the design to path.
func (d Design) WriteJSON(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("design: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("design: write %s: %w", path, err)
	}
	return nil
}
