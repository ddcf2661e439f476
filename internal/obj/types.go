package obj

// Vertex is a position record (v x y z).
type Vertex struct {
	X, Y, Z float32
}

// TexCoord is a texture-coordinate record (vt u v).
type TexCoord struct {
	U, V float32
}

// Normal is a normal record (vn x y z). Same shape as Vertex, kept in its own list.
type Normal Vertex

// Corner references one vertex, one texcoord and optionally one normal.
// Normal is NoIndex when the descriptor had none or it did not resolve.
type Corner struct {
	Vertex   Index
	TexCoord Index
	Normal   Index
}

// Face is always a quad after assembly. Triangles arrive here as
// degenerate quads (see DegenerateQuad).
type Face [4]Corner

// ResolvedCorner is a corner with its referents looked up.
type ResolvedCorner struct {
	Position Vertex
	UV       TexCoord
}

// Mesh holds the parsed geometry. All lists grow in input order and are
// addressed with 1-based Index values; the mesh is not modified after Parse
// returns it.
type Mesh struct {
	Vertices  []Vertex
	TexCoords []TexCoord
	Normals   []Normal
	Faces     []Face
}

// Stats holds list sizes of a Mesh.
type Stats struct {
	Vertices  int
	TexCoords int
	Normals   int
	Faces     int
}

func (m *Mesh) Stats() Stats {
	return Stats{
		Vertices:  len(m.Vertices),
		TexCoords: len(m.TexCoords),
		Normals:   len(m.Normals),
		Faces:     len(m.Faces),
	}
}

// Vertex returns the vertex at 1-based index i.
func (m *Mesh) Vertex(i Index) (Vertex, bool) {
	p, ok := i.Resolve(len(m.Vertices))
	if !ok {
		return Vertex{}, false
	}
	return m.Vertices[p], true
}

// TexCoord returns the texture coordinate at 1-based index i.
func (m *Mesh) TexCoord(i Index) (TexCoord, bool) {
	p, ok := i.Resolve(len(m.TexCoords))
	if !ok {
		return TexCoord{}, false
	}
	return m.TexCoords[p], true
}

// Normal returns the normal at 1-based index i.
func (m *Mesh) Normal(i Index) (Normal, bool) {
	p, ok := i.Resolve(len(m.Normals))
	if !ok {
		return Normal{}, false
	}
	return m.Normals[p], true
}

// Corners resolves the four corners of f in order 0..3.
// Faces produced by Parse always resolve.
func (m *Mesh) Corners(f Face) [4]ResolvedCorner {
	var out [4]ResolvedCorner
	for k, c := range f {
		out[k].Position, _ = m.Vertex(c.Vertex)
		out[k].UV, _ = m.TexCoord(c.TexCoord)
	}
	return out
}

// IsDegenerate reports whether f is a normalized triangle.
func (f Face) IsDegenerate() bool {
	return f[2] == f[3]
}
