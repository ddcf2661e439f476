package obj

import (
	"fmt"
	"strings"
)

// DegenerateQuad is the triangle normalization policy: the third corner is
// repeated as the fourth, so downstream quad-only consumers see a quad with
// two coincident corners. Geometry is unchanged; no triangulation happens.
func DegenerateQuad(tri [3]string) [4]string {
	return [4]string{tri[0], tri[1], tri[2], tri[2]}
}

// quadDescriptors returns the four corner descriptors of a face line and
// whether the line was a triangle.
func quadDescriptors(tokens []string) ([4]string, bool, error) {
	corners := tokens[1:]
	switch len(corners) {
	case 3:
		return DegenerateQuad([3]string{corners[0], corners[1], corners[2]}), true, nil
	case 4:
		return [4]string{corners[0], corners[1], corners[2], corners[3]}, false, nil
	}
	return [4]string{}, false, fmt.Errorf("%w: %d corners", ErrUnsupportedFaceArity, len(corners))
}

// resolveCorner parses "v/vt[/vn]" against the lists built so far.
func (m *Mesh) resolveCorner(desc string) (Corner, error) {
	parts := strings.Split(desc, "/")
	if len(parts) < 2 {
		return Corner{}, fmt.Errorf("%w: corner %q has no texture index", ErrIndexOutOfRange, desc)
	}

	var c Corner
	var err error
	if c.Vertex, err = ParseIndex(parts[0]); err != nil {
		return Corner{}, fmt.Errorf("%w: vertex %q in corner %q", ErrIndexOutOfRange, parts[0], desc)
	}
	if _, ok := c.Vertex.Resolve(len(m.Vertices)); !ok {
		return Corner{}, fmt.Errorf("%w: vertex %d of %d", ErrIndexOutOfRange, c.Vertex, len(m.Vertices))
	}
	if c.TexCoord, err = ParseIndex(parts[1]); err != nil {
		return Corner{}, fmt.Errorf("%w: texcoord %q in corner %q", ErrIndexOutOfRange, parts[1], desc)
	}
	if _, ok := c.TexCoord.Resolve(len(m.TexCoords)); !ok {
		return Corner{}, fmt.Errorf("%w: texcoord %d of %d", ErrIndexOutOfRange, c.TexCoord, len(m.TexCoords))
	}

	// Normals are optional downstream; keep the reference only if it is usable.
	if len(parts) > 2 {
		if n, err := ParseIndex(parts[2]); err == nil {
			if _, ok := n.Resolve(len(m.Normals)); ok {
				c.Normal = n
			}
		}
	}
	return c, nil
}

// extractFace builds a Face from a tokenized "f" line. Nothing is appended
// unless every corner resolves.
func (m *Mesh) extractFace(tokens []string) (Face, bool, error) {
	descs, tri, err := quadDescriptors(tokens)
	if err != nil {
		return Face{}, false, err
	}
	var f Face
	for k, d := range descs {
		if f[k], err = m.resolveCorner(d); err != nil {
			return Face{}, false, err
		}
	}
	return f, tri, nil
}
