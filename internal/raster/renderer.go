package raster

import (
	"image"
	"math"

	"github.com/thedudeguy/MeshIt/internal/mathutil"
	"github.com/thedudeguy/MeshIt/internal/obj"
)

// View is an orthographic camera orientation in degrees.
// Yaw turns around +Y, pitch tilts around +X afterwards.
// The key light is placed relative to the camera, see NewLightConfig.
type View struct {
	Yaw   float64
	Pitch float64

	LightAzimuth   float64
	LightElevation float64
}

// DefaultView looks at the model from the front-right and slightly above,
// lit from the upper right.
var DefaultView = View{Yaw: 30, Pitch: 20, LightAzimuth: 45, LightElevation: 45}

// Matrix returns the rotation that takes model space to view space.
func (v View) Matrix() mathutil.Mat3 {
	return mathutil.Mat3Mul(mathutil.RotX(mathutil.Deg2Rad(v.Pitch)), mathutil.RotY(mathutil.Deg2Rad(v.Yaw)))
}

// margin is the empty border around the fitted model, in output pixels.
const margin = 16

// RenderMesh rasterizes every face of m to a size*supersample square image.
// Quads are split 0-1-2 / 0-2-3; for a normalized triangle the second half
// has zero area and draws nothing.
func RenderMesh(m *obj.Mesh, tex *image.NRGBA, view View, size, supersample int) *image.NRGBA {
	if supersample < 1 {
		supersample = 1
	}
	renderSize := size * supersample
	if len(m.Faces) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	R := view.Matrix()
	proj := project(m, R, renderSize, margin*supersample)

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := NewLightConfig(view)

	base := [4]uint8{160, 160, 170, 255}
	if tex != nil {
		base = averageColor(tex)
	}

	for _, f := range m.Faces {
		q, ok := screenQuad(m, f, proj)
		if !ok {
			continue
		}
		RasterizeTriangle(fb, [3]ScreenVertex{q[0], q[1], q[2]}, tex, base, &lc)
		RasterizeTriangle(fb, [3]ScreenVertex{q[0], q[2], q[3]}, tex, base, &lc)
	}

	return fb.Image()
}

// screenQuad looks up the projected corners of f. Faces built by hand may
// carry references Parse would have rejected; those report false.
func screenQuad(m *obj.Mesh, f obj.Face, proj []ScreenVertex) ([4]ScreenVertex, bool) {
	var q [4]ScreenVertex
	for k, c := range f {
		p, ok := c.Vertex.Resolve(len(proj))
		if !ok {
			return q, false
		}
		q[k] = proj[p]
		if uv, ok := m.TexCoord(c.TexCoord); ok {
			q[k].U, q[k].V = float64(uv.U), float64(uv.V)
		}
	}
	return q, true
}

// project transforms all vertices by R and fits their XY extent into a
// renderSize square, leaving pad pixels on each side. Screen Y grows down.
func project(m *obj.Mesh, R mathutil.Mat3, renderSize, pad int) []ScreenVertex {
	out := make([]ScreenVertex, len(m.Vertices))

	allMin := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	allMax := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i, v := range m.Vertices {
		tv := R.MulVec3(mathutil.Vec3{float64(v.X), float64(v.Y), float64(v.Z)})
		out[i] = ScreenVertex{X: tv[0], Y: tv[1], Z: tv[2]}
		for k := 0; k < 3; k++ {
			allMin[k] = math.Min(allMin[k], tv[k])
			allMax[k] = math.Max(allMax[k], tv[k])
		}
	}

	cx := (allMin[0] + allMax[0]) / 2
	cy := (allMin[1] + allMax[1]) / 2
	span := math.Max(allMax[0]-allMin[0], allMax[1]-allMin[1])
	if span < 0.001 {
		span = 0.001
	}
	scale := float64(renderSize-2*pad) / span
	half := float64(renderSize) / 2

	for i := range out {
		out[i].X = half + (out[i].X-cx)*scale
		out[i].Y = half - (out[i].Y-cy)*scale
		out[i].Z *= scale
	}
	return out
}

func averageColor(tex *image.NRGBA) [4]uint8 {
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return [4]uint8{160, 160, 170, 255}
	}

	var sumR, sumG, sumB float64
	for y := 0; y < h; y++ {
		off := y * tex.Stride
		for x := 0; x < w; x++ {
			i := off + x*4
			sumR += float64(tex.Pix[i])
			sumG += float64(tex.Pix[i+1])
			sumB += float64(tex.Pix[i+2])
		}
	}
	n := float64(w * h)
	return [4]uint8{uint8(sumR/n + 0.5), uint8(sumG/n + 0.5), uint8(sumB/n + 0.5), 255}
}
