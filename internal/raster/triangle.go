package raster

import (
	"image"
	"math"

	"github.com/thedudeguy/MeshIt/internal/mathutil"
)

// ScreenVertex is a projected corner: pixel position, depth and UV.
type ScreenVertex struct {
	X, Y, Z float64
	U, V    float64
}

// RasterizeTriangle draws one triangle with texture mapping, z-buffer,
// flat lighting and ACES tone mapping. tex may be nil, in which case base
// is used as the surface color.
//
// Zero-area triangles are dropped, which is what makes the coincident
// corners of a degenerate quad invisible.
func RasterizeTriangle(fb *FrameBuffer, tri [3]ScreenVertex, tex *image.NRGBA, base [4]uint8, lc *LightConfig) bool {
	a, b, c := tri[0], tri[1], tri[2]

	// Face normal for flat shading
	e1 := mathutil.Vec3{b.X - a.X, b.Y - a.Y, b.Z - a.Z}
	e2 := mathutil.Vec3{c.X - a.X, c.Y - a.Y, c.Z - a.Z}
	n := e1.Cross(e2)
	if n.Len() < 1e-8 {
		return false
	}
	shade := lc.ComputeShade(n.Normalize())

	// Bounding box
	minX := clampInt(int(math.Min(math.Min(a.X, b.X), c.X)), 0, fb.Width-1)
	maxX := clampInt(int(math.Max(math.Max(a.X, b.X), c.X))+1, 0, fb.Width-1)
	minY := clampInt(int(math.Min(math.Min(a.Y, b.Y), c.Y)), 0, fb.Height-1)
	maxY := clampInt(int(math.Max(math.Max(a.Y, b.Y), c.Y))+1, 0, fb.Height-1)
	if minX >= maxX || minY >= maxY {
		return false
	}

	// Barycentric setup
	det := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if det > -1e-8 && det < 1e-8 {
		return false
	}
	invDet := 1.0 / det

	dy12 := b.Y - c.Y
	dx21 := c.X - b.X
	dy20 := c.Y - a.Y
	dx02 := a.X - c.X

	drawn := false
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - c.Y
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - c.X
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*a.Z + w1*b.Z + w2*c.Z
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			col := base
			if tex != nil {
				u := w0*a.U + w1*b.U + w2*c.U
				v := w0*a.V + w1*b.V + w2*c.V
				col[0], col[1], col[2], col[3] = SampleTexture(tex, u, v)
			}
			// Skip transparent texels
			if col[3] < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			px := zIdx * 4
			fb.Color[px] = lc.shadeChannel(col[0], shade)
			fb.Color[px+1] = lc.shadeChannel(col[1], shade)
			fb.Color[px+2] = lc.shadeChannel(col[2], shade)
			fb.Color[px+3] = col[3]
			drawn = true
		}
	}
	return drawn
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
