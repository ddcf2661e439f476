package raster

import (
	"math"

	"github.com/thedudeguy/MeshIt/internal/mathutil"
)

// gamma is the display gamma used to linearize texels and re-encode output.
const gamma = 2.2

// toViewer points from the surface to the orthographic camera in screen space.
var toViewer = mathutil.Vec3{0, 0, 1}

// LightConfig holds the key/rim light pair and the shading weights for one
// render. Directions are unit vectors in screen space (X right, Y down,
// Z toward the viewer).
type LightConfig struct {
	Key  mathutil.Vec3
	Rim  mathutil.Vec3
	Half mathutil.Vec3 // Blinn-Phong half-vector of Key and toViewer

	Ambient  float64
	Hemi     float64
	KeyGain  float64
	RimGain  float64
	SpecGain float64
	SpecPow  float64
	Exposure float64
}

// lightDir returns the direction toward a light at azimuth degrees around
// the view axis (0 = from the camera, positive = from the right) and
// elevation degrees above the horizon.
func lightDir(azimuth, elevation float64) mathutil.Vec3 {
	a, e := mathutil.Deg2Rad(azimuth), mathutil.Deg2Rad(elevation)
	return mathutil.Vec3{
		math.Cos(e) * math.Sin(a),
		-math.Sin(e),
		math.Cos(e) * math.Cos(a),
	}
}

// NewLightConfig places the key light where v says and a dimmer rim light
// opposite it, half as high.
func NewLightConfig(v View) LightConfig {
	key := lightDir(v.LightAzimuth, v.LightElevation)
	return LightConfig{
		Key:      key,
		Rim:      lightDir(v.LightAzimuth+180, v.LightElevation/2),
		Half:     key.Add(toViewer).Normalize(),
		Ambient:  0.55,
		Hemi:     0.50,
		KeyGain:  1.50,
		RimGain:  0.60,
		SpecGain: 0.45,
		SpecPow:  12,
		Exposure: 1.05,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
// Diffuse terms are double-sided since OBJ winding is not trusted.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float64 {
	key := math.Abs(normal.Dot(lc.Key))
	rim := math.Abs(normal.Dot(lc.Rim))

	// Faces seen edge-on from above or below get less sky fill.
	hemi := (1-math.Abs(normal[1]))*0.5 + 0.5

	spec := math.Abs(normal.Dot(lc.Half))
	spec = math.Pow(spec, lc.SpecPow) * lc.SpecGain

	return lc.Ambient + hemi*lc.Hemi + key*lc.KeyGain + rim*lc.RimGain + spec
}

var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		srgbToLinear[i] = math.Pow(float64(i)/255, gamma)
	}
}

// ACESTonemap applies the ACES filmic curve to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// shadeChannel maps an sRGB texel channel through lighting and tone mapping
// back to sRGB.
func (lc *LightConfig) shadeChannel(c uint8, shade float64) uint8 {
	lin := srgbToLinear[c] * shade * lc.Exposure
	return clamp255(math.Pow(ACESTonemap(lin), 1/gamma) * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
