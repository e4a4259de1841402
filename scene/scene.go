package scene

import (
	"github.com/cgmb/ray/geometry"
	"github.com/cgmb/ray/types"
)

// Output raster dimensions in pixels.
type Resolution struct {
	X int
	Y int
}

// A fully described scene, ready to render. Everything here is immutable
// once loading completes, so render workers share it without locks.
type Scene struct {
	Res         Resolution
	SampleCount int

	// Enables the photon pass and caustic gathering in the shader.
	PhotonMappingEnabled bool

	Observer          types.Vec3
	ScreenTopLeft     types.Vec3
	ScreenTopRight    types.Vec3
	ScreenBottomRight types.Vec3

	Geometry geometry.Geometry

	// Materials aligned 1:1 with Geometry.Spheres and Geometry.Meshes.
	SphereMaterials []Material
	MeshMaterials   []Material

	Lights       []Light
	AmbientLight types.Vec3
}

// The screen-space step between horizontally adjacent pixels.
func (s *Scene) ScreenOffsetPerPxX() types.Vec3 {
	screenOffsetX := s.ScreenTopRight.Sub(s.ScreenTopLeft)
	return screenOffsetX.Div(float32(s.Res.X + 1))
}

// The screen-space step between vertically adjacent pixels.
func (s *Scene) ScreenOffsetPerPxY() types.Vec3 {
	screenOffsetY := s.ScreenBottomRight.Sub(s.ScreenTopRight)
	return screenOffsetY.Div(float32(s.Res.Y + 1))
}
