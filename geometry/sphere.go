package geometry

import "github.com/cgmb/ray/types"

// A perfect sphere. The radius is stored pre-squared since every
// intersection test wants it in that form.
type Sphere struct {
	Center        types.Vec3
	RadiusSquared float32
}

// Create a sphere from a center point and a squared radius.
func NewSphere(center types.Vec3, radiusSquared float32) Sphere {
	return Sphere{Center: center, RadiusSquared: radiusSquared}
}

// Get the surface normal at a position on the sphere.
func (s Sphere) NormalAt(position types.Vec3) types.Vec3 {
	return position.Sub(s.Center).Normalize()
}

// Compute a sphere that encloses all the given points. The center is the
// midpoint of the axis-aligned extents and the radius is the largest extent.
func BoundingSphere(points []types.Vec3) Sphere {
	min := types.XYZ(maxFloat32, maxFloat32, maxFloat32)
	max := types.XYZ(-maxFloat32, -maxFloat32, -maxFloat32)
	for _, p := range points {
		min = types.MinVec3(min, p)
		max = types.MaxVec3(max, p)
	}

	center := min.Mul(0.5).Add(max.Mul(0.5))
	radius := max[0] - min[0]
	if d := max[1] - min[1]; d > radius {
		radius = d
	}
	if d := max[2] - min[2]; d > radius {
		radius = d
	}
	return NewSphere(center, radius*radius)
}
