package geometry

import (
	"math"

	"github.com/cgmb/ray/types"
)

const maxFloat32 = math.MaxFloat32

// Missing intersections are encoded as a NaN parametric t.
func QuietNaN() float32 {
	return float32(math.NaN())
}

// Report whether t encodes a miss.
func IsNaN(t float32) bool {
	return t != t
}

// Returns the t value for the near intersect point along the parametric
// equation of the ray (pos = origin + direction * t). Returns NaN when the
// ray misses the sphere or the sphere lies entirely behind the origin. An
// origin inside the sphere yields the exit point.
func NearIntersectParam(r Ray, s Sphere) float32 {
	m := r.Start.Sub(s.Center)
	d := r.Direction

	md := m.Dot(d)
	// d is unit length, so the quadratic coefficient is 1.
	c := float32(math.Sqrt(float64(md*md - (m.Dot(m) - s.RadiusSquared))))
	if IsNaN(c) {
		return c
	}

	x1 := -md - c
	x2 := -md + c
	if x2 < 0 {
		return QuietNaN()
	} else if x1 < 0 {
		return x2
	}
	return x1
}

// Returns the near intersect point between a ray and a sphere. All
// components are NaN when there is no intersection.
func NearIntersect(r Ray, s Sphere) types.Vec3 {
	return r.Start.Add(r.Direction.Mul(NearIntersectParam(r, s)))
}

// Information about a collision between a ray and a list of spheres.
type RaySphereIntersect struct {
	T     float32
	Index int
}

// Report whether the intersect hit anything.
func (rsi RaySphereIntersect) Exists() bool {
	return !IsNaN(rsi.T) && rsi.Index >= 0
}

// Find the nearest forward intersection between a ray and a list of
// spheres. Misses are quietly filtered out.
func GetRaySphereIntersect(eyeRay Ray, spheres []Sphere) RaySphereIntersect {
	rsi := RaySphereIntersect{T: QuietNaN(), Index: -1}
	for i, s := range spheres {
		t := NearIntersectParam(eyeRay, s)
		if IsNaN(t) {
			continue
		}
		if !rsi.Exists() || t < rsi.T {
			rsi.T = t
			rsi.Index = i
		}
	}
	return rsi
}

// Information about a collision between a ray and a triangle of a mesh.
type RayTriangleIntersect struct {
	T         float32
	FaceIndex int
}

// Report whether the intersect hit anything.
func (rti RayTriangleIntersect) Exists() bool {
	return !IsNaN(rti.T)
}

// Returns the nearest intersect point between a ray and the faces of a
// mesh. Each face is tested by intersecting its plane and checking that
// the hit point is on the same side of all three edges.
func GetRayTriangleIntersect(r Ray, m *Mesh) RayTriangleIntersect {
	near := RayTriangleIntersect{T: QuietNaN(), FaceIndex: 0}
	for i := range m.FaceNormals {
		v1 := m.Vertexes[m.Indexes[3*i]]
		v2 := m.Vertexes[m.Indexes[3*i+1]]
		v3 := m.Vertexes[m.Indexes[3*i+2]]

		normal := m.FaceNormals[i]
		d := r.Direction.Dot(normal)
		if d == 0 {
			// ray is parallel to the face plane
			continue
		}
		planeIntersect := -r.Start.Sub(v1).Dot(normal) / d
		if planeIntersect < 0 {
			continue
		}

		point := r.PositionAt(planeIntersect)
		sideA := normal.Dot(v2.Sub(v1).Cross(point.Sub(v1))) < 0
		sideB := normal.Dot(v3.Sub(v2).Cross(point.Sub(v2))) < 0
		sideC := normal.Dot(v1.Sub(v3).Cross(point.Sub(v3))) < 0

		if sideA == sideB && sideB == sideC {
			if !near.Exists() || planeIntersect < near.T {
				near.T = planeIntersect
				near.FaceIndex = i
			}
		}
	}
	return near
}

// Report whether a ray passes through the bounding sphere of a mesh.
func CouldRayIntersectMesh(r Ray, m *Mesh) bool {
	return !IsNaN(NearIntersectParam(r, m.Bounds))
}

// Do a bounding sphere check first to filter out obvious misses.
func GetPossibleRayTriangleIntersect(r Ray, m *Mesh) RayTriangleIntersect {
	if CouldRayIntersectMesh(r, m) {
		return GetRayTriangleIntersect(r, m)
	}
	return RayTriangleIntersect{T: QuietNaN(), FaceIndex: 0}
}

// Information about the intersect between a ray and a list of meshes.
type RayMeshIntersect struct {
	T         float32
	FaceIndex int
	MeshIndex int
}

// Report whether the intersect hit anything.
func (rmi RayMeshIntersect) Exists() bool {
	return !IsNaN(rmi.T) && rmi.MeshIndex >= 0
}

// Get the shading normal at a position on the hit face.
func (rmi RayMeshIntersect) NormalAt(meshes []*Mesh, pos types.Vec3) types.Vec3 {
	return meshes[rmi.MeshIndex].NormalAt(rmi.FaceIndex, pos)
}

// Find the nearest forward intersection between a ray and a list of
// meshes.
func GetRayMeshIntersect(eyeRay Ray, meshes []*Mesh) RayMeshIntersect {
	rmi := RayMeshIntersect{T: QuietNaN(), FaceIndex: 0, MeshIndex: -1}
	for i, m := range meshes {
		rti := GetPossibleRayTriangleIntersect(eyeRay, m)
		if !rti.Exists() {
			continue
		}
		if !rmi.Exists() || rti.T < rmi.T {
			rmi.T = rti.T
			rmi.FaceIndex = rti.FaceIndex
			rmi.MeshIndex = i
		}
	}
	return rmi
}
