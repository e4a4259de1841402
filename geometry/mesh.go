package geometry

import "github.com/cgmb/ray/types"

// An indexed triangle mesh. Face and vertex normals are derived from the
// vertex data on construction, along with a bounding sphere used to filter
// out rays that cannot hit any face.
type Mesh struct {
	Vertexes      []types.Vec3
	Indexes       []uint32
	VertexNormals []types.Vec3
	FaceNormals   []types.Vec3
	Bounds        Sphere
	Smooth        bool
}

// The normal of the plane through three points.
func TriangleNormal(a, b, c types.Vec3) types.Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.Cross(ac).Normalize()
}

// Create a mesh from vertex positions and face indexes. The index list
// length must be divisible by 3 and every index must be in range of the
// vertex list. Smooth meshes interpolate vertex normals when shaded.
func NewMesh(vertexes []types.Vec3, indexes []uint32, smooth bool) *Mesh {
	m := &Mesh{
		Vertexes:      vertexes,
		Indexes:       indexes,
		VertexNormals: make([]types.Vec3, len(vertexes)),
		FaceNormals:   make([]types.Vec3, len(indexes)/3),
		Smooth:        smooth,
	}
	m.calculateNormals()
	m.Bounds = BoundingSphere(vertexes)
	return m
}

// Calculate face normals and derive vertex normals from the faces
// incident to each vertex.
func (m *Mesh) calculateNormals() {
	for i := range m.VertexNormals {
		m.VertexNormals[i] = types.Vec3{}
	}

	for i := range m.FaceNormals {
		i1 := m.Indexes[3*i]
		i2 := m.Indexes[3*i+1]
		i3 := m.Indexes[3*i+2]

		// Winding convention: faces point against the cross product
		// of their edge vectors.
		normal := TriangleNormal(m.Vertexes[i1], m.Vertexes[i2], m.Vertexes[i3]).Neg()
		m.FaceNormals[i] = normal

		m.VertexNormals[i1] = m.VertexNormals[i1].Add(normal)
		m.VertexNormals[i2] = m.VertexNormals[i2].Add(normal)
		m.VertexNormals[i3] = m.VertexNormals[i3].Add(normal)
	}

	for i := range m.VertexNormals {
		m.VertexNormals[i] = m.VertexNormals[i].Normalize()
	}
}

// Get the shading normal for a face at a position on it. Flat meshes use
// the face normal; smooth meshes interpolate the vertex normals with
// barycentric weights.
func (m *Mesh) NormalAt(faceIndex int, pos types.Vec3) types.Vec3 {
	if !m.Smooth {
		return m.FaceNormals[faceIndex]
	}

	i1 := m.Indexes[3*faceIndex]
	i2 := m.Indexes[3*faceIndex+1]
	i3 := m.Indexes[3*faceIndex+2]
	v1 := m.Vertexes[i1]
	v2 := m.Vertexes[i2]
	v3 := m.Vertexes[i3]
	n1 := m.VertexNormals[i1]
	n2 := m.VertexNormals[i2]
	n3 := m.VertexNormals[i3]

	area := 0.5 * v2.Sub(v1).Cross(v3.Sub(v1)).Len()
	v1pos := pos.Sub(v1)
	u := 0.5 * v1pos.Cross(v3.Sub(v1)).Len() / area
	v := 0.5 * v1pos.Cross(v2.Sub(v1)).Len() / area
	w := 1.0 - u - v

	n := n1.Mul(w).Add(n2.Mul(u)).Add(n3.Mul(v))
	return n.Normalize()
}

// A collection of 3D shapes.
type Geometry struct {
	Spheres []Sphere
	Meshes  []*Mesh
}
