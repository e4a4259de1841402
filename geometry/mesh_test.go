package geometry

import (
	"testing"

	"github.com/cgmb/ray/types"
)

func TestFaceNormalConvention(t *testing.T) {
	v1 := types.XYZ(0, 0, 0)
	v2 := types.XYZ(1, 0, 0)
	v3 := types.XYZ(0, 1, 0)
	m := NewMesh([]types.Vec3{v1, v2, v3}, []uint32{0, 1, 2}, false)

	exp := TriangleNormal(v1, v2, v3).Neg()
	if !m.FaceNormals[0].ApproxEq(exp, 1e-6) {
		t.Fatalf("expected face normal %v; got %v", exp, m.FaceNormals[0])
	}
	if !m.FaceNormals[0].ApproxEq(types.XYZ(0, 0, -1), 1e-6) {
		t.Fatalf("expected face normal (0,0,-1) for this winding; got %v", m.FaceNormals[0])
	}
}

func TestVertexNormals(t *testing.T) {
	// Two coplanar triangles sharing an edge; every vertex normal must
	// match the shared face normal.
	vertexes := []types.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	}
	m := NewMesh(vertexes, []uint32{0, 1, 2, 2, 1, 3}, true)

	for i, n := range m.VertexNormals {
		if !n.ApproxEq(m.FaceNormals[0], 1e-6) {
			t.Fatalf("expected vertex normal %d to equal the face normal %v; got %v",
				i, m.FaceNormals[0], n)
		}
	}
}

func TestSmoothNormalAtVertex(t *testing.T) {
	vertexes := []types.Vec3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
	}
	m := NewMesh(vertexes, []uint32{0, 1, 2}, true)

	got := m.NormalAt(0, vertexes[0])
	if !got.ApproxEq(m.VertexNormals[0], 1e-5) {
		t.Fatalf("expected smooth normal at a vertex to equal the stored vertex normal %v; got %v",
			m.VertexNormals[0], got)
	}
}

func TestFlatNormalAt(t *testing.T) {
	m := NewMesh([]types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, []uint32{0, 1, 2}, false)

	got := m.NormalAt(0, types.XYZ(0.3, 0.3, 0))
	if !got.ApproxEq(m.FaceNormals[0], 1e-6) {
		t.Fatalf("expected flat shading to return the face normal; got %v", got)
	}
}

func TestBoundingSphereEnclosesVertexes(t *testing.T) {
	vertexes := []types.Vec3{
		{-1, -2, 0}, {3, 1, 4}, {0, 0, -5}, {2, 2, 2},
	}
	bounds := BoundingSphere(vertexes)

	for i, v := range vertexes {
		distSq := v.Sub(bounds.Center).Dot(v.Sub(bounds.Center))
		if distSq > bounds.RadiusSquared+1e-3 {
			t.Fatalf("expected vertex %d to be inside the bounding sphere; %f > %f",
				i, distSq, bounds.RadiusSquared)
		}
	}
}
