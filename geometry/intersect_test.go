package geometry

import (
	"testing"

	"github.com/cgmb/ray/types"
)

func TestNearIntersectThroughSphere(t *testing.T) {
	r := NewRay(types.XYZ(-3, 0, 1), types.XYZ(2, 1, 0).Normalize())
	s := NewSphere(types.XYZ(1, 1, 1), 4)

	got := NearIntersect(r, s)
	if got.Sub(types.XYZ(-1, 1, 1)).Len() >= 0.25 {
		t.Fatalf("expected intersect near (-1,1,1); got %v", got)
	}
}

func TestNearIntersectMissesSphere(t *testing.T) {
	r := NewRay(types.XYZ(-3, 1, 1), types.XYZ(2, 3, 1).Normalize())
	s := NewSphere(types.XYZ(1, 1, 1), 4)

	got := NearIntersect(r, s)
	if !IsNaN(got[0]) || !IsNaN(got[1]) || !IsNaN(got[2]) {
		t.Fatalf("expected all NaN components on a miss; got %v", got)
	}
}

func TestNearIntersectSphereBehindOrigin(t *testing.T) {
	r := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	s := NewSphere(types.XYZ(0, 0, -4), 4)

	if got := NearIntersectParam(r, s); !IsNaN(got) {
		t.Fatalf("expected NaN for a sphere behind the origin; got %f", got)
	}
}

func TestNearIntersectFromInsideSphere(t *testing.T) {
	r := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, -1))
	s := NewSphere(types.XYZ(0, 0, 2), 9)

	got := NearIntersectParam(r, s)
	if IsNaN(got) || got <= 0 {
		t.Fatalf("expected positive exit parameter from inside the sphere; got %f", got)
	}

	exit := r.PositionAt(got)
	distSq := exit.Sub(s.Center).Dot(exit.Sub(s.Center))
	if abs32(distSq-s.RadiusSquared) >= 1e-3 {
		t.Fatalf("expected exit point on the sphere surface; got %v", exit)
	}
}

// Any finite intersect parameter must produce a point on the sphere.
func TestNearIntersectPointOnSurface(t *testing.T) {
	type spec struct {
		ray    Ray
		sphere Sphere
	}
	specs := []spec{
		{NewRay(types.XYZ(-3, 0, 1), types.XYZ(2, 1, 0).Normalize()), NewSphere(types.XYZ(1, 1, 1), 4)},
		{NewRay(types.XYZ(0, 10, 0), types.XYZ(0, -1, 0)), NewSphere(types.XYZ(0, 0, 0), 9)},
		{NewRay(types.XYZ(5, 5, 5), types.XYZ(-1, -1, -1).Normalize()), NewSphere(types.XYZ(0, 0, 0), 1)},
	}

	for index, s := range specs {
		got := NearIntersectParam(s.ray, s.sphere)
		if IsNaN(got) {
			t.Fatalf("[spec %d] expected a hit; got NaN", index)
		}
		p := s.ray.PositionAt(got)
		distSq := p.Sub(s.sphere.Center).Dot(p.Sub(s.sphere.Center))
		if abs32(distSq-s.sphere.RadiusSquared) >= 1e-3 {
			t.Fatalf("[spec %d] expected point on surface; |p-c|^2 = %f, r^2 = %f",
				index, distSq, s.sphere.RadiusSquared)
		}
	}
}

func TestGetRaySphereIntersectPicksNearest(t *testing.T) {
	spheres := []Sphere{
		NewSphere(types.XYZ(0, 0, 20), 4),
		NewSphere(types.XYZ(0, 0, 10), 4),
		NewSphere(types.XYZ(0, 0, -10), 4),
	}
	r := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))

	rsi := GetRaySphereIntersect(r, spheres)
	if !rsi.Exists() {
		t.Fatal("expected an intersect")
	}
	if rsi.Index != 1 {
		t.Fatalf("expected nearest sphere index 1; got %d", rsi.Index)
	}
	if abs32(rsi.T-8) >= 1e-3 {
		t.Fatalf("expected t near 8; got %f", rsi.T)
	}
}

func TestGetRaySphereIntersectEmpty(t *testing.T) {
	r := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	if rsi := GetRaySphereIntersect(r, nil); rsi.Exists() {
		t.Fatalf("expected no intersect for empty geometry; got %+v", rsi)
	}
}

func unitTriangle() *Mesh {
	return NewMesh(
		[]types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[]uint32{0, 1, 2},
		false,
	)
}

func TestGetRayTriangleIntersect(t *testing.T) {
	m := unitTriangle()

	r := NewRay(types.XYZ(0.2, 0.2, 1), types.XYZ(0, 0, -1))
	rti := GetRayTriangleIntersect(r, m)
	if !rti.Exists() {
		t.Fatal("expected a hit inside the triangle")
	}
	if abs32(rti.T-1) >= 1e-4 {
		t.Fatalf("expected t near 1; got %f", rti.T)
	}
	if rti.FaceIndex != 0 {
		t.Fatalf("expected face index 0; got %d", rti.FaceIndex)
	}

	r = NewRay(types.XYZ(0.9, 0.9, 1), types.XYZ(0, 0, -1))
	if rti = GetRayTriangleIntersect(r, m); rti.Exists() {
		t.Fatalf("expected a miss outside the triangle; got t = %f", rti.T)
	}

	r = NewRay(types.XYZ(0.2, 0.2, -1), types.XYZ(0, 0, -1))
	if rti = GetRayTriangleIntersect(r, m); rti.Exists() {
		t.Fatalf("expected a miss for a triangle behind the ray; got t = %f", rti.T)
	}
}

func TestGetRayMeshIntersectPicksNearest(t *testing.T) {
	near := NewMesh(
		[]types.Vec3{{-1, -1, 5}, {1, -1, 5}, {0, 1, 5}},
		[]uint32{0, 1, 2},
		false,
	)
	far := NewMesh(
		[]types.Vec3{{-1, -1, 9}, {1, -1, 9}, {0, 1, 9}},
		[]uint32{0, 1, 2},
		false,
	)

	r := NewRay(types.XYZ(0, 0, 0), types.XYZ(0, 0, 1))
	rmi := GetRayMeshIntersect(r, []*Mesh{far, near})
	if !rmi.Exists() {
		t.Fatal("expected a hit")
	}
	if rmi.MeshIndex != 1 {
		t.Fatalf("expected nearest mesh index 1; got %d", rmi.MeshIndex)
	}
	if abs32(rmi.T-5) >= 1e-3 {
		t.Fatalf("expected t near 5; got %f", rmi.T)
	}
}

func TestBoundingSpherePreFilter(t *testing.T) {
	m := unitTriangle()

	hit := NewRay(types.XYZ(0.2, 0.2, 1), types.XYZ(0, 0, -1))
	if !CouldRayIntersectMesh(hit, m) {
		t.Fatal("expected the bounding sphere to admit a hitting ray")
	}

	miss := NewRay(types.XYZ(100, 100, 1), types.XYZ(0, 0, -1))
	if CouldRayIntersectMesh(miss, m) {
		t.Fatal("expected the bounding sphere to reject a distant ray")
	}
	if rti := GetPossibleRayTriangleIntersect(miss, m); rti.Exists() {
		t.Fatalf("expected the pre-filtered intersect to miss; got t = %f", rti.T)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
