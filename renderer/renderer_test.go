package renderer

import (
	"testing"

	"github.com/cgmb/ray/geometry"
	"github.com/cgmb/ray/scene"
	"github.com/cgmb/ray/types"
)

// A red sphere in front of the observer, lit head-on by a white light.
func redSphereScene(res int) *scene.Scene {
	return &scene.Scene{
		Res:               scene.Resolution{X: res, Y: res},
		SampleCount:       1,
		Observer:          types.XYZ(0, 0, -10),
		ScreenTopLeft:     types.XYZ(-5, 5, 0),
		ScreenTopRight:    types.XYZ(5, 5, 0),
		ScreenBottomRight: types.XYZ(5, -5, 0),
		Geometry: geometry.Geometry{
			Spheres: []geometry.Sphere{geometry.NewSphere(types.XYZ(0, 0, 10), 9)},
		},
		SphereMaterials: []scene.Material{
			{
				Color:           types.XYZ(1, 0, 0),
				Opacity:         1,
				RefractiveIndex: 1,
				KAmbient:        1,
				KFlat:           1,
			},
		},
		Lights: []scene.Light{
			{Position: types.XYZ(0, 0, -10), Color: types.XYZ(1, 1, 1)},
		},
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(nil, nil, Options{Workers: 1}); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined; got %v", err)
	}
	if _, err := New(redSphereScene(10), nil, Options{Workers: 0}); err != ErrInvalidWorkerCount {
		t.Fatalf("expected ErrInvalidWorkerCount; got %v", err)
	}
}

func TestRenderEmptySceneIsBackground(t *testing.T) {
	sc := &scene.Scene{
		Res:               scene.Resolution{X: 8, Y: 8},
		SampleCount:       1,
		Observer:          types.XYZ(0, 0, -10),
		ScreenTopLeft:     types.XYZ(-5, 5, 0),
		ScreenTopRight:    types.XYZ(5, 5, 0),
		ScreenBottomRight: types.XYZ(5, -5, 0),
	}
	r, err := New(sc, nil, Options{Workers: 2})
	if err != nil {
		t.Fatal(err)
	}

	img, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range img.Pixels {
		if !p.IsZero() {
			t.Fatalf("expected pixel %d to be the background color; got %v", i, p)
		}
	}
}

func TestRenderRedSphere(t *testing.T) {
	r, err := New(redSphereScene(100), nil, Options{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}

	img, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}

	center := img.Px(50, 50)
	if !center.ApproxEq(types.XYZ(1, 0, 0), 1e-3) {
		t.Fatalf("expected a red disk at the image center; got %v", center)
	}
	if corner := img.Px(0, 0); !corner.IsZero() {
		t.Fatalf("expected background at the corner; got %v", corner)
	}
	if corner := img.Px(99, 99); !corner.IsZero() {
		t.Fatalf("expected background at the far corner; got %v", corner)
	}
}

func TestRenderDeterministicAcrossWorkerCounts(t *testing.T) {
	sc := redSphereScene(40)
	sc.SampleCount = 2

	render := func(workers int) *Image {
		r, err := New(sc, nil, Options{Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		img, err := r.Render()
		if err != nil {
			t.Fatal(err)
		}
		return img
	}

	a := render(1)
	b := render(1)
	c := render(3)

	for i := range a.Pixels {
		if a.Pixels[i] != b.Pixels[i] {
			t.Fatalf("expected repeated renders to be bit identical; pixel %d differs", i)
		}
		if a.Pixels[i] != c.Pixels[i] {
			t.Fatalf("expected per-pixel output to be independent of the worker count; pixel %d differs", i)
		}
	}
}

func TestRenderStats(t *testing.T) {
	r, err := New(redSphereScene(10), nil, Options{Workers: 3})
	if err != nil {
		t.Fatal(err)
	}
	if _, err = r.Render(); err != nil {
		t.Fatal(err)
	}

	stats := r.Stats()
	if len(stats.Workers) != 3 {
		t.Fatalf("expected stats for 3 workers; got %d", len(stats.Workers))
	}
	totalRows := 0
	for _, ws := range stats.Workers {
		totalRows += ws.Rows
	}
	if totalRows != 10 {
		t.Fatalf("expected 10 rows in total; got %d", totalRows)
	}
}
