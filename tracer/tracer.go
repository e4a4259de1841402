package tracer

import (
	"math"

	"github.com/cgmb/ray/geometry"
	"github.com/cgmb/ray/log"
	"github.com/cgmb/ray/scene"
	"github.com/cgmb/ray/types"
)

var logger = log.New("tracer")

// Selects what a hit during recursion means.
type CastPolicy uint8

const (
	// Evaluate full shading at the hit point.
	CastToObject CastPolicy = iota

	// Shadow probe; any hit means the origin point is shadowed.
	CastToLight
)

const (
	// Bound on shading recursion.
	MaxDepth = 10

	// Hit positions are pulled back along the ray so secondary rays do
	// not re-hit the surface they start from.
	backoff = 1e-3
)

// A Whitted-style recursive shader over a fixed scene. The scene and the
// photon map are immutable while rendering, so one value is shared by all
// render workers.
type Whitted struct {
	scene   *scene.Scene
	photons *PhotonMap
}

// Create a shader for a scene. The photon map may be nil when the scene
// does not use photon mapping.
func New(sc *scene.Scene, photons *PhotonMap) *Whitted {
	return &Whitted{scene: sc, photons: photons}
}

// The nearest primitive hit by a ray, across both sphere and mesh
// geometry.
type surfaceHit struct {
	t        float32
	isSphere bool
	sphere   geometry.RaySphereIntersect
	mesh     geometry.RayMeshIntersect
}

func nearestSurface(sc *scene.Scene, r geometry.Ray) (surfaceHit, bool) {
	rsi := geometry.GetRaySphereIntersect(r, sc.Geometry.Spheres)
	rmi := geometry.GetRayMeshIntersect(r, sc.Geometry.Meshes)

	sphereHit := rsi.Exists()
	meshHit := rmi.Exists()
	switch {
	case sphereHit && meshHit:
		if rsi.T <= rmi.T {
			meshHit = false
		} else {
			sphereHit = false
		}
	case !sphereHit && !meshHit:
		return surfaceHit{}, false
	}

	if sphereHit {
		return surfaceHit{t: rsi.T, isSphere: true, sphere: rsi}, true
	}
	return surfaceHit{t: rmi.T, mesh: rmi}, true
}

func (h surfaceHit) material(sc *scene.Scene) *scene.Material {
	if h.isSphere {
		return &sc.SphereMaterials[h.sphere.Index]
	}
	return &sc.MeshMaterials[h.mesh.MeshIndex]
}

func (h surfaceHit) normalAt(sc *scene.Scene, pos types.Vec3) types.Vec3 {
	if h.isSphere {
		return sc.Geometry.Spheres[h.sphere.Index].NormalAt(pos)
	}
	return h.mesh.NormalAt(sc.Geometry.Meshes, pos)
}

// Trace a ray through the scene and return its shade. defaultColor is
// returned when the ray escapes the scene. currentRefractiveIndex is the
// index of the medium the ray is travelling through, 1 outside any volume.
// The result is not clamped; clamping is a post-pass over the whole image.
func (w *Whitted) CastRay(r geometry.Ray, defaultColor types.Vec3,
	policy CastPolicy, currentRefractiveIndex float32, depth int) types.Vec3 {

	hit, ok := nearestSurface(w.scene, r)
	if !ok {
		return defaultColor
	}

	if policy == CastToLight {
		// Any hit along the shadow ray shadows the origin; hits
		// beyond the light are not excluded.
		return types.Vec3{}
	}

	mat := hit.material(w.scene)
	pos := r.PositionAt(hit.t - backoff)
	baseColor := mat.BaseColorAt(pos)
	normal := hit.normalAt(w.scene, pos)

	var color types.Vec3

	solid := mat.SolidComponent()
	if solid > 0 {
		var total types.Vec3
		for _, light := range w.scene.Lights {
			toLight := light.Position.Sub(pos).Normalize()
			shadowRay := geometry.NewRay(pos, toLight)
			oneLightColor := w.CastRay(shadowRay, light.Color, CastToLight,
				currentRefractiveIndex, depth+1)

			if !oneLightColor.IsZero() {
				if mat.KMatte > 0 || mat.KSpecular > 0 {
					matte := max32(0, normal.Dot(toLight))
					// The clamp is applied before raising to
					// k_specular_n so negative bases cannot
					// produce NaN.
					reflected := geometry.Reflected(toLight, normal)
					specular := pow32(max32(0, reflected.Dot(r.Direction)), mat.KSpecularN)
					total = total.Add(oneLightColor.Mul(mat.KMatte*matte + mat.KSpecular*specular))
				}
				total = total.Add(oneLightColor.Mul(mat.KFlat))
			} else if w.scene.PhotonMappingEnabled && w.photons != nil {
				// The direct path is blocked; gather any caustic
				// photons deposited near the hit.
				total = total.Add(w.gatherPhotons(hit, pos, normal))
			}
		}
		color = color.Add(baseColor.MulVec(total).Mul(solid))
		color = color.Add(baseColor.MulVec(w.scene.AmbientLight).Mul(solid * mat.KAmbient))
	}

	if mat.Reflectivity > 0 && depth < MaxDepth {
		reflectRay := geometry.NewRay(pos, geometry.Reflected(r.Direction, normal))
		reflectColor := w.CastRay(reflectRay, defaultColor, CastToObject,
			currentRefractiveIndex, depth+1)
		color = color.Add(mat.Color.MulVec(reflectColor).Mul(mat.Reflectivity))
	}

	if translucence := mat.Translucence(); translucence > 0 {
		if depth < MaxDepth {
			insidePos := r.PositionAt(hit.t + backoff)
			n := normal
			if n.Dot(r.Direction) > 0 {
				// Leaving a volume; refract about the inward
				// facing normal.
				n = n.Neg()
			}
			refractRay := geometry.NewRay(insidePos,
				geometry.Refracted(r.Direction, n, currentRefractiveIndex, mat.RefractiveIndex))
			refractColor := w.CastRay(refractRay, defaultColor, CastToObject,
				mat.RefractiveIndex, depth+1)
			color = color.Add(mat.Color.MulVec(refractColor).Mul(translucence))
		} else {
			// todo: model total internal reflection instead of
			// recursing until the depth limit and dropping.
			logger.Warning("refraction recursion limit hit; dropping contribution")
		}
	}

	return color
}

// Sum the contribution of stored photons within unit distance of pos.
func (w *Whitted) gatherPhotons(hit surfaceHit, pos, normal types.Vec3) types.Vec3 {
	var list []Photon
	if hit.isSphere {
		list = w.photons.SpherePhotons[hit.sphere.Index]
	} else {
		list = w.photons.MeshPhotons[hit.mesh.MeshIndex]
	}

	var total types.Vec3
	for _, ph := range list {
		d := ph.Position.Sub(pos).Len()
		if d < 1 {
			falloff := float32(math.Sqrt(float64(1 - d)))
			incidence := max32(0, normal.Dot(ph.Direction.Neg()))
			total = total.Add(ph.Energy.Mul(falloff * incidence))
		}
	}
	return total
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func pow32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
