package tracer

import (
	"math/rand"

	"github.com/cgmb/ray/geometry"
	"github.com/cgmb/ray/scene"
	"github.com/cgmb/ray/types"
)

// A photon deposited on a surface during the photon pass.
type Photon struct {
	Position  types.Vec3
	Direction types.Vec3
	Energy    types.Vec3
}

// Surface-incident photons grouped by the primitive they landed on,
// aligned 1:1 with the scene's sphere and mesh lists. Populated once
// before rendering and read-only afterwards.
type PhotonMap struct {
	SpherePhotons [][]Photon
	MeshPhotons   [][]Photon
}

// Total number of stored photons.
func (pm *PhotonMap) Size() int {
	n := 0
	for _, list := range pm.SpherePhotons {
		n += len(list)
	}
	for _, list := range pm.MeshPhotons {
		n += len(list)
	}
	return n
}

// Shoot photons from every light into the scene and record the ones that
// reach a diffuse surface through at least one refractive interface. Only
// those photons contribute, which restricts the map to caustics. Shooting
// is deterministic: each light owns a PRNG seeded by its index.
func BuildPhotonMap(sc *scene.Scene) *PhotonMap {
	pm := &PhotonMap{
		SpherePhotons: make([][]Photon, len(sc.Geometry.Spheres)),
		MeshPhotons:   make([][]Photon, len(sc.Geometry.Meshes)),
	}

	for li, light := range sc.Lights {
		samples := light.PhotonSamples
		if samples <= 0 {
			samples = scene.DefaultPhotonSamples
		}
		energy := light.Color.Mul(light.Intensity / float32(samples))

		rng := rand.New(rand.NewSource(int64(li)))
		for i := 0; i < samples; i++ {
			dir := sampleDownwardHemisphere(rng)
			pm.tracePhoton(sc, geometry.NewRay(light.Position, dir), energy, 1, false, 0)
		}
	}
	return pm
}

// Walk a single photon through the scene. indirect is set once the photon
// has passed through a refractive interface; only indirect photons are
// recorded when they land on an opaque surface.
func (pm *PhotonMap) tracePhoton(sc *scene.Scene, r geometry.Ray,
	energy types.Vec3, currentRefractiveIndex float32, indirect bool, depth int) {

	hit, ok := nearestSurface(sc, r)
	if !ok {
		return
	}

	mat := hit.material(sc)
	pos := r.PositionAt(hit.t - backoff)

	if mat.Translucence() <= 0 {
		if indirect {
			ph := Photon{Position: pos, Direction: r.Direction, Energy: energy}
			if hit.isSphere {
				pm.SpherePhotons[hit.sphere.Index] = append(pm.SpherePhotons[hit.sphere.Index], ph)
			} else {
				pm.MeshPhotons[hit.mesh.MeshIndex] = append(pm.MeshPhotons[hit.mesh.MeshIndex], ph)
			}
		}
		return
	}

	if depth >= MaxDepth {
		return
	}

	insidePos := r.PositionAt(hit.t + backoff)
	n := hit.normalAt(sc, pos)
	if n.Dot(r.Direction) > 0 {
		n = n.Neg()
	}
	refracted := geometry.Refracted(r.Direction, n, currentRefractiveIndex, mat.RefractiveIndex)
	pm.tracePhoton(sc, geometry.NewRay(insidePos, refracted),
		energy, mat.RefractiveIndex, true, depth+1)
}

// Sample a unit direction uniformly from the hemisphere below the light.
func sampleDownwardHemisphere(rng *rand.Rand) types.Vec3 {
	for {
		candidate := types.XYZ(
			2*rng.Float32()-1,
			2*rng.Float32()-1,
			2*rng.Float32()-1,
		)
		l := candidate.Len()
		if l > 1 || l == 0 {
			continue
		}
		if candidate[1] > 0 {
			continue
		}
		return candidate.Normalize()
	}
}
