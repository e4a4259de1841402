package scene

import (
	"math"
	"math/rand"

	"github.com/cgmb/ray/types"
)

// A point light source.
type Light struct {
	Position types.Vec3
	Color    types.Vec3

	// Photon shooting parameters. Intensity scales the energy carried
	// by each photon and PhotonSamples is the number of photons emitted
	// for this light during the photon pass.
	Intensity     float32
	PhotonSamples int
}

// Default photon count per light when the scene does not specify one.
const DefaultPhotonSamples = 10000

// Expand a spherical light into point light samples distributed uniformly
// within its volume. The sample count is floor(4/3 * pi * r^3 * density),
// but never less than 1, and each sample carries color / count so the total emitted light is
// unchanged. Expansion is deterministic for a given seed.
func ExpandSphereLight(center, color types.Vec3, radius, density float32, seed int64) []Light {
	volume := 4.0 / 3.0 * math.Pi * float64(radius) * float64(radius) * float64(radius)
	pointsRequired := int(volume * float64(density))
	if pointsRequired < 1 {
		pointsRequired = 1
	}

	rng := rand.New(rand.NewSource(seed))
	perPointColor := color.Div(float32(pointsRequired))

	value := make([]Light, 0, pointsRequired)
	for len(value) < pointsRequired {
		candidate := types.XYZ(
			2*rng.Float32()-1,
			2*rng.Float32()-1,
			2*rng.Float32()-1,
		)
		if candidate.Len() <= 1 {
			value = append(value, Light{
				Position:  center.Add(candidate.Mul(radius)),
				Color:     perPointColor,
				Intensity: 1,
			})
		}
	}
	return value
}
