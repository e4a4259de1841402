package geometry

import (
	"math"

	"github.com/cgmb/ray/types"
)

// Reflect an incident direction about a surface normal.
func Reflected(incident, normal types.Vec3) types.Vec3 {
	return incident.Sub(normal.Mul(2 * incident.Dot(normal)))
}

// Refract an incident direction through a surface with Snell's law in
// vector form. n1 is the refractive index of the medium being left and n2
// the index of the medium being entered. Equal indices return the incident
// direction unchanged, up to floating point error.
func Refracted(incident, normal types.Vec3, n1, n2 float32) types.Vec3 {
	dotIN := incident.Dot(normal)
	dotINSq := dotIN * dotIN

	n1n2 := n1 / n2
	n1n2Sq := n1n2 * n1n2

	k := float32(math.Sqrt(float64(1 - n1n2Sq*(1-dotINSq))))
	return incident.Sub(normal.Mul(dotIN)).Mul(n1n2).Sub(normal.Mul(k))
}
