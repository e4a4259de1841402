package geometry

import "github.com/cgmb/ray/types"

// A ray is a line starting at some point. Directions passed to the
// intersection routines must be unit length.
type Ray struct {
	Start     types.Vec3
	Direction types.Vec3
}

// Create a ray from a start point and a direction.
func NewRay(start, direction types.Vec3) Ray {
	return Ray{Start: start, Direction: direction}
}

// Returns the position of the ray at t multiples of the ray direction.
func (r Ray) PositionAt(t float32) types.Vec3 {
	return r.Start.Add(r.Direction.Mul(t))
}
