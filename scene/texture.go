package scene

import (
	"math"

	"github.com/cgmb/ray/types"
)

// A texture maps a 3D position to a base color. Implementations hold only
// immutable parameters so a single value can be shared by every render
// worker.
type Texture interface {
	Sample(pos types.Vec3) types.Vec3
}

// Checkerboard alternates unit squares on the XY axes.
type Checkerboard struct {
	Color          types.Vec3
	SecondaryColor types.Vec3
}

func (t Checkerboard) Sample(pos types.Vec3) types.Vec3 {
	xValue := float32(math.Floor(float64(pos[0])))
	yValue := float32(math.Floor(float64(pos[1])))
	on := float32(math.Abs(math.Mod(float64(xValue+yValue), 2))) < 1
	intensity := float32(0)
	if on {
		intensity = 1
	}
	return types.XYZ(intensity, intensity, intensity)
}

// DotsNLines draws a periodic grid of dots and lines, offset per Z slice.
type DotsNLines struct {
	Period         float32
	Width          float32
	Color          types.Vec3
	SecondaryColor types.Vec3
}

func (t DotsNLines) Sample(pos types.Vec3) types.Vec3 {
	p := float64(t.Period)
	w := float64(t.Width)
	zValue := math.Floor(math.Mod(float64(pos[2]), p) + p/2)

	xValue := math.Floor(math.Mod(float64(pos[0]), p) + w)
	yValue := math.Floor(math.Mod(float64(pos[1])+zValue, p) + w)
	intensity := float32(xValue * yValue)
	return types.XYZ(intensity, intensity, intensity)
}
