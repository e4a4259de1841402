package scene

import "github.com/cgmb/ray/types"

// Defines a surface material.
//
// Opacity splits the shade between solid and transmitted contributions and
// reflectivity carves the mirrored share out of the solid part, so
// 0 <= reflectivity <= opacity <= 1 must hold for a physically sensible
// material.
type Material struct {
	// Base surface color.
	Color types.Vec3

	// Secondary color handed to procedural textures. The built-in
	// textures produce a grayscale intensity and do not read it.
	SecondaryColor types.Vec3

	// Optional procedural texture. When set it supplies the base color
	// from the 3D hit position. Must be safe for concurrent lookups.
	Texture Texture

	// Fraction of the shade that is not transmitted. 1 is fully opaque.
	Opacity float32

	// Snell index for the transmitted ray. 1 matches the surrounding
	// medium.
	RefractiveIndex float32

	// Fraction of the shade contributed by mirror reflection.
	Reflectivity float32

	// Lighting coefficients.
	KAmbient   float32
	KMatte     float32
	KSpecular  float32
	KSpecularN float32
	KFlat      float32
}

// The share of the shade computed from direct lighting.
func (m *Material) SolidComponent() float32 {
	return m.Opacity - m.Reflectivity
}

// The share of the shade transmitted through the surface.
func (m *Material) Translucence() float32 {
	return 1 - m.Opacity
}

// Resolve the base color at a position, consulting the texture if the
// material carries one.
func (m *Material) BaseColorAt(pos types.Vec3) types.Vec3 {
	if m.Texture != nil {
		return m.Texture.Sample(pos)
	}
	return m.Color
}
