package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

const sceneHelpText = `Scene files are YAML documents. The camera is described by an observer
position and a screen rectangle placed in world space; rays leave the
observer through each pixel of the screen.

Required fields:

  observer: [x, y, z]
  screen:
    top_left: [x, y, z]
    top_right: [x, y, z]
    bottom_right: [x, y, z]
  resolution: [width, height]
  geometry:
    spheres:
      - center: [x, y, z]
        radius: r
    meshes:
      - vertexes: [[x, y, z], ...]
        indexes: [i1, i2, i3, ...]   # optional; defaults to 0..n-1
        smooth: false                # optional vertex normal smoothing
  lights:
    points:
      - position: [x, y, z]
        color: [r, g, b]
    spheres:                         # optional area light approximation
      - center: [x, y, z]
        color: [r, g, b]
        radius: r
        density: 1                   # optional samples per unit volume
        seed: 0                      # optional sample placement seed
    ambient: [r, g, b]               # optional

Optional fields:

  samples: 1            # eye rays averaged per pixel
  photon_mapping: false # enable the caustic photon pass

Every sphere or mesh entry may carry an inline material block:

  color: [1, 1, 1]
  secondary_color: [0, 0, 0]
  texture: checkerboard | dotsnlines
  period: 1             # dotsnlines tile size
  width: 0.125          # dotsnlines line width
  reflectivity: 0       # share of the shade that is mirrored
  mirrored: false       # shorthand for reflectivity: 1
  opacity: 1            # 1 - opacity is transmitted by refraction
  refractive_index: 1
  k_ambient: 1
  k_matte: 0            # Lambertian coefficient
  k_specular: 0         # Phong highlight coefficient
  k_specular_n: 2       # Phong exponent; must be an integer
  k_flat: 1             # defaults to 1 only when matte and specular are 0

External mesh files are not supported; meshes are always inline.`

// Print a reference for the scene file format.
func SceneHelp(ctx *cli.Context) error {
	fmt.Fprintln(ctx.App.Writer, sceneHelpText)
	return nil
}
