package reader

import (
	"fmt"
	"math"
	"os"

	"github.com/cgmb/ray/geometry"
	scenePkg "github.com/cgmb/ray/scene"
	"github.com/cgmb/ray/types"
	yaml "gopkg.in/yaml.v2"
)

// The YAML document layout. Pointer fields distinguish "absent" from a
// zero value so required fields can be reported by name.
type sceneNode struct {
	Observer      []float32     `yaml:"observer"`
	Screen        *screenNode   `yaml:"screen"`
	Resolution    []int         `yaml:"resolution"`
	Samples       *int          `yaml:"samples"`
	PhotonMapping bool          `yaml:"photon_mapping"`
	Geometry      *geometryNode `yaml:"geometry"`
	Lights        *lightsNode   `yaml:"lights"`
}

type screenNode struct {
	TopLeft     []float32 `yaml:"top_left"`
	TopRight    []float32 `yaml:"top_right"`
	BottomRight []float32 `yaml:"bottom_right"`
}

type geometryNode struct {
	Spheres []sphereNode `yaml:"spheres"`
	Meshes  []meshNode   `yaml:"meshes"`
}

type materialNode struct {
	Color           []float32 `yaml:"color"`
	SecondaryColor  []float32 `yaml:"secondary_color"`
	Texture         string    `yaml:"texture"`
	Period          *float32  `yaml:"period"`
	Width           *float32  `yaml:"width"`
	Reflectivity    *float32  `yaml:"reflectivity"`
	Mirrored        *bool     `yaml:"mirrored"`
	RefractiveIndex *float32  `yaml:"refractive_index"`
	Opacity         *float32  `yaml:"opacity"`
	KAmbient        *float32  `yaml:"k_ambient"`
	KMatte          *float32  `yaml:"k_matte"`
	KSpecular       *float32  `yaml:"k_specular"`
	KSpecularN      *float32  `yaml:"k_specular_n"`
	KFlat           *float32  `yaml:"k_flat"`
}

type sphereNode struct {
	Center       []float32    `yaml:"center"`
	Radius       *float32     `yaml:"radius"`
	MaterialNode materialNode `yaml:",inline"`
}

type meshNode struct {
	Vertexes     [][]float32  `yaml:"vertexes"`
	Indexes      []uint32     `yaml:"indexes"`
	Smooth       bool         `yaml:"smooth"`
	File         string       `yaml:"file"`
	MaterialNode materialNode `yaml:",inline"`
}

type lightsNode struct {
	Ambient []float32         `yaml:"ambient"`
	Points  []pointLightNode  `yaml:"points"`
	Spheres []sphereLightNode `yaml:"spheres"`
}

type pointLightNode struct {
	Position      []float32 `yaml:"position"`
	Color         []float32 `yaml:"color"`
	Intensity     *float32  `yaml:"intensity"`
	PhotonSamples *int      `yaml:"photon_samples"`
}

type sphereLightNode struct {
	Center   []float32 `yaml:"center"`
	Position []float32 `yaml:"position"`
	Color    []float32 `yaml:"color"`
	Radius   *float32  `yaml:"radius"`
	Density  *float32  `yaml:"density"`
	Seed     *int64    `yaml:"seed"`
}

// Read a scene description from a YAML file.
func ReadScene(path string) (*scenePkg.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var root sceneNode
	if err = yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("could not parse %s: %v", path, err)
	}

	return buildScene(&root)
}

func buildScene(root *sceneNode) (*scenePkg.Scene, error) {
	s := &scenePkg.Scene{
		SampleCount:          1,
		PhotonMappingEnabled: root.PhotonMapping,
	}

	var err error
	if root.Observer == nil {
		return nil, fmt.Errorf("scene requires observer")
	}
	if s.Observer, err = parseVec3("observer", root.Observer); err != nil {
		return nil, err
	}

	if root.Screen == nil {
		return nil, fmt.Errorf("scene requires screen")
	}
	if root.Screen.TopLeft == nil {
		return nil, fmt.Errorf("screen requires top_left")
	}
	if s.ScreenTopLeft, err = parseVec3("screen.top_left", root.Screen.TopLeft); err != nil {
		return nil, err
	}
	if root.Screen.TopRight == nil {
		return nil, fmt.Errorf("screen requires top_right")
	}
	if s.ScreenTopRight, err = parseVec3("screen.top_right", root.Screen.TopRight); err != nil {
		return nil, err
	}
	if root.Screen.BottomRight == nil {
		return nil, fmt.Errorf("screen requires bottom_right")
	}
	if s.ScreenBottomRight, err = parseVec3("screen.bottom_right", root.Screen.BottomRight); err != nil {
		return nil, err
	}

	if root.Resolution == nil {
		return nil, fmt.Errorf("scene requires resolution")
	}
	if len(root.Resolution) != 2 {
		return nil, fmt.Errorf("resolution requires 2 values, not %d", len(root.Resolution))
	}
	if root.Resolution[0] < 1 || root.Resolution[1] < 1 {
		return nil, fmt.Errorf("resolution values must be positive")
	}
	s.Res = scenePkg.Resolution{X: root.Resolution[0], Y: root.Resolution[1]}

	if root.Samples != nil {
		if *root.Samples < 1 {
			return nil, fmt.Errorf("samples must be positive")
		}
		s.SampleCount = *root.Samples
	}

	if root.Geometry == nil {
		return nil, fmt.Errorf("scene requires geometry")
	}
	for i, node := range root.Geometry.Spheres {
		sphere, err := parseSphere(i, &node)
		if err != nil {
			return nil, err
		}
		material, err := parseMaterial(fmt.Sprintf("spheres[%d]", i), &node.MaterialNode)
		if err != nil {
			return nil, err
		}
		s.Geometry.Spheres = append(s.Geometry.Spheres, sphere)
		s.SphereMaterials = append(s.SphereMaterials, material)
	}
	for i, node := range root.Geometry.Meshes {
		mesh, err := parseMesh(i, &node)
		if err != nil {
			return nil, err
		}
		material, err := parseMaterial(fmt.Sprintf("meshes[%d]", i), &node.MaterialNode)
		if err != nil {
			return nil, err
		}
		s.Geometry.Meshes = append(s.Geometry.Meshes, mesh)
		s.MeshMaterials = append(s.MeshMaterials, material)
	}

	if root.Lights == nil {
		return nil, fmt.Errorf("scene requires lights")
	}
	if root.Lights.Ambient != nil {
		if s.AmbientLight, err = parseVec3("lights.ambient", root.Lights.Ambient); err != nil {
			return nil, err
		}
	}
	for i, node := range root.Lights.Points {
		light, err := parsePointLight(i, &node)
		if err != nil {
			return nil, err
		}
		s.Lights = append(s.Lights, light)
	}
	for i, node := range root.Lights.Spheres {
		samples, err := parseSphereLight(i, &node)
		if err != nil {
			return nil, err
		}
		s.Lights = append(s.Lights, samples...)
	}

	return s, nil
}

func parseVec3(field string, values []float32) (types.Vec3, error) {
	if len(values) != 3 {
		return types.Vec3{}, fmt.Errorf(
			"%s is a vec3, which requires 3 values, not %d", field, len(values))
	}
	return types.XYZ(values[0], values[1], values[2]), nil
}

func parseSphere(index int, node *sphereNode) (geometry.Sphere, error) {
	if node.Center == nil {
		return geometry.Sphere{}, fmt.Errorf("spheres[%d] requires center", index)
	}
	center, err := parseVec3(fmt.Sprintf("spheres[%d].center", index), node.Center)
	if err != nil {
		return geometry.Sphere{}, err
	}
	if node.Radius == nil {
		return geometry.Sphere{}, fmt.Errorf("spheres[%d] requires radius", index)
	}
	r := *node.Radius
	return geometry.NewSphere(center, r*r), nil
}

func parseMesh(index int, node *meshNode) (*geometry.Mesh, error) {
	if node.File != "" {
		return nil, fmt.Errorf("meshes[%d]: external mesh files are not supported", index)
	}
	if node.Vertexes == nil {
		return nil, fmt.Errorf("meshes[%d] requires vertexes", index)
	}

	vertexes := make([]types.Vec3, len(node.Vertexes))
	for i, values := range node.Vertexes {
		v, err := parseVec3(fmt.Sprintf("meshes[%d].vertexes[%d]", index, i), values)
		if err != nil {
			return nil, err
		}
		vertexes[i] = v
	}

	indexes := node.Indexes
	if indexes == nil {
		indexes = make([]uint32, len(vertexes))
		for i := range indexes {
			indexes[i] = uint32(i)
		}
	}
	if len(indexes)%3 != 0 {
		return nil, fmt.Errorf(
			"meshes[%d]: index count must be divisible by 3, not %d", index, len(indexes))
	}
	for i, vi := range indexes {
		if int(vi) >= len(vertexes) {
			return nil, fmt.Errorf(
				"meshes[%d].indexes[%d]: %d is out of range of %d vertexes",
				index, i, vi, len(vertexes))
		}
	}

	return geometry.NewMesh(vertexes, indexes, node.Smooth), nil
}

func parseMaterial(context string, node *materialNode) (scenePkg.Material, error) {
	m := scenePkg.Material{
		Color:           types.XYZ(1, 1, 1),
		SecondaryColor:  types.XYZ(0, 0, 0),
		RefractiveIndex: 1,
		Opacity:         1,
		KAmbient:        1,
		KSpecularN:      2,
	}

	var err error
	if node.Color != nil {
		if m.Color, err = parseVec3(context+".color", node.Color); err != nil {
			return m, err
		}
	}
	if node.SecondaryColor != nil {
		if m.SecondaryColor, err = parseVec3(context+".secondary_color", node.SecondaryColor); err != nil {
			return m, err
		}
	}

	switch node.Texture {
	case "":
	case "checkerboard":
		m.Texture = scenePkg.Checkerboard{
			Color:          m.Color,
			SecondaryColor: m.SecondaryColor,
		}
	case "dotsnlines":
		period := float32(1)
		if node.Period != nil {
			period = *node.Period
		}
		width := float32(0.125)
		if node.Width != nil {
			width = *node.Width
		}
		m.Texture = scenePkg.DotsNLines{
			Period:         period,
			Width:          width,
			Color:          m.Color,
			SecondaryColor: m.SecondaryColor,
		}
	default:
		return m, fmt.Errorf("%s: unknown texture type %q", context, node.Texture)
	}

	if node.Reflectivity != nil {
		m.Reflectivity = *node.Reflectivity
	} else if node.Mirrored != nil && *node.Mirrored {
		m.Reflectivity = 1
	}
	if node.RefractiveIndex != nil {
		m.RefractiveIndex = *node.RefractiveIndex
	}
	if node.Opacity != nil {
		m.Opacity = *node.Opacity
	}
	if node.KAmbient != nil {
		m.KAmbient = *node.KAmbient
	}
	if node.KMatte != nil {
		m.KMatte = *node.KMatte
	}
	if node.KSpecular != nil {
		m.KSpecular = *node.KSpecular
	}
	if node.KSpecularN != nil {
		n := *node.KSpecularN
		if float32(math.Floor(float64(n))) != n {
			return m, fmt.Errorf("%s: fractional k_specular_n values are not allowed", context)
		}
		m.KSpecularN = n
	}
	if node.KFlat != nil {
		m.KFlat = *node.KFlat
	} else if m.KMatte == 0 && m.KSpecular == 0 {
		m.KFlat = 1
	}

	return m, nil
}

func parsePointLight(index int, node *pointLightNode) (scenePkg.Light, error) {
	light := scenePkg.Light{
		Intensity:     1,
		PhotonSamples: scenePkg.DefaultPhotonSamples,
	}

	var err error
	if node.Position == nil {
		return light, fmt.Errorf("lights.points[%d] requires position", index)
	}
	if light.Position, err = parseVec3(fmt.Sprintf("lights.points[%d].position", index), node.Position); err != nil {
		return light, err
	}
	if node.Color == nil {
		return light, fmt.Errorf("lights.points[%d] requires color", index)
	}
	if light.Color, err = parseVec3(fmt.Sprintf("lights.points[%d].color", index), node.Color); err != nil {
		return light, err
	}
	if node.Intensity != nil {
		light.Intensity = *node.Intensity
	}
	if node.PhotonSamples != nil {
		light.PhotonSamples = *node.PhotonSamples
	}
	return light, nil
}

func parseSphereLight(index int, node *sphereLightNode) ([]scenePkg.Light, error) {
	centerValues := node.Center
	if centerValues == nil {
		centerValues = node.Position
	}
	if centerValues == nil {
		return nil, fmt.Errorf("lights.spheres[%d] requires center", index)
	}
	center, err := parseVec3(fmt.Sprintf("lights.spheres[%d].center", index), centerValues)
	if err != nil {
		return nil, err
	}

	if node.Color == nil {
		return nil, fmt.Errorf("lights.spheres[%d] requires color", index)
	}
	color, err := parseVec3(fmt.Sprintf("lights.spheres[%d].color", index), node.Color)
	if err != nil {
		return nil, err
	}

	if node.Radius == nil {
		return nil, fmt.Errorf("lights.spheres[%d] requires radius", index)
	}

	density := float32(1)
	if node.Density != nil {
		density = *node.Density
	}
	var seed int64
	if node.Seed != nil {
		seed = *node.Seed
	}

	return scenePkg.ExpandSphereLight(center, color, *node.Radius, density, seed), nil
}
