package material

import "github.com/df07/go-phong-raytracer/pkg/core"

// Material describes how a surface responds to light under Phong shading.
// Materials are built once with the scene and never modified.
type Material struct {
	Color      core.Vec3 // Surface RGB color
	Reflection float64   // Fraction of reflected light mixed in, in [0, 1]
	Diffuse    float64   // Diffuse weight, in [0, 1]
	Specular   float64   // Specular weight, always 1 - Diffuse
}

// NewMaterial creates a material; the specular weight is derived from diffuse
func NewMaterial(color core.Vec3, reflection, diffuse float64) Material {
	return Material{
		Color:      color,
		Reflection: reflection,
		Diffuse:    diffuse,
		Specular:   1 - diffuse,
	}
}

// DefaultMaterial returns a dull grey, mostly specular, non-reflective material
func DefaultMaterial() Material {
	return NewMaterial(core.NewVec3(0.2, 0.2, 0.2), 0, 0.2)
}
