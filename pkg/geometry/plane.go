package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Plane represents an infinite plane: the points p where Normal·p + Distance = 0
type Plane struct {
	Normal   core.Vec3         // Normal vector (should be normalized)
	Distance float64           // Signed offset from the origin
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane. The normal is stored as given.
func NewPlane(normal core.Vec3, distance float64, material material.Material) *Plane {
	return &Plane{
		Normal:   normal,
		Distance: distance,
		Material: material,
	}
}

// Intersect tests if a ray intersects with the plane
func (p *Plane) Intersect(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if denominator == 0 {
		return 0, false
	}

	t := -(p.Normal.Dot(ray.Origin) + p.Distance) / denominator
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(_ core.Vec3) core.Vec3 {
	return p.Normal
}

// Surface returns the plane's material
func (p *Plane) Surface() material.Material {
	return p.Material
}

// IsLight always returns false; only spheres can be lights
func (p *Plane) IsLight() bool {
	return false
}
