package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape. A sphere with Light set is also a light source.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
	Light    bool
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// NewLight creates a spherical light. The material color is the light color.
func NewLight(center core.Vec3, radius float64, material material.Material) *Sphere {
	s := NewSphere(center, radius, material)
	s.Light = true
	return s
}

// Intersect tests if a ray intersects with the sphere.
// The ray direction is assumed to be unit length.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	v := ray.Origin.Subtract(s.Center)
	b := -v.Dot(ray.Direction)
	det := b*b - v.Dot(v) + s.Radius*s.Radius

	if det <= 0 {
		return 0, false
	}

	sqrtDet := math.Sqrt(det)
	i1 := b - sqrtDet
	i2 := b + sqrtDet

	// Both roots behind the origin
	if i2 <= 0 {
		return 0, false
	}

	// Origin inside the sphere: use the far root
	if i1 < 0 {
		return i2, true
	}
	return i1, true
}

// NormalAt returns the outward normal at point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Divide(s.Radius)
}

// Surface returns the sphere's material
func (s *Sphere) Surface() material.Material {
	return s.Material
}

// IsLight reports whether the sphere is a light source
func (s *Sphere) IsLight() bool {
	return s.Light
}
