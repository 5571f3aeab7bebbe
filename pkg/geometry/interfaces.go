package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Primitive is a surface that rays can intersect.
// Sphere and Plane are the only implementations.
type Primitive interface {
	// Intersect returns the distance along ray to the nearest visible hit.
	// The boolean is false when the ray misses.
	Intersect(ray core.Ray) (float64, bool)

	// NormalAt returns the surface normal at a point on the surface
	NormalAt(point core.Vec3) core.Vec3

	// Surface returns the primitive's material
	Surface() material.Material

	// IsLight reports whether the primitive is an emissive light source
	IsLight() bool
}

var (
	_ Primitive = (*Sphere)(nil)
	_ Primitive = (*Plane)(nil)
)
