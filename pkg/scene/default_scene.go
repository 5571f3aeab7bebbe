package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Recommended output size for the built-in scenes (4:3, matching the extent)
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultCamera is the eye position used by the built-in scenes
var DefaultCamera = core.NewVec3(0, 0, -5)

// DefaultExtent is the view plane used by the built-in scenes
var DefaultExtent = NewExtent(-4, 4, -3, 3)

// NewDefaultScene creates the demo scene: a floor, a grey mirror-ish sphere,
// a blue mirror sphere and two small lights overhead
func NewDefaultScene() *Scene {
	floor := geometry.NewPlane(
		core.NewVec3(0, 1, 0), 4.4,
		material.NewMaterial(core.NewVec3(0.4, 0.3, 0.3), 0, 1),
	)
	greySphere := geometry.NewSphere(
		core.NewVec3(1, -0.8, 3), 2.5,
		material.NewMaterial(core.NewVec3(0.7, 0.7, 0.7), 0.6, 0.2),
	)
	blueSphere := geometry.NewSphere(
		core.NewVec3(-5.5, -0.5, 7), 2,
		material.NewMaterial(core.NewVec3(0.7, 0.7, 1), 1, 0.1),
	)
	backLight := geometry.NewLight(
		core.NewVec3(0, 5, 5), 0.1,
		material.NewMaterial(core.NewVec3(0.6, 0.6, 0.6), 0, 0.2),
	)
	frontLight := geometry.NewLight(
		core.NewVec3(2, 5, 1), 0.1,
		material.NewMaterial(core.NewVec3(0.7, 0.7, 0.9), 0, 0.2),
	)

	return NewScene(DefaultExtent, DefaultCamera, []geometry.Primitive{
		floor, greySphere, blueSphere, backLight, frontLight,
	})
}

// NewEmptyScene creates a scene with no primitives; it renders black
func NewEmptyScene() *Scene {
	return NewScene(DefaultExtent, DefaultCamera, nil)
}

// NewMirrorsScene creates two fully reflective spheres facing each other
// under one light, which exercises the trace depth limit
func NewMirrorsScene() *Scene {
	mirror := material.NewMaterial(core.NewVec3(0.9, 0.9, 0.9), 1, 0)

	return NewScene(DefaultExtent, DefaultCamera, []geometry.Primitive{
		geometry.NewPlane(core.NewVec3(0, 1, 0), 4.4, material.NewMaterial(core.NewVec3(0.3, 0.4, 0.3), 0, 1)),
		geometry.NewSphere(core.NewVec3(-2.2, 0, 4), 2, mirror),
		geometry.NewSphere(core.NewVec3(2.2, 0, 4), 2, mirror),
		geometry.NewLight(core.NewVec3(0, 6, 0), 0.1, material.NewMaterial(core.NewVec3(1, 1, 1), 0, 0.2)),
	})
}
