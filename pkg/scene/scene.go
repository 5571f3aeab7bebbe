package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// Extent is the rectangle of the view plane that maps onto the output image
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// NewExtent creates an extent from its four bounds
func NewExtent(minX, maxX, minY, maxY float64) Extent {
	return Extent{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// Scene contains all the elements needed for rendering.
// It is read-only once built.
type Scene struct {
	extent     Extent
	camera     core.Vec3
	primitives []geometry.Primitive
	lights     []*geometry.Sphere
}

// NewScene creates a scene. Primitive order is kept; it decides which
// primitive wins when two are hit at exactly the same distance.
func NewScene(extent Extent, camera core.Vec3, primitives []geometry.Primitive) *Scene {
	s := &Scene{
		extent:     extent,
		camera:     camera,
		primitives: append([]geometry.Primitive(nil), primitives...),
	}

	for _, p := range s.primitives {
		if light, ok := p.(*geometry.Sphere); ok && light.IsLight() {
			s.lights = append(s.lights, light)
		}
	}

	return s
}

// Extent returns the view plane rectangle
func (s *Scene) Extent() Extent {
	return s.extent
}

// Camera returns the eye position
func (s *Scene) Camera() core.Vec3 {
	return s.camera
}

// Primitives returns every primitive in scene order, lights included
func (s *Scene) Primitives() []geometry.Primitive {
	return s.primitives
}

// Lights returns the light spheres in scene order
func (s *Scene) Lights() []*geometry.Sphere {
	return s.lights
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.primitives)
}
