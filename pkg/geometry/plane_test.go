package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestPlane_Intersect_BasicIntersection(t *testing.T) {
	// Floor at y = -4.4
	plane := NewPlane(core.NewVec3(0, 1, 0), 4.4, material.DefaultMaterial())

	// Ray shooting down from the origin
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	d, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(d-4.4) > 1e-9 {
		t.Errorf("Expected t=4.4, got t=%f", d)
	}
	if p := ray.At(d); math.Abs(p.Y+4.4) > 1e-9 {
		t.Errorf("Expected hit point on plane, got %v", p)
	}
}

func TestPlane_Intersect_ParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 1, 0), 0, material.DefaultMaterial())

	tests := []struct {
		name   string
		origin core.Vec3
	}{
		{"above", core.NewVec3(0, 1, 0)},
		{"below", core.NewVec3(0, -1, 0)},
		{"on plane", core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(1, 0, 0))
			if d, isHit := plane.Intersect(ray); isHit {
				t.Errorf("Expected miss for parallel ray, but got hit at t=%f", d)
			}
		})
	}
}

func TestPlane_Intersect_PointingAway(t *testing.T) {
	// Plane at z = 5 facing the camera
	plane := NewPlane(core.NewVec3(0, 0, -1), 5, material.DefaultMaterial())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if d, isHit := plane.Intersect(ray); isHit {
		t.Errorf("Expected miss for intersection behind ray, but got hit at t=%f", d)
	}

	ray = core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	d, isHit := plane.Intersect(ray)
	if !isHit || math.Abs(d-5) > 1e-9 {
		t.Errorf("Expected hit at t=5, got hit=%t t=%f", isHit, d)
	}
}

func TestPlane_NormalAtIsConstant(t *testing.T) {
	normal := core.NewVec3(0, 1, 0)
	plane := NewPlane(normal, 2, material.DefaultMaterial())

	for _, p := range []core.Vec3{core.NewVec3(0, -2, 0), core.NewVec3(100, 7, -3)} {
		if n := plane.NormalAt(p); n != normal {
			t.Errorf("Expected normal %v at %v, got %v", normal, p, n)
		}
	}
	if plane.IsLight() {
		t.Error("Planes are never lights")
	}
}
