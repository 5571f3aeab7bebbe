package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func TestSphere_Intersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, material.DefaultMaterial())

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "aimed at center from outside",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)),
			expectHit: true,
			expectedT: 4, // distance to center minus radius
		},
		{
			name:      "origin inside returns far root",
			ray:       core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)),
			expectHit: true,
			expectedT: 1,
		},
		{
			name:      "origin inside off center",
			ray:       core.NewRay(core.NewVec3(0, 0, 4.5), core.NewVec3(0, 0, 1)),
			expectHit: true,
			expectedT: 1.5,
		},
		{
			name:      "miss to the side",
			ray:       core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
		{
			name:      "tangent counts as miss",
			ray:       core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)),
			expectHit: false,
		},
		{
			name:      "sphere behind ray",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, isHit := sphere.Intersect(tt.ray)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t (t=%f)", tt.expectHit, isHit, d)
			}
			if isHit && math.Abs(d-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, d)
			}
		})
	}
}

func TestSphere_IntersectDiagonal(t *testing.T) {
	center := core.NewVec3(3, 4, 12)
	sphere := NewSphere(center, 2, material.DefaultMaterial())
	origin := core.NewVec3(0, 0, 0)

	ray := core.NewRay(origin, center.Subtract(origin).Normalize())
	d, isHit := sphere.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	expected := center.Length() - 2
	if math.Abs(d-expected) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expected, d)
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 1, 1), 2, material.DefaultMaterial())

	tests := []struct {
		point    core.Vec3
		expected core.Vec3
	}{
		{core.NewVec3(3, 1, 1), core.NewVec3(1, 0, 0)},
		{core.NewVec3(1, -1, 1), core.NewVec3(0, -1, 0)},
		{core.NewVec3(1, 1, 3), core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		if n := sphere.NormalAt(tt.point); n.Subtract(tt.expected).Length() > 1e-9 {
			t.Errorf("Normal at %v: expected %v, got %v", tt.point, tt.expected, n)
		}
	}
}

func TestNewLight(t *testing.T) {
	light := NewLight(core.NewVec3(0, 5, 5), 0.1, material.DefaultMaterial())
	sphere := NewSphere(core.NewVec3(0, 5, 5), 0.1, material.DefaultMaterial())

	if !light.IsLight() {
		t.Error("Expected light to report IsLight")
	}
	if sphere.IsLight() {
		t.Error("Expected plain sphere not to report IsLight")
	}

	// Lights are still visible geometry
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, 1))
	if _, isHit := light.Intersect(ray); !isHit {
		t.Error("Expected ray to hit light sphere")
	}
}
