package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Primitive types understood by the loader
const (
	TypeSphere = "sphere"
	TypePlane  = "plane"
	TypeLight  = "light"
)

// SceneCfg is the JSON form of a scene
type SceneCfg struct {
	Extent     []float64      `json:"extent"` // minx, maxx, miny, maxy
	Camera     [3]float64     `json:"camera"`
	Primitives []PrimitiveCfg `json:"primitives"`
}

// PrimitiveCfg describes one primitive. Spheres and lights use Center and Radius,
// planes use Normal and Distance.
type PrimitiveCfg struct {
	Type     string       `json:"type"`
	Center   [3]float64   `json:"center"`
	Radius   float64      `json:"radius,omitempty"`
	Normal   [3]float64   `json:"normal"`
	Distance float64      `json:"distance,omitempty"`
	Material *MaterialCfg `json:"material,omitempty"` // defaults to material.DefaultMaterial
}

// MaterialCfg is the JSON form of a material
type MaterialCfg struct {
	Color      [3]float64 `json:"color"`
	Reflection float64    `json:"reflection"`
	Diffuse    float64    `json:"diffuse"`
}

// LoadScene reads a JSON scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// ParseScene decodes a JSON scene from r
func ParseScene(r io.Reader) (*scene.Scene, error) {
	var cfg SceneCfg
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return cfg.Build()
}

// Build converts the configuration into a scene
func (cfg SceneCfg) Build() (*scene.Scene, error) {
	if len(cfg.Extent) != 4 {
		return nil, fmt.Errorf("extent needs 4 values (minx, maxx, miny, maxy), got %d", len(cfg.Extent))
	}
	extent := scene.NewExtent(cfg.Extent[0], cfg.Extent[1], cfg.Extent[2], cfg.Extent[3])

	primitives := make([]geometry.Primitive, 0, len(cfg.Primitives))
	for i, p := range cfg.Primitives {
		primitive, err := p.Build()
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		primitives = append(primitives, primitive)
	}

	return scene.NewScene(extent, toVec3(cfg.Camera), primitives), nil
}

// Build converts the configuration into a primitive
func (p PrimitiveCfg) Build() (geometry.Primitive, error) {
	mat := material.DefaultMaterial()
	if p.Material != nil {
		mat = p.Material.Build()
	}

	switch p.Type {
	case TypeSphere, TypeLight:
		if p.Radius <= 0 {
			return nil, fmt.Errorf("%s radius must be positive, got %g", p.Type, p.Radius)
		}
		if p.Type == TypeLight {
			return geometry.NewLight(toVec3(p.Center), p.Radius, mat), nil
		}
		return geometry.NewSphere(toVec3(p.Center), p.Radius, mat), nil
	case TypePlane:
		normal := toVec3(p.Normal)
		length := normal.Length()
		if length == 0 {
			return nil, fmt.Errorf("plane normal must be non-zero")
		}
		// Scale both terms of normal.p + distance = 0 so the plane stays put
		return geometry.NewPlane(normal.Divide(length), p.Distance/length, mat), nil
	default:
		return nil, fmt.Errorf("unknown primitive type %q", p.Type)
	}
}

// Build converts the configuration into a material
func (m MaterialCfg) Build() material.Material {
	return material.NewMaterial(toVec3(m.Color), m.Reflection, m.Diffuse)
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
