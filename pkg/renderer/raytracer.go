package renderer

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultSeed seeds the shadow sampler when none is given
const DefaultSeed = 42

// specularExponent is the Phong shininess
const specularExponent = 20

// Config contains rendering configuration. It is fixed for the lifetime of a Raytracer.
type Config struct {
	MaxTraceDepth int // Maximum reflection recursion depth
	ShadowSamples int // Jittered shadow rays per light per shading point
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxTraceDepth: 3,
		ShadowSamples: 32,
	}
}

// Validate reports configuration values the tracer cannot work with
func (c Config) Validate() error {
	if c.MaxTraceDepth < 0 {
		return fmt.Errorf("max trace depth must be non-negative, got %d", c.MaxTraceDepth)
	}
	if c.ShadowSamples <= 0 {
		return fmt.Errorf("shadow samples must be positive, got %d", c.ShadowSamples)
	}
	return nil
}

// Raytracer renders a scene with recursive Phong ray tracing and sampled soft shadows.
// A Raytracer is not safe for concurrent use; use a WorkerPool to render in parallel.
type Raytracer struct {
	scene  *scene.Scene
	config Config
	random *rand.Rand

	traceCalls int64
	shadowRays int64
}

// NewRaytracer creates a new raytracer with a deterministic shadow sampler
func NewRaytracer(s *scene.Scene, config Config) *Raytracer {
	return NewRaytracerWithRandom(s, config, rand.New(rand.NewSource(DefaultSeed)))
}

// NewRaytracerWithRandom creates a raytracer drawing shadow jitter from random
func NewRaytracerWithRandom(s *scene.Scene, config Config, random *rand.Rand) *Raytracer {
	return &Raytracer{
		scene:  s,
		config: config,
		random: random,
	}
}

// Config returns the raytracer's configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// Trace returns the color seen along ray. Rays deeper than MaxTraceDepth see black.
func (rt *Raytracer) Trace(ray core.Ray, depth int) core.Vec3 {
	rt.traceCalls++

	if depth > rt.config.MaxTraceDepth {
		return core.Black
	}

	var nearest geometry.Primitive
	distance := math.Inf(1)

	// Strict comparison: on a tie the earlier primitive wins
	for _, primitive := range rt.scene.Primitives() {
		if d, isHit := primitive.Intersect(ray); isHit && d > 0 && d < distance {
			nearest = primitive
			distance = d
		}
	}

	if nearest == nil {
		return core.Black
	}
	return rt.Illuminate(nearest, distance, ray, depth)
}

// Illuminate shades the point at distance along ray on primitive.
//
// Phong shading:
//
//	intensity = diffuse * (L.N) + specular * (V.R)^n
//
// L is the vector from the intersection point to the light, N the surface normal,
// V the view direction and R is L reflected in the surface.
func (rt *Raytracer) Illuminate(primitive geometry.Primitive, distance float64, ray core.Ray, depth int) core.Vec3 {
	if primitive.IsLight() {
		return core.White
	}

	mat := primitive.Surface()
	intersection := ray.At(distance)
	N := primitive.NormalAt(intersection)
	V := ray.Direction
	color := core.Black

	for _, light := range rt.scene.Lights() {
		lightColor := light.Material.Color
		L := light.Center.Subtract(intersection).Normalize()
		visibility := 1 - rt.Occlusion(light, intersection)

		if mat.Diffuse > 0 {
			if LN := L.Dot(N); LN > 0 {
				rayColor := lightColor.Multiply(LN * mat.Diffuse * visibility)
				color = color.Add(mat.Color.MultiplyVec(rayColor))
			}
		}

		// Highlights take the light's color, not the surface's
		if mat.Specular > 0 {
			R := L.Reflect(N)
			if VR := V.Dot(R); VR > 0 {
				rayColor := lightColor.Multiply(math.Pow(VR, specularExponent) * mat.Specular * visibility)
				color = color.Add(rayColor)
			}
		}
	}

	// A bounce past MaxTraceDepth would come back black, so it is not traced
	if mat.Reflection > 0 && depth < rt.config.MaxTraceDepth {
		reflected := rt.Trace(intersection.CreateRay(V.Reflect(N), core.DefaultEpsilon), depth+1)
		color = color.Add(mat.Color.MultiplyVec(reflected.Multiply(mat.Reflection)))
	}

	return color
}

// Occlusion estimates how blocked light is as seen from point.
//
// Each of ShadowSamples jittered rays is tested against every non-light primitive,
// and every blocking primitive counts. A sample blocked twice counts twice, so the
// result can exceed 1 and drive visibility negative.
func (rt *Raytracer) Occlusion(light *geometry.Sphere, point core.Vec3) float64 {
	toLight := light.Center.Subtract(point)
	distance := toLight.Length()
	ray := point.CreateRay(toLight.Normalize(), core.DefaultEpsilon)

	total := 0
	for n := 0; n < rt.config.ShadowSamples; n++ {
		sample := core.NewRay(ray.Origin, ray.Direction.Disturb(core.DefaultDisturbRadius, rt.random))
		rt.shadowRays++

		for _, primitive := range rt.scene.Primitives() {
			if primitive.IsLight() {
				continue
			}
			if d, isHit := primitive.Intersect(sample); isHit && d > 0 && d < distance {
				total++
			}
		}
	}

	return float64(total) / float64(rt.config.ShadowSamples)
}

// Render traces one primary ray per pixel of img and writes the result.
// Row 0 of img is the top of the scene's extent.
func (rt *Raytracer) Render(img *image.RGBA) (RenderStats, error) {
	if img == nil {
		return RenderStats{}, errors.New("render: nil image")
	}

	startTime := time.Now()
	rt.resetCounters()

	height := img.Bounds().Dy()
	for y := 0; y < height; y++ {
		rt.renderRow(img, y)
	}

	stats := rt.counters()
	stats.TotalPixels = img.Bounds().Dx() * height
	stats.Duration = time.Since(startTime)
	return stats, nil
}

// renderRow renders scene row y, counted from the bottom of the extent
func (rt *Raytracer) renderRow(img *image.RGBA, y int) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	extent := rt.scene.Extent()
	origin := rt.scene.Camera()

	dx := (extent.MaxX - extent.MinX) / float64(width)
	dy := (extent.MaxY - extent.MinY) / float64(height)
	sy := extent.MinY + float64(y)*dy

	// Flip Y
	row := bounds.Min.Y + height - 1 - y

	for x := 0; x < width; x++ {
		sx := extent.MinX + float64(x)*dx
		direction := core.NewVec3(sx, sy, 0).Subtract(origin).Normalize()
		c := rt.Trace(core.NewRay(origin, direction), 0).ToRGBA()

		i := img.PixOffset(bounds.Min.X+x, row)
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

func (rt *Raytracer) resetCounters() {
	rt.traceCalls = 0
	rt.shadowRays = 0
}

func (rt *Raytracer) counters() RenderStats {
	return RenderStats{
		TraceCalls: rt.traceCalls,
		ShadowRays: rt.shadowRays,
	}
}
