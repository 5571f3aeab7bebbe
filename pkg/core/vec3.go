package core

import (
	"math"
	"math/rand"
)

const (
	// DefaultEpsilon is the distance a secondary ray's origin is pushed along its direction
	DefaultEpsilon = 1e-4

	// DefaultDisturbRadius is the per-axis jitter applied to shadow ray directions
	DefaultDisturbRadius = 0.01
)

// Vec3 represents a 3D vector. It is used as a point, a direction and an RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1 / scalar)
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Normalize returns a unit vector in the same direction.
// A zero vector yields NaN components; callers must not normalize one.
func (v Vec3) Normalize() Vec3 {
	return v.Multiply(1 / v.Length())
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Reflect returns v mirrored about normal, which must be unit length
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// CreateRay returns a ray starting at v heading along direction, with the origin
// nudged epsilon units along direction so it does not re-hit the surface it left.
func (v Vec3) CreateRay(direction Vec3, epsilon float64) Ray {
	origin := v
	if epsilon != 0 {
		origin = v.Add(direction.Multiply(epsilon))
	}
	return NewRay(origin, direction)
}

// Disturb adds an independent uniform offset in [-radius, radius] to each component.
// The result is not renormalized.
func (v Vec3) Disturb(radius float64, random *rand.Rand) Vec3 {
	return v.Add(Vec3{
		X: (2*random.Float64() - 1) * radius,
		Y: (2*random.Float64() - 1) * radius,
		Z: (2*random.Float64() - 1) * radius,
	})
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
