package core

import (
	"image/color"
	"math"
)

var (
	// Black is the color returned for rays that hit nothing
	Black = Vec3{0, 0, 0}

	// White is the color of an emissive light disc
	White = Vec3{1, 1, 1}
)

// ToRGBA converts an unbounded color to 8 bits per channel with full opacity.
// Each channel is scaled by 255, rounded half to even and clamped to [0, 255].
func (v Vec3) ToRGBA() color.RGBA {
	return color.RGBA{
		R: toByte(v.X),
		G: toByte(v.Y),
		B: toByte(v.Z),
		A: 255,
	}
}

func toByte(c float64) uint8 {
	c = math.RoundToEven(c * 255)
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	if c >= 255 {
		return 255
	}
	return uint8(c)
}
