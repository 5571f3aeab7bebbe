package core

import (
	"image/color"
	"math"
	"testing"
)

func TestVec3_ToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		color    Vec3
		expected color.RGBA
	}{
		{"black", Black, color.RGBA{0, 0, 0, 255}},
		{"white", White, color.RGBA{255, 255, 255, 255}},
		{"over bright clamps", NewVec3(3, 1.5, 1.0001), color.RGBA{255, 255, 255, 255}},
		{"negative clamps", NewVec3(-0.5, -10, 0), color.RGBA{0, 0, 0, 255}},
		{"mid grey", NewVec3(0.5, 0.5, 0.5), color.RGBA{128, 128, 128, 255}},
		{"NaN is black", NewVec3(math.NaN(), 1, 0), color.RGBA{0, 255, 0, 255}},
		{"halves round to even", NewVec3(0.5/255, 2.5/255, 3.5/255), color.RGBA{0, 2, 4, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.ToRGBA(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
