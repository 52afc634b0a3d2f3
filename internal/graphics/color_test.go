package graphics

import (
	"math"
	"testing"
)

func TestColorBytes(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name       string
		c          Color
		r, g, b, a byte
	}{
		{"yellow", Yellow, 255, 255, 0, 255},
		{"truncates", Color{0.5, 0.999, 0.1, 1}, 127, 254, 25, 255},
		{"clamps high", Color{2, 1.5, 1, 1}, 255, 255, 255, 255},
		{"clamps low", Color{-1, 0, -0.5, 0}, 0, 0, 0, 0},
		{"nan", Color{nan, 1, 1, 1}, 0, 255, 255, 255},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, a := tc.c.Bytes()
			if r != tc.r || g != tc.g || b != tc.b || a != tc.a {
				t.Errorf("Expected %d,%d,%d,%d, got %d,%d,%d,%d", tc.r, tc.g, tc.b, tc.a, r, g, b, a)
			}
		})
	}
}
