package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestGradientBackground(t *testing.T) {
	bottom := core.NewVec3(1, 1, 1)
	top := core.NewVec3(0.5, 0.7, 1.0)
	bg := NewGradientBackground(bottom, top)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 5, 0), top},
		{"straight down", core.NewVec3(0, -2, 0), bottom},
		{"horizon", core.NewVec3(1, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bg.Radiance(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if math.Abs(got.X-tt.expected.X) > 1e-9 || math.Abs(got.Y-tt.expected.Y) > 1e-9 || math.Abs(got.Z-tt.expected.Z) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSolidBackground(t *testing.T) {
	color := core.NewVec3(0.2, 0.3, 0.4)
	bg := NewSolidBackground(color)
	for _, dir := range []core.Vec3{core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), core.NewVec3(1, 0, 0)} {
		if got := bg.Radiance(core.NewRay(core.Vec3{}, dir)); got != color {
			t.Errorf("Expected %v for direction %v, got %v", color, dir, got)
		}
	}
}
