package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// Background supplies the light seen by rays that escape the scene
type Background interface {
	Radiance(ray core.Ray) core.Vec3
}

// SolidBackground is the same color in every direction
type SolidBackground struct {
	Color core.Vec3
}

func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Color: color}
}

func (b *SolidBackground) Radiance(ray core.Ray) core.Vec3 {
	return b.Color
}

// GradientBackground blends vertically from Bottom (straight down) to Top (straight up)
type GradientBackground struct {
	Bottom core.Vec3
	Top    core.Vec3
}

// NewGradientBackground creates a sky gradient, e.g. white to light blue
func NewGradientBackground(bottom, top core.Vec3) *GradientBackground {
	return &GradientBackground{Bottom: bottom, Top: top}
}

func (b *GradientBackground) Radiance(ray core.Ray) core.Vec3 {
	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}
