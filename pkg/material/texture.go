package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures on a 3D grid of cells
type CheckerTexture struct {
	Odd  Texture
	Even Texture
}

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(odd, even core.Vec3) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even))
}

// Value picks the odd or even texture by the sign of the product of sines
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}
