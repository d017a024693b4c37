package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundaryEpsilon separates the search for the exit crossing from the entry crossing
const boundaryEpsilon = 0.00001

// ConstantMedium is a volume of uniform density, such as fog or smoke, filling a
// convex boundary shape. Rays either scatter somewhere inside or pass straight through.
type ConstantMedium struct {
	Boundary      Shape
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium fills boundary with an isotropic medium of the given density and albedo
func NewConstantMedium(boundary Shape, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// NewConstantMediumColor is NewConstantMedium with a solid albedo
func NewConstantMediumColor(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	enter, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), random)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, enter.T+boundaryEpsilon, math.Inf(1), random)
	if !ok {
		return nil, false
	}

	t1 := math.Max(enter.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(random.Float64())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	// Inside a volume there is no surface, so the normal and face are arbitrary
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		U:         enter.U,
		V:         enter.V,
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
