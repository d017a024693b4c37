package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// shadowAcneEpsilon keeps a scattered ray from re-hitting the surface it left
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a fixed
// bounce limit. Emissive materials are the only light besides the background.
type PathTracingIntegrator struct {
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: background}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, depth int, random *rand.Rand) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, shadowAcneEpsilon, math.Inf(1), random)
	if !isHit {
		return pt.Background.Radiance(ray)
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return emitted
	}

	incoming := pt.RayColor(scatter.Scattered, world, depth-1, random)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
