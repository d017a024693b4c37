package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the light carried back along ray from world after at
	// most depth bounces
	RayColor(ray core.Ray, world geometry.Shape, depth int, random *rand.Rand) core.Vec3
}
