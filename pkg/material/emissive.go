package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material. It is the only source of energy in a scene.
type DiffuseLight struct {
	Emit Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with a uniform color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface for emissive materials.
// Lights absorb all incoming rays.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light for this material
func (e *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return e.Emit.Value(u, v, point)
}
