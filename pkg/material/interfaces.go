package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)

	// Emitted returns the light emitted at the given surface coordinate
	Emitted(u, v float64, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Texture coordinates
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// nonEmissive supplies the default black emission
type nonEmissive struct{}

func (nonEmissive) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
