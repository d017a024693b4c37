package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	nonEmissive
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, larger values blur the reflection
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	direction := reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzzness))
	scattered := core.NewRayAtTime(hit.Point, direction, rayIn.Time)

	// Fuzz can push the reflection below the surface, in which case it is absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}

// Reflect calculates the reflection of a vector v off a surface with unit normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
