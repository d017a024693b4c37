package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Isotropic is the phase function of a participating medium: it scatters
// uniformly in every direction.
type Isotropic struct {
	nonEmissive
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function with the given albedo
func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.RandomInUnitSphere(random), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
