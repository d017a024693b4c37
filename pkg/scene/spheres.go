package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.5, 1.0)
)

// skyBackground is white at the horizon blending to blue overhead
func skyBackground() integrator.Background {
	return integrator.NewGradientBackground(skyWhite, skyBlue)
}

func checkeredSphere(center core.Vec3, radius float64, even, odd core.Vec3) *geometry.Sphere {
	return geometry.NewSphere(center, radius, material.NewTexturedLambertian(material.NewCheckerColors(odd, even)))
}

func perlinSphere(opts Options, center core.Vec3, radius, scale float64) *geometry.Sphere {
	return geometry.NewSphere(center, radius, material.NewTexturedLambertian(material.NewNoiseTexture(scale, opts.Random)))
}

// earthSphere wraps the earth image around a sphere. A texture that fails to
// load is replaced by an empty table, which renders cyan.
func earthSphere(opts Options, center core.Vec3, radius float64) *geometry.Sphere {
	texture, err := imageio.LoadImageTexture(opts.EarthTexture)
	if err != nil {
		opts.Logger.Printf("Warning: %v; using debug texture\n", err)
		texture = material.NewImageTexture(0, 0, nil)
	}
	return geometry.NewSphere(center, radius, material.NewTexturedLambertian(texture))
}

// NewRandomSpheresScene scatters a grid of small random spheres over a checkered ground
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	opts = opts.normalize()
	random := opts.Random
	s := newScene(opts.camera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 30), skyBackground())

	s.add(checkeredSphere(core.NewVec3(0, -1000, 0), 1000, core.NewVec3(0.1, 0.2, 0.1), core.NewVec3(0.8, 0.8, 0.8)))

	const radius = 0.2
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(float64(a)+0.9*random.Float64(), radius, float64(b)+0.9*random.Float64())
			if center.Subtract(core.NewVec3(4, radius, 0)).Length() <= 0.9 {
				continue
			}

			switch choose := random.Float64(); {
			case choose < 0.1:
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				center1 := center.Add(core.NewVec3(0, random.Float64(), 0))
				s.add(geometry.NewMovingSphere(center, center1, 0, 1, radius, material.NewLambertian(albedo)))
			case choose < 0.7:
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				lifted := center.Add(core.NewVec3(0, random.Float64(), 0))
				s.add(geometry.NewSphere(lifted, radius, material.NewLambertian(albedo)))
			case choose < 0.95:
				albedo := core.RandomVec3Range(random, 0.5, 1)
				fuzz := core.RandomRange(random, 0, 0.5)
				s.add(geometry.NewSphere(center, radius, material.NewMetal(albedo, fuzz)))
			default:
				s.add(geometry.NewSphere(center, radius, material.NewDielectric(1.5)))
			}
		}
	}

	s.add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		perlinSphere(opts, core.NewVec3(-4, 1, 0), 1.0, 0.9),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s, nil
}

// NewPerlinSpheresScene stacks a small marble sphere on a huge marble ground
func NewPerlinSpheresScene(opts Options) (*Scene, error) {
	opts = opts.normalize()
	s := newScene(opts.camera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 40), skyBackground())
	s.add(
		perlinSphere(opts, core.NewVec3(0, -1000, 0), 1000, 0.8),
		perlinSphere(opts, core.NewVec3(0, 2, 0), 2, 0.5),
	)
	return s, nil
}

// NewCheckeredSpheresScene places two checkered spheres touching at the origin
func NewCheckeredSpheresScene(opts Options) (*Scene, error) {
	opts = opts.normalize()
	s := newScene(opts.camera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 30), skyBackground())
	s.add(
		checkeredSphere(core.NewVec3(0, -10, 0), 10, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
		checkeredSphere(core.NewVec3(0, 10, 0), 10, core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.8, 0.8, 0.8)),
	)
	return s, nil
}

// NewEarthScene renders a single image-textured globe
func NewEarthScene(opts Options) (*Scene, error) {
	opts = opts.normalize()
	s := newScene(opts.camera(core.NewVec3(13, 2, 3), core.NewVec3(0, 0, 0), 30), skyBackground())
	s.add(earthSphere(opts, core.NewVec3(0, 0, 0), 2))
	return s, nil
}

// NewTwoSpheresScene is the smallest useful scene: one diffuse sphere resting
// on a large ground sphere, lit only by the sky
func NewTwoSpheresScene(opts Options) (*Scene, error) {
	opts = opts.normalize()
	s := newScene(opts.camera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90), skyBackground())
	s.add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
	)
	return s, nil
}
