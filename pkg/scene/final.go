package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewFinalScene builds the showcase scene: a ground of boxes with random heights,
// a moving sphere, glass, metal, fog inside glass, a thin mist over everything,
// the earth, a marble sphere and a rotated cluster of a thousand small spheres.
func NewFinalScene(opts Options) (*Scene, error) {
	opts = opts.normalize()
	random := opts.Random
	s := newScene(
		opts.camera(core.NewVec3(178, 278, -800), core.NewVec3(278, 278, 0), 40),
		integrator.NewSolidBackground(core.NewVec3(0, 0, 0)),
	)

	// Ground: 20x20 boxes, 100 units wide
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	groundBoxes := make([]geometry.Shape, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(random, 1, 101)
			groundBoxes = append(groundBoxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBVH, err := geometry.NewBVH(groundBoxes, 0, 1, random)
	if err != nil {
		return nil, err
	}
	s.add(groundBVH)

	s.add(geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	s.add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Blue fog held inside a glass shell
	shell := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.add(shell, geometry.NewConstantMediumColor(shell, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist filling the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	s.add(
		earthSphere(opts, core.NewVec3(400, 200, 400), 100),
		perlinSphere(opts, core.NewVec3(220, 280, 300), 80, 0.1),
	)

	// Cluster of small spheres filling a 165 unit cube, rotated and lifted as one object
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	const clusterSize = 1000
	cluster := make([]geometry.Shape, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3Range(random, 0, 165), 10, white))
	}
	clusterBVH, err := geometry.NewBVH(cluster, 0, 1, random)
	if err != nil {
		return nil, err
	}
	rotated, err := geometry.NewRotateY(clusterBVH, 15)
	if err != nil {
		return nil, err
	}
	s.add(geometry.NewTranslate(rotated, core.NewVec3(-100, 270, 395)))

	s.RenderConfig.SamplesPerPixel = 500
	return s, nil
}
