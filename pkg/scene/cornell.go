package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

var (
	cornellWhite = core.NewVec3(0.73, 0.73, 0.73)
	cornellRed   = core.NewVec3(0.65, 0.05, 0.05)
	cornellGreen = core.NewVec3(0.12, 0.45, 0.15)
)

// newCornellRoom builds the camera, the five walls and the ceiling light.
// The two interior boxes are returned separately so callers can dress them.
func newCornellRoom(opts Options, lightStrength float64) (*Scene, geometry.Shape, geometry.Shape, error) {
	opts = opts.normalize()
	s := newScene(
		opts.camera(core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40),
		integrator.NewSolidBackground(core.NewVec3(0, 0, 0)),
	)

	white := material.NewLambertian(cornellWhite)
	red := material.NewLambertian(cornellRed)
	green := material.NewLambertian(cornellGreen)
	light := material.NewDiffuseLight(core.NewVec3(lightStrength, lightStrength, lightStrength))

	// Walls facing into the room
	s.add(
		geometry.NewFlipFace(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)),
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewXZRect(183, 373, 137, 302, boxSize-1, light),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),
		geometry.NewFlipFace(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)),
		geometry.NewFlipFace(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)),
	)

	tall, err := placedBox(core.NewVec3(165, 330, 165), 15, core.NewVec3(265, 0, 295), white)
	if err != nil {
		return nil, nil, nil, err
	}
	short, err := placedBox(core.NewVec3(165, 165, 165), -18, core.NewVec3(130, 0, 100), white)
	if err != nil {
		return nil, nil, nil, err
	}
	return s, tall, short, nil
}

// placedBox builds a box from the origin to size, spins it about Y and moves it into place
func placedBox(size core.Vec3, angle float64, offset core.Vec3, mat material.Material) (geometry.Shape, error) {
	rotated, err := geometry.NewRotateY(geometry.NewBox(core.NewVec3(0, 0, 0), size, mat), angle)
	if err != nil {
		return nil, err
	}
	return geometry.NewTranslate(rotated, offset), nil
}

// NewCornellBoxScene creates the classic Cornell box with a tall and a short box
func NewCornellBoxScene(opts Options) (*Scene, error) {
	s, tall, short, err := newCornellRoom(opts, 16)
	if err != nil {
		return nil, err
	}
	s.add(tall, short)
	s.RenderConfig.SamplesPerPixel = 200
	return s, nil
}

// NewCornellSmokeScene replaces the Cornell boxes with dark fog and white smoke
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	s, tall, short, err := newCornellRoom(opts, 7)
	if err != nil {
		return nil, err
	}
	s.add(
		geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)),
	)
	s.RenderConfig.SamplesPerPixel = 200
	return s, nil
}
