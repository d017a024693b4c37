package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// FlipFace inverts the front-face flag of every hit on the wrapped shape.
// The normal is left alone.
type FlipFace struct {
	Shape Shape
}

func NewFlipFace(shape Shape) *FlipFace {
	return &FlipFace{Shape: shape}
}

func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	hit, ok := f.Shape.Hit(ray, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Shape.BoundingBox(time0, time1)
}
