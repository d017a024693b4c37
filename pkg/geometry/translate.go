package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a wrapped shape by a fixed offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape so that it appears displaced by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Shape.Hit(moved, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	hit.SetFaceNormal(ray, outwardNormal(hit))
	return hit, true
}

func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Shape.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// outwardNormal recovers the shape's outward normal from a hit record whose
// normal has already been turned against the ray
func outwardNormal(hit *material.HitRecord) core.Vec3 {
	if hit.FrontFace {
		return hit.Normal
	}
	return hit.Normal.Negate()
}
