package geometry

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates a wrapped shape about the Y axis
type RotateY struct {
	Shape    Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps shape in a rotation of angle degrees about the Y axis.
// The shape must report a bounding box over the shutter interval [0,1].
func NewRotateY(shape Shape, angle float64) (*RotateY, error) {
	box, ok := shape.BoundingBox(0, 1)
	if !ok {
		return nil, fmt.Errorf("rotate %T by %g degrees: %w", shape, angle, ErrNoBoundingBox)
	}

	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Shape:    shape,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Rotate the corners of the local box and take their extent
	corners := box.Corners()
	for i, corner := range corners {
		corners[i] = r.toWorld(corner)
	}
	r.bbox = core.NewAABBFromPoints(corners[:]...)
	return r, nil
}

// toLocal applies the inverse rotation
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the forward rotation
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)
	hit, ok := r.Shape.Hit(rotated, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	outward := r.toWorld(outwardNormal(hit))
	hit.Point = r.toWorld(hit.Point)
	hit.SetFaceNormal(ray, outward)
	return hit, true
}

// BoundingBox returns the box computed at construction
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, true
}
