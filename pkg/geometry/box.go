package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned box made up of 6 rectangles
type Box struct {
	Min, Max core.Vec3
	sides    *List
}

// NewBox creates a box spanning the corners p0 and p1 with the same material on every face
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	// Faces on the p0 side have a rectangle normal pointing into the box, so they are flipped
	sides := NewList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewFlipFace(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat)),

		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewFlipFace(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat)),

		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewFlipFace(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat)),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABBFromPoints(b.Min, b.Max), true
}
