package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// List is a flat collection of shapes hit by linear search
type List struct {
	Shapes []Shape
}

// NewList creates a list from the given shapes
func NewList(shapes ...Shape) *List {
	return &List{Shapes: shapes}
}

// Add appends a shape to the list
func (l *List) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Hit returns the closest hit among all members
func (l *List) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar, random); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox surrounds every member that has a box. Members without one are skipped.
func (l *List) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.EmptyAABB()
	found := false
	for _, shape := range l.Shapes {
		if shapeBox, ok := shape.BoundingBox(time0, time1); ok {
			box = core.SurroundingBox(box, shapeBox)
			found = true
		}
	}
	return box, found
}
