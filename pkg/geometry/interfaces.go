package geometry

import (
	"errors"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit reports the nearest intersection with t in [tMin, tMax]. random is only
	// consumed by volumes that sample a scattering distance.
	Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the shape over [time0, time1], or false
	// if the shape is unbounded or empty.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

var (
	// ErrNoBoundingBox is returned when a BVH or RotateY is built over a shape without a bounding box
	ErrNoBoundingBox = errors.New("geometry: shape has no bounding box")

	// ErrEmptyBVH is returned when a BVH is built from no shapes
	ErrEmptyBVH = errors.New("geometry: cannot build BVH from an empty shape list")
)
