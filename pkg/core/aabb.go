package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the identity box for Union: +inf minimum, -inf maximum
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, point := range points {
		box.Min = NewVec3(math.Min(box.Min.X, point.X), math.Min(box.Min.Y, point.Y), math.Min(box.Min.Z, point.Z))
		box.Max = NewVec3(math.Max(box.Max.X, point.X), math.Max(box.Max.Y, point.Y), math.Max(box.Max.Z, point.Z))
	}
	return box
}

// Hit tests if a ray intersects with this AABB using the slab method.
// It returns the narrowed [tMin, tMax] interval on a hit.
//
// A zero direction component divides to a signed infinity; the min/max
// narrowing then keeps or rejects the slab without any special casing.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) (float64, float64, bool) {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)
		t0 := (aabb.Min.Axis(axis) - origin) * invD
		t1 := (aabb.Max.Axis(axis) - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return 0, 0, false
		}
	}
	return tMin, tMax, true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return SurroundingBox(aabb, other)
}

// SurroundingBox returns the smallest AABB containing both a and b
func SurroundingBox(a, b AABB) AABB {
	min := Vec3{
		X: math.Min(a.Min.X, b.Min.X),
		Y: math.Min(a.Min.Y, b.Min.Y),
		Z: math.Min(a.Min.Z, b.Min.Z),
	}
	max := Vec3{
		X: math.Max(a.Max.X, b.Max.X),
		Y: math.Max(a.Max.Y, b.Max.Y),
		Z: math.Max(a.Max.Z, b.Max.Z),
	}
	return AABB{Min: min, Max: max}
}

// Translate returns the box shifted by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	n := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corners[n] = NewVec3(
					float64(i)*aabb.Max.X+float64(1-i)*aabb.Min.X,
					float64(j)*aabb.Max.Y+float64(1-j)*aabb.Min.Y,
					float64(k)*aabb.Max.Z+float64(1-k)*aabb.Min.Z,
				)
				n++
			}
		}
	}
	return corners
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
