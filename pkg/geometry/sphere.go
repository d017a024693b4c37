package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	root, ok := hitSphere(ray, s.Center, s.Radius, tMin, tMax)
	if !ok {
		return nil, false
	}
	return sphereHitRecord(ray, root, s.Center, s.Radius, s.Material), true
}

// BoundingBox returns the axis-aligned bounding box for this sphere. It does not depend on time.
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// hitSphere solves the ray/sphere quadratic using the half-b form and returns the
// nearest root strictly inside (tMin, tMax)
func hitSphere(ray core.Ray, center core.Vec3, radius, tMin, tMax float64) (float64, bool) {
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root > tMin && root < tMax {
		return root, true
	}
	root = (-halfB + sqrtD) / a
	if root > tMin && root < tMax {
		return root, true
	}
	return 0, false
}

func sphereHitRecord(ray core.Ray, t float64, center core.Vec3, radius float64, mat material.Material) *material.HitRecord {
	point := ray.At(t)
	outwardNormal := point.Subtract(center).Divide(radius)
	u, v := sphereUV(outwardNormal)

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		U:        u,
		V:        v,
		Material: mat,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)
	return hitRecord
}

// sphereUV maps a point on the unit sphere to texture coordinates.
// u wraps around the Y axis starting from -X, v runs from the south to the north pole.
func sphereUV(p core.Vec3) (float64, float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(core.Clamp(p.Y, -1, 1))
	u := 1 - (phi+math.Pi)/(2*math.Pi)
	v := (theta + math.Pi/2) / math.Pi
	return u, v
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABB(center.Subtract(r), center.Add(r))
}
