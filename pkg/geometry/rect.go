package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectPadding keeps a rectangle's bounding box from collapsing to zero volume
const rectPadding = 0.001

// rectPlane names the fixed axis K of an axis-aligned rectangle and the two free axes A and B
type rectPlane struct {
	k, a, b int
}

var (
	xyPlane = rectPlane{k: 2, a: 0, b: 1}
	xzPlane = rectPlane{k: 1, a: 0, b: 2}
	yzPlane = rectPlane{k: 0, a: 1, b: 2}
)

// hit intersects the plane axis[k] = k0 and tests the hit against [a0,a1]x[b0,b1]
func (p rectPlane) hit(ray core.Ray, tMin, tMax, a0, a1, b0, b1, k0 float64, mat material.Material) (*material.HitRecord, bool) {
	// A ray parallel to the plane divides by zero; the NaN or infinite t fails the range test
	t := (k0 - ray.Origin.Axis(p.k)) / ray.Direction.Axis(p.k)
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(p.a) + t*ray.Direction.Axis(p.a)
	b := ray.Origin.Axis(p.b) + t*ray.Direction.Axis(p.b)
	// Written negated so a NaN coordinate from an infinite t is rejected
	if !(a >= a0 && a <= a1 && b >= b0 && b <= b1) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (a - a0) / (a1 - a0),
		V:        (b - b0) / (b1 - b0),
		Material: mat,
	}
	hitRecord.SetFaceNormal(ray, core.Vec3{}.WithAxis(p.k, 1))
	return hitRecord, true
}

func (p rectPlane) box(a0, a1, b0, b1, k0 float64) core.AABB {
	lo := core.Vec3{}.WithAxis(p.a, a0).WithAxis(p.b, b0).WithAxis(p.k, k0-rectPadding)
	hi := core.Vec3{}.WithAxis(p.a, a1).WithAxis(p.b, b1).WithAxis(p.k, k0+rectPadding)
	return core.NewAABB(lo, hi)
}

// XYRect is a rectangle in the plane z = K with outward normal +Z
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]x[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return xyPlane.hit(ray, tMin, tMax, r.X0, r.X1, r.Y0, r.Y1, r.K, r.Material)
}

func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return xyPlane.box(r.X0, r.X1, r.Y0, r.Y1, r.K), true
}

// XZRect is a rectangle in the plane y = K with outward normal +Y
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]x[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return xzPlane.hit(ray, tMin, tMax, r.X0, r.X1, r.Z0, r.Z1, r.K, r.Material)
}

func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return xzPlane.box(r.X0, r.X1, r.Z0, r.Z1, r.K), true
}

// YZRect is a rectangle in the plane x = K with outward normal +X
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]x[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return yzPlane.hit(ray, tMin, tMax, r.Y0, r.Y1, r.Z0, r.Z1, r.K, r.Material)
}

func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return yzPlane.box(r.Y0, r.Y1, r.Z0, r.Z1, r.K), true
}
