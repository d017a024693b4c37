package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// createTestWorld creates a few non-emissive spheres of every scattering material
func createTestWorld() geometry.Shape {
	return geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)),
		geometry.NewConstantMediumColor(
			geometry.NewSphere(core.NewVec3(0, 1, -2), 0.5, material.NewDielectric(1.5)),
			2.0, core.NewVec3(0.9, 0.9, 0.9)),
	)
}

// TestPathTracingDepthTermination tests that ray depth is properly limited
func TestPathTracingDepthTermination(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	light := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewDiffuseLight(core.NewVec3(4, 4, 4)))
	pt := NewPathTracingIntegrator(NewSolidBackground(core.NewVec3(1, 1, 1)))

	// Aimed straight at a light, and at the background
	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
	}
	for _, ray := range rays {
		if c := pt.RayColor(ray, light, 0, random); c != (core.Vec3{}) {
			t.Errorf("Expected black color for depth 0, got %v", c)
		}
	}

	if c := pt.RayColor(rays[0], light, 1, random); c != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected the light's emission at depth 1, got %v", c)
	}
	if c := pt.RayColor(rays[1], light, 1, random); c != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected the background at depth 1, got %v", c)
	}
}

// TestPathTracingEnergyNonCreation checks that nothing lights up without a light source
func TestPathTracingEnergyNonCreation(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	world := createTestWorld()
	pt := NewPathTracingIntegrator(NewSolidBackground(core.Vec3{}))

	for _, depth := range []int{1, 2, 5, 50} {
		for i := 0; i < 200; i++ {
			ray := core.NewRay(core.NewVec3(0, 0.5, 2), core.RandomInUnitSphere(random).Add(core.NewVec3(0, 0, -1)))
			if c := pt.RayColor(ray, world, depth, random); c != (core.Vec3{}) {
				t.Fatalf("depth %d: expected exactly black, got %v", depth, c)
			}
		}
	}
}

func TestPathTracingSingleBounce(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	albedo := core.NewVec3(0.5, 0.25, 1.0)
	background := core.NewVec3(0.8, 0.8, 0.8)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 1, material.NewLambertian(albedo))
	pt := NewPathTracingIntegrator(NewSolidBackground(background))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// One bounce leaves nothing for the scattered ray
	if c := pt.RayColor(ray, sphere, 1, random); c != (core.Vec3{}) {
		t.Errorf("Expected black at depth 1, got %v", c)
	}

	// A convex diffuse sphere scatters once and then escapes to the background
	expected := albedo.MultiplyVec(background)
	for i := 0; i < 50; i++ {
		c := pt.RayColor(ray, sphere, 10, random)
		if c.Subtract(expected).Length() > 1e-12 {
			t.Fatalf("Expected %v, got %v", expected, c)
		}
	}
}

func TestPathTracingEmissionAddsToScatter(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	// A light box in front of a white background: lights never scatter, so only emission returns
	lightMat := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	world := geometry.NewList(
		geometry.NewXZRect(213, 343, 227, 332, 554, lightMat),
	)
	pt := NewPathTracingIntegrator(NewSolidBackground(core.NewVec3(1, 1, 1)))

	ray := core.NewRay(core.NewVec3(278, 0, 278), core.NewVec3(0, 1, 0))
	if c := pt.RayColor(ray, world, 50, random); c != core.NewVec3(15, 15, 15) {
		t.Errorf("Expected emission (15,15,15), got %v", c)
	}
}

func TestPathTracingNoNaN(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	world := createTestWorld()
	pt := NewPathTracingIntegrator(NewGradientBackground(core.NewVec3(1, 1, 1), core.NewVec3(0.5, 0.7, 1.0)))

	for i := 0; i < 500; i++ {
		ray := core.NewRay(core.NewVec3(0, 0.5, 2), core.RandomUnitVector(random))
		c := pt.RayColor(ray, world, 20, random)
		if c.IsNaN() || c.X < 0 || c.Y < 0 || c.Z < 0 || math.IsInf(c.X+c.Y+c.Z, 0) {
			t.Fatalf("Invalid color %v for ray %v", c, ray)
		}
	}
}
