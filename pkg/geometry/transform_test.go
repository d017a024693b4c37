package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func vecNear(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func TestTranslate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	moved := NewTranslate(sphere, core.NewVec3(10, 0, 0))

	ray := core.NewRay(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1))
	hit, ok := moved.Hit(ray, 0.001, 100, nil)
	if !ok {
		t.Fatal("Expected hit on translated sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if !vecNear(hit.Point, core.NewVec3(10, 0, 1)) {
		t.Errorf("Expected hit point (10,0,1), got %v", hit.Point)
	}
	if !hit.FrontFace || !vecNear(hit.Normal, core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected front face with normal +Z, got front=%v normal=%v", hit.FrontFace, hit.Normal)
	}

	// From inside, the face flag must survive the wrapper
	inside := core.NewRay(core.NewVec3(10, 0, 0), core.NewVec3(0, 0, 1))
	hit, ok = moved.Hit(inside, 0.001, 100, nil)
	if !ok || hit.FrontFace {
		t.Errorf("Expected back-face hit from inside, got %v", hit)
	}

	if _, ok := moved.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 100, nil); ok {
		t.Error("The original position should now be empty")
	}

	box, _ := moved.BoundingBox(0, 1)
	if box.Min != core.NewVec3(9, -1, -1) || box.Max != core.NewVec3(11, 1, 1) {
		t.Errorf("Unexpected translated box %v", box)
	}
	if _, ok := NewTranslate(boxlessShape{}, core.NewVec3(1, 0, 0)).BoundingBox(0, 1); ok {
		t.Error("Translating a boxless shape should report no box")
	}
}

func TestRotateY(t *testing.T) {
	// Unit box on [0,1]^3 turned 90 degrees: x' = z, z' = -x
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial)
	rotated, err := NewRotateY(box, 90)
	if err != nil {
		t.Fatal(err)
	}

	bbox, _ := rotated.BoundingBox(0, 1)
	if !vecNear(bbox.Min, core.NewVec3(0, 0, -1)) || !vecNear(bbox.Max, core.NewVec3(1, 1, 0)) {
		t.Errorf("Expected rotated box [(0,0,-1),(1,1,0)], got %v", bbox)
	}

	// The world +X face at x=1 was the local +Z face
	ray := core.NewRay(core.NewVec3(5, 0.5, -0.5), core.NewVec3(-1, 0, 0))
	hit, ok := rotated.Hit(ray, 0.001, 100, nil)
	if !ok {
		t.Fatal("Expected hit on rotated box")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %f", hit.T)
	}
	if !vecNear(hit.Point, core.NewVec3(1, 0.5, -0.5)) {
		t.Errorf("Expected hit point (1,0.5,-0.5), got %v", hit.Point)
	}
	if !hit.FrontFace || !vecNear(hit.Normal, core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected front face with normal +X, got front=%v normal=%v", hit.FrontFace, hit.Normal)
	}

	// Nothing left at the unrotated location
	if _, ok := rotated.Hit(core.NewRay(core.NewVec3(5, 0.5, 0.5), core.NewVec3(-1, 0, 0)), 0.001, 100, nil); ok {
		t.Error("Expected miss at the unrotated position")
	}
}

func TestRotateY_FullTurnIsIdentity(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sphere := NewSphere(core.NewVec3(2, 1, -3), 1.5, testMaterial)
	rotated, err := NewRotateY(sphere, 360)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		origin := core.RandomVec3Range(random, -10, 10)
		ray := core.NewRay(origin, core.NewVec3(2, 1, -3).Subtract(origin))
		want, _ := sphere.Hit(ray, 0.001, 100, nil)
		got, ok := rotated.Hit(ray, 0.001, 100, nil)
		if !ok {
			t.Fatalf("Ray %d aimed at the center should hit", i)
		}
		if math.Abs(want.T-got.T) > 1e-9 || !vecNear(want.Normal, got.Normal) || want.FrontFace != got.FrontFace {
			t.Fatalf("Ray %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestRotateY_RequiresBoundingBox(t *testing.T) {
	if _, err := NewRotateY(boxlessShape{}, 30); !errors.Is(err, ErrNoBoundingBox) {
		t.Errorf("Expected ErrNoBoundingBox, got %v", err)
	}
}

func TestFlipFace(t *testing.T) {
	rect := NewXYRect(0, 1, 0, 1, 0, testMaterial)
	flipped := NewFlipFace(rect)
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1))

	plain, _ := rect.Hit(ray, 0.001, 10, nil)
	hit, ok := flipped.Hit(ray, 0.001, 10, nil)
	if !ok {
		t.Fatal("Expected hit")
	}
	if hit.FrontFace == plain.FrontFace {
		t.Error("FlipFace should invert the front-face flag")
	}
	if hit.Normal != plain.Normal || hit.T != plain.T || hit.Point != plain.Point {
		t.Errorf("FlipFace should leave everything else alone: %+v vs %+v", hit, plain)
	}

	want, _ := rect.BoundingBox(0, 1)
	if got, _ := flipped.BoundingBox(0, 1); got != want {
		t.Errorf("Expected delegated box %v, got %v", want, got)
	}
}
