package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestRects_Hit(t *testing.T) {
	tests := []struct {
		name           string
		shape          Shape
		ray            core.Ray
		shouldHit      bool
		expectedT      float64
		expectedU      float64
		expectedV      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "XY from the front",
			shape:          NewXYRect(0, 2, 0, 4, 1, testMaterial),
			ray:            core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 0, -1)),
			shouldHit:      true,
			expectedT:      4,
			expectedU:      0.5,
			expectedV:      0.25,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "XZ from below",
			shape:          NewXZRect(-1, 1, -1, 1, 3, testMaterial),
			ray:            core.NewRay(core.NewVec3(0.5, 0, 0), core.NewVec3(0, 1, 0)),
			shouldHit:      true,
			expectedT:      3,
			expectedU:      0.75,
			expectedV:      0.5,
			expectedNormal: core.NewVec3(0, -1, 0),
		},
		{
			name:           "YZ from the side",
			shape:          NewYZRect(0, 1, 0, 1, -2, testMaterial),
			ray:            core.NewRay(core.NewVec3(0, 0.5, 0.5), core.NewVec3(-1, 0, 0)),
			shouldHit:      true,
			expectedT:      2,
			expectedU:      0.5,
			expectedV:      0.5,
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:      "outside bounds",
			shape:     NewXYRect(0, 1, 0, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(2, 0.5, 1), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "parallel ray",
			shape:     NewXYRect(0, 1, 0, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "behind the ray",
			shape:     NewXYRect(0, 1, 0, 1, 0, testMaterial),
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.shape.Hit(tt.ray, 0.001, 100, nil)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, ok)
			}
			if !ok {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if math.Abs(hit.U-tt.expectedU) > 1e-9 || math.Abs(hit.V-tt.expectedV) > 1e-9 {
				t.Errorf("Expected uv (%f,%f), got (%f,%f)", tt.expectedU, tt.expectedV, hit.U, hit.V)
			}
			if hit.Normal != tt.expectedNormal {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestRects_BoundingBoxIsPadded(t *testing.T) {
	box, ok := NewXZRect(0, 555, 0, 555, 554, testMaterial).BoundingBox(0, 1)
	if !ok {
		t.Fatal("Rectangle should have a bounding box")
	}
	if size := box.Size(); size.Y <= 0 || size.Y > 0.01 {
		t.Errorf("Expected a thin positive Y extent, got %f", size.Y)
	}
	if box.Min.X != 0 || box.Max.X != 555 || box.Min.Z != 0 || box.Max.Z != 555 {
		t.Errorf("Free axes should span the rectangle, got %v", box)
	}
}
