package scene

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func testOptions() Options {
	return Options{
		Width:        32,
		AspectRatio:  1.0,
		Random:       rand.New(rand.NewSource(42)),
		EarthTexture: filepath.Join(os.TempDir(), "does-not-exist", "earth.jpg"),
	}
}

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-smoke", "Cornell Smoke"},
		{"random_spheres", "Random Spheres"},
		{"final", "Final"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestBuild_AllScenes(t *testing.T) {
	scenes := ListScenes()
	if len(scenes) != 8 {
		t.Fatalf("Expected 8 registered scenes, got %d", len(scenes))
	}

	for _, info := range scenes {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Build(info.ID, testOptions())
			if err != nil {
				t.Fatalf("Build(%q) failed: %v", info.ID, err)
			}
			if s.GetCamera() == nil || s.GetBackground() == nil {
				t.Fatal("Scene is missing a camera or background")
			}
			if len(s.GetShapes()) == 0 {
				t.Fatal("Scene has no shapes")
			}
			if s.GetCamera().Width() != 32 || s.GetCamera().Height() != 32 {
				t.Errorf("Expected a 32x32 camera, got %dx%d", s.GetCamera().Width(), s.GetCamera().Height())
			}
			if err := s.RenderConfig.Validate(); err != nil {
				t.Errorf("Scene render settings are invalid: %v", err)
			}

			// Every top-level shape must be boundable so the renderer can build its BVH
			if _, err := geometry.NewBVH(s.GetShapes(), 0, 1, rand.New(rand.NewSource(42))); err != nil {
				t.Errorf("BVH construction failed: %v", err)
			}
		})
	}
}

func TestBuild_UnknownScene(t *testing.T) {
	if _, err := Build("no-such-scene", testOptions()); err == nil {
		t.Error("Expected an error for an unknown scene")
	}
}

func TestRandomSpheresScene_Contents(t *testing.T) {
	s, err := NewRandomSpheresScene(testOptions())
	if err != nil {
		t.Fatal(err)
	}

	// Ground + up to 484 small spheres + 3 feature spheres
	if n := len(s.Shapes); n < 100 || n > 488 {
		t.Errorf("Unexpected shape count %d", n)
	}

	moving := 0
	for _, shape := range s.Shapes {
		if _, ok := shape.(*geometry.MovingSphere); ok {
			moving++
		}
	}
	if moving == 0 {
		t.Error("Expected at least one moving sphere")
	}
}

func TestEarthScene_MissingTexture(t *testing.T) {
	logger := &recordingLogger{}
	opts := testOptions()
	opts.Logger = logger

	s, err := NewEarthScene(opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(logger.lines) != 1 || !strings.Contains(logger.lines[0], "Warning") {
		t.Errorf("Expected one warning about the texture, got %v", logger.lines)
	}

	// A ray straight at the globe returns the cyan debug color
	ray := core.NewRay(core.NewVec3(13, 2, 3), core.NewVec3(-13, -2, -3))
	hit, ok := s.Shapes[0].Hit(ray, 0.001, math.Inf(1), opts.Random)
	if !ok {
		t.Fatal("Expected the ray to hit the earth sphere")
	}
	lambertian, ok := hit.Material.(*material.Lambertian)
	if !ok {
		t.Fatalf("Expected a lambertian earth, got %T", hit.Material)
	}
	if got := lambertian.Albedo.Value(hit.U, hit.V, hit.Point); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan for a missing texture, got %v", got)
	}
}

func TestCornellBoxScene_Render(t *testing.T) {
	opts := testOptions()
	opts.Width = 8
	s, err := NewCornellBoxScene(opts)
	if err != nil {
		t.Fatal(err)
	}

	config := renderer.DefaultRenderConfig()
	config.SamplesPerPixel = 2
	config.MaxDepth = 4
	config.NumWorkers = 2
	config.Seed = 42

	img, stats, err := renderer.NewRaytracer(s, config, nil).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Width != 8 || img.Height != 8 {
		t.Errorf("Expected 8x8 image, got %dx%d", img.Width, img.Height)
	}
	if stats.TotalPixels != 64 {
		t.Errorf("Expected 64 pixels, got %d", stats.TotalPixels)
	}
}

func TestOptions_Normalize(t *testing.T) {
	opts := Options{}.normalize()
	if opts.Width != 480 || math.Abs(opts.AspectRatio-16.0/9.0) > 1e-12 {
		t.Errorf("Unexpected defaults %+v", opts)
	}
	if opts.Random == nil || opts.Logger == nil || opts.EarthTexture != DefaultEarthTexture {
		t.Errorf("Expected random, logger and texture defaults, got %+v", opts)
	}
}
