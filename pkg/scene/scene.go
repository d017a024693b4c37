package scene

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// DefaultEarthTexture is where the earth scenes look for their image map
const DefaultEarthTexture = "earthmap.jpg"

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       *renderer.Camera
	Background   integrator.Background
	Shapes       []geometry.Shape      // Top-level objects; the renderer builds the BVH over these
	RenderConfig renderer.RenderConfig // Suggested sampling settings for this scene
}

func (s *Scene) GetCamera() *renderer.Camera          { return s.Camera }
func (s *Scene) GetBackground() integrator.Background { return s.Background }
func (s *Scene) GetShapes() []geometry.Shape          { return s.Shapes }

func (s *Scene) add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Options are the inputs shared by every scene builder
type Options struct {
	Width        int         // Image width in pixels
	AspectRatio  float64     // Width / height
	Random       *rand.Rand  // Source for randomly placed objects and noise tables
	Logger       core.Logger // Receives warnings such as a missing texture file
	EarthTexture string      // Image for the earth sphere; DefaultEarthTexture when empty
}

// DefaultOptions returns a 480 pixel wide 16:9 setup
func DefaultOptions() Options {
	return Options{
		Width:        480,
		AspectRatio:  16.0 / 9.0,
		EarthTexture: DefaultEarthTexture,
	}
}

// normalize fills in zero-valued fields
func (o Options) normalize() Options {
	defaults := DefaultOptions()
	if o.Width <= 0 {
		o.Width = defaults.Width
	}
	if o.AspectRatio <= 0 {
		o.AspectRatio = defaults.AspectRatio
	}
	if o.Random == nil {
		o.Random = rand.New(rand.NewSource(1))
	}
	if o.Logger == nil {
		o.Logger = core.NopLogger{}
	}
	if o.EarthTexture == "" {
		o.EarthTexture = defaults.EarthTexture
	}
	return o
}

// camera builds a pinhole camera with a one second shutter and focus at 10 units
func (o Options) camera(lookFrom, lookAt core.Vec3, vfov float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    lookFrom,
		LookAt:      lookAt,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        vfov,
		AspectRatio: o.AspectRatio,
		ImageWidth:  o.Width,
		Aperture:    0,
		FocusDist:   10,
		OpenTime:    0,
		CloseTime:   1,
	})
}

// newScene creates an empty scene with the default render settings
func newScene(camera *renderer.Camera, background integrator.Background) *Scene {
	return &Scene{
		Camera:       camera,
		Background:   background,
		Shapes:       make([]geometry.Shape, 0),
		RenderConfig: renderer.DefaultRenderConfig(),
	}
}

// Builder constructs a scene from the shared options
type Builder func(opts Options) (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	ID          string
	DisplayName string
	Description string
	build       Builder
}

var registry = []SceneInfo{
	{ID: "random-spheres", Description: "Checkered ground covered in small random spheres, some of them moving", build: NewRandomSpheresScene},
	{ID: "perlin-spheres", Description: "Two marble spheres textured with Perlin turbulence", build: NewPerlinSpheresScene},
	{ID: "checkered-spheres", Description: "Two large checkered spheres", build: NewCheckeredSpheresScene},
	{ID: "earth", Description: "A single sphere wrapped in an image texture", build: NewEarthScene},
	{ID: "cornell-box", Description: "Cornell box with two rotated boxes", build: NewCornellBoxScene},
	{ID: "cornell-smoke", Description: "Cornell box whose boxes are smoke and fog", build: NewCornellSmokeScene},
	{ID: "final", Description: "Ground of boxes, volumes, textures and a rotated cluster of spheres", build: NewFinalScene},
	{ID: "two-spheres", Description: "Diffuse sphere on a large ground sphere under a sky gradient", build: NewTwoSpheresScene},
}

func init() {
	for i := range registry {
		registry[i].DisplayName = titleCase(registry[i].ID)
	}
}

// ListScenes returns every registered scene sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(registry))
	copy(scenes, registry)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Build constructs the scene registered under id
func Build(id string, opts Options) (*Scene, error) {
	for _, info := range registry {
		if info.ID == id {
			s, err := info.build(opts)
			if err != nil {
				return nil, fmt.Errorf("failed to build scene %q: %w", id, err)
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q", id)
}

// titleCase converts an identifier to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
