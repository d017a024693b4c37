package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is returned when render parameters are out of range
var ErrInvalidConfig = errors.New("renderer: invalid render config")

// RenderConfig contains rendering configuration
type RenderConfig struct {
	SamplesPerPixel int     // Number of rays per pixel, at least 1
	MaxDepth        int     // Maximum ray bounce depth, 0 renders black
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	Seed            int64   // Base random seed (0 = seed from the clock)
	Time0, Time1    float64 // Shutter interval the BVH boxes must cover
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SamplesPerPixel: 50,
		MaxDepth:        50,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            0,
		Time0:           0,
		Time1:           1,
	}
}

// Validate reports the first out-of-range parameter
func (c RenderConfig) Validate() error {
	switch {
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel must be at least 1, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	case c.Time1 < c.Time0:
		return fmt.Errorf("%w: shutter interval [%g, %g] is reversed", ErrInvalidConfig, c.Time0, c.Time1)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackground() integrator.Background
	GetShapes() []geometry.Shape
}

// Raytracer renders a scene row by row across a worker pool
type Raytracer struct {
	scene  Scene
	config RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: config,
		logger: logger,
	}
}

// Render builds the BVH, renders every row in parallel and assembles the image
func (rt *Raytracer) Render() (*Image, RenderStats, error) {
	startTime := time.Now()

	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	camera := rt.scene.GetCamera()
	if camera == nil {
		return nil, RenderStats{}, fmt.Errorf("%w: scene has no camera", ErrInvalidConfig)
	}
	width, height := camera.Width(), camera.Height()
	if width < 1 || height < 1 {
		return nil, RenderStats{}, fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, width, height)
	}

	seed := rt.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := rt.buildWorld(seed)
	if err != nil {
		return nil, RenderStats{}, err
	}

	background := rt.scene.GetBackground()
	if background == nil {
		background = integrator.NewSolidBackground(core.Vec3{})
	}

	ctx := &rowContext{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(background),
		config:     rt.config,
	}
	// Worker seeds start after the one used for the BVH
	pool := newWorkerPool(ctx, rt.config.NumWorkers, seed+1)
	pool.Start()

	for row := 0; row < height; row++ {
		pool.SubmitTask(RowTask{Row: row})
	}
	rt.logger.Printf("Submitted %d rows to %d workers\n", height, pool.GetNumWorkers())

	img := NewImage(width, height)
	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}
	for finished := 1; finished <= height; finished++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		img.Pixels[result.Row] = result.Pixels
		stats.add(result)
		rt.logger.Printf("row %04d of %04d finished (%d/%d)\n", result.Row, height-1, finished, height)
	}
	pool.Stop()

	stats.Elapsed = time.Since(startTime)
	if stats.InvalidSamples > 0 {
		rt.logger.Printf("%d samples had NaN channels and were zeroed\n", stats.InvalidSamples)
	}
	rt.logger.Printf("Render completed in %v\n", stats.Elapsed)
	return img, stats, nil
}

// buildWorld wraps the scene's shapes in a BVH. An empty scene hits nothing.
func (rt *Raytracer) buildWorld(seed int64) (geometry.Shape, error) {
	shapes := rt.scene.GetShapes()
	if len(shapes) == 0 {
		return geometry.NewList(), nil
	}

	random := rand.New(rand.NewSource(seed))
	bvh, err := geometry.NewBVH(shapes, rt.config.Time0, rt.config.Time1, random)
	if err != nil {
		return nil, fmt.Errorf("render setup: %w", err)
	}
	rt.logger.Printf("Built BVH over %d shapes (depth %d)\n", bvh.Len(), bvh.Depth())
	return bvh, nil
}
