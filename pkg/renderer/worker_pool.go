package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// RowTask asks a worker to render one image row
type RowTask struct {
	Row int // 0 is the top row
}

// RowResult contains a finished row
type RowResult struct {
	Row            int
	Pixels         []core.Vec3
	Samples        int
	InvalidSamples int
}

// rowContext is the read-only state every worker shares
type rowContext struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	config     RenderConfig
}

// WorkerPool manages parallel row rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks. Each worker owns its random source.
type Worker struct {
	ID          int
	ctx         *rowContext
	random      *rand.Rand
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// newWorkerPool creates a worker pool with the specified number of workers.
// Worker i draws from a source seeded with seed+i.
func newWorkerPool(ctx *rowContext, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	// Buffer every row so neither submitting nor reporting ever blocks
	rows := ctx.camera.Height()
	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, rows),
		resultQueue: make(chan RowResult, rows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			ctx:         ctx,
			random:      rand.New(rand.NewSource(seed + int64(i))),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row, in completion order
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.renderRow(task.Row)
	}
}

// renderRow samples every pixel of one row
func (w *Worker) renderRow(row int) RowResult {
	camera := w.ctx.camera
	width, height := camera.Width(), camera.Height()
	spp := w.ctx.config.SamplesPerPixel

	// Image rows count down from the top; viewport t counts up from the bottom
	j := height - 1 - row
	uDiv := float64(max(width-1, 1))
	vDiv := float64(max(height-1, 1))

	result := RowResult{Row: row, Pixels: make([]core.Vec3, width)}
	for i := 0; i < width; i++ {
		var pixel PixelStats
		for s := 0; s < spp; s++ {
			u := (float64(i) + w.random.Float64()) / uDiv
			v := (float64(j) + w.random.Float64()) / vDiv
			ray := camera.GetRay(u, v, w.random)
			pixel.AddSample(w.ctx.integrator.RayColor(ray, w.ctx.world, w.ctx.config.MaxDepth, w.random))
		}
		result.Pixels[i] = pixel.GetColor()
		result.Samples += pixel.SampleCount
		result.InvalidSamples += pixel.InvalidSamples
	}
	return result
}
