package renderer

import (
	"context"
	"errors"
	"image"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RowTask represents a row rendering task for the worker pool
type RowTask struct {
	Y   int         // Scene row, counted from the bottom of the extent
	Img *image.RGBA // Shared destination; each row is written by one worker only
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Stats RenderStats
}

// WorkerPool renders rows in parallel. Every row reseeds its worker's shadow
// sampler from the pool seed and the row index, so the image depends only on
// the seed and not on the number of workers or their scheduling.
type WorkerPool struct {
	scene      *scene.Scene
	config     Config
	seed       int64
	numWorkers int
	logger     core.Logger
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	random      *rand.Rand
	seed        int64
	taskQueue   <-chan RowTask
	resultQueue chan<- RowResult
	logger      core.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(s *scene.Scene, config Config, seed int64, numWorkers int, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = discardLogger{}
	}

	return &WorkerPool{
		scene:      s,
		config:     config,
		seed:       seed,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Render renders img using all workers and blocks until every row is done or ctx is cancelled
func (wp *WorkerPool) Render(ctx context.Context, img *image.RGBA) (RenderStats, error) {
	if img == nil {
		return RenderStats{}, errors.New("render: nil image")
	}

	startTime := time.Now()
	height := img.Bounds().Dy()

	taskQueue := make(chan RowTask, height)
	resultQueue := make(chan RowResult, height)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		random := rand.New(rand.NewSource(wp.seed))
		worker := &Worker{
			ID:          i,
			raytracer:   NewRaytracerWithRandom(wp.scene, wp.config, random),
			random:      random,
			seed:        wp.seed,
			taskQueue:   taskQueue,
			resultQueue: resultQueue,
			logger:      wp.logger,
		}
		wg.Add(1)
		go worker.run(ctx, &wg)
	}

	wp.logger.Printf("Rendering %dx%d with %d workers\n", img.Bounds().Dx(), height, wp.numWorkers)

	for y := 0; y < height; y++ {
		taskQueue <- RowTask{Y: y, Img: img}
	}
	close(taskQueue) // No more tasks

	go func() {
		wg.Wait()
		close(resultQueue)
	}()

	var stats RenderStats
	for result := range resultQueue {
		stats.Add(result.Stats)
	}
	stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	wp.logger.Printf("Rendered %d pixels in %v (%.1f traces/pixel)\n",
		stats.TotalPixels, stats.Duration, stats.AverageTraceCalls())
	return stats, nil
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	skipped := 0
	for task := range w.taskQueue {
		if ctx.Err() != nil {
			skipped++ // Drain remaining tasks without rendering
			continue
		}

		w.random.Seed(w.seed + int64(task.Y))
		w.raytracer.resetCounters()
		w.raytracer.renderRow(task.Img, task.Y)

		stats := w.raytracer.counters()
		stats.TotalPixels = task.Img.Bounds().Dx()
		w.resultQueue <- RowResult{Stats: stats}
	}

	if skipped > 0 {
		w.logger.Printf("Worker %d: cancelled, skipped %d rows\n", w.ID, skipped)
	}
}
