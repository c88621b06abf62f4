package renderer

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // Position in the submitted tile slice
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	Tile     *Tile
	WorkerID int
	Duration time.Duration
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{renderer: renderer, numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile into fb and blocks until all workers have stopped.
// collect is called on the calling goroutine once per finished tile, so it
// needs no synchronization. The first worker error cancels the rest.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, fb *FrameBuffer, collect func(TileResult)) error {
	g, gctx := errgroup.WithContext(ctx)

	taskQueue := make(chan TileTask)
	resultQueue := make(chan TileResult, len(tiles)) // Workers never block on results

	g.Go(func() error {
		defer close(taskQueue)
		for i, tile := range tiles {
			select {
			case taskQueue <- TileTask{Tile: tile, TaskID: i}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var workers sync.WaitGroup
	for id := 0; id < wp.numWorkers; id++ {
		id := id
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			return wp.work(gctx, id, taskQueue, resultQueue, fb)
		})
	}

	go func() {
		workers.Wait()
		close(resultQueue)
	}()

	for result := range resultQueue {
		if collect != nil {
			collect(result)
		}
	}

	return g.Wait()
}

// work is the main worker loop
func (wp *WorkerPool) work(ctx context.Context, id int, tasks <-chan TileTask, results chan<- TileResult, fb *FrameBuffer) error {
	for task := range tasks {
		start := time.Now()
		// Tiles have non-overlapping bounds, so writing to the shared buffer is safe
		if err := wp.renderer.RenderTileBounds(ctx, task.Tile.Bounds, fb); err != nil {
			return err
		}
		results <- TileResult{
			TaskID:   task.TaskID,
			Tile:     task.Tile,
			WorkerID: id,
			Duration: time.Since(start),
		}
	}
	return nil
}
