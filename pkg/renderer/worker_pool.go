package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// RowTask asks a worker to trace one scanline
type RowTask struct {
	Row int
}

// RowResult carries a finished scanline back to the writer
type RowResult struct {
	Row    int
	Pixels []core.Vec3
}

// WorkerPool traces scanlines in parallel. Rows complete in any order;
// callers restore scanline order before writing.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	renderRow   func(row int) []core.Vec3
	cancel      context.CancelFunc
	err         error
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(numWorkers int, renderRow func(row int) []core.Vec3) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, numWorkers),
		resultQueue: make(chan RowResult, numWorkers),
		numWorkers:  numWorkers,
		renderRow:   renderRow,
	}
}

// Start queues rows [0, rows) and launches the workers. Results arrive on
// Results until every row is done or the context is cancelled.
func (wp *WorkerPool) Start(ctx context.Context, rows int) {
	ctx, wp.cancel = context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(wp.taskQueue)
		for row := 0; row < rows; row++ {
			select {
			case wp.taskQueue <- RowTask{Row: row}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < wp.numWorkers; i++ {
		group.Go(func() error {
			return wp.run(ctx)
		})
	}

	go func() {
		wp.err = group.Wait()
		close(wp.resultQueue)
	}()
}

// Results returns the channel of finished rows. It is closed once all workers exit.
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// Stop cancels outstanding rows, waits for the workers to exit and returns
// the first error any of them hit
func (wp *WorkerPool) Stop() error {
	wp.cancel()
	for range wp.resultQueue {
	}
	return wp.err
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context) error {
	for task := range wp.taskQueue {
		if err := ctx.Err(); err != nil {
			return err
		}

		result := RowResult{Row: task.Row, Pixels: wp.renderRow(task.Row)}

		select {
		case wp.resultQueue <- result:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
