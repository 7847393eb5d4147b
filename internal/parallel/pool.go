// Package parallel provides a bounded worker pool for evaluating
// independent search probes concurrently. Probes during threshold search
// are embarrassingly independent (each owns its coloring buffer and memo
// table), so the pool only has to bound concurrency and propagate
// cancellation; no shared state is involved.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// Task is a unit of probe work. It receives the context governing the
// batch it belongs to and reports its own failure.
type Task func(ctx context.Context) error

// ErrPoolShutdown is returned when submitting tasks to a shutdown pool.
var ErrPoolShutdown = errors.New("worker pool has been shut down")

// WorkerPool runs tasks on a fixed number of goroutines with backpressure:
// submissions block while every worker is busy and the buffer is full,
// preventing resource exhaustion when a caller enqueues a large probe batch.
type WorkerPool struct {
	maxWorkers   int
	taskChan     chan boundTask
	workerWg     sync.WaitGroup
	shutdownChan chan struct{}
	once         sync.Once
}

// boundTask carries a task together with the context and completion channel
// of its submission.
type boundTask struct {
	ctx  context.Context
	task Task
	done chan<- error
}

// NewWorkerPool creates a pool with the specified number of workers.
// If maxWorkers is 0 or negative, it defaults to the number of CPU cores.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	pool := &WorkerPool{
		maxWorkers:   maxWorkers,
		taskChan:     make(chan boundTask, maxWorkers*2),
		shutdownChan: make(chan struct{}),
	}

	for i := 0; i < maxWorkers; i++ {
		pool.workerWg.Add(1)
		go pool.worker()
	}

	return pool
}

// Workers returns the pool's worker count.
func (wp *WorkerPool) Workers() int { return wp.maxWorkers }

func (wp *WorkerPool) worker() {
	defer wp.workerWg.Done()

	for {
		select {
		case bt := <-wp.taskChan:
			if bt.task == nil {
				continue
			}
			// Skip tasks whose batch was already cancelled.
			if err := bt.ctx.Err(); err != nil {
				bt.done <- err
				continue
			}
			bt.done <- bt.task(bt.ctx)
		case <-wp.shutdownChan:
			return
		}
	}
}

// Submit enqueues a task and returns without waiting for it to run.
// The returned channel receives the task's error exactly once.
// Blocks while the pool is saturated; fails fast if the context is
// cancelled or the pool is shut down.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) (<-chan error, error) {
	select {
	case <-wp.shutdownChan:
		return nil, ErrPoolShutdown
	default:
	}

	done := make(chan error, 1)
	select {
	case wp.taskChan <- boundTask{ctx: ctx, task: task, done: done}:
		return done, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-wp.shutdownChan:
		return nil, ErrPoolShutdown
	}
}

// Run enqueues a task and waits for it to complete, returning the task's
// error. This is the synchronous form of Submit used by probe batches.
func (wp *WorkerPool) Run(ctx context.Context, task Task) error {
	done, err := wp.Submit(ctx, task)
	if err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the workers after their current tasks complete. Queued
// tasks that never ran are dropped; their done channels stay empty, which
// is why Run also watches the context.
func (wp *WorkerPool) Shutdown() {
	wp.once.Do(func() {
		close(wp.shutdownChan)
		wp.workerWg.Wait()
	})
}
