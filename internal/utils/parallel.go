package utils

import (
	"context"
	"sync"
)

// ParallelTask is a unit of work whose result is collected by position.
type ParallelTask[T any] func(ctx context.Context) (T, error)

// RunParallelTasks executes tasks concurrently and returns their results in
// task order. The error of the lowest-indexed failing task is returned.
func RunParallelTasks[T any](ctx context.Context, tasks []ParallelTask[T]) ([]T, error) {
	var wg sync.WaitGroup
	results := make([]T, len(tasks))
	errs := make([]error, len(tasks))

	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, t ParallelTask[T]) {
			defer wg.Done()
			results[index], errs[index] = t(ctx)
		}(i, task)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// WorkerPool runs submitted tasks on a fixed number of goroutines.
type WorkerPool struct {
	maxWorkers int
	taskChan   chan func()
	wg         sync.WaitGroup
}

// NewWorkerPool starts maxWorkers workers. Values below one are treated as one.
func NewWorkerPool(maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	pool := &WorkerPool{
		maxWorkers: maxWorkers,
		taskChan:   make(chan func(), maxWorkers*2),
	}
	for i := 0; i < maxWorkers; i++ {
		go pool.worker()
	}
	return pool
}

func (p *WorkerPool) worker() {
	for task := range p.taskChan {
		task()
		p.wg.Done()
	}
}

// AddTask blocks while the queue is full.
func (p *WorkerPool) AddTask(task func()) {
	p.wg.Add(1)
	p.taskChan <- task
}

// Wait blocks until every submitted task has finished.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

// Close stops the workers. No task may be added afterwards.
func (p *WorkerPool) Close() {
	close(p.taskChan)
}
