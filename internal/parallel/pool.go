// Package parallel runs independent rendering jobs on a fixed set of
// goroutines.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned when work is submitted to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// WorkerPool is a pool of goroutines pulling jobs from a shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// mu keeps Close from closing the queue under an ExecuteAll.
	mu sync.RWMutex
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*2),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.queue {
		job()
	}
}

// ExecuteAll runs every job and waits for all of them. The returned error
// joins the errors of the failed jobs in submission order.
func (p *WorkerPool) ExecuteAll(jobs []func() error) error {
	if len(jobs) == 0 {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() {
		return ErrClosed
	}

	errs := make([]error, len(jobs))
	var done sync.WaitGroup
	done.Add(len(jobs))
	for i, job := range jobs {
		p.queue <- func() {
			defer done.Done()
			errs[i] = job()
		}
	}
	done.Wait()

	return errors.Join(errs...)
}

// Close stops the workers after the queued jobs finish.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.queue)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
