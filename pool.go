package riff

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Pool is a fixed-size goroutine pool used to run intra-line refinement
// (see Format) off the main stream-reading goroutine, the way the original
// tool used a background thread pool so a big hunk's diffing never stalls
// reading the next one.
//
// Submissions beyond 2x the pool's worker count block until a worker frees
// up: without that cap a long stream of large hunks would enqueue an
// unbounded number of pending jobs and defeat the point of bounded memory.
type Pool struct {
	jobs      chan func()
	sem       *semaphore.Weighted
	closeOnce sync.Once
	done      chan struct{}
}

// NewPool starts a pool of size workers. size must be at least 1.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}

	p := &Pool{
		jobs: make(chan func(), size),
		sem:  semaphore.NewWeighted(int64(2 * size)),
		done: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for job := range p.jobs {
		job()
	}
}

// Submit runs job on a pool worker. It blocks if 2x the pool's worker count
// of jobs are already submitted but not yet finished.
func (p *Pool) Submit(job func()) {
	_ = p.sem.Acquire(context.Background(), 1)
	p.jobs <- func() {
		defer p.sem.Release(1)
		job()
	}
}

// Close stops accepting new work and releases the pool's goroutines once
// all submitted jobs have drained. Submit must not be called after Close.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
		close(p.done)
	})
}
