// SPDX-License-Identifier: MIT

package fanout

import (
	"context"
	"runtime"
	"sync"
)

// Pool is a persistent, bounded set of worker goroutines that cell tasks can
// be submitted to. Workers are spawned once by NewPool and reused across any
// number of Multiply calls, so a multiply does not pay goroutine creation for
// each of its tasks and total concurrency stays bounded however many engines
// share the pool.
//
// Usage:
//
//	pool := fanout.NewPool(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//	eng, _ := fanout.New(fanout.WithPool(pool))
type Pool struct {
	numWorkers int
	workC      chan func()

	mu     sync.RWMutex // guards closed against concurrent sends
	closed bool
}

// NewPool creates a pool with numWorkers workers, spawned immediately.
// If numWorkers <= 0, GOMAXPROCS is used.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// enough buffer for every worker to have pending work
		workC: make(chan func(), numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for fn := range p.workC {
		fn()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Submit queues fn for a worker, blocking while the queue is full.
// It returns ctx.Err() if ctx is done before fn is accepted; fn then never runs.
// On a closed pool fn runs on its own goroutine, so callers waiting on fn's
// result never deadlock.
//
// fn must not panic: a panic would kill the worker. Cell tasks recover their
// own panics before returning.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		go fn()
		return nil
	}

	select {
	case p.workC <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Go is Submit without a deadline.
func (p *Pool) Go(fn func()) {
	_ = p.Submit(context.Background(), fn)
}

// Close stops accepting work; queued work still completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
}
