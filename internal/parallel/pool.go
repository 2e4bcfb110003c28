// Package parallel runs independent page jobs on a fixed set of goroutines.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrPoolClosed is returned by Run after Close.
var ErrPoolClosed = errors.New("parallel: pool closed")

// Job is one unit of work. It should return promptly once ctx is done.
type Job func(ctx context.Context)

// Pool is a pool of goroutines with one queue per worker.
//
// Jobs are dealt round-robin to the worker queues. A worker whose queue is
// empty steals from the others, so one slow page does not hold back the
// jobs queued behind it.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()

	// done signals workers to stop.
	done chan struct{}
	wg   sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)
	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

// drain runs the work left in queue.
func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case fn := <-queue:
			fn()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Run queues jobs and waits until each has run or been skipped.
// Jobs that have not started when ctx is done are skipped, and Run returns
// ctx.Err(). Running jobs see the same ctx.
func (p *Pool) Run(ctx context.Context, jobs []Job) error {
	if !p.running.Load() {
		return ErrPoolClosed
	}
	if len(jobs) == 0 {
		return ctx.Err()
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))

	for i, job := range jobs {
		fn := func() {
			defer pending.Done()
			if ctx.Err() == nil {
				job(ctx)
			}
		}

		select {
		case p.queues[i%p.workers] <- fn:
		case <-ctx.Done():
			// Nothing more is queued; count the rest as skipped.
			pending.Add(-(len(jobs) - i))
			pending.Wait()
			return ctx.Err()
		case <-p.done:
			pending.Add(-(len(jobs) - i))
			pending.Wait()
			return ErrPoolClosed
		}
	}

	pending.Wait()
	return ctx.Err()
}

// Close stops accepting work, runs what is queued and stops the workers.
// Close is safe to call multiple times but must not race with Run.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
