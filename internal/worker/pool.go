// Package worker replays move scripts in parallel. Every work item gets its
// own game, so workers share nothing but the channels.
package worker

import (
	"context"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/processing"
)

// WorkItem is a script queued for replay.
type WorkItem struct {
	Script processing.Script
	Index  int // position in the input, used to restore order
}

// ProcessResult pairs a replay result with its WorkItem index.
type ProcessResult struct {
	Index  int
	Result *processing.Result
}

// ProcessFunc handles one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a fixed number of workers over a buffered queue. Cancelling the
// pool's context, or calling Stop, makes workers skip whatever is still
// queued; items already being processed finish and report.
type Pool struct {
	workers int
	buffer  int
	process ProcessFunc

	ctx    context.Context
	cancel context.CancelFunc

	queue   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the queue and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool bound to ctx. It defaults to 1 worker and a buffer
// of 10.
func NewPool(ctx context.Context, process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.queue = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.queue {
		if p.Stopped() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues item, blocking while the queue is full. It returns false
// without queueing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.Stopped() {
		return false
	}
	if p.trySubmit(item) {
		return true
	}
	select {
	case p.queue <- item:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// trySubmit queues item only if there is room right now.
func (p *Pool) trySubmit(item WorkItem) bool {
	if p.Stopped() {
		return false
	}
	select {
	case p.queue <- item:
		return true
	default:
		return false
	}
}

// Stop cancels the pool.
func (p *Pool) Stop() {
	p.cancel()
}

// Stopped reports whether the pool was stopped or its context cancelled.
func (p *Pool) Stopped() bool {
	return p.ctx.Err() != nil
}

// Close ends submission, waits for the workers and closes Results. The
// results must be drained concurrently, or Close can block.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
	close(p.results)
	p.cancel()
}

// Results returns the channel results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}
