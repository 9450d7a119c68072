// Package worker provides a worker pool for replaying games in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/output"
	"github.com/lgbarn/chess-core-go/internal/processing"
)

// WorkItem represents one game line to be replayed.
type WorkItem struct {
	Index  int    // Original index for tracking
	Source string // Input file name, "-" for stdin
	Line   int    // 1-based line number within Source
	Text   string
}

// ProcessResult represents the result of replaying a game.
type ProcessResult struct {
	Index    int
	Source   string
	Line     int
	Game     *engine.Game // Final game state (may be nil)
	Analysis *processing.GameAnalysis
	Record   *output.GameRecord
	Checked  bool // Line was only validated, and every move was legal
	Skipped  bool // Line held no game
	Error    error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel game processing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
	processed   int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		result := p.processFunc(item)
		atomic.AddInt64(&p.processed, 1)
		p.resultChan <- result
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// SubmitContext submits a work item, giving up when ctx is done first.
func (p *Pool) SubmitContext(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Processed returns the number of items processed so far.
func (p *Pool) Processed() int64 {
	return atomic.LoadInt64(&p.processed)
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
