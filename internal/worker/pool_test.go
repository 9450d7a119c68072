package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/processing"
)

// noopProcessFunc returns a basic process function that does nothing.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Source: item.Source, Line: item.Line}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

// replayProcessFunc replays each line from the standard position.
func replayProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Source: item.Source, Line: item.Line}
		line, ok, err := processing.ParseLine(item.Text)
		if err != nil || !ok {
			result.Skipped = !ok
			result.Error = err
			return result
		}
		result.Game = engine.NewGame()
		result.Analysis, result.Error = processing.ReplayMoves(result.Game, line, processing.ReplayOptions{DefaultPromotion: chess.Queen})
		return result
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i, Source: "test", Line: i + 1, Text: "e2e4"})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numItems {
		t.Errorf("results = %d; want %d", resultCount, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
	if got := pool.Processed(); got != numItems {
		t.Errorf("Processed() = %d; want %d", got, numItems)
	}
}

// TestPoolReplaysGames tests replaying real games concurrently.
func TestPoolReplaysGames(t *testing.T) {
	lines := []string{
		"f2f3 e7e5 g2g4 d8h4 0-1",
		"# not a game",
		"e2e4 e7e5 e4e5",
		"e2e4 e7e5 d1h5 b8c6 f1c4 g8f6 h5f7",
	}
	pool := NewPoolWithOptions(replayProcessFunc(), WithWorkers(3), WithBufferSize(len(lines)))
	pool.Start()
	for i, text := range lines {
		pool.Submit(WorkItem{Index: i, Source: "games.txt", Line: i + 1, Text: text})
	}
	go pool.Close()

	results := make(map[int]ProcessResult)
	for r := range pool.Results() {
		results[r.Index] = r
	}

	if len(results) != len(lines) {
		t.Fatalf("results = %d; want %d", len(results), len(lines))
	}
	if r := results[0]; r.Error != nil || r.Analysis.Result != "0-1" {
		t.Errorf("fool's mate = %+v", r)
	}
	if r := results[1]; !r.Skipped || r.Error != nil {
		t.Errorf("comment line = %+v", r)
	}
	if r := results[2]; r.Error == nil || r.Line != 3 {
		t.Errorf("illegal line = %+v", r)
	}
	if r := results[3]; r.Error != nil || r.Analysis.Result != "1-0" {
		t.Errorf("scholar's mate = %+v", r)
	}
}

// TestPoolSingleWorker tests pool with single worker.
func TestPoolSingleWorker(t *testing.T) {
	pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(1), WithBufferSize(5))
	pool.Start()

	const numItems = 5
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	go pool.Close()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPoolWithOptions(slowProcessFunc, WithWorkers(2), WithBufferSize(100))
	pool.Start()

	const numItems = 50
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	// Should have processed fewer than total due to early stop
	if processed := atomic.LoadInt32(&processedCount); processed >= numItems {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(2), WithBufferSize(10))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolSubmitContext tests that a cancelled context unblocks submission.
func TestPoolSubmitContext(t *testing.T) {
	block := make(chan struct{})
	pool := NewPoolWithOptions(func(item WorkItem) ProcessResult {
		<-block
		return ProcessResult{Index: item.Index}
	}, WithWorkers(1), WithBufferSize(1))
	pool.Start()

	ctx, cancel := context.WithCancel(context.Background())
	if err := pool.SubmitContext(ctx, WorkItem{Index: 0}); err != nil {
		t.Fatalf("SubmitContext() = %v", err)
	}

	// Fill the buffer behind the blocked worker, then cancel the next submit.
	done := make(chan error, 1)
	go func() {
		for i := 1; ; i++ {
			if err := pool.SubmitContext(ctx, WorkItem{Index: i}); err != nil {
				done <- err
				return
			}
		}
	}()
	cancel()

	if err := <-done; err != context.Canceled {
		t.Errorf("SubmitContext() = %v; want context.Canceled", err)
	}

	close(block)
	go collectResults(pool)
	pool.Close()
}

// TestPoolNumWorkers tests NumWorkers method.
func TestPoolNumWorkers(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(tt.input), WithBufferSize(10))
			if got := pool.NumWorkers(); got != tt.expected {
				t.Errorf("NumWorkers() = %d; want %d", got, tt.expected)
			}
		})
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index}
	}

	pool := NewPoolWithOptions(variableDelayFunc, WithWorkers(4), WithBufferSize(20))
	pool.Start()

	const numItems = 10
	for i := 0; i < numItems; i++ {
		pool.Submit(WorkItem{Index: i})
	}

	go pool.Close()

	// Collect all result indices
	seen := make(map[int]bool)
	for result := range pool.Results() {
		seen[result.Index] = true
	}

	if len(seen) != numItems {
		t.Errorf("received %d results; want %d", len(seen), numItems)
	}

	// Verify all indices are present
	for i := 0; i < numItems; i++ {
		if !seen[i] {
			t.Errorf("missing index %d in results", i)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPoolWithOptions(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numItems = 100
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestNewPoolWithOptions tests the functional options constructor.
func TestNewPoolWithOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc())
		if pool.NumWorkers() != 1 {
			t.Errorf("default workers = %d; want 1", pool.NumWorkers())
		}
		if pool.bufferSize != 10 {
			t.Errorf("default bufferSize = %d; want 10", pool.bufferSize)
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(8), WithBufferSize(100))
		if pool.NumWorkers() != 8 {
			t.Errorf("NumWorkers() = %d; want 8", pool.NumWorkers())
		}
		if pool.bufferSize != 100 {
			t.Errorf("bufferSize = %d; want 100", pool.bufferSize)
		}
	})

	t.Run("invalid options ignored", func(t *testing.T) {
		pool := NewPoolWithOptions(noopProcessFunc(), WithWorkers(0), WithBufferSize(-5))
		if pool.NumWorkers() != 1 {
			t.Errorf("NumWorkers() = %d; want 1 (default)", pool.NumWorkers())
		}
		if pool.bufferSize != 10 {
			t.Errorf("bufferSize = %d; want 10 (default)", pool.bufferSize)
		}
	})

	t.Run("functional with options", func(t *testing.T) {
		var processed int32
		pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(2), WithBufferSize(5))
		pool.Start()

		const numItems = 5
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i})
		}

		go pool.Close()
		collectResults(pool)

		if got := atomic.LoadInt32(&processed); got != numItems {
			t.Errorf("processed = %d; want %d", got, numItems)
		}
	})
}
