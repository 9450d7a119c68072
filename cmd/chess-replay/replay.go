package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/hashing"
	"github.com/lgbarn/chess-core-go/internal/output"
	"github.com/lgbarn/chess-core-go/internal/processing"
	"github.com/lgbarn/chess-core-go/internal/storage"
	"github.com/lgbarn/chess-core-go/internal/worker"
)

const stdinName = "stdin"

// maxLineLength bounds a single game line read from input.
const maxLineLength = 1 << 20

// Stats counts what happened to the lines of a run.
type Stats struct {
	Lines      int
	Games      int
	Output     int
	Duplicates int
	Errors     int
	Saved      int
}

// Replayer replays game lines from input files and writes the results.
type Replayer struct {
	cfg      *config.Config
	store    *storage.Store // nil unless games are saved
	detector *hashing.ThreadSafeDuplicateDetector
	stdin    io.Reader
}

// NewReplayer creates a replayer. store may be nil.
func NewReplayer(cfg *config.Config, store *storage.Store) *Replayer {
	r := &Replayer{
		cfg:   cfg,
		store: store,
		stdin: os.Stdin,
	}
	if cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil {
		r.detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
	}
	return r
}

func (r *Replayer) options() processing.ReplayOptions {
	return processing.ReplayOptions{
		DefaultPromotion: r.cfg.Replay.DefaultPromotion,
		MaxPlies:         r.cfg.Replay.MaxPlies,
	}
}

// Run replays every line of the named files, or of stdin when there are
// none. Games are written in input order whatever the worker count.
//
// Concurrency model: the reader goroutine submits one work item per line,
// workers replay them in parallel, and this goroutine alone consumes the
// results, so the writers, detector and store see games one at a time.
func (r *Replayer) Run(ctx context.Context, files []string) (Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	numWorkers := r.cfg.Replay.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	buffer := r.cfg.Replay.BufferSize
	if buffer <= 0 {
		buffer = 2 * numWorkers
	}
	pool := worker.NewPoolWithOptions(r.processItem,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(buffer),
	)
	pool.Start()

	var readErr error
	go func() {
		defer pool.Close()
		readErr = r.readInputs(ctx, files, pool)
	}()

	e := newEmitter(r)
	for result := range pool.Results() {
		if e.stopped {
			continue
		}
		if err := e.add(ctx, result); err != nil {
			e.stopped = true
			e.err = err
			pool.Stop()
			cancel()
		}
	}

	closeErr := e.close()
	r.cfg.Logf(2, "%d line(s) replayed by %d worker(s)\n", pool.Processed(), pool.NumWorkers())

	if e.err != nil {
		return e.stats, e.err
	}
	if readErr != nil {
		return e.stats, readErr
	}
	return e.stats, closeErr
}

// readInputs submits every line of every input to the pool.
func (r *Replayer) readInputs(ctx context.Context, files []string, pool *worker.Pool) error {
	index := 0
	submit := func(name string, in io.Reader) error {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 64*1024), maxLineLength)
		line := 0
		for scanner.Scan() {
			line++
			item := worker.WorkItem{Index: index, Source: name, Line: line, Text: scanner.Text()}
			if err := pool.SubmitContext(ctx, item); err != nil {
				return err
			}
			index++
		}
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}
		return nil
	}

	if len(files) == 0 {
		return submit(stdinName, r.stdin)
	}
	for _, filename := range files {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return errors.Wrapf(err, "opening %s", filename)
		}
		err = submit(filename, file)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
	}
	return nil
}

// processItem replays one line in a worker goroutine.
func (r *Replayer) processItem(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{
		Index:  item.Index,
		Source: item.Source,
		Line:   item.Line,
	}

	line, ok, err := processing.ParseLine(item.Text)
	if err != nil {
		result.Error = &errors.ParseError{Err: err, File: item.Source, Line: item.Line}
		return result
	}
	if !ok {
		result.Skipped = true
		return result
	}

	if r.cfg.Replay.CheckOnly {
		v := processing.ValidateLine(line, r.cfg.Replay.DefaultPromotion)
		if !v.Valid {
			result.Error = &errors.ParseError{
				Err:  v.Err,
				File: item.Source,
				Line: item.Line,
				Got:  line.Moves[v.ErrorPly-1],
			}
			return result
		}
		result.Checked = true
		return result
	}

	g := engine.NewGame()
	analysis, err := processing.ReplayMoves(g, line, r.options())
	result.Game = g
	result.Analysis = analysis
	if err != nil {
		result.Error = &errors.ParseError{
			Err:  err,
			File: item.Source,
			Line: item.Line,
			Got:  line.Moves[analysis.Plies],
		}
		return result
	}

	result.Record = output.NewGameRecord(g, map[string]string{
		"Source": fmt.Sprintf("%s:%d", item.Source, item.Line),
	})
	return result
}

// emitter writes results in input order.
type emitter struct {
	r       *Replayer
	out     output.GameWriter
	dups    output.GameWriter // nil unless duplicates go to their own file
	pending map[int]worker.ProcessResult
	next    int
	stats   Stats
	stopped bool
	err     error
}

func newEmitter(r *Replayer) *emitter {
	e := &emitter{
		r:       r,
		out:     output.NewWriter(r.cfg.OutputFile, r.cfg),
		pending: make(map[int]worker.ProcessResult),
	}
	if r.cfg.Duplicate.DuplicateFile != nil {
		e.dups = output.NewWriter(r.cfg.Duplicate.DuplicateFile, r.cfg)
	}
	return e
}

// add queues result and writes every result that is now in order.
func (e *emitter) add(ctx context.Context, result worker.ProcessResult) error {
	e.pending[result.Index] = result
	for {
		next, ok := e.pending[e.next]
		if !ok {
			return nil
		}
		delete(e.pending, e.next)
		e.next++
		if err := e.emit(ctx, next); err != nil {
			return err
		}
	}
}

func (e *emitter) emit(ctx context.Context, result worker.ProcessResult) error {
	cfg := e.r.cfg
	e.stats.Lines++
	if result.Skipped {
		return nil
	}
	if result.Error != nil {
		e.stats.Errors++
		cfg.Logf(1, "%v\n", result.Error)
		if cfg.Replay.StopOnError {
			return result.Error
		}
		return nil
	}

	e.stats.Games++
	if result.Checked {
		cfg.Logf(2, "%s:%d: legal\n", result.Source, result.Line)
		return nil
	}
	g, analysis, rec := result.Game, result.Analysis, result.Record
	if analysis.ResultMismatch() {
		cfg.Logf(1, "%s:%d: claimed result %s, position gives %s\n",
			result.Source, result.Line, analysis.ClaimedResult, analysis.Result)
	}

	if e.r.detector != nil {
		sig := hashing.Signature(g.Board(), g.ActiveColour(), g.Ply())
		if e.r.detector.CheckAndAdd(sig) {
			e.stats.Duplicates++
			cfg.Logf(2, "%s:%d: duplicate game\n", result.Source, result.Line)
			if e.dups != nil {
				if err := e.dups.WriteGame(rec); err != nil {
					return err
				}
			}
			if cfg.Duplicate.Suppress {
				return nil
			}
		}
	}

	if e.r.store != nil && cfg.Storage.SaveGames {
		id, err := e.r.store.Create(ctx, rec.Tags["Source"], g)
		if err != nil {
			return err
		}
		rec.Tags["GameID"] = id
		e.stats.Saved++
		cfg.Logf(2, "%s:%d: saved as %s\n", result.Source, result.Line, id)
	}

	if err := e.out.WriteGame(rec); err != nil {
		return err
	}
	e.stats.Output++
	return nil
}

// close flushes the writers.
func (e *emitter) close() error {
	err := e.out.Close()
	if e.dups != nil {
		if dupErr := e.dups.Close(); err == nil {
			err = dupErr
		}
	}
	return err
}
