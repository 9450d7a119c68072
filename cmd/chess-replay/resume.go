package main

import (
	"context"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/output"
	"github.com/lgbarn/chess-core-go/internal/processing"
	"github.com/lgbarn/chess-core-go/internal/storage"
)

// resumeGame loads a stored game, plays the configured moves on it, stores
// the result and writes the game out. Moves played before the failing one
// are kept.
func resumeGame(ctx context.Context, cfg *config.Config, store *storage.Store) error {
	id := cfg.Storage.LoadID
	g, err := store.Load(ctx, id)
	if err != nil {
		return err
	}

	line, ok, err := processing.ParseLine(cfg.Storage.ResumeMoves)
	if err != nil {
		return &errors.ParseError{Err: err, File: id}
	}

	var moveErr error
	if ok {
		opts := processing.ReplayOptions{
			DefaultPromotion: cfg.Replay.DefaultPromotion,
			MaxPlies:         cfg.Replay.MaxPlies,
		}
		analysis, err := processing.ReplayMoves(g, line, opts)
		if err != nil {
			moveErr = &errors.ParseError{Err: err, File: id, Got: line.Moves[analysis.Plies]}
		}
		if analysis.Plies > 0 {
			if err := store.Update(ctx, id, g); err != nil {
				return err
			}
			cfg.Logf(2, "Stored %d new ply(s) for %s\n", analysis.Plies, id)
		}
	}

	out := output.NewWriter(cfg.OutputFile, cfg)
	rec := output.NewGameRecord(g, map[string]string{"GameID": id})
	if err := out.WriteGame(rec); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if moveErr != nil {
		return errors.Wrap(moveErr, "resuming game")
	}
	return nil
}
