package config

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// ReplayConfig holds settings for replaying games.
type ReplayConfig struct {
	// Workers is the number of games replayed in parallel (0 = one per CPU)
	Workers int

	// BufferSize is the job queue depth (0 = twice the worker count)
	BufferSize int

	// StopOnError abandons the run after the first rejected game
	StopOnError bool

	// DefaultPromotion is used when a promoting move names no piece
	DefaultPromotion chess.PieceKind

	// MaxPlies stops each game after this many plies (0 = no limit)
	MaxPlies int

	// CheckOnly validates every game without writing, saving or
	// deduplicating it
	CheckOnly bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		DefaultPromotion: chess.Queen,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) must not be negative: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	if r.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", r.MaxPlies, errors.ErrInvalidConfig)
	}
	if !r.DefaultPromotion.IsPromotionChoice() {
		return fmt.Errorf("default promotion %s: %w", r.DefaultPromotion, errors.ErrInvalidConfig)
	}
	return nil
}
