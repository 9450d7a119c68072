package config

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// StorageConfig holds settings for persisting games.
type StorageConfig struct {
	// DatabasePath is the SQLite file games are saved to and loaded from
	DatabasePath string

	// SaveGames stores the final state of every replayed game
	SaveGames bool

	// LoadID resumes a stored game instead of reading input files
	LoadID string

	// ResumeMoves is the move line played on the game named by LoadID
	ResumeMoves string

	// ListGames prints the stored games instead of reading input files
	ListGames bool
}

// NewStorageConfig creates a StorageConfig with default values.
// Persistence is disabled by default.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Enabled reports whether a database is needed for this run.
func (s *StorageConfig) Enabled() bool {
	return s.SaveGames || s.LoadID != "" || s.ListGames
}

// Validate checks that the storage configuration is valid.
func (s *StorageConfig) Validate() error {
	if s.Enabled() && s.DatabasePath == "" {
		return fmt.Errorf("saving or loading games needs a database path: %w", errors.ErrInvalidConfig)
	}
	if s.ResumeMoves != "" && s.LoadID == "" {
		return fmt.Errorf("resume moves given without a game to load: %w", errors.ErrInvalidConfig)
	}
	return nil
}
