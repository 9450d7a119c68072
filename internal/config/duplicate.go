package config

import "io"

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress enables duplicate suppression
	Suppress bool

	// ExactMatch also requires duplicates to have the same number of plies
	ExactMatch bool

	// MaxCapacity bounds the number of remembered games (0 = unlimited)
	MaxCapacity int

	// DuplicateFile is the output stream for duplicate games
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		Suppress:    false,
		ExactMatch:  true,
		MaxCapacity: 0,
	}
}
