// Package config provides configuration for chess-replay.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// OutputFormat represents the ways a replayed game can be written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Numbered algebraic notation with result
	JSONFormat                     // One JSON object per game
	UCIFormat                      // Coordinate moves (e2e4)
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	case UCIFormat:
		return "uci"
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat reads a format name as given on the command line.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "text", "san":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	case "uci", "lalg":
		return UCIFormat, nil
	}
	return TextFormat, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	Output    *OutputConfig
	Replay    *ReplayConfig
	Storage   *StorageConfig
	Duplicate *DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Replay:     NewReplayConfig(),
		Storage:    NewStorageConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer replayed games are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the writer for progress and error reports.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output streams not set: %w", errors.ErrInvalidConfig)
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Storage.Validate()
}

// Logf writes a progress line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
