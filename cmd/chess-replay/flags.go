// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length (0 = no wrapping)")
	outputFormat = flag.String("W", "text", "Output format: text, san, uci, lalg, json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noResults    = flag.Bool("noresults", false, "Don't output results")
	noChecks     = flag.Bool("nochecks", false, "Don't output check and mate symbols")
	noNumbers    = flag.Bool("nonumbers", false, "Don't output move numbers")
	showOutcome  = flag.Bool("outcome", false, "Describe how each game ended after its result")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress games whose final position was already seen")
	duplicateFile      = flag.String("d", "", "Output duplicates to this file")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered games (0 = unlimited)")
	weakDuplicates     = flag.Bool("weak", false, "Count games reaching the same position at any length as duplicates")

	// Replay options
	workers     = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	bufferSize  = flag.Int("buffer", 0, "Job queue depth (0 = twice the worker count)")
	stopOnError = flag.Bool("stoponerror", false, "Stop at the first game with an illegal move")
	promoteTo   = flag.String("promote", "q", "Promotion piece when a move names none: q, r, b, n")
	maxPly      = flag.Int("maxply", 0, "Replay at most N plies of each game (0 = no limit)")
	checkOnly   = flag.Bool("check", false, "Only check that every game is legal; write nothing")

	// Storage
	databasePath = flag.String("db", "", "SQLite database for saved games")
	saveGames    = flag.Bool("save", false, "Save every replayed game to the database")
	loadID       = flag.String("load", "", "Resume the stored game with this ID")
	resumeMoves  = flag.String("moves", "", "Moves to play on the game given by -load")
	listGames    = flag.Bool("list", false, "List the games stored in the database")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no summary)")
	verbose   = flag.Bool("v", false, "Report every game as it is replayed")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applyReplayFlags(cfg); err != nil {
		return err
	}
	applyDuplicateFlags(cfg)
	applyStorageFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyOutputFlags configures the output format and content.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	if *jsonOutput {
		format = config.JSONFormat
	}
	if *lineLength < 0 {
		return fmt.Errorf("line length %d: %w", *lineLength, errors.ErrInvalidConfig)
	}

	cfg.Output.Format = format
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.KeepResults = !*noResults
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.KeepMoveNumbers = !*noNumbers
	cfg.Output.KeepOutcome = *showOutcome
	return nil
}

// applyReplayFlags configures worker and replay settings.
func applyReplayFlags(cfg *config.Config) error {
	promotion, err := chess.ParsePieceKind(*promoteTo)
	if err != nil {
		return err
	}

	cfg.Replay.Workers = *workers
	cfg.Replay.BufferSize = *bufferSize
	cfg.Replay.StopOnError = *stopOnError
	cfg.Replay.DefaultPromotion = promotion
	cfg.Replay.MaxPlies = *maxPly
	cfg.Replay.CheckOnly = *checkOnly
	return nil
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = !*weakDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// applyStorageFlags configures the game database.
func applyStorageFlags(cfg *config.Config) {
	cfg.Storage.DatabasePath = *databasePath
	cfg.Storage.SaveGames = *saveGames
	cfg.Storage.LoadID = *loadID
	cfg.Storage.ResumeMoves = *resumeMoves
	cfg.Storage.ListGames = *listGames
}
