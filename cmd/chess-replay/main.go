// chess-replay replays chess games given as coordinate move lines, checking
// every move against the rules and writing the games out in algebraic notation.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-core-go/internal/config"
	"github.com/lgbarn/chess-core-go/internal/storage"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-replay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, flag.Args())
	stop()
	os.Exit(code)
}

// run carries out one invocation and returns the exit status: 0 when every
// game replayed, 1 when some game was rejected or the run failed.
func run(ctx context.Context, cfg *config.Config, args []string) int {
	store, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	if store != nil {
		defer store.Close() //nolint:errcheck // G104: cleanup on exit
	}

	switch {
	case cfg.Storage.ListGames:
		err = listStoredGames(ctx, store, cfg.OutputFile)
	case cfg.Storage.LoadID != "":
		err = resumeGame(ctx, cfg, store)
	default:
		var stats Stats
		stats, err = NewReplayer(cfg, store).Run(ctx, args)
		reportStatistics(cfg, stats)
		if err == nil && stats.Errors > 0 {
			return 1
		}
	}

	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openStore opens the game database when the run needs one.
func openStore(ctx context.Context, cfg *config.Config) (*storage.Store, error) {
	if !cfg.Storage.Enabled() {
		return nil, nil
	}
	store, err := storage.Open(ctx, cfg.Storage.DatabasePath)
	if err != nil {
		return nil, err
	}
	cfg.Logf(2, "Using game database %s\n", cfg.Storage.DatabasePath)
	return store, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile == "" {
		return
	}

	file, err := os.Create(*duplicateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating duplicate file %s: %v\n", *duplicateFile, err)
		os.Exit(1)
	}
	cfg.Duplicate.DuplicateFile = file
}

// reportStatistics prints the final statistics to the log.
func reportStatistics(cfg *config.Config, stats Stats) {
	switch {
	case cfg.Duplicate.Suppress || cfg.Duplicate.DuplicateFile != nil:
		cfg.Logf(1, "%d game(s) output, %d duplicate(s), %d error(s) out of %d.\n",
			stats.Output, stats.Duplicates, stats.Errors, stats.Games+stats.Errors)
	default:
		cfg.Logf(1, "%d game(s) output, %d error(s) out of %d.\n",
			stats.Output, stats.Errors, stats.Games+stats.Errors)
	}
	if stats.Saved > 0 {
		cfg.Logf(1, "%d game(s) saved to %s.\n", stats.Saved, cfg.Storage.DatabasePath)
	}
}

// listStoredGames writes one line per stored game.
func listStoredGames(ctx context.Context, store *storage.Store, w io.Writer) error {
	games, err := store.List(ctx)
	if err != nil {
		return err
	}
	for _, g := range games {
		fmt.Fprintf(w, "%s %4d %-7s %s\n", g.ID, g.Plies, g.Result, g.Source)
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-replay [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games written one per line as coordinate moves\n")
	fmt.Fprintf(os.Stderr, "(e2e4 e7e5 g1f3 ... 1-0) and writes them in algebraic notation.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  text   Standard Algebraic Notation (default, also: san)\n")
	fmt.Fprintf(os.Stderr, "  uci    Coordinate moves (e2e4, also: lalg)\n")
	fmt.Fprintf(os.Stderr, "  json   One JSON document holding every game\n")
	fmt.Fprintf(os.Stderr, "\nStored games:\n")
	fmt.Fprintf(os.Stderr, "  chess-replay -db games.db -save games.txt\n")
	fmt.Fprintf(os.Stderr, "  chess-replay -db games.db -list\n")
	fmt.Fprintf(os.Stderr, "  chess-replay -db games.db -load <id> -moves \"g1f3 b8c6\"\n")
}
