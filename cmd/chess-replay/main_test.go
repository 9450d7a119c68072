package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/storage"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

// storedGame saves a game played from the standard position and returns
// the database path and game ID.
func storedGame(t *testing.T, moves ...string) (string, string) {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "games.db")
	store, err := storage.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	g := engine.NewGame()
	for _, mv := range moves {
		if _, err := g.MoveUCI(mv); err != nil {
			t.Fatalf("MoveUCI(%s) error: %v", mv, err)
		}
	}
	id, err := store.Create(ctx, "test", g)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	return dbPath, id
}

func loadStored(t *testing.T, dbPath, id string) *engine.Game {
	t.Helper()
	ctx := context.Background()
	store, err := storage.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	g, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return g
}

func TestRunReplaysFiles(t *testing.T) {
	path := writeInput(t, foolsMateLine+"\n"+openingLine+"\n")
	cfg, out, log := testConfig(2)

	code := run(context.Background(), cfg, []string{path})

	testutil.AssertEqual(t, code, 0)
	testutil.AssertEqual(t, out.String(), gameText(path, 1, foolsMateText)+gameText(path, 2, openingText))
	testutil.AssertEqual(t, log.String(), "2 game(s) output, 0 error(s) out of 2.\n")
}

func TestRunReportsRejectedGames(t *testing.T) {
	path := writeInput(t, "e2e4 e7e5 e1e3\n")
	cfg, _, log := testConfig(1)

	code := run(context.Background(), cfg, []string{path})

	testutil.AssertEqual(t, code, 1)
	testutil.AssertContains(t, log.String(), "0 game(s) output, 1 error(s) out of 1.")
}

func TestRunQuiet(t *testing.T) {
	path := writeInput(t, openingLine+"\n")
	cfg, _, log := testConfig(1)
	cfg.Verbosity = 0

	testutil.AssertEqual(t, run(context.Background(), cfg, []string{path}), 0)
	testutil.AssertEqual(t, log.String(), "")
}

func TestRunListsStoredGames(t *testing.T) {
	dbPath, id := storedGame(t, "e2e4", "e7e5")
	cfg, out, _ := testConfig(1)
	cfg.Storage.DatabasePath = dbPath
	cfg.Storage.ListGames = true

	code := run(context.Background(), cfg, nil)

	testutil.AssertEqual(t, code, 0)
	testutil.AssertEqual(t, out.String(), id+"    2 *       test\n")
}

func TestRunResumesStoredGame(t *testing.T) {
	dbPath, id := storedGame(t, "e2e4")
	cfg, out, _ := testConfig(1)
	cfg.Storage.DatabasePath = dbPath
	cfg.Storage.LoadID = id
	cfg.Storage.ResumeMoves = "e7e5 g1f3"

	code := run(context.Background(), cfg, nil)

	testutil.AssertEqual(t, code, 0)
	testutil.AssertEqual(t, out.String(), "[GameID \""+id+"\"]\n\n"+openingText+"\n\n")
	testutil.AssertEqual(t, loadStored(t, dbPath, id).Notation(), []string{"e4", "e5", "Nf3"})
}

func TestRunResumeKeepsMovesBeforeError(t *testing.T) {
	dbPath, id := storedGame(t, "e2e4")
	cfg, out, log := testConfig(1)
	cfg.Storage.DatabasePath = dbPath
	cfg.Storage.LoadID = id
	cfg.Storage.ResumeMoves = "e7e5 e1e3 g1f3"

	code := run(context.Background(), cfg, nil)

	testutil.AssertEqual(t, code, 1)
	testutil.AssertContains(t, out.String(), "1. e4 e5 *")
	testutil.AssertContains(t, log.String(), "resuming game")
	testutil.AssertContains(t, log.String(), `at "e1e3"`)
	testutil.AssertEqual(t, loadStored(t, dbPath, id).Ply(), 2)
}

func TestRunResumeUnknownGame(t *testing.T) {
	dbPath, _ := storedGame(t)
	cfg, _, log := testConfig(1)
	cfg.Storage.DatabasePath = dbPath
	cfg.Storage.LoadID = "not-a-game"

	code := run(context.Background(), cfg, nil)

	testutil.AssertEqual(t, code, 1)
	testutil.AssertTrue(t, strings.HasPrefix(log.String(), "Error: "), log.String())
	testutil.AssertContains(t, log.String(), "game not found")
}
