// Package storage persists game states in SQLite, keyed by UUID.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

const schema = `CREATE TABLE IF NOT EXISTS games (
	id         TEXT PRIMARY KEY,
	source     TEXT NOT NULL DEFAULT '',
	plies      INTEGER NOT NULL,
	result     TEXT NOT NULL,
	state      TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

// GameSummary describes a stored game without restoring it.
type GameSummary struct {
	ID        string
	Source    string
	Plies     int
	Result    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is a SQLite-backed game store. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One connection serializes writers and keeps ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create stores g under a new ID and returns the ID.
func (s *Store) Create(ctx context.Context, source string, g *engine.Game) (string, error) {
	id := uuid.New().String()
	if err := s.Save(ctx, id, source, g); err != nil {
		return "", err
	}
	return id, nil
}

// Save stores g under id, replacing any earlier state. The creation time
// of an existing game is kept.
func (s *Store) Save(ctx context.Context, id, source string, g *engine.Game) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("game id %q: %w: %w", id, errors.ErrInvalidState, err)
	}
	data, err := json.Marshal(g.State())
	if err != nil {
		return fmt.Errorf("encode game %s: %w", id, err)
	}

	now := s.now().UnixNano()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO games (id, source, plies, result, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			plies = excluded.plies,
			result = excluded.result,
			state = excluded.state,
			updated_at = excluded.updated_at`,
		id, source, g.Ply(), g.Result(), string(data), now, now)
	if err != nil {
		return fmt.Errorf("save game %s: %w", id, err)
	}
	return nil
}

// Update replaces the state of an existing game, keeping its source.
func (s *Store) Update(ctx context.Context, id string, g *engine.Game) error {
	data, err := json.Marshal(g.State())
	if err != nil {
		return fmt.Errorf("encode game %s: %w", id, err)
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE games SET plies = ?, result = ?, state = ?, updated_at = ?
		WHERE id = ?`,
		g.Ply(), g.Result(), string(data), s.now().UnixNano(), id)
	if err != nil {
		return fmt.Errorf("update game %s: %w", id, err)
	}
	return expectRow(result, id)
}

// Load restores the game stored under id.
func (s *Store) Load(ctx context.Context, id string) (*engine.Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("game id %q: %w", id, errors.ErrGameNotFound)
	}

	var data string
	err := s.db.QueryRowContext(ctx, "SELECT state FROM games WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}

	var state engine.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("decode game %s: %w: %w", id, errors.ErrInvalidState, err)
	}
	g, err := engine.RestoreGame(state)
	if err != nil {
		return nil, fmt.Errorf("restore game %s: %w", id, err)
	}
	return g, nil
}

// List returns every stored game, oldest first.
func (s *Store) List(ctx context.Context) ([]GameSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, plies, result, created_at, updated_at
		FROM games ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	var games []GameSummary
	for rows.Next() {
		var g GameSummary
		var created, updated int64
		if err := rows.Scan(&g.ID, &g.Source, &g.Plies, &g.Result, &created, &updated); err != nil {
			return nil, fmt.Errorf("list games: %w", err)
		}
		g.CreatedAt = time.Unix(0, created)
		g.UpdatedAt = time.Unix(0, updated)
		games = append(games, g)
	}
	return games, rows.Err()
}

// Delete removes the game stored under id.
func (s *Store) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return expectRow(result, id)
}

// expectRow fails with ErrGameNotFound when a statement touched no rows.
func expectRow(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("game %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}
	return nil
}
