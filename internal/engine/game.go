// Package engine orchestrates chess games: turn order, move validation and
// execution, special moves, notation and game-state queries.
package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/hashing"
)

// Game is the sole mutator of its Board. It is not safe for concurrent use.
type Game struct {
	board  *chess.Board
	active chess.Colour

	history []Move
	// SAN of plies played before the game was restored from a State.
	priorNotation []string

	halfmoveClock  int
	fullmoveNumber int
	repetitions    *hashing.RepetitionTracker
}

// NewGame starts a game from the standard position with White to move.
func NewGame() *Game {
	g, err := NewGameFromBoard(chess.NewStandardBoard(), chess.White)
	if err != nil {
		panic(fmt.Sprintf("engine: standard position rejected: %v", err))
	}
	return g
}

// NewGameFromBoard starts a game from an arbitrary position. The game takes
// ownership of board; callers must not mutate it afterwards.
func NewGameFromBoard(board *chess.Board, toMove chess.Colour) (*Game, error) {
	if err := board.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		board:          board,
		active:         toMove,
		fullmoveNumber: 1,
		repetitions:    hashing.NewRepetitionTracker(),
	}
	g.repetitions.Record(g.positionKey())
	return g, nil
}

// ActiveColour returns the colour to move.
func (g *Game) ActiveColour() chess.Colour {
	return g.active
}

// Board returns a read-only view of the board.
func (g *Game) Board() chess.Reader {
	return g.board
}

// BoardSnapshot returns a copy of the grid for rendering.
func (g *Game) BoardSnapshot() chess.Snapshot {
	return g.board.Snapshot()
}

// Ply returns the number of half-moves played, restored ones included.
func (g *Game) Ply() int {
	return len(g.priorNotation) + len(g.history)
}

// HalfmoveClock returns the plies since the last capture or pawn move.
func (g *Game) HalfmoveClock() int {
	return g.halfmoveClock
}

// FullmoveNumber returns the current move number, starting at 1.
func (g *Game) FullmoveNumber() int {
	return g.fullmoveNumber
}

// History returns the moves played since the game was created or restored.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}

// LastMove returns the most recent move, if any was played in this session.
func (g *Game) LastMove() (Move, bool) {
	if len(g.history) == 0 {
		return Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// Notation returns the algebraic notation of every ply of the game.
func (g *Game) Notation() []string {
	out := make([]string, 0, g.Ply())
	out = append(out, g.priorNotation...)
	for _, m := range g.history {
		out = append(out, m.String())
	}
	return out
}

// PositionKey returns the repetition key of the current position.
func (g *Game) PositionKey() uint64 {
	return g.positionKey()
}

func (g *Game) positionKey() uint64 {
	return hashing.PositionKey(g.board, g.active)
}
