package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// State is a direct encoding of a game: every piece with its identity and
// square, the en passant target, the side to move, the clocks and the
// notation of the plies played so far.
type State struct {
	Pieces         []chess.PieceState `json:"pieces"`
	EnPassant      *chess.Square      `json:"en_passant,omitempty"`
	Active         chess.Colour       `json:"active"`
	HalfmoveClock  int                `json:"halfmove_clock"`
	FullmoveNumber int                `json:"fullmove_number"`
	Notation       []string           `json:"notation"`
}

// State captures the game for persistence.
func (g *Game) State() State {
	s := State{
		Active:         g.active,
		HalfmoveClock:  g.halfmoveClock,
		FullmoveNumber: g.fullmoveNumber,
		Notation:       g.Notation(),
	}
	for _, p := range g.board.Pieces() {
		s.Pieces = append(s.Pieces, p.State())
	}
	if target, ok := g.board.EnPassantTarget(); ok {
		s.EnPassant = &target
	}
	return s
}

// RestoreGame rebuilds a game from a State. Piece identities are kept.
// The repetition history restarts at the restored position.
func RestoreGame(s State) (*Game, error) {
	if s.Active != chess.White && s.Active != chess.Black {
		return nil, fmt.Errorf("active colour %d: %w", s.Active, errors.ErrInvalidState)
	}
	if s.HalfmoveClock < 0 || s.FullmoveNumber < 1 {
		return nil, fmt.Errorf("clocks %d/%d: %w", s.HalfmoveClock, s.FullmoveNumber, errors.ErrInvalidState)
	}

	board := chess.NewBoard()
	for _, ps := range s.Pieces {
		if ps.Kind == chess.NoKind {
			return nil, fmt.Errorf("piece %d on %s has no kind: %w", ps.ID, ps.Square, errors.ErrInvalidState)
		}
		if err := board.PlacePiece(chess.RestorePiece(ps.ID, ps.Colour, ps.Kind, ps.Moved), ps.Square); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrInvalidState, err)
		}
	}
	if s.EnPassant != nil {
		if err := board.SetEnPassantTarget(*s.EnPassant); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrInvalidState, err)
		}
	}

	g, err := NewGameFromBoard(board, s.Active)
	if err != nil {
		return nil, err
	}
	g.halfmoveClock = s.HalfmoveClock
	g.fullmoveNumber = s.FullmoveNumber
	g.priorNotation = append([]string(nil), s.Notation...)
	return g, nil
}
