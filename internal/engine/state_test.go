package engine

import (
	"encoding/json"
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

func TestRestoreGameContinuesPlay(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "c7c5", "e4e5", "d7d5")

	data, err := json.Marshal(g.State())
	testutil.AssertNoError(t, err)

	var s State
	testutil.AssertNoError(t, json.Unmarshal(data, &s))
	restored, err := RestoreGame(s)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, restored.BoardSnapshot(), g.BoardSnapshot())
	testutil.AssertEqual(t, restored.ActiveColour(), chess.White)
	testutil.AssertEqual(t, restored.Ply(), 4)
	testutil.AssertEqual(t, restored.FullmoveNumber(), 3)
	testutil.AssertEqual(t, restored.HalfmoveClock(), 0)
	testutil.AssertEqual(t, restored.PositionKey(), g.PositionKey())
	testutil.AssertEqual(t, restored.Notation(), g.Notation())

	// The en passant target survives the round trip.
	m, err := restored.MoveUCI("e5d6")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.String(), "exd6 e.p.")
	testutil.AssertEqual(t, m.Ply, 5)
	testutil.AssertEqual(t, restored.Notation(), []string{"e4", "c5", "e5", "d5", "exd6 e.p."})

	before := g.Board().PieceAt(testutil.Sq(t, "e1"))
	after := restored.Board().PieceAt(testutil.Sq(t, "e1"))
	testutil.AssertEqual(t, after.ID(), before.ID())

	play(t, restored, "c5c4")
	testutil.AssertConsistent(t, restored.board)
}

func TestRestoreGameRejectsInvalidState(t *testing.T) {
	valid := NewGame().State()

	tests := []struct {
		name   string
		mutate func(s *State)
	}{
		{"bad colour", func(s *State) { s.Active = chess.Colour(7) }},
		{"negative clock", func(s *State) { s.HalfmoveClock = -1 }},
		{"zero move number", func(s *State) { s.FullmoveNumber = 0 }},
		{"kindless piece", func(s *State) { s.Pieces[0].Kind = chess.NoKind }},
		{"stacked pieces", func(s *State) { s.Pieces[1].Square = s.Pieces[0].Square }},
		{"duplicate identity", func(s *State) { s.Pieces[1].ID = s.Pieces[0].ID }},
		{"off board", func(s *State) { s.Pieces[0].Square = chess.NewSquare(8, 8) }},
		{"occupied en passant", func(s *State) {
			sq := chess.MustParseSquare("e2")
			s.EnPassant = &sq
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			s.Pieces = append([]chess.PieceState(nil), valid.Pieces...)
			tt.mutate(&s)

			g, err := RestoreGame(s)

			testutil.AssertNil(t, g)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidState)
		})
	}
}
