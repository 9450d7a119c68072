package chess

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

var backRank = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupStandard places the standard starting position on an empty board.
// White pieces are placed first, so White's identities are 1-16.
func SetupStandard(b *Board) error {
	if b.Len() != 0 {
		return fmt.Errorf("setup: board has %d pieces: %w", b.Len(), errors.ErrPositionOccupied)
	}
	for _, colour := range []Colour{White, Black} {
		for col, kind := range backRank {
			if err := b.PlacePiece(NewPiece(colour, kind), Square{Row: colour.HomeRow(), Col: col}); err != nil {
				return err
			}
		}
		for col := 0; col < BoardSize; col++ {
			if err := b.PlacePiece(NewPiece(colour, Pawn), Square{Row: colour.PawnRow(), Col: col}); err != nil {
				return err
			}
		}
	}
	b.ClearEnPassantTarget()
	return nil
}

// NewStandardBoard returns a board in the standard starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	must(SetupStandard(b))
	return b
}
