package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// castleRook moves the castling rook to the square the King passes over and
// marks it moved. The King itself is moved by the caller.
func castleRook(b *chess.Board, king *chess.Piece, class chess.MoveClass) {
	row := king.Position().Row
	rookFrom, rookTo := castleRookSquares(row, class)
	rook := b.PieceAt(rookFrom)
	must(b.Relocate(rook, rookTo))
	b.MarkMoved(rook)
}

// castleRookSquares returns the rook's origin and destination for a castle.
func castleRookSquares(row int, class chess.MoveClass) (from, to chess.Square) {
	if class == chess.KingsideCastle {
		return chess.NewSquare(row, 7), chess.NewSquare(row, 5)
	}
	return chess.NewSquare(row, 0), chess.NewSquare(row, 3)
}
