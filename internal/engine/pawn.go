package engine

import (
	"fmt"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// enPassantVictim returns the pawn captured when pawn moves onto the live en
// passant target to, or nil if the move is not an en passant capture.
func enPassantVictim(b chess.Reader, pawn *chess.Piece, to chess.Square) *chess.Piece {
	target, ok := b.EnPassantTarget()
	if !ok || pawn.Kind() != chess.Pawn || to != target || to.Col == pawn.Position().Col {
		return nil
	}
	if b.PieceAt(to) != nil {
		return nil
	}
	victim := b.PieceAt(to.Offset(-pawn.Colour().Forward(), 0))
	if victim == nil || victim.Kind() != chess.Pawn || victim.Colour() == pawn.Colour() {
		return nil
	}
	return victim
}

// updateEnPassant sets the target after a two-square pawn advance and clears
// it after any other move.
func updateEnPassant(b *chess.Board, piece *chess.Piece, from, to chess.Square) {
	dir := piece.Colour().Forward()
	if piece.Kind() == chess.Pawn && to.Col == from.Col && to.Row-from.Row == 2*dir {
		must(b.SetEnPassantTarget(from.Offset(dir, 0)))
		return
	}
	b.ClearEnPassantTarget()
}

// promotionChoice resolves the caller's promotion choice.
func promotionChoice(kind chess.PieceKind) (chess.PieceKind, error) {
	if kind == chess.NoKind {
		return chess.Queen, nil // Default to queen
	}
	if !kind.IsPromotionChoice() {
		return chess.NoKind, fmt.Errorf("promote to %s: %w: %w", kind, errors.ErrInvalidMove, errors.ErrInvalidPromotion)
	}
	return kind, nil
}

// promote retires the pawn standing on its promotion square and places a new
// piece of the chosen kind under a fresh identity.
func promote(b *chess.Board, pawn *chess.Piece, kind chess.PieceKind) *chess.Piece {
	sq := pawn.Position()
	_, err := b.TakePiece(sq)
	must(err)
	promoted := chess.NewPiece(pawn.Colour(), kind)
	must(b.PlacePiece(promoted, sq))
	b.MarkMoved(promoted)
	return promoted
}
