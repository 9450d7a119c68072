package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// LegalMoves returns the legal destinations of the piece on sq, sorted.
// Empty or off-board squares have none. Turn order is not considered.
func (g *Game) LegalMoves(sq chess.Square) chess.Squares {
	piece := g.board.PieceAt(sq)
	if piece == nil {
		return nil
	}
	return g.legalDestinations(piece).Sorted()
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (g *Game) HasLegalMoves(colour chess.Colour) bool {
	for _, piece := range g.board.PiecesOfColour(colour) {
		if len(g.legalDestinations(piece)) > 0 {
			return true
		}
	}
	return false
}

// Candidate is one legal move available to the active colour.
type Candidate struct {
	From chess.Square
	To   chess.Square
}

// Candidates lists every legal move of the active colour, by piece identity
// and then destination. A promoting pawn move appears once per destination;
// the promotion piece is chosen when the move is played.
func (g *Game) Candidates() []Candidate {
	var out []Candidate
	for _, piece := range g.board.PiecesOfColour(g.active) {
		from := piece.Position()
		for _, to := range g.legalDestinations(piece).Sorted() {
			out = append(out, Candidate{From: from, To: to})
		}
	}
	return out
}

// legalDestinations filters a piece's candidate squares down to those that
// do not leave its own King in check.
func (g *Game) legalDestinations(piece *chess.Piece) chess.Squares {
	var out chess.Squares
	for _, to := range piece.PossibleMoves(g.board) {
		if !g.board.MoveWouldExposeKing(piece, to) {
			out = append(out, to)
		}
	}
	return out
}
