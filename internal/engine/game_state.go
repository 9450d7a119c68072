package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// Outcome describes whether and how a game has ended.
type Outcome int

const (
	Ongoing Outcome = iota
	CheckmateOutcome
	StalemateOutcome
	FiftyMoveDraw
	RepetitionDraw
	InsufficientMaterialDraw
)

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case CheckmateOutcome:
		return "checkmate"
	case StalemateOutcome:
		return "stalemate"
	case FiftyMoveDraw:
		return "fifty-move rule"
	case RepetitionDraw:
		return "threefold repetition"
	case InsufficientMaterialDraw:
		return "insufficient material"
	}
	return "unknown"
}

// IsDraw reports whether the outcome is drawn.
func (o Outcome) IsDraw() bool {
	return o != Ongoing && o != CheckmateOutcome
}

// InCheck returns true if the given colour's king is in check.
func (g *Game) InCheck(colour chess.Colour) bool {
	return g.board.KingInCheck(colour)
}

// Checkmate returns true if colour is in check and has no legal move.
func (g *Game) Checkmate(colour chess.Colour) bool {
	return g.InCheck(colour) && !g.HasLegalMoves(colour)
}

// Stalemate returns true if colour is not in check but has no legal move.
func (g *Game) Stalemate(colour chess.Colour) bool {
	return !g.InCheck(colour) && !g.HasLegalMoves(colour)
}

// Outcome reports the state of the game for the side to move. Draw
// conditions are reported, never enforced: play may continue.
func (g *Game) Outcome() Outcome {
	switch {
	case g.Checkmate(g.active):
		return CheckmateOutcome
	case g.Stalemate(g.active):
		return StalemateOutcome
	case HasInsufficientMaterial(g.board):
		return InsufficientMaterialDraw
	case g.halfmoveClock >= 100:
		return FiftyMoveDraw
	case g.repetitions.Count(g.positionKey()) >= 3:
		return RepetitionDraw
	}
	return Ongoing
}

// Result returns the game result in PGN form: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Result() string {
	outcome := g.Outcome()
	switch {
	case outcome == CheckmateOutcome && g.active == chess.Black:
		return "1-0"
	case outcome == CheckmateOutcome:
		return "0-1"
	case outcome.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}
