package engine

import "github.com/lgbarn/chess-core-go/internal/chess"

// DrawRuleResult contains the results of draw rule detection.
type DrawRuleResult struct {
	// FiftyMoveRule is true once 100 plies have passed without a pawn
	// move or capture.
	FiftyMoveRule bool

	// ThreefoldRepetition is true if the current position occurred three
	// or more times.
	ThreefoldRepetition bool

	// InsufficientMaterial is true if neither side can deliver mate.
	InsufficientMaterial bool

	// MaterialOdds is true if the position does not hold standard
	// starting material.
	MaterialOdds bool
}

// Any reports whether a draw may be claimed.
func (r DrawRuleResult) Any() bool {
	return r.FiftyMoveRule || r.ThreefoldRepetition || r.InsufficientMaterial
}

// DrawRules analyzes the current position for the draw conditions.
func (g *Game) DrawRules() DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule:        g.halfmoveClock >= 100,
		ThreefoldRepetition:  g.repetitions.Count(g.positionKey()) >= 3,
		InsufficientMaterial: HasInsufficientMaterial(g.board),
		MaterialOdds:         !HasStandardMaterial(g.board),
	}
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board chess.Reader) bool {
	var whitePieces, blackPieces []chess.PieceKind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, p := range board.Pieces() {
		kind := p.Kind()
		switch kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			// Any pawn, rook, or queen means sufficient material
			return false
		}

		if p.Colour() == chess.White {
			whitePieces = append(whitePieces, kind)
			if kind == chess.Bishop {
				whiteBishopOnLight = p.Position().IsLight()
			}
		} else {
			blackPieces = append(blackPieces, kind)
			if kind == chess.Bishop {
				blackBishopOnLight = p.Position().IsLight()
			}
		}
	}

	minor := func(kind chess.PieceKind) bool {
		return kind == chess.Bishop || kind == chess.Knight
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return minor(blackPieces[0])
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return minor(whitePieces[0])
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// HasStandardMaterial reports whether each side has exactly the standard
// starting set of pieces.
func HasStandardMaterial(board chess.Reader) bool {
	expected := map[chess.PieceKind]int{
		chess.Pawn:   8,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Rook:   2,
		chess.Queen:  1,
		chess.King:   1,
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for kind, want := range expected {
			if len(board.PiecesOfKindAndColour(kind, colour)) != want {
				return false
			}
		}
	}
	return true
}
