// Package processing replays move lists through the engine and analyzes
// the resulting games.
package processing

import (
	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/engine"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Plies             int
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // position keys after each ply, starting position first

	HasInsufficientMaterial bool
	HasMaterialOdds         bool

	Outcome engine.Outcome
	Result  string

	// ClaimedResult is the result written on the input line, if any.
	ClaimedResult string
}

// FiftyMoveTriggered returns true if the game triggered the fifty-move rule.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// ResultMismatch reports whether the claimed result disagrees with the
// position. An unfinished game may carry any claimed result.
func (ga *GameAnalysis) ResultMismatch() bool {
	if ga.ClaimedResult == "" || ga.Result == "*" {
		return false
	}
	return ga.ClaimedResult != ga.Result
}

// ReplayOptions controls how a move list is replayed.
type ReplayOptions struct {
	// DefaultPromotion is used when a promoting move names no piece.
	DefaultPromotion chess.PieceKind

	// MaxPlies stops the replay after this many plies (0 = no limit).
	MaxPlies int
}

// ReplayMoves plays coordinate moves on g and analyzes the game as it goes.
// On an illegal move the analysis covers the plies played so far and the
// move's error is returned.
func ReplayMoves(g *engine.Game, line GameLine, opts ReplayOptions) (*GameAnalysis, error) {
	analysis := &GameAnalysis{
		ClaimedResult:   line.Result,
		HasMaterialOdds: g.DrawRules().MaterialOdds,
		Positions:       []uint64{g.PositionKey()},
	}
	defer analysis.finish(g)

	for _, text := range line.Moves {
		if opts.MaxPlies > 0 && analysis.Plies >= opts.MaxPlies {
			break
		}
		m, err := playMove(g, text, opts.DefaultPromotion)
		if err != nil {
			return analysis, err
		}
		analysis.Plies++
		analysis.Positions = append(analysis.Positions, g.PositionKey())

		if m.IsPromotion() && m.Promotion.Kind != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		rules := g.DrawRules()
		analysis.HasFiftyMoveRule = analysis.HasFiftyMoveRule || rules.FiftyMoveRule
		analysis.HasRepetition = analysis.HasRepetition || rules.ThreefoldRepetition
	}
	return analysis, nil
}

// finish records the final position's state.
func (ga *GameAnalysis) finish(g *engine.Game) {
	ga.HasInsufficientMaterial = engine.HasInsufficientMaterial(g.Board())
	ga.Outcome = g.Outcome()
	ga.Result = g.Result()
}

// playMove plays one coordinate move, substituting the default promotion
// when the text names none.
func playMove(g *engine.Game, text string, promotion chess.PieceKind) (*engine.Move, error) {
	from, to, kind, err := engine.ParseUCIMove(text)
	if err != nil {
		return nil, &errors.MoveError{Err: err, Ply: g.Ply() + 1}
	}
	if kind == chess.NoKind {
		kind = promotion
	}
	return g.Move(from, to, kind)
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	Err      error // The rejection, a *errors.MoveError
}

// ValidateLine checks that every move of a game line is legal from the
// standard starting position. promotion stands in for moves naming none.
func ValidateLine(line GameLine, promotion chess.PieceKind) *ValidationResult {
	result := &ValidationResult{Valid: true}
	g := engine.NewGame()
	for i, text := range line.Moves {
		if _, err := playMove(g, text, promotion); err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.Err = err
			return result
		}
	}
	return result
}
