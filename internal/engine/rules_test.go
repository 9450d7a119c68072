package engine

import (
	"testing"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/testutil"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   bool // true = insufficient material
	}{
		{"K vs K", []string{"ke8", "Ke1"}, true},
		{"K+B vs K", []string{"ke8", "Ke1", "Bf1"}, true},
		{"K+N vs K", []string{"ke8", "Ke1", "Nf1"}, true},
		{"K vs K+b", []string{"ke8", "bg8", "Ke1"}, true},
		{"K vs K+n", []string{"ke8", "ng8", "Ke1"}, true},
		{"K+B vs K+B same color", []string{"ka8", "bf8", "Bc1", "Ke1"}, true},
		{"K+R vs K", []string{"ke8", "Ke1", "Rf1"}, false},
		{"K+Q vs K", []string{"ke8", "Ke1", "Qf1"}, false},
		{"K+P vs K", []string{"ke8", "Ke1", "Pe2"}, false},
		{"K+B vs K+B opposite color", []string{"ka8", "bf8", "Bd1", "Ke1"}, false},
		{"K+B+B vs K", []string{"ke8", "Bc1", "Ke1", "Bf1"}, false},
		{"K+N vs K+N", []string{"ke8", "nb8", "Ke1", "Nb1"}, false},
		{"standard starting position", nil, false}, // nil tokens means use initial board
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := chess.NewStandardBoard()
			if tt.tokens != nil {
				board = testutil.MustBoard(t, tt.tokens...)
			}

			got := HasInsufficientMaterial(board)
			if got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestHasStandardMaterial tests material odds detection
func TestHasStandardMaterial(t *testing.T) {
	if !HasStandardMaterial(chess.NewStandardBoard()) {
		t.Errorf("HasStandardMaterial(initial board) = false, want true")
	}

	// Position with missing rook
	board := chess.NewStandardBoard()
	if _, err := board.TakePiece(testutil.Sq(t, "h1")); err != nil {
		t.Fatalf("TakePiece(h1) error: %v", err)
	}
	if HasStandardMaterial(board) {
		t.Errorf("HasStandardMaterial(position with missing rook) = true, want false")
	}

	if HasStandardMaterial(testutil.MustBoard(t, "ke8", "Ke1")) {
		t.Errorf("HasStandardMaterial(K vs K) = true, want false")
	}
}

// TestDrawRules_NewGame tests that a fresh game has nothing to claim
func TestDrawRules_NewGame(t *testing.T) {
	result := NewGame().DrawRules()

	if result.Any() {
		t.Errorf("DrawRules(new game).Any() = true, want false")
	}
	if result.MaterialOdds {
		t.Errorf("DrawRules(new game).MaterialOdds = true, want false")
	}
}

// TestDrawRules_MaterialOdds tests reporting a game started without a rook
func TestDrawRules_MaterialOdds(t *testing.T) {
	board := chess.NewStandardBoard()
	if _, err := board.TakePiece(testutil.Sq(t, "a1")); err != nil {
		t.Fatalf("TakePiece(a1) error: %v", err)
	}
	g, err := NewGameFromBoard(board, chess.White)
	if err != nil {
		t.Fatalf("NewGameFromBoard() error: %v", err)
	}

	result := g.DrawRules()
	if !result.MaterialOdds {
		t.Errorf("DrawRules(game with missing rook).MaterialOdds = false, want true")
	}
	if result.Any() {
		t.Errorf("DrawRules(game with missing rook).Any() = true, want false")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
		draw    bool
	}{
		{Ongoing, "ongoing", false},
		{CheckmateOutcome, "checkmate", false},
		{StalemateOutcome, "stalemate", true},
		{FiftyMoveDraw, "fifty-move rule", true},
		{RepetitionDraw, "threefold repetition", true},
		{InsufficientMaterialDraw, "insufficient material", true},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			testutil.AssertEqual(t, tt.outcome.String(), tt.want)
			testutil.AssertEqual(t, tt.outcome.IsDraw(), tt.draw)
		})
	}
}
