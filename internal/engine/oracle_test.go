package engine

import (
	"sort"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess-core-go/internal/testutil"
)

// candidateSet returns the active colour's legal moves as sorted "e2e4"
// pairs. Promotion choices collapse into one entry.
func candidateSet(g *Game) []string {
	seen := make(map[string]bool)
	for _, c := range g.Candidates() {
		seen[c.From.String()+c.To.String()] = true
	}
	return sortedKeys(seen)
}

func referenceSet(ref *notnil.Game) []string {
	seen := make(map[string]bool)
	for _, m := range ref.ValidMoves() {
		seen[m.S1().String()+m.S2().String()] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// referenceMove finds the reference library's move for a coordinate pair.
func referenceMove(t *testing.T, ref *notnil.Game, uci string) *notnil.Move {
	t.Helper()
	for _, m := range ref.ValidMoves() {
		if m.S1().String()+m.S2().String() == uci[:4] {
			return m
		}
	}
	t.Fatalf("reference library rejects %s", uci)
	return nil
}

func TestLegalMovesMatchReference(t *testing.T) {
	scripts := map[string][]string{
		"en passant and both castles": {
			"e2e4", "d7d5", "e4e5", "f7f5", "e5f6", "g8f6",
			"d2d4", "e7e6", "b1c3", "f8e7", "c1g5", "e8g8",
			"d1d2", "b8c6", "e1c1", "c8d7",
		},
		"open game with checks": {
			"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6",
			"b5c6", "d7c6", "f3e5", "d8d4", "e5f3", "d4e4",
			"d1e2", "e4e2", "e1e2", "c8g4",
		},
	}

	for name, script := range scripts {
		t.Run(name, func(t *testing.T) {
			g := NewGame()
			ref := notnil.NewGame()

			for _, mv := range script {
				testutil.AssertEqual(t, candidateSet(g), referenceSet(ref), "before "+mv)
				if err := ref.Move(referenceMove(t, ref, mv)); err != nil {
					t.Fatalf("reference move %s: %v", mv, err)
				}
				play(t, g, mv)
			}
			testutil.AssertEqual(t, candidateSet(g), referenceSet(ref), "final position")
		})
	}
}
