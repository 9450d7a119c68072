package testutil

import (
	"fmt"
	"testing"
	"unicode"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/chess-core-go/internal/chess"
)

// dumper prints boards deterministically: no addresses, sorted map keys.
// Stringer output is skipped so every field, identity and moved flag
// included, reaches the dump.
var dumper = spew.ConfigState{
	Indent:                  " ",
	DisableMethods:          true,
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// ParsePlacement reads a piece token such as "Ke1" (White King on e1) or
// "pd7" (Black pawn on d7). Upper-case letters are White.
func ParsePlacement(token string) (chess.Colour, chess.PieceKind, chess.Square, error) {
	if len(token) != 3 {
		return 0, chess.NoKind, chess.Square{}, fmt.Errorf("placement %q: want letter and square", token)
	}
	colour := chess.White
	if unicode.IsLower(rune(token[0])) {
		colour = chess.Black
	}
	kind, err := chess.ParsePieceKind(token[:1])
	if err != nil {
		return 0, chess.NoKind, chess.Square{}, err
	}
	sq, err := chess.ParseSquare(token[1:])
	if err != nil {
		return 0, chess.NoKind, chess.Square{}, err
	}
	return colour, kind, sq, nil
}

// MustBoard builds a board from placement tokens, in order, so the first
// token receives identity 1.
func MustBoard(t testing.TB, tokens ...string) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, tok := range tokens {
		MustPlace(t, b, tok)
	}
	return b
}

// MustPlace places one piece described by a placement token.
func MustPlace(t testing.TB, b *chess.Board, token string) *chess.Piece {
	t.Helper()
	colour, kind, sq, err := ParsePlacement(token)
	if err != nil {
		t.Fatalf("bad placement: %v", err)
	}
	p := chess.NewPiece(colour, kind)
	if err := b.PlacePiece(p, sq); err != nil {
		t.Fatalf("placing %s: %v", token, err)
	}
	return p
}

// Sq parses an algebraic square, failing the test on bad input.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// SquareNames returns the sorted algebraic names of a square set.
func SquareNames(ss chess.Squares) []string {
	return ss.Sorted().Strings()
}

// Fingerprint dumps the complete board state, grid, registry, piece
// positions, moved flags and en passant target included. Two boards with
// equal fingerprints are indistinguishable.
func Fingerprint(b *chess.Board) string {
	return dumper.Sdump(b)
}

// AssertConsistent fails when the board's grid and registry disagree,
// dumping every piece to help locate the breach.
func AssertConsistent(t testing.TB, b *chess.Board) {
	t.Helper()
	if err := b.Validate(); err != nil {
		states := make([]chess.PieceState, 0, b.Len())
		for _, p := range b.Pieces() {
			states = append(states, p.State())
		}
		t.Errorf("board inconsistent: %v\npieces:\n%s", err, dumper.Sdump(states))
	}
}

// AssertUnchanged fails when b no longer matches an earlier fingerprint.
func AssertUnchanged(t testing.TB, before string, b *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	after := Fingerprint(b)
	if before != after {
		msg := formatMessage(msgAndArgs...)
		if msg == "" {
			msg = "board changed"
		}
		t.Errorf("%s:\nbefore:\n%s\nafter:\n%s", msg, before, after)
	}
}
