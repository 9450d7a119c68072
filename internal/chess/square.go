package chess

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Square addresses one cell of the board.
// Row 0 is rank 8 and Col 0 is file a.
type Square struct {
	Row int
	Col int
}

// NewSquare returns the square at the given row and column.
func NewSquare(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square dRow rows and dCol columns away.
// The result may be off the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte('a' + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// String returns algebraic form such as "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare reads algebraic form such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrParseFailure)
	}
	file, rank := text[0], text[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: %w", text, errors.ErrInvalidPosition)
	}
	return Square{Row: int('8' - rank), Col: int(file - 'a')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed positions in setup code and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// MarshalText encodes the square in algebraic form.
func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("square %s: %w", s, errors.ErrInvalidPosition)
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes algebraic form.
func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// Squares is a set of destination squares.
type Squares []Square

// Contains reports whether sq is in the set.
func (ss Squares) Contains(sq Square) bool {
	for _, s := range ss {
		if s == sq {
			return true
		}
	}
	return false
}

// Sorted returns a copy ordered by row, then column.
func (ss Squares) Sorted() Squares {
	out := make(Squares, len(ss))
	copy(out, ss)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Strings returns the algebraic form of every square, in order.
func (ss Squares) Strings() []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.String()
	}
	return out
}
