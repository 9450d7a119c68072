package chess

import (
	"strconv"
	"strings"
	"unicode"
)

// Occupant describes what stands on a square. Kind is NoKind when empty.
type Occupant struct {
	Colour Colour
	Kind   PieceKind
}

// Empty reports whether the square is unoccupied.
func (o Occupant) Empty() bool {
	return o.Kind == NoKind
}

// Symbol returns the piece letter, upper case for White and lower case for
// Black, or '.' for an empty square.
func (o Occupant) Symbol() rune {
	if o.Empty() {
		return '.'
	}
	r := rune(o.Kind.Letter())
	if o.Colour == Black {
		return unicode.ToLower(r)
	}
	return r
}

// Snapshot is a read-only copy of the grid, indexed [row][col].
type Snapshot [BoardSize][BoardSize]Occupant

// Snapshot copies the board's grid.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.grid[row][col]; p != nil {
				s[row][col] = Occupant{Colour: p.colour, Kind: p.kind}
			}
		}
	}
	return s
}

// At returns the occupant of sq; off-board squares are empty.
func (s Snapshot) At(sq Square) Occupant {
	if !sq.Valid() {
		return Occupant{}
	}
	return s[sq.Row][sq.Col]
}

// Placement returns the piece placement as ranks 8 to 1 separated by '/',
// with runs of empty squares written as digits.
func (s Snapshot) Placement() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < BoardSize; col++ {
			o := s[row][col]
			if o.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(o.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	return sb.String()
}

// String renders the grid as eight lines of symbols, rank 8 first.
func (s Snapshot) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteRune(s[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
