// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// BoardSize is the number of ranks and files.
const BoardSize = 8

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row step of a pawn of this colour.
// Row 0 is rank 8, so White pawns move towards lower rows.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRow returns the row of the colour's back rank.
func (c Colour) HomeRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PawnRow returns the row the colour's pawns start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PromotionRow returns the row on which the colour's pawns promote.
func (c Colour) PromotionRow() int {
	return c.Opposite().HomeRow()
}

// MarshalText encodes the colour as "white" or "black".
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText accepts "white", "black", "w" or "b" in any case.
func (c *Colour) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "white", "w":
		*c = White
	case "black", "b":
		*c = Black
	default:
		return fmt.Errorf("colour %q: %w", text, errors.ErrParseFailure)
	}
	return nil
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota // No piece, or no promotion choice
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionChoice reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotionChoice() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// ParsePieceKind reads a piece letter (either case) or a full kind name.
// The empty string yields NoKind.
func ParsePieceKind(text string) (PieceKind, error) {
	if text == "" {
		return NoKind, nil
	}
	if len(text) == 1 {
		switch text[0] {
		case 'p', 'P':
			return Pawn, nil
		case 'n', 'N':
			return Knight, nil
		case 'b', 'B':
			return Bishop, nil
		case 'r', 'R':
			return Rook, nil
		case 'q', 'Q':
			return Queen, nil
		case 'k', 'K':
			return King, nil
		}
	}
	for k := Pawn; k <= King; k++ {
		if strings.EqualFold(text, kindNames[k]) {
			return k, nil
		}
	}
	return NoKind, fmt.Errorf("piece kind %q: %w", text, errors.ErrParseFailure)
}

// MarshalText encodes the kind as its lower-case name; NoKind encodes as "".
func (k PieceKind) MarshalText() ([]byte, error) {
	if k == NoKind {
		return []byte{}, nil
	}
	return []byte(strings.ToLower(k.String())), nil
}

// UnmarshalText is the inverse of MarshalText and also accepts letters.
func (k *PieceKind) UnmarshalText(text []byte) error {
	kind, err := ParsePieceKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	PawnMove MoveClass = iota
	PawnMoveWithPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
)

// String returns a short name for the move class.
func (m MoveClass) String() string {
	switch m {
	case PawnMove:
		return "pawn"
	case PawnMoveWithPromotion:
		return "promotion"
	case EnPassantPawnMove:
		return "en-passant"
	case PieceMove:
		return "piece"
	case KingsideCastle:
		return "kingside-castle"
	case QueensideCastle:
		return "queenside-castle"
	}
	return "unknown"
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Suffix returns the notation suffix for the status.
func (c CheckStatus) Suffix() string {
	switch c {
	case Check:
		return "+"
	case Checkmate:
		return "#"
	}
	return ""
}
