package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-core-go/internal/chess"
	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Move is the record of one executed ply. It is created by Game.Move and
// never modified afterwards.
type Move struct {
	// Ply is the 1-based half-move number.
	Ply int

	// Class of move (pawn move, piece move, castle, etc.).
	Class chess.MoveClass

	// Source and destination squares.
	From chess.Square
	To   chess.Square

	// The moving piece as it stood before the move.
	Piece chess.PieceState

	// The piece captured; Kind is NoKind when nothing was taken.
	Captured chess.PieceState

	// En passant target in force before the move, if any.
	EnPassantBefore    chess.Square
	HadEnPassantTarget bool

	// The piece promoted to; Kind is NoKind when not a promotion.
	Promotion chess.PieceState

	// Origin file and/or rank needed to tell identical pieces apart.
	Disambiguation string

	// Whether this move gives check or checkmate.
	CheckStatus chess.CheckStatus
}

// IsCapture reports whether a piece was taken, en passant included.
func (m Move) IsCapture() bool {
	return !m.Captured.Empty()
}

// IsEnPassant reports whether the move was an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Class == chess.EnPassantPawnMove
}

// IsCastle reports whether the move was either castle.
func (m Move) IsCastle() bool {
	return m.Class == chess.KingsideCastle || m.Class == chess.QueensideCastle
}

// IsPromotion reports whether a pawn was promoted.
func (m Move) IsPromotion() bool {
	return m.Class == chess.PawnMoveWithPromotion
}

// String returns the move in algebraic notation, e.g. "Nbd7", "exd6 e.p.",
// "e8=Q+" or "O-O-O#".
func (m Move) String() string {
	var sb strings.Builder
	switch m.Class {
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		if m.Piece.Kind == chess.Pawn {
			if m.IsCapture() {
				sb.WriteByte(m.From.File())
			}
		} else {
			sb.WriteByte(m.Piece.Kind.Letter())
			sb.WriteString(m.Disambiguation)
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsEnPassant() {
			sb.WriteString(" e.p.")
		}
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Kind.Letter())
		}
	}
	sb.WriteString(m.CheckStatus.Suffix())
	return sb.String()
}

// UCI returns coordinate notation such as "e2e4" or "e7e8q".
func (m Move) UCI() string {
	text := m.From.String() + m.To.String()
	if m.IsPromotion() {
		text += string(unicode.ToLower(rune(m.Promotion.Kind.Letter())))
	}
	return text
}

// ParseUCIMove reads coordinate notation: origin, destination and an
// optional promotion letter, e.g. "g1f3" or "a7a8n".
func ParseUCIMove(text string) (from, to chess.Square, promotion chess.PieceKind, err error) {
	if len(text) != 4 && len(text) != 5 {
		return from, to, chess.NoKind, fmt.Errorf("move %q: %w", text, errors.ErrParseFailure)
	}
	if from, err = chess.ParseSquare(text[0:2]); err != nil {
		return from, to, chess.NoKind, fmt.Errorf("move %q: %w", text, err)
	}
	if to, err = chess.ParseSquare(text[2:4]); err != nil {
		return from, to, chess.NoKind, fmt.Errorf("move %q: %w", text, err)
	}
	if len(text) == 5 {
		promotion, err = chess.ParsePieceKind(text[4:])
		if err != nil {
			return from, to, chess.NoKind, fmt.Errorf("move %q: %w", text, err)
		}
		if !promotion.IsPromotionChoice() {
			return from, to, chess.NoKind, fmt.Errorf("move %q: %w", text, errors.ErrInvalidPromotion)
		}
	}
	return from, to, promotion, nil
}
