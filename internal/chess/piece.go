package chess

import "fmt"

// PieceID is the stable identity a Board assigns to a piece on placement.
// Zero means the piece has never been placed.
type PieceID uint32

// Piece is a single chessman. Its position and moved flag are owned by the
// Board it is placed on; callers only read them.
type Piece struct {
	id       PieceID
	colour   Colour
	kind     PieceKind
	position Square
	moved    bool
}

// NewPiece creates an unplaced piece.
func NewPiece(colour Colour, kind PieceKind) *Piece {
	return &Piece{colour: colour, kind: kind}
}

// RestorePiece recreates a piece with a previously assigned identity.
// An id of zero behaves like NewPiece.
func RestorePiece(id PieceID, colour Colour, kind PieceKind, moved bool) *Piece {
	return &Piece{id: id, colour: colour, kind: kind, moved: moved}
}

// ID returns the identity assigned by the board, or zero.
func (p *Piece) ID() PieceID { return p.id }

// Colour returns the piece colour.
func (p *Piece) Colour() Colour { return p.colour }

// Kind returns the piece kind.
func (p *Piece) Kind() PieceKind { return p.kind }

// Position returns the square the piece was last placed or relocated to.
// Use Board.PositionOf to also confirm the piece is still on the board.
func (p *Piece) Position() Square { return p.position }

// Moved reports whether the piece has moved since it was placed.
func (p *Piece) Moved() bool { return p.moved }

// String returns a description such as "White Knight d4".
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s %s", p.colour, p.kind, p.position)
}

// PossibleMoves returns the piece's candidate destinations on b.
// They are pseudo-legal for every kind but the King, whose one-step
// destinations are also filtered for self-check.
func (p *Piece) PossibleMoves(b *Board) Squares {
	return ruleFor(p.kind).Destinations(b, p)
}

// State returns a value copy of the piece.
func (p *Piece) State() PieceState {
	return PieceState{
		ID:     p.id,
		Colour: p.colour,
		Kind:   p.kind,
		Square: p.position,
		Moved:  p.moved,
	}
}

// PieceState is a detached snapshot of a piece.
type PieceState struct {
	ID     PieceID   `json:"id"`
	Colour Colour    `json:"colour"`
	Kind   PieceKind `json:"kind"`
	Square Square    `json:"square"`
	Moved  bool      `json:"moved"`
}

// Empty reports whether the snapshot describes no piece.
func (s PieceState) Empty() bool {
	return s.Kind == NoKind
}

// CanPromote reports whether a pawn of colour standing on sq must promote.
func CanPromote(colour Colour, sq Square) bool {
	return sq.Valid() && sq.Row == colour.PromotionRow()
}
