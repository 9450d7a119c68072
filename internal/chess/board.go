package chess

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-core-go/internal/errors"
)

// Board holds the 8x8 grid and the registry of pieces standing on it.
// Every occupied cell's piece is registered exactly once under its ID with a
// matching position, and every registered piece sits on its cell.
type Board struct {
	grid     [BoardSize][BoardSize]*Piece
	registry map[PieceID]*Piece

	// Square skipped by the preceding two-square pawn advance, if any.
	enPassant    Square
	hasEnPassant bool

	// Last identity handed out. Identities are never reused.
	nextID PieceID
}

// Reader is the read-only view of a Board handed to callers.
type Reader interface {
	PieceAt(sq Square) *Piece
	PositionOf(p *Piece) (Square, error)
	Pieces() []*Piece
	PiecesOfColour(colour Colour) []*Piece
	PiecesOfKindAndColour(kind PieceKind, colour Colour) []*Piece
	FindKing(colour Colour) (*Piece, error)
	EnPassantTarget() (Square, bool)
	CastlingAvailability(colour Colour) (kingside, queenside bool)
	SquareUnderAttack(sq Square, colour Colour) bool
	KingInCheck(colour Colour) bool
	Snapshot() Snapshot
	Len() int
}

var _ Reader = (*Board)(nil)

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{registry: make(map[PieceID]*Piece)}
}

// PlacePiece puts an unplaced piece on an empty square and registers it.
// Pieces without an identity are given a fresh one.
func (b *Board) PlacePiece(p *Piece, sq Square) error {
	if p == nil {
		return fmt.Errorf("place: %w", errors.ErrNoPiece)
	}
	if !sq.Valid() {
		return fmt.Errorf("place %s: %w", sq, errors.ErrInvalidPosition)
	}
	if b.grid[sq.Row][sq.Col] != nil {
		return fmt.Errorf("place %s: %w", sq, errors.ErrPositionOccupied)
	}
	if p.id != 0 {
		if _, ok := b.registry[p.id]; ok {
			return fmt.Errorf("place %s: piece %d: %w", sq, p.id, errors.ErrDuplicatePiece)
		}
		if p.id > b.nextID {
			b.nextID = p.id
		}
	} else {
		b.nextID++
		p.id = b.nextID
	}
	p.position = sq
	b.grid[sq.Row][sq.Col] = p
	b.registry[p.id] = p
	return nil
}

// TakePiece removes whatever stands on sq from the grid and the registry.
// Taking from an empty square returns nil and no error.
func (b *Board) TakePiece(sq Square) (*Piece, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("take %s: %w", sq, errors.ErrInvalidPosition)
	}
	p := b.grid[sq.Row][sq.Col]
	if p == nil {
		return nil, nil
	}
	b.grid[sq.Row][sq.Col] = nil
	delete(b.registry, p.id)
	return p, nil
}

// Relocate moves a registered piece to dest without any legality checks.
// The destination must be empty: captured pieces are taken first.
func (b *Board) Relocate(p *Piece, dest Square) error {
	if !b.registered(p) {
		return fmt.Errorf("relocate: %w", errors.ErrNoPiece)
	}
	if !dest.Valid() {
		return fmt.Errorf("relocate to %s: %w", dest, errors.ErrInvalidPosition)
	}
	if occupant := b.grid[dest.Row][dest.Col]; occupant != nil && occupant != p {
		return fmt.Errorf("relocate to %s: %w", dest, errors.ErrPositionOccupied)
	}
	from := p.position
	b.grid[from.Row][from.Col] = nil
	b.grid[dest.Row][dest.Col] = p
	p.position = dest
	return nil
}

// MarkMoved records that p has moved.
func (b *Board) MarkMoved(p *Piece) {
	if p != nil {
		p.moved = true
	}
}

// EnPassantTarget returns the square a pawn may capture onto en passant.
func (b *Board) EnPassantTarget() (Square, bool) {
	return b.enPassant, b.hasEnPassant
}

// SetEnPassantTarget records the square skipped by a two-square advance.
func (b *Board) SetEnPassantTarget(sq Square) error {
	if !sq.Valid() {
		return fmt.Errorf("en passant target %s: %w", sq, errors.ErrInvalidPosition)
	}
	b.enPassant = sq
	b.hasEnPassant = true
	return nil
}

// ClearEnPassantTarget forgets any en passant target.
func (b *Board) ClearEnPassantTarget() {
	b.enPassant = Square{}
	b.hasEnPassant = false
}

// PieceAt returns the piece on sq, or nil for empty or off-board squares.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.grid[sq.Row][sq.Col]
}

// PositionOf returns the square of a piece standing on this board.
func (b *Board) PositionOf(p *Piece) (Square, error) {
	if !b.registered(p) {
		return Square{}, fmt.Errorf("position of %v: %w", p, errors.ErrNoPiece)
	}
	return p.position, nil
}

// Pieces returns every piece on the board in identity order.
func (b *Board) Pieces() []*Piece {
	return b.filter(func(*Piece) bool { return true })
}

// PiecesOfColour returns the pieces of one colour in identity order.
func (b *Board) PiecesOfColour(colour Colour) []*Piece {
	return b.filter(func(p *Piece) bool { return p.colour == colour })
}

// PiecesOfKindAndColour returns the pieces of one kind and colour in identity order.
func (b *Board) PiecesOfKindAndColour(kind PieceKind, colour Colour) []*Piece {
	return b.filter(func(p *Piece) bool { return p.kind == kind && p.colour == colour })
}

// FindKing returns the King of the given colour.
func (b *Board) FindKing(colour Colour) (*Piece, error) {
	kings := b.PiecesOfKindAndColour(King, colour)
	if len(kings) == 0 {
		return nil, fmt.Errorf("%s king: %w", colour, errors.ErrNoPiece)
	}
	return kings[0], nil
}

// CastlingAvailability reports which rooks the colour could still castle
// with: the King and that Rook stand unmoved on their starting squares.
// Attacks and intervening pieces are not considered.
func (b *Board) CastlingAvailability(colour Colour) (kingside, queenside bool) {
	row := colour.HomeRow()
	king := b.grid[row][4]
	if king == nil || king.kind != King || king.colour != colour || king.moved {
		return false, false
	}
	unmovedRook := func(col int) bool {
		r := b.grid[row][col]
		return r != nil && r.kind == Rook && r.colour == colour && !r.moved
	}
	return unmovedRook(BoardSize - 1), unmovedRook(0)
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.registry)
}

// Validate checks grid/registry agreement and the one-king-per-colour rule.
func (b *Board) Validate() error {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.grid[row][col]
			if p == nil {
				continue
			}
			sq := Square{Row: row, Col: col}
			if b.registry[p.id] != p {
				return fmt.Errorf("%s holds unregistered piece %d: %w", sq, p.id, errors.ErrInvalidState)
			}
			if p.position != sq {
				return fmt.Errorf("%s holds piece %d recorded at %s: %w", sq, p.id, p.position, errors.ErrInvalidState)
			}
		}
	}

	kings := map[Colour]int{}
	for id, p := range b.registry {
		if p == nil || p.id != id {
			return fmt.Errorf("registry entry %d mismatched: %w", id, errors.ErrInvalidState)
		}
		if !p.position.Valid() || b.grid[p.position.Row][p.position.Col] != p {
			return fmt.Errorf("piece %d missing from %s: %w", id, p.position, errors.ErrInvalidState)
		}
		if p.kind == King {
			kings[p.colour]++
		}
		if p.kind == NoKind {
			return fmt.Errorf("piece %d has no kind: %w", id, errors.ErrInvalidState)
		}
	}
	for colour, n := range kings {
		if n > 1 {
			return fmt.Errorf("%d %s kings: %w", n, colour, errors.ErrInvalidState)
		}
	}

	if b.hasEnPassant {
		if b.PieceAt(b.enPassant) != nil {
			return fmt.Errorf("en passant target %s occupied: %w", b.enPassant, errors.ErrInvalidState)
		}
		if b.enPassant.Row != 2 && b.enPassant.Row != 5 {
			return fmt.Errorf("en passant target %s on wrong rank: %w", b.enPassant, errors.ErrInvalidState)
		}
	}
	return nil
}

func (b *Board) registered(p *Piece) bool {
	return p != nil && p.id != 0 && b.registry[p.id] == p
}

func (b *Board) filter(keep func(*Piece) bool) []*Piece {
	var out []*Piece
	for _, p := range b.registry {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// must panics when a board operation fails on a path whose preconditions
// were already checked.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("chess: board invariant broken: %v", err))
	}
}
