package chess

import "maps"

// boardMemo captures everything a simulation may touch.
type boardMemo struct {
	grid         [BoardSize][BoardSize]*Piece
	registry     map[PieceID]*Piece
	pieces       map[*Piece]pieceMemo
	enPassant    Square
	hasEnPassant bool
	nextID       PieceID
}

type pieceMemo struct {
	position Square
	moved    bool
}

func (b *Board) save() boardMemo {
	m := boardMemo{
		grid:         b.grid,
		registry:     maps.Clone(b.registry),
		pieces:       make(map[*Piece]pieceMemo, len(b.registry)),
		enPassant:    b.enPassant,
		hasEnPassant: b.hasEnPassant,
		nextID:       b.nextID,
	}
	for _, p := range b.registry {
		m.pieces[p] = pieceMemo{position: p.position, moved: p.moved}
	}
	return m
}

func (b *Board) restore(m boardMemo) {
	b.grid = m.grid
	b.registry = m.registry
	for p, pm := range m.pieces {
		p.position = pm.position
		p.moved = pm.moved
	}
	b.enPassant = m.enPassant
	b.hasEnPassant = m.hasEnPassant
	b.nextID = m.nextID
}

// simulate runs fn against the board and then restores the exact prior
// state, including when fn panics.
func (b *Board) simulate(fn func() bool) bool {
	memo := b.save()
	defer b.restore(memo)
	return fn()
}

// attackedBy reports whether any piece of the attacking colour reaches sq.
func (b *Board) attackedBy(sq Square, attacker Colour) bool {
	for _, p := range b.PiecesOfColour(attacker) {
		if b.reach(p).Contains(sq) {
			return true
		}
	}
	return false
}

// SquareUnderAttack reports whether the opponents of colour attack sq.
// An empty square is temporarily occupied by a marker of colour so that
// pawn diagonals count and pawn pushes do not.
func (b *Board) SquareUnderAttack(sq Square, colour Colour) bool {
	if !sq.Valid() {
		return false
	}
	return b.simulate(func() bool {
		if b.grid[sq.Row][sq.Col] == nil {
			must(b.PlacePiece(NewPiece(colour, Pawn), sq))
		}
		return b.attackedBy(sq, colour.Opposite())
	})
}

// KingInCheck reports whether the King of colour is attacked.
// A board without that King is never in check.
func (b *Board) KingInCheck(colour Colour) bool {
	king, err := b.FindKing(colour)
	if err != nil {
		return false
	}
	return b.attackedBy(king.position, colour.Opposite())
}

// KingWouldBeInCheck reports whether moving king to dest, capturing anything
// standing there, leaves it in check. The board is unchanged afterwards.
func (b *Board) KingWouldBeInCheck(king *Piece, dest Square) bool {
	return b.MoveWouldExposeKing(king, dest)
}

// MoveWouldExposeKing reports whether moving p to dest leaves p's own King in
// check. Normal and en passant captures are applied during the simulation.
func (b *Board) MoveWouldExposeKing(p *Piece, dest Square) bool {
	if !b.registered(p) || !dest.Valid() {
		return false
	}
	return b.simulate(func() bool {
		victim := b.grid[dest.Row][dest.Col]
		if victim == nil {
			victim = b.enPassantVictim(p, dest)
		}
		if victim != nil && victim != p {
			_, err := b.TakePiece(victim.position)
			must(err)
		}
		must(b.Relocate(p, dest))
		b.ClearEnPassantTarget()
		return b.KingInCheck(p.colour)
	})
}
