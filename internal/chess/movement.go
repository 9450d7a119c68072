package chess

// MovementRule produces the candidate destinations of a piece.
type MovementRule interface {
	Destinations(b *Board, p *Piece) Squares
}

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	diagonals     = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonals   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirections = append(append([][2]int{}, diagonals...), orthogonals...)
)

// ruleFor returns the movement rule of a piece kind.
func ruleFor(kind PieceKind) MovementRule {
	switch kind {
	case Pawn:
		return pawnRule{}
	case Knight:
		return knightRule{}
	case Bishop:
		return slidingRule{dirs: diagonals}
	case Rook:
		return slidingRule{dirs: orthogonals}
	case Queen:
		return slidingRule{dirs: allDirections}
	case King:
		return kingRule{}
	case NoKind:
		return noRule{}
	}
	return noRule{}
}

// ray walks from p's square in one direction for at most steps squares.
// It stops at the edge, includes the first enemy-occupied square and
// excludes the first friendly-occupied one.
func ray(b *Board, p *Piece, dRow, dCol, steps int) Squares {
	var out Squares
	sq := p.position
	for i := 0; i < steps; i++ {
		sq = sq.Offset(dRow, dCol)
		if !sq.Valid() {
			break
		}
		occupant := b.grid[sq.Row][sq.Col]
		if occupant == nil {
			out = append(out, sq)
			continue
		}
		if occupant.colour != p.colour {
			out = append(out, sq)
		}
		break
	}
	return out
}

type noRule struct{}

func (noRule) Destinations(*Board, *Piece) Squares { return nil }

type knightRule struct{}

func (knightRule) Destinations(b *Board, p *Piece) Squares {
	var out Squares
	for _, off := range knightOffsets {
		sq := p.position.Offset(off[0], off[1])
		if !sq.Valid() {
			continue
		}
		if occupant := b.grid[sq.Row][sq.Col]; occupant == nil || occupant.colour != p.colour {
			out = append(out, sq)
		}
	}
	return out
}

// slidingRule covers Bishop, Rook and Queen.
type slidingRule struct {
	dirs [][2]int
}

func (r slidingRule) Destinations(b *Board, p *Piece) Squares {
	var out Squares
	for _, d := range r.dirs {
		out = append(out, ray(b, p, d[0], d[1], BoardSize-1)...)
	}
	return out
}

type pawnRule struct{}

func (pawnRule) Destinations(b *Board, p *Piece) Squares {
	var out Squares
	dir := p.colour.Forward()

	one := p.position.Offset(dir, 0)
	if one.Valid() && b.grid[one.Row][one.Col] == nil {
		out = append(out, one)
		two := p.position.Offset(2*dir, 0)
		if !p.moved && two.Valid() && b.grid[two.Row][two.Col] == nil {
			out = append(out, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		sq := p.position.Offset(dir, dc)
		if !sq.Valid() {
			continue
		}
		if occupant := b.grid[sq.Row][sq.Col]; occupant != nil {
			if occupant.colour != p.colour {
				out = append(out, sq)
			}
			continue
		}
		if b.enPassantVictim(p, sq) != nil {
			out = append(out, sq)
		}
	}
	return out
}

// enPassantVictim returns the enemy pawn a pawn capturing onto sq would
// take en passant, or nil when sq is not a live en passant target.
func (b *Board) enPassantVictim(p *Piece, sq Square) *Piece {
	if p.kind != Pawn || !b.hasEnPassant || sq != b.enPassant || sq.Col == p.position.Col {
		return nil
	}
	victim := b.PieceAt(sq.Offset(-p.colour.Forward(), 0))
	if victim == nil || victim.kind != Pawn || victim.colour == p.colour {
		return nil
	}
	return victim
}

type kingRule struct{}

func (kingRule) Destinations(b *Board, p *Piece) Squares {
	var out Squares
	for _, sq := range kingSteps(b, p) {
		if !b.KingWouldBeInCheck(p, sq) {
			out = append(out, sq)
		}
	}
	return append(out, castlingDestinations(b, p)...)
}

// kingSteps returns the King's one-step rays with no safety filtering.
func kingSteps(b *Board, p *Piece) Squares {
	var out Squares
	for _, d := range allDirections {
		out = append(out, ray(b, p, d[0], d[1], 1)...)
	}
	return out
}

// castlingDestinations returns the King's landing squares for each side it
// may castle to right now.
func castlingDestinations(b *Board, king *Piece) Squares {
	kingside, queenside := b.CastlingAvailability(king.colour)
	if king != b.grid[king.colour.HomeRow()][4] || (!kingside && !queenside) {
		return nil
	}
	if b.SquareUnderAttack(king.position, king.colour) {
		return nil
	}

	var out Squares
	if kingside && b.castlePathClear(king, 7, 6) {
		out = append(out, king.position.Offset(0, 2))
	}
	if queenside && b.castlePathClear(king, 0, 2) {
		out = append(out, king.position.Offset(0, -2))
	}
	return out
}

// castlePathClear checks that every square between the King and the rook on
// rookCol is empty and that the King's transit and landing squares are safe.
func (b *Board) castlePathClear(king *Piece, rookCol, landingCol int) bool {
	row, kingCol := king.position.Row, king.position.Col
	step := 1
	if rookCol < kingCol {
		step = -1
	}
	for col := kingCol + step; col != rookCol; col += step {
		if b.grid[row][col] != nil {
			return false
		}
	}
	for col := kingCol + step; ; col += step {
		if b.SquareUnderAttack(Square{Row: row, Col: col}, king.colour) {
			return false
		}
		if col == landingCol {
			break
		}
	}
	return true
}

// reach returns the squares a piece attacks for check purposes. It matches
// PossibleMoves except for the King, which contributes only its one-step
// rays so that attack queries never recurse.
func (b *Board) reach(p *Piece) Squares {
	if p.kind == King {
		return kingSteps(b, p)
	}
	return ruleFor(p.kind).Destinations(b, p)
}
